package efi

import (
	"encoding/binary"
	"unicode/utf16"
)

// UTF8ToUCS16 encodes s as a NUL-terminated UCS-2/UTF-16LE byte run,
// matching the in-memory form EFI firmware uses for CHAR16 strings.
func UTF8ToUCS16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2+2)
	for _, u := range units {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], u)
		out = append(out, b[:]...)
	}
	return append(out, 0x00, 0x00)
}

// UCS16ToUTF8 decodes a UCS-2/UTF-16LE byte run, stopping at the first NUL
// code unit or the end of data, whichever comes first. An odd trailing
// byte is ignored rather than rejected: this helper favors leniency for
// display purposes, unlike the strict devpath decoder.
func UCS16ToUTF8(b []byte) string {
	n := FindUCS16NullTerminator(b)
	units := make([]uint16, 0, n/2)
	for i := 0; i+1 < n; i += 2 {
		units = append(units, binary.LittleEndian.Uint16(b[i:]))
	}
	return string(utf16.Decode(units))
}

// FindUCS16NullTerminator returns the byte offset of the first NUL code
// unit (00 00) in b, or len(b) rounded down to an even boundary if none is
// found.
func FindUCS16NullTerminator(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return len(b) - len(b)%2
}
