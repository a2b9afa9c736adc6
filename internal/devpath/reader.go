package devpath

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

// ByteOrder selects the endianness of a multi-byte integer read. Little is
// the wire default and the only order the current decoders use; Dns
// addresses are copied as raw network-order bytes rather than read as
// integers.
type ByteOrder int

const (
	Little ByteOrder = iota
	Big
)

func (o ByteOrder) impl() binary.ByteOrder {
	if o == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Reader is a cursor over an immutable byte slice. It never retains or
// mutates the caller's buffer beyond advancing its own offset.
type Reader struct {
	buf []byte
	off int
}

// NewReader wraps buf for reading. The returned Reader does not copy buf;
// callers must not mutate buf while decoding is in progress.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Finished reports whether the cursor has consumed the entire buffer.
func (r *Reader) Finished() bool {
	return r.Remaining() == 0
}

// Finish fails unless the reader has been fully consumed. It is the last
// call of every sub-type decoder that does not naturally end on a
// variable-trailing field.
func (r *Reader) Finish() error {
	if !r.Finished() {
		return errInvalidf("%d trailing byte(s) after decode", r.Remaining())
	}
	return nil
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, errInvalidf("need %d byte(s), have %d", n, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a 2-byte integer in the given byte order.
func (r *Reader) U16(order ByteOrder) (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return order.impl().Uint16(b), nil
}

// U32 reads a 4-byte integer in the given byte order.
func (r *Reader) U32(order ByteOrder) (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return order.impl().Uint32(b), nil
}

// U64 reads an 8-byte integer in the given byte order.
func (r *Reader) U64(order ByteOrder) (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return order.impl().Uint64(b), nil
}

// Bool reads one byte; any non-zero value is true.
func (r *Reader) Bool() (bool, error) {
	b, err := r.U8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// Bytes reads n raw bytes and returns a copy (the decoded value must not
// alias the input buffer per the lifecycle rule in §3).
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// Array16 reads a fixed 16-byte field, used for GUIDs and IPv6 addresses.
func (r *Reader) Array16() ([16]byte, error) {
	var out [16]byte
	b, err := r.take(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// Array6 reads a fixed 6-byte field, used for Ethernet-style addresses.
func (r *Reader) Array6() ([6]byte, error) {
	var out [6]byte
	b, err := r.take(6)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// Array4 reads a fixed 4-byte field, used for IPv4 addresses.
func (r *Reader) Array4() ([4]byte, error) {
	var out [4]byte
	b, err := r.take(4)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// Rest returns every remaining byte as a copy, exhausting the reader. Used
// for the raw trailing data of the Vendor sub-types and of a vendor-specific
// RestService.
func (r *Reader) Rest() []byte {
	out := make([]byte, r.Remaining())
	copy(out, r.buf[r.off:])
	r.off = len(r.buf)
	return out
}

// Utf8 reads an n-byte (or, if n < 0, NUL-scanned) UTF-8 string per
// the rules in §4.1. When n >= 0 the read is length-delimited: n bytes are
// consumed, a single trailing NUL is dropped if present, and the remainder
// must be valid UTF-8. When n < 0 the read scans forward for the first NUL
// byte, consumes it, and validates the preceding bytes as UTF-8.
func (r *Reader) Utf8(n int) (string, error) {
	if n < 0 {
		return r.utf8z()
	}
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	if len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	if !utf8.Valid(b) {
		return "", errInvalid("invalid utf-8")
	}
	return string(b), nil
}

func (r *Reader) utf8z() (string, error) {
	rest := r.buf[r.off:]
	idx := -1
	for i, c := range rest {
		if c == 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", errInvalid("missing nul terminator")
	}
	b := rest[:idx]
	if !utf8.Valid(b) {
		return "", errInvalid("invalid utf-8")
	}
	r.off += idx + 1
	return string(b), nil
}

// Utf16LE reads an n-byte (or, if n < 0, code-unit-NUL-scanned) UTF-16LE
// string per §4.1. n is a byte length and must be even when >= 0.
func (r *Reader) Utf16LE(n int) (string, error) {
	if n < 0 {
		return r.utf16lez()
	}
	if n%2 != 0 {
		return "", errInvalidf("odd utf-16 byte length %d", n)
	}
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	units := make([]uint16, n/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	if len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	return utf16ToString(units)
}

func (r *Reader) utf16lez() (string, error) {
	var units []uint16
	for {
		if r.Remaining() < 2 {
			return "", errInvalid("missing utf-16 nul terminator")
		}
		u, err := r.U16(Little)
		if err != nil {
			return "", err
		}
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return utf16ToString(units)
}

func utf16ToString(units []uint16) (string, error) {
	runes := utf16.Decode(units)
	for _, rn := range runes {
		if rn == utf8.RuneError {
			return "", errInvalid("invalid utf-16")
		}
	}
	return string(runes), nil
}
