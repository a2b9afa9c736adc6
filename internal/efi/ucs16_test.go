package efi_test

import (
	"testing"

	"github.com/bmcpi/efidevpath/internal/efi"
	"github.com/stretchr/testify/assert"
)

func TestUTF8ToUCS16Empty(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00}, efi.UTF8ToUCS16(""))
}

func TestUTF8ToUCS16RoundTrip(t *testing.T) {
	s := "Boot Entry"
	b := efi.UTF8ToUCS16(s)
	assert.Equal(t, s, efi.UCS16ToUTF8(b[:len(b)-2]))
}

func TestUCS16ToUTF8StopsAtEmbeddedNull(t *testing.T) {
	b := append(efi.UTF8ToUCS16("abc"), efi.UTF8ToUCS16("ignored")...)
	assert.Equal(t, "abc", efi.UCS16ToUTF8(b))
}

func TestFindUCS16NullTerminatorTruncated(t *testing.T) {
	b := []byte{0x41, 0x00, 0x42}
	assert.Equal(t, 2, efi.FindUCS16NullTerminator(b))
}

func TestFindUCS16NullTerminatorNotPresent(t *testing.T) {
	b := []byte{0x41, 0x00, 0x42, 0x00}
	assert.Equal(t, 4, efi.FindUCS16NullTerminator(b))
}
