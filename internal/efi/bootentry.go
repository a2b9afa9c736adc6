package efi

import (
	"encoding/binary"
	"fmt"

	"github.com/bmcpi/efidevpath/internal/devpath"
)

// Boot#### attribute bits (EFI_LOAD_OPTION).
const (
	LoadOptionActive         uint32 = 0x00000001
	LoadOptionHidden         uint32 = 0x00000008
	LoadOptionCategory       uint32 = 0x00001F00
	LoadOptionCategoryBoot   uint32 = 0x00000000
	LoadOptionCategoryApp    uint32 = 0x00000100
)

// BootEntry is a decoded Boot#### NVRAM variable payload (§2.3/§4.8 of
// SPEC_FULL.md). FilePaths is a Paths, not a single Path, because a boot
// entry's device path list may legally contain more than one instance.
type BootEntry struct {
	Attributes   uint32
	Description  string
	FilePaths    devpath.Paths
	OptionalData []byte
}

// Active reports whether LOAD_OPTION_ACTIVE is set.
func (b BootEntry) Active() bool {
	return b.Attributes&LoadOptionActive != 0
}

// Hidden reports whether LOAD_OPTION_HIDDEN is set.
func (b BootEntry) Hidden() bool {
	return b.Attributes&LoadOptionHidden != 0
}

// Category returns the LOAD_OPTION_CATEGORY bits.
func (b BootEntry) Category() uint32 {
	return b.Attributes & LoadOptionCategory
}

// DecodeBootEntry decodes a Boot#### variable payload per §4.8:
// Attributes(u32-LE), FilePathListLength(u16-LE), Description (NUL-
// terminated UTF-16LE), FilePathList (devpath.Paths over exactly
// FilePathListLength bytes), and the remaining bytes as OptionalData.
func DecodeBootEntry(data []byte) (BootEntry, error) {
	if len(data) < 6 {
		return BootEntry{}, fmt.Errorf("efi: boot entry data too short: %d bytes", len(data))
	}
	attrs := binary.LittleEndian.Uint32(data[0:4])
	pathLen := int(binary.LittleEndian.Uint16(data[4:6]))

	offset := 6
	descEnd := findUCS16Z(data[offset:])
	if descEnd < 0 {
		return BootEntry{}, fmt.Errorf("efi: boot entry description missing nul terminator")
	}
	description := UCS16ToUTF8(data[offset : offset+descEnd])
	offset += descEnd + 2 // skip the terminating UCS-16 NUL unit

	if offset+pathLen > len(data) {
		return BootEntry{}, fmt.Errorf("efi: boot entry file path list length %d exceeds remaining data", pathLen)
	}
	paths, err := devpath.DecodePaths(data[offset : offset+pathLen])
	if err != nil {
		return BootEntry{}, fmt.Errorf("efi: boot entry file path list: %w", err)
	}
	offset += pathLen

	optionalData := append([]byte(nil), data[offset:]...)

	return BootEntry{
		Attributes:   attrs,
		Description:  description,
		FilePaths:    paths,
		OptionalData: optionalData,
	}, nil
}

func findUCS16Z(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}
