// Package efi provides small EFI NVRAM conveniences layered on top of the
// devpath decoder: GUID formatting, UCS-16 string helpers, and a BootEntry
// decoder for Boot#### variable payloads.
package efi

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// GUID is a 16-byte EFI globally unique identifier, stored in the
// mixed-endian layout UEFI uses on the wire: the first three fields are
// little-endian, the last two are a raw big-endian byte run.
type GUID [16]byte

// Known EFI GUIDs referenced by firmware variable tooling.
var (
	EfiGlobalVariableGUID           = mustGUID("8be4df61-93ca-11d2-aa0d-00e098032b8c")
	EfiImageSecurityDatabaseGUID    = mustGUID("d719b2cb-3d3a-4596-a3bc-dad00e67656f")
	EfiSecureBootEnableDisableGUID  = mustGUID("f0a30bc7-af08-4556-99c4-001009c93a44")
)

var knownGUIDs = map[GUID]string{
	EfiGlobalVariableGUID:          "EFI_GLOBAL_VARIABLE",
	EfiImageSecurityDatabaseGUID:   "EFI_IMAGE_SECURITY_DATABASE",
	EfiSecureBootEnableDisableGUID: "EFI_SECURE_BOOT_ENABLE_DISABLE",
}

func mustGUID(s string) GUID {
	g, err := GUIDStringToBytes(s)
	if err != nil {
		panic(err)
	}
	return g
}

// GUIDStringToBytes parses the canonical
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" GUID string form into its wire
// byte layout.
func GUIDStringToBytes(s string) (GUID, error) {
	var g GUID
	parts := strings.Split(s, "-")
	if len(parts) != 5 {
		return g, fmt.Errorf("efi: malformed guid %q", s)
	}
	if len(parts[0]) != 8 || len(parts[1]) != 4 || len(parts[2]) != 4 || len(parts[3]) != 4 || len(parts[4]) != 12 {
		return g, fmt.Errorf("efi: malformed guid %q", s)
	}
	raw, err := hex.DecodeString(strings.Join(parts, ""))
	if err != nil {
		return g, fmt.Errorf("efi: malformed guid %q: %w", s, err)
	}
	// raw is big-endian field-by-field; GUID's first three fields are
	// little-endian on the wire.
	g[0], g[1], g[2], g[3] = raw[3], raw[2], raw[1], raw[0]
	g[4], g[5] = raw[5], raw[4]
	g[6], g[7] = raw[7], raw[6]
	copy(g[8:], raw[8:16])
	return g, nil
}

// GUIDBytesToString renders the canonical string form of a GUID.
func GUIDBytesToString(g GUID) string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uint32(g[0])|uint32(g[1])<<8|uint32(g[2])<<16|uint32(g[3])<<24,
		uint16(g[4])|uint16(g[5])<<8,
		uint16(g[6])|uint16(g[7])<<8,
		g[8:10],
		g[10:16],
	)
}

// CompareGUID reports whether two GUIDs are byte-for-byte identical.
func CompareGUID(a, b GUID) bool {
	return a == b
}

// IsKnownGUID reports whether g matches one of the well-known EFI GUIDs.
func IsKnownGUID(g GUID) bool {
	_, ok := knownGUIDs[g]
	return ok
}

// FormatGUID renders g using its known name when available, otherwise its
// canonical string form.
func FormatGUID(g GUID) string {
	if name, ok := knownGUIDs[g]; ok {
		return name
	}
	return GUIDBytesToString(g)
}
