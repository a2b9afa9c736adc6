package devpath_test

import (
	"encoding/hex"
	"testing"

	"github.com/bmcpi/efidevpath/internal/devpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUsbWwidFieldOrder pins the wire order InterfaceNumber, VendorID,
// ProductID (UEFI USB_WWID_DEVICE_PATH), not VendorID/ProductID/InterfaceNumber.
func TestUsbWwidFieldOrder(t *testing.T) {
	data, err := hex.DecodeString("03100e0003000304016041004200")
	require.NoError(t, err)
	got, err := devpath.DecodeNode(data)
	require.NoError(t, err)
	want := devpath.UsbWwid{
		InterfaceNumber: 3,
		VendorID:        0x0403,
		ProductID:       0x6001,
		SerialNumber:    "AB",
	}
	assert.Equal(t, want, got)
}

// TestSasExtendedTopologyIsU16 pins DeviceTopologyInfo as a single
// little-endian u16, not two separate bytes.
func TestSasExtendedTopologyIsU16(t *testing.T) {
	data, err := hex.DecodeString("03161800000102030405060708090a0b0c0d0e0f34120500")
	require.NoError(t, err)
	got, err := devpath.DecodeNode(data)
	require.NoError(t, err)
	want := devpath.SasExtended{
		SasAddress:         [8]byte{0, 1, 2, 3, 4, 5, 6, 7},
		LUN:                [8]byte{8, 9, 10, 11, 12, 13, 14, 15},
		DeviceTopologyInfo: 0x1234,
		RelativeTargetPort: 5,
	}
	assert.Equal(t, want, got)
}

// TestTerminatorMatchRequiresExactShape pins the terminator rule: only an
// EndInstance/EndEntire header with subkind matching exactly AND an empty
// payload counts as a terminator. A kind-0x7F header with a wrong subkind
// or any payload falls through to the family router and is rejected as an
// unknown type, not silently treated as a path boundary.
func TestTerminatorMatchRequiresExactShape(t *testing.T) {
	// kind=0x7F, subkind=0x02 (neither EndInstance nor EndEntire), length=4
	data, err := hex.DecodeString("7f020400")
	require.NoError(t, err)
	_, err = devpath.DecodePath(data)
	require.Error(t, err)
	var derr *devpath.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, devpath.UnknownType, derr.Kind)
}

// TestTerminatorWithPayloadIsNotATerminator pins that a header whose kind
// and subkind exactly match EndEntire but which carries a non-empty payload
// is not treated as a terminator either; it is rejected, not swallowed as a
// path boundary with data loss.
func TestTerminatorWithPayloadIsNotATerminator(t *testing.T) {
	// kind=0x7F, subkind=0xFF (EndEntire shape), length=5, one payload byte.
	data, err := hex.DecodeString("7fff050099")
	require.NoError(t, err)
	_, err = devpath.DecodePath(data)
	require.Error(t, err)
	var derr *devpath.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, devpath.UnknownType, derr.Kind)
}
