package devpath_test

import (
	"testing"

	"github.com/bmcpi/efidevpath/internal/devpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioAcpiPciRootSinglePath(t *testing.T) {
	input := []byte{
		0x02, 0x01, 0x0c, 0x00, 0xd0, 0x41, 0x03, 0x0a, 0x00, 0x00, 0x00, 0x00,
		0x7f, 0xff, 0x04, 0x00,
	}
	paths, err := devpath.DecodePaths(input)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], 1)
	std, ok := paths[0][0].(devpath.AcpiStandard)
	require.True(t, ok)
	assert.Equal(t, uint32(0x0A0341D0), std.HID)
	assert.Equal(t, uint32(0), std.UID)
}

func TestScenarioPciRootPlusPci(t *testing.T) {
	input := []byte{
		0x02, 0x01, 0x0c, 0x00, 0xd0, 0x41, 0x03, 0x0a, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x01, 0x06, 0x00, 0x00, 0x01,
		0x7f, 0xff, 0x04, 0x00,
	}
	path, err := devpath.DecodePath(input)
	require.NoError(t, err)
	require.Len(t, path, 2)
	std := path[0].(devpath.AcpiStandard)
	assert.Equal(t, uint32(0x0A0341D0), std.HID)
	pci := path[1].(devpath.Pci)
	assert.Equal(t, uint8(0), pci.Function)
	assert.Equal(t, uint8(1), pci.Device)
}

func TestScenarioUsbHubChain(t *testing.T) {
	input := []byte{
		0x02, 0x01, 0x0c, 0x00, 0xd0, 0x41, 0x03, 0x0a, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x01, 0x06, 0x00, 0x02, 0x1f,
		0x03, 0x05, 0x06, 0x00, 0x01, 0x00,
		0x03, 0x05, 0x06, 0x00, 0x03, 0x00,
		0x7f, 0xff, 0x04, 0x00,
	}
	path, err := devpath.DecodePath(input)
	require.NoError(t, err)
	require.Len(t, path, 4)
	usb1 := path[2].(devpath.Usb)
	usb2 := path[3].(devpath.Usb)
	assert.Equal(t, uint8(1), usb1.ParentPortNumber)
	assert.Equal(t, uint8(3), usb2.ParentPortNumber)
}

func TestScenarioSataDirectConnectPM(t *testing.T) {
	input := []byte{
		0x02, 0x01, 0x0c, 0x00, 0xd0, 0x41, 0x03, 0x0a, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x01, 0x06, 0x00, 0x00, 0x01,
		0x03, 0x12, 0x0a, 0x00, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
		0x7f, 0xff, 0x04, 0x00,
	}
	path, err := devpath.DecodePath(input)
	require.NoError(t, err)
	require.Len(t, path, 3)
	sata := path[2].(devpath.Sata)
	assert.Equal(t, uint16(0), sata.HBAPort)
	assert.Equal(t, uint16(0xFFFF), sata.PMPort)
	assert.Equal(t, uint16(0), sata.LUN)
}

func TestScenarioNvmeOfOverIpv4(t *testing.T) {
	input := []byte{
		0x03, 0x0b, 0x25, 0x00, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01,
		0x03, 0x0c, 0x1b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xbc, 0x0c, 0x06, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0xff,
		0xff, 0xff, 0x00,
		0x03, 0x22, 0x3d, 0x00, 0x02, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
		0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0x6e, 0x71, 0x6e,
		0x2e, 0x31, 0x39, 0x39, 0x31, 0x2d, 0x30, 0x35, 0x2e, 0x6f, 0x72, 0x67,
		0x2e, 0x75, 0x65, 0x66, 0x69, 0x3a, 0x6e, 0x76, 0x6d, 0x65, 0x6f, 0x66,
		0x2d, 0x6e, 0x76, 0x6d, 0x65, 0x2d, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74,
		0x00,
		0x7f, 0xff, 0x04, 0x00,
	}
	path, err := devpath.DecodePath(input)
	require.NoError(t, err)
	require.Len(t, path, 3)

	mac := path[0].(devpath.MacAddress)
	assert.Equal(t, uint8(1), mac.InterfaceType)

	ip := path[1].(devpath.Ipv4)
	assert.Equal(t, uint16(3260), ip.RemotePort)
	assert.Equal(t, uint16(6), ip.Protocol)
	assert.True(t, ip.StaticIP)

	nvmeof := path[2].(devpath.NvmeOfNamespace)
	assert.Equal(t, devpath.NvmeOfNidtNGUID, nvmeof.IDType)
	assert.Equal(t, "nqn.1991-05.org.uefi:nvmeof-nvme-target", nvmeof.NQN)
}

func TestScenarioMemoryMapped(t *testing.T) {
	input := []byte{
		0x02, 0x01, 0x0c, 0x00, 0xd0, 0x41, 0x03, 0x0a, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x03, 0x18, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x00, 0x00,
		0xff, 0xff, 0x00, 0x3f, 0x00, 0x00, 0x00, 0x00,
		0x7f, 0xff, 0x04, 0x00,
	}
	path, err := devpath.DecodePath(input)
	require.NoError(t, err)
	require.Len(t, path, 2)
	mm := path[1].(devpath.MemMap)
	assert.Equal(t, devpath.MemoryTypeReserved, mm.MemType)
	assert.Equal(t, uint64(0x3F000000), mm.Start)
	assert.Equal(t, uint64(0x3F00FFFF), mm.End)
}

func TestNegativeHeaderLengthTooSmall(t *testing.T) {
	_, err := devpath.DecodeNode([]byte{0x01, 0x01, 0x03, 0x00, 0x00})
	require.Error(t, err)
	var derr *devpath.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, devpath.Invalid, derr.Kind)
}

func TestNegativeUartReservedNonZero(t *testing.T) {
	payload := []byte{
		0x03, 0x0e, 0x13, 0x00,
		0x01, 0x00, 0x00, 0x00, // reserved, non-zero
		0x00, 0xc2, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, // baud
		0x08, 0x01, 0x01, // data/parity/stop
	}
	_, err := devpath.DecodeNode(payload)
	require.Error(t, err)
}

func TestNegativeAcpiAdrSixBytePayload(t *testing.T) {
	payload := []byte{0x02, 0x03, 0x0a, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	_, err := devpath.DecodeNode(payload)
	require.Error(t, err)
}

func TestNegativeDnsFlagTwo(t *testing.T) {
	payload := []byte{0x03, 0x1f, 0x09, 0x00, 0x02, 0x01, 0x02, 0x03, 0x04}
	_, err := devpath.DecodeNode(payload)
	require.Error(t, err)
}

func TestNegativeRestServiceRedfishExtraBytes(t *testing.T) {
	payload := []byte{0x03, 0x21, 0x07, 0x00, 0x01, 0x01, 0xaa}
	_, err := devpath.DecodeNode(payload)
	require.Error(t, err)
}

func TestNegativeFilePathOddByteLength(t *testing.T) {
	payload := []byte{0x04, 0x04, 0x07, 0x00, 0x41, 0x00, 0x00}
	_, err := devpath.DecodeNode(payload)
	require.Error(t, err)
}

func TestNegativePathBufferNoTerminator(t *testing.T) {
	input := []byte{0x01, 0x01, 0x06, 0x00, 0x00, 0x01}
	_, err := devpath.DecodePath(input)
	require.Error(t, err)
}
