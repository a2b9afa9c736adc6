package devpath_test

import (
	"testing"

	"github.com/bmcpi/efidevpath/internal/devpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enumCase is one out-of-range-enum record: a valid record with a single
// enumerated byte/word replaced by a value outside its defined range.
type enumCase struct {
	name string
	data []byte
}

// TestRejectOutOfRangeEnums exercises §8's reject-on-enum property across
// the closed enum fields of the Hardware and Messaging families (Media's
// HardDrive format and signature-type bytes are not covered here), not
// just the handful spec.md
// happens to spell out (ACPI Adr's payload-length check and Dns's flag are
// already covered by scenarios_test.go's negative cases).
func TestRejectOutOfRangeEnums(t *testing.T) {
	cases := []enumCase{
		{
			name: "Hardware MemMap MemoryType out of range",
			data: []byte{
				0x01, 0x03, 0x18, 0x00,
				0x11, 0x00, 0x00, 0x00, // MemType = 17, one past the max of 16
				0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x00, 0x00,
				0xff, 0xff, 0x00, 0x3f, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "Hardware Bmc interface type out of range",
			data: []byte{
				0x01, 0x06, 0x0d, 0x00,
				0x04, // BmcKind: 0=Unknown,1=KCS,2=SMIC,3=BT -> 4 is out of range
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "Messaging Ipv6 origin out of range",
			data: []byte{
				0x03, 0x0d, 0x3c, 0x00,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
				0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
				0x6f, 0x00, 0xde, 0x00,
				0x11, 0x00,
				0x03, // Origin = 3, one past Stateful (2)
				0x40,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
			},
		},
		{
			name: "Messaging IScsi protocol must be TCP (0)",
			data: []byte{
				0x03, 0x13, 0x12, 0x00,
				0x01, 0x00, // Protocol = 1, only 0 (TCP) is defined
				0x00, 0x00, // LoginOptions
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // LUN
				0x00, 0x00, // PortalGroup
				// empty TargetName
			},
		},
		{
			name: "Messaging BluetoothLe address type out of range",
			data: []byte{
				0x03, 0x1e, 0x0b, 0x00,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05,
				0x02, // AddressType: 0=Public,1=Random -> 2 is out of range
			},
		},
		{
			name: "Messaging RestService service type out of range",
			data: []byte{0x03, 0x21, 0x06, 0x00, 0x00, 0x01}, // Service = 0, valid range is 1..3
		},
		{
			name: "Messaging RestService access mode out of range",
			data: []byte{0x03, 0x21, 0x06, 0x00, 0x01, 0x00}, // AccessMode = 0, valid range is 1..2
		},
		{
			name: "Messaging NvmeOfNamespace nidt out of range",
			data: []byte{
				0x03, 0x22, 0x15, 0x00,
				0x00, // nidt = 0, valid range is 1..4
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
				// empty NQN
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := devpath.DecodeNode(tc.data)
			require.Error(t, err)
			var derr *devpath.Error
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, devpath.Invalid, derr.Kind)
		})
	}
}
