package devpath

const subBiosBootSpec uint8 = 0x01

func decodeBios(subkind uint8, payload []byte) (Node, error) {
	r := NewReader(payload)
	switch subkind {
	case subBiosBootSpec:
		return decodeBootSpec(r)
	default:
		return nil, errUnknownSubType(uint8(FamilyBios), subkind)
	}
}

// BootSpec is the sole Bios sub-type (0x01): a legacy BIOS Boot
// Specification device path.
type BootSpec struct {
	DeviceType  uint16
	StatusFlag  uint16
	Description string
}

func (BootSpec) devPathNode() {}

func decodeBootSpec(r *Reader) (Node, error) {
	deviceType, err := r.U16(Little)
	if err != nil {
		return nil, err
	}
	statusFlag, err := r.U16(Little)
	if err != nil {
		return nil, err
	}
	description, err := r.Utf8(-1)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return BootSpec{DeviceType: deviceType, StatusFlag: statusFlag, Description: description}, nil
}
