package devpath

const (
	subAcpiStandard uint8 = 0x01
	subAcpiExpanded uint8 = 0x02
	subAcpiAdr      uint8 = 0x03
	subAcpiNvdimm   uint8 = 0x04
)

func decodeACPI(subkind uint8, payload []byte) (Node, error) {
	r := NewReader(payload)
	switch subkind {
	case subAcpiStandard:
		return decodeAcpiStandard(r)
	case subAcpiExpanded:
		return decodeAcpiExpanded(r)
	case subAcpiAdr:
		return decodeAcpiAdr(r)
	case subAcpiNvdimm:
		return decodeAcpiNvdimm(r)
	default:
		return nil, errUnknownSubType(uint8(FamilyACPI), subkind)
	}
}

// AcpiStandard is ACPI sub-type 0x01.
type AcpiStandard struct {
	HID uint32
	UID uint32
}

func (AcpiStandard) devPathNode() {}

func decodeAcpiStandard(r *Reader) (Node, error) {
	hid, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	uid, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return AcpiStandard{HID: hid, UID: uid}, nil
}

// AcpiExpanded is ACPI sub-type 0x02: three numeric identifiers, each
// paired with a UTF-8 NUL-terminated string of the same name.
type AcpiExpanded struct {
	HID    uint32
	HIDStr string
	UID    uint32
	UIDStr string
	CID    uint32
	CIDStr string
}

func (AcpiExpanded) devPathNode() {}

func decodeAcpiExpanded(r *Reader) (Node, error) {
	hid, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	uid, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	cid, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	hidStr, err := r.Utf8(-1)
	if err != nil {
		return nil, err
	}
	uidStr, err := r.Utf8(-1)
	if err != nil {
		return nil, err
	}
	cidStr, err := r.Utf8(-1)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return AcpiExpanded{
		HID: hid, HIDStr: hidStr,
		UID: uid, UIDStr: uidStr,
		CID: cid, CIDStr: cidStr,
	}, nil
}

// AcpiAdr is ACPI sub-type 0x03: one or more u32 ADR values.
type AcpiAdr struct {
	Values []uint32
}

func (AcpiAdr) devPathNode() {}

func decodeAcpiAdr(r *Reader) (Node, error) {
	if r.Remaining() == 0 {
		return nil, errInvalid("acpi adr: empty payload")
	}
	if r.Remaining()%4 != 0 {
		return nil, errInvalidf("acpi adr: payload length %d not a multiple of 4", r.Remaining())
	}
	var values []uint32
	for r.Remaining() > 0 {
		v, err := r.U32(Little)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return AcpiAdr{Values: values}, nil
}

// AcpiNvdimm is ACPI sub-type 0x04.
type AcpiNvdimm struct {
	Handle uint32
}

func (AcpiNvdimm) devPathNode() {}

func decodeAcpiNvdimm(r *Reader) (Node, error) {
	handle, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return AcpiNvdimm{Handle: handle}, nil
}
