package devpath

// Family identifies one of the five top-level device path categories, or
// the reserved terminator kind.
type Family uint8

const (
	FamilyHardware  Family = 0x01
	FamilyACPI      Family = 0x02
	FamilyMessaging Family = 0x03
	FamilyMedia     Family = 0x04
	FamilyBios      Family = 0x05

	kindTerminator uint8 = 0x7F

	subkindEndInstance uint8 = 0x01
	subkindEndEntire   uint8 = 0xFF
)

func (f Family) String() string {
	switch f {
	case FamilyHardware:
		return "Hardware"
	case FamilyACPI:
		return "ACPI"
	case FamilyMessaging:
		return "Messaging"
	case FamilyMedia:
		return "Media"
	case FamilyBios:
		return "Bios"
	default:
		return "Unknown"
	}
}

// header is the 4-byte common prefix of every device path record.
type header struct {
	kind    uint8
	subkind uint8
	payload []byte
}

func (h header) isEndInstance() bool {
	return h.kind == kindTerminator && h.subkind == subkindEndInstance && len(h.payload) == 0
}

func (h header) isEndEntire() bool {
	return h.kind == kindTerminator && h.subkind == subkindEndEntire && len(h.payload) == 0
}

func (h header) isTerminator() bool {
	return h.isEndInstance() || h.isEndEntire()
}

// readHeader parses a header at the reader's current offset and advances
// past its full length (header + payload), per §4.2.
func readHeader(r *Reader) (header, error) {
	if r.Remaining() < 4 {
		return header{}, errInvalid("truncated header")
	}
	kind, err := r.U8()
	if err != nil {
		return header{}, err
	}
	subkind, err := r.U8()
	if err != nil {
		return header{}, err
	}
	length, err := r.U16(Little)
	if err != nil {
		return header{}, err
	}
	if length < 4 {
		return header{}, errInvalidf("header length %d < 4", length)
	}
	payloadLen := int(length) - 4
	if payloadLen > r.Remaining() {
		return header{}, errInvalidf("header length %d exceeds remaining %d", length, r.Remaining()+4)
	}
	payload, err := r.Bytes(payloadLen)
	if err != nil {
		return header{}, err
	}
	return header{kind: kind, subkind: subkind, payload: payload}, nil
}
