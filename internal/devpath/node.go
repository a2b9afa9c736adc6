package devpath

// Node is the sealed tagged union over every device path sub-type. The
// unexported marker method keeps the set closed to this package; callers
// type-switch on the concrete structs to recover sub-type fields.
type Node interface {
	devPathNode()
}

// Path is an ordered sequence of nodes between two terminators.
type Path []Node

// Paths is an ordered sequence of Path; a Boot#### device path list may
// legally contain more than one instance.
type Paths []Path

func decodeByHeader(h header) (Node, error) {
	switch Family(h.kind) {
	case FamilyHardware:
		return decodeHardware(h.subkind, h.payload)
	case FamilyACPI:
		return decodeACPI(h.subkind, h.payload)
	case FamilyMessaging:
		return decodeMessaging(h.subkind, h.payload)
	case FamilyMedia:
		return decodeMedia(h.subkind, h.payload)
	case FamilyBios:
		return decodeBios(h.subkind, h.payload)
	default:
		return nil, errUnknownType(h.kind)
	}
}

// DecodeNode decodes a single device path node header and payload from
// data. data must contain exactly one non-terminator record; a terminator
// sentinel is rejected (terminators are structural, not typed nodes, per
// §8's terminator-exclusivity property).
func DecodeNode(data []byte) (Node, error) {
	r := NewReader(data)
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if h.isTerminator() {
		return nil, errInvalid("terminator is not a decodable node")
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return decodeByHeader(h)
}

// DecodePath decodes a sequence of nodes up to (and consuming) the first
// terminator of either kind, per §4.5.
func DecodePath(data []byte) (Path, error) {
	r := NewReader(data)
	path, _, err := readPath(r)
	return path, err
}

// DecodePaths decodes a sequence of paths up to (and consuming) the first
// EndEntire terminator, per §4.6.
func DecodePaths(data []byte) (Paths, error) {
	r := NewReader(data)
	return readPaths(r)
}
