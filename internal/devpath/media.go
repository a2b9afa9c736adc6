package devpath

const (
	subMediaHardDrive           uint8 = 0x01
	subMediaCdRom               uint8 = 0x02
	subMediaVendor              uint8 = 0x03
	subMediaFilePath            uint8 = 0x04
	subMediaMediaProtocol       uint8 = 0x05
	subMediaPiwgFirmwareFile    uint8 = 0x06
	subMediaPiwgFirmwareVolume  uint8 = 0x07
	subMediaRelativeOffsetRange uint8 = 0x08
	subMediaRamDisk             uint8 = 0x09
)

func decodeMedia(subkind uint8, payload []byte) (Node, error) {
	r := NewReader(payload)
	switch subkind {
	case subMediaHardDrive:
		return decodeHardDrive(r)
	case subMediaCdRom:
		return decodeCdRom(r)
	case subMediaVendor:
		return decodeMediaVendor(r)
	case subMediaFilePath:
		return decodeFilePath(r)
	case subMediaMediaProtocol:
		return decodeGUIDNode(r, func(g [16]byte) Node { return MediaProtocol{GUID: g} })
	case subMediaPiwgFirmwareFile:
		return decodeGUIDNode(r, func(g [16]byte) Node { return PiwgFirmwareFile{GUID: g} })
	case subMediaPiwgFirmwareVolume:
		return decodeGUIDNode(r, func(g [16]byte) Node { return PiwgFirmwareVolume{GUID: g} })
	case subMediaRelativeOffsetRange:
		return decodeRelativeOffsetRange(r)
	case subMediaRamDisk:
		return decodeRamDisk(r)
	default:
		return nil, errUnknownSubType(uint8(FamilyMedia), subkind)
	}
}

// HardDriveFormat enumerates HardDrive's partition-format byte.
type HardDriveFormat uint8

const (
	HardDriveFormatMbr HardDriveFormat = iota + 1
	HardDriveFormatGpt
)

// HardDriveSignatureType enumerates HardDrive's signature-type byte.
type HardDriveSignatureType uint8

const (
	HardDriveSignatureNone HardDriveSignatureType = iota
	HardDriveSignatureMbr32
	HardDriveSignatureGpt128
)

// HardDrive is Media sub-type 0x01.
type HardDrive struct {
	PartitionNumber uint32
	Start           uint64
	Size            uint64
	Signature       [16]byte
	Format          HardDriveFormat
	SignatureType   HardDriveSignatureType
}

func (HardDrive) devPathNode() {}

func decodeHardDrive(r *Reader) (Node, error) {
	partNum, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	start, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	size, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	sig, err := r.Array16()
	if err != nil {
		return nil, err
	}
	format, err := r.U8()
	if err != nil {
		return nil, err
	}
	if format != uint8(HardDriveFormatMbr) && format != uint8(HardDriveFormatGpt) {
		return nil, errInvalidf("harddrive: format %d out of range", format)
	}
	sigType, err := r.U8()
	if err != nil {
		return nil, err
	}
	if sigType > uint8(HardDriveSignatureGpt128) {
		return nil, errInvalidf("harddrive: signature type %d out of range", sigType)
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return HardDrive{
		PartitionNumber: partNum,
		Start:           start,
		Size:            size,
		Signature:       sig,
		Format:          HardDriveFormat(format),
		SignatureType:   HardDriveSignatureType(sigType),
	}, nil
}

// CdRom is Media sub-type 0x02.
type CdRom struct {
	BootEntry      uint32
	PartitionStart uint64
	PartitionSize  uint64
}

func (CdRom) devPathNode() {}

func decodeCdRom(r *Reader) (Node, error) {
	entry, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	start, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	size, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return CdRom{BootEntry: entry, PartitionStart: start, PartitionSize: size}, nil
}

func decodeMediaVendor(r *Reader) (Node, error) {
	guid, data, err := decodeVendorPayload(r)
	if err != nil {
		return nil, err
	}
	return Vendor{GUID: guid, Data: data}, nil
}

// FilePath is Media sub-type 0x04: a length-delimited UTF-16LE string over
// the full payload, not NUL-scanned (§4.3 — this deliberately diverges
// from the sampled source; see DESIGN.md).
type FilePath struct {
	Path string
}

func (FilePath) devPathNode() {}

func decodeFilePath(r *Reader) (Node, error) {
	s, err := r.Utf16LE(r.Remaining())
	if err != nil {
		return nil, err
	}
	return FilePath{Path: s}, nil
}

func decodeGUIDNode(r *Reader, ctor func([16]byte) Node) (Node, error) {
	guid, err := r.Array16()
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return ctor(guid), nil
}

// MediaProtocol is Media sub-type 0x05.
type MediaProtocol struct{ GUID [16]byte }

func (MediaProtocol) devPathNode() {}

// PiwgFirmwareFile is Media sub-type 0x06.
type PiwgFirmwareFile struct{ GUID [16]byte }

func (PiwgFirmwareFile) devPathNode() {}

// PiwgFirmwareVolume is Media sub-type 0x07.
type PiwgFirmwareVolume struct{ GUID [16]byte }

func (PiwgFirmwareVolume) devPathNode() {}

// RelativeOffsetRange is Media sub-type 0x08.
type RelativeOffsetRange struct {
	Reserved uint32
	Start    uint64
	End      uint64
}

func (RelativeOffsetRange) devPathNode() {}

func decodeRelativeOffsetRange(r *Reader) (Node, error) {
	reserved, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	start, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	end, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return RelativeOffsetRange{Reserved: reserved, Start: start, End: end}, nil
}

// RamDisk is Media sub-type 0x09.
type RamDisk struct {
	StartAddr      uint64
	EndAddr        uint64
	DiskType       [16]byte
	InstanceNumber uint16
}

func (RamDisk) devPathNode() {}

func decodeRamDisk(r *Reader) (Node, error) {
	start, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	end, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	diskType, err := r.Array16()
	if err != nil {
		return nil, err
	}
	instance, err := r.U16(Little)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return RamDisk{StartAddr: start, EndAddr: end, DiskType: diskType, InstanceNumber: instance}, nil
}
