package devpath

const (
	subPci        uint8 = 0x01
	subPcCard     uint8 = 0x02
	subMemMap     uint8 = 0x03
	subHwVendor   uint8 = 0x04
	subController uint8 = 0x05
	subBmc        uint8 = 0x06
)

func decodeHardware(subkind uint8, payload []byte) (Node, error) {
	r := NewReader(payload)
	switch subkind {
	case subPci:
		return decodePci(r)
	case subPcCard:
		return decodePcCard(r)
	case subMemMap:
		return decodeMemMap(r)
	case subHwVendor:
		return decodeHwVendor(r)
	case subController:
		return decodeController(r)
	case subBmc:
		return decodeBmc(r)
	default:
		return nil, errUnknownSubType(uint8(FamilyHardware), subkind)
	}
}

// Pci is Hardware sub-type 0x01.
type Pci struct {
	Function uint8
	Device   uint8
}

func (Pci) devPathNode() {}

func decodePci(r *Reader) (Node, error) {
	function, err := r.U8()
	if err != nil {
		return nil, err
	}
	device, err := r.U8()
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return Pci{Function: function, Device: device}, nil
}

// PcCard is Hardware sub-type 0x02.
type PcCard struct {
	Function uint8
}

func (PcCard) devPathNode() {}

func decodePcCard(r *Reader) (Node, error) {
	function, err := r.U8()
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return PcCard{Function: function}, nil
}

// MemoryType enumerates the 17 EFI memory kinds (0..16) used by MemMap.
type MemoryType uint32

const (
	MemoryTypeReserved MemoryType = iota
	MemoryTypeLoaderCode
	MemoryTypeLoaderData
	MemoryTypeBootServicesCode
	MemoryTypeBootServicesData
	MemoryTypeRuntimeServicesCode
	MemoryTypeRuntimeServicesData
	MemoryTypeConventional
	MemoryTypeUnusable
	MemoryTypeACPIReclaim
	MemoryTypeACPIMemoryNVS
	MemoryTypeMemoryMappedIO
	MemoryTypeMemoryMappedIOPortSpace
	MemoryTypePalCode
	MemoryTypePersistent
	MemoryTypeUnaccepted
	MemoryTypeMaxMemoryType
	memoryTypeMax // exclusive upper bound; not itself a valid wire value
)

func validMemoryType(v uint32) bool {
	return v < uint32(memoryTypeMax)
}

// MemMap is Hardware sub-type 0x03.
type MemMap struct {
	MemType MemoryType
	Start   uint64
	End     uint64
}

func (MemMap) devPathNode() {}

func decodeMemMap(r *Reader) (Node, error) {
	memType, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	if !validMemoryType(memType) {
		return nil, errInvalidf("memory type %d out of range", memType)
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
	return MemMap{MemType: MemoryType(memType), Start: start, End: end}, nil
}

// Vendor (Hardware sub-type 0x04, Messaging sub-type 0x0A, and Media
// sub-type 0x03) all share the same GUID-plus-trailing-bytes layout.
type Vendor struct {
	GUID [16]byte
	Data []byte
}

func (Vendor) devPathNode() {}

func decodeVendorPayload(r *Reader) (GUID [16]byte, data []byte, err error) {
	GUID, err = r.Array16()
	if err != nil {
		return GUID, nil, err
	}
	data = r.Rest()
	return GUID, data, nil
}

func decodeHwVendor(r *Reader) (Node, error) {
	guid, data, err := decodeVendorPayload(r)
	if err != nil {
		return nil, err
	}
	return Vendor{GUID: guid, Data: data}, nil
}

// Controller is Hardware sub-type 0x05.
type Controller uint32

func (Controller) devPathNode() {}

func decodeController(r *Reader) (Node, error) {
	v, err := r.U32(Little)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return Controller(v), nil
}

// BmcKind enumerates the BMC interface types usable by Bmc.
type BmcKind uint8

const (
	BmcUnknown BmcKind = iota
	BmcKCS
	BmcSMIC
	BmcBT
)

func validBmcKind(v uint8) bool {
	return v <= uint8(BmcBT)
}

// Bmc is Hardware sub-type 0x06.
type Bmc struct {
	Interface BmcKind
	Addr      uint64
}

func (Bmc) devPathNode() {}

func decodeBmc(r *Reader) (Node, error) {
	iface, err := r.U8()
	if err != nil {
		return nil, err
	}
	if !validBmcKind(iface) {
		return nil, errInvalidf("bmc interface %d out of range", iface)
	}
	addr, err := r.U64(Little)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return Bmc{Interface: BmcKind(iface), Addr: addr}, nil
}
