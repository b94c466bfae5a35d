package flags

import "github.com/Ashutosh-Ya/pggeom/errs"

// Header is the fixed 8-byte section at the start of every SerializedGeom:
// size_varlen, the packed SRID, and the flags byte. It mirrors the blob's
// own byte layout exactly — offsets 0-3, 4-6, and 7.
type Header struct {
	// Size is the total byte length of the blob this header belongs to,
	// the unpacked value of size_varlen >> 2.
	Size uint32
	// VarlenaBits carries the low 2 bits of size_varlen, the host
	// database's own varlena flags. This codec treats them as opaque and
	// round-trips them unexamined.
	VarlenaBits uint8
	// SRID is the already-unpacked, sign-extended spatial reference id.
	SRID int32
	// Flags is the packed flag byte at offset 7.
	Flags Flags
}

// ParseHeader reads the fixed 8-byte header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	sizeVarlen := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24

	var sridBytes [3]byte
	copy(sridBytes[:], data[4:7])

	return Header{
		Size:        sizeVarlen >> 2,
		VarlenaBits: uint8(sizeVarlen & varlenaMask),
		SRID:        unpackSRID(sridBytes),
		Flags:       Flags(data[7]),
	}, nil
}

// Bytes serializes the header back into its 8-byte on-wire form.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	sizeVarlen := h.Size<<2 | uint32(h.VarlenaBits)&varlenaMask
	b[0] = byte(sizeVarlen)
	b[1] = byte(sizeVarlen >> 8)
	b[2] = byte(sizeVarlen >> 16)
	b[3] = byte(sizeVarlen >> 24)

	sridBytes := packSRID(h.SRID)
	copy(b[4:7], sridBytes[:])

	b[7] = byte(h.Flags)

	return b
}

// BodyOffset returns the byte offset of the body region: HeaderSize plus
// the packed bbox, if any.
func (h Header) BodyOffset() int {
	if !h.Flags.HasBBox() {
		return HeaderSize
	}

	return HeaderSize + h.Flags.BBoxSize()
}

// MaxHeaderSize is the worst-case header_size() result: the fixed header
// plus the largest possible packed GBox (3 axis pairs).
const MaxHeaderSize = HeaderSize + 3*2*4
