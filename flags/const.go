package flags

const (
	// HeaderSize is the fixed size, in bytes, of the size/SRID/flags header
	// that precedes every SerializedGeom body (and optional bbox).
	HeaderSize = 8

	// sridBits is the width of the packed SRID field.
	sridBits = 21
	// sridMask keeps only the low 21 bits of a 24-bit (3-byte) container;
	// the top 3 bits of the container are always zero on the wire.
	sridMask = uint32(1)<<sridBits - 1
	// sridSignBit is bit 20, the sign bit of the 21-bit two's-complement value.
	sridSignBit = uint32(1) << (sridBits - 1)
)

// SRID sentinels and clamp bounds, matching the values a spatial database
// host agrees on with this codec (see spec §6, "Environment / constants").
const (
	// SRIDUnknown is both the API sentinel for "no SRID assigned" and its
	// on-wire representation (0).
	SRIDUnknown int32 = 0
	// SRIDMaximum is the largest SRID value the 21-bit field can be asked
	// to hold without folding.
	SRIDMaximum int32 = 999999
	// SRIDUserMaximum is the top of the range reserved for user-defined
	// SRIDs; values beyond SRIDMaximum fold back into (SRIDUserMaximum,
	// SRIDMaximum].
	SRIDUserMaximum int32 = 998999
)

// varlenaMask isolates the low 2 bits of size_varlen, the database's own
// varlena flags. This codec treats them as opaque and round-trips them
// unexamined.
const varlenaMask = uint32(0x3)
