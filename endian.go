package pggeom

import "github.com/Ashutosh-Ya/pggeom/endian"

// nativeEngine matches the host's byte order; SerializedGeom carries no
// endianness marker of its own (spec §6).
var nativeEngine = hostEngine()

func hostEngine() endian.EndianEngine {
	if endian.IsNativeLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
