package gbox

import (
	"math"

	"github.com/Ashutosh-Ya/pggeom/flags"
	"github.com/Ashutosh-Ya/pggeom/geodetic"
)

// SortableHash computes a 64-bit Morton (Z-order) code from b's centroid,
// giving geometries with nearby boxes nearby hashes — useful as a cheap
// pre-comparison key before falling back to a full Cmp (see root package,
// component D).
//
// Non-geodetic boxes use (xmin+xmax, ymin+ymax) without dividing by two:
// the f32 bit pattern differs from the true centroid only in the exponent
// and preserves ordering. Geodetic boxes go through cart2geog on the
// normalized 3D geocentric centroid instead. Either way the hash crosses
// sign boundaries poorly; that is an accepted trade-off (see spec §4.B).
func SortableHash(b GBox, f flags.Flags) uint64 {
	var x, y float32

	if f.IsGeodetic() {
		x, y = geodeticXY(b)
	} else {
		x = b.Xmin + b.Xmax
		y = b.Ymin + b.Ymax
	}

	return interleave(math.Float32bits(x), math.Float32bits(y))
}

func geodeticXY(b GBox) (x, y float32) {
	centroid := geodetic.Point3D{
		X: float64(b.Xmin+b.Xmax) / 2,
		Y: float64(b.Ymin+b.Ymax) / 2,
		Z: float64(b.Zmin+b.Zmax) / 2,
	}

	unit := geodetic.Normalize(centroid)
	lon, lat := geodetic.Cart2Geog(unit)

	return float32(lon), float32(lat)
}

// interleave forms a Morton code: bit 2i of the result is bit i of x, bit
// 2i+1 is bit i of y.
func interleave(x, y uint32) uint64 {
	return spread(x) | (spread(y) << 1)
}

// spread is the portable five-step shift-and-mask bit interleave used when
// hardware bit-deposit instructions aren't available.
func spread(x uint32) uint64 {
	v := uint64(x)
	v = (v | (v << 16)) & 0x0000FFFF0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F0F0F0F0F
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555

	return v
}
