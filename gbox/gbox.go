package gbox

import (
	"math"

	"github.com/Ashutosh-Ya/pggeom/endian"
	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/flags"
)

// engine is the byte-order engine matching the host, since SerializedGeom
// carries no endianness flag of its own (see endian package docs).
var engine = hostEngine()

func hostEngine() endian.EndianEngine {
	if endian.IsNativeLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// GBox is the packed bounding box: always an X/Y axis pair, plus a third
// axis pair (geocentric Z when geodetic, else Z, else M) per the flags'
// precedence rule. ZMin/ZMax are zero-valued and unused when the flags
// carry no third axis.
type GBox struct {
	Xmin, Xmax float32
	Ymin, Ymax float32
	Zmin, Zmax float32
}

// Compute2D builds the X/Y portion of a GBox from exact f64 extrema,
// rounding each bound outward so the packed box conservatively covers the
// true envelope.
func Compute2D(xmin, xmax, ymin, ymax float64) GBox {
	return GBox{
		Xmin: NextFloatDown(xmin),
		Xmax: NextFloatUp(xmax),
		Ymin: NextFloatDown(ymin),
		Ymax: NextFloatUp(ymax),
	}
}

// SetThirdAxis rounds and stores the third axis pair (geocentric Z, Z, or
// M, depending on the flags a caller intends to encode with).
func (b *GBox) SetThirdAxis(min, max float64) {
	b.Zmin = NextFloatDown(min)
	b.Zmax = NextFloatUp(max)
}

// Encode appends the packed wire form of b to dst, writing 2 or 3 axis
// pairs depending on f.
func Encode(dst []byte, b GBox, f flags.Flags) []byte {
	dst = engine.AppendUint32(dst, math.Float32bits(b.Xmin))
	dst = engine.AppendUint32(dst, math.Float32bits(b.Xmax))
	dst = engine.AppendUint32(dst, math.Float32bits(b.Ymin))
	dst = engine.AppendUint32(dst, math.Float32bits(b.Ymax))

	if f.BBoxAxes() == 3 {
		dst = engine.AppendUint32(dst, math.Float32bits(b.Zmin))
		dst = engine.AppendUint32(dst, math.Float32bits(b.Zmax))
	}

	return dst
}

// Decode reads a packed GBox from the front of data, per f's axis count.
func Decode(data []byte, f flags.Flags) (GBox, error) {
	size := f.BBoxSize()
	if len(data) < size {
		return GBox{}, errs.ErrInvalidBBoxPayload
	}

	var b GBox
	b.Xmin = readF32(data[0:4])
	b.Xmax = readF32(data[4:8])
	b.Ymin = readF32(data[8:12])
	b.Ymax = readF32(data[12:16])

	if f.BBoxAxes() == 3 {
		b.Zmin = readF32(data[16:20])
		b.Zmax = readF32(data[20:24])
	}

	return b, nil
}

func readF32(b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}
