package tree

import (
	"fmt"

	"github.com/Ashutosh-Ya/pggeom/endian"
	"github.com/Ashutosh-Ya/pggeom/errs"
)

var engine = hostEngine()

func hostEngine() endian.EndianEngine {
	if endian.IsNativeLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Encode appends g's body — header, counts, and vertex data — to dst per
// spec §4.C. ndims is the dimensionality the enclosing SerializedGeom's
// flags declare; every node in the tree, recursively, must agree with it.
func Encode(dst []byte, g Geom, ndims int) ([]byte, error) {
	if g.NDims != ndims {
		return nil, fmt.Errorf("tree: node %s: %w", g.Type, errs.ErrDimensionMismatch)
	}

	switch {
	case g.Type.isSimple():
		return encodeSimple(dst, g), nil

	case g.Type == Polygon:
		return encodePolygon(dst, g), nil

	default:
		return encodeCollection(dst, g, ndims)
	}
}

func encodeSimple(dst []byte, g Geom) []byte {
	dst = engine.AppendUint32(dst, uint32(g.Type))
	dst = engine.AppendUint32(dst, uint32(g.Points.NumPoints()))

	return appendOrdinates(dst, g.Points.Raw())
}

func encodePolygon(dst []byte, g Geom) []byte {
	dst = engine.AppendUint32(dst, uint32(Polygon))
	dst = engine.AppendUint32(dst, uint32(len(g.Rings)))

	for _, r := range g.Rings {
		dst = engine.AppendUint32(dst, uint32(r.NumPoints()))
	}

	if len(g.Rings)%2 == 1 {
		dst = engine.AppendUint32(dst, 0) // 4-byte alignment pad
	}

	for _, r := range g.Rings {
		dst = appendOrdinates(dst, r.Raw())
	}

	return dst
}

func encodeCollection(dst []byte, g Geom, ndims int) ([]byte, error) {
	dst = engine.AppendUint32(dst, uint32(g.Type))
	dst = engine.AppendUint32(dst, uint32(g.NumChildren()))

	for _, c := range g.children {
		if !IsAllowedChild(g.Type, c.Type) {
			return nil, fmt.Errorf("tree: %s cannot contain %s: %w", g.Type, c.Type, errs.ErrInvalidSubtype)
		}

		var err error
		dst, err = Encode(dst, c, ndims)
		if err != nil {
			return nil, err
		}
	}

	return dst, nil
}

func appendOrdinates(dst []byte, ords []float64) []byte {
	for _, v := range ords {
		dst = engine.AppendUint64(dst, floatBits(v))
	}

	return dst
}
