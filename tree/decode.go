package tree

import (
	"fmt"

	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/internal/pool"
)

// Decode reads one tree node — and, for collections, its whole subtree —
// from the front of data, per spec §4.C. ndims is the dimensionality the
// enclosing SerializedGeom's flags declare. zeroCopy selects whether
// vertex arrays alias data (PointArray.Borrowed) or are copied
// (PointArray.Owned); a decoder passing zeroCopy=true must not let the
// returned Geom outlive data.
//
// It returns the decoded node and the number of bytes consumed, which a
// caller can verify against BodySize for decode-then-encode round trips.
func Decode(data []byte, ndims int, zeroCopy bool) (Geom, int, error) {
	if len(data) < 8 {
		return Geom{}, 0, errs.ErrTruncated
	}

	t := Type(engine.Uint32(data[0:4]))
	count := int(engine.Uint32(data[4:8]))

	switch {
	case t.isSimple():
		return decodeSimple(data, t, ndims, count, zeroCopy)
	case t == Polygon:
		return decodePolygon(data, ndims, count, zeroCopy)
	case t.isCollection():
		return decodeCollection(data, t, ndims, count, zeroCopy)
	default:
		return Geom{}, 0, errs.ErrUnknownType
	}
}

func decodeSimple(data []byte, t Type, ndims, count int, zeroCopy bool) (Geom, int, error) {
	need := 8 + count*ndims*8
	if len(data) < need {
		return Geom{}, 0, errs.ErrTruncated
	}

	pts := decodePoints(data[8:need], ndims, count, zeroCopy)

	return Geom{Type: t, NDims: ndims, Points: pts}, need, nil
}

func decodePolygon(data []byte, ndims, nrings int, zeroCopy bool) (Geom, int, error) {
	pad := 0
	if nrings%2 == 1 {
		pad = 4
	}

	tableEnd := 8 + nrings*4
	if len(data) < tableEnd+pad {
		return Geom{}, 0, errs.ErrTruncated
	}

	ringCounts := make([]int, nrings)
	for i := 0; i < nrings; i++ {
		off := 8 + i*4
		ringCounts[i] = int(engine.Uint32(data[off : off+4]))
	}

	cursor := tableEnd + pad
	rings := make([]PointArray, nrings)
	for i, n := range ringCounts {
		need := n * ndims * 8
		if len(data) < cursor+need {
			return Geom{}, 0, errs.ErrTruncated
		}

		rings[i] = decodePoints(data[cursor:cursor+need], ndims, n, zeroCopy)
		cursor += need
	}

	return Geom{Type: Polygon, NDims: ndims, Rings: rings}, cursor, nil
}

func decodeCollection(data []byte, t Type, ndims, nchildren int, zeroCopy bool) (Geom, int, error) {
	cursor := 8
	children := make([]Geom, nchildren)

	for i := 0; i < nchildren; i++ {
		if cursor > len(data) {
			return Geom{}, 0, errs.ErrTruncated
		}

		child, n, err := Decode(data[cursor:], ndims, zeroCopy)
		if err != nil {
			return Geom{}, 0, err
		}
		if !IsAllowedChild(t, child.Type) {
			return Geom{}, 0, fmt.Errorf("tree: %s cannot contain %s: %w", t, child.Type, errs.ErrInvalidSubtype)
		}

		children[i] = child
		cursor += n
	}

	return Geom{Type: t, NDims: ndims, children: children}, cursor, nil
}

func decodePoints(ordinateBytes []byte, ndims, count int, zeroCopy bool) PointArray {
	if zeroCopy {
		return Borrowed(ordinateBytes, ndims)
	}

	scratch, cleanup := pool.GetFloat64Slice(count * ndims)
	defer cleanup()

	for i := range scratch {
		off := i * 8
		scratch[i] = floatFromBits(engine.Uint64(ordinateBytes[off : off+8]))
	}

	return Owned(scratch, ndims)
}
