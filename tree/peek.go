package tree

import (
	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/gbox"
)

// PeekIsEmpty walks body's structural counts only — never vertex data —
// to decide emptiness per spec §4.D's peek_is_empty: a simple node is
// empty iff its count is zero, and a collection iff every child
// recursively is.
func PeekIsEmpty(body []byte, ndims int) (bool, error) {
	empty, _, err := peekIsEmptyNode(body, ndims)

	return empty, err
}

func peekIsEmptyNode(data []byte, ndims int) (bool, int, error) {
	if len(data) < 8 {
		return false, 0, errs.ErrTruncated
	}

	t := Type(engine.Uint32(data[0:4]))
	count := int(engine.Uint32(data[4:8]))

	switch {
	case t.isSimple():
		return count == 0, 8 + count*ndims*8, nil

	case t == Polygon:
		pad := 0
		if count%2 == 1 {
			pad = 4
		}
		cursor := 8 + count*4 + pad
		for i := 0; i < count; i++ {
			off := 8 + i*4
			n := int(engine.Uint32(data[off : off+4]))
			cursor += n * ndims * 8
		}

		return count == 0, cursor, nil

	default: // collection
		cursor := 8
		empty := true
		for i := 0; i < count; i++ {
			childEmpty, n, err := peekIsEmptyNode(data[cursor:], ndims)
			if err != nil {
				return false, 0, err
			}
			if !childEmpty {
				empty = false
			}

			cursor += n
		}

		return empty, cursor, nil
	}
}

// PeekGBox computes a tight GBox without decoding, succeeding only for the
// shapes spec §4.D names eligible: a non-empty Point, a two-vertex Line, a
// MultiPoint with exactly one non-empty Point child, or a MultiLine with
// exactly one two-vertex Line child. Callers are responsible for the
// "non-geodetic, no cached bbox" preconditions, which live at the header
// level this package doesn't see.
func PeekGBox(body []byte, ndims int) (gbox.GBox, error) {
	if len(body) < 8 {
		return gbox.GBox{}, errs.ErrTruncated
	}

	switch Type(engine.Uint32(body[0:4])) {
	case Point:
		return peekPointBox(body, ndims)
	case Line:
		return peekLineBox(body, ndims)
	case MultiPoint:
		return peekWrappedBox(body, ndims, Point, peekPointBox)
	case MultiLine:
		return peekWrappedBox(body, ndims, Line, peekLineBox)
	default:
		return gbox.GBox{}, errs.ErrPeekUnsupported
	}
}

func peekWrappedBox(body []byte, ndims int, want Type, inner func([]byte, int) (gbox.GBox, error)) (gbox.GBox, error) {
	count := int(engine.Uint32(body[4:8]))
	if count != 1 {
		return gbox.GBox{}, errs.ErrPeekUnsupported
	}

	child := body[8:]
	if len(child) < 4 || Type(engine.Uint32(child[0:4])) != want {
		return gbox.GBox{}, errs.ErrPeekUnsupported
	}

	return inner(child, ndims)
}

func peekPointBox(body []byte, ndims int) (gbox.GBox, error) {
	count := int(engine.Uint32(body[4:8]))
	if count != 1 {
		return gbox.GBox{}, errs.ErrPeekUnsupported
	}

	need := 8 + ndims*8
	if len(body) < need {
		return gbox.GBox{}, errs.ErrTruncated
	}

	v := readVertex(body[8:], ndims, 0)

	return gbox.Compute2D(v[0], v[0], v[1], v[1]), nil
}

func peekLineBox(body []byte, ndims int) (gbox.GBox, error) {
	count := int(engine.Uint32(body[4:8]))
	if count != 2 {
		return gbox.GBox{}, errs.ErrPeekUnsupported
	}

	need := 8 + 2*ndims*8
	if len(body) < need {
		return gbox.GBox{}, errs.ErrTruncated
	}

	v0 := readVertex(body[8:], ndims, 0)
	v1 := readVertex(body[8:], ndims, 1)
	xmin, xmax := min(v0[0], v1[0]), max(v0[0], v1[0])
	ymin, ymax := min(v0[1], v1[1]), max(v0[1], v1[1])

	return gbox.Compute2D(xmin, xmax, ymin, ymax), nil
}

func readVertex(ordBytes []byte, ndims, i int) []float64 {
	out := make([]float64, ndims)
	for k := 0; k < ndims; k++ {
		off := (i*ndims + k) * 8
		out[k] = floatFromBits(engine.Uint64(ordBytes[off : off+8]))
	}

	return out
}
