package pggeom

import (
	"math"

	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/gbox"
	"github.com/Ashutosh-Ya/pggeom/tree"
)

// Deserialize fully decodes data into a tree.Geom; it is a convenience
// wrapper over Blob(data).Decode.
func Deserialize(data []byte, opts ...Option) (tree.Geom, error) {
	return Blob(data).Decode(opts...)
}

// PeekGBox computes a tight GBox without decoding the body, succeeding
// only for the shapes spec §4.D names eligible (non-geodetic, no cached
// bbox): a non-empty Point, a two-vertex Line, a MultiPoint with exactly
// one non-empty Point child, or a MultiLine with exactly one two-vertex
// Line child. The box is outward-rounded to f32 for compatibility with a
// cached bbox's precision.
func (b Blob) PeekGBox() (gbox.GBox, error) {
	h, body, err := b.body()
	if err != nil {
		return gbox.GBox{}, err
	}
	if h.Flags.IsGeodetic() || h.Flags.HasBBox() {
		return gbox.GBox{}, errs.ErrPeekUnsupported
	}

	return tree.PeekGBox(body, h.Flags.NDims())
}

// GetGBox is the unified bbox accessor: it returns the cached bbox if b
// has one, else tries PeekGBox, else falls back to a full decode and
// computes the box from the resulting tree.
func (b Blob) GetGBox() (gbox.GBox, error) {
	if box, ok, err := b.cachedGBox(); err != nil {
		return gbox.GBox{}, err
	} else if ok {
		return box, nil
	}

	if box, err := b.PeekGBox(); err == nil {
		return box, nil
	}

	h, err := b.header()
	if err != nil {
		return gbox.GBox{}, err
	}

	g, err := b.Decode()
	if err != nil {
		return gbox.GBox{}, err
	}

	return tree.CalculateGBox(g, h.Flags.IsGeodetic())
}

// PeekFirstPoint reads the first vertex directly out of a Point-typed
// blob's body, without touching anything else. It returns
// errs.ErrPeekUnsupported for any other shape, including an empty Point
// (which, per invariant 4 of spec §3.5, has no coordinates to return).
func (b Blob) PeekFirstPoint() ([]float64, error) {
	h, body, err := b.body()
	if err != nil {
		return nil, err
	}
	if len(body) < 8 {
		return nil, errs.ErrTruncated
	}
	if tree.Type(nativeEngine.Uint32(body[0:4])) != tree.Point {
		return nil, errs.ErrPeekUnsupported
	}

	count := int(nativeEngine.Uint32(body[4:8]))
	if count == 0 {
		return nil, errs.ErrPeekUnsupported
	}

	ndims := h.Flags.NDims()
	need := 8 + ndims*8
	if len(body) < need {
		return nil, errs.ErrTruncated
	}

	v := make([]float64, ndims)
	for i := 0; i < ndims; i++ {
		off := 8 + i*8
		v[i] = math.Float64frombits(nativeEngine.Uint64(body[off : off+8]))
	}

	return v, nil
}
