// Package pggeom implements component D of the codec — peek accessors and
// the comparator — on top of flags, gbox, and tree, tying the whole
// SerializedGeom format together (spec §4.D).
package pggeom

import (
	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/flags"
	"github.com/Ashutosh-Ya/pggeom/gbox"
	"github.com/Ashutosh-Ya/pggeom/internal/options"
	"github.com/Ashutosh-Ya/pggeom/tree"
)

// HeaderSize is the fixed size of every blob's size/SRID/flags header,
// before any bbox.
const HeaderSize = flags.HeaderSize

// MaxHeaderSize is the largest possible header_size(): the fixed header
// plus the biggest packed GBox.
const MaxHeaderSize = flags.MaxHeaderSize

// Blob is an immutable, already-encoded SerializedGeom buffer. Every
// accessor on it is read-only and touches only as many bytes as it needs.
type Blob []byte

// header parses the fixed 8-byte header at the front of b.
func (b Blob) header() (flags.Header, error) {
	if b == nil {
		return flags.Header{}, errs.ErrNullInput
	}

	return flags.ParseHeader(b)
}

// GetSRID returns the blob's spatial reference id.
func (b Blob) GetSRID() (int32, error) {
	h, err := b.header()
	if err != nil {
		return 0, err
	}

	return h.SRID, nil
}

// SetSRID returns a copy of b with its SRID replaced (a blob is immutable
// once produced, so this never mutates b in place). srid is clamped with
// flags.ClampSRID; unlike Serialize, SetSRID raises no notice when it clamps.
func (b Blob) SetSRID(srid int32) (Blob, error) {
	h, err := b.header()
	if err != nil {
		return nil, err
	}

	srid, _ = flags.ClampSRID(srid)
	h.SRID = srid

	out := make(Blob, len(b))
	copy(out, b)
	copy(out[4:7], h.Bytes()[4:7])

	return out, nil
}

// HasZ reports whether b's vertices carry a Z ordinate.
func (b Blob) HasZ() (bool, error) {
	h, err := b.header()
	if err != nil {
		return false, err
	}

	return h.Flags.HasZ(), nil
}

// HasM reports whether b's vertices carry an M ordinate.
func (b Blob) HasM() (bool, error) {
	h, err := b.header()
	if err != nil {
		return false, err
	}

	return h.Flags.HasM(), nil
}

// HasBBox reports whether b carries a cached bounding box.
func (b Blob) HasBBox() (bool, error) {
	h, err := b.header()
	if err != nil {
		return false, err
	}

	return h.Flags.HasBBox(), nil
}

// IsGeodetic reports whether b's coordinates are lon/lat on a sphere.
func (b Blob) IsGeodetic() (bool, error) {
	h, err := b.header()
	if err != nil {
		return false, err
	}

	return h.Flags.IsGeodetic(), nil
}

// NDims returns b's coordinate dimensionality.
func (b Blob) NDims() (int, error) {
	h, err := b.header()
	if err != nil {
		return 0, err
	}

	return h.Flags.NDims(), nil
}

// body returns the slice of b past the header and any cached bbox, along
// with the parsed header.
func (b Blob) body() (flags.Header, []byte, error) {
	h, err := b.header()
	if err != nil {
		return flags.Header{}, nil, err
	}

	off := h.BodyOffset()
	if len(b) < off {
		return flags.Header{}, nil, errs.ErrTruncated
	}

	return h, b[off:], nil
}

// GetType returns the 4-byte type tag located immediately after the
// optional bbox, without touching the body further.
func (b Blob) GetType() (tree.Type, error) {
	_, body, err := b.body()
	if err != nil {
		return 0, err
	}
	if len(body) < 4 {
		return 0, errs.ErrTruncated
	}

	return tree.Type(nativeEngine.Uint32(body[0:4])), nil
}

// cachedGBox reads b's cached bbox, if it carries one.
func (b Blob) cachedGBox() (gbox.GBox, bool, error) {
	h, err := b.header()
	if err != nil {
		return gbox.GBox{}, false, err
	}
	if !h.Flags.HasBBox() {
		return gbox.GBox{}, false, nil
	}

	box, err := gbox.Decode(b[HeaderSize:], h.Flags)
	if err != nil {
		return gbox.GBox{}, false, err
	}

	return box, true, nil
}

// Decode fully decodes b into a tree.Geom. WithZeroCopy controls whether
// vertex data aliases b's own bytes; a zero-copy tree must not outlive b.
func (b Blob) Decode(opts ...Option) (tree.Geom, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return tree.Geom{}, err
	}

	h, body, err := b.body()
	if err != nil {
		return tree.Geom{}, err
	}

	g, _, err := tree.Decode(body, h.Flags.NDims(), cfg.zeroCopy)

	return g, err
}

// IsEmpty reports emptiness by walking the tree's structural counts only
// (spec §4.D's peek_is_empty): no vertex data is ever touched.
func (b Blob) IsEmpty() (bool, error) {
	h, body, err := b.body()
	if err != nil {
		return false, err
	}

	return tree.PeekIsEmpty(body, h.Flags.NDims())
}

// Copy returns an independent byte-for-byte duplicate of b.
func (b Blob) Copy() Blob {
	out := make(Blob, len(b))
	copy(out, b)

	return out
}
