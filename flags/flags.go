package flags

// Flags is the packed one-byte field at header offset 7 describing a
// geometry's dimensionality and the cached sections that follow it.
type Flags uint8

const (
	// HasZ indicates each vertex carries a Z ordinate.
	HasZ Flags = 1 << 0
	// HasM indicates each vertex carries an M ordinate.
	HasM Flags = 1 << 1
	// HasBBox indicates a cached GBox precedes the body.
	HasBBox Flags = 1 << 2
	// Geodetic indicates coordinates are lon/lat on a sphere; the cached
	// bbox, when present, is held in 3D geocentric form.
	Geodetic Flags = 1 << 3
	// HasSolid is reserved and carried transparently; this codec neither
	// sets nor interprets it beyond round-tripping the bit.
	HasSolid Flags = 1 << 4
	// ReadOnly is advisory: an encoder may set it, but a decoder must
	// ignore it for every semantic decision.
	ReadOnly Flags = 1 << 5
)

// HasZ reports whether the Z-ordinate flag is set.
func (f Flags) HasZ() bool { return f&HasZ != 0 }

// HasM reports whether the M-ordinate flag is set.
func (f Flags) HasM() bool { return f&HasM != 0 }

// HasBBox reports whether a cached bounding box precedes the body.
func (f Flags) HasBBox() bool { return f&HasBBox != 0 }

// IsGeodetic reports whether coordinates are lon/lat on a sphere.
func (f Flags) IsGeodetic() bool { return f&Geodetic != 0 }

// HasSolid reports the reserved solid bit, carried but not acted on.
func (f Flags) HasSolid() bool { return f&HasSolid != 0 }

// IsReadOnly reports the advisory read-only bit.
func (f Flags) IsReadOnly() bool { return f&ReadOnly != 0 }

// SetHasZ sets or clears the Z-ordinate flag.
func (f *Flags) SetHasZ(v bool) { f.set(HasZ, v) }

// SetHasM sets or clears the M-ordinate flag.
func (f *Flags) SetHasM(v bool) { f.set(HasM, v) }

// SetHasBBox sets or clears the cached-bbox flag.
func (f *Flags) SetHasBBox(v bool) { f.set(HasBBox, v) }

// SetGeodetic sets or clears the geodetic flag.
func (f *Flags) SetGeodetic(v bool) { f.set(Geodetic, v) }

// SetReadOnly sets or clears the advisory read-only flag.
func (f *Flags) SetReadOnly(v bool) { f.set(ReadOnly, v) }

func (f *Flags) set(bit Flags, v bool) {
	if v {
		*f |= bit
	} else {
		*f &^= bit
	}
}

// NDims returns the coordinate dimensionality implied by the flags: 2, plus
// one for Z and one for M.
func (f Flags) NDims() int {
	n := 2
	if f.HasZ() {
		n++
	}
	if f.HasM() {
		n++
	}

	return n
}

// BBoxAxes returns the number of (min, max) axis pairs the packed GBox
// carries for these flags: 2 (X, Y) normally, 3 when a third axis is
// present (geocentric Z for geodetic, else Z, else M — spec §3.3's
// precedence rule).
func (f Flags) BBoxAxes() int {
	if f.IsGeodetic() || f.HasZ() || f.HasM() {
		return 3
	}

	return 2
}

// BBoxSize returns the byte size of the packed GBox these flags describe:
// 4 bytes per f32 ordinate, 2 ordinates (min, max) per axis.
func (f Flags) BBoxSize() int {
	return f.BBoxAxes() * 2 * 4
}
