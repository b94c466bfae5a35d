package tree

// BodySize computes the exact on-wire byte size of g's body, recursively,
// per spec §4.C's size oracle table. Serialize writes the header's size
// field from it and rejects an encoding whose length differs
// (errs.ErrSizeMismatch); Decode does not check its consumption against it.
func BodySize(g Geom) int {
	switch {
	case g.Type.isSimple():
		return 8 + g.Points.NumPoints()*g.NDims*8

	case g.Type == Polygon:
		n := len(g.Rings)
		size := 8
		if n%2 == 1 {
			size += 4
		}
		for _, r := range g.Rings {
			size += 4 + r.NumPoints()*g.NDims*8
		}

		return size

	default: // collection
		size := 8
		for _, c := range g.children {
			size += BodySize(c)
		}

		return size
	}
}
