package tree

import (
	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/gbox"
)

// NeedsBBox reports whether g is worth caching a bounding box for. A
// single Point or a two-vertex Line is exactly as cheap to re-derive on
// demand as to cache (they're also the non-geodetic peek_gbox-eligible
// shapes of spec §4.D), so caching one is wasted space; anything larger
// benefits from the cache.
func NeedsBBox(g Geom) bool {
	switch g.Type {
	case Point:
		return false
	case Line:
		return !g.IsEmpty() && g.Points.NumPoints() != 2
	default:
		return !g.IsEmpty()
	}
}

// CalculateGBox walks g's full vertex set and computes its tight,
// outward-rounded bounding box. geodetic selects whether a third
// (geocentric Z) axis is tracked instead of Z/M. It returns
// errs.ErrEmptyGeometry for an empty g, since there are no vertices to
// bound — callers must not treat a degenerate zero box as a valid result.
func CalculateGBox(g Geom, geodetic bool) (gbox.GBox, error) {
	if g.IsEmpty() {
		return gbox.GBox{}, errs.ErrEmptyGeometry
	}

	c := &collector{}
	c.visit(g)

	box := gbox.Compute2D(c.xmin, c.xmax, c.ymin, c.ymax)
	if geodetic || g.NDims >= 3 {
		box.SetThirdAxis(c.zmin, c.zmax)
	}

	return box, nil
}

type collector struct {
	seen                                   bool
	xmin, xmax, ymin, ymax, zmin, zmax float64
}

func (c *collector) visit(g Geom) {
	switch {
	case g.Type.isSimple():
		for i := 0; i < g.Points.NumPoints(); i++ {
			c.observe(g.Points.At(i))
		}
	case g.Type == Polygon:
		for _, r := range g.Rings {
			for i := 0; i < r.NumPoints(); i++ {
				c.observe(r.At(i))
			}
		}
	default:
		for _, child := range g.children {
			c.visit(child)
		}
	}
}

func (c *collector) observe(v []float64) {
	x, y := v[0], v[1]
	z := 0.0
	if len(v) > 2 {
		z = v[2]
	}

	if !c.seen {
		c.xmin, c.xmax = x, x
		c.ymin, c.ymax = y, y
		c.zmin, c.zmax = z, z
		c.seen = true

		return
	}

	c.xmin, c.xmax = min(c.xmin, x), max(c.xmax, x)
	c.ymin, c.ymax = min(c.ymin, y), max(c.ymax, y)
	c.zmin, c.zmax = min(c.zmin, z), max(c.zmax, z)
}
