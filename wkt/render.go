// Package wkt renders a tree.Geom as Well-Known Text, playing the role
// spec.md leaves to an external "to_wkt" collaborator (§1, §6) — used by
// the root package's ToDebugString. Grounded on SAP-go-hdb's wkt.go
// (bracket/comma-list writer, capped-precision float formatting), adapted
// from its reflect-driven Geometry dispatch to a direct switch over
// tree.Type.
package wkt

import (
	"strconv"
	"strings"

	"github.com/Ashutosh-Ya/pggeom/tree"
)

// Render writes g as WKT, formatting ordinates with up to precision
// significant digits.
func Render(g tree.Geom, precision int) string {
	var b strings.Builder
	writeTyped(&b, g, precision)

	return b.String()
}

func typeName(t tree.Type) string {
	switch t {
	case tree.Point:
		return "POINT"
	case tree.Line:
		return "LINESTRING"
	case tree.CircularString:
		return "CIRCULARSTRING"
	case tree.Triangle:
		return "TRIANGLE"
	case tree.Polygon:
		return "POLYGON"
	case tree.MultiPoint:
		return "MULTIPOINT"
	case tree.MultiLine:
		return "MULTILINESTRING"
	case tree.MultiPolygon:
		return "MULTIPOLYGON"
	case tree.CompoundCurve:
		return "COMPOUNDCURVE"
	case tree.CurvePolygon:
		return "CURVEPOLYGON"
	case tree.MultiCurve:
		return "MULTICURVE"
	case tree.MultiSurface:
		return "MULTISURFACE"
	case tree.PolyhedralSurface:
		return "POLYHEDRALSURFACE"
	case tree.Tin:
		return "TIN"
	case tree.Collection:
		return "GEOMETRYCOLLECTION"
	default:
		return "GEOMETRY"
	}
}

// bareChildren lists the collection types whose WKT children are plain
// coordinate groups, with no repeated type name.
func bareChildren(t tree.Type) bool {
	switch t {
	case tree.MultiPoint, tree.MultiLine, tree.MultiPolygon:
		return true
	default:
		return false
	}
}

func writeTyped(b *strings.Builder, g tree.Geom, precision int) {
	b.WriteString(typeName(g.Type))
	b.WriteByte(' ')
	writeBody(b, g, precision)
}

func writeBody(b *strings.Builder, g tree.Geom, precision int) {
	switch {
	case g.Type == tree.Point:
		if g.IsEmpty() {
			b.WriteString("EMPTY")

			return
		}

		b.WriteByte('(')
		writeCoord(b, g.Points.At(0), precision)
		b.WriteByte(')')

	case g.Type == tree.Line || g.Type == tree.CircularString || g.Type == tree.Triangle:
		writeCoordList(b, g.Points, precision)

	case g.Type == tree.Polygon:
		if len(g.Rings) == 0 {
			b.WriteString("EMPTY")

			return
		}

		b.WriteByte('(')
		for i, r := range g.Rings {
			if i > 0 {
				b.WriteByte(',')
			}

			writeCoordList(b, r, precision)
		}
		b.WriteByte(')')

	default: // every collection type
		writeChildren(b, g, precision)
	}
}

func writeCoordList(b *strings.Builder, pts tree.PointArray, precision int) {
	if pts.IsEmpty() {
		b.WriteString("EMPTY")

		return
	}

	b.WriteByte('(')
	for i := 0; i < pts.NumPoints(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}

		writeCoord(b, pts.At(i), precision)
	}
	b.WriteByte(')')
}

func writeChildren(b *strings.Builder, g tree.Geom, precision int) {
	if g.NumChildren() == 0 {
		b.WriteString("EMPTY")

		return
	}

	bare := bareChildren(g.Type)

	b.WriteByte('(')
	i := 0
	for c := range g.Children() {
		if i > 0 {
			b.WriteByte(',')
		}

		if bare {
			writeBody(b, c, precision)
		} else {
			writeTyped(b, c, precision)
		}

		i++
	}
	b.WriteByte(')')
}

func writeCoord(b *strings.Builder, ords []float64, precision int) {
	for i, v := range ords {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(formatFloat(v, precision))
	}
}

func formatFloat(v float64, precision int) string {
	if precision <= 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', precision, 64)
}
