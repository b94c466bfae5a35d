// Package geodetic provides the small amount of spherical geometry math the
// codec's geodetic bounding-box branch needs: projecting a 3D geocentric
// point onto the unit sphere and back to a (lon, lat) pair.
//
// This mirrors the "geodetic math library" the core spec treats as an
// external pure-function collaborator (spec §1, §6) — here implemented
// concretely so gbox.SortableHash's geodetic branch has something real to
// call and test against.
package geodetic

import "math"

// Point3D is a Cartesian point, geocentric when it represents a geodetic
// coordinate (unit: multiples of the sphere's radius, usually 1.0 after
// Normalize).
type Point3D struct {
	X, Y, Z float64
}

// Normalize projects p onto the unit sphere, scaling it so its magnitude is
// 1. The zero point is returned unchanged — it has no direction to project.
func Normalize(p Point3D) Point3D {
	mag := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	if mag == 0 {
		return p
	}

	return Point3D{X: p.X / mag, Y: p.Y / mag, Z: p.Z / mag}
}

// Cart2Geog converts a (not necessarily normalized) 3D geocentric point to
// its (lon, lat) pair in radians. Longitude is measured from the X axis in
// the XY plane; latitude from the XY plane toward the Z axis.
func Cart2Geog(p Point3D) (lon, lat float64) {
	lon = math.Atan2(p.Y, p.X)
	lat = math.Atan2(p.Z, math.Hypot(p.X, p.Y))

	return lon, lat
}
