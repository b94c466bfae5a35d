// Package gbox implements component B of the codec: the packed bounding
// box (GBox), its outward-rounded f32 wire form, and the sortable Morton
// centroid hash used to order geometries without decoding them.
//
// # Packed layout
//
//	axes         bytes  fields
//	X, Y         16     xmin, xmax, ymin, ymax (f32, outward-rounded)
//	+ Z or M     24     ... zmin, zmax (f32, outward-rounded)
//
// Which third axis — geocentric Z (geodetic), plain Z, or M — is
// determined entirely by flags.Flags.BBoxAxes(); GBox itself stores
// whichever one applies in the same Zmin/Zmax fields.
package gbox
