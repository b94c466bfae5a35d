// Package flags implements component A of the codec: the packed flag byte,
// the 21-bit SRID field and its clamping rules, and the fixed 8-byte header
// that starts every SerializedGeom.
//
// # Header layout
//
//	offset  bytes  field
//	0       4      size_varlen  (length<<2 | 2 opaque varlena bits)
//	4       3      srid_packed  (21-bit two's complement, big-endian nibble order)
//	7       1      flags        (Flags, see flags.go)
//
// Everything past offset 8 — the optional bbox and the body — is outside
// this package's concern; Header.BodyOffset answers where it starts.
package flags
