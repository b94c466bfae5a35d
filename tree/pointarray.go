package tree

import "unsafe"

// PointArray is a flat list of vertices, each ndims float64 ordinates wide
// (X, Y, [Z], [M]), stored contiguously in ordinate order.
type PointArray struct {
	data  []float64
	ndims int
}

// Owned copies data into a new PointArray; the caller's slice may be
// reused or discarded afterward.
func Owned(data []float64, ndims int) PointArray {
	owned := make([]float64, len(data))
	copy(owned, data)

	return PointArray{data: owned, ndims: ndims}
}

// Borrowed builds a PointArray whose storage aliases raw, a native-endian
// []float64 view over blob bytes, exactly like the teacher's
// unsafeDecodeFloat64Slice: no copy is made, so the result must not outlive
// the blob it points into.
func Borrowed(raw []byte, ndims int) PointArray {
	if len(raw) == 0 {
		return PointArray{ndims: ndims}
	}

	n := len(raw) / 8
	data := unsafe.Slice((*float64)(unsafe.Pointer(&raw[0])), n)

	return PointArray{data: data, ndims: ndims}
}

// NumPoints returns the vertex count.
func (p PointArray) NumPoints() int {
	if p.ndims == 0 {
		return 0
	}

	return len(p.data) / p.ndims
}

// At returns the ordinates of vertex i, sharing storage with p.
func (p PointArray) At(i int) []float64 {
	off := i * p.ndims

	return p.data[off : off+p.ndims]
}

// Raw exposes the flat ordinate slice, e.g. for bulk encoding.
func (p PointArray) Raw() []float64 {
	return p.data
}

// IsEmpty reports whether the array carries zero vertices.
func (p PointArray) IsEmpty() bool {
	return p.NumPoints() == 0
}
