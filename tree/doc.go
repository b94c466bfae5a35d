// Package tree implements component C of the codec: the in-memory Geom
// tree, its size oracle, and the recursive encoder/decoder for the
// [type][count] node format described in spec §4.C.
//
// # Node layout
//
//	offset  bytes  field
//	0       4      type    (Type)
//	4       4      count   (npoints / nrings / nchildren, depending on type)
//	8       ...    body    (vertex data, ring table + vertex data, or
//	                        concatenated child nodes)
//
// Polygon is the one variant with internal structure between its header
// and its vertex data: a ring-count table (one u32 per ring), padded to an
// 8-byte boundary with a 4-byte word when the ring count is odd, then each
// ring's vertex block in order.
package tree
