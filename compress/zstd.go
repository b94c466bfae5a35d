package compress

// ZstdCompressor provides Zstandard compression, favoring ratio over speed.
//
// Good fit for a TOAST-style envelope (package toast) around large,
// infrequently-decoded geometry bodies: polygons with many rings or big
// collections compress well and are read far less often than written.
//
// The actual Compress/Decompress methods live in zstd_pure.go (pure Go,
// build tag !cgo) or zstd_cgo.go (gozstd bindings, build tag cgo).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
