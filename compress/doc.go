// Package compress provides compression and decompression codecs for the
// optional toast envelope (package toast) wrapped around an encoded
// SerializedGeom body.
//
// # Overview
//
// Geometry bodies are not compressed by the wire format itself — the core
// codec (packages flags, gbox, tree) never reaches for these algorithms.
// Compression is an outer, optional envelope a caller applies before handing
// bytes to a storage layer, and undoes before calling Deserialize. This
// mirrors how PostgreSQL TOASTs over-threshold varlena values: the inner
// representation is untouched, only the on-disk/on-wire framing changes.
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone) — returns input unchanged, zero
// allocation. Use when a body is already small or incompressible (e.g. a
// simple Point).
//
// **Zstandard** (format.CompressionZstd) — best compression ratio, moderate
// speed. Good for large polygons or collections with many rings/children
// that are written once and read rarely.
//
// **S2** (format.CompressionS2) — Snappy-family codec, balanced speed and
// ratio. Good default for a mixed workload of small and large geometries.
//
// **LZ4** (format.CompressionLZ4) — fastest decompression, moderate ratio.
// Good when geometries are read far more often than they are toasted.
//
// # Algorithm Selection Guide
//
// | Workload                | Recommended | Reason                         |
// |--------------------------|-------------|---------------------------------|
// | Mostly small geometries | None        | Avoid overhead below threshold  |
// | Large polygon archives  | Zstd        | Best ratio                      |
// | Mixed read/write        | S2          | Balanced                        |
// | Read-heavy cache        | LZ4         | Fastest decompression           |
//
// # Memory Management
//
// LZ4 pools its compressor state (sync.Pool) to avoid per-call allocation;
// LZ4 decompression uses no pooled state. The pure-Go Zstd build (without
// cgo) pools its encoders and decoders; the cgo Zstd build, S2 and NoOp use
// no pooled state.
//
// # Thread Safety
//
// All codec implementations are safe to share across goroutines.
//
// # Integration with toast
//
// The toast package selects a Codec via CreateCodec based on a
// format.CompressionType and a size threshold:
//
//	body, wasCompressed, err := toast.Compact(encoded, format.CompressionZstd, 2048)
//	...
//	original, err := toast.Expand(body, wasCompressed, format.CompressionZstd)
package compress
