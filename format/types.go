// Package format defines the small set of wire-level enums shared by the
// codec and its optional storage layer.
package format

// CompressionType enumerates the body-compression algorithms the optional
// toast envelope (package toast) can apply to an encoded SerializedGeom.
// It never appears inside the SerializedGeom wire format itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone applies no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd uses Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 uses the S2 (Snappy-family) codec.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 uses LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
