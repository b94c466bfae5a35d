// Package toast implements the optional out-of-line compression envelope a
// host storage layer can wrap around an encoded SerializedGeom, the same
// role PostgreSQL's own TOAST subsystem plays for large varlena values:
// the wire format itself (package flags/gbox/tree and root pggeom) never
// sees or cares whether its bytes arrived compressed.
package toast

import (
	"fmt"

	"github.com/Ashutosh-Ya/pggeom/compress"
	"github.com/Ashutosh-Ya/pggeom/format"
	"github.com/Ashutosh-Ya/pggeom/internal/pool"
)

// Compact compresses body with the given algorithm if doing so is likely
// to pay for itself: bodies below threshold bytes are left untouched, and
// a compressed result that isn't smaller than the original is discarded.
// The second return value reports whether compression was actually
// applied; a caller must pass it back to Expand.
func Compact(body []byte, algo format.CompressionType, threshold int) ([]byte, bool, error) {
	if len(body) < threshold || algo == format.CompressionNone {
		return body, false, nil
	}

	codec, err := compress.CreateCodec(algo, "toast")
	if err != nil {
		return nil, false, fmt.Errorf("toast: %w", err)
	}

	buf := pool.GetToastBuffer()
	defer pool.PutToastBuffer(buf)

	compressed, err := codec.Compress(body)
	if err != nil {
		return nil, false, fmt.Errorf("toast: compress: %w", err)
	}

	if len(compressed) >= len(body) {
		return body, false, nil
	}

	buf.MustWrite(compressed)
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, true, nil
}

// Expand reverses Compact: if wasCompressed is false, body is returned
// unchanged; otherwise it is decompressed with algo.
func Expand(body []byte, wasCompressed bool, algo format.CompressionType) ([]byte, error) {
	if !wasCompressed {
		return body, nil
	}

	codec, err := compress.CreateCodec(algo, "toast")
	if err != nil {
		return nil, fmt.Errorf("toast: %w", err)
	}

	out, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("toast: decompress: %w", err)
	}

	return out, nil
}
