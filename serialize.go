package pggeom

import (
	"fmt"

	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/flags"
	"github.com/Ashutosh-Ya/pggeom/format"
	"github.com/Ashutosh-Ya/pggeom/gbox"
	"github.com/Ashutosh-Ya/pggeom/internal/options"
	"github.com/Ashutosh-Ya/pggeom/internal/pool"
	"github.com/Ashutosh-Ya/pggeom/toast"
	"github.com/Ashutosh-Ya/pggeom/tree"
)

// toastThreshold is the body size above which WithCompression actually
// compresses Serialize's output, rather than paying a codec's fixed
// overhead on a value too small to benefit.
const toastThreshold = 256

// Serialize encodes g into a SerializedGeom, computing and caching a
// bounding box when tree.NeedsBBox judges it worthwhile (or when
// WithForceBBox overrides that judgment). f supplies the dimensionality
// and geodetic bits; has_bbox is decided here and may be altered in the
// returned bytes regardless of f's input value.
//
// The returned bool reports whether the bytes were toast-compressed
// (WithCompression); a caller must expand them with toast.Expand before
// passing them to Deserialize or any Blob accessor.
func Serialize(g tree.Geom, f flags.Flags, opts ...Option) (data []byte, wasCompressed bool, err error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, false, err
	}

	srid, clamped := flags.ClampSRID(cfg.srid)
	if clamped {
		cfg.notice(fmt.Sprintf("pggeom: srid %d clamped to %d", cfg.srid, srid))
	}

	includeBBox := tree.NeedsBBox(g)
	if cfg.forceBBox != nil {
		includeBBox = *cfg.forceBBox
	}
	f.SetHasBBox(includeBBox)

	var box gbox.GBox
	if includeBBox {
		box, err = tree.CalculateGBox(g, f.IsGeodetic())
		if err != nil {
			return nil, false, err
		}
	}

	bodySize := tree.BodySize(g)
	bboxSize := 0
	if includeBBox {
		bboxSize = f.BBoxSize()
	}
	total := flags.HeaderSize + bboxSize + bodySize

	header := flags.Header{Size: uint32(total), SRID: srid, Flags: f}

	buf := pool.GetGeomBuffer()
	defer pool.PutGeomBuffer(buf)

	buf.MustWrite(header.Bytes())
	if includeBBox {
		buf.B = gbox.Encode(buf.B, box, f)
	}

	buf.B, err = tree.Encode(buf.B, g, f.NDims())
	if err != nil {
		return nil, false, err
	}
	if buf.Len() != total {
		return nil, false, errs.ErrSizeMismatch
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	if cfg.compression == format.CompressionNone {
		return out, false, nil
	}

	compressed, wasCompressed, err := toast.Compact(out, cfg.compression, toastThreshold)
	if err != nil {
		return nil, false, err
	}

	return compressed, wasCompressed, nil
}
