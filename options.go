package pggeom

import (
	"github.com/Ashutosh-Ya/pggeom/flags"
	"github.com/Ashutosh-Ya/pggeom/format"
	"github.com/Ashutosh-Ya/pggeom/internal/options"
)

// config holds every knob Serialize and Decode accept. Each operation
// reads only the fields relevant to it; this mirrors the teacher's single
// functional-options pattern (internal/options.Option[T]/Apply) shared
// across constructors that each use a subset of the same config shape.
type config struct {
	srid        int32
	forceBBox   *bool
	zeroCopy    bool
	compression format.CompressionType
	notice      func(string)
}

func defaultConfig() *config {
	return &config{
		srid:        flags.SRIDUnknown,
		compression: format.CompressionNone,
		notice:      func(string) {},
	}
}

// Option configures Serialize or a Blob's Decode.
type Option = options.Option[*config]

// WithSRID sets the SRID to encode. Out-of-range values are clamped per
// flags.ClampSRID and routed through the configured notice function.
func WithSRID(srid int32) Option {
	return options.NoError(func(c *config) { c.srid = srid })
}

// WithForceBBox overrides whether a bounding box is cached: true always
// includes one, false always omits it, superseding tree.NeedsBBox's
// default judgment call.
func WithForceBBox(v bool) Option {
	return options.NoError(func(c *config) { c.forceBBox = &v })
}

// WithZeroCopy selects whether a Blob's Decode aliases the blob's own
// bytes for vertex data (true) or copies them (false, the default). A
// zero-copy tree must not outlive the Blob it was decoded from.
func WithZeroCopy(v bool) Option {
	return options.NoError(func(c *config) { c.zeroCopy = v })
}

// WithCompression wraps Serialize's output in a toast envelope using the
// given algorithm, above toast's size threshold. It has no effect on
// Decode: a compressed blob must already be expanded via toast.Expand
// before it reaches Deserialize (spec Non-goals).
func WithCompression(algo format.CompressionType) Option {
	return options.NoError(func(c *config) { c.compression = algo })
}

// WithNotice installs a callback invoked whenever Serialize clamps an
// out-of-range SRID, mirroring the teacher's debug-gated logger hook.
func WithNotice(fn func(string)) Option {
	return options.NoError(func(c *config) { c.notice = fn })
}
