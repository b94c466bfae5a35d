package pggeom

import (
	"fmt"

	"github.com/Ashutosh-Ya/pggeom/wkt"
)

// ToDebugString renders b as "SRID=<srid>;<WKT>", decoding zero-copy since
// the tree never escapes this call. b is decoded on every call; only the
// WKT rendering is memoized per process, keyed by the content hash of b's
// bytes and the precision (package wkt).
func ToDebugString(b Blob, precision int) (string, error) {
	srid, err := b.GetSRID()
	if err != nil {
		return "", err
	}

	g, err := b.Decode(WithZeroCopy(true))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("SRID=%d;%s", srid, wkt.RenderCached(b, g, precision)), nil
}
