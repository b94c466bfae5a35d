package wkt

import (
	"sync"

	"github.com/Ashutosh-Ya/pggeom/internal/xhash"
	"github.com/Ashutosh-Ya/pggeom/tree"
)

var renderCache sync.Map // map[cacheKey]string

type cacheKey struct {
	hash      uint64
	precision int
}

// RenderCached behaves like Render, but memoizes by xhash.Sum over key
// (ToDebugString passes the whole blob), combined with precision, so re-rendering
// the same value at the same precision within a process is free after the
// first call. Collisions in the 64-bit hash are astronomically unlikely but
// would return another value's WKT; callers needing a correctness guarantee
// beyond that should call Render directly.
func RenderCached(key []byte, g tree.Geom, precision int) string {
	ck := cacheKey{hash: xhash.Sum(key), precision: precision}

	if v, ok := renderCache.Load(ck); ok {
		return v.(string)
	}

	out := Render(g, precision)
	renderCache.Store(ck, out)

	return out
}
