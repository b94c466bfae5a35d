package pggeom

import (
	"bytes"
	"errors"

	"github.com/Ashutosh-Ya/pggeom/errs"
	"github.com/Ashutosh-Ya/pggeom/flags"
	"github.com/Ashutosh-Ya/pggeom/gbox"
	"github.com/Ashutosh-Ya/pggeom/tree"
)

// Cmp defines the total order spec §4.D's comparator uses for B-tree
// indexing: not a measure of spatial distance, only of determinism and
// rough quadrant locality. It returns -1, 0, or +1.
func Cmp(a, b Blob) (int, error) {
	ha, err := a.header()
	if err != nil {
		return 0, err
	}

	hb, err := b.header()
	if err != nil {
		return 0, err
	}

	if sign, ok := fastPathPointCmp(a, ha, b, hb); ok {
		return sign, nil
	}

	boxA, errA := a.GetGBox()
	boxB, errB := b.GetGBox()

	emptyA := errors.Is(errA, errs.ErrEmptyGeometry)
	emptyB := errors.Is(errB, errs.ErrEmptyGeometry)

	if errA != nil && !emptyA {
		return 0, errA
	}
	if errB != nil && !emptyB {
		return 0, errB
	}

	switch {
	case emptyA && !emptyB:
		return -1, nil
	case !emptyA && emptyB:
		return 1, nil
	}

	_, bodyA, err := a.body()
	if err != nil {
		return 0, err
	}

	_, bodyB, err := b.body()
	if err != nil {
		return 0, err
	}

	n := min(len(bodyA), len(bodyB))
	memcmp := bytes.Compare(bodyA[:n], bodyB[:n])

	if len(bodyA) == len(bodyB) && ha.SRID == hb.SRID && memcmp == 0 {
		return 0, nil
	}

	if errA == nil && errB == nil {
		hashA := gbox.SortableHash(boxA, ha.Flags)
		hashB := gbox.SortableHash(boxB, hb.Flags)
		if hashA != hashB {
			return signUint64(hashA, hashB), nil
		}

		if s := compareFloat32(boxA.Xmin, boxB.Xmin); s != 0 {
			return s, nil
		}
		if s := compareFloat32(boxA.Ymin, boxB.Ymin); s != 0 {
			return s, nil
		}
		if s := compareFloat32(boxA.Xmax, boxB.Xmax); s != 0 {
			return s, nil
		}
		if s := compareFloat32(boxA.Ymax, boxB.Ymax); s != 0 {
			return s, nil
		}
	}

	if memcmp == 0 && len(bodyA) != len(bodyB) {
		if len(bodyA) < len(bodyB) {
			return -1, nil
		}

		return 1, nil
	}

	return memcmp, nil
}

// fastPathPointCmp implements step 1 of Cmp: two bare (no cached bbox),
// non-empty Points sharing an SRID are ordered by the sortable hash of
// their doubled coordinates, without ever computing a full GBox. A false
// second return means the fast path was inconclusive (different SRID,
// equal hash, or not two bare points) and Cmp must fall through.
func fastPathPointCmp(a Blob, ha flags.Header, b Blob, hb flags.Header) (int, bool) {
	if ha.Flags.HasBBox() || hb.Flags.HasBBox() {
		return 0, false
	}
	if ha.SRID != hb.SRID {
		return 0, false
	}

	ta, err := a.GetType()
	if err != nil || ta != tree.Point {
		return 0, false
	}

	tb, err := b.GetType()
	if err != nil || tb != tree.Point {
		return 0, false
	}

	_, bodyA, err := a.body()
	if err != nil || len(bodyA) <= 16 {
		return 0, false
	}

	_, bodyB, err := b.body()
	if err != nil || len(bodyB) <= 16 {
		return 0, false
	}

	va, err := a.PeekFirstPoint()
	if err != nil {
		return 0, false
	}

	vb, err := b.PeekFirstPoint()
	if err != nil {
		return 0, false
	}

	boxA := gbox.Compute2D(va[0], va[0], va[1], va[1])
	boxB := gbox.Compute2D(vb[0], vb[0], vb[1], vb[1])
	hashA := gbox.SortableHash(boxA, flags.Flags(0))
	hashB := gbox.SortableHash(boxB, flags.Flags(0))

	if hashA == hashB {
		return 0, false
	}

	return signUint64(hashA, hashB), true
}

func signUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat32(a, b float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
