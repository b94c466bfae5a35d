// Package errs holds the sentinel errors shared across pggeom's packages.
package errs

import "errors"

// Header/flags errors (flags, gbox).
var (
	ErrInvalidHeaderSize  = errors.New("pggeom: invalid header size")
	ErrInvalidHeaderFlags = errors.New("pggeom: invalid header flags")
	ErrInvalidMagicNumber = errors.New("pggeom: invalid magic number")
	ErrInvalidSRID        = errors.New("pggeom: invalid srid")
	ErrInvalidBBoxPayload = errors.New("pggeom: invalid bbox payload")
)

// Geometry tree codec errors (tree, gbox, root package) — the error kinds
// from the format's error handling design.
var (
	// ErrDimensionMismatch: a parent's (Z,M) flags disagree with a child
	// or vertex array's dimensionality. Fatal.
	ErrDimensionMismatch = errors.New("pggeom: dimension mismatch")
	// ErrUnknownType: a type code is not in the recognized set. Fatal.
	ErrUnknownType = errors.New("pggeom: unknown geometry type")
	// ErrInvalidSubtype: a collection contains a subtype the compatibility
	// table forbids. Fatal.
	ErrInvalidSubtype = errors.New("pggeom: invalid collection subtype")
	// ErrSizeMismatch: the encoder's cursor did not match the size oracle's
	// prediction. Fatal.
	ErrSizeMismatch = errors.New("pggeom: encoded size mismatch")
	// ErrPeekUnsupported: the blob's shape is too complex for peek_gbox.
	// Recoverable; callers fall back to full decode.
	ErrPeekUnsupported = errors.New("pggeom: shape not supported by peek")
	// ErrNullInput: a null blob or out-param was passed. Returns failure,
	// no message surfaced to the error reporter.
	ErrNullInput = errors.New("pggeom: null input")
	// ErrTruncated: the blob is shorter than its header/body claims.
	ErrTruncated = errors.New("pggeom: truncated blob")
	// ErrEmptyGeometry: a bounding box was requested for a geometry with no
	// vertices to bound. Recoverable; matches spec.md's requirement that
	// get_gbox fail outright on an empty shape rather than return a
	// degenerate zero box.
	ErrEmptyGeometry = errors.New("pggeom: geometry is empty")
)
