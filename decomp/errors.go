// Package decomp: sentinel error set.
// All sentinels below are configuration errors detected before any fit
// runs; numeric failures inside the fits surface as the ridge package's
// sentinels (notably ridge.ErrNonFinite), wrapped with this driver's
// operation context so errors.Is still matches them.

package decomp

import "errors"

var (
	// ErrNilMatrix indicates a nil or zero-sized matrix argument.
	ErrNilMatrix = errors.New("decomp: matrix is nil or empty")

	// ErrDimensionMismatch indicates X and Y disagree on the sample count.
	ErrDimensionMismatch = errors.New("decomp: dimension mismatch")

	// ErrNoGroups indicates an empty group list; a decomposition with
	// nothing to attribute variance to is a caller mistake, not a no-op.
	ErrNoGroups = errors.New("decomp: no regressor groups given")

	// ErrGroupBounds indicates a group range outside the design matrix,
	// or an empty range (Start >= End).
	ErrGroupBounds = errors.New("decomp: group column range out of bounds")

	// ErrGroupOverlap indicates two groups claim the same column.
	ErrGroupOverlap = errors.New("decomp: group column ranges overlap")

	// ErrGroupName indicates an empty or duplicate group name.
	ErrGroupName = errors.New("decomp: invalid group name")
)
