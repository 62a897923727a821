// Package ridge: sentinel error set.
// Every algorithm in this package returns these sentinels (wrapped with the
// operation name at the call site) and tests match them via errors.Is.
// No function panics on user-triggered conditions.
//
// Taxonomy: all sentinels except ErrNonFinite and ErrFactorization describe
// invalid caller configuration and are detected at the API boundary before
// any numeric work. ErrNonFinite is the numerical-degeneracy signal: a
// non-finite value entered or left a solve where the contract requires
// finite numbers (the single documented exception is the NaN R² for a
// zero-variance held-out fold, which is a valid result, not an error).

package ridge

import "errors"

var (
	// ErrNilMatrix indicates a nil or zero-sized matrix argument.
	ErrNilMatrix = errors.New("ridge: matrix is nil or empty")

	// ErrDimensionMismatch indicates X and Y disagree on the sample count,
	// or a fold assignment was built for a different row count.
	ErrDimensionMismatch = errors.New("ridge: dimension mismatch")

	// ErrEmptyAlphaGrid indicates an empty candidate grid.
	ErrEmptyAlphaGrid = errors.New("ridge: alpha grid is empty")

	// ErrBadAlpha indicates a negative, NaN or infinite regularization
	// strength. Zero is accepted and means plain least squares.
	ErrBadAlpha = errors.New("ridge: alpha must be finite and non-negative")

	// ErrAlphaCount indicates len(alphas) differs from the number of
	// output columns of Y.
	ErrAlphaCount = errors.New("ridge: one alpha per output column required")

	// ErrBadFoldCount indicates an invalid fold count: k < 2 or k greater
	// than the sample count for cross-validation (the alpha selector also
	// accepts 0, meaning leave-one-out).
	ErrBadFoldCount = errors.New("ridge: invalid fold count")

	// ErrFactorization indicates the SVD of a design matrix failed to
	// converge. This is rare and typically means the input carries
	// non-finite values that slipped past validation.
	ErrFactorization = errors.New("ridge: svd factorization failed")

	// ErrNonFinite indicates a NaN or ±Inf value where the contract
	// requires finite numbers — either in the input matrices or produced
	// by a solve. Surfaced synchronously; never silently propagated.
	ErrNonFinite = errors.New("ridge: non-finite value encountered")
)
