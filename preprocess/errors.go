// Package preprocess: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with the
// operation name via fmt.Errorf("Op: %w", Err)); tests and callers match
// them with errors.Is. No function in this package panics on user input.
//
// Every sentinel below is a configuration error in the sense of the public
// API contract: it signals invalid caller input, never a numeric failure.

package preprocess

import "errors"

var (
	// ErrNilMatrix indicates a nil or zero-sized matrix argument.
	ErrNilMatrix = errors.New("preprocess: matrix is nil or empty")

	// ErrColumnIndex indicates a column index outside [0, cols).
	ErrColumnIndex = errors.New("preprocess: column index out of range")

	// ErrDuplicateColumn indicates the same column index was listed twice.
	ErrDuplicateColumn = errors.New("preprocess: duplicate column index")

	// ErrNotFitted indicates Transform was called with a zero-value
	// StandardizerState (Fit was never run).
	ErrNotFitted = errors.New("preprocess: standardizer state is not fitted")

	// ErrDimensionMismatch indicates the matrix width does not match the
	// width the standardizer state was fitted on.
	ErrDimensionMismatch = errors.New("preprocess: matrix width mismatch")
)
