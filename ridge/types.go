// Package ridge: value types for fold assignment and fit results.
package ridge

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// FoldAssignment is a randomized partition of n sample rows into k
// disjoint, collectively exhaustive test sets. It is a plain value built
// once per analysis run and reused across every model variant being
// compared — held-out R² values from different fits are only comparable
// when they share the same held-out rows.
type FoldAssignment struct {
	n     int
	folds [][]int // folds[f] = sorted test-row indices of fold f
}

// NewFoldAssignment partitions rows 0..n-1 into k folds of near-equal size
// (sizes differ by at most one) by slicing a random permutation drawn from
// rng. A nil rng selects the fixed default stream. Within each fold the
// test rows are sorted ascending so downstream row extraction is
// deterministic.
//
// Errors: ErrBadFoldCount if k < 2 or k > n.
//
// Complexity: O(n log n) time, O(n) memory.
func NewFoldAssignment(n, k int, rng *rand.Rand) (FoldAssignment, error) {
	if k < 2 || k > n {
		return FoldAssignment{}, fmt.Errorf("NewFoldAssignment: k=%d, n=%d: %w", k, n, ErrBadFoldCount)
	}
	r := rng
	if r == nil {
		r = defaultRNG()
	}
	perm := r.Perm(n)

	fa := FoldAssignment{n: n, folds: make([][]int, k)}
	base, rem := n/k, n%k
	start := 0
	for f := 0; f < k; f++ {
		size := base
		if f < rem {
			size++
		}
		fold := make([]int, size)
		copy(fold, perm[start:start+size])
		sort.Ints(fold)
		fa.folds[f] = fold
		start += size
	}
	return fa, nil
}

// NumFolds returns k (0 for the zero value).
func (fa FoldAssignment) NumFolds() int { return len(fa.folds) }

// NumRows returns the row count the assignment partitions.
func (fa FoldAssignment) NumRows() int { return fa.n }

// TestRows returns the held-out row indices of fold f as a fresh slice
// owned by the caller. Out-of-range f returns nil.
func (fa FoldAssignment) TestRows(f int) []int {
	if f < 0 || f >= len(fa.folds) {
		return nil
	}
	out := make([]int, len(fa.folds[f]))
	copy(out, fa.folds[f])
	return out
}

// TrainRows returns the complement of fold f — the training row indices —
// as a fresh sorted slice owned by the caller. Out-of-range f returns nil.
func (fa FoldAssignment) TrainRows(f int) []int {
	if f < 0 || f >= len(fa.folds) {
		return nil
	}
	inTest := make([]bool, fa.n)
	for _, i := range fa.folds[f] {
		inTest[i] = true
	}
	out := make([]int, 0, fa.n-len(fa.folds[f]))
	for i := 0; i < fa.n; i++ {
		if !inTest[i] {
			out = append(out, i)
		}
	}
	return out
}

// CVResult holds the outcome of one cross-validated ridge fit. All slices
// and matrices are produced fresh by CrossValRidge and owned by the caller;
// nothing is shared with later fits.
type CVResult struct {
	// R2 is the held-out coefficient of determination, R2[f][j] for fold f
	// and output column j. A NaN entry marks the documented degenerate
	// case of zero target variance in that fold's held-out rows.
	R2 [][]float64

	// Coefs[f] is the (regressors × outputs) coefficient matrix fitted on
	// fold f's training rows.
	Coefs []*mat.Dense

	// Folds is the assignment the fit used — either the one supplied via
	// WithFoldAssignment or the one drawn internally.
	Folds FoldAssignment
}
