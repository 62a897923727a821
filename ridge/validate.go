// Package ridge: canonical input validation shared by the public entry
// points. Validators return plain sentinels; call sites wrap them with the
// operation name so errors.Is keeps matching.
package ridge

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateXY checks the design/response pair at the API boundary: non-nil,
// non-empty, matching row counts, finite entries. Returns (rows, regressors,
// outputs). Failing fast here keeps NaN/Inf from surfacing deep inside a
// solve as a mystery.
//
// Complexity: O(rows·(regressors+outputs)).
func validateXY(X, Y *mat.Dense) (n, p, q int, err error) {
	if X == nil || Y == nil {
		return 0, 0, 0, ErrNilMatrix
	}
	n, p = X.Dims()
	ny, qy := Y.Dims()
	if n == 0 || p == 0 || ny == 0 || qy == 0 {
		return 0, 0, 0, ErrNilMatrix
	}
	if ny != n {
		return 0, 0, 0, fmt.Errorf("X has %d rows, Y has %d: %w", n, ny, ErrDimensionMismatch)
	}
	if !denseIsFinite(X) {
		return 0, 0, 0, fmt.Errorf("design matrix: %w", ErrNonFinite)
	}
	if !denseIsFinite(Y) {
		return 0, 0, 0, fmt.Errorf("response matrix: %w", ErrNonFinite)
	}
	return n, p, qy, nil
}

// validateGrid checks the candidate alpha grid: non-empty, finite,
// non-negative. Zero is legal (plain least squares via truncated SVD).
func validateGrid(grid []float64) error {
	if len(grid) == 0 {
		return ErrEmptyAlphaGrid
	}
	for i, a := range grid {
		if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
			return fmt.Errorf("grid[%d]=%g: %w", i, a, ErrBadAlpha)
		}
	}
	return nil
}

// validateAlphas checks a per-output alpha vector against the output count.
func validateAlphas(alphas []float64, outputs int) error {
	if len(alphas) != outputs {
		return fmt.Errorf("%d alphas for %d outputs: %w", len(alphas), outputs, ErrAlphaCount)
	}
	for j, a := range alphas {
		if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
			return fmt.Errorf("alphas[%d]=%g: %w", j, a, ErrBadAlpha)
		}
	}
	return nil
}

// denseIsFinite reports whether every entry of m is finite.
func denseIsFinite(m *mat.Dense) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		for j := 0; j < c; j++ {
			v := row[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// takeRows copies the given rows of m (in order) into a fresh matrix.
// Indices are assumed valid; fold assignments guarantee that.
func takeRows(m *mat.Dense, rows []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		out.SetRow(i, m.RawRowView(r))
	}
	return out
}
