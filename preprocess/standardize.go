package preprocess

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opFit       = "Fit"
	opTransform = "Transform"
)

// checkColumns validates a column selection against a matrix width and
// returns a width-sized membership mask. Sentinels are returned plain;
// callers wrap them with the operation name.
//
// Complexity: O(len(cols) + width).
func checkColumns(width int, cols []int) ([]bool, error) {
	selected := make([]bool, width)
	for _, j := range cols {
		if j < 0 || j >= width {
			return nil, fmt.Errorf("column %d of width %d: %w", j, width, ErrColumnIndex)
		}
		if selected[j] {
			return nil, fmt.Errorf("column %d: %w", j, ErrDuplicateColumn)
		}
		selected[j] = true
	}
	return selected, nil
}

// Fit computes per-column mean and scale for the columns listed in cols,
// over all rows of X. Columns not listed are recorded as pass-through
// (mean 0, scale 1). The returned state is a self-contained value; X is
// not retained and not mutated.
//
// Scale policy: scale = sample standard deviation; if the standard
// deviation is zero (constant column, or a single-row matrix), scale is
// floored to 1 so Transform mean-centers the column without dividing by zero.
//
// Inputs:
//   - X:    matrix to fit on (rows × width), non-nil, non-empty.
//   - cols: column indices to standardize; may be empty (identity state).
//
// Errors: ErrNilMatrix, ErrColumnIndex, ErrDuplicateColumn.
//
// Complexity: O(rows·len(cols)) time, O(width) state.
func Fit(X *mat.Dense, cols []int) (StandardizerState, error) {
	if X == nil {
		return StandardizerState{}, fmt.Errorf("%s: %w", opFit, ErrNilMatrix)
	}
	rows, width := X.Dims()
	if rows == 0 || width == 0 {
		return StandardizerState{}, fmt.Errorf("%s: %dx%d: %w", opFit, rows, width, ErrNilMatrix)
	}

	selected, err := checkColumns(width, cols)
	if err != nil {
		return StandardizerState{}, fmt.Errorf("%s: %w", opFit, err)
	}

	st := StandardizerState{
		width:    width,
		selected: selected,
		mean:     make([]float64, width),
		scale:    make([]float64, width),
		fitted:   true,
	}
	for j := 0; j < width; j++ {
		st.scale[j] = 1
	}

	col := make([]float64, rows)
	for j := 0; j < width; j++ {
		if !selected[j] {
			continue
		}
		mat.Col(col, j, X)
		mean, sd := stat.MeanStdDev(col, nil)
		st.mean[j] = mean
		// sd is NaN for a single row and 0 for a constant column; both
		// fall under the scale floor.
		if sd > 0 && !math.IsNaN(sd) {
			st.scale[j] = sd
		}
	}
	return st, nil
}

// Transform applies a fitted state to X and returns a NEW matrix in which
// every selected column becomes (value − mean) / scale and every other
// column is copied unchanged. X is never mutated.
//
// Errors: ErrNotFitted if st was not produced by Fit; ErrNilMatrix;
// ErrDimensionMismatch if X's width differs from the fitted width.
//
// Complexity: O(rows·width) time and memory.
func Transform(st StandardizerState, X *mat.Dense) (*mat.Dense, error) {
	if !st.fitted {
		return nil, fmt.Errorf("%s: %w", opTransform, ErrNotFitted)
	}
	if X == nil {
		return nil, fmt.Errorf("%s: %w", opTransform, ErrNilMatrix)
	}
	rows, width := X.Dims()
	if width != st.width {
		return nil, fmt.Errorf("%s: width %d, fitted on %d: %w", opTransform, width, st.width, ErrDimensionMismatch)
	}

	out := mat.DenseCopyOf(X)
	for j := 0; j < width; j++ {
		if !st.selected[j] {
			continue
		}
		m, s := st.mean[j], st.scale[j]
		for i := 0; i < rows; i++ {
			out.Set(i, j, (out.At(i, j)-m)/s)
		}
	}
	return out, nil
}

// FitTransform fits on X and immediately transforms it — the common
// training-fold path. Returns the transformed copy and the state for
// applying the same statistics to held-out rows.
func FitTransform(X *mat.Dense, cols []int) (*mat.Dense, StandardizerState, error) {
	st, err := Fit(X, cols)
	if err != nil {
		return nil, StandardizerState{}, err
	}
	out, err := Transform(st, X)
	if err != nil {
		return nil, StandardizerState{}, err
	}
	return out, st, nil
}
