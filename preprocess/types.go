// Package preprocess: value types for the column standardizer.
package preprocess

// StandardizerState holds per-column standardization statistics fitted on one
// matrix and applicable to any matrix of the same width. It is a plain value:
// produce it with Fit, pass it around by value, apply it with Transform.
// There is no shared mutable state between the fit and later transforms.
//
// For columns outside the fitted selection, mean==0 and scale==1, so
// Transform leaves them unchanged. For selected columns with zero standard
// deviation, scale is floored to 1: the column becomes its mean-centered
// constant rather than dividing by zero.
type StandardizerState struct {
	width    int       // matrix width the state was fitted on
	selected []bool    // len == width; true for standardized columns
	mean     []float64 // len == width; 0 for pass-through columns
	scale    []float64 // len == width; 1 for pass-through and degenerate columns
	fitted   bool
}

// IsFitted reports whether the state was produced by Fit.
func (st StandardizerState) IsFitted() bool { return st.fitted }

// Width returns the matrix width the state was fitted on (0 if unfitted).
func (st StandardizerState) Width() int { return st.width }

// Columns returns the sorted indices of the standardized columns.
// The returned slice is a fresh copy owned by the caller.
func (st StandardizerState) Columns() []int {
	cols := make([]int, 0)
	for j, on := range st.selected {
		if on {
			cols = append(cols, j)
		}
	}
	return cols
}

// Mean returns the fitted mean of column j (0 for pass-through columns).
// Out-of-range j returns 0; use Width to bound queries.
func (st StandardizerState) Mean(j int) float64 {
	if j < 0 || j >= st.width {
		return 0
	}
	return st.mean[j]
}

// Scale returns the fitted scale of column j (1 for pass-through columns
// and for selected columns whose standard deviation was zero).
func (st StandardizerState) Scale(j int) float64 {
	if j < 0 || j >= st.width {
		return 1
	}
	return st.scale[j]
}
