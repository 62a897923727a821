package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/neurofit/preprocess"
)

// colOf extracts column j as a fresh slice.
func colOf(m *mat.Dense, j int) []float64 {
	r, _ := m.Dims()
	out := make([]float64, r)
	mat.Col(out, j, m)
	return out
}

// TestFit_InvalidInput verifies the configuration sentinels at the boundary.
func TestFit_InvalidInput(t *testing.T) {
	_, err := preprocess.Fit(nil, nil)
	assert.ErrorIs(t, err, preprocess.ErrNilMatrix, "nil matrix must error")

	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	_, err = preprocess.Fit(X, []int{2})
	assert.ErrorIs(t, err, preprocess.ErrColumnIndex, "column 2 of width 2 is out of range")

	_, err = preprocess.Fit(X, []int{-1})
	assert.ErrorIs(t, err, preprocess.ErrColumnIndex, "negative column index")

	_, err = preprocess.Fit(X, []int{0, 0})
	assert.ErrorIs(t, err, preprocess.ErrDuplicateColumn, "duplicate column index")
}

// TestTransform_BeforeFit verifies the zero-value state is rejected.
func TestTransform_BeforeFit(t *testing.T) {
	var st preprocess.StandardizerState
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := preprocess.Transform(st, X)
	assert.ErrorIs(t, err, preprocess.ErrNotFitted)
}

// TestTransform_WidthMismatch verifies a state fitted on one width rejects
// matrices of another.
func TestTransform_WidthMismatch(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	st, err := preprocess.Fit(X, []int{0})
	require.NoError(t, err)

	wide := mat.NewDense(3, 3, nil)
	_, err = preprocess.Transform(st, wide)
	assert.ErrorIs(t, err, preprocess.ErrDimensionMismatch)
}

// TestStandardize_RoundTrip checks the core contract: selected columns come
// out zero mean / unit variance, unselected columns are bit-identical, and
// the input matrix is never mutated.
func TestStandardize_RoundTrip(t *testing.T) {
	X := mat.NewDense(5, 3, []float64{
		1, 10, -3,
		2, 20, 5,
		3, 30, 7,
		4, 40, 11,
		5, 50, 2,
	})
	orig := mat.DenseCopyOf(X)

	st, err := preprocess.Fit(X, []int{0, 2})
	require.NoError(t, err)
	require.True(t, st.IsFitted())
	assert.Equal(t, []int{0, 2}, st.Columns())

	out, err := preprocess.Transform(st, X)
	require.NoError(t, err)

	for _, j := range []int{0, 2} {
		col := colOf(out, j)
		mean, sd := stat.MeanStdDev(col, nil)
		assert.InDelta(t, 0, mean, 1e-12, "column %d mean", j)
		assert.InDelta(t, 1, sd, 1e-12, "column %d stddev", j)
	}
	assert.Equal(t, colOf(orig, 1), colOf(out, 1), "unselected column must be untouched")
	assert.True(t, mat.Equal(orig, X), "input matrix must not be mutated")
}

// TestStandardize_ZeroVariance checks the scale floor: a constant column
// becomes its mean-centered constant (all zeros), never NaN or Inf.
func TestStandardize_ZeroVariance(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		7, 1,
		7, 2,
		7, 3,
		7, 4,
	})
	st, err := preprocess.Fit(X, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 7.0, st.Mean(0))
	assert.Equal(t, 1.0, st.Scale(0), "zero stddev must floor the scale to 1")

	out, err := preprocess.Transform(st, X)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, out.At(i, 0), "constant column row %d", i)
	}
}

// TestStandardize_TrainOnlyStatistics checks that a state fitted on one
// matrix applies the SAME statistics to another — the no-leakage property
// cross-validation depends on.
func TestStandardize_TrainOnlyStatistics(t *testing.T) {
	train := mat.NewDense(4, 1, []float64{0, 2, 4, 6}) // mean 3
	test := mat.NewDense(2, 1, []float64{3, 9})

	st, err := preprocess.Fit(train, []int{0})
	require.NoError(t, err)

	out, err := preprocess.Transform(st, test)
	require.NoError(t, err)
	// (3-3)/sd == 0 regardless of the test rows' own statistics.
	assert.Equal(t, 0.0, out.At(0, 0))
	assert.Greater(t, out.At(1, 0), 0.0, "9 lies above the training mean")
}

// TestFitTransform matches the composed facade against its two stages.
func TestFitTransform(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 5, 2, 5, 3, 5})

	got, st, err := preprocess.FitTransform(X, []int{0})
	require.NoError(t, err)

	want, err := preprocess.Transform(st, X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))
}
