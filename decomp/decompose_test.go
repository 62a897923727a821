package decomp_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/neurofit/decomp"
)

// makeSession builds a synthetic trial-structured session: trials × frames
// rows, a block of per-frame time indicators followed by a block of
// choice × frame-indicator interaction columns, and neurons driven by the
// choice alone. The layout mirrors a typical encoding-model design matrix.
func makeSession(trials, frames int, noise float64, seed int64) (X, Y *mat.Dense, groups []decomp.Group) {
	n := trials * frames
	p := 2 * frames
	X = mat.NewDense(n, p, nil)
	Y = mat.NewDense(n, 2, nil)
	rng := rand.New(rand.NewSource(seed))

	for tr := 0; tr < trials; tr++ {
		choice := 1.0
		if tr%2 == 1 {
			choice = -1
		}
		for f := 0; f < frames; f++ {
			i := tr*frames + f
			X.Set(i, f, 1)               // time: frame indicator
			X.Set(i, frames+f, choice)   // choice: choice × frame indicator
			for j := 0; j < 2; j++ {
				Y.Set(i, j, 2*choice+noise*rng.NormFloat64())
			}
		}
	}
	groups = []decomp.Group{
		{Name: "time", Start: 0, End: frames},
		{Name: "choice", Start: frames, End: 2 * frames},
	}
	return X, Y, groups
}

// TestDecomposeVariance_InvalidInput covers the group and shape sentinels.
func TestDecomposeVariance_InvalidInput(t *testing.T) {
	X, Y, groups := makeSession(8, 3, 0.1, 1)
	grid := []float64{1}

	_, err := decomp.DecomposeVariance(nil, Y, groups, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrNilMatrix)

	short := mat.NewDense(6, 2, nil)
	_, err = decomp.DecomposeVariance(X, short, groups, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrDimensionMismatch)

	_, err = decomp.DecomposeVariance(X, Y, nil, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrNoGroups)

	bad := []decomp.Group{{Name: "time", Start: 0, End: 7}}
	_, err = decomp.DecomposeVariance(X, Y, bad, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrGroupBounds)

	bad = []decomp.Group{{Name: "time", Start: 2, End: 2}}
	_, err = decomp.DecomposeVariance(X, Y, bad, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrGroupBounds, "empty range")

	bad = []decomp.Group{
		{Name: "a", Start: 0, End: 4},
		{Name: "b", Start: 3, End: 6},
	}
	_, err = decomp.DecomposeVariance(X, Y, bad, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrGroupOverlap)

	bad = []decomp.Group{
		{Name: "a", Start: 0, End: 3},
		{Name: "a", Start: 3, End: 6},
	}
	_, err = decomp.DecomposeVariance(X, Y, bad, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrGroupName, "duplicate name")

	bad = []decomp.Group{{Name: "", Start: 0, End: 3}}
	_, err = decomp.DecomposeVariance(X, Y, bad, grid, 3)
	assert.ErrorIs(t, err, decomp.ErrGroupName, "empty name")
}

// TestDecomposeVariance_ChoiceCarriesTheVariance: neurons coding only the
// animal's choice must attribute their variance to the choice group and
// essentially none to the time group.
func TestDecomposeVariance_ChoiceCarriesTheVariance(t *testing.T) {
	X, Y, groups := makeSession(40, 3, 0.01, 3)
	grid := []float64{0, 1, 100}

	res, err := decomp.DecomposeVariance(X, Y, groups, grid, 4, decomp.WithSeed(11))
	require.NoError(t, err)
	require.Len(t, res.FullR2, 2)
	require.Contains(t, res.Groups, "time")
	require.Contains(t, res.Groups, "choice")

	choice := res.Groups["choice"]
	time := res.Groups["time"]
	for j := 0; j < 2; j++ {
		assert.Greater(t, res.FullR2[j], 0.9, "neuron %d: full model must explain a choice cell", j)
		assert.Greater(t, choice.DeltaR2[j], 0.5, "neuron %d: choice is the unique driver", j)
		assert.InDelta(t, 0, time.DeltaR2[j], 0.1, "neuron %d: time adds nothing unique", j)
		assert.InDelta(t, res.FullR2[j], choice.R2[j], 0.1, "neuron %d: choice alone suffices", j)
	}
}

// TestDecomposeVariance_DeltaMayGoNegative: for a pure-noise group the
// unique variance hovers around zero and is NOT clipped at it.
func TestDecomposeVariance_DeltaMayGoNegative(t *testing.T) {
	X, Y, groups := makeSession(40, 3, 0.2, 9)
	grid := []float64{1, 100}

	res, err := decomp.DecomposeVariance(X, Y, groups, grid, 4, decomp.WithSeed(2))
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		d := res.Groups["time"].DeltaR2[j]
		assert.False(t, math.IsNaN(d))
		assert.Less(t, math.Abs(d), 0.2, "neuron %d: time ΔR² stays near zero, sign free", j)
	}
}

// TestDecomposeVariance_SeedReproducible: one seed, one answer.
func TestDecomposeVariance_SeedReproducible(t *testing.T) {
	X, Y, groups := makeSession(20, 3, 0.1, 5)
	grid := []float64{0.1, 1, 10}

	a, err := decomp.DecomposeVariance(X, Y, groups, grid, 4, decomp.WithSeed(42))
	require.NoError(t, err)
	b, err := decomp.DecomposeVariance(X, Y, groups, grid, 4, decomp.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(a, b), "identical seeds must give bit-identical results")

	c, err := decomp.DecomposeVariance(X, Y, groups, grid, 4, decomp.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Groups, c.Groups, "a different seed shuffles differently")
}

// TestDecomposeVariance_WorkersDeterministic: the worker budget is a speed
// knob only.
func TestDecomposeVariance_WorkersDeterministic(t *testing.T) {
	X, Y, groups := makeSession(20, 3, 0.1, 7)
	grid := []float64{0.1, 1, 10}

	seq, err := decomp.DecomposeVariance(X, Y, groups, grid, 4, decomp.WithSeed(8), decomp.WithWorkers(1))
	require.NoError(t, err)
	par, err := decomp.DecomposeVariance(X, Y, groups, grid, 4, decomp.WithSeed(8), decomp.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, seq.FullR2, par.FullR2)
	assert.Equal(t, seq.Groups, par.Groups)
}

// TestDecomposeVariance_SharedFolds: the reported assignment is the one every
// fit used, drawn from the run's seed.
func TestDecomposeVariance_SharedFolds(t *testing.T) {
	X, Y, groups := makeSession(12, 3, 0.1, 13)

	res, err := decomp.DecomposeVariance(X, Y, groups, []float64{1}, 3, decomp.WithSeed(21))
	require.NoError(t, err)
	require.Equal(t, 3, res.Folds.NumFolds())
	assert.Equal(t, 36, res.Folds.NumRows())

	// Folds partition the rows.
	seen := make(map[int]bool, 36)
	for f := 0; f < 3; f++ {
		for _, i := range res.Folds.TestRows(f) {
			assert.False(t, seen[i], "row %d assigned twice", i)
			seen[i] = true
		}
	}
	assert.Len(t, seen, 36)
}

// TestDecomposeVariance_RawY: disabling response standardization changes the
// fitted scale but a perfectly coding neuron still scores.
func TestDecomposeVariance_RawY(t *testing.T) {
	X, Y, groups := makeSession(40, 3, 0.01, 17)
	grid := []float64{0, 1, 100}

	res, err := decomp.DecomposeVariance(X, Y, groups, grid, 4,
		decomp.WithSeed(1), decomp.WithRawY())
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		assert.Greater(t, res.FullR2[j], 0.9, "neuron %d", j)
	}
}

// TestDecomposeVariance_AlphaFoldsHonored: the alpha search runs with its
// OWN assignment of the requested fold count, independent of the outer
// partition (a 2-fold search inside a 4-fold run must be legal), and the
// combination stays seed-reproducible.
func TestDecomposeVariance_AlphaFoldsHonored(t *testing.T) {
	X, Y, groups := makeSession(20, 3, 0.1, 23)
	grid := []float64{0.1, 1, 10}

	a, err := decomp.DecomposeVariance(X, Y, groups, grid, 4,
		decomp.WithSeed(3), decomp.WithAlphaFolds(2))
	require.NoError(t, err, "search fold count must not be tied to the outer fold count")
	require.Equal(t, 4, a.Folds.NumFolds(), "scoring still uses the outer partition")
	for _, alpha := range a.Alphas {
		assert.Contains(t, grid, alpha)
	}

	b, err := decomp.DecomposeVariance(X, Y, groups, grid, 4,
		decomp.WithSeed(3), decomp.WithAlphaFolds(2))
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(a, b), "same seed, same k, same result")

	// A different search k never perturbs the outer partition: it is drawn
	// from the root stream before the search assignment.
	c, err := decomp.DecomposeVariance(X, Y, groups, grid, 4,
		decomp.WithSeed(3), decomp.WithAlphaFolds(3))
	require.NoError(t, err)
	for f := 0; f < 4; f++ {
		assert.Equal(t, a.Folds.TestRows(f), c.Folds.TestRows(f), "fold %d", f)
	}
}
