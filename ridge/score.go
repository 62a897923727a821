package ridge

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// RSquared returns the coefficient of determination 1 − RSS/TSS between an
// observed and a predicted vector, with TSS taken around the observed mean.
// If the observed values have zero variance the score is undefined and NaN
// is returned (the caller decides whether that is tolerable; CrossValRidge
// documents it as the one legitimate NaN in the module).
//
// Complexity: O(len(observed)).
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 || len(observed) != len(predicted) {
		return math.NaN()
	}
	mean := stat.Mean(observed, nil)
	var rss, tss float64
	for i, y := range observed {
		d := y - predicted[i]
		rss += d * d
		m := y - mean
		tss += m * m
	}
	if tss == 0 {
		return math.NaN()
	}
	return 1 - rss/tss
}

// Predict applies a fitted coefficient matrix (regressors × outputs) to a
// design matrix (samples × regressors) and returns samples × outputs
// predictions. A thin convenience for downstream scoring and plotting
// collaborators; it performs no validation beyond gonum's own dimension
// panic, so pair it with matrices produced by this package.
func Predict(X *mat.Dense, coefs *mat.Dense) *mat.Dense {
	var P mat.Dense
	P.Mul(X, coefs)
	return &P
}

// LogSpace returns n alphas spaced evenly on a log10 scale from 10^lo to
// 10^hi inclusive — the usual way to build a candidate grid spanning many
// orders of magnitude. n < 1 returns nil; n == 1 returns {10^lo}.
func LogSpace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Pow(10, lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, lo+float64(i)*step)
	}
	return out
}
