// Package decomp: value types for variance decomposition.
package decomp

import "github.com/katalvlaran/neurofit/ridge"

// Group names one task variable and the half-open design-matrix column
// range [Start, End) its regressors occupy (typically one column per
// trial-aligned time bin). Groups are passed as an ordered slice — not a
// map — so runs iterate deterministically; columns claimed by no group
// (e.g. video-tracking regressors) are legal and simply never isolated.
type Group struct {
	Name  string
	Start int // first column, inclusive
	End   int // last column, exclusive
}

// cols expands the range into explicit column indices.
func (g Group) cols() []int {
	out := make([]int, 0, g.End-g.Start)
	for j := g.Start; j < g.End; j++ {
		out = append(out, j)
	}
	return out
}

// GroupVariance holds the two per-neuron metrics for one task variable.
type GroupVariance struct {
	// R2 is the raw variance explained by the group alone (all other
	// regressors shuffled): the group's total predictive power including
	// variance it shares with other groups.
	R2 []float64

	// DeltaR2 is the unique variance explained: full-model R² minus the
	// R² with only this group shuffled. Small negative values are real —
	// they say the group adds nothing beyond estimation noise — and are
	// deliberately NOT clipped to zero.
	DeltaR2 []float64
}

// Result is the outcome of one decomposition run. All slices are fresh and
// caller-owned; Groups is keyed by Group.Name.
type Result struct {
	// FullR2 is the cross-validated R² of the full model per neuron
	// (mean over folds, NaN folds excluded), computed once and used as
	// the shared baseline for every group's ΔR².
	FullR2 []float64

	// Groups maps each task variable to its raw and unique variance.
	Groups map[string]GroupVariance

	// Alphas are the per-neuron regularization strengths selected for the
	// full model — worth inspecting (histogramming) when a fit surprises.
	Alphas []float64

	// Folds is the single fold assignment every fit of the run shared.
	Folds ridge.FoldAssignment
}
