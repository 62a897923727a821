package decomp

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/neurofit/preprocess"
	"github.com/katalvlaran/neurofit/ridge"
)

const opDecompose = "DecomposeVariance"

// DecomposeVariance measures, per neuron, how much of a linear encoding
// model's predictive power each task-variable group carries.
//
// Three fit families run on one shared fold assignment:
//
//	full model          — X unmodified                  → R²_full (baseline)
//	single-group        — everything EXCEPT the group
//	                      shuffled                      → R²_group (raw)
//	leave-one-group-out — only the group shuffled       → R²_without
//
// and the unique variance is ΔR²_group = R²_full − R²_without, per neuron,
// deliberately unclipped: a small negative ΔR² is the honest statement
// that the group adds nothing beyond noise. R²_full is computed once and
// reused as every group's baseline — recomputing it per group would both
// waste the dominant cost and break comparability if folds drifted.
//
// Reproducibility contract: the seed determines the fold assignment and
// every shuffle stream. The same fold assignment is used for the full fit
// and every group fit (correctness-critical: ΔR² must compare identical
// held-out rows), and per-group shuffle streams are derived up front so
// results are bit-identical for any WithWorkers value.
//
// Y is standardized to zero mean / unit variance per neuron over all rows
// before fitting (disable with WithRawY); X is standardized per fold
// inside the ridge fits, training rows only.
//
// Inputs:
//   - X:      design matrix, frames × regressors.
//   - Y:      response matrix, frames × neurons.
//   - groups: ordered task-variable column ranges; must be in-bounds,
//     non-overlapping, non-empty, uniquely named. Columns outside every
//     group are allowed and are shuffled in single-group fits like any
//     other non-group column.
//   - grid:   candidate regularization strengths (see ridge.FindBestAlphas).
//   - nFolds: outer cross-validation fold count, 2..frames.
//
// Errors: the decomp sentinels for group/shape problems; ridge and
// preprocess sentinels (wrapped, errors.Is-matchable) for everything the
// inner fits reject.
//
// Complexity: (1 + 2·len(groups)) alpha searches + cross-validated fits;
// each is dominated by its SVDs (see the ridge package).
func DecomposeVariance(X, Y *mat.Dense, groups []Group, grid []float64, nFolds int, opts ...Option) (*Result, error) {
	if X == nil || Y == nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, ErrNilMatrix)
	}
	n, p := X.Dims()
	ny, q := Y.Dims()
	if n == 0 || p == 0 || ny == 0 || q == 0 {
		return nil, fmt.Errorf("%s: %w", opDecompose, ErrNilMatrix)
	}
	if ny != n {
		return nil, fmt.Errorf("%s: X has %d rows, Y has %d: %w", opDecompose, n, ny, ErrDimensionMismatch)
	}
	if err := validateGroups(p, groups); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	o := gatherOptions(opts...)

	// Response standardization: per neuron, over all rows. Global (not
	// per-fold) by design — Y's scale is an acquisition artifact, and the
	// data-model contract is unit-variance responses.
	if !o.rawY {
		st, err := preprocess.Fit(Y, rangeCols(q))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
		if Y, err = preprocess.Transform(st, Y); err != nil {
			return nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
	}

	// One root stream: the outer fold assignment first, then (when the
	// alpha search runs k-fold) the search's own assignment, then per-group
	// shuffle streams — all in a fixed order BEFORE any parallel section.
	root := preprocess.RNGFromSeed(o.seed)
	fa, err := ridge.NewFoldAssignment(n, nFolds, root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	// The alpha search never reuses the outer assignment: its fold count
	// is o.alphaFolds (0 = leave-one-out), not nFolds.
	var alphaFA ridge.FoldAssignment
	if o.alphaFolds >= 2 {
		if alphaFA, err = ridge.NewFoldAssignment(n, o.alphaFolds, root); err != nil {
			return nil, fmt.Errorf("%s: alpha search: %w", opDecompose, err)
		}
	}
	// Worker budget: fan out across groups when there are several,
	// otherwise let the inner ridge loops use the budget.
	groupWorkers, innerWorkers := 1, o.workers
	if o.workers > 1 && len(groups) > 1 {
		groupWorkers, innerWorkers = o.workers, 1
	}
	searchOpts := func() []ridge.Option {
		out := []ridge.Option{ridge.WithWorkers(innerWorkers)}
		if o.alphaFolds >= 2 {
			out = append(out, ridge.WithFoldAssignment(alphaFA))
		}
		if o.stdCols != nil {
			out = append(out, ridge.WithStandardizeColumns(o.stdCols))
		}
		return out
	}
	cvOpts := func() []ridge.Option {
		out := []ridge.Option{
			ridge.WithFoldAssignment(fa),
			ridge.WithWorkers(innerWorkers),
		}
		if o.stdCols != nil {
			out = append(out, ridge.WithStandardizeColumns(o.stdCols))
		}
		return out
	}

	// Full model: computed once, the baseline for every ΔR².
	fullAlphas, err := ridge.FindBestAlphas(X, Y, grid, o.alphaFolds, searchOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%s: full model: %w", opDecompose, err)
	}
	full, err := ridge.CrossValRidge(X, Y, fullAlphas, nFolds, cvOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%s: full model: %w", opDecompose, err)
	}
	fullR2 := foldMean(full.R2)

	// Independent, order-fixed shuffle streams: two per group.
	solo := make([]*shuffleStream, len(groups))
	for gi := range groups {
		solo[gi] = &shuffleStream{
			single:  preprocess.DeriveRNG(root, uint64(2*gi+1)),
			without: preprocess.DeriveRNG(root, uint64(2*gi+2)),
		}
	}

	type groupOut struct {
		gv  GroupVariance
		err error
	}
	outs := make([]groupOut, len(groups))
	runFit := func(Xv *mat.Dense) ([]float64, error) {
		alphas, err := ridge.FindBestAlphas(Xv, Y, grid, o.alphaFolds, searchOpts()...)
		if err != nil {
			return nil, err
		}
		res, err := ridge.CrossValRidge(Xv, Y, alphas, nFolds, cvOpts()...)
		if err != nil {
			return nil, err
		}
		return foldMean(res.R2), nil
	}
	forEachGroup(len(groups), groupWorkers, func(gi int) {
		g := groups[gi]
		cols := g.cols()

		// Single-group: destroy every other regressor, keep the group.
		rest, err := preprocess.Complement(p, cols)
		if err != nil {
			outs[gi].err = err
			return
		}
		Xsolo, err := preprocess.ShuffleColumns(X, rest, solo[gi].single)
		if err != nil {
			outs[gi].err = err
			return
		}
		r2Group, err := runFit(Xsolo)
		if err != nil {
			outs[gi].err = fmt.Errorf("group %q single-group fit: %w", g.Name, err)
			return
		}

		// Leave-one-group-out: destroy only the group.
		Xloo, err := preprocess.ShuffleColumns(X, cols, solo[gi].without)
		if err != nil {
			outs[gi].err = err
			return
		}
		r2Without, err := runFit(Xloo)
		if err != nil {
			outs[gi].err = fmt.Errorf("group %q leave-one-out fit: %w", g.Name, err)
			return
		}

		delta := make([]float64, q)
		for j := 0; j < q; j++ {
			delta[j] = fullR2[j] - r2Without[j]
		}
		outs[gi].gv = GroupVariance{R2: r2Group, DeltaR2: delta}
	})
	for gi := range outs {
		if outs[gi].err != nil {
			return nil, fmt.Errorf("%s: %w", opDecompose, outs[gi].err)
		}
	}

	res := &Result{
		FullR2: fullR2,
		Groups: make(map[string]GroupVariance, len(groups)),
		Alphas: fullAlphas,
		Folds:  fa,
	}
	for gi, g := range groups {
		res.Groups[g.Name] = outs[gi].gv
	}
	return res, nil
}

// shuffleStream pairs the two derived RNG streams one group consumes.
type shuffleStream struct {
	single  *rand.Rand
	without *rand.Rand
}

// forEachGroup runs body(gi) for every group with at most limit concurrent
// goroutines. limit <= 1 is a plain loop. Bodies write only their own
// output slot, so the join needs no locking.
func forEachGroup(length, limit int, body func(gi int)) {
	if length <= 0 {
		return
	}
	if limit <= 1 {
		for gi := 0; gi < length; gi++ {
			body(gi)
		}
		return
	}
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)
	for gi := 0; gi < length; gi++ {
		sem <- struct{}{}
		go func(gi int) {
			defer wg.Done()
			defer func() { <-sem }()
			body(gi)
		}(gi)
	}
	wg.Wait()
}

// validateGroups enforces the group contract: ranges in bounds and
// non-empty, no overlapping columns, names non-empty and unique.
func validateGroups(width int, groups []Group) error {
	if len(groups) == 0 {
		return ErrNoGroups
	}
	claimed := make([]bool, width)
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g.Name == "" || seen[g.Name] {
			return fmt.Errorf("group %q: %w", g.Name, ErrGroupName)
		}
		seen[g.Name] = true
		if g.Start < 0 || g.End > width || g.Start >= g.End {
			return fmt.Errorf("group %q [%d,%d) of width %d: %w", g.Name, g.Start, g.End, width, ErrGroupBounds)
		}
		for j := g.Start; j < g.End; j++ {
			if claimed[j] {
				return fmt.Errorf("group %q column %d: %w", g.Name, j, ErrGroupOverlap)
			}
			claimed[j] = true
		}
	}
	return nil
}

// foldMean averages R² across folds per output, ignoring the documented
// NaN entries (zero-variance held-out folds). A neuron with no finite
// fold keeps NaN.
func foldMean(r2 [][]float64) []float64 {
	if len(r2) == 0 {
		return nil
	}
	q := len(r2[0])
	out := make([]float64, q)
	for j := 0; j < q; j++ {
		sum, cnt := 0.0, 0
		for f := range r2 {
			if v := r2[f][j]; !math.IsNaN(v) {
				sum += v
				cnt++
			}
		}
		if cnt == 0 {
			out[j] = math.NaN()
			continue
		}
		out[j] = sum / float64(cnt)
	}
	return out
}

// rangeCols returns 0..n-1.
func rangeCols(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
