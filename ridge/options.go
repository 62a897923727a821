// Package ridge: functional configuration for the alpha selector and the
// cross-validated fitter.
//
// Design goals (module-wide):
//   - Deterministic behavior: no global state, no implicit randomness; the
//     seed (or an explicit fold assignment) fully determines a run.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: Option constructors panic only on nonsensical
//     parameters (programmer error); data-dependent validation returns
//     sentinel errors from the algorithms themselves.
package ridge

import (
	"math/rand"

	"github.com/katalvlaran/neurofit/preprocess"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultSeed selects the fixed default RNG stream (see preprocess.RNGFromSeed).
	DefaultSeed int64 = 0

	// DefaultWorkers runs everything sequentially. Values > 1 bound the
	// goroutine fan-out over independent folds / grid entries.
	DefaultWorkers = 1

	// AlphaTieRelTol is the relative tolerance under which two candidate
	// alphas are considered tied on cross-validated error. Among near-ties
	// the LARGER alpha wins: stronger regularization is the safer choice
	// for generalization, and the rule must be explicit because it is
	// user-visible in per-neuron alpha histograms.
	AlphaTieRelTol = 1e-9
)

// Options configures FindBestAlphas and CrossValRidge. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	seed    int64
	workers int
	stdCols []int          // nil ⇒ standardize every column
	folds   FoldAssignment // zero value ⇒ draw a fresh assignment
	haveFA  bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults: sequential execution,
// default seed, per-fold standardization of every column, fresh folds.
func DefaultOptions() Options {
	return Options{seed: DefaultSeed, workers: DefaultWorkers}
}

// WithSeed fixes the RNG seed used for internal fold assignment.
// Seed 0 selects the fixed default stream (still deterministic).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers bounds the number of concurrent workers used for
// embarrassingly parallel loops (per-fold fits, per-alpha grid sweeps).
// Results are identical for any worker count. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("ridge: WithWorkers requires n >= 1")
	}
	return func(o *Options) { o.workers = n }
}

// WithStandardizeColumns restricts the per-fold column standardization of
// CrossValRidge to the given design-matrix columns (for example, only the
// analog tracking columns of a design matrix whose task regressors are
// already binary indicators). A nil or empty cols standardizes NOTHING —
// to standardize every column (the default), omit the option entirely.
func WithStandardizeColumns(cols []int) Option {
	c := make([]int, len(cols))
	copy(c, cols)
	return func(o *Options) { o.stdCols = c }
}

// WithFoldAssignment reuses an existing fold assignment instead of drawing
// a fresh one. This is how a decomposition run keeps the SAME held-out rows
// across its full-model and shuffled-model fits — a correctness requirement
// for comparing their R², not a performance knob.
func WithFoldAssignment(fa FoldAssignment) Option {
	return func(o *Options) {
		o.folds = fa
		o.haveFA = true
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// defaultRNG returns the module's fixed default stream.
func defaultRNG() *rand.Rand { return preprocess.RNGFromSeed(0) }
