// Package decomp: functional configuration for the decomposition driver.
package decomp

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultSeed selects the fixed default RNG stream.
	DefaultSeed int64 = 0

	// DefaultWorkers runs groups sequentially.
	DefaultWorkers = 1

	// DefaultAlphaFolds selects leave-one-out validation inside the alpha
	// search (0 in ridge.FindBestAlphas terms).
	DefaultAlphaFolds = 0
)

// Options configures DecomposeVariance. Fields are unexported; the public
// API consumes ...Option.
type Options struct {
	seed       int64
	workers    int
	alphaFolds int
	stdCols    []int // nil ⇒ standardize every design column per fold
	rawY       bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults: default seed, sequential
// groups, leave-one-out alpha search, every column standardized, Y
// standardized per neuron before fitting.
func DefaultOptions() Options {
	return Options{seed: DefaultSeed, workers: DefaultWorkers, alphaFolds: DefaultAlphaFolds}
}

// WithSeed fixes the run's RNG seed. One seed determines the fold
// assignment AND every shuffle stream, so two runs with equal seeds are
// bit-identical (the idempotence contract).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers bounds concurrent workers, both across groups here and
// inside each ridge fit. Outputs are identical for any worker count.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("decomp: WithWorkers requires n >= 1")
	}
	return func(o *Options) { o.workers = n }
}

// WithAlphaFolds switches the alpha search from leave-one-out to k-fold
// validation with the given k (≥ 2). The search draws its OWN k-fold
// assignment from the run's root stream; the outer nFolds assignment is
// reserved for scoring, so k and nFolds vary independently. Panics if
// k < 2.
func WithAlphaFolds(k int) Option {
	if k < 2 {
		panic("decomp: WithAlphaFolds requires k >= 2")
	}
	return func(o *Options) { o.alphaFolds = k }
}

// WithStandardizeColumns restricts the per-fold design standardization to
// the given columns (forwarded to ridge.CrossValRidge). A nil or empty
// cols standardizes NOTHING; omit the option to standardize every column.
func WithStandardizeColumns(cols []int) Option {
	c := make([]int, len(cols))
	copy(c, cols)
	return func(o *Options) { o.stdCols = c }
}

// WithRawY skips the driver's global per-neuron standardization of Y, for
// callers whose responses are already zero mean / unit variance.
func WithRawY() Option {
	return func(o *Options) { o.rawY = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
