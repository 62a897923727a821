// Package neurofit fits linear encoding models to neural recordings and
// decomposes their predictive power into per-variable contributions.
//
// 🚀 What is neurofit?
//
//	A small, deterministic library for the standard encoding-model loop on
//	calcium-imaging (and similar) data:
//		• Column standardization with train-only statistics (no test leakage)
//		• Independent per-column shuffling to destroy a regressor's information
//		• Per-neuron ridge hyperparameter search via one reusable SVD
//		• k-fold cross-validated ridge fits with held-out R² per neuron
//		• Raw (R²) and unique (ΔR²) variance explained per task variable
//
// ✨ Why choose neurofit?
//
//   - Reproducible – every randomized step takes an explicit, seedable RNG;
//     one fold assignment is shared across all model variants of a run
//   - Honest errors – strict sentinel errors, no panics on user input
//   - Fast – the alpha grid is evaluated by reweighting singular values,
//     never by refitting from scratch per alpha
//   - Pure Go on gonum – no cgo, no hidden global state
//
// Everything is organized under three subpackages:
//
//	preprocess/ — column standardizer, per-column shuffler, RNG utilities
//	ridge/      — fold assignment, per-neuron alpha search, cross-validated fits
//	decomp/     — the variance-decomposition driver (full / single-group /
//	              leave-one-group-out fits, R² and ΔR² per group per neuron)
//
// Quick sketch of a decomposition run:
//
//	X (frames × regressors)   Y (frames × neurons)
//	        │                          │
//	        └────── decomp.DecomposeVariance ──────▶ R², ΔR² per group
//
// Dive into each package's doc.go and example_test.go for worked examples.
//
//	go get github.com/katalvlaran/neurofit
package neurofit
