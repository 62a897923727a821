// Package preprocess prepares design and response matrices for encoding-model
// fits: column standardization and information-destroying column shuffles.
//
// 🚀 What is preprocess?
//
//	Two small, pure transforms plus the RNG plumbing they need:
//	  • Fit / Transform — per-column mean/scale statistics over a selectable
//	    subset of columns; identity on the rest. Fit once on training rows,
//	    Transform train and test alike — no test-set leakage.
//	  • ShuffleColumns — permute selected columns independently along the
//	    sample axis, leaving all other columns bit-identical. Destroys a
//	    regressor group's temporal information without touching its
//	    marginal distribution.
//
// ✨ Key properties:
//   - Inputs are never mutated; every transform returns a fresh matrix,
//     so full-model and shuffled-model fits can share one source matrix.
//   - Zero-variance columns standardize to their mean-centered constant
//     (scale floored to 1) — no division by zero, ever.
//   - Each shuffled column gets its OWN permutation; a single shared
//     permutation would preserve cross-column correlations and contaminate
//     unique-variance estimates downstream.
//   - Randomness is explicit: pass a *rand.Rand, or nil for the fixed
//     default stream. RNGFromSeed / DeriveRNG give reproducible substreams.
//
// ⚙️ Usage:
//
//	st, err := preprocess.Fit(X, cols)         // training rows only
//	Xs, err := preprocess.Transform(st, X)     // any rows, same state
//	Xp, err := preprocess.ShuffleColumns(X, cols, rng)
//
// Complexity: all transforms are O(rows·cols) time and memory.
package preprocess
