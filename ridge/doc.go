// Package ridge fits L2-regularized linear encoding models with per-output
// hyperparameter selection and k-fold cross-validated scoring.
//
// 🚀 What is ridge?
//
//	The numeric core of an encoding-model pipeline:
//	  • FoldAssignment — a randomized, reusable train/test partition
//	  • FindBestAlphas — per-output-column search over a candidate grid,
//	    scored by leave-one-out (closed form) or k-fold validation
//	  • CrossValRidge  — per-fold ridge fits with training-only
//	    standardization and held-out R² per output
//
// ✨ Key design points:
//   - One SVD, many alphas. Every fit factorizes its design matrix once;
//     ridge solutions for the whole grid are closed-form reweightings of
//     the singular values (see svd.go). Refitting per alpha per fold per
//     output would be asymptotically slower and is deliberately impossible
//     through this API.
//   - Per-output alphas. Hundreds of neurons with different SNR get
//     individually tuned regularization from one factorization.
//   - Numerically safe extremes. Grids from 1e-10 to 1e9 are fine, α==0
//     means least squares via truncated SVD, and a singular design cannot
//     emit Inf coefficients.
//   - Deterministic. Fold draws come from an explicit seed; a supplied
//     FoldAssignment is reused verbatim, which is how comparable fits
//     share identical held-out rows.
//   - Strict errors. Configuration problems surface as sentinel errors at
//     the boundary; a non-finite value anywhere but the documented NaN R²
//     case is ErrNonFinite, never silent.
//
// ⚙️ Usage:
//
//	grid := ridge.LogSpace(-10, 9, 20)
//	alphas, err := ridge.FindBestAlphas(X, Y, grid, 0) // 0 ⇒ leave-one-out
//	res, err := ridge.CrossValRidge(X, Y, alphas, 10,
//	    ridge.WithSeed(42), ridge.WithWorkers(4))
//
// Complexity: one thin SVD is O(n·p·min(n,p)); each alpha afterwards costs
// matrix–vector scalings only.
package ridge
