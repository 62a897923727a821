// Package decomp attributes a linear encoding model's predictive power to
// named groups of regressors, per neuron.
//
// 🚀 What is decomp?
//
//	The orchestration layer over preprocess and ridge. One call —
//	DecomposeVariance — runs the full model, a single-group fit (all other
//	regressors shuffled), and a leave-one-group-out fit (only the group
//	shuffled) for every task variable, on ONE shared fold assignment, and
//	reports per neuron:
//	  • R²_full   — the full model's held-out variance explained
//	  • R²_group  — raw variance the group alone explains (shared
//	                variance included)
//	  • ΔR²_group — unique variance: R²_full − R²_without-the-group,
//	                unclipped (small negatives are information, not bugs)
//
// ✨ Guarantees:
//   - One seed ⇒ one fold assignment ⇒ every model variant scored on
//     identical held-out rows; ΔR² differences can never be fold noise.
//   - Shuffle streams per group are derived deterministically up front;
//     WithWorkers changes wall time, never a single output bit.
//   - The full model is fitted once and reused as every group's baseline.
//   - Source matrices are never mutated; each variant fits a fresh copy.
//
// ⚙️ Usage:
//
//	groups := []decomp.Group{
//	    {Name: "choice", Start: 0, End: 30},
//	    {Name: "previous choice", Start: 30, End: 60},
//	    {Name: "time", Start: 60, End: 90},
//	}
//	res, err := decomp.DecomposeVariance(X, Y, groups,
//	    ridge.LogSpace(-6, 6, 13), 10, decomp.WithSeed(42))
//	uv := res.Groups["choice"].DeltaR2 // unique variance per neuron
//
// Cost: 1 + 2·len(groups) alpha searches and cross-validated fits; budget
// accordingly for wide design matrices.
package decomp
