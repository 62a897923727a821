package ridge

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/neurofit/preprocess"
)

const opCrossValRidge = "CrossValRidge"

// CrossValRidge runs k-fold cross-validated ridge regression with one
// regularization strength per output column.
//
// Per fold, on the training rows only: the column standardizer is fitted
// (default: every column; restrict via WithStandardizeColumns) and applied
// to both the training and the held-out slice — held-out rows never leak
// into the statistics. The standardized training design is factorized once
// and the per-output coefficients come from that shared SVD, each with its
// own alpha. Held-out predictions then yield per-output R² = 1 − RSS/TSS
// computed on the held-out rows alone.
//
// Edge case: a held-out fold whose target column has zero variance has no
// defined R²; the entry is NaN — returned, not raised, and never an Inf.
//
// The fold partition is drawn from WithSeed unless WithFoldAssignment
// supplies one; a decomposition run MUST supply one so every model variant
// is scored on identical held-out rows. A supplied assignment must cover
// X's rows and carry exactly nFolds folds.
//
// Inputs:
//   - X:      design matrix, samples × regressors.
//   - Y:      response matrix, samples × outputs.
//   - alphas: one strength per output column, finite, ≥ 0.
//   - nFolds: 2..samples.
//   - opts:   WithSeed, WithFoldAssignment, WithStandardizeColumns,
//     WithWorkers (parallel folds).
//
// Returns a CVResult with per-fold per-output R² and per-fold coefficient
// matrices; all arrays are fresh and caller-owned.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAlphaCount, ErrBadAlpha,
// ErrBadFoldCount, ErrFactorization, ErrNonFinite (any non-finite
// coefficient or any non-finite R² outside the documented NaN case).
//
// Complexity: O(k) folds × (O(n·p·min(n,p)) factorization + O(p·min(n,p)·q)
// coefficients).
func CrossValRidge(X, Y *mat.Dense, alphas []float64, nFolds int, opts ...Option) (*CVResult, error) {
	n, p, q, err := validateXY(X, Y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCrossValRidge, err)
	}
	if err = validateAlphas(alphas, q); err != nil {
		return nil, fmt.Errorf("%s: %w", opCrossValRidge, err)
	}
	o := gatherOptions(opts...)

	fa := o.folds
	if !o.haveFA {
		if fa, err = NewFoldAssignment(n, nFolds, preprocess.RNGFromSeed(o.seed)); err != nil {
			return nil, fmt.Errorf("%s: %w", opCrossValRidge, err)
		}
	} else if fa.NumRows() != n {
		return nil, fmt.Errorf("%s: fold assignment over %d rows, X has %d: %w",
			opCrossValRidge, fa.NumRows(), n, ErrDimensionMismatch)
	} else if fa.NumFolds() != nFolds {
		return nil, fmt.Errorf("%s: fold assignment has %d folds, nFolds=%d: %w",
			opCrossValRidge, fa.NumFolds(), nFolds, ErrBadFoldCount)
	}
	k := fa.NumFolds()

	stdCols := o.stdCols
	if stdCols == nil {
		stdCols = make([]int, p)
		for j := range stdCols {
			stdCols[j] = j
		}
	}

	res := &CVResult{
		R2:    make([][]float64, k),
		Coefs: make([]*mat.Dense, k),
		Folds: fa,
	}
	errs := make([]error, k)
	forEach(k, o.workers, func(f int) {
		train, test := fa.TrainRows(f), fa.TestRows(f)
		Xtr, Ytr := takeRows(X, train), takeRows(Y, train)
		Xte, Yte := takeRows(X, test), takeRows(Y, test)

		// Training-fold-only standardization; applied to both slices.
		Xtr2, st, err := preprocess.FitTransform(Xtr, stdCols)
		if err != nil {
			errs[f] = err
			return
		}
		Xte2, err := preprocess.Transform(st, Xte)
		if err != nil {
			errs[f] = err
			return
		}

		sv, err := factorize(Xtr2)
		if err != nil {
			errs[f] = err
			return
		}
		B := sv.coefs(Ytr, alphas)
		if !denseIsFinite(B) {
			errs[f] = fmt.Errorf("fold %d coefficients: %w", f, ErrNonFinite)
			return
		}

		var P mat.Dense
		P.Mul(Xte2, B)

		r2 := make([]float64, q)
		yte := make([]float64, len(test))
		pte := make([]float64, len(test))
		for j := 0; j < q; j++ {
			mat.Col(yte, j, Yte)
			mat.Col(pte, j, &P)
			r2[j] = RSquared(yte, pte)
			if math.IsInf(r2[j], 0) {
				errs[f] = fmt.Errorf("fold %d output %d R²: %w", f, j, ErrNonFinite)
				return
			}
		}
		res.R2[f] = r2
		res.Coefs[f] = B
	})
	if err = firstError(errs); err != nil {
		return nil, fmt.Errorf("%s: %w", opCrossValRidge, err)
	}
	return res, nil
}
