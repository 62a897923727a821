package ridge

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/neurofit/preprocess"
)

const opFindBestAlphas = "FindBestAlphas"

// looDenomTol guards the leave-one-out denominator 1−h_i. Leverage h_i
// reaches 1 exactly when the model interpolates the training data (α==0
// with more regressors than samples); the closed form is then undefined
// and the candidate is scored +Inf, which removes it from contention
// without producing NaN.
const looDenomTol = 1e-12

// FindBestAlphas selects, independently for every output column of Y, the
// regularization strength from grid that minimizes cross-validated mean
// squared prediction error on held-out samples.
//
// nFolds == 0 selects leave-one-out validation via the SVD hat-matrix
// closed form: one factorization of X scores the whole grid (see svd.go).
// nFolds >= 2 selects k-fold validation: one factorization per training
// fold, every grid entry evaluated from that same factorization. Either
// way no candidate is ever refit from scratch.
//
// Tie policy: among candidates within AlphaTieRelTol relative error of the
// minimum, the LARGEST alpha wins — stronger regularization is preferred
// when the data cannot distinguish the candidates.
//
// Inputs:
//   - X:      design matrix, samples × regressors.
//   - Y:      response matrix, samples × outputs; rows correspond 1:1 to X.
//   - grid:   candidate alphas, finite and ≥ 0 (0 ⇒ plain least squares);
//     may span many orders of magnitude (e.g. 1e-10..1e9).
//   - nFolds: 0 for leave-one-out, otherwise 2..samples.
//   - opts:   WithSeed / WithFoldAssignment (k-fold partition),
//     WithWorkers (parallel grid sweep / parallel folds).
//
// Returns one selected alpha per output column.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrEmptyAlphaGrid,
// ErrBadAlpha, ErrBadFoldCount, ErrFactorization, ErrNonFinite.
//
// Complexity: O(n·p·min(n,p)) per factorization + O(|grid|·n·min(n,p)·q)
// for the sweep; memory O(n·min(n,p)).
func FindBestAlphas(X, Y *mat.Dense, grid []float64, nFolds int, opts ...Option) ([]float64, error) {
	n, _, q, err := validateXY(X, Y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFindBestAlphas, err)
	}
	if err = validateGrid(grid); err != nil {
		return nil, fmt.Errorf("%s: %w", opFindBestAlphas, err)
	}
	if nFolds < 0 || nFolds == 1 || nFolds > n {
		return nil, fmt.Errorf("%s: nFolds=%d, n=%d: %w", opFindBestAlphas, nFolds, n, ErrBadFoldCount)
	}
	o := gatherOptions(opts...)

	var mse [][]float64 // mse[ai][j]
	if nFolds == 0 {
		mse, err = looGridError(X, Y, grid, o.workers)
	} else {
		mse, err = kfoldGridError(X, Y, grid, nFolds, o)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFindBestAlphas, err)
	}

	alphas := make([]float64, q)
	for j := 0; j < q; j++ {
		alphas[j] = pickAlpha(grid, mse, j)
	}
	return alphas, nil
}

// looGridError scores every grid entry by the leave-one-out closed form:
// e_i = (y_i − ŷ_i)/(1 − h_i), with ŷ and the leverage h obtained from one
// thin SVD of X shared by all alphas and all outputs.
func looGridError(X, Y *mat.Dense, grid []float64, workers int) ([][]float64, error) {
	sv, err := factorize(X)
	if err != nil {
		return nil, err
	}
	n, _ := X.Dims()
	_, q := Y.Dims()
	r := len(sv.s)

	// D = Uᵀ·Y is alpha-independent; computed once.
	var D mat.Dense
	D.Mul(sv.u.T(), Y)

	mse := make([][]float64, len(grid))
	forEach(len(grid), workers, func(ai int) {
		w := make([]float64, r)
		sv.predWeights(w, grid[ai])

		// Uw[i,m] = U[i,m]·w_m; then ŷ = Uw·D and h_i = Σ_m U[i,m]·Uw[i,m].
		Uw := mat.NewDense(n, r, nil)
		h := make([]float64, n)
		for i := 0; i < n; i++ {
			for m := 0; m < r; m++ {
				uim := sv.u.At(i, m)
				Uw.Set(i, m, uim*w[m])
				h[i] += uim * uim * w[m]
			}
		}
		var Yhat mat.Dense
		Yhat.Mul(Uw, &D)

		row := make([]float64, q)
		for i := 0; i < n; i++ {
			denom := 1 - h[i]
			if denom < looDenomTol {
				// Interpolating model: this candidate cannot be scored
				// and must not win. +Inf keeps the comparison well defined.
				for j := 0; j < q; j++ {
					row[j] = math.Inf(1)
				}
				break
			}
			for j := 0; j < q; j++ {
				e := (Y.At(i, j) - Yhat.At(i, j)) / denom
				row[j] += e * e
			}
		}
		for j := 0; j < q; j++ {
			row[j] /= float64(n)
		}
		mse[ai] = row
	})
	return mse, nil
}

// kfoldGridError scores every grid entry by k-fold validation. Each
// training fold is factorized once; predictions for the whole grid are
// reweightings of that factorization.
func kfoldGridError(X, Y *mat.Dense, grid []float64, k int, o Options) ([][]float64, error) {
	n, _ := X.Dims()
	_, q := Y.Dims()

	fa := o.folds
	if !o.haveFA {
		var err error
		if fa, err = NewFoldAssignment(n, k, preprocess.RNGFromSeed(o.seed)); err != nil {
			return nil, err
		}
	} else {
		if fa.NumRows() != n {
			return nil, fmt.Errorf("fold assignment over %d rows, X has %d: %w", fa.NumRows(), n, ErrDimensionMismatch)
		}
		// A supplied assignment must agree with the requested fold count;
		// silently adopting its k would turn nFolds into a dead parameter.
		if fa.NumFolds() != k {
			return nil, fmt.Errorf("fold assignment has %d folds, nFolds=%d: %w", fa.NumFolds(), k, ErrBadFoldCount)
		}
	}

	// Per-fold accumulation into private slots, reduced after the join.
	sqerr := make([][][]float64, k) // sqerr[f][ai][j]
	errs := make([]error, k)
	forEach(k, o.workers, func(f int) {
		train, test := fa.TrainRows(f), fa.TestRows(f)
		Xtr, Ytr := takeRows(X, train), takeRows(Y, train)
		Xte, Yte := takeRows(X, test), takeRows(Y, test)

		sv, err := factorize(Xtr)
		if err != nil {
			errs[f] = err
			return
		}
		r := len(sv.s)

		var D mat.Dense // r × q
		D.Mul(sv.u.T(), Ytr)
		var M mat.Dense // test × r
		M.Mul(Xte, sv.v)

		local := make([][]float64, len(grid))
		w := make([]float64, r)
		G := mat.NewDense(r, q, nil)
		var P mat.Dense
		for ai := range grid {
			sv.coefWeights(w, grid[ai])
			for m := 0; m < r; m++ {
				for j := 0; j < q; j++ {
					G.Set(m, j, w[m]*D.At(m, j))
				}
			}
			P.Mul(&M, G) // held-out predictions

			row := make([]float64, q)
			for i := range test {
				for j := 0; j < q; j++ {
					e := Yte.At(i, j) - P.At(i, j)
					row[j] += e * e
				}
			}
			local[ai] = row
		}
		sqerr[f] = local
	})
	if err := firstError(errs); err != nil {
		return nil, err
	}

	mse := make([][]float64, len(grid))
	for ai := range grid {
		row := make([]float64, q)
		for f := 0; f < k; f++ {
			for j := 0; j < q; j++ {
				row[j] += sqerr[f][ai][j]
			}
		}
		for j := 0; j < q; j++ {
			row[j] /= float64(n)
		}
		mse[ai] = row
	}
	return mse, nil
}

// pickAlpha applies the documented selection rule to output column j:
// minimize MSE; among near-ties (AlphaTieRelTol) prefer the larger alpha.
func pickAlpha(grid []float64, mse [][]float64, j int) float64 {
	bestAlpha, bestMSE := grid[0], mse[0][j]
	for ai := 1; ai < len(grid); ai++ {
		m := mse[ai][j]
		switch {
		case nearTie(m, bestMSE):
			if grid[ai] > bestAlpha {
				bestAlpha, bestMSE = grid[ai], m
			}
		case m < bestMSE:
			bestAlpha, bestMSE = grid[ai], m
		}
	}
	return bestAlpha
}

// nearTie reports whether two cross-validation errors are indistinguishable
// under the documented relative tolerance. Equal values (including two
// +Inf scores) tie exactly; an Inf never ties a finite score — an
// unscoreable interpolating candidate must not displace a scored one.
func nearTie(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= AlphaTieRelTol*math.Max(math.Abs(a), math.Abs(b))
}
