// Package ridge: the shared SVD kernel.
//
// Every fit in this package goes through one thin singular value
// decomposition of the design matrix, X = U·diag(s)·Vᵀ. Ridge solutions
// for ANY regularization strength are then closed-form reweightings of
// the singular values:
//
//	coefficients: β(α) = V·diag(s/(s²+α))·Uᵀ·y
//	fitted values:  ŷ(α) = U·diag(s²/(s²+α))·Uᵀ·y
//	leverage:       h_i(α) = Σ_m U[i,m]²·s_m²/(s_m²+α)
//
// This is what makes a per-target search over a grid spanning twenty
// orders of magnitude tractable: the O(n·p·min(n,p)) factorization is paid
// once, and each alpha costs only matrix–vector scalings. It is also why
// the grid may contain extreme values without overflow — s²/(s²+α) and
// s/(s²+α) are bounded for every finite α ≥ 0.
//
// α == 0 is plain least squares: singular values below a relative
// truncation threshold contribute nothing (pseudo-inverse), so a singular
// design cannot produce non-finite coefficients.
package ridge

import (
	"gonum.org/v1/gonum/mat"
)

// svdRelTol is the relative threshold below which a singular value is
// treated as zero. Components with s_m <= svdRelTol·s_max are dropped from
// every reweighting, which is exactly the pseudo-inverse behavior at α==0.
const svdRelTol = 1e-12

// thinSVD is the reusable factorization of one design matrix.
type thinSVD struct {
	u *mat.Dense // n × r, left singular vectors
	v *mat.Dense // p × r, right singular vectors
	s []float64  // r singular values, descending
}

// factorize computes the thin SVD of X. Returns ErrFactorization if gonum's
// SVD fails to converge (with finite inputs this should not happen).
func factorize(X *mat.Dense) (*thinSVD, error) {
	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}
	sv := &thinSVD{u: &mat.Dense{}, v: &mat.Dense{}}
	svd.UTo(sv.u)
	svd.VTo(sv.v)
	sv.s = svd.Values(nil)
	return sv, nil
}

// rank returns the number of singular values kept after truncation.
func (sv *thinSVD) rank() int {
	cut := 0.0
	if len(sv.s) > 0 {
		cut = svdRelTol * sv.s[0]
	}
	r := 0
	for _, s := range sv.s {
		if s > cut {
			r++
		}
	}
	return r
}

// coefWeights fills w with s_m/(s_m²+alpha) for the kept components and 0
// for truncated ones. w must have len(sv.s).
func (sv *thinSVD) coefWeights(w []float64, alpha float64) {
	cut := 0.0
	if len(sv.s) > 0 {
		cut = svdRelTol * sv.s[0]
	}
	for m, s := range sv.s {
		if s <= cut {
			w[m] = 0
			continue
		}
		w[m] = s / (s*s + alpha)
	}
}

// predWeights fills w with s_m²/(s_m²+alpha) for the kept components and 0
// for truncated ones. w must have len(sv.s).
func (sv *thinSVD) predWeights(w []float64, alpha float64) {
	cut := 0.0
	if len(sv.s) > 0 {
		cut = svdRelTol * sv.s[0]
	}
	for m, s := range sv.s {
		if s <= cut {
			w[m] = 0
			continue
		}
		w[m] = (s * s) / (s*s + alpha)
	}
}

// coefs computes the (p × q) ridge coefficient matrix for Y (n × q) with
// one alpha per output column, all from this single factorization:
// B[:,j] = V·diag(s/(s²+α_j))·Uᵀ·Y[:,j].
//
// Complexity: O(n·r·q + p·r·q) with r = min(n,p).
func (sv *thinSVD) coefs(Y *mat.Dense, alphas []float64) *mat.Dense {
	r := len(sv.s)
	_, q := Y.Dims()

	// D = Uᵀ·Y, r × q.
	var D mat.Dense
	D.Mul(sv.u.T(), Y)

	// G[m,j] = coefWeight(s_m, α_j) · D[m,j].
	G := mat.NewDense(r, q, nil)
	w := make([]float64, r)
	for j := 0; j < q; j++ {
		sv.coefWeights(w, alphas[j])
		for m := 0; m < r; m++ {
			G.Set(m, j, w[m]*D.At(m, j))
		}
	}

	// B = V·G, p × q.
	var B mat.Dense
	B.Mul(sv.v, G)
	return &B
}
