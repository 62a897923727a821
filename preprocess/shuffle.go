package preprocess

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const opShuffle = "ShuffleColumns"

// ShuffleColumns returns a NEW matrix identical to X except that every
// column listed in cols is independently permuted along the row (sample)
// axis. Each selected column draws its OWN permutation from rng: a single
// shared permutation would preserve cross-column correlations among the
// shuffled regressors, which would leak back into unique-variance
// estimates downstream. Columns outside cols keep their original row
// order exactly; X itself is never mutated.
//
// A nil rng selects the fixed default stream (see RNGFromSeed); pass an
// explicit generator for anything that must be reproducible.
//
// Inputs:
//   - X:    matrix to shuffle (rows × width), non-nil, non-empty.
//   - cols: column indices to permute; may be empty (pure copy).
//   - rng:  permutation source; nil ⇒ deterministic default.
//
// Errors: ErrNilMatrix, ErrColumnIndex, ErrDuplicateColumn.
//
// Complexity: O(rows·width) for the copy + O(rows) per shuffled column.
func ShuffleColumns(X *mat.Dense, cols []int, rng *rand.Rand) (*mat.Dense, error) {
	if X == nil {
		return nil, fmt.Errorf("%s: %w", opShuffle, ErrNilMatrix)
	}
	rows, width := X.Dims()
	if rows == 0 || width == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opShuffle, rows, width, ErrNilMatrix)
	}
	if _, err := checkColumns(width, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", opShuffle, err)
	}

	r := rng
	if r == nil {
		r = RNGFromSeed(0)
	}

	out := mat.DenseCopyOf(X)
	for _, j := range cols {
		perm := r.Perm(rows) // fresh permutation per column
		for i := 0; i < rows; i++ {
			out.Set(i, j, X.At(perm[i], j))
		}
	}
	return out, nil
}

// Complement returns the column indices of a matrix of the given width
// that are NOT listed in cols, in ascending order. The decomposition
// driver uses it to shuffle "everything except the group of interest".
//
// Errors: ErrColumnIndex, ErrDuplicateColumn.
//
// Complexity: O(width + len(cols)).
func Complement(width int, cols []int) ([]int, error) {
	selected, err := checkColumns(width, cols)
	if err != nil {
		return nil, fmt.Errorf("Complement: %w", err)
	}
	rest := make([]int, 0, width-len(cols))
	for j := 0; j < width; j++ {
		if !selected[j] {
			rest = append(rest, j)
		}
	}
	return rest, nil
}
