package preprocess_test

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/neurofit/preprocess"
)

// ExampleFit demonstrates fitting standardization statistics on a subset of
// columns and applying them: column 0 becomes zero mean / unit variance,
// column 1 passes through untouched.
func ExampleFit() {
	X := mat.NewDense(3, 2, []float64{
		1, 100,
		2, 200,
		3, 300,
	})

	st, err := preprocess.Fit(X, []int{0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, err := preprocess.Transform(st, X)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 3; i++ {
		fmt.Printf("%.0f %.0f\n", out.At(i, 0), out.At(i, 1))
	}
	// Output:
	// -1 100
	// 0 200
	// 1 300
}

// ExampleShuffleColumns demonstrates the shuffle contract: the selected
// column keeps its exact values in a new order, the other column keeps its
// order exactly.
func ExampleShuffleColumns() {
	X := mat.NewDense(6, 2, []float64{
		0, 10,
		1, 11,
		2, 12,
		3, 13,
		4, 14,
		5, 15,
	})

	out, err := preprocess.ShuffleColumns(X, []int{0}, preprocess.RNGFromSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	shuffled := make([]float64, 6)
	untouched := make([]float64, 6)
	mat.Col(shuffled, 0, out)
	mat.Col(untouched, 1, out)

	sort.Float64s(shuffled)
	fmt.Println("values preserved:", fmt.Sprint(shuffled) == "[0 1 2 3 4 5]")
	fmt.Println("other column untouched:", fmt.Sprint(untouched) == "[10 11 12 13 14 15]")
	// Output:
	// values preserved: true
	// other column untouched: true
}
