package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/neurofit/preprocess"
)

// drain takes n draws from an RNG for sequence comparison.
func drain(seed int64, n int) []int64 {
	r := preprocess.RNGFromSeed(seed)
	out := make([]int64, n)
	for i := range out {
		out[i] = r.Int63()
	}
	return out
}

// TestRNGFromSeed_Deterministic verifies the seed policy: equal seeds give
// equal streams, seed 0 aliases the fixed default, distinct seeds diverge.
func TestRNGFromSeed_Deterministic(t *testing.T) {
	assert.Equal(t, drain(5, 8), drain(5, 8), "same seed, same stream")
	assert.Equal(t, drain(0, 8), drain(0, 8), "seed 0 is still deterministic")
	assert.NotEqual(t, drain(1, 8), drain(2, 8), "different seeds must diverge")
}

// TestDeriveRNG_IndependentStreams verifies stream derivation: distinct
// stream ids give distinct sequences, and the derivation itself is
// reproducible from an equal parent state.
func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base1 := preprocess.RNGFromSeed(9)
	a := preprocess.DeriveRNG(base1, 1)
	b := preprocess.DeriveRNG(base1, 2)
	assert.NotEqual(t, a.Int63(), b.Int63(), "streams 1 and 2 must decorrelate")

	// Same parent seed, same derivation order ⇒ identical children.
	base2 := preprocess.RNGFromSeed(9)
	base3 := preprocess.RNGFromSeed(9)
	c := preprocess.DeriveRNG(base2, 1)
	d := preprocess.DeriveRNG(base3, 1)
	for i := 0; i < 8; i++ {
		assert.Equal(t, c.Int63(), d.Int63(), "draw %d", i)
	}
}

// TestDeriveRNG_NilBase verifies the nil-parent policy is deterministic.
func TestDeriveRNG_NilBase(t *testing.T) {
	a := preprocess.DeriveRNG(nil, 3)
	b := preprocess.DeriveRNG(nil, 3)
	for i := 0; i < 4; i++ {
		assert.Equal(t, a.Int63(), b.Int63(), "draw %d", i)
	}
}
