// Package preprocess - RNG utilities shared by all randomized stages.
//
// This file centralizes deterministic random generation for shuffles and
// fold assignment across the module.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; pure functions only.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Use DeriveRNG to create independent streams for parallel
//     workers, deriving all streams sequentially BEFORE fanning out.
package preprocess

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0 or
// a nil RNG. The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014 constants). Small
// changes in inputs produce large, well-distributed output changes, so
// derived streams are decorrelated from each other and from the parent.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil, the default seed is used as parent.
// Otherwise base.Int63() is consumed once, intentionally advancing base state
// so that reusing the same stream id by mistake still yields distinct children.
//
// Call during setup (not in hot loops, not concurrently) to create
// per-group or per-worker RNGs; the derivation order is part of a run's
// deterministic contract.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
