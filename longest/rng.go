// Package longest - RNG utilities for the heuristic solvers.
//
// All randomness in this package flows through here:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: one RNG factory, no time-based sources anywhere.
//   - Substreams: SplitMix64-style derivation gives every Builder call its
//     own decorrelated stream, so concurrent calls cannot interfere.
//
// math/rand.Rand is not goroutine-safe; each Builder invocation gets a fresh
// instance and never shares it.
package longest

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer (Vigna 2014). Small input
// changes produce large, well-distributed output changes, so substreams for
// consecutive (start, seed, scorer) triples are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
