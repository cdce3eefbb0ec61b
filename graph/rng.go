package graph

import "math/rand"

// defaultRNGSeed is the seed used when callers pass seed == 0, so that a
// heuristic search without WithSeed/WithRand is still reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 uses defaultRNGSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; each search owns its own source.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// pickIndex returns a uniformly random index in [0, n) drawn from r.
// n must be > 0.
func pickIndex(r *rand.Rand, n int) int {
	if n == 1 {
		return 0
	}

	return r.Intn(n)
}
