package engine

import "math/rand"

// countingSource wraps a rand.Source and counts every underlying draw,
// including redraws inside rejection loops. The count is the exact
// number of source calls needed to rebuild the stream state, no matter
// how many draws a top-level operation consumes.
type countingSource struct {
	src   rand.Source
	draws int64
}

func (s *countingSource) Int63() int64 {
	s.draws++
	return s.src.Int63()
}

func (s *countingSource) Seed(seed int64) {
	s.src.Seed(seed)
	s.draws = 0
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position counts underlying source draws, enabling exact save/restore
// even for operations like Shuffle that consume many draws at once.
type RNG struct {
	seed int64
	cnt  *countingSource
	src  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	cnt := &countingSource{src: rand.NewSource(seed)}
	return &RNG{
		seed: seed,
		cnt:  cnt,
		src:  rand.New(cnt),
	}
}

// Seed returns the seed the RNG was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Roll performs a percentile check: true if a uniform roll in [1,100]
// lands at or under chance.
func (r *RNG) Roll(chance int) bool {
	return r.src.Intn(100)+1 <= chance
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}

// Pick returns a uniformly random index into a list of the given length.
// Returns -1 for an empty list.
func (r *RNG) Pick(length int) int {
	if length <= 0 {
		return -1
	}
	return r.src.Intn(length)
}

// Shuffle randomizes the order of n elements using the swap function.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}

// Position returns the number of source draws made since creation.
func (r *RNG) Position() int64 {
	return r.cnt.draws
}

// RestoreRNG creates an RNG and advances its source to the given
// position. This reproduces the exact RNG state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for rng.cnt.draws < position {
		rng.cnt.Int63()
	}
	return rng
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
