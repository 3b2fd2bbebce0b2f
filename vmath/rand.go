package vmath

// --- Randomness ---

// RandMax is the upper bound of the 15-bit Rand15 range
const RandMax = 0x7FFF

// FastRand is a xorshift64 generator; deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Rand15 returns a value in [0, RandMax]
func (r *FastRand) Rand15() int {
	return int(r.Next() >> 49)
}

// Jitter returns Rand15()%span - offset, the debris scatter formula
func (r *FastRand) Jitter(span, offset int) int {
	if span <= 0 {
		return -offset
	}
	return r.Rand15()%span - offset
}
