package vmath

// Rand is the random source consumed by spawning and physics
// Float64 returns a value in [0, 1)
type Rand interface {
	Float64() float64
	Uint64() uint64
}

// FastRand is a xorshift64 generator, not safe for concurrent use
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

func (r *FastRand) Uint64() uint64 {
	return r.Next()
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// FixedRand returns values from a fixed cycle, for deterministic tests and replays
type FixedRand struct {
	Values []float64
	pos    int
}

// NewFixedRand cycles through values; an empty list always yields 0.5
func NewFixedRand(values ...float64) *FixedRand {
	return &FixedRand{Values: values}
}

func (r *FixedRand) Float64() float64 {
	if len(r.Values) == 0 {
		return 0.5
	}
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	return v
}

func (r *FixedRand) Uint64() uint64 {
	return uint64(r.Float64() * (1 << 53))
}
