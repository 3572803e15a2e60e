package ducks

// RNG is a Mulberry32 pseudo-random generator keyed by a seed string.
// Two generators built from the same string produce the same sequence on
// every platform.
type RNG struct {
	seed  string
	state uint32
}

// NewRNG creates a generator for the given seed string.
func NewRNG(seed string) *RNG {
	return &RNG{
		seed:  seed,
		state: HashSeed(seed),
	}
}

// HashSeed folds a seed string into a 32-bit generator state
// (FNV-1a followed by a murmur-style finalizer).
func HashSeed(seed string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= 16777619
	}
	return mix(h)
}

// LevelSeed derives a deterministic state for one level from a base state.
func LevelSeed(base uint32, level int) uint32 {
	return mix(base ^ (uint32(level) * 2654435761))
}

func mix(h uint32) uint32 {
	h = (h ^ (h >> 16)) * 0x85ebca6b
	h = (h ^ (h >> 13)) * 0xc2b2ae35
	return h ^ (h >> 16)
}

// Next returns the next float in [0, 1).
func (r *RNG) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Float returns a float in [min, max).
func (r *RNG) Float(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// Intn returns an int in [0, n). Returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() * float64(n))
}

// Derive returns an independent stream keyed by this generator's seed and
// a label. The parent's position does not affect the child.
func (r *RNG) Derive(label string) *RNG {
	return NewRNG(r.seed + "/" + label)
}

// Seed returns the seed string the generator was built from.
func (r *RNG) Seed() string {
	return r.seed
}

// State returns the current 32-bit state.
func (r *RNG) State() uint32 {
	return r.state
}
