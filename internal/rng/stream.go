// Package rng provides the deterministic random stream used by map generation.
package rng

// LCG constants. Changing any of them changes every generated map.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Stream is a linear-congruential generator producing floats in [0,1).
// The same seed and call sequence always yield the same values.
//
// Not safe for concurrent use: every generation owns its own Stream.
type Stream struct {
	state int64
}

// New creates a Stream seeded with seed. The seed is reduced modulo the
// LCG modulus, so seeds congruent modulo 233280 produce the same sequence.
func New(seed int64) *Stream {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &Stream{state: s}
}

// Next advances the stream and returns a float in [0,1).
func (s *Stream) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / lcgModulus
}

// IntN returns an index in [0,n) using exactly one draw.
// Returns 0 without drawing if n <= 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
