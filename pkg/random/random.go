// Package random provides the injectable random source used by the tiling core.
//
// The core never draws from global state: every operation that needs a random
// choice (balancing tie-breaks, placement start positions) takes a [Source].
// Production code uses [New] with a seed; tests use [Sequence] to force an
// exact series of draws.
package random

import "math/rand/v2"

// Source is the subset of *rand.Rand used by the core.
// IntN returns a value in [0, n) and is never called with n <= 0.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed source. The same seed always yields the same draws.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Sequence is a deterministic Source replaying a fixed list of values.
// Each draw returns the next value modulo n; the list wraps around when
// exhausted. An empty Sequence always returns 0.
type Sequence struct {
	values []int
	pos    int
	calls  int
}

// NewSequence creates a Sequence replaying values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN implements Source.
func (s *Sequence) IntN(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many draws have been made.
func (s *Sequence) Calls() int { return s.calls }

var _ Source = (*rand.Rand)(nil)
var _ Source = (*Sequence)(nil)
