// Package lcg implements the fixed linear-congruential generator shared by
// both benchmark workloads. The recurrence is
//
//	seed = (1664525*seed + 1013904223) mod 2^32
//
// and must reproduce the same state sequence on every platform, so the state
// is a uint32 and the modulus comes from the wrap-around of uint32 arithmetic.
package lcg

// Recurrence parameters.
const (
	Multiplier uint32 = 1664525
	Increment  uint32 = 1013904223
)

// Advance performs one step of the recurrence on a raw seed.
func Advance(seed uint32) uint32 {
	return Multiplier*seed + Increment
}

// Sequence threads the generator state explicitly. There is no package-level
// generator; every workload owns its own Sequence. Not safe for concurrent
// use.
type Sequence struct {
	seed uint32
}

// New returns a Sequence starting from seed.
func New(seed uint32) *Sequence {
	return &Sequence{seed: seed}
}

// Next advances the state and returns it. Callers derive bounded draws from
// the returned state (state%n, int(state%n)-offset).
func (s *Sequence) Next() uint32 {
	s.seed = Advance(s.seed)
	return s.seed
}

// State returns the current state without advancing it.
func (s *Sequence) State() uint32 {
	return s.seed
}
