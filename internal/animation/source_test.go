package animation

import (
	"math/rand/v2"
)

// fixedSource answers every draw with the same value, capped to the range
type fixedSource struct {
	v int
}

func (s *fixedSource) IntN(n int) int {
	if s.v >= n {
		return n - 1
	}
	return s.v
}

// scriptSource replays values in order and records the ranges asked for
type scriptSource struct {
	values []int
	ranges []int
}

func (s *scriptSource) IntN(n int) int {
	s.ranges = append(s.ranges, n)
	if len(s.values) == 0 {
		return n - 1
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v >= n {
		return n - 1
	}
	return v
}

var (
	never  = &fixedSource{v: 1 << 16}
	always = &fixedSource{v: 0}
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
