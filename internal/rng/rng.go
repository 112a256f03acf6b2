// Package rng provides the uniform random draws consumed by the game engine.
package rng

import (
	"math/rand"
	"time"
)

// Source draws uniformly distributed numbers.
type Source interface {
	// Uniform returns a number in [lo, hi).
	Uniform(lo, hi float64) float64
}

// Seeded is a Source backed by math/rand.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a seeded source. A seed of 0 means a time-based seed is used.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a number in [lo, hi).
func (s *Seeded) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Sequence replays scripted values in order, ignoring the requested range.
// Once exhausted it returns lo.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a scripted source.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Uniform returns the next scripted value.
func (s *Sequence) Uniform(lo, hi float64) float64 {
	if s.next >= len(s.values) {
		return lo
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Remaining returns how many scripted values have not been consumed.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}
