package rng

import (
	"testing"
)

func TestSeededReproducibility(t *testing.T) {
	s1 := NewSeeded(12345)
	s2 := NewSeeded(12345)

	for i := 0; i < 20; i++ {
		a, b := s1.Uniform(0, 100), s2.Uniform(0, 100)
		if a != b {
			t.Fatalf("draw %d mismatch: %v != %v", i, a, b)
		}
	}
}

func TestSeededRange(t *testing.T) {
	s := NewSeeded(42)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(10, 50)
		if v < 10 || v >= 50 {
			t.Fatalf("Uniform(10, 50) = %v, out of range", v)
		}
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(3, 7.5)

	if got := s.Uniform(0, 100); got != 3 {
		t.Errorf("first draw = %v, want 3", got)
	}
	if got := s.Remaining(); got != 1 {
		t.Errorf("Remaining() = %d, want 1", got)
	}
	if got := s.Uniform(0, 100); got != 7.5 {
		t.Errorf("second draw = %v, want 7.5", got)
	}
	// Exhausted sequences fall back to lo.
	if got := s.Uniform(4, 100); got != 4 {
		t.Errorf("exhausted draw = %v, want 4", got)
	}
}
