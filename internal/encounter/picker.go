// Package encounter decides, per step, whether an enemy appears and which one.
package encounter

import (
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/rng"
)

// Weighted is one labeled alternative in a weighted pick.
type Weighted[K comparable] struct {
	Key    K
	Weight float64
}

// Pick selects a key with probability proportional to its weight.
//
// A draw r in [0, total) is mapped to the first entry, in slice order, whose
// cumulative weight is >= r. A draw landing exactly on a boundary therefore
// resolves to the earlier entry.
func Pick[K comparable](entries []Weighted[K], src rng.Source) (K, error) {
	var zero K
	if len(entries) == 0 {
		return zero, fmt.Errorf("%w: no entries to pick from", domain.ErrInvalidInput)
	}

	total := 0.0
	for _, e := range entries {
		if e.Weight <= 0 {
			return zero, fmt.Errorf("%w: weight for %v must be positive, got %v", domain.ErrInvalidInput, e.Key, e.Weight)
		}
		total += e.Weight
	}

	r := src.Uniform(0, total)

	cumulative := 0.0
	for _, e := range entries {
		cumulative += e.Weight
		if r <= cumulative {
			return e.Key, nil
		}
	}

	// Only reachable if the source returns a value >= total.
	return entries[len(entries)-1].Key, nil
}
