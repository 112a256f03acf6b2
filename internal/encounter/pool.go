package encounter

import (
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/gamedata"
)

// Pool maps enemy IDs to relative weights, in declared order.
type Pool []Weighted[string]

// NewPool builds a pool from loaded entries. Weights must be at least 1.
func NewPool(entries []gamedata.PoolEntry) (Pool, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: encounter pool is empty", domain.ErrInvalidInput)
	}
	pool := make(Pool, 0, len(entries))
	for _, e := range entries {
		if e.Weight < 1 {
			return nil, fmt.Errorf("%w: enemy %s: weight must be at least 1, got %d", domain.ErrInvalidInput, e.EnemyID, e.Weight)
		}
		pool = append(pool, Weighted[string]{Key: e.EnemyID, Weight: float64(e.Weight)})
	}
	return pool, nil
}
