package gamedata

import (
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
)

// PoolEntry is one enemy's relative weight in the encounter pool.
type PoolEntry struct {
	EnemyID string `json:"enemyId"`
	Weight  int    `json:"weight"`
}

// EncountersFile represents the structure of encounters.json. The pool is a
// list rather than an object so its declared order survives decoding.
type EncountersFile struct {
	Pool []PoolEntry `json:"pool"`
}

// Validate requires a non-empty pool of positive weights.
func (f *EncountersFile) Validate() error {
	if len(f.Pool) == 0 {
		return fmt.Errorf("%w: encounter pool is empty", domain.ErrInvalidInput)
	}
	for _, e := range f.Pool {
		if e.Weight < 1 {
			return fmt.Errorf("%w: enemy %s: weight must be at least 1, got %d",
				domain.ErrInvalidInput, e.EnemyID, e.Weight)
		}
	}
	return nil
}

// LoadEncounterPool loads the encounter pool from the embedded encounters.json file.
func LoadEncounterPool() ([]PoolEntry, error) {
	file, err := Load[EncountersFile]("encounters.json")
	if err != nil {
		return nil, err
	}
	return file.Pool, nil
}
