package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
)

// Catalog holds every loaded template and provides lookup utilities.
type Catalog struct {
	characters []CharacterDef
	enemies    []EnemyDef
	zones      []ZoneDef
	pool       []PoolEntry
}

// NewCatalog creates a catalog from loaded definitions. Every pool entry must
// reference a known enemy and at least one zone is required.
func NewCatalog(characters []CharacterDef, enemies []EnemyDef, zones []ZoneDef, pool []PoolEntry) (*Catalog, error) {
	c := &Catalog{
		characters: characters,
		enemies:    enemies,
		zones:      zones,
		pool:       pool,
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("%w: at least one zone is required", domain.ErrInvalidInput)
	}
	for _, e := range pool {
		if c.EnemyByID(e.EnemyID) == nil {
			return nil, fmt.Errorf("%w: encounter pool references unknown enemy %s", domain.ErrInvalidInput, e.EnemyID)
		}
	}
	return c, nil
}

// LoadCatalog loads and creates a catalog from the embedded JSON files.
func LoadCatalog() (*Catalog, error) {
	characters, err := LoadCharacters()
	if err != nil {
		return nil, err
	}
	if len(characters) == 0 {
		return nil, errors.New("no characters loaded from characters.json")
	}
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	zones, err := LoadZones()
	if err != nil {
		return nil, err
	}
	pool, err := LoadEncounterPool()
	if err != nil {
		return nil, err
	}
	return NewCatalog(characters, enemies, zones, pool)
}

// CharacterByID returns the character definition with the given ID, or nil if not found.
func (c *Catalog) CharacterByID(id string) *CharacterDef {
	for i := range c.characters {
		if c.characters[i].ID == id {
			return &c.characters[i]
		}
	}
	return nil
}

// EnemyByID returns the enemy definition with the given ID, or nil if not found.
func (c *Catalog) EnemyByID(id string) *EnemyDef {
	for i := range c.enemies {
		if c.enemies[i].ID == id {
			return &c.enemies[i]
		}
	}
	return nil
}

// Characters returns all character definitions in declared order.
func (c *Catalog) Characters() []CharacterDef {
	return c.characters
}

// Enemies returns all enemy definitions.
func (c *Catalog) Enemies() []EnemyDef {
	return c.enemies
}

// Zones returns the zones in cycle order.
func (c *Catalog) Zones() []ZoneDef {
	return c.zones
}

// Pool returns the encounter pool in declared order.
func (c *Catalog) Pool() []PoolEntry {
	return c.pool
}
