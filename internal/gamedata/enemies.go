package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fieldquest/internal/domain"
)

// EnemyDef defines an enemy type loaded from JSON.
// Enemies have no hit points: a battle is one roll per turn on the player's side.
type EnemyDef struct {
	ID                string `json:"id"`                // Unique identifier (e.g., "dragon_blue")
	Name              string `json:"name"`              // Display name
	Color             string `json:"color"`             // Hex color code (e.g., "#3366FF")
	AttackProbability int    `json:"attackProbability"` // 0-100
	Strength          int    `json:"strength"`          // >= 0
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Validate checks the enemy's invariants.
func (e *EnemyDef) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: enemy id is required", domain.ErrInvalidInput)
	}
	if e.Strength < 0 {
		return fmt.Errorf("%w: enemy %s: strength must not be negative, got %d",
			domain.ErrInvalidInput, e.ID, e.Strength)
	}
	return checkProbability("enemy "+e.ID+" attackProbability", e.AttackProbability)
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// Validate checks every enemy and rejects duplicate IDs.
func (f *EnemiesFile) Validate() error {
	seen := make(map[string]bool, len(f.Enemies))
	for i := range f.Enemies {
		if err := f.Enemies[i].Validate(); err != nil {
			return err
		}
		if seen[f.Enemies[i].ID] {
			return fmt.Errorf("%w: duplicate enemy id %s", domain.ErrInvalidInput, f.Enemies[i].ID)
		}
		seen[f.Enemies[i].ID] = true
	}
	return nil
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
