package gamedata

import (
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
)

// CharacterDef defines a selectable character loaded from JSON.
type CharacterDef struct {
	ID                string `json:"id"`                // Unique identifier (e.g., "knight")
	Name              string `json:"name"`              // Display name
	LevelUpThreshold  int    `json:"levelUpThreshold"`  // Victories per level up
	EncounterRate     int    `json:"encounterRate"`     // Carried with the character, not consulted by encounters
	WinProbability    int    `json:"winProbability"`    // Attack roll target against a 0-50 draw
	EscapeProbability int    `json:"escapeProbability"` // Escape roll target against a 0-100 draw
}

// Validate checks the character's invariants.
func (c *CharacterDef) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: character id is required", domain.ErrInvalidInput)
	}
	if c.LevelUpThreshold <= 0 {
		return fmt.Errorf("%w: character %s: levelUpThreshold must be positive, got %d",
			domain.ErrInvalidInput, c.ID, c.LevelUpThreshold)
	}
	if err := checkProbability("character "+c.ID+" encounterRate", c.EncounterRate); err != nil {
		return err
	}
	if err := checkProbability("character "+c.ID+" winProbability", c.WinProbability); err != nil {
		return err
	}
	return checkProbability("character "+c.ID+" escapeProbability", c.EscapeProbability)
}

// CharactersFile represents the structure of characters.json.
type CharactersFile struct {
	Characters []CharacterDef `json:"characters"`
}

// Validate checks every character and rejects duplicate IDs.
func (f *CharactersFile) Validate() error {
	seen := make(map[string]bool, len(f.Characters))
	for i := range f.Characters {
		if err := f.Characters[i].Validate(); err != nil {
			return err
		}
		if seen[f.Characters[i].ID] {
			return fmt.Errorf("%w: duplicate character id %s", domain.ErrInvalidInput, f.Characters[i].ID)
		}
		seen[f.Characters[i].ID] = true
	}
	return nil
}

// LoadCharacters loads character definitions from the embedded characters.json file.
func LoadCharacters() ([]CharacterDef, error) {
	file, err := Load[CharactersFile]("characters.json")
	if err != nil {
		return nil, err
	}
	return file.Characters, nil
}

// checkProbability rejects values outside [0,100].
func checkProbability(name string, value int) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: %s must be within [0,100], got %d", domain.ErrInvalidInput, name, value)
	}
	return nil
}
