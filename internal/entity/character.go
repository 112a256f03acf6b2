// Package entity provides the player and the character it owns.
package entity

import "github.com/samdwyer/fieldquest/internal/gamedata"

// Character is the player's own copy of a character template. WinProbability
// grows with level ups and may exceed 100.
type Character struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	LevelUpThreshold  int    `json:"levelUpThreshold"`
	EncounterRate     int    `json:"encounterRate"`
	WinProbability    int    `json:"winProbability"`
	EscapeProbability int    `json:"escapeProbability"`
}

// NewCharacter copies a template so later growth never touches the catalog.
func NewCharacter(def *gamedata.CharacterDef) Character {
	return Character{
		ID:                def.ID,
		Name:              def.Name,
		LevelUpThreshold:  def.LevelUpThreshold,
		EncounterRate:     def.EncounterRate,
		WinProbability:    def.WinProbability,
		EscapeProbability: def.EscapeProbability,
	}
}
