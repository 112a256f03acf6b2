// Package progression applies level ups and stat growth.
package progression

import "github.com/samdwyer/fieldquest/internal/entity"

// WinProbabilityStep is the win probability gained per level.
const WinProbabilityStep = 5

// ShouldLevelUp reports whether reaching defeated victories earns a level.
// Non-positive thresholds never level up.
func ShouldLevelUp(defeated, threshold int) bool {
	if threshold <= 0 || defeated <= 0 {
		return false
	}
	return defeated%threshold == 0
}

// LevelUp raises the player's level by one and grows the character's win
// probability. Growth is uncapped; past 50 every attack roll succeeds.
func LevelUp(p *entity.Player) {
	p.Level++
	p.Character.WinProbability += WinProbabilityStep
}
