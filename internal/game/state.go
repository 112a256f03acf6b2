// Package game runs one play session: it validates commands, drives the
// encounter and battle engines, and persists progress after every change.
package game

// State represents the current game state.
type State int

const (
	// StateTitle means no game is loaded. New game and continue are accepted.
	StateTitle State = iota
	// StateExplore is the field mode where the player moves step by step.
	StateExplore
	// StateCombat is the battle mode; movement is locked until it resolves.
	StateCombat
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateExplore:
		return "explore"
	case StateCombat:
		return "combat"
	default:
		return "unknown"
	}
}
