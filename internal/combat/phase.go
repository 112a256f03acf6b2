package combat

// Phase represents the current phase of a battle.
type Phase int

const (
	// PhaseIdle - no battle has started
	PhaseIdle Phase = iota
	// PhasePlayerTurn - waiting for the player to attack or escape
	PhasePlayerTurn
	// PhaseResolved - the battle reached a terminal outcome
	PhaseResolved
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of one battle action.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeVictory - the enemy was defeated
	OutcomeVictory
	// OutcomeEnemyCounter - the enemy hit back and the battle continues
	OutcomeEnemyCounter
	// OutcomeEscaped - the player got away
	OutcomeEscaped
	// OutcomePlayerDied - the enemy's counter took the player to zero HP
	OutcomePlayerDied
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeEnemyCounter:
		return "enemy_counter"
	case OutcomeEscaped:
		return "escaped"
	case OutcomePlayerDied:
		return "player_died"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the battle.
func (o Outcome) Terminal() bool {
	return o == OutcomeVictory || o == OutcomeEscaped || o == OutcomePlayerDied
}
