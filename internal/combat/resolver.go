// Package combat provides the single-enemy battle state machine.
package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/entity"
	"github.com/samdwyer/fieldquest/internal/gamedata"
	"github.com/samdwyer/fieldquest/internal/progression"
	"github.com/samdwyer/fieldquest/internal/rng"
	"github.com/samdwyer/fieldquest/internal/telemetry"
)

const (
	// CounterDamage is the HP lost each time the enemy hits back.
	CounterDamage = 30

	// AttackRollRange is the width of the attack draw. The win probability is
	// compared against a 0-50 draw, not 0-100.
	AttackRollRange = 50

	// EscapeRollRange is the width of the escape draw.
	EscapeRollRange = 100
)

// Result describes what one attack or escape attempt did.
type Result struct {
	Outcome      Outcome
	Roll         float64 // The draw that decided the action
	Damage       int     // HP lost by the player this action
	EscapeFailed bool    // Set when a failed escape forced the counter
	LeveledUp    bool
	Level        int // Player level after the action
}

// Resolver runs one battle at a time.
// Enemies have no HP: each player turn is a single roll.
type Resolver struct {
	phase   Phase
	outcome Outcome
	enemy   *gamedata.EnemyDef
	turns   int
}

// NewResolver creates an idle resolver.
func NewResolver() *Resolver {
	return &Resolver{phase: PhaseIdle}
}

// Start begins a battle against enemy. Only one battle may be active.
func (r *Resolver) Start(enemy *gamedata.EnemyDef) error {
	if enemy == nil {
		return fmt.Errorf("%w: battle requires an enemy", domain.ErrInvalidInput)
	}
	if r.Active() {
		return fmt.Errorf("%w: a battle with %s is already active", domain.ErrInvalidState, r.enemy.ID)
	}
	r.phase = PhasePlayerTurn
	r.outcome = OutcomeNone
	r.enemy = enemy
	r.turns = 0
	return nil
}

// Active reports whether a battle is waiting for the player's action.
func (r *Resolver) Active() bool {
	return r.phase == PhasePlayerTurn
}

// Phase returns the current phase.
func (r *Resolver) Phase() Phase { return r.phase }

// Outcome returns the terminal outcome of the last battle, or OutcomeNone.
func (r *Resolver) Outcome() Outcome { return r.outcome }

// Enemy returns the enemy being fought, or nil when idle.
func (r *Resolver) Enemy() *gamedata.EnemyDef { return r.enemy }

// Turns returns the number of actions taken in the current battle.
func (r *Resolver) Turns() int { return r.turns }

// End clears the battle and returns to idle.
func (r *Resolver) End() {
	r.phase = PhaseIdle
	r.outcome = OutcomeNone
	r.enemy = nil
	r.turns = 0
}

// Attack rolls against the character's win probability. A win counts the
// victory and may level the player up; a loss applies the enemy's counter.
func (r *Resolver) Attack(ctx context.Context, p *entity.Player, src rng.Source) (Result, error) {
	if !r.Active() {
		return Result{}, fmt.Errorf("%w: no active battle to attack in", domain.ErrInvalidState)
	}

	_, span := telemetry.Tracer("combat").Start(ctx, "combat.attack")
	defer span.End()

	r.turns++
	roll := src.Uniform(0, AttackRollRange)

	var result Result
	if roll < float64(p.Character.WinProbability) {
		result = r.victory(p)
	} else {
		result = r.counter(p)
	}
	result.Roll = roll

	span.SetAttributes(
		attribute.String("enemy", r.enemy.ID),
		attribute.Float64("roll", roll),
		attribute.Int("win_probability", p.Character.WinProbability),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("hp", p.HP),
		attribute.Int("level", p.Level),
	)
	return result, nil
}

// AttemptEscape rolls against the character's escape probability. A failed
// escape is not free: the enemy's counter is applied immediately.
func (r *Resolver) AttemptEscape(ctx context.Context, p *entity.Player, src rng.Source) (Result, error) {
	if !r.Active() {
		return Result{}, fmt.Errorf("%w: no active battle to escape from", domain.ErrInvalidState)
	}

	_, span := telemetry.Tracer("combat").Start(ctx, "combat.escape")
	defer span.End()

	r.turns++
	roll := src.Uniform(0, EscapeRollRange)

	var result Result
	if roll < float64(p.Character.EscapeProbability) {
		r.resolve(OutcomeEscaped)
		result = Result{Outcome: OutcomeEscaped, Level: p.Level}
	} else {
		result = r.counter(p)
		result.EscapeFailed = true
	}
	result.Roll = roll

	span.SetAttributes(
		attribute.String("enemy", r.enemy.ID),
		attribute.Float64("roll", roll),
		attribute.Int("escape_probability", p.Character.EscapeProbability),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("hp", p.HP),
	)
	return result, nil
}

func (r *Resolver) victory(p *entity.Player) Result {
	p.EnemiesDefeated++
	result := Result{Outcome: OutcomeVictory}
	if progression.ShouldLevelUp(p.EnemiesDefeated, p.Character.LevelUpThreshold) {
		progression.LevelUp(p)
		result.LeveledUp = true
	}
	result.Level = p.Level
	r.resolve(OutcomeVictory)
	return result
}

// counter applies exactly one enemy hit and checks for death.
func (r *Resolver) counter(p *entity.Player) Result {
	p.TakeDamage(CounterDamage)
	result := Result{Outcome: OutcomeEnemyCounter, Damage: CounterDamage, Level: p.Level}
	if p.IsDead() {
		result.Outcome = OutcomePlayerDied
		r.resolve(OutcomePlayerDied)
	}
	return result
}

func (r *Resolver) resolve(outcome Outcome) {
	r.phase = PhaseResolved
	r.outcome = outcome
}
