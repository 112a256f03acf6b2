package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdwyer/fieldquest/internal/combat"
	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/event"
	"github.com/samdwyer/fieldquest/internal/gamedata"
	"github.com/samdwyer/fieldquest/internal/logger"
	"github.com/samdwyer/fieldquest/internal/metrics"
	"github.com/samdwyer/fieldquest/internal/save"
)

// Attack fights the current enemy.
func (s *Session) Attack(ctx context.Context) (combat.Result, error) {
	ctx = s.context(ctx)
	if s.state != StateCombat {
		return combat.Result{}, fmt.Errorf("%w: no battle to attack in during %s", domain.ErrInvalidState, s.state)
	}

	enemy := s.battle.Enemy()
	result, err := s.battle.Attack(ctx, s.player, s.src)
	if err != nil {
		return combat.Result{}, err
	}
	return result, s.applyResult(ctx, enemy, result)
}

// Escape tries to flee the current enemy. A failed attempt costs one counter.
func (s *Session) Escape(ctx context.Context) (combat.Result, error) {
	ctx = s.context(ctx)
	if s.state != StateCombat {
		return combat.Result{}, fmt.Errorf("%w: no battle to escape from during %s", domain.ErrInvalidState, s.state)
	}

	enemy := s.battle.Enemy()
	result, err := s.battle.AttemptEscape(ctx, s.player, s.src)
	if err != nil {
		return combat.Result{}, err
	}
	return result, s.applyResult(ctx, enemy, result)
}

// applyResult publishes the outcome of a resolved action, moves the session
// to the next state and persists it. The state is final before any event
// consumer gets to reveal it.
func (s *Session) applyResult(ctx context.Context, enemy *gamedata.EnemyDef, result combat.Result) error {
	log := logger.FromContext(ctx)

	metrics.BattleActionsTotal.WithLabelValues(enemy.ID, result.Outcome.String()).Inc()
	s.sink.Publish(event.Event{
		Kind:    event.KindBattleOutcome,
		Enemy:   enemy,
		Outcome: result.Outcome.String(),
		Detail:  describe(enemy, result),
	})

	if result.LeveledUp {
		metrics.LevelUpsTotal.Inc()
		s.sink.Publish(event.Event{Kind: event.KindLevelUp, Level: result.Level})
		log.Info("level up", "level", result.Level, "win_probability", s.player.Character.WinProbability)
	}

	switch result.Outcome {
	case combat.OutcomePlayerDied:
		metrics.DeathsTotal.Inc()
		s.sink.Publish(event.Event{Kind: event.KindPlayerDied})
		log.Info("player died", "enemy", enemy.ID, "level", s.player.Level, "defeated", s.player.EnemiesDefeated)

		// The fallen record goes to the store before the delete, so a failed
		// delete leaves nothing Continue will accept.
		saveErr := s.persist(ctx, s.player)
		s.clear()
		if err := save.Reset(ctx, s.store); err != nil {
			metrics.StoreFailuresTotal.WithLabelValues("reset").Inc()
			return errors.Join(saveErr, err)
		}
		return saveErr

	case combat.OutcomeVictory, combat.OutcomeEscaped:
		log.Info("battle over", "enemy", enemy.ID, "outcome", result.Outcome.String(), "turns", s.battle.Turns())
		s.battle.End()
		s.state = StateExplore

	default:
		log.Debug("enemy counter", "enemy", enemy.ID, "hp", s.player.HP)
	}

	return s.persist(ctx, s.player)
}

// describe returns the message shown for an action.
func describe(enemy *gamedata.EnemyDef, result combat.Result) string {
	switch result.Outcome {
	case combat.OutcomeVictory:
		if result.LeveledUp {
			return fmt.Sprintf("Defeated %s! Level up! Reached level %d!", enemy.Name, result.Level)
		}
		return fmt.Sprintf("Defeated %s!", enemy.Name)
	case combat.OutcomeEscaped:
		return "Got away safely!"
	case combat.OutcomePlayerDied:
		if result.EscapeFailed {
			return fmt.Sprintf("Could not escape %s! The hero has fallen.", enemy.Name)
		}
		return fmt.Sprintf("%s struck back! The hero has fallen.", enemy.Name)
	default:
		if result.EscapeFailed {
			return fmt.Sprintf("Could not escape %s! Took %d damage.", enemy.Name, result.Damage)
		}
		return fmt.Sprintf("%s struck back! Took %d damage.", enemy.Name, result.Damage)
	}
}
