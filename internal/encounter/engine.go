package encounter

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/gamedata"
	"github.com/samdwyer/fieldquest/internal/rng"
	"github.com/samdwyer/fieldquest/internal/telemetry"
)

// EnemyLookup resolves enemy IDs to templates.
type EnemyLookup interface {
	EnemyByID(id string) *gamedata.EnemyDef
}

// Engine rolls for encounters.
type Engine struct {
	enemies EnemyLookup
}

// NewEngine creates an encounter engine backed by the given enemy lookup.
func NewEngine(enemies EnemyLookup) *Engine {
	return &Engine{enemies: enemies}
}

// MaybeTrigger rolls the zone's encounter rate and, on success, picks an enemy
// from the pool. It returns nil when no encounter happens.
//
// The trigger roll is drawn before the pool roll. A rate of 0 never triggers
// and a rate of 100 always does.
func (e *Engine) MaybeTrigger(ctx context.Context, zone gamedata.ZoneDef, pool Pool, src rng.Source) (*gamedata.EnemyDef, error) {
	_, span := telemetry.Tracer("encounter").Start(ctx, "encounter.trigger")
	defer span.End()

	roll := src.Uniform(0, 100)
	span.SetAttributes(
		attribute.String("zone", zone.ID),
		attribute.Int("zone.encounter_rate", zone.EncounterRate),
		attribute.Float64("roll", roll),
	)
	if roll >= float64(zone.EncounterRate) {
		span.SetAttributes(attribute.Bool("triggered", false))
		return nil, nil
	}

	id, err := Pick[string](pool, src)
	if err != nil {
		return nil, err
	}
	enemy := e.enemies.EnemyByID(id)
	if enemy == nil {
		return nil, fmt.Errorf("%w: encounter pool references unknown enemy %s", domain.ErrInvalidInput, id)
	}

	span.SetAttributes(
		attribute.Bool("triggered", true),
		attribute.String("enemy", enemy.ID),
	)
	return enemy, nil
}
