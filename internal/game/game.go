package game

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fieldquest/internal/combat"
	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/encounter"
	"github.com/samdwyer/fieldquest/internal/entity"
	"github.com/samdwyer/fieldquest/internal/event"
	"github.com/samdwyer/fieldquest/internal/gamedata"
	"github.com/samdwyer/fieldquest/internal/logger"
	"github.com/samdwyer/fieldquest/internal/metrics"
	"github.com/samdwyer/fieldquest/internal/rng"
	"github.com/samdwyer/fieldquest/internal/save"
	"github.com/samdwyer/fieldquest/internal/storage"
	"github.com/samdwyer/fieldquest/internal/telemetry"
)

// Session holds the entire state of one play session.
// It is not safe for concurrent use; commands are processed one at a time.
type Session struct {
	id      string
	catalog *gamedata.Catalog
	pool    encounter.Pool
	engine  *encounter.Engine
	zones   *encounter.ZoneCycle
	battle  *combat.Resolver
	store   storage.Store
	src     rng.Source
	sink    event.Sink

	state  State
	player *entity.Player
}

// NewSession creates a session in the title state.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("%w: a store is required", domain.ErrInvalidInput)
	}

	catalog := cfg.Catalog
	if catalog == nil {
		var err error
		catalog, err = gamedata.LoadCatalog()
		if err != nil {
			return nil, fmt.Errorf("load game data: %w", err)
		}
	}

	pool, err := encounter.NewPool(catalog.Pool())
	if err != nil {
		return nil, err
	}

	src := cfg.Source
	if src == nil {
		src = rng.NewSeeded(0)
	}
	sink := cfg.Sink
	if sink == nil {
		sink = event.Discard
	}

	return &Session{
		id:      logger.GenerateSessionID(),
		catalog: catalog,
		pool:    pool,
		engine:  encounter.NewEngine(catalog),
		zones:   encounter.NewZoneCycle(catalog.Zones()),
		battle:  combat.NewResolver(),
		store:   cfg.Store,
		src:     src,
		sink:    sink,
		state:   StateTitle,
	}, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Characters returns the selectable characters.
func (s *Session) Characters() []gamedata.CharacterDef {
	return s.catalog.Characters()
}

// Snapshot is a read-only view of the session for presentation.
type Snapshot struct {
	State  State
	Player *entity.Player // Copy; nil in the title state
	Zone   gamedata.ZoneDef
	Enemy  *gamedata.EnemyDef // Non-nil during combat
}

// Snapshot returns the current view.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State: s.state,
		Zone:  s.zones.Current(),
	}
	if s.player != nil {
		snap.Player = s.player.Clone()
	}
	if s.state == StateCombat {
		snap.Enemy = s.battle.Enemy()
	}
	return snap
}

// NewGame starts a fresh game with the named character and saves it.
func (s *Session) NewGame(ctx context.Context, name, characterID string) error {
	ctx = s.context(ctx)
	if s.state != StateTitle {
		return fmt.Errorf("%w: cannot start a new game during %s", domain.ErrInvalidState, s.state)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: a name is required", domain.ErrInvalidInput)
	}
	def := s.catalog.CharacterByID(characterID)
	if def == nil {
		return fmt.Errorf("%w: unknown character %q", domain.ErrInvalidInput, characterID)
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.new")
	defer span.End()
	span.SetAttributes(attribute.String("character", def.ID))

	p := entity.NewPlayer(name, def)
	if err := s.persist(ctx, p); err != nil {
		return err
	}

	s.player = p
	s.zones.Reset()
	s.battle.End()
	s.state = StateExplore

	logger.FromContext(ctx).Info("new game", "name", name, "character", def.ID)
	return nil
}

// Continue loads the saved game. It reports false when there is nothing to
// continue, leaving the session in the title state.
func (s *Session) Continue(ctx context.Context) (bool, error) {
	ctx = s.context(ctx)
	if s.state != StateTitle {
		return false, fmt.Errorf("%w: cannot continue during %s", domain.ErrInvalidState, s.state)
	}

	p, err := save.Load(ctx, s.store)
	if err != nil {
		metrics.StoreFailuresTotal.WithLabelValues("load").Inc()
		return false, err
	}
	if p == nil {
		logger.FromContext(ctx).Info("no save data")
		return false, nil
	}

	s.player = p
	s.zones.Reset()
	s.battle.End()
	s.state = StateExplore

	logger.FromContext(ctx).Info("game continued", "name", p.Name, "level", p.Level, "steps", p.Steps)
	return true, nil
}

// Move walks one step, advances the zone cycle, and rolls for an encounter in
// the zone the step ends in. Progress is saved before Move returns.
func (s *Session) Move(ctx context.Context, dir entity.Direction) error {
	ctx = s.context(ctx)
	if s.state != StateExplore {
		return fmt.Errorf("%w: cannot move during %s", domain.ErrInvalidState, s.state)
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.move")
	defer span.End()

	if err := s.player.Move(dir); err != nil {
		return err
	}
	metrics.StepsTotal.Inc()

	if s.zones.Step() {
		zone := s.zones.Current()
		s.sink.Publish(event.Event{Kind: event.KindZoneChanged, Zone: &zone})
		logger.FromContext(ctx).Debug("zone changed", "zone", zone.ID)
	}

	zone := s.zones.Current()
	span.SetAttributes(
		attribute.String("zone", zone.ID),
		attribute.Int("steps", s.player.Steps),
	)

	enemy, err := s.engine.MaybeTrigger(ctx, zone, s.pool, s.src)
	if err != nil {
		return err
	}
	if enemy != nil {
		if err := s.battle.Start(enemy); err != nil {
			return err
		}
		s.player.EnemiesEncountered++
		s.state = StateCombat

		metrics.EncountersTotal.WithLabelValues(zone.ID, enemy.ID).Inc()
		s.sink.Publish(event.Event{Kind: event.KindEncounterTriggered, Enemy: enemy})
		logger.FromContext(ctx).Info("encounter", "zone", zone.ID, "enemy", enemy.ID)
	}

	return s.persist(ctx, s.player)
}

// Reset discards the saved game and returns to the title state.
func (s *Session) Reset(ctx context.Context) error {
	ctx = s.context(ctx)
	s.clear()
	if err := save.Reset(ctx, s.store); err != nil {
		metrics.StoreFailuresTotal.WithLabelValues("reset").Inc()
		return err
	}
	logger.FromContext(ctx).Info("game reset")
	return nil
}

func (s *Session) clear() {
	s.player = nil
	s.battle.End()
	s.zones.Reset()
	s.state = StateTitle
}

// persist saves p synchronously.
func (s *Session) persist(ctx context.Context, p *entity.Player) error {
	if err := save.Save(ctx, s.store, p); err != nil {
		metrics.StoreFailuresTotal.WithLabelValues("save").Inc()
		logger.FromContext(ctx).Error("save failed", "error", err)
		return err
	}
	return nil
}

func (s *Session) context(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.id)
}
