// Package event carries engine notifications to the presentation layer.
package event

import "github.com/samdwyer/fieldquest/internal/gamedata"

// Kind identifies an event.
type Kind string

const (
	KindEncounterTriggered Kind = "encounter_triggered"
	KindBattleOutcome      Kind = "battle_outcome"
	KindLevelUp            Kind = "level_up"
	KindPlayerDied         Kind = "player_died"
	KindZoneChanged        Kind = "zone_changed"
)

// Event is one engine notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind    Kind
	Enemy   *gamedata.EnemyDef // EncounterTriggered, BattleOutcome
	Outcome string             // BattleOutcome: victory, enemy_counter, escaped, player_died
	Detail  string             // BattleOutcome: human-readable summary
	Level   int                // LevelUp: the new level
	Zone    *gamedata.ZoneDef  // ZoneChanged
}

// Sink receives events. Publish must not block the engine.
type Sink interface {
	Publish(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

// Publish calls f(e).
func (f SinkFunc) Publish(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Recorder collects events in order.
type Recorder struct {
	events []Event
}

// Publish appends e.
func (r *Recorder) Publish(e Event) {
	r.events = append(r.events, e)
}

// Events returns the collected events.
func (r *Recorder) Events() []Event {
	return r.events
}

// Kinds returns the kinds of the collected events, in order.
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Drain returns the collected events and clears the recorder.
func (r *Recorder) Drain() []Event {
	events := r.events
	r.events = nil
	return events
}
