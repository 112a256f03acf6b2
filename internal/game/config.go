package game

import (
	"github.com/samdwyer/fieldquest/internal/event"
	"github.com/samdwyer/fieldquest/internal/gamedata"
	"github.com/samdwyer/fieldquest/internal/rng"
	"github.com/samdwyer/fieldquest/internal/storage"
)

// Config holds the collaborators of a session.
type Config struct {
	// Store receives the saved player. Required.
	Store storage.Store

	// Catalog supplies templates. Nil loads the embedded data.
	Catalog *gamedata.Catalog

	// Source supplies every random draw. Nil uses a time-seeded source.
	Source rng.Source

	// Sink receives presentation events. Nil discards them.
	Sink event.Sink
}
