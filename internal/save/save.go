// Package save persists player progress to a key-value store.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fieldquest/internal/entity"
	"github.com/samdwyer/fieldquest/internal/logger"
	"github.com/samdwyer/fieldquest/internal/storage"
	"github.com/samdwyer/fieldquest/internal/telemetry"
)

// PlayerKey is the store key holding the saved player.
const PlayerKey = "playerData"

// Save writes the player record. It returns only after the store accepted it.
func Save(ctx context.Context, store storage.Store, p *entity.Player) error {
	ctx, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal player: %w", err)
	}
	span.SetAttributes(attribute.Int("bytes", len(payload)))

	if err := store.Set(ctx, PlayerKey, payload); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

// Load reads the saved player. A missing or unreadable save yields (nil, nil)
// so the caller can fall back to a new game; store failures are returned.
func Load(ctx context.Context, store storage.Store) (*entity.Player, error) {
	payload, err := store.Get(ctx, PlayerKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}

	var p entity.Player
	if err := json.Unmarshal(payload, &p); err != nil {
		logger.FromContext(ctx).Warn("discarding corrupt save", "error", err)
		return nil, nil
	}
	if !plausible(&p) {
		logger.FromContext(ctx).Warn("discarding unplayable save", "name", p.Name, "character", p.Character.ID, "hp", p.HP)
		return nil, nil
	}
	return &p, nil
}

// Reset deletes the saved player.
func Reset(ctx context.Context, store storage.Store) error {
	if err := store.Delete(ctx, PlayerKey); err != nil {
		return fmt.Errorf("reset player: %w", err)
	}
	return nil
}

// plausible rejects records that decoded but cannot be played, such as a
// JSON null, a record with no character, or a fallen hero.
func plausible(p *entity.Player) bool {
	return p.Name != "" && p.Character.ID != "" && p.Character.LevelUpThreshold > 0 &&
		p.Level >= 1 && !p.IsDead()
}
