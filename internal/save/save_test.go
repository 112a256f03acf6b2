package save

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/fieldquest/internal/entity"
	"github.com/samdwyer/fieldquest/internal/gamedata"
	"github.com/samdwyer/fieldquest/internal/progression"
	"github.com/samdwyer/fieldquest/internal/storage"
	"github.com/samdwyer/fieldquest/internal/storage/memory"
)

func newPlayer() *entity.Player {
	return entity.NewPlayer("Alice", &gamedata.CharacterDef{
		ID:                "knight",
		Name:              "Blue Hero",
		LevelUpThreshold:  3,
		EncounterRate:     10,
		WinProbability:    55,
		EscapeProbability: 99,
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	p := newPlayer()
	p.Position = entity.Position{X: -3, Y: 7}
	p.Steps = 42
	p.HP = 40
	p.EnemiesDefeated = 6
	p.EnemiesEncountered = 9
	progression.LevelUp(p)
	progression.LevelUp(p)

	require.NoError(t, Save(ctx, store, p))

	loaded, err := Load(ctx, store)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, *p, *loaded)
	assert.Equal(t, 65, loaded.Character.WinProbability, "boosted win probability must survive")
}

func TestSaveLoadSave(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	p := newPlayer()
	progression.LevelUp(p)
	require.NoError(t, Save(ctx, store, p))

	first, err := store.Get(ctx, PlayerKey)
	require.NoError(t, err)

	loaded, err := Load(ctx, store)
	require.NoError(t, err)
	require.NoError(t, Save(ctx, store, loaded))

	second, err := store.Get(ctx, PlayerKey)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestSavedFieldNames(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, Save(ctx, store, newPlayer()))

	payload, err := store.Get(ctx, PlayerKey)
	require.NoError(t, err)
	for _, field := range []string{
		`"name"`, `"character"`, `"levelUpThreshold"`, `"winProbability"`, `"escapeProbability"`,
		`"position"`, `"steps"`, `"level"`, `"hp"`, `"enemiesDefeated"`, `"enemiesEncountered"`,
	} {
		assert.Contains(t, string(payload), field)
	}
}

func TestLoadMissing(t *testing.T) {
	loaded, err := Load(context.Background(), memory.New())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "{{{"},
		{name: "json null", payload: "null"},
		{name: "wrong shape", payload: `{"name": 5}`},
		{name: "no character", payload: `{"name":"Alice","level":1,"hp":100}`},
		{name: "dead", payload: `{"name":"Alice","character":{"id":"thief","levelUpThreshold":2},"level":1,"hp":-20}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			require.NoError(t, store.Set(context.Background(), PlayerKey, []byte(tt.payload)))

			loaded, err := Load(context.Background(), store)
			assert.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, Save(ctx, store, newPlayer()))
	require.NoError(t, Reset(ctx, store))

	loaded, err := Load(ctx, store)
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Resetting twice is fine.
	assert.NoError(t, Reset(ctx, store))
}

var errDisk = errors.New("disk full")

type failingStore struct{ storage.Store }

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errDisk }
func (failingStore) Set(context.Context, string, []byte) error   { return errDisk }
func (failingStore) Delete(context.Context, string) error        { return errDisk }

func TestStoreFailuresAreSurfaced(t *testing.T) {
	ctx := context.Background()
	store := failingStore{}

	assert.ErrorIs(t, Save(ctx, store, newPlayer()), errDisk)
	_, err := Load(ctx, store)
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, Reset(ctx, store), errDisk)
}
