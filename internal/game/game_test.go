package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/fieldquest/internal/combat"
	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/entity"
	"github.com/samdwyer/fieldquest/internal/event"
	"github.com/samdwyer/fieldquest/internal/rng"
	"github.com/samdwyer/fieldquest/internal/save"
	"github.com/samdwyer/fieldquest/internal/storage"
	"github.com/samdwyer/fieldquest/internal/storage/memory"
)

// Draws used with the embedded data. The first zone (plain) has rate 1 and
// the pool is monster_green:2, dragon_blue:1.
const (
	noEncounter   = 99.0
	encounterDraw = 0.5
	pickGreen     = 1.0
	pickDragon    = 2.5
)

type fixture struct {
	session *Session
	store   *memory.Store
	src     *rng.Sequence
	events  *event.Recorder
}

func newFixture(t *testing.T, draws ...float64) *fixture {
	t.Helper()
	f := &fixture{
		store:  memory.New(),
		src:    rng.NewSequence(draws...),
		events: &event.Recorder{},
	}
	s, err := NewSession(Config{Store: f.store, Source: f.src, Sink: f.events})
	require.NoError(t, err)
	f.session = s
	return f
}

func (f *fixture) saved(t *testing.T) *entity.Player {
	t.Helper()
	p, err := save.Load(context.Background(), f.store)
	require.NoError(t, err)
	return p
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateTitle, "title"},
		{StateExplore, "explore"},
		{StateCombat, "combat"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestNewSessionRequiresStore(t *testing.T) {
	_, err := NewSession(Config{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewGame(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.session.NewGame(ctx, "  Alice  ", "knight"))
	assert.Equal(t, StateExplore, f.session.State())

	p := f.saved(t)
	require.NotNil(t, p, "new game must be saved immediately")
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "knight", p.Character.ID)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 100, p.HP)

	err := f.session.NewGame(ctx, "Bob", "thief")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestNewGameInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		player    string
		character string
	}{
		{name: "blank name", player: "   ", character: "knight"},
		{name: "unknown character", player: "Alice", character: "wizard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.session.NewGame(context.Background(), tt.player, tt.character)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, StateTitle, f.session.State())
		})
	}
}

func TestCommandsInTitleState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.ErrorIs(t, f.session.Move(ctx, entity.DirUp), domain.ErrInvalidState)
	_, err := f.session.Attack(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = f.session.Escape(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestMoveWithoutEncounter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, noEncounter, noEncounter)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))

	require.NoError(t, f.session.Move(ctx, entity.DirRight))
	require.NoError(t, f.session.Move(ctx, entity.DirUp))

	snap := f.session.Snapshot()
	assert.Equal(t, StateExplore, snap.State)
	assert.Equal(t, entity.Position{X: 1, Y: -1}, snap.Player.Position)
	assert.Equal(t, 2, snap.Player.Steps)
	assert.Nil(t, snap.Enemy)

	assert.Equal(t, 2, f.saved(t).Steps, "every step is persisted")
	assert.Empty(t, f.events.Events())
}

func TestMoveUnknownDirection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))

	assert.ErrorIs(t, f.session.Move(ctx, "north"), domain.ErrInvalidInput)
	assert.Equal(t, 0, f.session.Snapshot().Player.Steps)
}

func TestEncounterLocksMovement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, encounterDraw, pickDragon)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))

	require.NoError(t, f.session.Move(ctx, entity.DirDown))

	snap := f.session.Snapshot()
	assert.Equal(t, StateCombat, snap.State)
	require.NotNil(t, snap.Enemy)
	assert.Equal(t, "dragon_blue", snap.Enemy.ID)
	assert.Equal(t, 1, snap.Player.EnemiesEncountered)
	assert.Equal(t, 1, f.saved(t).EnemiesEncountered)

	events := f.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.KindEncounterTriggered, events[0].Kind)
	assert.Equal(t, "dragon_blue", events[0].Enemy.ID)

	assert.ErrorIs(t, f.session.Move(ctx, entity.DirDown), domain.ErrInvalidState)
	assert.Equal(t, 1, f.session.Snapshot().Player.Steps, "rejected move must not count a step")
	assert.Zero(t, f.src.Remaining())
}

func TestZoneChangesBeforeTriggerCheck(t *testing.T) {
	ctx := context.Background()
	draws := make([]float64, 0, 11)
	for i := 0; i < 9; i++ {
		draws = append(draws, noEncounter)
	}
	// 10 would not trigger in the plain (rate 1) but does in the forest (rate 15).
	draws = append(draws, 10, pickGreen)
	f := newFixture(t, draws...)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))

	for i := 0; i < 9; i++ {
		require.NoError(t, f.session.Move(ctx, entity.DirLeft))
		assert.Equal(t, "plain", f.session.Snapshot().Zone.ID)
	}
	require.NoError(t, f.session.Move(ctx, entity.DirLeft))

	snap := f.session.Snapshot()
	assert.Equal(t, "forest", snap.Zone.ID)
	assert.Equal(t, StateCombat, snap.State)
	assert.Equal(t, "monster_green", snap.Enemy.ID)
	assert.Equal(t, []event.Kind{event.KindZoneChanged, event.KindEncounterTriggered}, f.events.Kinds())
	assert.Equal(t, "forest", f.events.Events()[0].Zone.ID)
}

func TestVictoryAndLevelUp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t,
		encounterDraw, pickGreen, 0,  // first battle: win
		encounterDraw, pickDragon, 0, // second battle: win, level up
	)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "thief"))

	require.NoError(t, f.session.Move(ctx, entity.DirUp))
	result, err := f.session.Attack(ctx)
	require.NoError(t, err)
	assert.Equal(t, combat.OutcomeVictory, result.Outcome)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, StateExplore, f.session.State())

	require.NoError(t, f.session.Move(ctx, entity.DirUp))
	result, err = f.session.Attack(ctx)
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)

	p := f.saved(t)
	assert.Equal(t, 2, p.EnemiesDefeated)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 25, p.Character.WinProbability)

	assert.Equal(t, []event.Kind{
		event.KindEncounterTriggered, event.KindBattleOutcome,
		event.KindEncounterTriggered, event.KindBattleOutcome, event.KindLevelUp,
	}, f.events.Kinds())
	last := f.events.Events()[4]
	assert.Equal(t, 2, last.Level)
	assert.Equal(t, "victory", f.events.Events()[3].Outcome)
}

func TestFailedEscapeCostsOneCounter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, encounterDraw, pickDragon, 75)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "thief"))
	require.NoError(t, f.session.Move(ctx, entity.DirUp))

	result, err := f.session.Escape(ctx)
	require.NoError(t, err)
	assert.True(t, result.EscapeFailed)
	assert.Equal(t, combat.OutcomeEnemyCounter, result.Outcome)
	assert.Equal(t, StateCombat, f.session.State())
	assert.Equal(t, 70, f.saved(t).HP)

	events := f.events.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "Could not escape Flying Thing! Took 30 damage.", events[1].Detail)
}

func TestEscapeReturnsToField(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, encounterDraw, pickGreen, 10, noEncounter)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "thief"))
	require.NoError(t, f.session.Move(ctx, entity.DirUp))

	result, err := f.session.Escape(ctx)
	require.NoError(t, err)
	assert.Equal(t, combat.OutcomeEscaped, result.Outcome)
	assert.Equal(t, StateExplore, f.session.State())

	require.NoError(t, f.session.Move(ctx, entity.DirUp))
	assert.Equal(t, 100, f.saved(t).HP)
}

func TestDeathResetsGame(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, encounterDraw, pickDragon, 49, 49, 49, 49)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "thief"))
	require.NoError(t, f.session.Move(ctx, entity.DirUp))

	var result combat.Result
	for i := 0; i < 4; i++ {
		var err error
		result, err = f.session.Attack(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, combat.OutcomePlayerDied, result.Outcome)
	assert.Equal(t, StateTitle, f.session.State())
	assert.Nil(t, f.session.Snapshot().Player)
	assert.Nil(t, f.saved(t), "save must be deleted on death")
	assert.Contains(t, f.events.Kinds(), event.KindPlayerDied)

	_, err := f.session.Attack(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = f.session.Escape(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	ok, err := f.session.Continue(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// A new game can start afterwards.
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))
	assert.Equal(t, StateExplore, f.session.State())
}

func TestContinue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, noEncounter, noEncounter, noEncounter)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))
	for i := 0; i < 3; i++ {
		require.NoError(t, f.session.Move(ctx, entity.DirRight))
	}
	want := f.session.Snapshot().Player

	other, err := NewSession(Config{Store: f.store, Source: rng.NewSequence()})
	require.NoError(t, err)

	ok, err := other.Continue(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, StateExplore, other.State())
	assert.Equal(t, *want, *other.Snapshot().Player)
	assert.Equal(t, "plain", other.Snapshot().Zone.ID)

	_, err = other.Continue(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestContinueWithoutSave(t *testing.T) {
	f := newFixture(t)
	ok, err := f.session.Continue(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, StateTitle, f.session.State())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, encounterDraw, pickGreen)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))
	require.NoError(t, f.session.Move(ctx, entity.DirUp))

	require.NoError(t, f.session.Reset(ctx))
	assert.Equal(t, StateTitle, f.session.State())
	assert.Nil(t, f.saved(t))

	_, err := f.session.Attack(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, encounterDraw, pickGreen, 0)
	require.NoError(t, f.session.NewGame(ctx, "Alice", "knight"))

	require.NoError(t, f.session.Dispatch(ctx, Move(entity.DirDown)))
	assert.ErrorIs(t, f.session.Dispatch(ctx, Move(entity.DirDown)), domain.ErrInvalidState)
	require.NoError(t, f.session.Dispatch(ctx, Command{Kind: CmdAttack}))
	assert.Equal(t, StateExplore, f.session.State())

	assert.ErrorIs(t, f.session.Dispatch(ctx, Command{Kind: CmdEscape}), domain.ErrInvalidState)
	assert.ErrorIs(t, f.session.Dispatch(ctx, Command{Kind: CommandKind(42)}), domain.ErrInvalidInput)
}

var errDisk = errors.New("disk full")

type brokenStore struct{ storage.Store }

func (brokenStore) Set(context.Context, string, []byte) error { return errDisk }

func TestSaveFailureIsSurfaced(t *testing.T) {
	s, err := NewSession(Config{Store: brokenStore{memory.New()}, Source: rng.NewSequence()})
	require.NoError(t, err)

	err = s.NewGame(context.Background(), "Alice", "knight")
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, StateTitle, s.State(), "an unsaved game must not start")
	assert.Nil(t, s.Snapshot().Player)
}

type stuckDeleteStore struct{ storage.Store }

func (stuckDeleteStore) Delete(context.Context, string) error { return errDisk }

func TestDeathWithFailedDeleteCannotBeContinued(t *testing.T) {
	ctx := context.Background()
	store := stuckDeleteStore{memory.New()}
	s, err := NewSession(Config{Store: store, Source: rng.NewSequence(encounterDraw, pickDragon, 49, 49, 49, 49)})
	require.NoError(t, err)
	require.NoError(t, s.NewGame(ctx, "Alice", "thief"))
	require.NoError(t, s.Move(ctx, entity.DirUp))

	for i := 0; i < 3; i++ {
		_, err := s.Attack(ctx)
		require.NoError(t, err)
	}
	result, err := s.Attack(ctx)
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, combat.OutcomePlayerDied, result.Outcome)
	assert.Equal(t, StateTitle, s.State())

	other, err := NewSession(Config{Store: store, Source: rng.NewSequence()})
	require.NoError(t, err)
	ok, err := other.Continue(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "a fallen hero must not be continued")
	assert.Equal(t, StateTitle, other.State())
}
