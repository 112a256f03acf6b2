package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/entity"
	"github.com/samdwyer/fieldquest/internal/game"
	"github.com/samdwyer/fieldquest/internal/logger"
)

// App drives a session from terminal input.
type App struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	messages *MessageLog
	name     string

	selected int
	notice   string
	running  bool
}

// NewApp creates the front end. messages must be the session's event sink.
func NewApp(screen *Screen, session *game.Session, messages *MessageLog, playerName string) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		messages: messages,
		name:     playerName,
		running:  true,
	}
}

// Run executes the input loop until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	for a.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Render()
		a.handleInput(ctx)
	}
	return nil
}

// Render draws the current frame.
func (a *App) Render() {
	a.renderer.Render(a.view())
}

func (a *App) view() View {
	return View{
		Snapshot:   a.session.Snapshot(),
		Characters: a.session.Characters(),
		Selected:   a.selected,
		Messages:   a.messages.Lines(),
		Notice:     a.notice,
	}
}

// handleInput processes a single input event.
func (a *App) handleInput(ctx context.Context) {
	switch ev := a.screen.PollEvent().(type) {
	case *tcell.EventKey:
		a.handleKey(ctx, ev)
	case *tcell.EventResize:
		a.screen.Resync()
	case nil:
		// Screen finalized.
		a.running = false
	}
}

// handleKey maps a key to a session command for the current state.
func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) {
	a.notice = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
		return
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			a.running = false
			return
		}
	}

	if a.session.State() == game.StateTitle {
		a.handleTitleKey(ctx, ev)
		return
	}

	// Field and battle keys always reach the session, which rejects the ones
	// the current state does not allow.
	if dir, ok := direction(ev.Key()); ok {
		a.do(ctx, game.Move(dir))
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'a', 'A':
		a.do(ctx, game.Command{Kind: game.CmdAttack})
	case 'e', 'E':
		a.do(ctx, game.Command{Kind: game.CmdEscape})
	}
}

func (a *App) handleTitleKey(ctx context.Context, ev *tcell.EventKey) {
	chars := a.session.Characters()
	if len(chars) == 0 {
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		if a.selected > 0 {
			a.selected--
		}
	case tcell.KeyDown:
		if a.selected < len(chars)-1 {
			a.selected++
		}
	case tcell.KeyEnter:
		a.newGame(ctx, chars[a.selected].ID)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'c' || r == 'C':
			ok, err := a.session.Continue(ctx)
			if err != nil {
				a.fail(ctx, err)
				return
			}
			if !ok {
				a.notice = "No save data."
				return
			}
			a.messages.Clear()
		case r >= '1' && int(r-'1') < len(chars):
			a.selected = int(r - '1')
			a.newGame(ctx, chars[a.selected].ID)
		}
	}
}

func (a *App) newGame(ctx context.Context, characterID string) {
	if err := a.session.NewGame(ctx, a.name, characterID); err != nil {
		a.fail(ctx, err)
		return
	}
	a.messages.Clear()
}

func (a *App) do(ctx context.Context, cmd game.Command) {
	if err := a.session.Dispatch(ctx, cmd); err != nil {
		a.fail(ctx, err)
	}
}

// fail shows a command error. Rejected commands are expected; anything else
// is logged as well.
func (a *App) fail(ctx context.Context, err error) {
	a.notice = err.Error()
	if errors.Is(err, domain.ErrInvalidState) || errors.Is(err, domain.ErrInvalidInput) {
		return
	}
	logger.FromContext(ctx).Error("command failed", "error", err)
}

func direction(k tcell.Key) (entity.Direction, bool) {
	switch k {
	case tcell.KeyUp:
		return entity.DirUp, true
	case tcell.KeyDown:
		return entity.DirDown, true
	case tcell.KeyLeft:
		return entity.DirLeft, true
	case tcell.KeyRight:
		return entity.DirRight, true
	default:
		return "", false
	}
}
