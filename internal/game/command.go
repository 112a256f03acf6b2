package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/entity"
)

// CommandKind identifies an input command.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdAttack
	CmdEscape
)

// String returns a human-readable command name.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdAttack:
		return "attack"
	case CmdEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Command is one discrete input from the player.
type Command struct {
	Kind      CommandKind
	Direction entity.Direction // CmdMove only
}

// Move returns a movement command.
func Move(dir entity.Direction) Command {
	return Command{Kind: CmdMove, Direction: dir}
}

// Dispatch runs cmd to completion. Commands that are illegal in the current
// state fail with domain.ErrInvalidState.
func (s *Session) Dispatch(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CmdMove:
		return s.Move(ctx, cmd.Direction)
	case CmdAttack:
		_, err := s.Attack(ctx)
		return err
	case CmdEscape:
		_, err := s.Escape(ctx)
		return err
	default:
		return fmt.Errorf("%w: unknown command %d", domain.ErrInvalidInput, cmd.Kind)
	}
}
