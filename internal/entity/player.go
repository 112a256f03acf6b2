package entity

import (
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/gamedata"
)

const (
	// StartingHP is the hit points of a new player. Nothing in a battle restores HP.
	StartingHP = 100
	// StartingLevel is the level of a new player.
	StartingLevel = 1
)

// Direction is a movement direction on the field.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Delta returns the x, y offset for the direction. Up decreases y.
func (d Direction) Delta() (int, int, error) {
	switch d {
	case DirUp:
		return 0, -1, nil
	case DirDown:
		return 0, 1, nil
	case DirLeft:
		return -1, 0, nil
	case DirRight:
		return 1, 0, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown direction %q", domain.ErrInvalidInput, string(d))
	}
}

// Position is a point on the field.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Player holds all persisted progress for one game.
type Player struct {
	Name               string    `json:"name"`
	Character          Character `json:"character"`
	Position           Position  `json:"position"`
	Steps              int       `json:"steps"`
	Level              int       `json:"level"`
	HP                 int       `json:"hp"`
	EnemiesDefeated    int       `json:"enemiesDefeated"`
	EnemiesEncountered int       `json:"enemiesEncountered"`
}

// NewPlayer creates a level 1 player at the origin with full HP.
func NewPlayer(name string, def *gamedata.CharacterDef) *Player {
	return &Player{
		Name:      name,
		Character: NewCharacter(def),
		Level:     StartingLevel,
		HP:        StartingHP,
	}
}

// Move updates the player position by one step in the given direction and
// counts the step.
func (p *Player) Move(dir Direction) error {
	dx, dy, err := dir.Delta()
	if err != nil {
		return err
	}
	p.Position.X += dx
	p.Position.Y += dy
	p.Steps++
	return nil
}

// TakeDamage reduces HP by amount. HP may go below zero; IsDead reports the result.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.HP -= amount
}

// IsDead returns true once HP has reached zero or below.
func (p *Player) IsDead() bool {
	return p.HP <= 0
}

// Clone returns a copy of the player. Player holds no reference types, so a
// value copy is a deep copy.
func (p *Player) Clone() *Player {
	c := *p
	return &c
}
