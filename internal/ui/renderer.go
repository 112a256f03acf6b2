package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fieldquest/internal/game"
	"github.com/samdwyer/fieldquest/internal/gamedata"
)

// Field window around the player, in cells.
const (
	fieldWidth  = 21
	fieldHeight = 11
	panelX      = fieldWidth + 3
)

// View is everything the renderer needs for one frame.
type View struct {
	Snapshot   game.Snapshot
	Characters []gamedata.CharacterDef
	Selected   int
	Messages   []string
	Notice     string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.Begin()

	var y int
	if v.Snapshot.State == game.StateTitle {
		y = r.renderTitle(v)
	} else {
		y = r.renderField(v)
	}

	y++
	for _, line := range v.Messages {
		r.RenderMessage(line, y)
		y++
	}
	if v.Notice != "" {
		r.screen.DrawText(0, y+1, v.Notice, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	r.screen.Present()
}

func (r *Renderer) renderTitle(v View) int {
	bold := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	r.screen.DrawText(2, 1, "FIELD QUEST", bold)
	r.screen.DrawText(2, 3, "Choose your hero:", plain)

	y := 4
	for i, c := range v.Characters {
		marker, style := "  ", plain
		if i == v.Selected {
			marker, style = "> ", bold
		}
		r.screen.DrawText(2, y, fmt.Sprintf("%s%d. %s (win %d%%, escape %d%%)",
			marker, i+1, c.Name, c.WinProbability, c.EscapeProbability), style)
		y++
	}

	y++
	r.screen.DrawText(2, y, "Up/Down select  Enter new game  c continue  q quit", dim)
	return y + 1
}

func (r *Renderer) renderField(v View) int {
	snap := v.Snapshot
	p := snap.Player

	ground := tcell.StyleDefault.Foreground(zoneColor(snap.Zone.ID))
	for y := 0; y < fieldHeight; y++ {
		for x := 0; x < fieldWidth; x++ {
			r.screen.Put(x, y, groundRune(p.Position.X+x, p.Position.Y+y), ground)
		}
	}
	hero := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.Put(fieldWidth/2, fieldHeight/2, '@', hero)
	if snap.Enemy != nil {
		enemy := tcell.StyleDefault.Foreground(snap.Enemy.TCellColor()).Bold(true)
		r.screen.Put(fieldWidth/2+1, fieldHeight/2, 'M', enemy)
	}

	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	lines := []string{
		p.Name + " the " + p.Character.Name,
		fmt.Sprintf("Level       %d", p.Level),
		fmt.Sprintf("HP          %d", p.HP),
		fmt.Sprintf("Steps       %d", p.Steps),
		fmt.Sprintf("Defeated    %d", p.EnemiesDefeated),
		fmt.Sprintf("Encountered %d", p.EnemiesEncountered),
		fmt.Sprintf("Zone        %s", snap.Zone.Name),
	}
	for i, line := range lines {
		r.screen.DrawText(panelX, i, line, plain)
	}

	y := len(lines) + 1
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if snap.Enemy != nil {
		enemy := tcell.StyleDefault.Foreground(snap.Enemy.TCellColor()).Bold(true)
		x := r.screen.DrawText(panelX, y, "Battle: ", plain)
		r.screen.DrawText(x, y, snap.Enemy.Name, enemy)
		r.screen.DrawText(panelX, y+1, "a attack  e escape", dim)
	} else {
		r.screen.DrawText(panelX, y, "Arrows move  q quit", dim)
	}

	if fieldHeight > y+2 {
		return fieldHeight
	}
	return y + 2
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func zoneColor(id string) tcell.Color {
	switch id {
	case "plain":
		return tcell.ColorGreen
	case "forest":
		return tcell.ColorDarkGreen
	case "swamp":
		return tcell.ColorOlive
	default:
		return tcell.ColorGray
	}
}

// groundRune scatters grass tufts by world position so movement is visible.
func groundRune(x, y int) rune {
	if (x*7+y*13)%11 == 0 {
		return '"'
	}
	return '.'
}
