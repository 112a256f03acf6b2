package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDrawTextClipsAtEdge(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Close()
	sim.SetSize(6, 2)

	screen.Begin()
	end := screen.DrawText(3, 1, "abcdef", tcell.StyleDefault)
	screen.Put(-1, 0, 'x', tcell.StyleDefault)
	screen.Put(0, 5, 'x', tcell.StyleDefault)
	screen.Present()

	if end != 9 {
		t.Errorf("DrawText() = %d, want 9", end)
	}

	cells, w, _ := sim.GetContents()
	var row []rune
	for x := 0; x < w; x++ {
		c := cells[w+x]
		if len(c.Runes) == 0 {
			row = append(row, ' ')
			continue
		}
		row = append(row, c.Runes[0])
	}
	if got := string(row); got != "   abc" {
		t.Errorf("row 1 = %q, want %q", got, "   abc")
	}
}
