// Package ui provides terminal rendering and input using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// baseStyle is the style every frame starts from.
var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the drawing surface the renderer paints frames on. Writes outside
// the terminal are clipped.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(term)
}

// NewScreenFrom takes over an uninitialized tcell screen, such as a
// simulation screen.
func NewScreenFrom(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(baseStyle)
	term.HideCursor()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.term.Fini()
}

// PollEvent blocks for the next input or resize event. It returns nil once
// the screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.term.PollEvent()
}

// Begin starts a frame on a blank buffer.
func (s *Screen) Begin() {
	s.term.Clear()
}

// Present flushes the frame to the terminal.
func (s *Screen) Present() {
	s.term.Show()
}

// Resync repaints everything after a resize.
func (s *Screen) Resync() {
	s.term.Sync()
}

// Put draws one rune, ignoring cells off screen.
func (s *Screen) Put(x, y int, r rune, style tcell.Style) {
	w, h := s.term.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.term.SetContent(x, y, r, nil, style)
}

// DrawText writes text from x, y rightward, clipped at the right edge, and
// returns the column after the last rune.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.Put(x, y, r, style)
		x++
	}
	return x
}
