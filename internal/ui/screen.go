// Package ui renders the game to the terminal with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen behind the small surface the game needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear empties the draw buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the draw buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent draws one cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Sync forces a full redraw, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
