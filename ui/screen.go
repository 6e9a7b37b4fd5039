package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// NewScreen puts the terminal in raw mode on the alternate screen.
// The caller must run screen.Fini on every exit path, including
// errors, so the terminal is restored.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}
