package ui

import (
	"github.com/gdamore/tcell/v2"

	"termsnake/game/types"
)

const blockRune = '█'

// Renderer draws game cells onto a tcell screen. Draw calls land in
// tcell's back buffer and Flush pushes the frame to the terminal, so
// it satisfies the game.Surface contract.
type Renderer struct {
	screen tcell.Screen
	styles map[types.Color]tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: map[types.Color]tcell.Style{
			types.Red:   tcell.StyleDefault.Foreground(tcell.ColorRed),
			types.Blue:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
			types.White: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		},
	}
}

func (r *Renderer) Clear() {
	r.screen.Clear()
}

// DrawCell fills the cell's character rectangle with block runes.
func (r *Renderer) DrawCell(pos types.Point, size types.Size, color types.Color) {
	style := r.styles[color]
	for x := pos.X; x < pos.X+size.W; x++ {
		for y := pos.Y; y < pos.Y+size.H; y++ {
			r.screen.SetContent(x, y, blockRune, nil, style)
		}
	}
}

func (r *Renderer) DrawText(pos types.Point, text string, color types.Color) {
	style := r.styles[color]
	for i, ch := range []rune(text) {
		r.screen.SetContent(pos.X+i, pos.Y, ch, nil, style)
	}
}

// Flush pushes the buffered frame to the terminal.
func (r *Renderer) Flush() error {
	r.screen.Show()
	return nil
}
