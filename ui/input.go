package ui

import (
	"github.com/gdamore/tcell/v2"

	"termsnake/game"
)

// Input adapts tcell's blocking event stream to the game's
// non-blocking poll/read contract. A pump goroutine forwards events
// into a buffered channel; it exits once the screen is finalized and
// PollEvent starts returning nil.
type Input struct {
	events chan tcell.Event
}

func NewInput(screen tcell.Screen) *Input {
	in := &Input{events: make(chan tcell.Event, 64)}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			in.events <- ev
		}
	}()
	return in
}

// Poll reports whether an event is waiting. Never blocks.
func (in *Input) Poll() bool {
	return len(in.events) > 0
}

// Read pops and decodes the next pending event. Events that are not
// game keys, resizes included, decode to KeyNone; the playfield is
// fixed-size.
func (in *Input) Read() game.Key {
	select {
	case ev := <-in.events:
		return decode(ev)
	default:
		return game.KeyNone
	}
}

func decode(ev tcell.Event) game.Key {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.KeyNone
	}
	switch key.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyQuit
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			return game.KeyQuit
		}
	}
	return game.KeyNone
}
