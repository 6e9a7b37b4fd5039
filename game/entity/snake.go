package entity

import "termsnake/game/types"

// Snake is the player body: an ordered run of cells with the head at
// the last index, plus the current heading. The game owns the snake
// exclusively; no locking is needed.
type Snake struct {
	body    []types.Cell
	heading types.Direction
}

// NewSnake lays out a body of the given length whose head sits at
// start, trailing away opposite the heading.
func NewSnake(start types.Point, heading types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	head := types.NewCell(start.X, start.Y)
	body := make([]types.Cell, length)
	for i := 0; i < length; i++ {
		body[length-1-i] = head.Translate(heading.Opposite(), i)
	}
	return &Snake{body: body, heading: heading}
}

// Head returns the front cell.
func (s *Snake) Head() types.Cell {
	return s.body[len(s.body)-1]
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() types.Direction {
	return s.heading
}

// Len returns the body length in cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body cells, tail first.
func (s *Snake) Body() []types.Cell {
	out := make([]types.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// SetHeading applies a direction change unless it would reverse the
// snake onto its own neck. Rejected requests are ignored rather than
// errors: stale input is normal. Reports whether the heading changed.
func (s *Snake) SetHeading(dir types.Direction) bool {
	if dir == s.heading.Opposite() {
		return false
	}
	s.heading = dir
	return true
}

// GrowBody pushes a new head one cell along the heading and keeps the
// tail. Called when food is consumed.
func (s *Snake) GrowBody() {
	s.body = append(s.body, s.Head().Translate(s.heading, 1))
}

// MoveBody pushes a new head and drops the tail: a net one-cell
// translation with the length unchanged.
func (s *Snake) MoveBody() {
	s.GrowBody()
	s.body = s.body[1:]
}

// BitesSelf reports whether the head sits on any other body cell.
// Meaningful right after GrowBody or MoveBody has placed the head.
func (s *Snake) BitesSelf() bool {
	head := s.Head()
	for _, c := range s.body[:len(s.body)-1] {
		if c.Equals(head) {
			return true
		}
	}
	return false
}

// BitesFood reports whether the head is on the food cell.
func (s *Snake) BitesFood(food types.Cell) bool {
	return s.Head().Equals(food)
}

// OverlapsFood reports whether any body cell, head included, is on
// the food cell. Used when searching for a fresh food position.
func (s *Snake) OverlapsFood(food types.Cell) bool {
	for _, c := range s.body {
		if c.Equals(food) {
			return true
		}
	}
	return false
}

// CollidesWall reports whether the head is on a wall cell.
func (s *Snake) CollidesWall(w *Wall) bool {
	return w.Contains(s.Head())
}
