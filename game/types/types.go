package types

import "time"

// Playfield geometry in terminal character units. A logical cell is
// two characters wide and one tall so it renders roughly square.
const (
	CellW = 2
	CellH = 1

	GroundW = 64
	GroundH = 32

	// DefaultTimeStep is the simulation period: the snake advances one
	// cell per elapsed step.
	DefaultTimeStep = 150 * time.Millisecond

	// InitialLength is the snake's starting body length.
	InitialLength = 3
)

// Grid is the playfield extent in cell units.
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid matches the classic 64x32 character playfield.
var DefaultGrid = Grid{Width: GroundW / CellW, Height: GroundH / CellH}

// Point is a position in character units.
type Point struct {
	X, Y int
}

// Size is a rectangle extent in character units.
type Size struct {
	W, H int
}

// Direction is a heading on the playfield.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step for the heading, in cells.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{Y: -1}
	case Down:
		return Point{Y: 1}
	case Left:
		return Point{X: -1}
	default:
		return Point{X: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Color identifies what a cell is drawn as: food is red, walls are
// blue and the snake is white.
type Color int

const (
	Red Color = iota
	Blue
	White
)

// Cell is the atomic unit of playfield space: a position plus the
// rectangle it covers on screen. Size is rendering metadata only; two
// cells are equal when their positions match.
type Cell struct {
	Pos  Point
	Size Size
}

// NewCell returns a cell of the standard size at the given character
// position.
func NewCell(x, y int) Cell {
	return Cell{Pos: Point{X: x, Y: y}, Size: Size{W: CellW, H: CellH}}
}

// Translate returns a copy of c shifted the given number of cells
// along dir. c itself is never modified.
func (c Cell) Translate(dir Direction, steps int) Cell {
	d := dir.Delta()
	return Cell{
		Pos: Point{
			X: c.Pos.X + d.X*steps*c.Size.W,
			Y: c.Pos.Y + d.Y*steps*c.Size.H,
		},
		Size: c.Size,
	}
}

// Equals reports whether both cells occupy the same position.
func (c Cell) Equals(o Cell) bool {
	return c.Pos == o.Pos
}
