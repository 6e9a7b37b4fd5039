package entity

import "termsnake/game/types"

// Wall is the fixed playfield boundary: a closed rectangle of cells.
// Row 0 is reserved for the title line, so the top wall sits one cell
// down. Immutable after construction.
type Wall struct {
	cells []types.Cell
}

// NewWall builds the perimeter for the given grid. The walls occupy
// column 1, column grid.Width-1, row 1 and row grid.Height, all in
// cell units.
func NewWall(grid types.Grid) *Wall {
	cells := make([]types.Cell, 0, 2*(grid.Width-1)+2*(grid.Height-2))
	for col := 1; col < grid.Width; col++ {
		cells = append(cells, types.NewCell(col*types.CellW, types.CellH))
		cells = append(cells, types.NewCell(col*types.CellW, grid.Height*types.CellH))
	}
	for row := 2; row < grid.Height; row++ {
		cells = append(cells, types.NewCell(types.CellW, row*types.CellH))
		cells = append(cells, types.NewCell((grid.Width-1)*types.CellW, row*types.CellH))
	}
	return &Wall{cells: cells}
}

// Contains reports whether c sits on the boundary.
func (w *Wall) Contains(c types.Cell) bool {
	for _, wc := range w.cells {
		if wc.Equals(c) {
			return true
		}
	}
	return false
}

// Cells returns the boundary cells for rendering. Callers must not
// modify the returned slice.
func (w *Wall) Cells() []types.Cell {
	return w.cells
}
