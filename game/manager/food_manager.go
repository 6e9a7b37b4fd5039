package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"termsnake/game/entity"
	"termsnake/game/types"
)

// ErrBoardFull is returned when the snake occupies every interior
// cell and there is nowhere left to put food.
var ErrBoardFull = errors.New("no free cell left for food")

// maxRandomTries bounds the random sampling phase before the
// deterministic scan takes over.
const maxRandomTries = 128

// FoodManager places food on the interior lattice: every cell-aligned
// position strictly inside the walls and below the title row.
type FoodManager struct {
	rng *rand.Rand

	minCol, maxCol int // inclusive, cell units
	minRow, maxRow int
}

// NewFoodManager derives the interior bounds from the grid the wall
// was built over.
func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		rng:    rng,
		minCol: 2,
		maxCol: grid.Width - 2,
		minRow: 2,
		maxRow: grid.Height - 1,
	}
}

// Relocate picks a food cell that overlaps neither the snake nor the
// walls. Random placement is tried a bounded number of times, then
// the whole lattice is scanned, so the search always terminates;
// ErrBoardFull means the snake has filled the playfield.
func (fm *FoodManager) Relocate(snake *entity.Snake) (types.Cell, error) {
	for i := 0; i < maxRandomTries; i++ {
		cell := fm.cellAt(
			fm.minCol+fm.rng.Intn(fm.maxCol-fm.minCol+1),
			fm.minRow+fm.rng.Intn(fm.maxRow-fm.minRow+1),
		)
		if !snake.OverlapsFood(cell) {
			return cell, nil
		}
	}
	for col := fm.minCol; col <= fm.maxCol; col++ {
		for row := fm.minRow; row <= fm.maxRow; row++ {
			cell := fm.cellAt(col, row)
			if !snake.OverlapsFood(cell) {
				return cell, nil
			}
		}
	}
	return types.Cell{}, ErrBoardFull
}

// Capacity returns how many interior cells food can occupy.
func (fm *FoodManager) Capacity() int {
	return (fm.maxCol - fm.minCol + 1) * (fm.maxRow - fm.minRow + 1)
}

func (fm *FoodManager) cellAt(col, row int) types.Cell {
	return types.NewCell(col*types.CellW, row*types.CellH)
}
