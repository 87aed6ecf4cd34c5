// Package minesweeper implements a propositional-logic minesweeper
// agent. Knowledge about the board is held as sentences of the form
// "exactly count of these cells are mines"; recording observations and
// applying subset inference until a fixpoint lets the agent deduce safe
// cells and mines without guessing.
package minesweeper

import (
	"fmt"

	"github.com/kmacmillan/gridmind/internal/common"
)

// Cell addresses a grid position by row and column.
type Cell struct {
	Row, Col int
}

// NewCell creates a new cell with the given row and column
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// IsValid checks if the cell lies within a grid of the given size
func (c Cell) IsValid(height, width int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Neighbors returns the cells bordering c, diagonals included, clipped
// to a grid of the given size. The cell itself is excluded and the
// result is in row-major order.
func (c Cell) Neighbors(height, width int) []Cell {
	neighbors := make([]Cell, 0, 8)
	for r := common.Max(0, c.Row-1); r <= common.Min(height-1, c.Row+1); r++ {
		for col := common.Max(0, c.Col-1); col <= common.Min(width-1, c.Col+1); col++ {
			if r == c.Row && col == c.Col {
				continue
			}
			neighbors = append(neighbors, Cell{Row: r, Col: col})
		}
	}
	return neighbors
}

// String returns a string representation of the cell
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
