// Package tictactoe implements a perfect-play tic-tac-toe agent. The
// board is a plain value type and the agent searches the full game tree
// with minimax, which is tractable on a 3x3 board without pruning.
package tictactoe

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 3

// Mark identifies the contents of a single cell.
type Mark uint8

const (
	NoMark Mark = iota
	X
	O
)

// String returns a single-character representation of the mark
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// Cell addresses a single board position by row and column.
type Cell struct {
	Row, Col int
}

// NewCell creates a new cell with the given row and column
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// IsValid checks if the cell is within the board bounds
func (c Cell) IsValid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String returns a string representation of the cell
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is a 3x3 grid of marks. The zero value is an empty board with X
// to move. Board has value semantics: Apply returns a new board and
// never mutates its receiver, so positions can be shared freely during
// search.
type Board struct {
	cells [Size][Size]Mark
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// At returns the mark at cell c. Out-of-bounds cells read as NoMark.
func (b Board) At(c Cell) Mark {
	if !c.IsValid() {
		return NoMark
	}
	return b.cells[c.Row][c.Col]
}

// CurrentPlayer returns the mark whose turn it is. X moves first, so X
// is to move whenever both players have placed the same number of
// marks.
func (b Board) CurrentPlayer() Mark {
	xs, os := 0, 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b.cells[r][c] {
			case X:
				xs++
			case O:
				os++
			}
		}
	}
	if xs <= os {
		return X
	}
	return O
}

// LegalMoves returns every empty cell in row-major order.
func (b Board) LegalMoves() []Cell {
	moves := make([]Cell, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == NoMark {
				moves = append(moves, Cell{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Apply returns the board that results from the current player marking
// cell c. The receiver is unchanged. It returns ErrInvalidMove if c is
// outside the board or already occupied.
func (b Board) Apply(c Cell) (Board, error) {
	if !c.IsValid() {
		return Board{}, ErrInvalidMove
	}
	if b.cells[c.Row][c.Col] != NoMark {
		return Board{}, ErrInvalidMove
	}

	next := b
	next.cells[c.Row][c.Col] = b.CurrentPlayer()
	return next, nil
}

// Winner returns the mark holding a completed row, column or diagonal,
// or NoMark if neither player has won.
func (b Board) Winner() Mark {
	for i := 0; i < Size; i++ {
		if m := b.cells[i][0]; m != NoMark && m == b.cells[i][1] && m == b.cells[i][2] {
			return m
		}
		if m := b.cells[0][i]; m != NoMark && m == b.cells[1][i] && m == b.cells[2][i] {
			return m
		}
	}
	if m := b.cells[1][1]; m != NoMark {
		if (b.cells[0][0] == m && b.cells[2][2] == m) || (b.cells[0][2] == m && b.cells[2][0] == m) {
			return m
		}
	}
	return NoMark
}

// IsTerminal reports whether the game is over, either because a player
// has completed a line or because every cell is occupied.
func (b Board) IsTerminal() bool {
	if b.Winner() != NoMark {
		return true
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == NoMark {
				return false
			}
		}
	}
	return true
}

// Utility scores a finished game: 1 if X has won, -1 if O has won and 0
// for a draw. It is only meaningful on terminal boards.
func (b Board) Utility() int {
	switch b.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// String renders the board as three rows of single-character marks.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			sb.WriteString(b.cells[r][c].String())
		}
	}
	return sb.String()
}
