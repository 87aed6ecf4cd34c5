package minesweeper

import (
	"math/rand"
	"strings"
	"time"

	"github.com/kmacmillan/gridmind/internal/common"
)

// Field is the hidden ground truth of a minesweeper game: the actual
// mine layout plus the cells flagged so far. It plays the game-runner
// role; the agent never reads it directly and only learns about it
// through probe results.
type Field struct {
	height int
	width  int

	mines   CellSet
	flagged CellSet
}

// NewField creates a field of the given dimensions with mineCount
// mines placed uniformly at random. A nil rng falls back to a
// time-seeded source. A mine count beyond the number of cells is
// capped at a full board.
func NewField(height, width, mineCount int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	mineCount = common.Min(mineCount, height*width)

	f := &Field{
		height:  height,
		width:   width,
		mines:   NewCellSet(),
		flagged: NewCellSet(),
	}
	for f.mines.Len() < mineCount {
		f.mines.Add(Cell{Row: rng.Intn(height), Col: rng.Intn(width)})
	}
	return f
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.height
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.width
}

// MineCount returns the number of mines on the field.
func (f *Field) MineCount() int {
	return f.mines.Len()
}

// IsMine reports whether c holds a mine.
func (f *Field) IsMine(c Cell) bool {
	return f.mines.Contains(c)
}

// NearbyMines counts the mines bordering c, diagonals included, not
// counting c itself.
func (f *Field) NearbyMines(c Cell) int {
	count := 0
	for mine := range f.mines {
		if mine == c {
			continue
		}
		if common.Abs(mine.Row-c.Row) <= 1 && common.Abs(mine.Col-c.Col) <= 1 {
			count++
		}
	}
	return count
}

// Flag marks c as a suspected mine. Flagging the same cell twice is a
// no-op.
func (f *Field) Flag(c Cell) {
	f.flagged.Add(c)
}

// Won reports whether the flagged cells are exactly the mines.
func (f *Field) Won() bool {
	return f.flagged.Equal(f.mines)
}

// String renders the field with '*' for mines and '.' for clear cells.
func (f *Field) String() string {
	var sb strings.Builder
	for r := 0; r < f.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < f.width; c++ {
			if f.mines.Contains(Cell{Row: r, Col: c}) {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
