package minesweeper

import "fmt"

// Sentence is a single piece of knowledge about the board: exactly
// Count of the cells in the set are mines. Sentences are immutable
// values; the rewrite methods return new sentences and never modify
// the receiver, so knowledge-base iteration can hold sentences by
// value without aliasing surprises.
type Sentence struct {
	cells CellSet
	count int
}

// NewSentence creates a sentence over a copy of the given cells.
func NewSentence(cells CellSet, count int) Sentence {
	return Sentence{cells: cells.Clone(), count: count}
}

// Cells returns the sentence's cells in row-major order.
func (s Sentence) Cells() []Cell {
	return s.cells.Cells()
}

// Count returns how many of the sentence's cells are mines.
func (s Sentence) Count() int {
	return s.count
}

// Len returns the number of cells the sentence ranges over.
func (s Sentence) Len() int {
	return s.cells.Len()
}

// IsEmpty reports whether the sentence has no cells left.
func (s Sentence) IsEmpty() bool {
	return s.cells.Len() == 0
}

// Contains reports whether the sentence mentions c.
func (s Sentence) Contains(c Cell) bool {
	return s.cells.Contains(c)
}

// Equal reports whether two sentences have the same cells and count.
func (s Sentence) Equal(other Sentence) bool {
	return s.count == other.count && s.cells.Equal(other.cells)
}

// KnownMines returns the cells this sentence alone proves to be mines:
// all of them, exactly when the count equals the number of cells.
// Otherwise nil.
func (s Sentence) KnownMines() []Cell {
	if s.cells.Len() > 0 && s.count == s.cells.Len() {
		return s.cells.Cells()
	}
	return nil
}

// KnownSafes returns the cells this sentence alone proves to be safe:
// all of them, exactly when the count is zero. Otherwise nil.
func (s Sentence) KnownSafes() []Cell {
	if s.count == 0 {
		return s.cells.Cells()
	}
	return nil
}

// WithoutMine returns the sentence rewritten with c known to be a
// mine: c is removed and the count drops by one. A sentence that does
// not mention c is returned unchanged.
func (s Sentence) WithoutMine(c Cell) Sentence {
	if !s.cells.Contains(c) {
		return s
	}
	remaining := s.cells.Clone()
	delete(remaining, c)
	return Sentence{cells: remaining, count: s.count - 1}
}

// WithoutSafe returns the sentence rewritten with c known to be safe:
// c is removed and the count stays the same. A sentence that does not
// mention c is returned unchanged.
func (s Sentence) WithoutSafe(c Cell) Sentence {
	if !s.cells.Contains(c) {
		return s
	}
	remaining := s.cells.Clone()
	delete(remaining, c)
	return Sentence{cells: remaining, count: s.count}
}

// SubsetOf reports whether this sentence's cells are a subset of the
// other sentence's cells.
func (s Sentence) SubsetOf(other Sentence) bool {
	return s.cells.SubsetOf(other.cells)
}

// Minus returns the subset-rule remainder: the cells of s that are not
// in other, constrained by the difference of the two counts.
func (s Sentence) Minus(other Sentence) Sentence {
	return Sentence{
		cells: s.cells.Diff(other.cells),
		count: s.count - other.count,
	}
}

// String renders the sentence as "{(r,c) ...} = n".
func (s Sentence) String() string {
	return fmt.Sprintf("%s = %d", s.cells, s.count)
}
