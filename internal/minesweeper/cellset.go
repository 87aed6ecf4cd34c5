package minesweeper

import (
	"sort"
	"strings"
)

// CellSet is an unordered set of cells.
type CellSet map[Cell]bool

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = true
	}
	return s
}

// Add inserts c into the set.
func (s CellSet) Add(c Cell) {
	s[c] = true
}

// Contains reports whether c is in the set.
func (s CellSet) Contains(c Cell) bool {
	return s[c]
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	clone := make(CellSet, len(s))
	for c := range s {
		clone[c] = true
	}
	return clone
}

// Equal reports whether both sets hold exactly the same cells.
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other[c] {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every cell in s is also in other.
func (s CellSet) SubsetOf(other CellSet) bool {
	if len(s) > len(other) {
		return false
	}
	for c := range s {
		if !other[c] {
			return false
		}
	}
	return true
}

// Diff returns the cells in s that are not in other.
func (s CellSet) Diff(other CellSet) CellSet {
	diff := NewCellSet()
	for c := range s {
		if !other[c] {
			diff.Add(c)
		}
	}
	return diff
}

// Cells returns the set's cells in row-major order. Map iteration
// order is randomized, so every ordered consumer goes through here.
func (s CellSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// String renders the set as "{(r,c) (r,c) ...}" in row-major order.
func (s CellSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range s.Cells() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
