package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceKnownMines(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		count int
		want  []Cell
	}{
		{"count equals size", []Cell{{0, 0}, {0, 1}}, 2, []Cell{{0, 0}, {0, 1}}},
		{"count below size", []Cell{{0, 0}, {0, 1}}, 1, nil},
		{"count zero", []Cell{{0, 0}, {0, 1}}, 0, nil},
		{"empty sentence", nil, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSentence(NewCellSet(tt.cells...), tt.count)
			assert.Equal(t, tt.want, s.KnownMines())
		})
	}
}

func TestSentenceKnownSafes(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		count int
		want  []Cell
	}{
		{"count zero", []Cell{{0, 0}, {0, 1}}, 0, []Cell{{0, 0}, {0, 1}}},
		{"count positive", []Cell{{0, 0}, {0, 1}}, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSentence(NewCellSet(tt.cells...), tt.count)
			assert.Equal(t, tt.want, s.KnownSafes())
		})
	}
}

func TestSentenceWithoutMine(t *testing.T) {
	s := NewSentence(NewCellSet(NewCell(0, 0), NewCell(0, 1), NewCell(0, 2)), 2)

	rewritten := s.WithoutMine(NewCell(0, 1))

	assert.Equal(t, []Cell{{0, 0}, {0, 2}}, rewritten.Cells())
	assert.Equal(t, 1, rewritten.Count())
	// The receiver is a value; the original sentence is untouched.
	assert.Equal(t, []Cell{{0, 0}, {0, 1}, {0, 2}}, s.Cells())
	assert.Equal(t, 2, s.Count())

	unrelated := s.WithoutMine(NewCell(5, 5))
	assert.True(t, unrelated.Equal(s))
}

func TestSentenceWithoutSafe(t *testing.T) {
	s := NewSentence(NewCellSet(NewCell(0, 0), NewCell(0, 1)), 1)

	rewritten := s.WithoutSafe(NewCell(0, 0))

	assert.Equal(t, []Cell{{0, 1}}, rewritten.Cells())
	assert.Equal(t, 1, rewritten.Count())
	assert.Equal(t, []Cell{{0, 0}, {0, 1}}, s.Cells())

	unrelated := s.WithoutSafe(NewCell(5, 5))
	assert.True(t, unrelated.Equal(s))
}

func TestSentenceSubsetAndMinus(t *testing.T) {
	small := NewSentence(NewCellSet(NewCell(0, 0)), 1)
	big := NewSentence(NewCellSet(NewCell(0, 0), NewCell(0, 1), NewCell(0, 2)), 2)

	require.True(t, small.SubsetOf(big))
	require.False(t, big.SubsetOf(small))

	derived := big.Minus(small)
	assert.Equal(t, []Cell{{0, 1}, {0, 2}}, derived.Cells())
	assert.Equal(t, 1, derived.Count())
}

func TestSentenceEqual(t *testing.T) {
	a := NewSentence(NewCellSet(NewCell(0, 0), NewCell(1, 1)), 1)
	b := NewSentence(NewCellSet(NewCell(1, 1), NewCell(0, 0)), 1)
	c := NewSentence(NewCellSet(NewCell(0, 0), NewCell(1, 1)), 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewSentence(NewCellSet(NewCell(0, 0)), 1)))
}

func TestNewSentenceClonesInput(t *testing.T) {
	cells := NewCellSet(NewCell(0, 0))
	s := NewSentence(cells, 1)

	cells.Add(NewCell(9, 9))

	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains(NewCell(9, 9)))
}

func TestSentenceString(t *testing.T) {
	s := NewSentence(NewCellSet(NewCell(1, 0), NewCell(0, 1)), 1)
	assert.Equal(t, "{(0,1) (1,0)} = 1", s.String())
}
