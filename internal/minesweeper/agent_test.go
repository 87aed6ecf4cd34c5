package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmacmillan/gridmind/internal/testutil"
)

func TestAgentResolvesFullCountAsMines(t *testing.T) {
	a := NewAgent(1, 3, testutil.NopLogger())

	// Probing the middle of a 1x3 strip with a count of 2 pins both
	// outer cells as mines.
	a.AddObservation(NewCell(0, 1), 2)

	assert.Equal(t, []Cell{{0, 0}, {0, 2}}, a.KnownMines())
	assert.Contains(t, a.KnownSafes(), NewCell(0, 1))
	assert.Equal(t, 0, a.KnowledgeSize())
}

func TestAgentResolvesZeroCountAsSafes(t *testing.T) {
	a := NewAgent(2, 2, testutil.NopLogger())

	a.AddObservation(NewCell(0, 0), 0)

	assert.ElementsMatch(t, []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, a.KnownSafes())
	assert.Empty(t, a.KnownMines())
	assert.Equal(t, 0, a.KnowledgeSize())
}

func TestAgentSubsetRuleDerivesRemainder(t *testing.T) {
	a := NewAgent(3, 3, testutil.NopLogger())
	cellA, cellB, cellC := NewCell(0, 0), NewCell(0, 1), NewCell(0, 2)

	a.knowledge = append(a.knowledge,
		NewSentence(NewCellSet(cellA, cellB, cellC), 1),
		NewSentence(NewCellSet(cellA, cellB), 1),
	)
	a.infer()

	// {A,B,C}=1 minus {A,B}=1 leaves {C}=0, so C is safe while A and B
	// stay undetermined.
	assert.Contains(t, a.KnownSafes(), cellC)
	assert.NotContains(t, a.KnownSafes(), cellA)
	assert.NotContains(t, a.KnownSafes(), cellB)
	assert.Empty(t, a.KnownMines())

	require.Equal(t, 1, a.KnowledgeSize())
	assert.True(t, a.knowledge[0].Equal(NewSentence(NewCellSet(cellA, cellB), 1)))
}

func TestAddObservationAdjustsCountForKnownMines(t *testing.T) {
	a := NewAgent(1, 3, testutil.NopLogger())
	a.RecordMine(NewCell(0, 0))

	// (0,1) borders the known mine at (0,0) and the unknown (0,2); a
	// count of 1 is fully explained by the known mine, so (0,2) must
	// be safe.
	a.AddObservation(NewCell(0, 1), 1)

	assert.Contains(t, a.KnownSafes(), NewCell(0, 2))
	assert.Equal(t, []Cell{{0, 0}}, a.KnownMines())
}

func TestAgentResolvesNeighborhoodAroundKnownMine(t *testing.T) {
	a := NewAgent(8, 8, testutil.NopLogger())
	a.RecordMine(NewCell(0, 0))

	// The known mine fully explains the count, so the remaining seven
	// neighbors of (1,1) must all come out safe.
	a.AddObservation(NewCell(1, 1), 1)

	assert.Equal(t, []Cell{{0, 0}}, a.KnownMines())
	for _, c := range []Cell{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		assert.Contains(t, a.KnownSafes(), c, "neighbor %s should be safe", c)
	}
	assert.Equal(t, 0, a.KnowledgeSize())
}

func TestAgentRetainsUnresolvedObservation(t *testing.T) {
	a := NewAgent(8, 8, testutil.NopLogger())

	// One mine among eight neighbors resolves nothing on its own; the
	// sentence stays pending.
	a.AddObservation(NewCell(1, 1), 1)

	assert.Equal(t, 1, a.KnowledgeSize())
	assert.Empty(t, a.KnownMines())
	assert.Equal(t, []Cell{{1, 1}}, a.KnownSafes())
}

func TestRecordMineIdempotent(t *testing.T) {
	a := NewAgent(2, 2, testutil.NopLogger())
	a.knowledge = append(a.knowledge, NewSentence(NewCellSet(NewCell(0, 0), NewCell(0, 1)), 1))

	a.RecordMine(NewCell(0, 0))
	a.RecordMine(NewCell(0, 0))

	require.Equal(t, 1, a.KnowledgeSize())
	assert.True(t, a.knowledge[0].Equal(NewSentence(NewCellSet(NewCell(0, 1)), 0)))
	assert.Equal(t, []Cell{{0, 0}}, a.KnownMines())
}

func TestRecordSafeIdempotent(t *testing.T) {
	a := NewAgent(2, 2, testutil.NopLogger())
	a.knowledge = append(a.knowledge, NewSentence(NewCellSet(NewCell(0, 0), NewCell(0, 1)), 1))

	a.RecordSafe(NewCell(0, 1))
	a.RecordSafe(NewCell(0, 1))

	require.Equal(t, 1, a.KnowledgeSize())
	assert.True(t, a.knowledge[0].Equal(NewSentence(NewCellSet(NewCell(0, 0)), 1)))
	assert.Equal(t, []Cell{{0, 1}}, a.KnownSafes())
}

func TestSafeMove(t *testing.T) {
	a := NewAgent(2, 2, testutil.NopLogger())

	_, ok := a.SafeMove()
	assert.False(t, ok)

	a.AddObservation(NewCell(0, 0), 0)

	move, ok := a.SafeMove()
	require.True(t, ok)
	assert.Equal(t, NewCell(0, 1), move)
}

func TestRandomMoveExcludesAccountedCells(t *testing.T) {
	a := NewAgent(2, 2, testutil.NopLogger())
	a.moves.Add(NewCell(0, 0))
	a.safes.Add(NewCell(0, 0))
	a.safes.Add(NewCell(0, 1))
	a.mines.Add(NewCell(1, 0))

	rng := testutil.NewTestRNG(1)
	for i := 0; i < 20; i++ {
		move, ok := a.RandomMove(rng)
		require.True(t, ok)
		assert.Equal(t, NewCell(1, 1), move)
	}
}

func TestRandomMoveExhaustedBoard(t *testing.T) {
	a := NewAgent(1, 2, testutil.NopLogger())
	a.mines.Add(NewCell(0, 0))
	a.moves.Add(NewCell(0, 1))
	a.safes.Add(NewCell(0, 1))

	_, ok := a.RandomMove(testutil.NewTestRNG(1))
	assert.False(t, ok)
}

func TestRandomMoveNilRNG(t *testing.T) {
	a := NewAgent(2, 2, testutil.NopLogger())

	move, ok := a.RandomMove(nil)
	require.True(t, ok)
	assert.True(t, move.IsValid(2, 2))
}

// TestAgentSolvesSingleMineField walks a full game on a fixed layout:
// one mine in the middle of an 8x8 board, first probe in the corner.
// The zero-count region reaches every safe cell, so safe moves alone
// clear the board and the mine's neighbors pin it down exactly.
func TestAgentSolvesSingleMineField(t *testing.T) {
	f := &Field{height: 8, width: 8, mines: NewCellSet(NewCell(4, 4)), flagged: NewCellSet()}
	a := NewAgent(8, 8, testutil.NopLogger())

	first := NewCell(0, 0)
	a.AddObservation(first, f.NearbyMines(first))
	for i := 0; i < 8*8; i++ {
		move, ok := a.SafeMove()
		if !ok {
			break
		}
		require.False(t, f.IsMine(move), "safe move %s hit a mine", move)
		a.AddObservation(move, f.NearbyMines(move))
	}

	assert.Equal(t, []Cell{{4, 4}}, a.KnownMines())
	assert.Len(t, a.MovesMade(), 63)

	for _, mine := range a.KnownMines() {
		f.Flag(mine)
	}
	assert.True(t, f.Won())
}

func TestAgentSoundnessAgainstField(t *testing.T) {
	rng := testutil.NewTestRNG(42)
	f := NewField(4, 4, 3, rng)
	a := NewAgent(4, 4, testutil.NopLogger())

	for i := 0; i < 16; i++ {
		move, ok := a.SafeMove()
		if !ok {
			move, ok = a.RandomMove(rng)
		}
		if !ok {
			break
		}
		if f.IsMine(move) {
			// A random guess is allowed to lose; the knowledge checked
			// below must still be sound.
			break
		}
		a.AddObservation(move, f.NearbyMines(move))

		for _, c := range a.KnownMines() {
			assert.True(t, f.IsMine(c), "cell %s marked mine but is clear", c)
		}
		for _, c := range a.KnownSafes() {
			assert.False(t, f.IsMine(c), "cell %s marked safe but is a mine", c)
		}
	}
}

func TestAgentStats(t *testing.T) {
	a := NewAgent(1, 3, testutil.NopLogger())
	a.AddObservation(NewCell(0, 1), 2)

	stats := a.Stats()
	assert.Equal(t, 1, stats.MovesMade)
	assert.Equal(t, 1, stats.KnownSafes)
	assert.Equal(t, 2, stats.KnownMines)
	assert.Equal(t, 0, stats.Sentences)
}

func BenchmarkInferenceSingleMineGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f := &Field{height: 8, width: 8, mines: NewCellSet(NewCell(4, 4)), flagged: NewCellSet()}
		a := NewAgent(8, 8, testutil.NopLogger())
		a.AddObservation(NewCell(0, 0), f.NearbyMines(NewCell(0, 0)))
		for {
			move, ok := a.SafeMove()
			if !ok {
				break
			}
			a.AddObservation(move, f.NearbyMines(move))
		}
	}
}
