package minesweeper

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Agent accumulates knowledge about a minesweeper board and deduces
// moves from it. It never sees the board itself; everything it knows
// arrives through AddObservation, RecordMine and RecordSafe. Knowledge
// is kept saturated: after every observation the inference rules run
// until no further conclusion follows.
//
// Invariants: safes and mines are disjoint and every played cell is in
// safes; once inference has run, no retained sentence is empty and no
// two retained sentences are equal.
type Agent struct {
	height int
	width  int

	moves     CellSet
	safes     CellSet
	mines     CellSet
	knowledge []Sentence

	logger zerolog.Logger
}

// NewAgent creates an agent for a board of the given dimensions.
func NewAgent(height, width int, logger zerolog.Logger) *Agent {
	return &Agent{
		height: height,
		width:  width,
		moves:  NewCellSet(),
		safes:  NewCellSet(),
		mines:  NewCellSet(),
		logger: logger.With().Str("component", "Agent").Logger(),
	}
}

// RecordMine marks c as a known mine and rewrites every sentence that
// mentions it. Recording the same mine twice is a no-op.
func (a *Agent) RecordMine(c Cell) {
	if a.mines.Contains(c) {
		return
	}
	a.mines.Add(c)
	for i, s := range a.knowledge {
		a.knowledge[i] = s.WithoutMine(c)
	}
	a.logger.Debug().Str("cell", c.String()).Msg("Recorded mine")
}

// RecordSafe marks c as known safe and rewrites every sentence that
// mentions it. Recording the same safe cell twice is a no-op.
func (a *Agent) RecordSafe(c Cell) {
	if a.safes.Contains(c) {
		return
	}
	a.safes.Add(c)
	for i, s := range a.knowledge {
		a.knowledge[i] = s.WithoutSafe(c)
	}
	a.logger.Debug().Str("cell", c.String()).Msg("Recorded safe cell")
}

// AddObservation incorporates the result of probing a cell: the cell
// turned out safe and exactly count of its neighbors are mines. The
// cell is recorded as a played safe cell, the neighbor constraint
// joins the knowledge base and inference runs to a fixpoint.
//
// The count applies to the full in-grid neighborhood, so neighbors
// already known to be mines are subtracted from it before the
// remaining unknown neighbors form the new sentence.
func (a *Agent) AddObservation(cell Cell, count int) {
	a.moves.Add(cell)
	a.RecordSafe(cell)

	unknown := NewCellSet()
	adjusted := count
	for _, n := range cell.Neighbors(a.height, a.width) {
		switch {
		case a.mines.Contains(n):
			adjusted--
		case a.safes.Contains(n) || a.moves.Contains(n):
			// Already determined, nothing to learn here.
		default:
			unknown.Add(n)
		}
	}

	if unknown.Len() > 0 {
		s := NewSentence(unknown, adjusted)
		if !a.hasSentence(s) {
			a.knowledge = append(a.knowledge, s)
			a.logger.Debug().Str("sentence", s.String()).Msg("Added sentence")
		}
	}

	a.infer()

	a.logger.Debug().
		Str("cell", cell.String()).
		Int("count", count).
		Int("sentences", len(a.knowledge)).
		Int("known_mines", a.mines.Len()).
		Int("known_safes", a.safes.Len()).
		Msg("Observation processed")
}

// infer saturates the knowledge base. Each pass first batch-collects
// every cell some sentence resolves on its own (count equal to size:
// all mines; count zero: all safe) and records them, then applies the
// subset rule to every ordered sentence pair, then drops exhausted
// sentences. Conclusions are collected before they are applied so a
// pass never observes a half-rewritten knowledge base. The loop stops
// on the first pass that produces no new mark and no new sentence.
//
// Termination: marks only shrink the undetermined region and distinct
// sentences over a finite grid are finite, so progress cannot repeat
// forever.
func (a *Agent) infer() {
	for changed := true; changed; {
		changed = false

		resolvedMines := NewCellSet()
		resolvedSafes := NewCellSet()
		for _, s := range a.knowledge {
			for _, c := range s.KnownMines() {
				resolvedMines.Add(c)
			}
			for _, c := range s.KnownSafes() {
				resolvedSafes.Add(c)
			}
		}
		for _, c := range resolvedMines.Cells() {
			if !a.mines.Contains(c) {
				a.RecordMine(c)
				changed = true
			}
		}
		for _, c := range resolvedSafes.Cells() {
			if !a.safes.Contains(c) {
				a.RecordSafe(c)
				changed = true
			}
		}

		// Subset rule: when s1's cells sit inside s2's, the cells
		// unique to s2 carry the leftover count. Equal sentences are
		// skipped, as is any remainder that would be empty or carry a
		// negative count.
		for i := range a.knowledge {
			for j := range a.knowledge {
				if i == j {
					continue
				}
				s1, s2 := a.knowledge[i], a.knowledge[j]
				if s1.Equal(s2) || !s1.SubsetOf(s2) || s2.Count() < s1.Count() {
					continue
				}
				derived := s2.Minus(s1)
				if derived.IsEmpty() || a.hasSentence(derived) {
					continue
				}
				a.knowledge = append(a.knowledge, derived)
				changed = true
				a.logger.Debug().Str("sentence", derived.String()).Msg("Derived sentence")
			}
		}

		// Rewrites above can exhaust a sentence or collapse two
		// sentences into equals; neither carries information.
		kept := a.knowledge[:0]
		for _, s := range a.knowledge {
			if s.IsEmpty() {
				continue
			}
			dup := false
			for _, k := range kept {
				if k.Equal(s) {
					dup = true
					break
				}
			}
			if !dup {
				kept = append(kept, s)
			}
		}
		a.knowledge = kept
	}
}

// hasSentence reports whether an equal sentence is already retained.
func (a *Agent) hasSentence(s Sentence) bool {
	for _, existing := range a.knowledge {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}

// SafeMove returns the first cell, in row-major order, that is known
// safe and has not been played. The second return value is false when
// no such cell exists.
func (a *Agent) SafeMove() (Cell, bool) {
	for _, c := range a.safes.Cells() {
		if !a.moves.Contains(c) {
			return c, true
		}
	}
	return Cell{}, false
}

// RandomMove returns a uniformly random cell that has not been played
// and is not otherwise accounted for as safe or mine. A nil rng falls
// back to a time-seeded source. The second return value is false when
// the whole board is accounted for.
func (a *Agent) RandomMove(rng *rand.Rand) (Cell, bool) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	candidates := make([]Cell, 0, a.height*a.width)
	for r := 0; r < a.height; r++ {
		for c := 0; c < a.width; c++ {
			cell := Cell{Row: r, Col: c}
			if a.moves.Contains(cell) || a.safes.Contains(cell) || a.mines.Contains(cell) {
				continue
			}
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// KnownMines returns every cell currently known to be a mine, in
// row-major order.
func (a *Agent) KnownMines() []Cell {
	return a.mines.Cells()
}

// KnownSafes returns every cell currently known to be safe, in
// row-major order.
func (a *Agent) KnownSafes() []Cell {
	return a.safes.Cells()
}

// MovesMade returns every cell the agent has played, in row-major
// order.
func (a *Agent) MovesMade() []Cell {
	return a.moves.Cells()
}

// KnowledgeSize returns the number of retained sentences.
func (a *Agent) KnowledgeSize() int {
	return len(a.knowledge)
}

// AgentStats is a snapshot of the agent's knowledge for logging.
type AgentStats struct {
	MovesMade  int
	KnownSafes int
	KnownMines int
	Sentences  int
}

// Stats returns the current knowledge counters.
func (a *Agent) Stats() AgentStats {
	return AgentStats{
		MovesMade:  a.moves.Len(),
		KnownSafes: a.safes.Len(),
		KnownMines: a.mines.Len(),
		Sentences:  len(a.knowledge),
	}
}
