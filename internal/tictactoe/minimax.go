package tictactoe

// OptimalMove returns the strongest move for the player to move on b.
// X plays to maximize utility and O plays to minimize it; the search
// visits the entire remaining game tree. Ties are broken toward the
// earliest best move in row-major order, so the result is
// deterministic. The second return value is false when b is terminal
// and no move exists.
func OptimalMove(b Board) (Cell, bool) {
	if b.IsTerminal() {
		return Cell{}, false
	}

	var best Cell
	if b.CurrentPlayer() == X {
		bestScore := -2
		for _, move := range b.LegalMoves() {
			next, _ := b.Apply(move)
			if score := minValue(next); score > bestScore {
				bestScore = score
				best = move
			}
		}
	} else {
		bestScore := 2
		for _, move := range b.LegalMoves() {
			next, _ := b.Apply(move)
			if score := maxValue(next); score < bestScore {
				bestScore = score
				best = move
			}
		}
	}
	return best, true
}

// maxValue returns the highest utility X can force from b.
func maxValue(b Board) int {
	if b.IsTerminal() {
		return b.Utility()
	}
	best := -2
	for _, move := range b.LegalMoves() {
		next, _ := b.Apply(move)
		if v := minValue(next); v > best {
			best = v
		}
	}
	return best
}

// minValue returns the lowest utility O can force from b.
func minValue(b Board) int {
	if b.IsTerminal() {
		return b.Utility()
	}
	best := 2
	for _, move := range b.LegalMoves() {
		next, _ := b.Apply(move)
		if v := maxValue(next); v < best {
			best = v
		}
	}
	return best
}
