package game

// GenerateMoves emits one move per tile in group that fits the board, trying
// end A before end B. Every tile fits an empty board. The result is never
// empty: a group with nothing playable yields the single pass move.
func GenerateMoves(group []Tile, board Board) []Move {
	moves := make([]Move, 0, len(group))
	for _, t := range group {
		t = t.Unoriented()
		switch {
		case board.Empty():
			moves = append(moves, Move{Tile: t, End: Open})
		case board.Fits(t, EndA):
			moves = append(moves, Move{Tile: t, End: EndA})
		case board.Fits(t, EndB):
			moves = append(moves, Move{Tile: t, End: EndB})
		}
	}
	if len(moves) == 0 {
		return []Move{PassMove}
	}
	return moves
}

// Playable reports whether any tile of group fits the board.
func Playable(group []Tile, board Board) bool {
	for _, t := range group {
		if board.FitsAny(t) {
			return true
		}
	}
	return false
}
