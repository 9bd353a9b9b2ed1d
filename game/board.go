package game

import "fmt"

// Board holds the two open ends and the line of tiles already placed.
// Both ends are unset until the first tile is played.
type Board struct {
	A    Tile
	B    Tile
	Line []Tile
}

// NewBoard builds an open board from two end tiles and the placed line.
// When line is empty the end tiles themselves are taken as the line.
// An unoriented double exposes its pip; any other end tile must be oriented,
// since it is ambiguous which of its pips is open, and NewBoard panics otherwise.
func NewBoard(a, b Tile, line ...Tile) Board {
	a, b = orientEnd(a), orientEnd(b)
	if len(line) == 0 {
		line = []Tile{a.Unoriented()}
		if !a.Equal(b) {
			line = append(line, b.Unoriented())
		}
	}
	return Board{A: a, B: b, Line: append([]Tile(nil), line...)}
}

func (b Board) Empty() bool {
	return len(b.Line) == 0
}

// Ends returns the exposed pips, or -1, -1 on an empty board.
func (b Board) Ends() (int, int) {
	if b.Empty() {
		return -1, -1
	}
	return b.A.Exposed(), b.B.Exposed()
}

// Fits reports whether t can be attached at e.
func (b Board) Fits(t Tile, e End) bool {
	if t.IsPass() {
		return false
	}
	switch e {
	case Open:
		return b.Empty()
	case EndA:
		return !b.Empty() && t.Has(b.A.Exposed())
	case EndB:
		return !b.Empty() && t.Has(b.B.Exposed())
	}
	return false
}

// FitsAny reports whether t can be attached anywhere on the board.
func (b Board) FitsAny(t Tile) bool {
	return b.Fits(t, Open) || b.Fits(t, EndA) || b.Fits(t, EndB)
}

// Place returns a new board with t attached at e. The receiver is left untouched.
func (b Board) Place(t Tile, e End) (Board, error) {
	if !b.Fits(t, e) {
		return b, fmt.Errorf("%w: %s does not fit end %s", ErrIllegalMove, t, e)
	}
	line := make([]Tile, len(b.Line), len(b.Line)+1)
	copy(line, b.Line)
	next := Board{A: b.A, B: b.B, Line: append(line, t.Unoriented())}
	switch e {
	case Open:
		next.A = t.Exposing(t.Low)
		next.B = t.Exposing(t.High)
	case EndA:
		next.A = t.Exposing(otherPip(t, b.A.Exposed()))
	case EndB:
		next.B = t.Exposing(otherPip(t, b.B.Exposed()))
	}
	return next, nil
}

func orientEnd(t Tile) Tile {
	if t.Orient != Unset {
		return t
	}
	if t.IsDouble() {
		return t.Exposing(t.Low)
	}
	panic(fmt.Sprintf("board end %s has no orientation", t))
}

func otherPip(t Tile, touching int) int {
	if t.Low == touching {
		return t.High
	}
	return t.Low
}
