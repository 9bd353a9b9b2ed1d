package game

import (
	"fmt"
	"slices"

	"dominoes/utils"
)

// GameState is one seat's snapshot of a turn. The seat under evaluation
// (Perspective) knows its own tiles; the three other hands are pooled in Others.
// Operations never modify a GameState in place.
type GameState struct {
	Rules       Rules
	Perspective int           // seat whose hand is Own
	ToMove      int           // acting seat
	Own         []Tile        // Perspective's hand
	Others      []Tile        // pooled tiles of every other seat
	Counts      [NumSeats]int // public number of tiles per seat
	Board       Board
	Moves       []Move  // legal moves of the acting seat, never empty
	Outcome     float64 // Perspective's terminal score, 0 while in play
	Winners     []int   // nil while in play
}

// NewGameState builds a pooled state. Hand sizes of the hidden seats are
// assumed to be as even as possible; use WithCounts when they are known.
func NewGameState(rules Rules, perspective, toMove int, own, others []Tile, board Board) *GameState {
	gs := &GameState{
		Rules:       rules,
		Perspective: perspective,
		ToMove:      toMove,
		Own:         slices.Clone(own),
		Others:      slices.Clone(others),
		Board:       board.clone(),
	}
	gs.Counts[perspective] = len(own)
	for i := 1; i < NumSeats; i++ {
		seat := (perspective + i) % NumSeats
		gs.Counts[seat] = len(others) / (NumSeats - 1)
		if i <= len(others)%(NumSeats-1) {
			gs.Counts[seat]++
		}
	}
	gs.Moves = GenerateMoves(gs.group(), gs.Board)
	return gs
}

func (gs GameState) Copy() *GameState {
	return &GameState{
		Rules:       gs.Rules, // immutable
		Perspective: gs.Perspective,
		ToMove:      gs.ToMove,
		Own:         slices.Clone(gs.Own),
		Others:      slices.Clone(gs.Others),
		Counts:      gs.Counts,
		Board:       gs.Board.clone(),
		Moves:       slices.Clone(gs.Moves),
		Outcome:     gs.Outcome,
		Winners:     slices.Clone(gs.Winners),
	}
}

// WithCounts returns a copy carrying the given public hand sizes.
func (gs *GameState) WithCounts(counts [NumSeats]int) *GameState {
	c := gs.Copy()
	c.Counts = counts
	c.Counts[c.Perspective] = len(c.Own)
	return c
}

// WithMoves returns a copy whose legal-move list is replaced by moves.
// Search uses it to follow a single chance branch.
func (gs *GameState) WithMoves(moves []Move) *GameState {
	c := gs.Copy()
	c.Moves = slices.Clone(moves)
	return c
}

func (gs *GameState) Player() int {
	return gs.ToMove
}

func (gs *GameState) LegalMoves() []Move {
	return gs.Moves
}

func (gs *GameState) Terminal() bool {
	return gs.Outcome != 0
}

func (gs *GameState) Utility(seat int) float64 {
	if !gs.Terminal() {
		return 0
	}
	if slices.Contains(gs.Winners, seat) {
		return gs.Rules.WinScore()
	}
	return gs.Rules.LossScore()
}

// Winner returns the first winning seat, or NoSeat while the game is in play.
func (gs *GameState) Winner() int {
	if len(gs.Winners) == 0 {
		return NoSeat
	}
	return gs.Winners[0]
}

func (gs *GameState) group() []Tile {
	if gs.ToMove == gs.Perspective {
		return gs.Own
	}
	return gs.Others
}

func (gs *GameState) Play(m Move) (State, error) {
	return gs.Apply(m)
}

// Apply validates m and returns the resulting state.
func (gs *GameState) Apply(m Move) (*GameState, error) {
	if gs.Terminal() {
		return nil, ErrGameOver
	}
	if !gs.allows(m) {
		return nil, fmt.Errorf("%w: %s by seat %d", ErrIllegalMove, m, gs.ToMove)
	}

	next := gs.Copy()
	acting := gs.ToMove
	if m.IsPass() {
		if !gs.Board.Empty() && !Playable(gs.Own, gs.Board) && !Playable(gs.Others, gs.Board) {
			next.Winners = gs.blockWinners()
		}
	} else {
		board, err := gs.Board.Place(m.Tile, m.End)
		if err != nil {
			return nil, err
		}
		next.Board = board
		if acting == gs.Perspective {
			next.Own = removeTile(gs.Own, m.Tile)
		} else {
			next.Others = removeTile(gs.Others, m.Tile)
		}
		next.Counts[acting]--
		if next.Counts[acting] <= 0 || (acting != gs.Perspective && len(next.Others) == 0) {
			next.Winners = []int{acting}
		}
	}

	next.ToMove = NextSeat(acting)
	next.Moves = GenerateMoves(next.group(), next.Board)
	next.Outcome = outcomeFor(gs.Rules, next.Perspective, next.Winners)
	return next, nil
}

// allows accepts any listed move, and also a tile from the acting group
// attached to its other end when it fits there.
func (gs *GameState) allows(m Move) bool {
	for _, lm := range gs.Moves {
		if lm.Same(m) {
			return true
		}
	}
	if m.IsPass() {
		return false
	}
	return containsTile(gs.group(), m.Tile) && gs.Board.Fits(m.Tile, m.End)
}

// blockWinners bounds every hidden hand by the smallest tiles of the pool.
func (gs *GameState) blockWinners() []int {
	pool := slices.Clone(gs.Others)
	slices.SortFunc(pool, func(a, b Tile) int { return a.Pips() - b.Pips() })

	var sums [NumSeats]int
	for seat := 0; seat < NumSeats; seat++ {
		if seat == gs.Perspective {
			sums[seat] = PipSum(gs.Own)
			continue
		}
		sums[seat] = PipSum(pool[:min(max(gs.Counts[seat], 0), len(pool))])
	}
	return minimalSeats(gs.Rules, sums, func(seat int) bool {
		return seat == gs.Perspective || gs.Counts[seat] > 0
	})
}

func appendTiles(buf []byte, tiles []Tile) []byte {
	for _, t := range tiles {
		p := t.Pair()
		buf = append(buf, byte(p[0]), byte(p[1]))
	}
	return buf
}

func outcomeFor(rules Rules, perspective int, winners []int) float64 {
	if len(winners) == 0 {
		return 0
	}
	if slices.Contains(winners, perspective) {
		return rules.WinScore()
	}
	return rules.LossScore()
}

// minimalSeats returns the seats with the smallest pip sum after the tie-break.
func minimalSeats(rules Rules, sums [NumSeats]int, eligible func(int) bool) []int {
	best := -1
	var tied []int
	for seat, sum := range sums {
		if !eligible(seat) {
			continue
		}
		switch {
		case best < 0 || sum < best:
			best = sum
			tied = []int{seat}
		case sum == best:
			tied = append(tied, seat)
		}
	}
	return slices.Clone(rules.BreakTie(tied))
}

func containsTile(tiles []Tile, t Tile) bool {
	return utils.FindIndexFunc(tiles, t.Equal) >= 0
}

// removeTile returns a copy of tiles without the first tile equal to t.
func removeTile(tiles []Tile, t Tile) []Tile {
	i := utils.FindIndexFunc(tiles, t.Equal)
	if i < 0 {
		return slices.Clone(tiles)
	}
	return utils.RemoveAt(tiles, i)
}

func (b Board) clone() Board {
	return Board{A: b.A, B: b.B, Line: slices.Clone(b.Line)}
}
