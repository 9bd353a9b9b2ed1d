package game

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/rand"
)

// Table is the authoritative, fully observed game: every hand is known.
// The driving loop owns it; seats only ever see a View.
type Table struct {
	Rules    Rules
	Hands    [NumSeats][]Tile
	Boneyard []Tile // undealt tiles, empty for a standard deal
	Board    Board
	ToMove   int
	Winners  []int
}

// Deal shuffles the tile set with rng and deals HandSize tiles to each seat.
// Seat 0 moves first.
func Deal(rules Rules, rng *rand.Rand) (*Table, error) {
	tiles := FullSet(rules.MaxPip())
	if rules.HandSize()*NumSeats > len(tiles) {
		return nil, fmt.Errorf("%w: cannot deal %d tiles to %d seats from %d", ErrInvalidRules, rules.HandSize(), NumSeats, len(tiles))
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	t := &Table{Rules: rules}
	for seat := 0; seat < NumSeats; seat++ {
		start := seat * rules.HandSize()
		t.Hands[seat] = slices.Clone(tiles[start : start+rules.HandSize()])
	}
	t.Boneyard = slices.Clone(tiles[NumSeats*rules.HandSize():])
	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTable builds a table from explicit hands and board. Tiles of the set
// that appear nowhere go to the boneyard.
func NewTable(rules Rules, hands [NumSeats][]Tile, board Board, toMove int) (*Table, error) {
	t := &Table{Rules: rules, Board: board.clone(), ToMove: toMove}
	for seat := range hands {
		t.Hands[seat] = slices.Clone(hands[seat])
	}
	placed := slices.Concat(append(t.Hands[:], board.Line)...)
	for _, tile := range FullSet(rules.MaxPip()) {
		if !containsTile(placed, tile) {
			t.Boneyard = append(t.Boneyard, tile)
		}
	}
	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}

// Verify checks tile conservation: hands, board and boneyard hold every tile
// of the set exactly once.
func (t *Table) Verify() error {
	groups := append(t.Hands[:], t.Board.Line, t.Boneyard)
	return CheckConservation(t.Rules.MaxPip(), groups...)
}

// CheckConservation reports ErrDealInvariant unless groups together hold
// every tile with pips in [0, maxPip] exactly once.
func CheckConservation(maxPip int, groups ...[]Tile) error {
	seen := make(map[[2]int]int)
	for _, group := range groups {
		for _, tile := range group {
			p := tile.Pair()
			if p[0] < 0 || p[1] > maxPip {
				return fmt.Errorf("%w: tile %s outside the set", ErrDealInvariant, tile)
			}
			seen[p]++
			if seen[p] > 1 {
				return fmt.Errorf("%w: tile %s duplicated", ErrDealInvariant, tile)
			}
		}
	}
	for _, tile := range FullSet(maxPip) {
		if seen[tile.Pair()] == 0 {
			return fmt.Errorf("%w: tile %s missing", ErrDealInvariant, tile)
		}
	}
	return nil
}

func (t Table) Copy() *Table {
	c := &Table{
		Rules:    t.Rules,
		Boneyard: slices.Clone(t.Boneyard),
		Board:    t.Board.clone(),
		ToMove:   t.ToMove,
		Winners:  slices.Clone(t.Winners),
	}
	for seat := range t.Hands {
		c.Hands[seat] = slices.Clone(t.Hands[seat])
	}
	return c
}

func (t *Table) Player() int {
	return t.ToMove
}

func (t *Table) LegalMoves() []Move {
	return GenerateMoves(t.Hands[t.ToMove], t.Board)
}

func (t *Table) Terminal() bool {
	return len(t.Winners) > 0
}

func (t *Table) Utility(seat int) float64 {
	return outcomeFor(t.Rules, seat, t.Winners)
}

// Winner returns the first winning seat, or NoSeat while the game is in play.
func (t *Table) Winner() int {
	if len(t.Winners) == 0 {
		return NoSeat
	}
	return t.Winners[0]
}

func (t *Table) PipSums() [NumSeats]int {
	var sums [NumSeats]int
	for seat, hand := range t.Hands {
		sums[seat] = PipSum(hand)
	}
	return sums
}

func (t *Table) Play(m Move) (State, error) {
	return t.Apply(m)
}

// Apply validates m for the acting seat and returns the resulting table.
func (t *Table) Apply(m Move) (*Table, error) {
	if t.Terminal() {
		return nil, ErrGameOver
	}
	acting := t.ToMove
	hand := t.Hands[acting]
	next := t.Copy()

	if m.IsPass() {
		if Playable(hand, t.Board) {
			return nil, fmt.Errorf("%w: seat %d passed holding a playable tile", ErrIllegalMove, acting)
		}
		if !t.Board.Empty() && !t.anyPlayable() {
			next.Winners = minimalSeats(t.Rules, t.PipSums(), func(int) bool { return true })
		}
	} else {
		if !containsTile(hand, m.Tile) {
			return nil, fmt.Errorf("%w: seat %d does not hold %s", ErrIllegalMove, acting, m.Tile)
		}
		board, err := t.Board.Place(m.Tile, m.End)
		if err != nil {
			return nil, err
		}
		next.Board = board
		next.Hands[acting] = removeTile(hand, m.Tile)
		if len(next.Hands[acting]) == 0 {
			next.Winners = []int{acting}
		}
	}

	next.ToMove = NextSeat(acting)
	return next, nil
}

func (t *Table) anyPlayable() bool {
	for _, hand := range t.Hands {
		if Playable(hand, t.Board) {
			return true
		}
	}
	return false
}

// View returns seat's pooled picture of the table.
func (t *Table) View(seat int) *GameState {
	gs := &GameState{
		Rules:       t.Rules,
		Perspective: seat,
		ToMove:      t.ToMove,
		Own:         slices.Clone(t.Hands[seat]),
		Board:       t.Board.clone(),
		Winners:     slices.Clone(t.Winners),
	}
	for s, hand := range t.Hands {
		gs.Counts[s] = len(hand)
		if s != seat {
			gs.Others = append(gs.Others, hand...)
		}
	}
	gs.Moves = GenerateMoves(gs.group(), gs.Board)
	gs.Outcome = outcomeFor(t.Rules, seat, t.Winners)
	return gs
}

func (t *Table) Hash() StateHash {
	buf := []byte{byte(t.ToMove)}
	for _, hand := range t.Hands {
		buf = appendTiles(buf, hand)
		buf = append(buf, 0xff)
	}
	a, b := t.Board.Ends()
	buf = append(buf, byte(a), byte(b))
	return StateHash(xxhash.Sum64(buf))
}
