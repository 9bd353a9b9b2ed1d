package gamemaster

import (
	"fmt"

	"dominoes/game"

	"golang.org/x/exp/rand"
)

// Update records one applied move.
type Update struct {
	Seat int
	Move game.Move
	Hash game.StateHash
}

// Engine owns the authoritative table and is the only place moves are applied.
type Engine interface {
	Init(rng *rand.Rand) error
	Play(game.Move) error
}

type LocalEngine struct {
	rules   game.Rules
	table   *game.Table
	history []Update
}

func NewLocalEngine(rules game.Rules) *LocalEngine {
	return &LocalEngine{rules: rules}
}

// Init deals a fresh game.
func (e *LocalEngine) Init(rng *rand.Rand) error {
	table, err := game.Deal(e.rules, rng)
	if err != nil {
		return fmt.Errorf("failed to deal: %w", err)
	}
	e.table = table
	e.history = nil
	return nil
}

// Resume continues from an existing table, e.g. a prepared position.
func (e *LocalEngine) Resume(table *game.Table) error {
	if err := table.Verify(); err != nil {
		return err
	}
	e.table = table.Copy()
	e.history = nil
	return nil
}

// Play applies move for the seat to act. On error the table is unchanged.
func (e *LocalEngine) Play(move game.Move) error {
	if e.table == nil {
		return fmt.Errorf("game not started")
	}
	if e.table.Terminal() {
		return game.ErrGameOver
	}

	legal := false
	for _, lm := range e.table.LegalMoves() {
		if movesEqual(lm, move) {
			legal = true
			break
		}
	}
	// The listed move for a tile may name the other end than the one chosen.
	if !legal && !move.IsPass() && e.table.Board.Fits(move.Tile, move.End) {
		legal = true
	}
	if !legal {
		return fmt.Errorf("%w: %s by seat %d", game.ErrIllegalMove, move, e.table.ToMove)
	}

	seat := e.table.ToMove
	next, err := e.table.Apply(move)
	if err != nil {
		return err
	}
	e.table = next
	e.history = append(e.history, Update{Seat: seat, Move: move, Hash: next.Hash()})
	return nil
}

func (e *LocalEngine) Over() bool {
	return e.table != nil && e.table.Terminal()
}

func (e *LocalEngine) ToMove() int {
	return e.table.ToMove
}

func (e *LocalEngine) Winner() int {
	return e.table.Winner()
}

func (e *LocalEngine) Winners() []int {
	return e.table.Winners
}

// View returns seat's picture of the table.
func (e *LocalEngine) View(seat int) *game.GameState {
	return e.table.View(seat)
}

// Table returns a copy of the authoritative table.
func (e *LocalEngine) Table() *game.Table {
	return e.table.Copy()
}

// Last returns the most recent update, false before the first move.
func (e *LocalEngine) Last() (Update, bool) {
	if len(e.history) == 0 {
		return Update{}, false
	}
	return e.history[len(e.history)-1], true
}

func (e *LocalEngine) History() []Update {
	return append([]Update(nil), e.history...)
}

func movesEqual(m1, m2 game.Move) bool {
	return m1.Same(m2)
}
