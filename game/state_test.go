package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStateOpening(t *testing.T) {
	rules := NewStandardRules()
	own := []Tile{NewTile(6, 6), NewTile(5, 5)}
	others := []Tile{NewTile(0, 1), NewTile(1, 2), NewTile(2, 3)}
	gs := NewGameState(rules, 0, 0, own, others, Board{})

	a, b := gs.Board.Ends()
	require.Equal(t, -1, a)
	require.Equal(t, -1, b)
	require.Equal(t, []Move{{Tile: NewTile(6, 6), End: Open}, {Tile: NewTile(5, 5), End: Open}}, gs.Moves)

	next, err := gs.Apply(Move{Tile: NewTile(6, 6), End: Open})
	require.NoError(t, err)
	require.True(t, next.Board.A.Equal(NewTile(6, 6)))
	require.True(t, next.Board.B.Equal(NewTile(6, 6)))
	require.Equal(t, []Tile{NewTile(5, 5)}, next.Own)
	require.Zero(t, next.Outcome)
	require.False(t, next.Terminal())
	require.Equal(t, 1, next.ToMove)
	require.Len(t, gs.Own, 2, "Source state should be untouched")
}

func TestGameStateLastTileWins(t *testing.T) {
	rules := NewStandardRules()
	board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
	others := []Tile{NewTile(0, 0), NewTile(5, 6)}

	for _, end := range []End{EndA, EndB} {
		t.Run("playing to end "+end.String(), func(t *testing.T) {
			gs := NewGameState(rules, 0, 0, []Tile{NewTile(3, 4)}, others, board)
			next, err := gs.Apply(Move{Tile: NewTile(3, 4), End: end})

			require.NoError(t, err)
			require.Empty(t, next.Own)
			require.Equal(t, 4.0, next.Outcome)
			require.True(t, next.Terminal())
			require.Equal(t, 0, next.Winner())
		})
	}

	t.Run("an opponent emptying its hand is a loss", func(t *testing.T) {
		gs := NewGameState(rules, 0, 1, []Tile{NewTile(0, 0)}, []Tile{NewTile(3, 6), NewTile(5, 5)}, board).
			WithCounts([NumSeats]int{1, 1, 1, 0})
		next, err := gs.Apply(Move{Tile: NewTile(3, 6), End: EndA})

		require.NoError(t, err)
		require.Equal(t, -1.0, next.Outcome)
		require.Equal(t, 1, next.Winner())
		require.Equal(t, 4.0, next.Utility(1))
		require.Equal(t, -1.0, next.Utility(0))
	})
}

func TestGameStateValidation(t *testing.T) {
	rules := NewStandardRules()
	board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
	gs := NewGameState(rules, 0, 0, []Tile{NewTile(3, 4), NewTile(0, 0)}, []Tile{NewTile(5, 6)}, board)

	t.Run("tile not held", func(t *testing.T) {
		_, err := gs.Apply(Move{Tile: NewTile(3, 6), End: EndA})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("tile does not fit", func(t *testing.T) {
		_, err := gs.Apply(Move{Tile: NewTile(0, 0), End: EndA})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("pass while holding a playable tile", func(t *testing.T) {
		_, err := gs.Apply(PassMove)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("no moves after the end", func(t *testing.T) {
		won := NewGameState(rules, 0, 0, []Tile{NewTile(3, 4)}, []Tile{NewTile(5, 6)}, board)
		over, err := won.Apply(Move{Tile: NewTile(3, 4), End: EndA})
		require.NoError(t, err)

		_, err = over.Apply(over.Moves[0])
		require.ErrorIs(t, err, ErrGameOver)
		require.Equal(t, 0, over.Winner(), "Finished state should keep its winner")
	})
}

func TestGameStateBlock(t *testing.T) {
	rules := NewStandardRules()
	board := NewBoard(NewTile(6, 6).Exposing(6), NewTile(6, 6).Exposing(6))
	others := []Tile{NewTile(0, 1), NewTile(2, 3), NewTile(4, 5)}

	t.Run("own hand lighter than the lightest possible hidden hand", func(t *testing.T) {
		gs := NewGameState(rules, 0, 0, []Tile{NewTile(0, 0)}, others, board)
		next, err := gs.Apply(PassMove)

		require.NoError(t, err)
		require.Equal(t, 4.0, next.Outcome)
		require.Equal(t, []int{0}, next.Winners)
	})

	t.Run("a hidden hand may be lighter", func(t *testing.T) {
		gs := NewGameState(rules, 0, 0, []Tile{NewTile(5, 5)}, others, board)
		next, err := gs.Apply(PassMove)

		require.NoError(t, err)
		require.Equal(t, -1.0, next.Outcome)
		require.Equal(t, 1, next.Winner())
	})

	t.Run("pass with playable pool tiles continues", func(t *testing.T) {
		gs := NewGameState(rules, 0, 0, []Tile{NewTile(0, 0)}, []Tile{NewTile(1, 6)}, board)
		next, err := gs.Apply(PassMove)

		require.NoError(t, err)
		require.False(t, next.Terminal())
		require.Equal(t, []Move{{Tile: NewTile(1, 6), End: EndA}}, next.Moves)
	})
}

func TestGameStateConservation(t *testing.T) {
	rules := NewStandardRules()
	set := FullSet(6)
	gs := NewGameState(rules, 0, 0, set[:7], set[7:], Board{})
	require.NoError(t, CheckConservation(6, gs.Own, gs.Others, gs.Board.Line))

	for i := 0; i < 12 && !gs.Terminal(); i++ {
		next, err := gs.Apply(gs.Moves[0])
		require.NoError(t, err)
		require.NoError(t, CheckConservation(6, next.Own, next.Others, next.Board.Line))
		gs = next
	}
}

func TestGameStateTerminalMonotonicity(t *testing.T) {
	rules := NewStandardRules()
	board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
	gs := NewGameState(rules, 0, 0, []Tile{NewTile(3, 4)}, []Tile{NewTile(4, 5)}, board)
	over, err := gs.Apply(gs.Moves[0])
	require.NoError(t, err)

	derived := over.WithMoves(over.Moves).WithCounts(over.Counts)
	require.True(t, derived.Terminal())
	require.Equal(t, over.Outcome, derived.Outcome)
	require.Equal(t, over.Winners, derived.Winners)
	_, err = derived.Apply(derived.Moves[0])
	require.ErrorIs(t, err, ErrGameOver)
}

func TestGameStateMovesFromActingGroup(t *testing.T) {
	rules := NewStandardRules()
	board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
	own := []Tile{NewTile(3, 5)}
	pool := []Tile{NewTile(4, 6), NewTile(0, 0)}

	mine := NewGameState(rules, 0, 0, own, pool, board)
	require.Equal(t, []Move{{Tile: NewTile(3, 5), End: EndA}}, mine.Moves)

	theirs := NewGameState(rules, 0, 1, own, pool, board)
	require.Equal(t, []Move{{Tile: NewTile(4, 6), End: EndB}}, theirs.Moves)
	_, err := theirs.Apply(Move{Tile: NewTile(3, 5), End: EndA})
	require.ErrorIs(t, err, ErrIllegalMove, "An opponent cannot play from the seat's own hand")
}
