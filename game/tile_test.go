package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTileEqual(t *testing.T) {
	t.Run("symmetric pip pairs", func(t *testing.T) {
		require.True(t, NewTile(3, 5).Equal(Tile{Low: 5, High: 3}))
		require.True(t, NewTile(3, 5).Equal(NewTile(3, 5).Exposing(5)), "Orientation should not matter")
		require.False(t, NewTile(3, 5).Equal(NewTile(3, 4)))
	})

	t.Run("exposing a pip never mutates the original", func(t *testing.T) {
		tile := NewTile(2, 6)
		oriented := tile.Exposing(6)

		require.Equal(t, Unset, tile.Orient)
		require.Equal(t, 6, oriented.Exposed())
		require.Equal(t, 2, tile.Exposing(2).Exposed())
		require.Equal(t, -1, tile.Exposed())
	})

	t.Run("full set", func(t *testing.T) {
		set := FullSet(6)
		require.Len(t, set, 28)
		require.NoError(t, CheckConservation(6, set))
		require.Len(t, FullSet(2), 6)
	})
}

func TestBoardPlace(t *testing.T) {
	t.Run("opening tile sets both ends", func(t *testing.T) {
		board, err := Board{}.Place(NewTile(3, 5), Open)
		require.NoError(t, err)

		a, b := board.Ends()
		require.Equal(t, 3, a)
		require.Equal(t, 5, b)
		require.Len(t, board.Line, 1)
	})

	t.Run("attached tile exposes its free pip", func(t *testing.T) {
		board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
		next, err := board.Place(NewTile(3, 6), EndA)
		require.NoError(t, err)

		a, b := next.Ends()
		require.Equal(t, 6, a)
		require.Equal(t, 4, b)
		require.Len(t, board.Line, 2, "Receiver should keep its line")
		require.Len(t, next.Line, 3)
	})

	t.Run("mismatched tile", func(t *testing.T) {
		board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
		_, err := board.Place(NewTile(5, 6), EndB)
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestNewBoard(t *testing.T) {
	t.Run("unoriented doubles expose their pip", func(t *testing.T) {
		b := NewBoard(NewTile(6, 6), NewTile(2, 2))
		a, e := b.Ends()
		require.Equal(t, 6, a)
		require.Equal(t, 2, e)
		require.False(t, b.Empty())
		require.True(t, b.Fits(NewTile(6, 1), EndA))
	})

	t.Run("oriented ends are kept", func(t *testing.T) {
		b := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 5).Exposing(5))
		a, e := b.Ends()
		require.Equal(t, 3, a)
		require.Equal(t, 5, e)
	})

	t.Run("unoriented non-double end", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(NewTile(3, 1), NewTile(2, 5).Exposing(5)) })
	})
}

func TestGenerateMoves(t *testing.T) {
	t.Run("empty board accepts every tile", func(t *testing.T) {
		moves := GenerateMoves([]Tile{NewTile(6, 6), NewTile(5, 5)}, Board{})
		require.Equal(t, []Move{
			{Tile: NewTile(6, 6), End: Open},
			{Tile: NewTile(5, 5), End: Open},
		}, moves)
	})

	t.Run("one move per tile, end a first", func(t *testing.T) {
		board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
		moves := GenerateMoves([]Tile{NewTile(3, 4), NewTile(4, 6), NewTile(0, 0)}, board)
		require.Equal(t, []Move{
			{Tile: NewTile(3, 4), End: EndA},
			{Tile: NewTile(4, 6), End: EndB},
		}, moves)
	})

	t.Run("nothing fits", func(t *testing.T) {
		board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
		require.Equal(t, []Move{PassMove}, GenerateMoves([]Tile{NewTile(0, 0)}, board))
		require.Equal(t, []Move{PassMove}, GenerateMoves(nil, board))
	})

	t.Run("stable for the same input", func(t *testing.T) {
		group := []Tile{NewTile(1, 3), NewTile(3, 3), NewTile(4, 5)}
		board := NewBoard(NewTile(3, 1).Exposing(3), NewTile(2, 4).Exposing(4))
		require.Equal(t, GenerateMoves(group, board), GenerateMoves(group, board))
	})
}
