package searcher

import (
	"testing"

	"dominoes/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPartition(t *testing.T) {
	rules := game.NewStandardRules()
	board := game.NewBoard(game.NewTile(3, 1).Exposing(3), game.NewTile(2, 4).Exposing(4))

	t.Run("opponent turn splits by end", func(t *testing.T) {
		others := []game.Tile{game.NewTile(3, 6), game.NewTile(4, 5), game.NewTile(0, 0), game.NewTile(3, 5)}
		s := game.NewGameState(rules, 0, 1, []game.Tile{game.NewTile(1, 1)}, others, board)
		branches := Partition(s)

		require.Len(t, branches, 3)
		require.Equal(t, BranchEndA, branches[0].ID)
		require.Len(t, branches[0].Moves, 2)
		require.Equal(t, BranchEndB, branches[1].ID)
		require.Len(t, branches[1].Moves, 1)
		require.Equal(t, BranchPass, branches[2].ID)

		require.InDelta(t, 0.5, branches[0].Probability(), 1e-9)
		require.InDelta(t, 0.25, branches[1].Probability(), 1e-9)
		require.InDelta(t, 0.25, branches[2].Probability(), 1e-9)
	})

	t.Run("own turn is certain", func(t *testing.T) {
		s := game.NewGameState(rules, 0, 0, []game.Tile{game.NewTile(3, 6)}, []game.Tile{game.NewTile(0, 0)}, board)
		branches := Partition(s)

		require.Len(t, branches, 1)
		require.Equal(t, BranchOwn, branches[0].ID)
		require.Equal(t, 1.0, branches[0].Probability())
	})

	t.Run("empty pool", func(t *testing.T) {
		s := game.NewGameState(rules, 0, 1, []game.Tile{game.NewTile(3, 6)}, nil, board)
		branches := Partition(s)

		require.Len(t, branches, 1)
		require.Equal(t, BranchPass, branches[0].ID)
		require.Zero(t, branches[0].Probability(), "Zero denominator should give probability 0")
	})

	t.Run("outcome restricts moves without touching the source", func(t *testing.T) {
		others := []game.Tile{game.NewTile(3, 6), game.NewTile(4, 5)}
		s := game.NewGameState(rules, 0, 1, []game.Tile{game.NewTile(1, 1)}, others, board)
		sub := Outcome(s, Partition(s)[1])

		require.Equal(t, []game.Move{{Tile: game.NewTile(4, 5), End: game.EndB}}, sub.Moves)
		require.Len(t, s.Moves, 2)
	})
}

func TestPartitionProbabilitiesSumToOne(t *testing.T) {
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(11))

	for g := 0; g < 20; g++ {
		table, err := game.Deal(rules, rng)
		require.NoError(t, err)

		for !table.Terminal() {
			for seat := 0; seat < game.NumSeats; seat++ {
				view := table.View(seat)
				if len(view.Others) == 0 {
					continue
				}
				sum := 0.0
				for _, c := range Partition(view) {
					sum += c.Probability()
				}
				require.InDelta(t, 1.0, sum, 1e-9)
			}
			moves := table.LegalMoves()
			table, err = table.Apply(moves[rng.Intn(len(moves))])
			require.NoError(t, err)
		}
	}
}
