package player

import (
	"testing"

	"dominoes/game"
	"dominoes/mdp"
	"dominoes/qlearning"

	"github.com/stretchr/testify/require"
)

var board = game.NewBoard(game.NewTile(3, 1).Exposing(3), game.NewTile(2, 4).Exposing(4))

func TestPlayersStayLegal(t *testing.T) {
	rules := game.NewStandardRules()
	own := []game.Tile{game.NewTile(3, 5), game.NewTile(4, 6), game.NewTile(0, 0)}
	s := game.NewGameState(rules, 0, 0, own, []game.Tile{game.NewTile(1, 1)}, board)

	m, err := mdp.New(0.9)
	require.NoError(t, err)
	players := map[string]Player{
		"random":   NewRandom(5),
		"first":    NewFirst(),
		"learning": NewLearning(qlearning.NewAgent(m, qlearning.NewTable())),
	}

	for name, p := range players {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				move, err := p.FindMove(rules, s)
				require.NoError(t, err)
				_, err = s.Apply(move)
				require.NoError(t, err)
			}
		})
	}
}

func TestPlayersRejectFinishedGames(t *testing.T) {
	rules := game.NewStandardRules()
	s := game.NewGameState(rules, 0, 0, []game.Tile{game.NewTile(3, 5)}, []game.Tile{game.NewTile(1, 1)}, board)
	over, err := s.Apply(s.Moves[0])
	require.NoError(t, err)

	_, err = NewRandom(1).FindMove(rules, over)
	require.ErrorIs(t, err, ErrNoMove)

	m, err := mdp.New(0.9)
	require.NoError(t, err)
	learner := NewLearning(qlearning.NewAgent(m, qlearning.NewTable()))
	_, err = learner.FindMove(rules, over)
	require.ErrorIs(t, err, ErrNoMove)
}
