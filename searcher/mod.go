package searcher

import (
	"fmt"
	"math"

	"dominoes/game"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Normalization selects how a chance node combines its branches.
type Normalization int

const (
	// ByBranchCount divides the probability-weighted sum by the number of
	// branches, matching the reference player's play strength.
	ByBranchCount Normalization = iota
	// ByProbability keeps the plain expectation.
	ByProbability
)

func (n Normalization) String() string {
	if n == ByProbability {
		return "probability"
	}
	return "branch-count"
}

// mustPlay applies a move taken from the state's own legal list.
func mustPlay(s game.State, m game.Move) game.State {
	next, err := s.Play(m)
	if err != nil {
		panic(fmt.Sprintf("legal move %s rejected: %v", m, err))
	}
	return next
}
