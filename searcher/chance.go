package searcher

import (
	"dominoes/game"

	"github.com/samber/lo"
)

// BranchID names a chance branch by the open end a hidden tile would match.
type BranchID int

const (
	BranchPass BranchID = -1
	BranchOwn  BranchID = 0 // the acting seat's hand is known, no uncertainty
	BranchEndA BranchID = 1
	BranchEndB BranchID = 2
	BranchOpen BranchID = 3 // empty board, every hidden tile fits
)

// Chance is one branch of the uncertainty over an opponent's hidden tile.
type Chance struct {
	ID          BranchID
	Moves       []game.Move
	Total       int // matched (non-pass) moves of the state
	Denominator int // hidden tiles the opponent may be holding
}

// Probability is the branch's share of the hidden pool. The pass branch takes
// whatever the matched moves leave. A zero denominator yields 0.
func (c Chance) Probability() float64 {
	if c.ID == BranchOwn {
		return 1
	}
	if c.Denominator <= 0 {
		return 0
	}
	if c.ID == BranchPass {
		return 1 - float64(c.Total)/float64(c.Denominator)
	}
	return float64(len(c.Moves)) / float64(c.Denominator)
}

var branchEnds = []struct {
	id  BranchID
	end game.End
}{
	{BranchOpen, game.Open},
	{BranchEndA, game.EndA},
	{BranchEndB, game.EndB},
}

// Partition splits the legal moves of s into chance branches. When the acting
// seat is the one whose hand is known there is a single certain branch.
func Partition(s *game.GameState) []Chance {
	matched := lo.Reject(s.Moves, func(m game.Move, _ int) bool { return m.IsPass() })
	if s.ToMove == s.Perspective {
		return []Chance{{ID: BranchOwn, Moves: s.Moves, Total: len(matched), Denominator: len(s.Own)}}
	}

	pool := len(s.Others)
	var branches []Chance
	for _, be := range branchEnds {
		moves := lo.Filter(matched, func(m game.Move, _ int) bool { return m.End == be.end })
		if len(moves) > 0 {
			branches = append(branches, Chance{ID: be.id, Moves: moves, Total: len(matched), Denominator: pool})
		}
	}
	return append(branches, Chance{
		ID:          BranchPass,
		Moves:       []game.Move{game.PassMove},
		Total:       len(matched),
		Denominator: pool,
	})
}

// Outcome is the what-if state in which only the branch's moves are available.
func Outcome(s *game.GameState, c Chance) *game.GameState {
	return s.WithMoves(c.Moves)
}
