package game

import (
	"fmt"
	"strings"
)

type StandardRules struct {
	MaxPipValue int
	Hand        int
	Win         float64
	Loss        float64
	Tie         TieBreak
}

type RulesOption func(sr *StandardRules)

// WithMaxPip shrinks the tile set. Only reduced test instances use it.
func WithMaxPip(maxPip int) RulesOption {
	return func(sr *StandardRules) {
		if maxPip >= 0 {
			sr.MaxPipValue = maxPip
		}
	}
}

func WithHandSize(size int) RulesOption {
	return func(sr *StandardRules) {
		if size > 0 {
			sr.Hand = size
		}
	}
}

func WithTieBreak(tb TieBreak) RulesOption {
	return func(sr *StandardRules) {
		sr.Tie = tb
	}
}

func WithScores(win, loss float64) RulesOption {
	return func(sr *StandardRules) {
		sr.Win = win
		sr.Loss = loss
	}
}

// NewStandardRules returns double-six rules: 28 tiles, seven per seat, +4 / -1.
func NewStandardRules(options ...RulesOption) *StandardRules {
	sr := &StandardRules{
		MaxPipValue: 6,
		Hand:        7,
		Win:         4,
		Loss:        -1,
		Tie:         LowestSeat,
	}
	for _, option := range options {
		option(sr)
	}
	return sr
}

// Validate checks the deal fits in the tile set and the scores are distinguishable.
func (sr *StandardRules) Validate() error {
	total := (sr.MaxPipValue + 1) * (sr.MaxPipValue + 2) / 2
	if sr.Hand <= 0 || sr.Hand*NumSeats > total {
		return fmt.Errorf("%w: %d seats of %d tiles from a set of %d", ErrInvalidRules, NumSeats, sr.Hand, total)
	}
	if sr.Win <= 0 || sr.Loss >= 0 {
		return fmt.Errorf("%w: win score must be positive and loss score negative", ErrInvalidRules)
	}
	return nil
}

func (sr *StandardRules) MaxPip() int {
	return sr.MaxPipValue
}

func (sr *StandardRules) HandSize() int {
	return sr.Hand
}

func (sr *StandardRules) WinScore() float64 {
	return sr.Win
}

func (sr *StandardRules) LossScore() float64 {
	return sr.Loss
}

func (sr *StandardRules) BreakTie(seats []int) []int {
	if sr.Tie == Shared || len(seats) <= 1 {
		return seats
	}
	return seats[:1]
}

// ParseTieBreak accepts the names printed by TieBreak.String.
func ParseTieBreak(name string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lowest-seat":
		return LowestSeat, nil
	case "shared":
		return Shared, nil
	}
	return LowestSeat, fmt.Errorf("%w: unknown tie-break %q", ErrInvalidRules, name)
}
