package game

import "errors"

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrDealInvariant = errors.New("deal invariant violated")
	ErrInvalidRules  = errors.New("invalid rules")
)
