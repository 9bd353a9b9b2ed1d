package game

type TieBreak int

const (
	// LowestSeat awards a tied block to the tied seat with the smallest index.
	LowestSeat TieBreak = iota
	// Shared awards a tied block to every tied seat.
	Shared
)

func (tb TieBreak) String() string {
	if tb == Shared {
		return "shared"
	}
	return "lowest-seat"
}

type Rules interface {
	MaxPip() int
	HandSize() int
	WinScore() float64
	LossScore() float64
	// BreakTie picks the winners among seats sharing the minimal pip sum.
	// seats is sorted ascending and never empty.
	BreakTie(seats []int) []int
}
