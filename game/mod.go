package game

// NumSeats is fixed: four seats, two partnerships (0,2) and (1,3).
const NumSeats = 4

// NoSeat is reported as the winner while a game is still in play.
const NoSeat = -1

// StateHash identifies a full table position.
type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() int
	LegalMoves() []Move
	Play(Move) (State, error)
	Terminal() bool
	// Utility is the terminal score from seat's point of view, 0 while in play.
	Utility(seat int) float64
}

// Evaluate scores a non-terminal state from seat's perspective.
type Evaluate func(s *GameState, seat int) float64

// NextSeat returns the seat playing after seat.
func NextSeat(seat int) int {
	return (seat + 1) % NumSeats
}

// Teammate returns the partner sitting across from seat.
func Teammate(seat int) int {
	return (seat + 2) % NumSeats
}
