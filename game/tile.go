package game

import "fmt"

// Orientation records which pip of a placed tile is left exposed on the board.
// The other pip touches its neighbour.
type Orientation int8

const (
	Unset Orientation = iota
	LowOut
	HighOut
)

// Tile is an immutable domino. Low <= High for tiles built with NewTile.
type Tile struct {
	Low    int
	High   int
	Orient Orientation
}

// Pass is the sentinel tile carried by a pass move.
var Pass = Tile{Low: -1, High: -1}

func NewTile(a, b int) Tile {
	if a > b {
		a, b = b, a
	}
	return Tile{Low: a, High: b}
}

// Equal compares pip pairs in either order and ignores orientation.
func (t Tile) Equal(o Tile) bool {
	return (t.Low == o.Low && t.High == o.High) || (t.Low == o.High && t.High == o.Low)
}

func (t Tile) IsPass() bool {
	return t.Low == -1 && t.High == -1
}

func (t Tile) IsDouble() bool {
	return t.Low == t.High
}

func (t Tile) Pips() int {
	return t.Low + t.High
}

func (t Tile) Has(pip int) bool {
	return t.Low == pip || t.High == pip
}

// Pair returns the pip pair with the smaller value first.
func (t Tile) Pair() [2]int {
	if t.Low > t.High {
		return [2]int{t.High, t.Low}
	}
	return [2]int{t.Low, t.High}
}

// Exposed returns the pip left open by the tile's orientation, or -1 if unset.
func (t Tile) Exposed() int {
	switch t.Orient {
	case LowOut:
		return t.Low
	case HighOut:
		return t.High
	}
	return -1
}

// Exposing returns a copy oriented so that pip is the exposed side.
func (t Tile) Exposing(pip int) Tile {
	out := Tile{Low: t.Low, High: t.High}
	if t.Low == pip {
		out.Orient = LowOut
	} else {
		out.Orient = HighOut
	}
	return out
}

// Unoriented drops the orientation flag.
func (t Tile) Unoriented() Tile {
	return Tile{Low: t.Low, High: t.High}
}

func (t Tile) String() string {
	if t.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%d|%d", t.Low, t.High)
}

// FullSet returns every distinct tile with pips in [0, maxPip], smallest pairs first.
func FullSet(maxPip int) []Tile {
	tiles := make([]Tile, 0, (maxPip+1)*(maxPip+2)/2)
	for low := 0; low <= maxPip; low++ {
		for high := low; high <= maxPip; high++ {
			tiles = append(tiles, NewTile(low, high))
		}
	}
	return tiles
}

func PipSum(tiles []Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Pips()
	}
	return sum
}
