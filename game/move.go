package game

import "fmt"

// End selects where a tile is attached.
type End int8

const (
	Open End = iota // empty board
	EndA
	EndB
)

func (e End) String() string {
	switch e {
	case EndA:
		return "a"
	case EndB:
		return "b"
	}
	return "open"
}

type Move struct {
	Tile Tile
	End  End
}

var PassMove = Move{Tile: Pass, End: Open}

func (m Move) IsPass() bool {
	return m.Tile.IsPass()
}

// Same reports whether both moves place the same tile on the same end.
func (m Move) Same(o Move) bool {
	return m.End == o.End && m.Tile.Equal(o.Tile)
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%s@%s", m.Tile, m.End)
}
