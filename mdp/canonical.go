package mdp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dominoes/game"

	"github.com/cespare/xxhash"
)

// CanonicalKey is an order-independent picture of a state: sorted pip pairs
// of both tile groups and the exposed pips of the open ends, larger first.
// It carries no orientation or seat identity. Keys are comparable values.
type CanonicalKey struct {
	Own    string
	Others string
	Ends   [2]int8 // -1, -1 on an empty board
}

// CanonicalMove is a move stripped of orientation. NoAction follows a terminal state.
type CanonicalMove struct {
	Low   int8
	High  int8
	End   game.End
	Final bool
}

var NoAction = CanonicalMove{Low: -1, High: -1, Final: true}

func Canonicalize(s *game.GameState) CanonicalKey {
	a, b := s.Board.Ends()
	if a < b {
		a, b = b, a
	}
	return CanonicalKey{
		Own:    encodePairs(s.Own),
		Others: encodePairs(s.Others),
		Ends:   [2]int8{int8(a), int8(b)},
	}
}

func CanonicalizeMove(m game.Move) CanonicalMove {
	p := m.Tile.Pair()
	return CanonicalMove{Low: int8(p[0]), High: int8(p[1]), End: m.End}
}

// SortPairs orders pip pairs by sum, then low pip, then high pip.
func SortPairs(tiles []game.Tile) [][2]int {
	pairs := make([][2]int, len(tiles))
	for i, t := range tiles {
		pairs[i] = t.Pair()
	}
	slices.SortFunc(pairs, func(x, y [2]int) int {
		if d := (x[0] + x[1]) - (y[0] + y[1]); d != 0 {
			return d
		}
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	return pairs
}

func encodePairs(tiles []game.Tile) string {
	var sb strings.Builder
	for i, p := range SortPairs(tiles) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p[0]))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(p[1]))
	}
	return sb.String()
}

// String renders the key as "own|others|a,b". ParseKey reverses it.
func (k CanonicalKey) String() string {
	return fmt.Sprintf("%s|%s|%d,%d", k.Own, k.Others, k.Ends[0], k.Ends[1])
}

// Hash is the xxhash of String, stored next to the key to detect damaged rows.
func (k CanonicalKey) Hash() uint64 {
	return xxhash.Sum64String(k.String())
}

func ParseKey(s string) (CanonicalKey, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return CanonicalKey{}, fmt.Errorf("malformed key %q", s)
	}
	var a, b int
	if _, err := fmt.Sscanf(parts[2], "%d,%d", &a, &b); err != nil {
		return CanonicalKey{}, fmt.Errorf("malformed key ends %q: %w", parts[2], err)
	}
	return CanonicalKey{Own: parts[0], Others: parts[1], Ends: [2]int8{int8(a), int8(b)}}, nil
}

func (m CanonicalMove) String() string {
	if m.Final {
		return "none"
	}
	return fmt.Sprintf("%d-%d@%d", m.Low, m.High, m.End)
}

func ParseMove(s string) (CanonicalMove, error) {
	if s == "none" {
		return NoAction, nil
	}
	var low, high, end int
	if _, err := fmt.Sscanf(s, "%d-%d@%d", &low, &high, &end); err != nil {
		return CanonicalMove{}, fmt.Errorf("malformed move %q: %w", s, err)
	}
	return CanonicalMove{Low: int8(low), High: int8(high), End: game.End(end)}, nil
}
