package searcher

import (
	"dominoes/experiments/metrics"
	"dominoes/game"
)

// node carries the fixed parameters of one search. It is passed by value and
// never changes during the recursion.
type node struct {
	perspective   int
	limit         int
	evaluate      game.Evaluate
	normalization Normalization
	metrics       metrics.Collector
}

func (n node) leaf(s *game.GameState) (float64, bool) {
	if s.Terminal() {
		n.metrics.AddTerminal()
		return s.Utility(n.perspective), true
	}
	return 0, false
}

func (n node) horizon(s *game.GameState) float64 {
	n.metrics.AddEvaluation()
	return n.evaluate(s, n.perspective)
}

// maxValue is the perspective seat choosing among its own moves.
func maxValue(s *game.GameState, depth int, n node) float64 {
	n.metrics.AddNode()
	if v, ok := n.leaf(s); ok {
		return v
	}
	if depth >= n.limit {
		return n.horizon(s)
	}
	v := negInf
	for _, m := range s.Moves {
		v = max(v, chanceValue(s, m, depth, n))
	}
	return v
}

// minValue is any other seat's turn, assumed to work against the perspective seat.
func minValue(s *game.GameState, depth int, n node) float64 {
	n.metrics.AddNode()
	if v, ok := n.leaf(s); ok {
		return v
	}
	if depth >= n.limit {
		return n.horizon(s)
	}
	v := posInf
	for _, m := range s.Moves {
		v = min(v, chanceValue(s, m, depth, n))
	}
	return v
}

// chanceValue plays m from s and averages the branches of the next turn.
func chanceValue(s *game.GameState, m game.Move, depth int, n node) float64 {
	n.metrics.AddChanceNode()
	res := mustPlay(s, m).(*game.GameState)
	if v, ok := n.leaf(res); ok {
		return v
	}
	if depth >= n.limit {
		return n.horizon(res)
	}

	branches := Partition(res)
	sum := 0.0
	for _, c := range branches {
		p := c.Probability()
		if p <= 0 {
			continue
		}
		sub := Outcome(res, c)
		var v float64
		if sub.ToMove == n.perspective {
			v = maxValue(sub, depth+1, n)
		} else {
			v = minValue(sub, depth+1, n)
		}
		sum += v * p
	}
	if n.normalization == ByBranchCount {
		return sum / float64(len(branches))
	}
	return sum
}
