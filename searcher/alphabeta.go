package searcher

import (
	"dominoes/experiments/metrics"
	"dominoes/game"
)

// AlphaBeta searches the full game tree below s for the seat to move and
// returns its best move with the exact value. Nodes where that seat acts
// maximise; every other seat minimises.
//
// There is no depth limit: only use it on fully observed or reduced instances.
//
//	function alphabeta(node, α, β)
//	    if node is terminal: return utility(node)
//	    if maximizing: for child: v = max(v, alphabeta(child, α, β)); if v ≥ β break; α = max(α, v)
//	    else:          for child: v = min(v, alphabeta(child, α, β)); if v ≤ α break; β = min(β, v)
func AlphaBeta(s game.State, collector metrics.Collector) (game.Move, float64) {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	seat := s.Player()
	best := negInf
	var bestMove game.Move
	for i, m := range s.LegalMoves() {
		v := alphaBetaValue(mustPlay(s, m), seat, best, posInf, collector)
		if i == 0 || v > best {
			best, bestMove = v, m
		}
	}
	return bestMove, best
}

func alphaBetaValue(s game.State, seat int, alpha, beta float64, collector metrics.Collector) float64 {
	collector.AddNode()
	if s.Terminal() {
		collector.AddTerminal()
		return s.Utility(seat)
	}

	if s.Player() == seat {
		v := negInf
		for _, m := range s.LegalMoves() {
			v = max(v, alphaBetaValue(mustPlay(s, m), seat, alpha, beta, collector))
			if v >= beta {
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}

	v := posInf
	for _, m := range s.LegalMoves() {
		v = min(v, alphaBetaValue(mustPlay(s, m), seat, alpha, beta, collector))
		if v <= alpha {
			return v
		}
		beta = min(beta, v)
	}
	return v
}

// Minimax is AlphaBeta without pruning.
func Minimax(s game.State, collector metrics.Collector) (game.Move, float64) {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	seat := s.Player()
	best := negInf
	var bestMove game.Move
	for i, m := range s.LegalMoves() {
		v := minimaxValue(mustPlay(s, m), seat, collector)
		if i == 0 || v > best {
			best, bestMove = v, m
		}
	}
	return bestMove, best
}

func minimaxValue(s game.State, seat int, collector metrics.Collector) float64 {
	collector.AddNode()
	if s.Terminal() {
		collector.AddTerminal()
		return s.Utility(seat)
	}

	maximizing := s.Player() == seat
	v := posInf
	if maximizing {
		v = negInf
	}
	for _, m := range s.LegalMoves() {
		child := minimaxValue(mustPlay(s, m), seat, collector)
		if maximizing {
			v = max(v, child)
		} else {
			v = min(v, child)
		}
	}
	return v
}
