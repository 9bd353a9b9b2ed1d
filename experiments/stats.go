package experiments

import (
	"fmt"
	"math"
	"strings"

	"dominoes/experiments/metrics"
	"dominoes/game"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Confidence of the win-rate intervals in a Summary.
const Confidence = 0.95

// Interval is a win rate with its normal-approximation confidence bounds.
type Interval struct {
	Rate float64 `yaml:"rate"`
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

type Summary struct {
	Games      int                     `yaml:"games"`
	Unfinished int                     `yaml:"unfinished"` // stopped at the turn limit
	Wins       [game.NumSeats]int      `yaml:"wins"`
	WinRates   [game.NumSeats]Interval `yaml:"winRates"`
	MeanMoves  float64                 `yaml:"meanMoves"`
	StdMoves   float64                 `yaml:"stdMoves"`
}

// WinRate estimates p = wins/games with a two-sided interval at the given
// confidence, clamped to [0, 1].
func WinRate(wins, games int, confidence float64) Interval {
	if games <= 0 {
		return Interval{}
	}
	p := float64(wins) / float64(games)
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	margin := z * math.Sqrt(p*(1-p)/float64(games))
	return Interval{Rate: p, Low: math.Max(0, p-margin), High: math.Min(1, p+margin)}
}

func Summarize(records []metrics.GameRecord) Summary {
	s := Summary{Games: len(records), Wins: wins(records)}
	for seat, w := range s.Wins {
		s.WinRates[seat] = WinRate(w, s.Games, Confidence)
	}

	lengths := make([]float64, 0, len(records))
	for _, r := range records {
		lengths = append(lengths, float64(r.TotalMoves))
		if len(r.Winners) == 0 {
			s.Unfinished++
		}
	}
	if len(lengths) > 1 {
		s.MeanMoves, s.StdMoves = stat.MeanStdDev(lengths, nil)
	} else if len(lengths) == 1 {
		s.MeanMoves = lengths[0]
	}
	return s
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d games, %.1f±%.1f moves", s.Games, s.MeanMoves, s.StdMoves)
	for seat, r := range s.WinRates {
		fmt.Fprintf(&b, ", seat %d %.2f [%.2f, %.2f]", seat, r.Rate, r.Low, r.High)
	}
	if s.Unfinished > 0 {
		fmt.Fprintf(&b, ", %d unfinished", s.Unfinished)
	}
	return b.String()
}
