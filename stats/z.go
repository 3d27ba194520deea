package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

// WinRate is how many of a number of games one team won.
type WinRate struct {
	Wins  int
	Games int
}

func (w WinRate) Rate() float64 {
	if w.Games == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Games)
}

// Interval is the Wilson score interval around the win rate at the given
// confidence, in percent. It stays inside [0, 1] even for a team that
// never or always wins.
func (w WinRate) Interval(confidence float64) (lo, hi float64) {
	if w.Games == 0 {
		return 0, 1
	}
	z := ZVal(confidence)
	n := float64(w.Games)
	p := w.Rate()
	denom := 1 + z*z/n
	centre := (p + z*z/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return math.Max(0, centre-half), math.Min(1, centre+half)
}
