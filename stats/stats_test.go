package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		lengths []int
		mean    float64
		stdev   float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		samples := make([]float64, len(c.lengths))
		for i, l := range c.lengths {
			s.Push(float64(l))
			samples[i] = float64(l)
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))

		mean, stdev := MeanStdDev(samples)
		is.True(FuzzyEqual(mean, c.mean))
		is.True(FuzzyEqual(stdev, c.stdev))
	}
}

func TestMerge(t *testing.T) {
	is := is.New(t)
	all, a, b := &Statistic{}, &Statistic{}, &Statistic{}
	for i, v := range []float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19} {
		all.Push(v)
		if i < 4 {
			a.Push(v)
		} else {
			b.Push(v)
		}
	}
	a.Merge(*b)
	is.Equal(a.Iterations(), 10)
	is.True(FuzzyEqual(a.Mean(), all.Mean()))
	is.True(FuzzyEqual(a.Variance(), all.Variance()))

	empty := &Statistic{}
	empty.Merge(*all)
	is.True(FuzzyEqual(empty.Mean(), all.Mean()))
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(99), 2.5758293035489004))
}

func TestWinRateInterval(t *testing.T) {
	is := is.New(t)
	lo, hi := WinRate{Wins: 50, Games: 100}.Interval(95)
	is.True(lo < 0.5 && hi > 0.5)
	is.True(FuzzyEqual(lo+hi, 1))

	lo, hi = WinRate{Wins: 0, Games: 20}.Interval(95)
	is.True(lo < Epsilon)
	is.True(hi > 0 && hi < 0.5)

	lo, hi = WinRate{}.Interval(95)
	is.Equal(lo, 0.0)
	is.Equal(hi, 1.0)
}
