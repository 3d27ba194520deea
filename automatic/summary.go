package automatic

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/stats"
)

// Confidence is the confidence level, in percent, of the win-rate interval.
const Confidence = 95

const resultHeader = "gameID,game,winner,turns,stalemate\n"

type gameResult struct {
	ID        uint64
	Game      int
	Winner    piece.Team
	Turns     int
	Stalemate bool
}

func (r gameResult) line() string {
	return fmt.Sprintf("%016x,%d,%s,%d,%t\n", r.ID, r.Game, r.Winner, r.Turns, r.Stalemate)
}

// Interval is a win rate with its confidence bounds.
type Interval struct {
	Rate float64 `yaml:"rate"`
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// Summary totals a batch of games.
type Summary struct {
	Games      int     `yaml:"games"`
	OddsWins   int     `yaml:"odds_wins"`
	EvensWins  int     `yaml:"evens_wins"`
	Draws      int     `yaml:"draws"`
	Stalemates int     `yaml:"stalemates"`
	MeanTurns  float64 `yaml:"mean_turns"`
	StdevTurns float64 `yaml:"stdev_turns"`
	// StderrTurns is the standard error of MeanTurns.
	StderrTurns float64 `yaml:"stderr_turns"`
	// OddsWinRate counts draws as games not won.
	OddsWinRate Interval `yaml:"odds_win_rate"`

	lengths []float64
}

// WriteYAML writes s as a YAML document.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// LengthHistogram buckets the game lengths of the batch.
func (s Summary) LengthHistogram(bins int) histogram.Histogram {
	return histogram.Hist(bins, s.lengths)
}

// WriteHistogram draws the game length histogram as text. A batch whose
// games all lasted the same number of turns gets a single line instead.
func (s Summary) WriteHistogram(w io.Writer, bins int) error {
	if len(s.lengths) == 0 {
		return nil
	}
	if lo.Min(s.lengths) == lo.Max(s.lengths) {
		_, err := fmt.Fprintf(w, "all %d games lasted %v turns\n", len(s.lengths), s.lengths[0])
		return err
	}
	return histogram.Fprint(w, s.LengthHistogram(bins), histogram.Linear(40))
}

// tally keeps a running statistic for progress logging and the lengths
// themselves for the final summary.
type tally struct {
	summary Summary
	turns   stats.Statistic
	lengths []float64
}

func (t *tally) add(r gameResult) {
	t.summary.Games++
	switch r.Winner {
	case piece.Odds:
		t.summary.OddsWins++
	case piece.Evens:
		t.summary.EvensWins++
	default:
		t.summary.Draws++
	}
	if r.Stalemate {
		t.summary.Stalemates++
	}
	t.turns.Push(float64(r.Turns))
	t.lengths = append(t.lengths, float64(r.Turns))
}

// merge folds another tally into t.
func (t *tally) merge(o *tally) {
	t.summary.Games += o.summary.Games
	t.summary.OddsWins += o.summary.OddsWins
	t.summary.EvensWins += o.summary.EvensWins
	t.summary.Draws += o.summary.Draws
	t.summary.Stalemates += o.summary.Stalemates
	t.turns.Merge(o.turns)
	t.lengths = append(t.lengths, o.lengths...)
}

func (t *tally) result() Summary {
	s := t.summary
	s.MeanTurns, s.StdevTurns = stats.MeanStdDev(t.lengths)
	s.StderrTurns = t.turns.StandardError()
	s.lengths = t.lengths
	wr := stats.WinRate{Wins: s.OddsWins, Games: s.Games}
	lo, hi := wr.Interval(Confidence)
	s.OddsWinRate = Interval{Rate: wr.Rate(), Low: lo, High: hi}
	return s
}
