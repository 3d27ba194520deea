package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"

	"github.com/domino14/duchess/piece"
)

// AnalyzeLogFile totals the per-game lines RunPlayouts wrote to a file.
func AnalyzeLogFile(path string) (Summary, error) {
	return AnalyzeLogFiles(path)
}

// AnalyzeLogFiles totals several result logs as one batch.
func AnalyzeLogFiles(paths ...string) (Summary, error) {
	var all tally
	for _, path := range paths {
		t, err := analyzeFile(path)
		if err != nil {
			return Summary{}, fmt.Errorf("%s: %w", path, err)
		}
		all.merge(t)
	}
	return all.result(), nil
}

func analyzeFile(path string) (*tally, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return analyzeLog(f)
}

func analyzeLog(in io.Reader) (*tally, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = 5
	t := &tally{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == "gameID" {
			continue
		}
		res, err := parseResult(record)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t.add(res)
	}
	return t, nil
}

func parseResult(record []string) (gameResult, error) {
	var res gameResult
	var err error
	if res.ID, err = strconv.ParseUint(record[0], 16, 64); err != nil {
		return res, err
	}
	if res.Game, err = strconv.Atoi(record[1]); err != nil {
		return res, err
	}
	winner, ok := lo.Find([]piece.Team{piece.None, piece.Odds, piece.Evens}, func(t piece.Team) bool {
		return t.String() == record[2]
	})
	if !ok {
		return res, fmt.Errorf("unknown winner %q", record[2])
	}
	res.Winner = winner
	if res.Turns, err = strconv.Atoi(record[3]); err != nil {
		return res, err
	}
	res.Stalemate, err = strconv.ParseBool(record[4])
	return res, err
}
