package game

import (
	"fmt"
	"os"
	"strings"
	"time"

	"lukechampine.com/frand"

	"github.com/domino14/duchess/piece"
)

// Log is the record of one game.
type Log struct {
	ID     string
	Winner piece.Team
	Start  time.Time
	End    time.Time
	// Moves holds every move in short notation, player 1's first.
	Moves []string
}

func (l *Log) NumTurns() int { return len(l.Moves) }

func (l *Log) Duration() time.Duration { return l.End.Sub(l.Start) }

// String lays the log out as a header followed by the transcript, one
// round of six moves per line.
func (l *Log) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game ID:,%s\n", l.ID)
	fmt.Fprintf(&sb, "Winner:,%s\n", l.Winner)
	fmt.Fprintf(&sb, "Duration:,%d seconds\n", int(l.Duration().Seconds()))
	fmt.Fprintf(&sb, "Transcript (%d moves):\n", l.NumTurns())
	sb.WriteString("Player 1, Player 2, Player 3, Player 4, Player 5, Player 6\n")
	for i, m := range l.Moves {
		sb.WriteString(m)
		if i%piece.NumPlayers == piece.NumPlayers-1 || i == len(l.Moves)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// Save writes the log to path, replacing any file there.
func (l *Log) Save(path string) error {
	return os.WriteFile(path, []byte(l.String()), 0o644)
}

// NewID makes a game id from the wall clock and six random letters, so two
// games started in the same second still differ.
func NewID() string {
	var suffix [6]byte
	for i := range suffix {
		suffix[i] = byte('a' + frand.Intn(26))
	}
	return time.Now().Format("Mon_Jan_2_15-04-05_2006") + "_" + string(suffix[:])
}
