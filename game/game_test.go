package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/testhelpers"
)

// scriptedPlayer plays its moves in order, cycling when it runs out.
type scriptedPlayer struct {
	moves []string
	next  int
}

func (s *scriptedPlayer) ChooseMove(b *board.Board, p piece.Player, turn int) move.Move {
	text := s.moves[s.next%len(s.moves)]
	s.next++
	m, err := b.ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// knightShufflers move each player's queenside knight out and back.
func knightShufflers() []Player {
	players := make([]Player, piece.NumPlayers)
	for i := range players {
		p := i + 1
		players[i] = &scriptedPlayer{moves: []string{
			fmt.Sprintf("%db2 %dc4", p, p),
			fmt.Sprintf("%dc4 %db2", p, p),
		}}
	}
	return players
}

func TestRepetitionIsDrawn(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(knightShufflers(), DefaultOptions())
	is.NoErr(err)
	is.NoErr(g.Run(context.Background()))

	is.True(g.Stalemate())
	is.Equal(g.Log().NumTurns(), DefaultRepetitionWindow)
	is.Equal(g.Turn(), DefaultRepetitionWindow+1)
	is.Equal(g.Winner(), piece.None)
	is.Equal(g.Result(1), Draw)
	is.Equal(g.Log().Moves[0], "1b2_1c4")
	is.Equal(g.Log().Moves[6], "1c4_1b2")
	is.Equal(g.Board().Layout(), board.NewBoard().Layout())
}

func TestRepetitionCheckOff(t *testing.T) {
	is := is.New(t)
	opts := DefaultOptions()
	opts.RepetitionWindow = 0
	opts.MaxTurns = 40
	g, err := NewGame(knightShufflers(), opts)
	is.NoErr(err)
	is.NoErr(g.Run(context.Background()))
	is.True(!g.Stalemate())
	is.Equal(g.Log().NumTurns(), 40)
	is.True(!g.Playing())
}

func TestMaxTurns(t *testing.T) {
	is := is.New(t)
	opts := DefaultOptions()
	opts.MaxTurns = 5
	g, err := NewGame(RandomPlayers(testhelpers.RNG(7)), opts)
	is.NoErr(err)
	is.NoErr(g.Run(context.Background()))
	is.Equal(g.Log().NumTurns(), 5)
	is.Equal(g.OnTurn(), piece.Player(6))
	is.Equal(g.Result(2), Draw)
}

func TestGameOverBeforeItStarts(t *testing.T) {
	is := is.New(t)
	b, err := board.LoadSample("oddsmated")
	is.NoErr(err)
	g, err := NewGameFromBoard(b, RandomPlayers(nil), DefaultOptions())
	is.NoErr(err)
	is.True(!g.Playing())
	is.NoErr(g.Run(context.Background()))

	is.Equal(g.Log().NumTurns(), 0)
	is.Equal(g.Log().Winner, piece.Evens)
	for _, p := range piece.Odds.Players() {
		is.Equal(g.Result(p), Lose)
	}
	for _, p := range piece.Evens.Players() {
		is.Equal(g.Result(p), Win)
	}
}

func TestIllegalMoveStopsGame(t *testing.T) {
	is := is.New(t)
	players := RandomPlayers(nil)
	players[0] = &scriptedPlayer{moves: []string{"1a3 1a5"}}
	g, err := NewGame(players, DefaultOptions())
	is.NoErr(err)
	err = g.Run(context.Background())
	is.True(errors.Is(err, ErrIllegalMove))
	is.Equal(g.Log().NumTurns(), 0)
	is.Equal(g.Board().Depth(), 0)
}

func TestAfterMoveErrorStopsGame(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(knightShufflers(), DefaultOptions())
	is.NoErr(err)
	stop := errors.New("stop")
	calls := 0
	g.SetAfterMove(func(b *board.Board, m move.Move) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	is.Equal(g.Run(context.Background()), stop)
	is.Equal(g.Board().Depth(), 3)
}

func TestRunHonoursContext(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := NewGame(RandomPlayers(nil), DefaultOptions())
	is.NoErr(err)
	is.True(errors.Is(g.Run(ctx), context.Canceled))
	is.Equal(g.Log().NumTurns(), 0)
}

func TestRandomGameFinishes(t *testing.T) {
	is := is.New(t)
	opts := DefaultOptions()
	opts.MaxTurns = 120
	g, err := NewGame(RandomPlayers(testhelpers.RNG(3)), opts)
	is.NoErr(err)
	g.SetAfterMove(func(b *board.Board, m move.Move) error {
		return b.CheckConsistency()
	})
	is.NoErr(g.Run(context.Background()))
	is.True(!g.Playing())
	is.Equal(g.Log().NumTurns(), g.Turn()-1)
	is.Equal(g.Board().Depth(), g.Log().NumTurns())
	if g.Winner() == piece.None {
		is.True(g.Stalemate() || g.Turn() > opts.MaxTurns)
	}
}

func TestNewGameValidates(t *testing.T) {
	_, err := NewGame(RandomPlayers(nil)[:5], DefaultOptions())
	assert.Error(t, err)

	opts := DefaultOptions()
	opts.MaxTurns = 0
	_, err = NewGame(RandomPlayers(nil), opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.RepetitionWindow = 7
	_, err = NewGame(RandomPlayers(nil), opts)
	assert.Error(t, err)
}

func TestLogString(t *testing.T) {
	is := is.New(t)
	l := Log{ID: "g1", Winner: piece.Odds}
	for i := 0; i < 7; i++ {
		l.Moves = append(l.Moves, fmt.Sprintf("m%d", i))
	}
	lines := strings.Split(strings.TrimSuffix(l.String(), "\n"), "\n")
	is.Equal(lines, []string{
		"Game ID:,g1",
		"Winner:,ODDS",
		"Duration:,0 seconds",
		"Transcript (7 moves):",
		"Player 1, Player 2, Player 3, Player 4, Player 5, Player 6",
		"m0, m1, m2, m3, m4, m5",
		"m6",
	})
}

func TestLogSave(t *testing.T) {
	is := is.New(t)
	l := Log{ID: NewID(), Moves: []string{"1a3_1a4"}}
	path := t.TempDir() + "/game.txt"
	is.NoErr(l.Save(path))
	is.Equal(strings.Count(l.ID, "_"), 4)
}

func TestResultStrings(t *testing.T) {
	is := is.New(t)
	is.Equal(Win.String(), "WIN")
	is.Equal(Lose.String(), "LOSE")
	is.Equal(Draw.String(), "DRAW")
}
