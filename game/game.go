// Package game runs a six-player game of Duchess: it asks each player in
// turn for a move, applies it, and stops on a win, on the turn limit or
// when the players start repeating themselves.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
)

const (
	DefaultMaxTurns         = 660
	DefaultRepetitionWindow = 24
)

var ErrIllegalMove = errors.New("player chose an illegal move")

// Options control when a game is called off.
type Options struct {
	// MaxTurns is the last turn played; the game is a draw after it.
	MaxTurns int
	// RepetitionWindow is the number of recent moves to compare. When the
	// first half of the window equals the second half the game is drawn.
	// Zero turns the check off.
	RepetitionWindow int
	Strategy         board.Strategy
}

func DefaultOptions() Options {
	return Options{
		MaxTurns:         DefaultMaxTurns,
		RepetitionWindow: DefaultRepetitionWindow,
		Strategy:         board.Cumulative,
	}
}

// Game is one game in progress. It owns its board; players only read it.
type Game struct {
	board   *board.Board
	players [piece.NumPlayers]Player
	opts    Options

	onturn    piece.Player
	turnnum   int
	recent    []move.Move
	stalemate bool

	log Log
	// afterMove, when set, is called after every applied move. Playouts use
	// it to cross-check the vector strategies.
	afterMove func(*board.Board, move.Move) error
}

// NewGame starts a game from the usual starting position.
func NewGame(players []Player, opts Options) (*Game, error) {
	return NewGameFromBoard(board.NewBoard(), players, opts)
}

// NewGameFromBoard starts a game, with player 1 to move, from any board.
// The game takes ownership of b.
func NewGameFromBoard(b *board.Board, players []Player, opts Options) (*Game, error) {
	if len(players) != piece.NumPlayers {
		return nil, fmt.Errorf("need %d players, got %d", piece.NumPlayers, len(players))
	}
	if opts.MaxTurns < 1 {
		return nil, fmt.Errorf("max turns must be positive, got %d", opts.MaxTurns)
	}
	if opts.RepetitionWindow < 0 || opts.RepetitionWindow%2 != 0 {
		return nil, fmt.Errorf("repetition window must be even, got %d", opts.RepetitionWindow)
	}
	g := &Game{board: b, opts: opts, onturn: 1, turnnum: 1}
	copy(g.players[:], players)
	g.log.ID = NewID()
	return g, nil
}

// SetAfterMove installs a hook called after every applied move. An error
// from it stops the game.
func (g *Game) SetAfterMove(f func(*board.Board, move.Move) error) {
	g.afterMove = f
}

func (g *Game) Board() *board.Board  { return g.board }
func (g *Game) Log() *Log            { return &g.log }
func (g *Game) Turn() int            { return g.turnnum }
func (g *Game) OnTurn() piece.Player { return g.onturn }
func (g *Game) Stalemate() bool      { return g.stalemate }
func (g *Game) Options() Options     { return g.opts }
func (g *Game) Winner() piece.Team   { return g.board.Winner() }

// Playing is true until a team has won, the turn limit has passed or the
// moves have started repeating.
func (g *Game) Playing() bool {
	return !g.board.IsTerminal() && g.turnnum <= g.opts.MaxTurns && !g.stalemate
}

// PlayTurn asks the player on turn for a move and plays it.
func (g *Game) PlayTurn() (move.Move, error) {
	p := g.onturn
	m := g.players[p-1].ChooseMove(g.board, p, g.turnnum)
	if !g.board.IsLegalMove(m, p) {
		return m, fmt.Errorf("%w: player %d, turn %d: %s", ErrIllegalMove, p, g.turnnum, m.ShortString())
	}
	g.log.Moves = append(g.log.Moves, m.ShortString())
	g.board.ApplyMove(m, g.opts.Strategy)
	if g.afterMove != nil {
		if err := g.afterMove(g.board, m); err != nil {
			return m, err
		}
	}
	g.stalemate = g.recordRecent(m)

	log.Trace().Int("turn", g.turnnum).Int("player", int(p)).Str("move", m.ShortString()).Msg("played")
	g.onturn = p.Next()
	g.turnnum++
	return m, nil
}

// recordRecent keeps the last RepetitionWindow moves and reports whether
// the window holds one block of moves played twice over.
func (g *Game) recordRecent(m move.Move) bool {
	w := g.opts.RepetitionWindow
	if w == 0 {
		return false
	}
	g.recent = append(g.recent, m)
	if len(g.recent) < w {
		return false
	}
	half := w / 2
	repeated := true
	for i := 0; i < half && repeated; i++ {
		repeated = g.recent[i].Equal(g.recent[i+half])
	}
	g.recent = g.recent[1:]
	return repeated
}

// Run plays turns until the game is over or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.log.Start = time.Now()
	defer func() {
		g.log.End = time.Now()
		g.log.Winner = g.board.Winner()
	}()
	for g.Playing() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.PlayTurn(); err != nil {
			return err
		}
	}
	log.Debug().Str("id", g.log.ID).Stringer("winner", g.board.Winner()).
		Int("turns", g.turnnum-1).Bool("stalemate", g.stalemate).Msg("game-over")
	return nil
}

// Result is how the game ended for one player.
func (g *Game) Result(p piece.Player) Result {
	winner := g.board.Winner()
	switch {
	case winner == piece.None:
		return Draw
	case p.Team() == winner:
		return Win
	}
	return Lose
}
