package game

import (
	"lukechampine.com/frand"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
)

// Player picks moves. It must return one of b.LegalMoves(p), which is a
// lone null move when p cannot move, and must not modify b.
type Player interface {
	ChooseMove(b *board.Board, p piece.Player, turn int) move.Move
}

// Result is a game's outcome from one player's side.
type Result int

const (
	Draw Result = iota
	Win
	Lose
)

func (r Result) String() string {
	switch r {
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	}
	return "DRAW"
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	rng *frand.RNG
}

// NewRandomPlayer uses rng, or the process-wide generator when rng is nil.
func NewRandomPlayer(rng *frand.RNG) *RandomPlayer {
	return &RandomPlayer{rng: rng}
}

func (r *RandomPlayer) ChooseMove(b *board.Board, p piece.Player, turn int) move.Move {
	moves := b.LegalMoves(p)
	if r.rng == nil {
		return moves[frand.Intn(len(moves))]
	}
	return moves[r.rng.Intn(len(moves))]
}

// RandomPlayers returns six random players. With a non-nil rng they share
// it, which keeps a seeded game reproducible.
func RandomPlayers(rng *frand.RNG) []Player {
	players := make([]Player, piece.NumPlayers)
	for i := range players {
		players[i] = NewRandomPlayer(rng)
	}
	return players
}
