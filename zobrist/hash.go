package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

const bignum = 1<<63 - 2

// Zobrist hashes a Duchess position: which kind of piece, owned by whom,
// stands on every square, and optionally whose turn it is.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	// posTable is indexed by square, then player-1, then kind.
	posTable [position.NumIndices][piece.NumPlayers][piece.NumKinds]uint64
	turn     [piece.NumPlayers]uint64
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for p := range z.posTable[i] {
			for k := range z.posTable[i][p] {
				z.posTable[i][p][k] = frand.Uint64n(bignum) + 1
			}
		}
	}
	for p := range z.turn {
		z.turn[p] = frand.Uint64n(bignum) + 1
	}
}

// PieceKey is the key for one piece on one square. Off-board pieces
// contribute nothing.
func (z *Zobrist) PieceKey(p piece.Player, k piece.Kind, sq position.Index) uint64 {
	if sq == position.OffBoard {
		return 0
	}
	return z.posTable[sq][p-1][k]
}

// TurnKey is folded into a position hash when the player to move matters.
func (z *Zobrist) TurnKey(p piece.Player) uint64 {
	return z.turn[p-1]
}

// Hash computes the key of a set of pieces from scratch.
func (z *Zobrist) Hash(pieces []piece.Piece) uint64 {
	key := uint64(0)
	for _, pc := range pieces {
		key ^= z.PieceKey(pc.Owner(), pc.Kind(), pc.Square)
	}
	return key
}

// Default is the table boards use. It is filled once per process, so
// hashes are only comparable within one run.
var Default = &Zobrist{}

func init() {
	Default.Initialize()
}

// Empty is the key of a board with no pieces on it.
func Empty() uint64 { return 0 }

func PieceKey(p piece.Player, k piece.Kind, sq position.Index) uint64 {
	return Default.PieceKey(p, k, sq)
}

func TurnKey(p piece.Player) uint64 { return Default.TurnKey(p) }

func Hash(pieces []piece.Piece) uint64 { return Default.Hash(pieces) }
