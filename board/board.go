// Package board holds the six-player Duchess board: which piece stands on
// which square, the attack and defence vectors between pieces, legal move
// generation, and applying and undoing moves.
//
// A Board is not safe for concurrent use. Callers that search in parallel
// give every worker its own Copy.
package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
	"github.com/domino14/duchess/zobrist"
)

var (
	ErrBadLayout   = errors.New("bad layout")
	ErrIllegalMove = errors.New("illegal move")
)

// Strategy selects how the vector graph is brought up to date after a
// move.
type Strategy uint8

const (
	// DeNovo throws every vector away and rescans every piece.
	DeNovo Strategy = iota
	// Cumulative rescans only the pieces whose lines of sight cross the
	// squares the move changed.
	Cumulative
)

func (s Strategy) String() string {
	switch s {
	case DeNovo:
		return "denovo"
	case Cumulative:
		return "cumulative"
	}
	return "unknown"
}

// ParseStrategy accepts the names printed by String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "denovo", "de-novo", "de_novo":
		return DeNovo, nil
	case "cumulative":
		return Cumulative, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// A Board is the main board structure. squares and pos always agree: a
// piece is on square s exactly when squares[s] names it and pos[id] == s.
type Board struct {
	squares [position.NumIndices]piece.ID
	pos     [piece.NumIDs]position.Index

	vectors vectorArena
	// lists holds, per piece, the handles of its vectors in each of the
	// four categories.
	lists [piece.NumIDs][numCategories][]handle
	// sight holds the squares each piece inspected the last time its
	// active vectors were scanned.
	sight [piece.NumIDs]squareSet

	checkmate [piece.NumPlayers]bool
	history   []historyEntry
	hash      uint64
}

// NewBoard returns a board with all 90 pieces on their starting squares.
func NewBoard() *Board {
	var l Layout
	for p := piece.Player(1); p <= piece.NumPlayers; p++ {
		for slot := 0; slot < piece.RosterSize; slot++ {
			l[p-1][slot] = piece.StartingSquare(p, slot)
		}
	}
	b, err := NewBoardFromLayout(l)
	if err != nil {
		panic(err)
	}
	return b
}

func newEmptyBoard() *Board {
	b := &Board{}
	b.hash = zobrist.Empty()
	return b
}

// setup recomputes everything derived from piece placement.
func (b *Board) setup() {
	b.initialiseVectors()
	b.updateCheckmateRecords()
}

// PieceAt returns the piece on square i, or piece.NoID.
func (b *Board) PieceAt(i position.Index) piece.ID {
	if i == position.OffBoard || int(i) >= position.NumIndices {
		panic(fmt.Sprintf("square %d looked up as a real square", i))
	}
	return b.squares[i]
}

// Square returns where a piece stands, position.OffBoard once captured.
func (b *Board) Square(id piece.ID) position.Index {
	return b.pos[id]
}

// Piece returns a snapshot of one piece.
func (b *Board) Piece(id piece.ID) piece.Piece {
	return piece.Piece{ID: id, Square: b.pos[id]}
}

// PiecesForPlayer lists the player's 15 pieces in roster order, captured
// pieces included.
func (b *Board) PiecesForPlayer(p piece.Player) []piece.Piece {
	pieces := make([]piece.Piece, piece.RosterSize)
	for slot := range pieces {
		pieces[slot] = b.Piece(piece.MakeID(p, slot))
	}
	return pieces
}

// NumPieces counts the pieces still on the board.
func (b *Board) NumPieces() int {
	n := 0
	for id := piece.ID(1); id < piece.NumIDs; id++ {
		if b.pos[id] != position.OffBoard {
			n++
		}
	}
	return n
}

// Hash is the zobrist key of the piece placement. It is kept up to date
// as pieces move.
func (b *Board) Hash() uint64 {
	return b.hash
}

// Depth is the number of applied moves not yet undone.
func (b *Board) Depth() int {
	return len(b.history)
}

// setPiecePosition moves a piece, keeping the square map, the piece's own
// square and the hash in step. The destination must be empty unless it
// is off the board. It does not touch vectors.
func (b *Board) setPiecePosition(id piece.ID, to position.Index) {
	if to != position.OffBoard && b.squares[to] != piece.NoID {
		panic(fmt.Sprintf("cannot move %v onto %v: occupied by %v", id, to, b.squares[to]))
	}
	from := b.pos[id]
	if from != position.OffBoard {
		b.squares[from] = piece.NoID
		b.hash ^= zobrist.PieceKey(id.Player(), id.Kind(), from)
	}
	if to != position.OffBoard {
		b.squares[to] = id
		b.hash ^= zobrist.PieceKey(id.Player(), id.Kind(), to)
	}
	b.pos[id] = to
}

// Copy returns a deep copy that shares nothing with b.
func (b *Board) Copy() *Board {
	c := &Board{
		squares:   b.squares,
		pos:       b.pos,
		sight:     b.sight,
		checkmate: b.checkmate,
		hash:      b.hash,
		vectors:   b.vectors.copy(),
		history:   append([]historyEntry(nil), b.history...),
	}
	for id := range b.lists {
		for cat := range b.lists[id] {
			if len(b.lists[id][cat]) > 0 {
				c.lists[id][cat] = append([]handle(nil), b.lists[id][cat]...)
			}
		}
	}
	log.Trace().Int("depth", len(c.history)).Msg("copied board")
	return c
}
