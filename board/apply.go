package board

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

// historyEntry is what UndoMove needs to put a move back.
type historyEntry struct {
	m move.Move
	// mover is the piece that stood on the from square. For a promotion it
	// is the pawn, which is off the board until the move is undone.
	mover    piece.ID
	captured piece.ID
}

// ApplyMove plays a move and brings the vector graph and checkmate flags
// up to date with the given strategy. The move must match the board: its
// from square holds the mover and its captured piece stands on its to
// square. Legality is the caller's business; see IsLegalMove.
//
// Every ApplyMove must be paired with an UndoMove of the same move, in
// last in, first out order.
func (b *Board) ApplyMove(m move.Move, s Strategy) {
	if m.Null {
		m = move.NullMove()
	}
	entry := historyEntry{m: m}
	if !m.Null {
		mover := b.squares[m.From]
		if mover == piece.NoID {
			panic(fmt.Sprintf("apply %v: no piece on %v", m, m.From))
		}
		captured := b.squares[m.To]
		if captured != m.Captured {
			panic(fmt.Sprintf("apply %v: %v stands on %v", m, captured, m.To))
		}
		entry.mover, entry.captured = mover, captured

		var stale []piece.ID
		if s == Cumulative {
			stale = b.piecesSeeing(m.From, m.To)
		}
		if captured != piece.NoID {
			b.setPiecePosition(captured, position.OffBoard)
		}
		active := mover
		if m.IsPromotion() {
			if b.pos[m.Promotion] != position.OffBoard || m.Promotion.Player() != mover.Player() {
				panic(fmt.Sprintf("apply %v: cannot promote to %v", m, m.Promotion))
			}
			b.setPiecePosition(mover, position.OffBoard)
			active = m.Promotion
		}
		b.setPiecePosition(active, m.To)
		b.updateVectors(s, append(stale, mover, captured, m.Promotion))
	}
	b.history = append(b.history, entry)
	log.Trace().Stringer("move", m).Stringer("strategy", s).Msg("applied")
	b.updateCheckmateRecords()
}

// UndoMove takes back the most recently applied move, which must be m. The
// exact pieces return to their exact squares, so a promoted pawn comes
// back as the same pawn.
func (b *Board) UndoMove(m move.Move, s Strategy) {
	n := len(b.history)
	if n == 0 || !b.history[n-1].m.Equal(m) {
		panic(fmt.Sprintf("undo %v: not the last applied move", m))
	}
	entry := b.history[n-1]
	m = entry.m
	b.history = b.history[:n-1]
	if !m.Null {
		var stale []piece.ID
		if s == Cumulative {
			stale = b.piecesSeeing(m.From, m.To)
		}
		if m.IsPromotion() {
			b.setPiecePosition(m.Promotion, position.OffBoard)
		}
		b.setPiecePosition(entry.mover, m.From)
		if entry.captured != piece.NoID {
			b.setPiecePosition(entry.captured, m.To)
		}
		b.updateVectors(s, append(stale, entry.mover, entry.captured, m.Promotion))
	}
	log.Trace().Stringer("move", m).Stringer("strategy", s).Msg("undone")
	b.updateCheckmateRecords()
}

func (b *Board) updateVectors(s Strategy, stale []piece.ID) {
	switch s {
	case DeNovo:
		b.initialiseVectors()
	case Cumulative:
		b.refresh(stale)
	default:
		panic(fmt.Sprintf("unknown strategy %d", s))
	}
}

// RecomputeVectors rebuilds the vector graph from scratch and refreshes
// the checkmate flags.
func (b *Board) RecomputeVectors() {
	b.setup()
}

// LastMove returns the most recently applied move still on the stack.
func (b *Board) LastMove() (move.Move, bool) {
	if len(b.history) == 0 {
		return move.Move{}, false
	}
	return b.history[len(b.history)-1].m, true
}
