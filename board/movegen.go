package board

import (
	"github.com/samber/lo"

	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

// AccessibleSquares lists the squares a piece could move to, ignoring
// whether doing so leaves its own king in check. Every square appears
// once.
func (b *Board) AccessibleSquares(id piece.ID) []position.Index {
	sq := b.pos[id]
	if sq == position.OffBoard {
		return nil
	}
	owner, kind := id.Player(), id.Kind()
	var squares []position.Index
	add := func(s position.Index) {
		if !lo.Contains(squares, s) {
			squares = append(squares, s)
		}
	}

	switch kind {
	case piece.Pawn:
		for _, s := range position.Adjacent(sq) {
			if b.isEmpty(s) {
				add(s)
			}
		}
		for _, s := range position.Diagonal(sq) {
			if b.isEnemy(s, owner) {
				add(s)
			}
		}
	case piece.King:
		// Wizards step the same way, but through teleporting next to
		// themselves below.
		for _, s := range position.AdjacentAndDiagonal(sq) {
			if !b.isAlly(s, owner) {
				add(s)
			}
		}
	}
	if kind.IsKnightLike() {
		for _, s := range position.Knight(sq) {
			if !b.isAlly(s, owner) {
				add(s)
			}
		}
	}
	for _, class := range lineClasses(kind) {
		for _, r := range position.Rays(sq, class) {
			position.Walk(sq, r, func(s position.Index, _ position.Direction) bool {
				if b.isAlly(s, owner) {
					return false
				}
				add(s)
				return b.isEmpty(s)
			})
		}
	}
	if b.IsWizardAdjacent(id) {
		for _, s := range b.teleportSquares(id) {
			if !b.isAlly(s, owner) {
				add(s)
			}
		}
	}
	return squares
}

// IsWizardAdjacent reports whether a piece may teleport: it is a wizard,
// or a friendly wizard stands next to it.
func (b *Board) IsWizardAdjacent(id piece.ID) bool {
	if id.Kind() == piece.Wizard {
		return true
	}
	sq := b.pos[id]
	if sq == position.OffBoard {
		return false
	}
	for _, s := range position.AdjacentAndDiagonal(sq) {
		other := b.squares[s]
		if other != piece.NoID && other.Kind() == piece.Wizard && piece.SameTeam(other.Player(), id.Player()) {
			return true
		}
	}
	return false
}

// teleportSquares lists the squares next to every friendly wizard still
// on the board, leaving out the piece's own square.
func (b *Board) teleportSquares(id piece.ID) []position.Index {
	var squares []position.Index
	for _, p := range id.Player().Team().Players() {
		wsq := b.pos[piece.MakeID(p, piece.WizardSlot)]
		if wsq == position.OffBoard {
			continue
		}
		for _, s := range position.AdjacentAndDiagonal(wsq) {
			if b.squares[s] != id {
				squares = append(squares, s)
			}
		}
	}
	return squares
}

// PromotionOptions lists the player's captured pieces a pawn reaching the
// vortex may bring back: every captured piece other than pawns and the
// king, offering at most one bishop and one rook.
func (b *Board) PromotionOptions(p piece.Player) []piece.ID {
	var options []piece.ID
	var bishop, rook bool
	for slot, kind := range piece.RosterKinds {
		id := piece.MakeID(p, slot)
		if b.pos[id] != position.OffBoard {
			continue
		}
		switch kind {
		case piece.Pawn, piece.King:
			continue
		case piece.Bishop:
			if bishop {
				continue
			}
			bishop = true
		case piece.Rook:
			if rook {
				continue
			}
			rook = true
		}
		options = append(options, id)
	}
	return options
}

// LegalMoves lists every legal move for the player. A player with no
// legal move gets a single null move, never an empty list.
func (b *Board) LegalMoves(p piece.Player) []move.Move {
	inCheck := b.IsPlayerInCheck(p)
	var blockable []position.Index
	if inCheck {
		blockable = b.blockableSquares(p)
	}
	var moves []move.Move
	for slot := 0; slot < piece.RosterSize; slot++ {
		id := piece.MakeID(p, slot)
		if b.pos[id] == position.OffBoard {
			continue
		}
		moves = b.appendMovesForPiece(moves, id, inCheck, blockable)
	}
	if len(moves) == 0 {
		moves = append(moves, move.NullMove())
	}
	return moves
}

// legalDestinations narrows a piece's accessible squares by check and
// pins.
func (b *Board) legalDestinations(id piece.ID, inCheck bool, blockable []position.Index) []position.Index {
	dests := b.AccessibleSquares(id)
	if len(dests) == 0 {
		return nil
	}
	if inCheck && id.Kind() != piece.King {
		dests = intersect(dests, blockable)
	}
	for _, line := range b.pinLines(b.pos[id], id.Player()) {
		dests = intersect(dests, line)
	}
	return dests
}

func (b *Board) appendMovesForPiece(moves []move.Move, id piece.ID, inCheck bool,
	blockable []position.Index) []move.Move {

	from, kind := b.pos[id], id.Kind()
	for _, to := range b.legalDestinations(id, inCheck, blockable) {
		target := b.squares[to]
		if target != piece.NoID && target.Kind() == piece.King {
			continue
		}
		if kind == piece.King {
			if !b.isSquareAttacked(to, id.Player(), from) {
				moves = append(moves, move.New(from, to, target))
			}
			continue
		}
		if to == position.Vortex && kind == piece.Pawn {
			for _, promo := range b.PromotionOptions(id.Player()) {
				moves = append(moves, move.NewPromotion(from, to, target, promo))
			}
		}
		moves = append(moves, move.New(from, to, target))
	}
	return moves
}

// IsLegalMove checks one move for the player without generating the
// whole list. It agrees with LegalMoves.
func (b *Board) IsLegalMove(m move.Move, p piece.Player) bool {
	if !p.Valid() {
		return false
	}
	if m.Null {
		return b.IsPlayerInCheckmate(p) || b.LegalMoves(p)[0].Null
	}
	if !onBoard(m.From) || !onBoard(m.To) || m.From == m.To {
		return false
	}
	mover := b.squares[m.From]
	if mover == piece.NoID || mover.Player() != p {
		return false
	}
	target := b.squares[m.To]
	if m.Captured != target {
		return false
	}
	if target != piece.NoID && (piece.SameTeam(target.Player(), p) || target.Kind() == piece.King) {
		return false
	}
	if m.IsPromotion() {
		if mover.Kind() != piece.Pawn || m.To != position.Vortex ||
			!lo.Contains(b.PromotionOptions(p), m.Promotion) {
			return false
		}
	}

	inCheck := b.IsPlayerInCheck(p)
	var blockable []position.Index
	if inCheck {
		blockable = b.blockableSquares(p)
	}
	if !lo.Contains(b.legalDestinations(mover, inCheck, blockable), m.To) {
		return false
	}
	if mover.Kind() == piece.King {
		return !b.isSquareAttacked(m.To, p, m.From)
	}
	return true
}

func onBoard(i position.Index) bool {
	return i != position.OffBoard && int(i) < position.NumIndices
}
