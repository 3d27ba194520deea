package board

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

func kingOf(p piece.Player) piece.ID {
	return piece.MakeID(p, piece.KingSlot)
}

// LinesAttackingSquare returns every line along which some piece, friend
// or foe of whoever stands there, reaches square sq. Each line starts on
// the reaching piece's square and ends on sq.
func (b *Board) LinesAttackingSquare(sq position.Index) [][]position.Index {
	return b.linesAttackingSquare(sq, position.OffBoard)
}

// linesAttackingSquare treats the square ignore as empty, which lets a
// king ask whether a square would be safe once it has left its own.
func (b *Board) linesAttackingSquare(sq, ignore position.Index) [][]position.Index {
	if sq == position.OffBoard {
		return nil
	}
	var lines [][]position.Index
	contacts := func(from []position.Index, reaches func(piece.Kind) bool) {
		for _, s := range from {
			if s == ignore || b.isEmpty(s) {
				continue
			}
			if reaches(b.squares[s].Kind()) {
				lines = append(lines, []position.Index{s, sq})
			}
		}
	}
	contacts(position.Knight(sq), piece.Kind.IsKnightLike)
	contacts(position.Diagonal(sq), func(k piece.Kind) bool {
		return k == piece.Pawn || k == piece.King || k == piece.Wizard
	})
	contacts(position.Adjacent(sq), func(k piece.Kind) bool {
		return k == piece.King || k == piece.Wizard
	})
	for class := position.StraightLines; class <= position.DiagonalLines; class++ {
		for _, r := range position.Rays(sq, class) {
			h := b.firstOnLine(sq, r, ignore, nil)
			if h.hit == piece.NoID || !h.hit.Kind().CanTravel(h.dir) {
				continue
			}
			line := make([]position.Index, 0, len(h.path)+1)
			for i := len(h.path) - 1; i >= 0; i-- {
				line = append(line, h.path[i])
			}
			lines = append(lines, append(line, sq))
		}
	}
	return lines
}

// isSquareAttacked reports whether an enemy of owner reaches sq, with the
// square ignore treated as empty.
func (b *Board) isSquareAttacked(sq position.Index, owner piece.Player, ignore position.Index) bool {
	for _, line := range b.linesAttackingSquare(sq, ignore) {
		if b.isEnemy(line[0], owner) {
			return true
		}
	}
	return false
}

// IsPlayerInCheck is true when an enemy vector ends on the player's king.
// A king that is not on the board is never in check.
func (b *Board) IsPlayerInCheck(p piece.Player) bool {
	king := kingOf(p)
	return b.pos[king] != position.OffBoard && len(b.lists[king][passiveAttacked]) > 0
}

// blockableSquares intersects the paths of every vector attacking the
// player's king. A piece other than the king must move onto one of them
// to answer a check.
func (b *Board) blockableSquares(p piece.Player) []position.Index {
	attacks := b.vectorsIn(kingOf(p), passiveAttacked)
	if len(attacks) == 0 {
		return nil
	}
	common := attacks[0].Path
	for _, v := range attacks[1:] {
		common = intersect(common, v.Path)
	}
	return common
}

// pinLines returns, for the piece standing on through, every line from
// its own king past through to an enemy slider that would see the king
// if through were vacated. An unpinned piece gets nil.
func (b *Board) pinLines(through position.Index, owner piece.Player) [][]position.Index {
	king := b.pos[kingOf(owner)]
	if king == position.OffBoard || king == through {
		return nil
	}
	var lines [][]position.Index
	for class := position.StraightLines; class <= position.DiagonalLines; class++ {
		for _, r := range position.Rays(king, class) {
			h := b.firstOnLine(king, r, through, nil)
			if h.hit == piece.NoID || !lo.Contains(h.path, through) {
				continue
			}
			if piece.SameTeam(h.hit.Player(), owner) || !h.hit.Kind().CanTravel(h.dir) {
				continue
			}
			lines = append(lines, append([]position.Index{king}, h.path...))
		}
	}
	return lines
}

// IsPlayerInCheckmate reports the flag computed after the last move.
func (b *Board) IsPlayerInCheckmate(p piece.Player) bool {
	return b.checkmate[p-1]
}

// Winner is the team whose three opponents are all checkmated.
func (b *Board) Winner() piece.Team {
	switch {
	case lo.EveryBy(piece.Odds.Players(), b.IsPlayerInCheckmate):
		return piece.Evens
	case lo.EveryBy(piece.Evens.Players(), b.IsPlayerInCheckmate):
		return piece.Odds
	}
	return piece.None
}

// IsTerminal is true once a team has won.
func (b *Board) IsTerminal() bool {
	return b.Winner() != piece.None
}

// updateCheckmateRecords marks a player checkmated when they are in check
// and have nothing but the null move.
func (b *Board) updateCheckmateRecords() {
	for p := piece.Player(1); p <= piece.NumPlayers; p++ {
		mated := false
		if b.IsPlayerInCheck(p) {
			moves := b.LegalMoves(p)
			mated = len(moves) == 1 && moves[0].Null
		}
		if mated != b.checkmate[p-1] {
			log.Debug().Int("player", int(p)).Bool("checkmate", mated).Msg("checkmate-flag")
		}
		b.checkmate[p-1] = mated
	}
}

func intersect(a, keep []position.Index) []position.Index {
	return lo.Filter(a, func(s position.Index, _ int) bool { return lo.Contains(keep, s) })
}
