package move

import (
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

const (
	// layout of a packed move key
	// 32       24       16       8
	// xxxxxxxx xxxxxxxx xxxxxxxx xxxxxxxx
	// nppppppp cccccccc tttttttt ffffffff
	// n - null flag
	// p - promotion piece id (7 bits, 90 max)
	// c - captured piece id
	// t - to square
	// f - from square

	keyToShift        = 8
	keyCapturedShift  = 16
	keyPromotionShift = 24
	keyNullBit        = 1 << 31

	keyByteMask      = (1 << 8) - 1
	keyPromotionMask = (1 << 7) - 1
)

// Key packs a move into 32 bits. Moves that are not Equal have distinct
// keys, so the key can stand in for the move in history tables and
// transposition entries. Every null move has the same key.
func (m Move) Key() uint32 {
	if m.Null {
		return keyNullBit
	}
	return uint32(m.From) |
		uint32(m.To)<<keyToShift |
		uint32(m.Captured)<<keyCapturedShift |
		uint32(m.Promotion)<<keyPromotionShift
}

// FromKey is the inverse of Key.
func FromKey(k uint32) Move {
	if k&keyNullBit != 0 {
		return NullMove()
	}
	return Move{
		From:      position.Index(k & keyByteMask),
		To:        position.Index((k >> keyToShift) & keyByteMask),
		Captured:  piece.ID((k >> keyCapturedShift) & keyByteMask),
		Promotion: piece.ID((k >> keyPromotionShift) & keyPromotionMask),
	}
}
