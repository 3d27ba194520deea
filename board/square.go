package board

import (
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

// squareSet is a bitset over board indices.
type squareSet [3]uint64

func (s *squareSet) add(i position.Index) { s[i>>6] |= 1 << (i & 63) }

func (s *squareSet) has(i position.Index) bool { return s[i>>6]&(1<<(i&63)) != 0 }

func (b *Board) isEmpty(i position.Index) bool {
	return b.squares[i] == piece.NoID
}

// isEnemy reports whether square i holds a piece of the other team.
func (b *Board) isEnemy(i position.Index, owner piece.Player) bool {
	id := b.squares[i]
	return id != piece.NoID && !piece.SameTeam(id.Player(), owner)
}

// isAlly reports whether square i holds a piece of owner's team, owner's
// own pieces included.
func (b *Board) isAlly(i position.Index, owner piece.Player) bool {
	id := b.squares[i]
	return id != piece.NoID && piece.SameTeam(id.Player(), owner)
}

// lineHit is the result of following one line from a square.
type lineHit struct {
	// path holds the squares walked, ending on the first occupied square
	// when hit is set.
	path []position.Index
	hit  piece.ID
	// dir is the direction of travel on arrival at the last square.
	dir position.Direction
}

// firstOnLine walks r from start until it meets a piece or leaves the
// board. The square ignore is treated as empty. When sight is not nil
// every square inspected is added to it.
func (b *Board) firstOnLine(start position.Index, r position.Ray, ignore position.Index,
	sight *squareSet) lineHit {

	var h lineHit
	position.Walk(start, r, func(sq position.Index, d position.Direction) bool {
		h.path = append(h.path, sq)
		h.dir = d
		if sight != nil {
			sight.add(sq)
		}
		if sq != ignore && b.squares[sq] != piece.NoID {
			h.hit = b.squares[sq]
			return false
		}
		return true
	})
	return h
}

// lineClasses returns the line classes a piece of kind k slides along.
func lineClasses(k piece.Kind) []int {
	switch {
	case k.SlidesStraight() && k.SlidesDiagonally():
		return []int{position.StraightLines, position.DiagonalLines}
	case k.SlidesStraight():
		return []int{position.StraightLines}
	case k.SlidesDiagonally():
		return []int{position.DiagonalLines}
	}
	return nil
}
