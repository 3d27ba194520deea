// Package piece describes the piece kinds, the six players and their two
// teams, and the fixed roster every player starts with.
package piece

import "github.com/domino14/duchess/position"

// Kind is one of the nine piece types.
type Kind uint8

const (
	Pawn Kind = iota
	Bishop
	Knight
	Queen
	Duchess
	Rook
	Wizard
	King
	Fortress

	NumKinds = 9
)

var kindNames = [NumKinds]string{
	"PAWN", "BISHOP", "KNIGHT", "QUEEN", "DUCHESS", "ROOK", "WIZARD", "KING", "FORTRESS",
}

// Initials used in move notation. Knight takes N so that it does not clash
// with the king.
var kindInitials = [NumKinds]byte{'P', 'B', 'N', 'Q', 'D', 'R', 'W', 'K', 'F'}

func (k Kind) String() string {
	if k >= NumKinds {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Initial is the single-letter notation for the kind.
func (k Kind) Initial() byte {
	return kindInitials[k]
}

// KindFromInitial is the inverse of Initial.
func KindFromInitial(c byte) (Kind, bool) {
	for k, ini := range kindInitials {
		if ini == c || ini+('a'-'A') == c {
			return Kind(k), true
		}
	}
	return 0, false
}

// CanTravel reports whether a sliding piece of this kind moves along lines
// in direction d. Rooks and fortresses slide straight, bishops and
// duchesses slide diagonally, queens do both. Other kinds never slide.
func (k Kind) CanTravel(d position.Direction) bool {
	switch k {
	case Queen:
		return true
	case Rook, Fortress:
		return d.IsStraight()
	case Bishop, Duchess:
		return d.IsDiagonal()
	}
	return false
}

// IsSliding is true for the kinds that travel along lines.
func (k Kind) IsSliding() bool {
	switch k {
	case Queen, Rook, Fortress, Bishop, Duchess:
		return true
	}
	return false
}

// IsKnightLike is true for the kinds that also jump to the knight squares.
func (k Kind) IsKnightLike() bool {
	return k == Knight || k == Duchess || k == Fortress
}

// SlidesStraight and SlidesDiagonally split IsSliding by line class.
func (k Kind) SlidesStraight() bool   { return k == Queen || k == Rook || k == Fortress }
func (k Kind) SlidesDiagonally() bool { return k == Queen || k == Bishop || k == Duchess }
