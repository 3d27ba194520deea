package move

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

var ErrBadMove = errors.New("bad move")

// Move is a transition from one square to another. It is a small value
// and is comparable, so it can be used directly as a map key. The zero
// Move is not a valid move; the null move is NullMove().
type Move struct {
	From, To  position.Index
	Captured  piece.ID
	Promotion piece.ID
	Null      bool
}

// NullMove is what a player with no legal move plays.
func NullMove() Move {
	return Move{Null: true}
}

// New creates a move. captured is piece.NoID for a quiet move.
func New(from, to position.Index, captured piece.ID) Move {
	if from == position.OffBoard || to == position.OffBoard {
		panic(fmt.Sprintf("move %v -> %v touches the off-board square", from, to))
	}
	return Move{From: from, To: to, Captured: captured}
}

// NewPromotion creates a pawn move to the vortex that brings promotion back
// onto the board in place of the pawn.
func NewPromotion(from, to position.Index, captured, promotion piece.ID) Move {
	m := New(from, to, captured)
	m.Promotion = promotion
	return m
}

func (m Move) IsCapture() bool   { return m.Captured != piece.NoID }
func (m Move) IsPromotion() bool { return m.Promotion != piece.NoID }

// Less is a total order on moves: the null move first, then by from
// square, to square, captured piece and promotion piece.
func (m Move) Less(o Move) bool {
	if m.Null || o.Null {
		return m.Null && !o.Null
	}
	if m.From != o.From {
		return m.From < o.From
	}
	if m.To != o.To {
		return m.To < o.To
	}
	if m.Captured != o.Captured {
		return m.Captured < o.Captured
	}
	return m.Promotion < o.Promotion
}

// Equal compares moves by key. It differs from == only for a null move
// carrying stray squares or pieces, which Equal treats as the null move.
func (m Move) Equal(o Move) bool {
	return m.Key() == o.Key()
}

// Hash is consistent with Equal.
func (m Move) Hash() uint64 {
	k := m.Key()
	var buf [4]byte
	buf[0] = byte(k)
	buf[1] = byte(k >> 8)
	buf[2] = byte(k >> 16)
	buf[3] = byte(k >> 24)
	return xxhash.Sum64(buf[:])
}

// ShortString is the compact notation used in game transcripts: from and
// to squares joined by an underscore, then the initial of any captured
// piece and of any promotion piece. The null move is "_".
func (m Move) ShortString() string {
	if m.Null {
		return "_"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteByte('_')
	sb.WriteString(m.To.String())
	if m.IsCapture() {
		sb.WriteByte(m.Captured.Kind().Initial())
	}
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Kind().Initial())
	}
	return sb.String()
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	if m.Null {
		return "<null move>"
	}
	s := fmt.Sprintf("<move %v -> %v", m.From, m.To)
	if m.IsCapture() {
		s += fmt.Sprintf(" taking %v %v", m.Captured, m.Captured.Kind())
	}
	if m.IsPromotion() {
		s += fmt.Sprintf(" promoting to %v %v", m.Promotion, m.Promotion.Kind())
	}
	return s + ">"
}

// Squares is the structural part of a move written by a user.
type Squares struct {
	From, To position.Index
	// Promote is the kind asked for with a trailing "=K" and is only
	// meaningful when HasPromotion is set.
	Promote      piece.Kind
	HasPromotion bool
	Null         bool
}

// ParseSquares reads "1a3_1a4", "1a3-1a4" or "1c6 V", with an optional
// "=Q" suffix naming a promotion kind. "_" and "null" are the null move.
// It does not know which pieces stand where; resolving captures needs a
// board.
func ParseSquares(text string) (Squares, error) {
	text = strings.TrimSpace(text)
	if text == "_" || strings.EqualFold(text, "null") {
		return Squares{Null: true}, nil
	}
	var sq Squares
	if i := strings.IndexByte(text, '='); i >= 0 {
		suffix := text[i+1:]
		text = text[:i]
		if len(suffix) != 1 {
			return Squares{}, fmt.Errorf("%w: promotion %q", ErrBadMove, suffix)
		}
		k, ok := piece.KindFromInitial(suffix[0])
		if !ok {
			return Squares{}, fmt.Errorf("%w: promotion %q", ErrBadMove, suffix)
		}
		sq.Promote, sq.HasPromotion = k, true
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(fields) != 2 {
		return Squares{}, fmt.Errorf("%w: %q", ErrBadMove, text)
	}
	from, err := position.Parse(fields[0])
	if err != nil {
		return Squares{}, fmt.Errorf("%w: from square: %w", ErrBadMove, err)
	}
	to, err := position.Parse(fields[1])
	if err != nil {
		return Squares{}, fmt.Errorf("%w: to square: %w", ErrBadMove, err)
	}
	if from.IsOffBoard() || to.IsOffBoard() || from == to {
		return Squares{}, fmt.Errorf("%w: %q", ErrBadMove, text)
	}
	sq.From, sq.To = from.Index(), to.Index()
	return sq, nil
}
