package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

// Layout gives the square of every piece, indexed by player-1 and roster
// slot. position.OffBoard marks a captured piece.
type Layout [piece.NumPlayers][piece.RosterSize]position.Index

// NewBoardFromLayout places the pieces and builds the vector graph and
// checkmate flags for them.
func NewBoardFromLayout(l Layout) (*Board, error) {
	b := newEmptyBoard()
	for p := range l {
		for slot, sq := range l[p] {
			if int(sq) >= position.NumIndices {
				return nil, fmt.Errorf("%w: square %d for player %d slot %d", ErrBadLayout, sq, p+1, slot)
			}
			if sq == position.OffBoard {
				continue
			}
			if other := b.squares[sq]; other != piece.NoID {
				return nil, fmt.Errorf("%w: %v and %v both on %v", ErrBadLayout, other,
					piece.MakeID(piece.Player(p+1), slot), sq)
			}
			b.setPiecePosition(piece.MakeID(piece.Player(p+1), slot), sq)
		}
	}
	b.setup()
	return b, nil
}

// Layout returns the current placement.
func (b *Board) Layout() Layout {
	var l Layout
	for _, id := range piece.AllIDs() {
		l[id.Player()-1][id.Slot()] = b.pos[id]
	}
	return l
}

// ParseLayout reads one line per player, written "<player>: " followed by
// fifteen squares in roster order. Blank lines and lines starting with #
// are skipped. Players that are not mentioned are left entirely off the
// board.
func ParseLayout(text string) (Layout, error) {
	var l Layout
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		head, rest, ok := strings.Cut(line, ":")
		if !ok {
			return l, fmt.Errorf("%w: line %d: missing player", ErrBadLayout, n+1)
		}
		p, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil || !piece.Player(p).Valid() {
			return l, fmt.Errorf("%w: line %d: bad player %q", ErrBadLayout, n+1, head)
		}
		fields := strings.Fields(rest)
		if len(fields) != piece.RosterSize {
			return l, fmt.Errorf("%w: line %d: %d squares, want %d", ErrBadLayout, n+1,
				len(fields), piece.RosterSize)
		}
		for slot, f := range fields {
			pos, err := position.Parse(f)
			if err != nil {
				return l, fmt.Errorf("%w: line %d: %w", ErrBadLayout, n+1, err)
			}
			l[p-1][slot] = pos.Index()
		}
	}
	return l, nil
}

// String writes the layout in the form ParseLayout reads.
func (l Layout) String() string {
	var sb strings.Builder
	for p := range l {
		sqs := lo.Map(l[p][:], func(i position.Index, _ int) string { return i.String() })
		fmt.Fprintf(&sb, "%d: %s\n", p+1, strings.Join(sqs, " "))
	}
	return sb.String()
}

// NewBoardFromText is ParseLayout followed by NewBoardFromLayout.
func NewBoardFromText(text string) (*Board, error) {
	l, err := ParseLayout(text)
	if err != nil {
		return nil, err
	}
	return NewBoardFromLayout(l)
}

// Probe returns an otherwise empty board with a single piece of the given
// kind, owned by player 1, standing on sq.
func Probe(kind piece.Kind, sq position.Index) *Board {
	var l Layout
	for slot, k := range piece.RosterKinds {
		if k == kind {
			l[0][slot] = sq
			break
		}
	}
	b, err := NewBoardFromLayout(l)
	if err != nil {
		panic(err)
	}
	return b
}

func squareLabel(b *Board, i position.Index) string {
	id := b.squares[i]
	if id == piece.NoID {
		return " ."
	}
	return fmt.Sprintf("%d%c", id.Player(), id.Kind().Initial())
}

// ToDisplayText draws every flap as a grid of rows a to e by columns 1 to
// 6. Squares in rows a and b past column 4 belong to the neighbouring flap
// and are drawn there.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for f := 1; f <= position.NumFlaps; f++ {
		fmt.Fprintf(&sb, "flap %d\n     1  2  3  4  5  6\n", f)
		for row := byte('a'); row <= 'e'; row++ {
			fmt.Fprintf(&sb, "  %c ", row)
			for col := 1; col <= 6; col++ {
				if col >= 5 && row <= 'b' {
					sb.WriteString("   ")
					continue
				}
				sb.WriteString(" " + squareLabel(b, position.IndexOf(f, row, col)))
			}
			sb.WriteString("\n")
		}
	}
	fmt.Fprintf(&sb, "vortex %s\n", strings.TrimSpace(squareLabel(b, position.Vortex)))
	return sb.String()
}

// ParseMove turns user text into a move on this board: the captured piece
// is whatever stands on the destination, and a "=K" suffix picks the
// first promotion option of that kind. The move is not checked for
// legality.
func (b *Board) ParseMove(text string) (move.Move, error) {
	sq, err := move.ParseSquares(text)
	if err != nil {
		return move.Move{}, err
	}
	if sq.Null {
		return move.NullMove(), nil
	}
	mover := b.squares[sq.From]
	if mover == piece.NoID {
		return move.Move{}, fmt.Errorf("%w: no piece on %v", move.ErrBadMove, sq.From)
	}
	m := move.New(sq.From, sq.To, b.squares[sq.To])
	if !sq.HasPromotion {
		return m, nil
	}
	promo, ok := lo.Find(b.PromotionOptions(mover.Player()), func(id piece.ID) bool {
		return id.Kind() == sq.Promote
	})
	if !ok {
		return move.Move{}, fmt.Errorf("%w: no captured %v to promote to", move.ErrBadMove, sq.Promote)
	}
	return move.NewPromotion(sq.From, sq.To, m.Captured, promo), nil
}

// FindMove parses text and checks it is legal for the player.
func (b *Board) FindMove(p piece.Player, text string) (move.Move, error) {
	m, err := b.ParseMove(text)
	if err != nil {
		return move.Move{}, err
	}
	if !b.IsLegalMove(m, p) {
		return move.Move{}, fmt.Errorf("%w: %s for player %d", ErrIllegalMove, m.ShortString(), p)
	}
	return m, nil
}
