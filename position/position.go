// Package position holds the board geometry: the canonical square table,
// the eight relative directions and the precomputed neighbor tables that
// every move generator walks over.
package position

import (
	"errors"
	"fmt"
	"strconv"
)

// Index is the canonical board index of a square. 0 is off the board,
// 1-156 are the flap squares and 157 is the vortex.
type Index uint8

const (
	OffBoard Index = 0
	Vortex   Index = 157
	// NumIndices is the size of every table keyed by Index.
	NumIndices = 158

	NumFlaps = 6
	// FlapSquares is the number of squares in columns 1-4 of a flap.
	FlapSquares = 20
	// hexBase is the last index before the inner (column 5 and 6) squares.
	hexBase = NumFlaps * FlapSquares
)

var ErrBadPosition = errors.New("bad position")

// Position is a canonical board coordinate. The zero value is off the
// board. Positions are only ever obtained from the fixed table, so two
// positions are equal exactly when they name the same square.
type Position struct {
	idx    Index
	flap   int8
	row    byte
	column int8
}

var table [NumIndices]Position

// At returns the canonical position for an index.
func At(i Index) Position {
	if int(i) >= NumIndices {
		panic(fmt.Sprintf("board index %d out of range", i))
	}
	return table[i]
}

// New returns the canonical position for a flap/row/column triple. Inner
// squares in rows a and b are aliases of squares on the next flap and
// canonicalize to them. It panics if the triple is not on the board.
func New(flap int, row byte, column int) Position {
	i, ok := canonicalIndex(flap, row, column)
	if !ok {
		panic(fmt.Sprintf("no such square %d%c%d", flap, row, column))
	}
	return table[i]
}

// IndexOf is a shorthand for New(flap, row, column).Index().
func IndexOf(flap int, row byte, column int) Index {
	return New(flap, row, column).Index()
}

func canonicalIndex(flap int, row byte, column int) (Index, bool) {
	if flap < 1 || flap > NumFlaps || row < 'a' || row > 'e' || column < 1 || column > 6 {
		return OffBoard, false
	}
	r := int(row-'a') + 1
	if column <= 4 {
		return Index((flap-1)*FlapSquares + (column-1)*5 + r), true
	}
	if r <= 2 {
		// (f,a,5) is (f+1,e,5), (f,a,6) is (f+1,d,5), (f,b,5) is (f+1,e,6)
		// and (f,b,6) is (f+1,d,6).
		flap = flap%NumFlaps + 1
		r, column = 6-(column-4), r+4
	}
	return Index(hexBase + (flap-1)*6 + (column-5)*3 + r - 2), true
}

func (p Position) Index() Index     { return p.idx }
func (p Position) Flap() int        { return int(p.flap) }
func (p Position) Row() byte        { return p.row }
func (p Position) Column() int      { return int(p.column) }
func (p Position) IsOffBoard() bool { return p.idx == OffBoard }
func (p Position) IsVortex() bool   { return p.idx == Vortex }

func (p Position) String() string {
	switch p.idx {
	case OffBoard:
		return "OB"
	case Vortex:
		return "V"
	}
	return strconv.Itoa(int(p.flap)) + string(p.row) + strconv.Itoa(int(p.column))
}

func (i Index) String() string {
	if int(i) >= NumIndices {
		return "Index(" + strconv.Itoa(int(i)) + ")"
	}
	return table[i].String()
}

// Parse reads a square written as <flap><row><column> ("1a3", "4b6"), "V"
// for the vortex or "OB" for off the board.
func Parse(s string) (Position, error) {
	switch s {
	case "V", "v":
		return table[Vortex], nil
	case "OB", "ob":
		return table[OffBoard], nil
	}
	if len(s) != 3 {
		return Position{}, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	flap, column := int(s[0]-'0'), int(s[2]-'0')
	i, ok := canonicalIndex(flap, s[1], column)
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	return table[i], nil
}

// MustParse is Parse for squares known to be valid, such as test fixtures.
func MustParse(s string) Index {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p.Index()
}

// DistanceToVortex is the number of unit steps between a square and the
// vortex, counting rows away from row c and columns away from the hub.
func DistanceToVortex(i Index) int {
	if i == OffBoard {
		panic("distance to vortex of off-board square")
	}
	if i == Vortex {
		return 0
	}
	p := table[i]
	d := int(p.row) - 'c'
	if d < 0 {
		d = -d
	}
	return d + 7 - int(p.column)
}

func buildPositionTable() {
	table[Vortex] = Position{idx: Vortex}
	for f := 1; f <= NumFlaps; f++ {
		for c := 1; c <= 6; c++ {
			rows := "abcde"
			if c > 4 {
				rows = "cde"
			}
			for _, r := range []byte(rows) {
				i, _ := canonicalIndex(f, r, c)
				table[i] = Position{idx: i, flap: int8(f), row: r, column: int8(c)}
			}
		}
	}
}
