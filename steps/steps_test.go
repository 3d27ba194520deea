package steps

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

func sq(s string) position.Index { return position.MustParse(s) }

func TestSingleSteps(t *testing.T) {
	is := is.New(t)
	is.Equal(Between(piece.King, sq("1a1"), sq("1a1")), 0)
	is.Equal(Between(piece.King, sq("1a1"), sq("1b2")), 1)
	is.Equal(Between(piece.King, sq("1a1"), sq("1c3")), 2)
	is.Equal(Between(piece.Rook, sq("1a1"), sq("1a4")), 1)
	is.Equal(Between(piece.Rook, sq("1a1"), sq("1e1")), 1)
	is.Equal(Between(piece.Knight, sq("1c2"), sq("1a1")), 1)
	is.Equal(Between(piece.Queen, sq("1c1"), position.Vortex), 1)
	is.Equal(Between(piece.Pawn, sq("1c3"), sq("1c4")), 1)
}

func TestOffBoardIsUnreachable(t *testing.T) {
	is := is.New(t)
	is.Equal(Between(piece.Queen, position.OffBoard, sq("1a1")), Unreachable)
	is.Equal(Between(piece.Queen, sq("1a1"), position.OffBoard), Unreachable)
}

// A wizard teleports next to itself, which is exactly a king step.
func TestWizardMatchesKing(t *testing.T) {
	is := is.New(t)
	king, wizard := For(piece.King), For(piece.Wizard)
	for from := position.Index(1); from < position.NumIndices; from++ {
		for to := position.Index(1); to < position.NumIndices; to++ {
			is.Equal(wizard.Between(from, to), king.Between(from, to))
		}
	}
}

func TestKingDistancesSymmetric(t *testing.T) {
	is := is.New(t)
	king := For(piece.King)
	for from := position.Index(1); from < position.NumIndices; from++ {
		for to := position.Index(1); to < position.NumIndices; to++ {
			d := king.Between(from, to)
			is.True(d >= 0)
			is.Equal(d, king.Between(to, from))
		}
	}
}

func TestTablesAreShared(t *testing.T) {
	is := is.New(t)
	is.True(For(piece.Duchess) == For(piece.Duchess))
	is.Equal(For(piece.Duchess).Kind(), piece.Duchess)
}
