package piece

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/duchess/position"
)

func TestTeams(t *testing.T) {
	is := is.New(t)
	is.Equal(Player(1).Team(), Odds)
	is.Equal(Player(4).Team(), Evens)
	is.True(SameTeam(1, 5))
	is.True(!SameTeam(2, 3))
	is.Equal(Player(6).Next(), Player(1))
	is.Equal(Evens.Players(), []Player{2, 4, 6})
	is.Equal(None.String(), "NONE")
}

func TestStartingSquares(t *testing.T) {
	is := is.New(t)
	is.Equal(StartingSquare(1, 10), position.MustParse("1a1"))
	is.Equal(StartingSquare(3, 4), position.MustParse("3e3"))
	is.Equal(StartingSquare(6, 7), position.MustParse("6c2"))
	is.Equal(StartingSquare(1, KingSlot), position.MustParse("1c1"))
	is.Equal(StartingSquare(1, WizardSlot), position.MustParse("1b1"))

	seen := map[position.Index]bool{}
	for p := Player(1); p <= NumPlayers; p++ {
		for slot := 0; slot < RosterSize; slot++ {
			sq := StartingSquare(p, slot)
			is.True(!seen[sq])
			seen[sq] = true
			is.Equal(position.At(sq).Flap(), int(p))
		}
	}
}

func TestIDs(t *testing.T) {
	is := is.New(t)
	id := MakeID(3, KingSlot)
	is.Equal(id.Player(), Player(3))
	is.Equal(id.Slot(), KingSlot)
	is.Equal(id.Kind(), King)
	is.Equal(MakeID(1, 0), ID(1))
	is.Equal(MakeID(6, 14), ID(NumIDs-1))
	is.Equal(len(AllIDs()), NumPlayers*RosterSize)
	is.Equal(id.String(), "3K12")
}

func TestTravel(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		kind     Kind
		straight bool
		diagonal bool
	}{
		{Pawn, false, false},
		{Bishop, false, true},
		{Knight, false, false},
		{Queen, true, true},
		{Duchess, false, true},
		{Rook, true, false},
		{Wizard, false, false},
		{King, false, false},
		{Fortress, true, false},
	}
	for _, c := range cases {
		is.Equal(c.kind.CanTravel(position.Clockwise), c.straight)
		is.Equal(c.kind.CanTravel(position.OutAnticlockwise), c.diagonal)
		is.Equal(c.kind.SlidesStraight(), c.straight)
		is.Equal(c.kind.SlidesDiagonally(), c.diagonal)
		is.Equal(c.kind.IsSliding(), c.straight || c.diagonal)
	}
}

func TestInitials(t *testing.T) {
	is := is.New(t)
	for k := Kind(0); k < NumKinds; k++ {
		back, ok := KindFromInitial(k.Initial())
		is.True(ok)
		is.Equal(back, k)
	}
	k, ok := KindFromInitial('n')
	is.True(ok)
	is.Equal(k, Knight)
	_, ok = KindFromInitial('x')
	is.True(!ok)
}
