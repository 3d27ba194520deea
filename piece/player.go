package piece

import (
	"fmt"

	"github.com/domino14/duchess/position"
)

// Player is a seat number, 1 to 6. A player's home flap has the same
// number.
type Player int8

const (
	NumPlayers = 6
	// RosterSize is the number of pieces every player starts with.
	RosterSize = 15
)

func (p Player) Valid() bool { return p >= 1 && p <= NumPlayers }

func (p Player) check() {
	if !p.Valid() {
		panic(fmt.Sprintf("player %d out of range", p))
	}
}

// Team reports which side the player plays for.
func (p Player) Team() Team {
	p.check()
	if p%2 == 1 {
		return Odds
	}
	return Evens
}

// SameTeam reports whether two players are allies. A player is its own
// ally.
func SameTeam(a, b Player) bool {
	return a.Team() == b.Team()
}

// Next is the player who moves after p.
func (p Player) Next() Player {
	p.check()
	return p%NumPlayers + 1
}

// Team is one of the two sides, or None when nobody has won.
type Team uint8

const (
	None Team = iota
	Odds
	Evens
)

func (t Team) String() string {
	switch t {
	case Odds:
		return "ODDS"
	case Evens:
		return "EVENS"
	}
	return "NONE"
}

// Players returns the three members of a team.
func (t Team) Players() []Player {
	switch t {
	case Odds:
		return []Player{1, 3, 5}
	case Evens:
		return []Player{2, 4, 6}
	}
	return nil
}

// RosterKinds is the kind of the piece in every roster slot: five pawns,
// then bishop, knight, queen, bishop, duchess, rook, wizard, king, fortress
// and rook.
var RosterKinds = [RosterSize]Kind{
	Pawn, Pawn, Pawn, Pawn, Pawn,
	Bishop, Knight, Queen, Bishop, Duchess,
	Rook, Wizard, King, Fortress, Rook,
}

// Well known roster slots.
const (
	WizardSlot = 11
	KingSlot   = 12
)

// StartingSquare is where the piece in a roster slot stands on a new
// board: pawns across column 3, the other pieces in columns 2 and 1, rows
// a to e.
func StartingSquare(p Player, slot int) position.Index {
	p.check()
	return position.IndexOf(int(p), byte('a'+slot%5), (19-slot)/5)
}

// ID names a piece by owner and roster slot. The zero value NoID names no
// piece.
type ID uint8

const (
	NoID ID = 0
	// NumIDs is the size of tables keyed by ID, NoID included.
	NumIDs = NumPlayers*RosterSize + 1
)

// MakeID returns the ID for a player's roster slot.
func MakeID(p Player, slot int) ID {
	p.check()
	if slot < 0 || slot >= RosterSize {
		panic(fmt.Sprintf("roster slot %d out of range", slot))
	}
	return ID(1 + int(p-1)*RosterSize + slot)
}

func (id ID) check() {
	if id == NoID || int(id) >= NumIDs {
		panic(fmt.Sprintf("piece id %d out of range", id))
	}
}

func (id ID) Player() Player {
	id.check()
	return Player((int(id)-1)/RosterSize + 1)
}

func (id ID) Slot() int {
	id.check()
	return (int(id) - 1) % RosterSize
}

// Kind is fixed by the roster slot.
func (id ID) Kind() Kind {
	return RosterKinds[id.Slot()]
}

func (id ID) String() string {
	if id == NoID {
		return "-"
	}
	return fmt.Sprintf("%d%c%d", id.Player(), id.Kind().Initial(), id.Slot())
}

// AllIDs lists every piece in roster order, player 1 first.
func AllIDs() []ID {
	ids := make([]ID, 0, NumIDs-1)
	for id := ID(1); id < NumIDs; id++ {
		ids = append(ids, id)
	}
	return ids
}
