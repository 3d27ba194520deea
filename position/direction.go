package position

// Direction is relative to the flap a square sits on. Moving across a flap
// seam or through the vortex relabels the direction that continues the same
// line; see NextDirection.
type Direction uint8

const (
	Clockwise Direction = iota
	Anticlockwise
	In
	Out
	InClockwise
	OutClockwise
	InAnticlockwise
	OutAnticlockwise

	NumDirections = 8
)

// FlapChangeVortex is the flap change reported when a line enters the
// vortex.
const FlapChangeVortex = 3

var directionNames = [NumDirections]string{
	"CW", "ACW", "IN", "OUT", "IN_CW", "OUT_CW", "IN_ACW", "OUT_ACW",
}

func (d Direction) String() string {
	if d >= NumDirections {
		return "?"
	}
	return directionNames[d]
}

// IsStraight is true for the rook-style directions.
func (d Direction) IsStraight() bool {
	return d <= Out
}

// IsDiagonal is true for the bishop-style directions.
func (d Direction) IsDiagonal() bool {
	return d >= InClockwise && d < NumDirections
}

// FlapChange is the change in flap number from prev to cur, modulo 6.
// Entering the vortex counts as FlapChangeVortex; leaving it counts as 0.
func FlapChange(prev, cur Index) int {
	if cur == Vortex {
		return FlapChangeVortex
	}
	if prev == Vortex {
		return 0
	}
	return (int(table[cur].flap) - int(table[prev].flap) + 12) % NumFlaps
}

// NextDirection gives the direction that continues a line after a step
// with the given flap change. Straight lines stay straight and diagonal
// lines stay diagonal.
func NextDirection(d Direction, flapChange int) Direction {
	switch flapChange {
	case 5:
		switch d {
		case InAnticlockwise:
			return OutAnticlockwise
		case OutAnticlockwise:
			return OutClockwise
		case InClockwise:
			return InAnticlockwise
		case In:
			return Anticlockwise
		case Anticlockwise:
			return Out
		}
	case 1:
		switch d {
		case InClockwise:
			return OutClockwise
		case InAnticlockwise:
			return InClockwise
		case OutClockwise:
			return OutAnticlockwise
		case In:
			return Clockwise
		case Clockwise:
			return Out
		}
	case FlapChangeVortex:
		switch d {
		case In:
			return Out
		case Out:
			return In
		case InAnticlockwise:
			return OutClockwise
		case InClockwise:
			return OutAnticlockwise
		}
	}
	return d
}

// OppositeFlap is the flap across the vortex.
func OppositeFlap(flap int) int {
	return (flap+2)%NumFlaps + 1
}
