package position

// Ray is the first step of a line leaving a square: the square it lands on
// and the direction it was taken in.
type Ray struct {
	First Index
	Dir   Direction
}

// Line classes for Rays.
const (
	StraightLines = 0
	DiagonalLines = 1
)

func buildRays() {
	for i := Index(1); i < Vortex; i++ {
		for d := Direction(0); d < NumDirections; d++ {
			n := neighbors[i][d]
			if n == OffBoard {
				continue
			}
			class := StraightLines
			if d.IsDiagonal() {
				class = DiagonalLines
			}
			rays[i][class] = append(rays[i][class], Ray{First: n, Dir: d})
		}
	}
	// From the vortex every line starts on one of the six inner squares and
	// heads out along that flap.
	for _, sq := range vortexAdjacent {
		rays[Vortex][StraightLines] = append(rays[Vortex][StraightLines], Ray{First: sq, Dir: Out})
	}
	for _, sq := range vortexDiagonal {
		rays[Vortex][DiagonalLines] = append(rays[Vortex][DiagonalLines], Ray{First: sq, Dir: OutAnticlockwise})
	}
}

// Rays returns the lines of one class leaving i.
func Rays(i Index, class int) []Ray {
	checkOnBoard(i)
	return rays[i][class]
}

// Walk follows a line from start along r, calling visit for every square
// on it with the direction of travel at that square. The walk ends when
// visit returns false or the line leaves the board.
func Walk(start Index, r Ray, visit func(sq Index, d Direction) bool) {
	prev, cur, dir := start, r.First, r.Dir
	for steps := 0; cur != OffBoard; steps++ {
		if steps > NumIndices {
			panic("line from " + start.String() + " does not terminate")
		}
		if !visit(cur, dir) {
			return
		}
		next := NextSquareInLine(prev, cur, dir)
		dir = NextDirection(dir, FlapChange(prev, cur))
		prev, cur = cur, next
	}
}

// Line collects the squares of a line, start excluded.
func Line(start Index, r Ray) []Index {
	var sqs []Index
	Walk(start, r, func(sq Index, _ Direction) bool {
		sqs = append(sqs, sq)
		return true
	})
	return sqs
}
