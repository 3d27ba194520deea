package position

import "fmt"

var (
	vortexAdjacent = []Index{124, 130, 136, 142, 148, 154}
	vortexDiagonal = []Index{125, 131, 137, 143, 149, 155}
	vortexKnight   = []Index{126, 122, 132, 128, 138, 134, 144, 140, 150, 146, 156, 152}
)

var (
	neighbors           [NumIndices][NumDirections]Index
	adjacent            [NumIndices][]Index
	diagonal            [NumIndices][]Index
	adjacentAndDiagonal [NumIndices][]Index
	knight              [NumIndices][]Index
	rays                [NumIndices][2][]Ray
)

func init() {
	buildPositionTable()
	for i := Index(1); i < Vortex; i++ {
		for d := Direction(0); d < NumDirections; d++ {
			neighbors[i][d] = refNeighbor(i, d)
		}
		for d := Direction(0); d < NumDirections; d++ {
			if n := neighbors[i][d]; n != OffBoard {
				if d.IsStraight() {
					adjacent[i] = append(adjacent[i], n)
				} else {
					diagonal[i] = append(diagonal[i], n)
				}
				adjacentAndDiagonal[i] = append(adjacentAndDiagonal[i], n)
			}
		}
	}
	adjacent[Vortex] = vortexAdjacent
	diagonal[Vortex] = vortexDiagonal
	adjacentAndDiagonal[Vortex] = append(append([]Index(nil), vortexAdjacent...), vortexDiagonal...)

	for i := Index(1); i < NumIndices; i++ {
		knight[i] = refKnight(i)
	}
	buildRays()
}

func checkOnBoard(i Index) {
	if i == OffBoard || int(i) >= NumIndices {
		panic(fmt.Sprintf("square %d is not on the board", i))
	}
}

// Neighbor returns the square one step from i in direction d, or OffBoard
// at the edge. The vortex has no single neighbor per direction; use
// Adjacent and Diagonal, or Rays, for it.
func Neighbor(i Index, d Direction) Index {
	checkOnBoard(i)
	if i == Vortex {
		panic("Neighbor called on the vortex")
	}
	return neighbors[i][d]
}

// Adjacent returns the squares one straight step away. The slice is shared
// and must not be modified.
func Adjacent(i Index) []Index {
	checkOnBoard(i)
	return adjacent[i]
}

// Diagonal returns the squares one diagonal step away. The slice is shared
// and must not be modified.
func Diagonal(i Index) []Index {
	checkOnBoard(i)
	return diagonal[i]
}

// AdjacentAndDiagonal returns Adjacent(i) followed by Diagonal(i).
func AdjacentAndDiagonal(i Index) []Index {
	checkOnBoard(i)
	return adjacentAndDiagonal[i]
}

// Knight returns the knight-move squares from i.
func Knight(i Index) []Index {
	checkOnBoard(i)
	return knight[i]
}

// IsAdjacentOrDiagonal reports whether b is one king step from a.
func IsAdjacentOrDiagonal(a, b Index) bool {
	return contains(AdjacentAndDiagonal(a), b)
}

// NextSquareInLine returns the square after cur on the line that went from
// prev to cur in direction d. A line through the vortex comes out on the
// opposite flap at the mirror of prev.
func NextSquareInLine(prev, cur Index, d Direction) Index {
	checkOnBoard(cur)
	if cur == Vortex {
		p := table[prev]
		return IndexOf(OppositeFlap(int(p.flap)), p.row, int(p.column))
	}
	return neighbors[cur][NextDirection(d, FlapChange(prev, cur))]
}
