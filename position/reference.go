package position

// The functions in this file derive neighbors directly from coordinates.
// They are slow and are only used to fill the lookup tables at init time
// (and by the tests that compare the two).

func prevFlap(f int) int { return (f+4)%NumFlaps + 1 }
func nextFlap(f int) int { return f%NumFlaps + 1 }

func refInner(i Index) Index {
	p := table[i]
	f, row, col := int(p.flap), p.row, int(p.column)
	if col+1 <= 6 {
		return IndexOf(f, row, col+1)
	}
	if row == 'c' {
		return Vortex
	}
	newFlap := prevFlap(f)
	if row == 'a' || row == 'b' {
		newFlap = nextFlap(f)
	}
	newCol := 6
	if row == 'a' || row == 'e' {
		newCol = 5
	}
	return IndexOf(newFlap, 'c', newCol)
}

func refOuter(i Index) Index {
	p := table[i]
	if p.column-1 < 1 {
		return OffBoard
	}
	return IndexOf(int(p.flap), p.row, int(p.column)-1)
}

func refClockwise(i Index) Index {
	p := table[i]
	f, col := int(p.flap), int(p.column)
	if p.row-1 >= 'a' {
		return IndexOf(f, p.row-1, col)
	}
	if col >= 5 {
		row := byte('d')
		if col == 5 {
			row = 'e'
		}
		return IndexOf(nextFlap(f), row, 4)
	}
	return OffBoard
}

func refAnticlockwise(i Index) Index {
	p := table[i]
	f, col := int(p.flap), int(p.column)
	if p.row+1 <= 'e' {
		return IndexOf(f, p.row+1, col)
	}
	if col >= 5 {
		row := byte('b')
		if col == 5 {
			row = 'a'
		}
		return IndexOf(prevFlap(f), row, 4)
	}
	return OffBoard
}

func refInnerClockwise(i Index) Index {
	p := table[i]
	inner := refInner(i)
	switch {
	case inner == OffBoard:
		return OffBoard
	case p.column == 4 && p.row <= 'b':
		return refOuter(inner)
	case p.column == 6 && p.row >= 'd':
		return refInner(inner)
	case inner == Vortex:
		return IndexOf(nextFlap(int(p.flap)), p.row, int(p.column))
	}
	return refClockwise(inner)
}

func refInnerAnticlockwise(i Index) Index {
	p := table[i]
	inner := refInner(i)
	switch {
	case inner == OffBoard:
		return OffBoard
	case p.column == 4 && p.row <= 'b':
		return refInner(inner)
	case p.column == 6 && p.row >= 'd':
		return refOuter(inner)
	case inner == Vortex:
		return IndexOf(prevFlap(int(p.flap)), p.row, int(p.column))
	}
	return refAnticlockwise(inner)
}

func refOuterClockwise(i Index) Index {
	if outer := refOuter(i); outer != OffBoard {
		return refClockwise(outer)
	}
	if cw := refClockwise(i); cw != OffBoard {
		return refOuter(cw)
	}
	return OffBoard
}

func refOuterAnticlockwise(i Index) Index {
	if outer := refOuter(i); outer != OffBoard {
		return refAnticlockwise(outer)
	}
	if acw := refAnticlockwise(i); acw != OffBoard {
		return refOuter(acw)
	}
	return OffBoard
}

func refNeighbor(i Index, d Direction) Index {
	switch d {
	case Clockwise:
		return refClockwise(i)
	case Anticlockwise:
		return refAnticlockwise(i)
	case In:
		return refInner(i)
	case Out:
		return refOuter(i)
	case InClockwise:
		return refInnerClockwise(i)
	case OutClockwise:
		return refOuterClockwise(i)
	case InAnticlockwise:
		return refInnerAnticlockwise(i)
	case OutAnticlockwise:
		return refOuterAnticlockwise(i)
	}
	return OffBoard
}

// refKnight unions the diagonals of every adjacent square with the
// adjacents of every diagonal square, leaving out the adjacents of i. Inner
// c-row squares also reach the other inner c-row square two flaps away in
// each direction.
func refKnight(i Index) []Index {
	if i == Vortex {
		return append([]Index(nil), vortexKnight...)
	}
	adj := Adjacent(i)
	var moves []Index
	add := func(sq Index) {
		if sq == OffBoard || sq == i || contains(adj, sq) || contains(moves, sq) {
			return
		}
		moves = append(moves, sq)
	}
	for _, a := range adj {
		for _, sq := range Diagonal(a) {
			add(sq)
		}
	}
	for _, dg := range Diagonal(i) {
		for _, sq := range Adjacent(dg) {
			add(sq)
		}
	}
	p := table[i]
	if p.column >= 5 && p.row == 'c' {
		f := int(p.flap)
		other := 5
		if p.column == 5 {
			other = 6
		}
		add(IndexOf(prevFlap(prevFlap(f)), 'c', other))
		add(IndexOf(nextFlap(nextFlap(f)), 'c', other))
	}
	return moves
}

func contains(s []Index, sq Index) bool {
	for _, x := range s {
		if x == sq {
			return true
		}
	}
	return false
}
