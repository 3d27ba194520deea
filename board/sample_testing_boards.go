package board

import (
	"fmt"
	"sort"
)

// Sample is a layout in the text form ParseLayout reads, kept for tests
// and for loading into the shell.
type Sample string

const (
	// StartingLayout is where every piece stands on a new board.
	StartingLayout Sample = `
1: 1a3 1b3 1c3 1d3 1e3 1a2 1b2 1c2 1d2 1e2 1a1 1b1 1c1 1d1 1e1
2: 2a3 2b3 2c3 2d3 2e3 2a2 2b2 2c2 2d2 2e2 2a1 2b1 2c1 2d1 2e1
3: 3a3 3b3 3c3 3d3 3e3 3a2 3b2 3c2 3d2 3e2 3a1 3b1 3c1 3d1 3e1
4: 4a3 4b3 4c3 4d3 4e3 4a2 4b2 4c2 4d2 4e2 4a1 4b1 4c1 4d1 4e1
5: 5a3 5b3 5c3 5d3 5e3 5a2 5b2 5c2 5d2 5e2 5a1 5b1 5c1 5d1 5e1
6: 6a3 6b3 6c3 6d3 6e3 6a2 6b2 6c2 6d2 6e2 6a1 6b1 6c1 6d1 6e1
`
	// VortexQueen has player 1's queen sitting on the vortex.
	VortexQueen Sample = `
1: 1a3 1b3 1c3 1d3 1e3 1a2 1b2 V 1d2 1e2 1a1 1b1 1c1 1d1 1e1
2: 2a3 2b3 2c3 2d3 2e3 2a2 2b2 2c2 2d2 2e2 2a1 2b1 2c1 2d1 2e1
3: 3a3 3b3 3c3 3d3 3e3 3a2 3b2 3c2 3d2 3e2 3a1 3b1 3c1 3d1 3e1
4: 4a3 4b3 4c3 4d3 4e3 4a2 4b2 4c2 4d2 4e2 4a1 4b1 4c1 4d1 4e1
5: 5a3 5b3 5c3 5d3 5e3 5a2 5b2 5c2 5d2 5e2 5a1 5b1 5c1 5d1 5e1
6: 6a3 6b3 6c3 6d3 6e3 6a2 6b2 6c2 6d2 6e2 6a1 6b1 6c1 6d1 6e1
`
	// PromotionReady has player 1's queen captured and a pawn on 1c6, one
	// step from the vortex.
	PromotionReady Sample = `
1: 1a3 1b3 1c6 1d3 1e3 1a2 1b2 OB 1d2 1e2 1a1 1b1 1c1 1d1 1e1
2: 2a3 2b3 2c3 2d3 2e3 2a2 2b2 2c2 2d2 2e2 2a1 2b1 2c1 2d1 2e1
3: 3a3 3b3 3c3 3d3 3e3 3a2 3b2 3c2 3d2 3e2 3a1 3b1 3c1 3d1 3e1
4: 4a3 4b3 4c3 4d3 4e3 4a2 4b2 4c2 4d2 4e2 4a1 4b1 4c1 4d1 4e1
5: 5a3 5b3 5c3 5d3 5e3 5a2 5b2 5c2 5d2 5e2 5a1 5b1 5c1 5d1 5e1
6: 6a3 6b3 6c3 6d3 6e3 6a2 6b2 6c2 6d2 6e2 6a1 6b1 6c1 6d1 6e1
`
	// OddsMated has the odd kings alone in their a1 corners, each held by
	// two enemy rooks along rows a and b. Evens have already won.
	OddsMated Sample = `
1: OB OB OB OB OB OB OB OB OB OB OB OB 1a1 OB OB
2: OB OB OB OB OB OB OB OB OB OB 1a4 OB 2c1 OB 1b4
3: OB OB OB OB OB OB OB OB OB OB OB OB 3a1 OB OB
4: OB OB OB OB OB OB OB OB OB OB 3a4 OB 4c1 OB 3b4
5: OB OB OB OB OB OB OB OB OB OB OB OB 5a1 OB OB
6: OB OB OB OB OB OB OB OB OB OB 5a4 OB 6c1 OB 5b4
`
	// OneMoveFromMate is OddsMated with player 6's second rook on 5d4.
	// Player 5 is in check but can still step to 5b1 or 5b2 until the rook
	// closes row b with 5d4-5b4.
	OneMoveFromMate Sample = `
1: OB OB OB OB OB OB OB OB OB OB OB OB 1a1 OB OB
2: OB OB OB OB OB OB OB OB OB OB 1a4 OB 2c1 OB 1b4
3: OB OB OB OB OB OB OB OB OB OB OB OB 3a1 OB OB
4: OB OB OB OB OB OB OB OB OB OB 3a4 OB 4c1 OB 3b4
5: OB OB OB OB OB OB OB OB OB OB OB OB 5a1 OB OB
6: OB OB OB OB OB OB OB OB OB OB 5a4 OB 6c1 OB 5d4
`
)

var samples = map[string]Sample{
	"start":       StartingLayout,
	"vortexqueen": VortexQueen,
	"promotion":   PromotionReady,
	"oddsmated":   OddsMated,
	"mateinone":   OneMoveFromMate,
}

// SampleNames lists the names LoadSample accepts.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for n := range samples {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadSample builds a board from a named sample.
func LoadSample(name string) (*Board, error) {
	s, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("%w: no sample named %q", ErrBadLayout, name)
	}
	return NewBoardFromText(string(s))
}
