package piece

import (
	"fmt"

	"github.com/domino14/duchess/position"
)

// Piece is a snapshot of one piece: which piece it is and where it stood
// when the snapshot was taken.
type Piece struct {
	ID     ID
	Square position.Index
}

func (p Piece) Kind() Kind    { return p.ID.Kind() }
func (p Piece) Owner() Player { return p.ID.Player() }
func (p Piece) OnBoard() bool { return p.Square != position.OffBoard }

func (p Piece) String() string {
	return fmt.Sprintf("%v at %v owned by %d", p.Kind(), p.Square, p.Owner())
}
