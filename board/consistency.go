package board

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

var ErrInconsistent = errors.New("board inconsistent")

// CheckConsistency verifies the board's internal bookkeeping: the square
// map against the piece squares, and every vector against both of its
// pieces and the squares they stand on. It is meant for tests and
// debugging.
func (b *Board) CheckConsistency() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInconsistent, fmt.Sprintf(format, args...))
	}
	for i := position.Index(1); i < position.NumIndices; i++ {
		id := b.squares[i]
		if id != piece.NoID && b.pos[id] != i {
			return fail("square %v names %v, which is on %v", i, id, b.pos[id])
		}
	}
	for _, id := range piece.AllIDs() {
		sq := b.pos[id]
		if sq != position.OffBoard && b.squares[sq] != id {
			return fail("%v thinks it is on %v, which holds %v", id, sq, b.squares[sq])
		}
		if sq == position.OffBoard {
			for cat := 0; cat < numCategories; cat++ {
				if len(b.lists[id][cat]) > 0 {
					return fail("captured %v still has %s vectors", id, categoryNames[cat])
				}
			}
		}
	}

	counted := 0
	for _, id := range piece.AllIDs() {
		for _, cat := range [2]int{activeAttacking, activeDefending} {
			for _, h := range b.lists[id][cat] {
				if !b.vectors.live[h] {
					return fail("%v holds dead vector %d", id, h)
				}
				v := b.vectors.get(h)
				counted++
				if v.Active != id {
					return fail("%v files %v as its own", id, v)
				}
				if v.Active == v.Passive {
					return fail("self vector %v", v)
				}
				if (cat == activeAttacking) != v.Attacking() {
					return fail("%v filed as %s", v, categoryNames[cat])
				}
				if len(v.Path) < 2 || v.Path[0] != b.pos[v.Active] || v.Path[len(v.Path)-1] != b.pos[v.Passive] {
					return fail("%v does not join its pieces", v)
				}
				passiveCat := passiveAttacked
				if cat == activeDefending {
					passiveCat = passiveDefended
				}
				if !lo.Contains(b.lists[v.Passive][passiveCat], h) {
					return fail("%v missing from %v's %s", v, v.Passive, categoryNames[passiveCat])
				}
			}
		}
	}
	passive := 0
	for _, id := range piece.AllIDs() {
		passive += len(b.lists[id][passiveAttacked]) + len(b.lists[id][passiveDefended])
	}
	if counted != b.vectors.len() || passive != counted {
		return fail("%d live vectors, %d active entries, %d passive entries",
			b.vectors.len(), counted, passive)
	}
	return nil
}
