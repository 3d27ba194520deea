// Package steps answers how many moves a piece needs to get from one
// square to another on an otherwise empty board. The answers are a
// property of the geometry only, so they are computed once per kind and
// shared.
package steps

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/cache"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

// Unreachable is returned by Between when no sequence of moves gets there.
const Unreachable = -1

// Table holds the distance from every square to every square for one kind.
type Table struct {
	kind piece.Kind
	dist [position.NumIndices][position.NumIndices]int8
}

func (t *Table) Kind() piece.Kind { return t.kind }

// Between is the number of moves from one square to another, or
// Unreachable.
func (t *Table) Between(from, to position.Index) int {
	if from == position.OffBoard || to == position.OffBoard {
		return Unreachable
	}
	return int(t.dist[from][to])
}

func build(kind piece.Kind) *Table {
	var next [position.NumIndices][]position.Index
	for sq := position.Index(1); sq < position.NumIndices; sq++ {
		b := board.Probe(kind, sq)
		next[sq] = b.AccessibleSquares(b.PieceAt(sq))
	}

	t := &Table{kind: kind}
	for from := position.Index(1); from < position.NumIndices; from++ {
		row := &t.dist[from]
		for i := range row {
			row[i] = Unreachable
		}
		row[from] = 0
		queue := []position.Index{from}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range next[cur] {
				if row[n] == Unreachable {
					row[n] = row[cur] + 1
					queue = append(queue, n)
				}
			}
		}
	}
	log.Debug().Stringer("kind", kind).Msg("built step table")
	return t
}

// For returns the table for a kind, building it on first use.
func For(kind piece.Kind) *Table {
	obj, err := cache.Load("steps:"+kind.String(), func(string) (interface{}, error) {
		return build(kind), nil
	})
	if err != nil {
		// build never fails
		panic(err)
	}
	return obj.(*Table)
}

// Between is For(kind).Between(from, to).
func Between(kind piece.Kind, from, to position.Index) int {
	return For(kind).Between(from, to)
}
