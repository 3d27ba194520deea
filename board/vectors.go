package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

type handle int32

// Vector categories, as seen from one piece.
const (
	activeAttacking = iota
	activeDefending
	passiveAttacked
	passiveDefended
	numCategories
)

var categoryNames = [numCategories]string{"AA", "AD", "PA", "PD"}

// Vector is a line of sight from an active piece to a passive piece. Path
// starts on the active piece's square and ends on the passive piece's
// square.
type Vector struct {
	Active, Passive piece.ID
	Path            []position.Index
}

// Attacking is true when the two pieces are enemies.
func (v Vector) Attacking() bool {
	return !piece.SameTeam(v.Active.Player(), v.Passive.Player())
}

func (v Vector) String() string {
	sqs := lo.Map(v.Path, func(i position.Index, _ int) string { return i.String() })
	return fmt.Sprintf("%v->%v [%s]", v.Active, v.Passive, strings.Join(sqs, " "))
}

// vectorArena stores vectors by handle. Freed slots are reused.
type vectorArena struct {
	slots []Vector
	live  []bool
	free  []handle
}

func (a *vectorArena) insert(v Vector) handle {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = v
		a.live[h] = true
		return h
	}
	a.slots = append(a.slots, v)
	a.live = append(a.live, true)
	return handle(len(a.slots) - 1)
}

func (a *vectorArena) remove(h handle) {
	if !a.live[h] {
		panic(fmt.Sprintf("vector %d removed twice", h))
	}
	a.slots[h] = Vector{}
	a.live[h] = false
	a.free = append(a.free, h)
}

func (a *vectorArena) get(h handle) Vector { return a.slots[h] }

func (a *vectorArena) len() int { return len(a.slots) - len(a.free) }

func (a *vectorArena) copy() vectorArena {
	c := vectorArena{
		slots: make([]Vector, len(a.slots)),
		live:  append([]bool(nil), a.live...),
		free:  append([]handle(nil), a.free...),
	}
	for h, v := range a.slots {
		c.slots[h] = Vector{Active: v.Active, Passive: v.Passive,
			Path: append([]position.Index(nil), v.Path...)}
	}
	return c
}

// register creates a vector and files it on both of its pieces.
func (b *Board) register(active, passive piece.ID, path []position.Index) {
	if active == passive {
		panic(fmt.Sprintf("vector from %v to itself", active))
	}
	v := Vector{Active: active, Passive: passive, Path: path}
	h := b.vectors.insert(v)
	if v.Attacking() {
		b.lists[active][activeAttacking] = append(b.lists[active][activeAttacking], h)
		b.lists[passive][passiveAttacked] = append(b.lists[passive][passiveAttacked], h)
	} else {
		b.lists[active][activeDefending] = append(b.lists[active][activeDefending], h)
		b.lists[passive][passiveDefended] = append(b.lists[passive][passiveDefended], h)
	}
}

func removeHandle(hs []handle, h handle) []handle {
	for i, x := range hs {
		if x == h {
			hs[i] = hs[len(hs)-1]
			return hs[:len(hs)-1]
		}
	}
	panic(fmt.Sprintf("vector %d not registered", h))
}

// clearActive drops every vector the piece is the active end of, from
// both ends.
func (b *Board) clearActive(id piece.ID) {
	for _, cat := range [2]int{activeAttacking, activeDefending} {
		passiveCat := passiveAttacked
		if cat == activeDefending {
			passiveCat = passiveDefended
		}
		for _, h := range b.lists[id][cat] {
			v := b.vectors.get(h)
			b.lists[v.Passive][passiveCat] = removeHandle(b.lists[v.Passive][passiveCat], h)
			b.vectors.remove(h)
		}
		b.lists[id][cat] = b.lists[id][cat][:0]
	}
	b.sight[id] = squareSet{}
}

// scanActive finds the piece's current lines of sight: one-step and
// knight-like contacts with any occupied square, and for sliding pieces
// the first piece along every line. Lines that run off the board yield
// nothing. It also returns the squares inspected.
func (b *Board) scanActive(id piece.ID) ([][]position.Index, squareSet) {
	var (
		paths [][]position.Index
		sight squareSet
	)
	sq := b.pos[id]
	if sq == position.OffBoard {
		return nil, sight
	}
	touch := func(targets []position.Index) {
		for _, t := range targets {
			sight.add(t)
			if !b.isEmpty(t) {
				paths = append(paths, []position.Index{sq, t})
			}
		}
	}
	kind := id.Kind()
	switch kind {
	case piece.Pawn:
		touch(position.Diagonal(sq))
	case piece.King, piece.Wizard:
		touch(position.AdjacentAndDiagonal(sq))
	}
	if kind.IsKnightLike() {
		touch(position.Knight(sq))
	}
	for _, class := range lineClasses(kind) {
		for _, r := range position.Rays(sq, class) {
			h := b.firstOnLine(sq, r, position.OffBoard, &sight)
			if h.hit == piece.NoID {
				continue
			}
			paths = append(paths, append([]position.Index{sq}, h.path...))
		}
	}
	return paths, sight
}

// initialiseActiveVectors rescans one piece. The piece's old active
// vectors must already be cleared.
func (b *Board) initialiseActiveVectors(id piece.ID) {
	paths, sight := b.scanActive(id)
	b.sight[id] = sight
	for _, p := range paths {
		b.register(id, b.squares[p[len(p)-1]], p)
	}
}

// initialiseVectors rebuilds the whole graph from scratch.
func (b *Board) initialiseVectors() {
	b.vectors = vectorArena{}
	for id := range b.lists {
		for cat := range b.lists[id] {
			b.lists[id][cat] = b.lists[id][cat][:0]
		}
		b.sight[id] = squareSet{}
	}
	for id := piece.ID(1); id < piece.NumIDs; id++ {
		b.initialiseActiveVectors(id)
	}
}

// piecesSeeing lists the on-board pieces whose last scan inspected any of
// the given squares.
func (b *Board) piecesSeeing(squares ...position.Index) []piece.ID {
	var ids []piece.ID
	for id := piece.ID(1); id < piece.NumIDs; id++ {
		if b.pos[id] == position.OffBoard {
			continue
		}
		for _, s := range squares {
			if s != position.OffBoard && b.sight[id].has(s) {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

// refresh rescans the given pieces. Any piece whose lines of sight may
// have changed must be among them.
func (b *Board) refresh(ids []piece.ID) {
	ids = lo.Uniq(lo.Filter(ids, func(id piece.ID, _ int) bool { return id != piece.NoID }))
	for _, id := range ids {
		b.clearActive(id)
	}
	for _, id := range ids {
		b.initialiseActiveVectors(id)
	}
}

func (b *Board) vectorsIn(id piece.ID, cat int) []Vector {
	hs := b.lists[id][cat]
	vs := make([]Vector, len(hs))
	for i, h := range hs {
		vs[i] = b.vectors.get(h)
	}
	return vs
}

// The four vector accessors return vectors in no particular order. Paths
// are shared with the board and must not be modified.

func (b *Board) ActiveAttacking(id piece.ID) []Vector { return b.vectorsIn(id, activeAttacking) }
func (b *Board) ActiveDefending(id piece.ID) []Vector { return b.vectorsIn(id, activeDefending) }
func (b *Board) PassiveAttacked(id piece.ID) []Vector { return b.vectorsIn(id, passiveAttacked) }
func (b *Board) PassiveDefended(id piece.ID) []Vector { return b.vectorsIn(id, passiveDefended) }

// NumVectors is the number of live vectors on the board.
func (b *Board) NumVectors() int { return b.vectors.len() }

// VectorSnapshot describes every piece's four vector sets in a canonical
// order, so two boards have equal snapshots exactly when their graphs
// are equal as sets.
func (b *Board) VectorSnapshot() []string {
	var lines []string
	for id := piece.ID(1); id < piece.NumIDs; id++ {
		for cat := 0; cat < numCategories; cat++ {
			for _, v := range b.vectorsIn(id, cat) {
				lines = append(lines, fmt.Sprintf("%v %s %v", id, categoryNames[cat], v))
			}
		}
	}
	sort.Strings(lines)
	return lines
}

// PieceVectors renders one piece's vectors for display, one category per
// line.
func (b *Board) PieceVectors(id piece.ID) string {
	var sb strings.Builder
	for cat := 0; cat < numCategories; cat++ {
		vs := lo.Map(b.vectorsIn(id, cat), func(v Vector, _ int) string { return v.String() })
		sort.Strings(vs)
		fmt.Fprintf(&sb, "%s (%d): %s\n", categoryNames[cat], len(vs), strings.Join(vs, ", "))
	}
	return sb.String()
}
