// Package testhelpers has small fixtures shared by tests across packages.
package testhelpers

import (
	"sort"

	"lukechampine.com/frand"

	"github.com/domino14/duchess/position"
)

// Squares parses square names and returns them sorted by index.
func Squares(names ...string) []position.Index {
	idx := make([]position.Index, len(names))
	for i, n := range names {
		idx[i] = position.MustParse(n)
	}
	return Sorted(idx)
}

// Sorted returns a sorted copy.
func Sorted(idx []position.Index) []position.Index {
	out := append([]position.Index(nil), idx...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RNG is a deterministic generator, so a failing random playout can be
// replayed.
func RNG(seed byte) *frand.RNG {
	key := make([]byte, 32)
	key[0] = seed
	return frand.NewCustom(key, 1024, 12)
}
