package automatic

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

// gameSeed derives the 32-byte seed for one game of a seeded batch. Game i
// gets the same seed whichever worker plays it.
func gameSeed(base string, game int) []byte {
	seed := make([]byte, 32)
	prefix := base + "/" + strconv.Itoa(game) + "/"
	for k := 0; k < 4; k++ {
		binary.LittleEndian.PutUint64(seed[8*k:], xxhash.Sum64String(prefix+strconv.Itoa(k)))
	}
	return seed
}

// gameRNG is nil for an unseeded batch, which makes the players fall back
// on the process-wide generator.
func gameRNG(base string, game int) *frand.RNG {
	if base == "" {
		return nil
	}
	return frand.NewCustom(gameSeed(base, game), 1024, 12)
}
