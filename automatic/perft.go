package automatic

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/piece"
)

// Perft counts the leaves of the legal move tree depth plies deep, with
// the players taking turns from p. A player with no moves still has the
// null move, so every node has at least one child. b is left as it was.
func Perft(b *board.Board, p piece.Player, depth int, s board.Strategy) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.ApplyMove(m, s)
		nodes += Perft(b, p.Next(), depth-1, s)
		b.UndoMove(m, s)
	}
	return nodes
}

// ParallelPerft is Perft with the root moves shared out among threads
// workers. Each root move is searched on its own copy of b.
func ParallelPerft(ctx context.Context, b *board.Board, p piece.Player, depth int,
	s board.Strategy, threads int) (uint64, error) {

	if depth <= 1 {
		return Perft(b, p, depth, s), nil
	}
	var nodes atomic.Uint64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for _, m := range b.LegalMoves(p) {
		if gctx.Err() != nil {
			break
		}
		c := b.Copy()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.ApplyMove(m, s)
			n := Perft(c, p.Next(), depth-1, s)
			log.Trace().Str("move", m.ShortString()).Uint64("nodes", n).Msg("perft-root")
			nodes.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}
