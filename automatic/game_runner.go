// Package automatic plays Duchess without people: batches of random games
// spread over worker goroutines, and perft counts of the move tree.
package automatic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/config"
	"github.com/domino14/duchess/game"
	"github.com/domino14/duchess/move"
)

var ErrStrategyMismatch = errors.New("cumulative vectors differ from a rebuild")

// GameRunner plays the games of one batch.
type GameRunner struct {
	opts   game.Options
	seed   string
	verify bool
}

// NewGameRunner reads the game options from cfg.
func NewGameRunner(cfg *config.Config) *GameRunner {
	return &GameRunner{
		opts: game.Options{
			MaxTurns:         cfg.GetInt(config.ConfigMaxTurns),
			RepetitionWindow: cfg.GetInt(config.ConfigRepetitionWindow),
			Strategy:         cfg.Strategy(),
		},
		seed:   cfg.GetString(config.ConfigSeed),
		verify: cfg.GetBool(config.ConfigVerifyStrategies),
	}
}

// verifyVectors rebuilds the vector graph on a copy of b and compares it
// with the one b has maintained.
func verifyVectors(b *board.Board, m move.Move) error {
	c := b.Copy()
	c.RecomputeVectors()
	if c.NumVectors() != b.NumVectors() || !slices.Equal(c.VectorSnapshot(), b.VectorSnapshot()) {
		return fmt.Errorf("%w after %s: %d vectors, rebuild has %d", ErrStrategyMismatch,
			m.ShortString(), b.NumVectors(), c.NumVectors())
	}
	return nil
}

// PlayGame plays game number i of the batch to the end.
func (r *GameRunner) PlayGame(ctx context.Context, i int) (gameResult, error) {
	g, err := game.NewGame(game.RandomPlayers(gameRNG(r.seed, i)), r.opts)
	if err != nil {
		return gameResult{}, err
	}
	if r.verify {
		g.SetAfterMove(verifyVectors)
	}
	if err := g.Run(ctx); err != nil {
		return gameResult{}, fmt.Errorf("game %d: %w", i, err)
	}
	return gameResult{
		ID:        xxhash.Sum64String(g.Log().ID),
		Game:      i,
		Winner:    g.Winner(),
		Turns:     g.Log().NumTurns(),
		Stalemate: g.Stalemate(),
	}, nil
}

// RunPlayouts plays the configured number of games on the configured
// number of workers. One line per game goes to out as games finish, so the
// lines are not in game order.
func RunPlayouts(ctx context.Context, cfg *config.Config, out io.Writer) (Summary, error) {
	numGames := cfg.GetInt(config.ConfigGames)
	threads := cfg.GetInt(config.ConfigThreads)
	r := NewGameRunner(cfg)
	log.Info().Int("games", numGames).Int("threads", threads).
		Str("strategy", r.opts.Strategy.String()).Bool("verify", r.verify).Msg("starting-playouts")

	jobs := make(chan int, 100)
	results := make(chan gameResult, threads)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			for i := range jobs {
				res, err := r.PlayGame(gctx, i)
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	errc := make(chan error, 1)
	go func() {
		errc <- g.Wait()
		close(results)
	}()

	var t tally
	var werr error
	if _, err := io.WriteString(out, resultHeader); err != nil {
		werr = err
	}
	for res := range results {
		t.add(res)
		if werr == nil {
			_, werr = io.WriteString(out, res.line())
		}
		if t.summary.Games%1000 == 0 {
			log.Info().Int("played", t.summary.Games).Float64("mean-turns", t.turns.Mean()).
				Float64("last-turns", t.turns.Last()).Msg("progress")
		}
	}
	if err := <-errc; err != nil {
		return t.result(), err
	}
	log.Info().Int("games", t.summary.Games).Msg("all-games-finished")
	return t.result(), werr
}
