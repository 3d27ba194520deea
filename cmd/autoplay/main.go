// Command autoplay plays batches of random games and prints a summary, or
// counts perft nodes with -perft.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/duchess/automatic"
	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/config"
)

const histogramBins = 12

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// run takes the positional arguments: nothing for playouts, "perft <depth>"
// for a node count from the starting position, or "analyze <logfile>..."
// to total result logs from earlier runs.
func run(ctx context.Context, cfg *config.Config) error {
	args := cfg.Args()
	if len(args) == 2 && args[0] == "perft" {
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		start := time.Now()
		nodes, err := automatic.ParallelPerft(ctx, board.NewBoard(), 1, depth, cfg.Strategy(),
			cfg.GetInt(config.ConfigThreads))
		if err != nil {
			return err
		}
		log.Info().Int("depth", depth).Uint64("nodes", nodes).Dur("elapsed", time.Since(start)).Msg("perft")
		return nil
	}
	if len(args) >= 2 && args[0] == "analyze" {
		s, err := automatic.AnalyzeLogFiles(args[1:]...)
		if err != nil {
			return err
		}
		return writeSummary(s)
	}
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments %v", args)
	}

	var out io.Writer = io.Discard
	if path := cfg.GetString(config.ConfigLogFile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	s, err := automatic.RunPlayouts(ctx, cfg, out)
	if werr := writeSummary(s); werr != nil && err == nil {
		err = werr
	}
	return err
}

// writeSummary prints the summary to stdout and the game length histogram
// to stderr.
func writeSummary(s automatic.Summary) error {
	if err := s.WriteYAML(os.Stdout); err != nil {
		return err
	}
	return s.WriteHistogram(os.Stderr, histogramBins)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("autoplay-failed")
	}
}
