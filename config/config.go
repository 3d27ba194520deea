// Package config layers the settings for the Duchess tools: built-in
// defaults, then a YAML file if one is named, then DUCHESS_* environment
// variables, then command-line flags.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/duchess/board"
)

const (
	ConfigDebug            = "debug"
	ConfigStrategy         = "strategy"
	ConfigMaxTurns         = "max-turns"
	ConfigRepetitionWindow = "repetition-window"
	ConfigThreads          = "threads"
	ConfigGames            = "games"
	ConfigSeed             = "seed"
	ConfigLogFile          = "log-file"
	ConfigVerifyStrategies = "verify-strategies"
	ConfigCPUProfile       = "cpu-profile"
	ConfigConfigFile       = "config-file"
)

type Config struct {
	*viper.Viper
	args []string
}

// Load reads every layer. args are the command-line arguments without the
// program name; positional arguments are left in c.Args().
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.SetEnvPrefix("duchess")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("duchess", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "log at debug level")
	fs.String(ConfigStrategy, "cumulative", "vector update strategy: denovo or cumulative")
	fs.Int(ConfigMaxTurns, 660, "turns after which a game is drawn")
	fs.Int(ConfigRepetitionWindow, 24, "draw when the last this-many moves are one block played twice")
	fs.Int(ConfigThreads, runtime.NumCPU(), "worker goroutines for playouts and perft")
	fs.Int(ConfigGames, 100, "number of games to play out")
	fs.String(ConfigSeed, "", "seed for reproducible playouts; empty for random")
	fs.String(ConfigLogFile, "", "file the per-game playout results are written to")
	fs.Bool(ConfigVerifyStrategies, false, "check the cumulative vectors against a rebuild after every move")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigConfigFile, "", "YAML file with any of these settings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	if path := c.GetString(ConfigConfigFile); path != "" {
		c.SetConfigFile(path)
		c.SetConfigType("yaml")
		if err := c.MergeInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return c.validate()
}

func (c *Config) validate() error {
	if _, err := board.ParseStrategy(c.GetString(ConfigStrategy)); err != nil {
		return err
	}
	for _, key := range []string{ConfigMaxTurns, ConfigThreads} {
		if c.GetInt(key) < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", key, c.GetInt(key))
		}
	}
	if w := c.GetInt(ConfigRepetitionWindow); w < 0 || w%2 != 0 {
		return fmt.Errorf("%s must be even and not negative, got %d", ConfigRepetitionWindow, w)
	}
	if c.GetInt(ConfigGames) < 0 {
		return fmt.Errorf("%s must not be negative", ConfigGames)
	}
	return nil
}

// Args are the positional arguments left after the flags.
func (c *Config) Args() []string {
	return c.args
}

// Strategy is the configured vector update strategy. Load has already
// checked it parses.
func (c *Config) Strategy() board.Strategy {
	s, err := board.ParseStrategy(c.GetString(ConfigStrategy))
	if err != nil {
		panic(err)
	}
	return s
}

// SanitizedSettings is every setting but the config file path, for
// logging at startup.
func (c *Config) SanitizedSettings() map[string]interface{} {
	settings := c.AllSettings()
	delete(settings, ConfigConfigFile)
	return settings
}

// DefaultConfig loads the built-in defaults and any DUCHESS_* variables,
// with no flags. It is meant for tests.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}
