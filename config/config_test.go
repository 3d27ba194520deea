package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/duchess/board"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetInt(ConfigMaxTurns), 660)
	is.Equal(c.GetInt(ConfigRepetitionWindow), 24)
	is.Equal(c.GetInt(ConfigGames), 100)
	is.Equal(c.Strategy(), board.Cumulative)
	is.True(!c.GetBool(ConfigDebug))
	is.True(c.GetInt(ConfigThreads) >= 1)
}

func TestFlagsOverride(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--strategy", "denovo", "--games=7", "--debug", "perft", "3"})
	is.NoErr(err)
	is.Equal(c.Strategy(), board.DeNovo)
	is.Equal(c.GetInt(ConfigGames), 7)
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.Args(), []string{"perft", "3"})
}

func TestEnvironmentOverridesFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "duchess.yaml")
	is.NoErr(os.WriteFile(path, []byte("max-turns: 120\ngames: 3\n"), 0o644))
	t.Setenv("DUCHESS_GAMES", "9")

	c := &Config{}
	is.NoErr(c.Load([]string{"--config-file", path}))
	is.Equal(c.GetInt(ConfigMaxTurns), 120)
	is.Equal(c.GetInt(ConfigGames), 9)
	_, ok := c.SanitizedSettings()[ConfigConfigFile]
	is.True(!ok)
}

func TestValidation(t *testing.T) {
	is := is.New(t)
	for _, args := range [][]string{
		{"--strategy", "lazy"},
		{"--max-turns", "0"},
		{"--repetition-window", "5"},
		{"--threads", "0"},
		{"--no-such-flag"},
	} {
		c := &Config{}
		is.True(c.Load(args) != nil)
	}
}
