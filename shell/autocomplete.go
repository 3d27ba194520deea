package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/move"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"new":      {Args: board.SampleNames()},
	"perft":    {Options: []string{"-threads"}},
	"strategy": {Args: []string{"denovo", "cumulative"}},
	"help":     {Args: []string{"play", "perft", "script"}},
	"distance": {Args: []string{"P", "B", "N", "Q", "D", "R", "W", "K", "F"}},
	"moves":    {Args: []string{"1", "2", "3", "4", "5", "6"}},
	"check":    {Args: []string{"1", "2", "3", "4", "5", "6"}},
}

var commandNames = []string{
	"help", "new", "samples", "show", "layout", "moves", "play", "undo",
	"check", "winner", "perft", "hash", "piece", "distance", "strategy",
	"script", "exit",
}

// Do implements the readline.AutoComplete interface. After "play" it
// offers the legal moves of the player on turn.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		switch {
		case cmdName == "play" && len(fields) <= 2:
			completions = lo.Map(c.sc.board.LegalMoves(c.sc.onturn), func(m move.Move, _ int) string {
				return moveText(m)
			})
		default:
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
