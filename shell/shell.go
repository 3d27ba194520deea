// Package shell is an interactive command line for setting up and
// exploring Duchess positions.
package shell

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/config"
	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format for option")
	errExit              = errors.New("exit")
)

type ShellController struct {
	l   *readline.Instance
	out io.Writer
	cfg *config.Config

	board    *board.Board
	onturn   piece.Player
	played   []move.Move
	strategy board.Strategy
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// newController sets up a controller on the starting position that writes
// to out. It has no readline instance, so it cannot Loop.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{
		out:      out,
		cfg:      cfg,
		board:    board.NewBoard(),
		onturn:   1,
		strategy: cfg.Strategy(),
	}
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc := newController(cfg, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mduchess>\033[0m ",
		HistoryFile:     filepath.Join(os.TempDir(), "duchess_readline.tmp"),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc, nil
}

// extractFields splits a line into the command, its positional arguments
// and its -name value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if len(f) > 1 && strings.HasPrefix(f, "-") {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			cmd.options[f[1:]] = fields[i+1]
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Execute runs one command line.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "quit":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newBoard(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "layout":
		return sc.layout(cmd)
	case "samples":
		return sc.samples(cmd)
	case "moves":
		return sc.moves(cmd)
	case "play":
		return sc.play(cmd)
	case "undo":
		return sc.undo(cmd)
	case "check":
		return sc.check(cmd)
	case "winner":
		return sc.winner(cmd)
	case "perft":
		return sc.perft(cmd)
	case "hash":
		return sc.hash(cmd)
	case "piece":
		return sc.pieceInfo(cmd)
	case "distance":
		return sc.distance(cmd)
	case "strategy":
		return sc.setStrategy(cmd)
	case "script":
		return sc.script(cmd)
	}
	return nil, errors.New("command " + cmd.cmd + " not found")
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.Execute(line)
		if errors.Is(err, errExit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("exiting readline loop...")
}
