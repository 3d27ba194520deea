package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/domino14/duchess/automatic"
	"github.com/domino14/duchess/board"
	"github.com/domino14/duchess/config"
	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
	"github.com/domino14/duchess/steps"
)

type Response struct {
	message string
}

func (r *Response) Message() string { return r.message }

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) Int(key string) (int, error) {
	v, ok := c[key]
	if !ok {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func msg(message string) *Response {
	return &Response{message: message}
}

// moveText writes m the way ParseMove reads it back.
func moveText(m move.Move) string {
	if m.Null {
		return "_"
	}
	s := m.From.String() + "-" + m.To.String()
	if m.IsPromotion() {
		s += "=" + string(m.Promotion.Kind().Initial())
	}
	return s
}

func prevPlayer(p piece.Player) piece.Player {
	return piece.Player((int(p)+piece.NumPlayers-2)%piece.NumPlayers + 1)
}

// playerArg reads a player number from the first argument, defaulting to
// the player on turn.
func (sc *ShellController) playerArg(cmd *shellcmd) (piece.Player, error) {
	if len(cmd.args) == 0 {
		return sc.onturn, nil
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return 0, err
	}
	p := piece.Player(n)
	if !p.Valid() {
		return 0, fmt.Errorf("player must be 1 to %d, got %d", piece.NumPlayers, n)
	}
	return p, nil
}

func (sc *ShellController) reset(b *board.Board) {
	sc.board = b
	sc.onturn = 1
	sc.played = nil
}

func (sc *ShellController) display() string {
	return fmt.Sprintf("%s\nplayer %d to move", sc.board.ToDisplayText(), sc.onturn)
}

func (sc *ShellController) newBoard(cmd *shellcmd) (*Response, error) {
	name := "start"
	if len(cmd.args) > 0 {
		name = cmd.args[0]
	}
	b, err := board.LoadSample(name)
	if err != nil {
		return nil, err
	}
	sc.reset(b)
	return msg(sc.display()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.display()), nil
}

// layout prints the current layout, or with an argument sets the board
// from layout text.
func (sc *ShellController) layout(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.board.Layout().String()), nil
	}
	b, err := board.NewBoardFromText(strings.Join(cmd.args, "\n"))
	if err != nil {
		return nil, err
	}
	sc.reset(b)
	return msg(sc.display()), nil
}

func (sc *ShellController) samples(cmd *shellcmd) (*Response, error) {
	return msg(strings.Join(board.SampleNames(), "\n")), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	p, err := sc.playerArg(cmd)
	if err != nil {
		return nil, err
	}
	texts := lo.Map(sc.board.LegalMoves(p), func(m move.Move, _ int) string { return moveText(m) })
	sort.Strings(texts)
	return msg(fmt.Sprintf("%d legal moves for player %d:\n%s", len(texts), p,
		strings.Join(texts, "\n"))), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("play needs a move, like 1a3 1a4")
	}
	m, err := sc.board.FindMove(sc.onturn, strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	sc.board.ApplyMove(m, sc.strategy)
	sc.played = append(sc.played, m)
	sc.onturn = sc.onturn.Next()
	out := sc.display()
	if w := sc.board.Winner(); w != piece.None {
		out += "\n" + w.String() + " win"
	}
	return msg(out), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if len(sc.played) == 0 {
		return nil, errors.New("nothing to undo")
	}
	m := sc.played[len(sc.played)-1]
	sc.played = sc.played[:len(sc.played)-1]
	sc.board.UndoMove(m, sc.strategy)
	sc.onturn = prevPlayer(sc.onturn)
	return msg(sc.display()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	players := []piece.Player{1, 2, 3, 4, 5, 6}
	if len(cmd.args) > 0 {
		p, err := sc.playerArg(cmd)
		if err != nil {
			return nil, err
		}
		players = []piece.Player{p}
	}
	var sb strings.Builder
	for _, p := range players {
		state := "safe"
		switch {
		case sc.board.IsPlayerInCheckmate(p):
			state = "checkmate"
		case sc.board.IsPlayerInCheck(p):
			state = "check"
		}
		fmt.Fprintf(&sb, "player %d: %s\n", p, state)
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) winner(cmd *shellcmd) (*Response, error) {
	return msg(sc.board.Winner().String()), nil
}

func (sc *ShellController) perft(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("perft needs a depth")
	}
	depth, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return nil, errors.New("depth must not be negative")
	}
	threads, err := cmd.options.IntDefault("threads", sc.cfg.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	if threads < 1 {
		return nil, errors.New("threads must be at least 1")
	}
	start := time.Now()
	nodes, err := automatic.ParallelPerft(context.Background(), sc.board, sc.onturn, depth,
		sc.strategy, threads)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("perft(%d) = %d nodes in %v", depth, nodes,
		time.Since(start).Round(time.Millisecond))), nil
}

func (sc *ShellController) hash(cmd *shellcmd) (*Response, error) {
	return msg(fmt.Sprintf("%016x", sc.board.Hash())), nil
}

func parseSquare(s string) (position.Index, error) {
	pos, err := position.Parse(s)
	if err != nil {
		return position.OffBoard, err
	}
	if pos.IsOffBoard() {
		return position.OffBoard, errors.New("need a square on the board")
	}
	return pos.Index(), nil
}

func squaresText(squares []position.Index) string {
	sorted := append([]position.Index(nil), squares...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return strings.Join(lo.Map(sorted, func(i position.Index, _ int) string { return i.String() }), " ")
}

func (sc *ShellController) pieceInfo(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("piece needs a square")
	}
	sq, err := parseSquare(cmd.args[0])
	if err != nil {
		return nil, err
	}
	id := sc.board.PieceAt(sq)
	if id == piece.NoID {
		return msg("no piece on " + sq.String()), nil
	}
	b := sc.board
	return msg(fmt.Sprintf("%v\naccessible: %s\n%s", b.Piece(id),
		squaresText(b.AccessibleSquares(id)), strings.TrimSuffix(b.PieceVectors(id), "\n"))), nil
}

// distance reports how many moves a lone piece of a kind needs between two
// squares.
func (sc *ShellController) distance(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 3 || len(cmd.args[0]) != 1 {
		return nil, errors.New("usage: distance <kind initial> <from> <to>")
	}
	kind, ok := piece.KindFromInitial(cmd.args[0][0])
	if !ok {
		return nil, errors.New("unknown kind " + cmd.args[0])
	}
	from, err := parseSquare(cmd.args[1])
	if err != nil {
		return nil, err
	}
	to, err := parseSquare(cmd.args[2])
	if err != nil {
		return nil, err
	}
	n := steps.Between(kind, from, to)
	if n == steps.Unreachable {
		return msg("unreachable"), nil
	}
	return msg(fmt.Sprintf("%d moves", n)), nil
}

func (sc *ShellController) setStrategy(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.strategy.String()), nil
	}
	s, err := board.ParseStrategy(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.strategy = s
	return msg("vector strategy set to " + s.String()), nil
}
