package board

import (
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
)

func shortStrings(moves []move.Move) []string {
	s := lo.Map(moves, func(m move.Move, _ int) string { return m.ShortString() })
	sort.Strings(s)
	return s
}

func mustParseMove(t *testing.T, b *Board, text string) move.Move {
	t.Helper()
	m, err := b.ParseMove(text)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestInitialLegalMoves(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	want := []string{
		"1a3_1a4", "1b2_1a4", "1b2_1c4", "1b3_1b4", "1c3_1c4",
		"1d3_1d4", "1e2_1d4", "1e3_1e4",
	}
	is.Equal(shortStrings(b.LegalMoves(1)), want)
	for p := piece.Player(1); p <= piece.NumPlayers; p++ {
		is.Equal(len(b.LegalMoves(p)), 8)
	}
}

func TestCheckAndEscape(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	play := func(text string) move.Move {
		m := mustParseMove(t, b, text)
		b.ApplyMove(m, DeNovo)
		return m
	}
	for _, text := range []string{"1b3 1b4", "2d3 2d4", "3c3 3c4", "4c3 4c4", "5c3 5c4", "6c3 6c4"} {
		play(text)
	}
	// Queen takes queen, checking player 2 down the c column.
	play("1c2 2c2")
	is.True(b.IsPlayerInCheck(2))
	is.True(!b.IsLegalMove(mustParseMove(t, b, "2a3 2a4"), 2))
	recapture := mustParseMove(t, b, "2b2 2c2")
	is.True(b.IsLegalMove(recapture, 2))
	is.True(lo.Contains(b.LegalMoves(2), recapture))
	// Every answer to the check takes the queen.
	for _, m := range b.LegalMoves(2) {
		is.Equal(m.To, sq("2c2"))
	}
	play("2b2 2c2")
	is.True(!b.IsPlayerInCheck(2))

	for _, text := range []string{"3c4 3c5", "4c4 4c5", "5c4 5c5", "6c2 6c3", "1b4 1b5",
		"2c3 2c4", "3c5 3c6", "4c5 4c6", "5c5 5c6"} {
		play(text)
	}
	// Player 6's queen takes the pawn in front of player 1's king.
	play("6c3 1c3")
	is.True(b.IsPlayerInCheck(1))
	is.True(!b.IsLegalMove(mustParseMove(t, b, "1c1 1c2"), 1))
	is.True(!b.IsLegalMove(mustParseMove(t, b, "1a1 1a2"), 1))
	block := mustParseMove(t, b, "1b2 1c2")
	is.True(b.IsLegalMove(block, 1))
	is.True(lo.Contains(b.LegalMoves(1), block))
	is.Equal(len(b.LegalMoves(1)), 7)
	play("1b2 1c2")
	is.True(!b.IsPlayerInCheck(1))

	for _, text := range []string{"2c4 2c5", "3c6 V", "4c6 4d6", "5c6 5d6", "6c4 6c5"} {
		play(text)
	}
	is.True(!b.IsLegalMove(mustParseMove(t, b, "1c1 1b2"), 1))
	is.Equal(b.Winner(), piece.None)
	is.NoErr(b.CheckConsistency())
}

func TestPromotionMoves(t *testing.T) {
	is := is.New(t)
	b, err := LoadSample("promotion")
	is.NoErr(err)
	pawn := b.PieceAt(sq("1c6"))
	queen := piece.MakeID(1, 7)
	is.Equal(b.PromotionOptions(1), []piece.ID{queen})

	var fromPawn []string
	for _, m := range b.LegalMoves(1) {
		if m.From == sq("1c6") {
			fromPawn = append(fromPawn, m.ShortString())
		}
	}
	sort.Strings(fromPawn)
	is.Equal(fromPawn, []string{"1c6_1c5", "1c6_1d6", "1c6_2d6", "1c6_V", "1c6_VQ"})

	m, err := b.FindMove(1, "1c6 V=Q")
	is.NoErr(err)
	is.Equal(m.Promotion, queen)
	b.ApplyMove(m, Cumulative)
	is.Equal(b.PieceAt(position.Vortex), queen)
	is.Equal(b.Square(pawn), position.OffBoard)
	is.Equal(len(b.PromotionOptions(1)), 0)
	is.NoErr(b.CheckConsistency())

	b.UndoMove(m, Cumulative)
	is.Equal(b.PieceAt(sq("1c6")), pawn)
	is.Equal(b.Square(queen), position.OffBoard)
	is.NoErr(b.CheckConsistency())
}

func TestPromotionOptionsLimits(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	for _, at := range []string{"1a2", "1d2", "1a1", "1e1", "1b2", "1a3"} {
		relocate(b, at, "OB")
	}
	opts := b.PromotionOptions(1)
	kinds := lo.Map(opts, func(id piece.ID, _ int) piece.Kind { return id.Kind() })
	// Two bishops and two rooks are off the board, but only one of each is
	// offered. Pawns never are.
	is.Equal(kinds, []piece.Kind{piece.Bishop, piece.Knight, piece.Rook})
}

func TestIllegalMovesRejected(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	cases := []move.Move{
		// wrong player
		move.New(sq("2a3"), sq("2a4"), piece.NoID),
		// blocked pawn
		move.New(sq("1a2"), sq("1a3"), b.PieceAt(sq("1a3"))),
		// captured piece does not match the board
		move.New(sq("1a3"), sq("1a4"), piece.MakeID(2, 0)),
		// nothing there
		move.New(sq("1c4"), sq("1c5"), piece.NoID),
		// promotion away from the vortex
		move.NewPromotion(sq("1a3"), sq("1a4"), piece.NoID, piece.MakeID(1, 7)),
	}
	for _, m := range cases {
		is.True(!b.IsLegalMove(m, 1))
	}
	is.True(!b.IsLegalMove(move.NullMove(), 1))

	_, err := b.FindMove(1, "1a3 1a5")
	is.True(err != nil)
}

func TestIsLegalMoveBadPlayer(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	for _, p := range []piece.Player{0, 7} {
		is.True(!b.IsLegalMove(move.NullMove(), p))
		is.True(!b.IsLegalMove(move.New(sq("1a3"), sq("1a4"), piece.NoID), p))
	}
}

func TestCheckmateSamples(t *testing.T) {
	is := is.New(t)
	b, err := LoadSample("oddsmated")
	is.NoErr(err)
	for _, p := range piece.Odds.Players() {
		is.True(b.IsPlayerInCheck(p))
		is.True(b.IsPlayerInCheckmate(p))
		is.Equal(b.LegalMoves(p), []move.Move{move.NullMove()})
		is.True(b.IsLegalMove(move.NullMove(), p))
	}
	for _, p := range piece.Evens.Players() {
		is.True(!b.IsPlayerInCheckmate(p))
	}
	is.Equal(b.Winner(), piece.Evens)
	is.True(b.IsTerminal())
}

func TestMatingMove(t *testing.T) {
	is := is.New(t)
	b, err := LoadSample("mateinone")
	is.NoErr(err)
	is.True(b.IsPlayerInCheck(5))
	is.True(!b.IsPlayerInCheckmate(5))
	is.Equal(shortStrings(b.LegalMoves(5)), []string{"5a1_5b1", "5a1_5b2"})
	is.Equal(b.Winner(), piece.None)

	m, err := b.FindMove(6, "5d4 5b4")
	is.NoErr(err)
	b.ApplyMove(m, Cumulative)
	is.True(b.IsPlayerInCheckmate(5))
	is.Equal(b.Winner(), piece.Evens)

	b.UndoMove(m, Cumulative)
	is.True(!b.IsPlayerInCheckmate(5))
	is.Equal(b.Winner(), piece.None)
}

func TestLegalMovesNeverTakeKings(t *testing.T) {
	is := is.New(t)
	b, err := LoadSample("oddsmated")
	is.NoErr(err)
	for p := piece.Player(1); p <= piece.NumPlayers; p++ {
		for _, m := range b.LegalMoves(p) {
			is.True(!m.IsCapture() || m.Captured.Kind() != piece.King)
		}
	}
}
