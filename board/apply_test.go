package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/domino14/duchess/move"
	"github.com/domino14/duchess/piece"
	"github.com/domino14/duchess/position"
	"github.com/domino14/duchess/testhelpers"
	"github.com/domino14/duchess/zobrist"
)

type boardState struct {
	layout    Layout
	vectors   []string
	hash      uint64
	checkmate [piece.NumPlayers]bool
}

func stateOf(b *Board) boardState {
	return boardState{b.Layout(), b.VectorSnapshot(), b.Hash(), b.checkmate}
}

func TestApplyMoveVectors(t *testing.T) {
	for _, s := range []Strategy{DeNovo, Cumulative} {
		t.Run(s.String(), func(t *testing.T) {
			is := is.New(t)
			b := NewBoard()
			play := func(text string) {
				b.ApplyMove(mustParseMove(t, b, text), s)
			}
			pawn1 := b.PieceAt(sq("1a3"))
			pawn2 := b.PieceAt(sq("2e3"))
			bishop := b.PieceAt(sq("2a2"))

			play("1a3 1a4")
			is.Equal(vectorCounts(b, pawn1), [4]int{0, 1, 0, 2})

			play("2e3 2e4")
			is.Equal(vectorCounts(b, pawn1), [4]int{1, 1, 1, 2})
			is.Equal(vectorCounts(b, pawn2), [4]int{1, 1, 1, 1})

			for _, text := range []string{"3d3 3d4", "4d3 4d4", "5d3 5d4", "6d3 6d4"} {
				play(text)
			}
			play("1a4 2e4")
			is.Equal(b.Square(pawn2), position.OffBoard)
			is.Equal(vectorCounts(b, pawn2), [4]int{0, 0, 0, 0})
			is.Equal(len(b.PassiveDefended(bishop)), 3)

			play("2b2 2c4")
			is.Equal(len(b.PassiveDefended(bishop)), 4)
			is.NoErr(b.CheckConsistency())
		})
	}
}

func TestUndoRestores(t *testing.T) {
	setup := func() *Board {
		b := NewBoard()
		relocate(b, "1c2", "OB")
		relocate(b, "1b3", "2d6")
		relocate(b, "2d2", "V")
		relocate(b, "3e1", "3d4")
		relocate(b, "4c2", "4c5")
		b.RecomputeVectors()
		return b
	}
	moves := []string{"2d6 V=Q", "2d6 2e6", "V 2d6", "4c5 3d4"}
	for _, s := range []Strategy{DeNovo, Cumulative} {
		for _, text := range moves {
			is := is.New(t)
			b := setup()
			before := stateOf(b)
			m := mustParseMove(t, b, text)
			b.ApplyMove(m, s)
			is.NoErr(b.CheckConsistency())
			is.True(b.Hash() != before.hash)
			b.UndoMove(m, s)
			is.Equal(stateOf(b), before)
			is.NoErr(b.CheckConsistency())
		}
	}
}

func TestUndoWrongMovePanics(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	m := mustParseMove(t, b, "1a3 1a4")
	b.ApplyMove(m, DeNovo)
	defer func() {
		is.True(recover() != nil)
	}()
	b.UndoMove(mustParseMove(t, b, "1b3 1b4"), DeNovo)
}

func TestApplyMismatchedCapturePanics(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	defer func() {
		is.True(recover() != nil)
	}()
	b.ApplyMove(move.New(sq("1a3"), sq("1a4"), piece.MakeID(2, 0)), DeNovo)
}

func TestNullMoveApplyUndo(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	before := stateOf(b)
	b.ApplyMove(move.NullMove(), Cumulative)
	is.Equal(b.Depth(), 1)
	last, ok := b.LastMove()
	is.True(ok)
	is.True(last.Null)
	b.UndoMove(move.NullMove(), Cumulative)
	is.Equal(stateOf(b), before)
	_, ok = b.LastMove()
	is.True(!ok)
}

func TestNullMoveWithStrayFields(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	before := stateOf(b)
	stray := move.Move{Null: true, From: sq("1a3"), To: sq("1a4")}
	b.ApplyMove(stray, DeNovo)
	last, _ := b.LastMove()
	is.Equal(last, move.NullMove())
	b.UndoMove(move.NullMove(), DeNovo)
	is.Equal(stateOf(b), before)
}

// randomPlayout plays the same random legal moves on one board per
// strategy and checks the two stay identical and well formed throughout,
// then unwinds everything.
func randomPlayout(t *testing.T, seed byte, plies int) {
	is := is.New(t)
	rng := testhelpers.RNG(seed)
	denovo, cumulative := NewBoard(), NewBoard()
	start := stateOf(denovo)

	var played []move.Move
	var snapshots []boardState
	p := piece.Player(1)
	for ply := 0; ply < plies && !denovo.IsTerminal(); ply++ {
		legal := denovo.LegalMoves(p)
		is.True(len(legal) > 0)
		is.Equal(legal, cumulative.LegalMoves(p))
		for _, m := range legal {
			is.True(denovo.IsLegalMove(m, p))
			is.True(!m.IsCapture() || m.Captured.Kind() != piece.King)
		}
		// Every structurally possible move that LegalMoves leaves out must
		// be refused by IsLegalMove too.
		for _, pc := range denovo.PiecesForPlayer(p) {
			for _, to := range denovo.AccessibleSquares(pc.ID) {
				m := move.New(pc.Square, to, denovo.PieceAt(to))
				is.Equal(denovo.IsLegalMove(m, p), lo.Contains(legal, m))
			}
		}

		m := legal[rng.Intn(len(legal))]
		snapshots = append(snapshots, stateOf(denovo))
		denovo.ApplyMove(m, DeNovo)
		cumulative.ApplyMove(m, Cumulative)
		played = append(played, m)

		is.Equal(denovo.VectorSnapshot(), cumulative.VectorSnapshot())
		is.NoErr(cumulative.CheckConsistency())
		is.NoErr(denovo.CheckConsistency())
		is.Equal(cumulative.Hash(), zobrist.Hash(allPieces(cumulative)))
		for q := piece.Player(1); q <= piece.NumPlayers; q++ {
			mated := cumulative.IsPlayerInCheck(q) && cumulative.LegalMoves(q)[0].Null
			is.Equal(cumulative.IsPlayerInCheckmate(q), mated)
		}
		p = p.Next()
	}

	for i := len(played) - 1; i >= 0; i-- {
		denovo.UndoMove(played[i], DeNovo)
		cumulative.UndoMove(played[i], Cumulative)
		is.Equal(stateOf(denovo), snapshots[i])
		is.Equal(stateOf(cumulative), snapshots[i])
	}
	is.Equal(stateOf(cumulative), start)
}

func TestRandomPlayouts(t *testing.T) {
	plies := 150
	if testing.Short() {
		plies = 40
	}
	for seed := byte(1); seed <= 3; seed++ {
		randomPlayout(t, seed, plies)
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	for _, s := range []Strategy{DeNovo, Cumulative} {
		b.Run(s.String(), func(b *testing.B) {
			bd := NewBoard()
			m, err := bd.ParseMove("1b2 1c4")
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				bd.ApplyMove(m, s)
				bd.UndoMove(m, s)
			}
		})
	}
}
