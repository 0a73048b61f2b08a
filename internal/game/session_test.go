package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
	"github.com/lgbarn/chessrules-go/internal/trace"
)

// uci formats a played move for github.com/notnil/chess.
func uci(m chess.Move) string {
	s := m.From.String() + m.To.String()
	if m.PromotedTo != chess.Empty {
		s += "q"
	}
	return s
}

// oracleStatus maps the position status reported by notnil/chess onto ours.
func oracleStatus(g *nchess.Game) engine.GameStatus {
	switch g.Position().Status() {
	case nchess.Checkmate:
		return engine.Checkmate
	case nchess.Stalemate:
		return engine.Stalemate
	}
	return engine.InProgress
}

// oracleMoveCount counts notnil's legal moves, leaving out under-promotions
// since pawns here always become queens.
func oracleMoveCount(g *nchess.Game) int {
	n := 0
	for _, m := range g.ValidMoves() {
		if p := m.Promo(); p == nchess.NoPieceType || p == nchess.Queen {
			n++
		}
	}
	return n
}

func TestSessionStatusMatchesNotnil(t *testing.T) {
	games := map[string]struct {
		moves []string
		want  engine.GameStatus
	}{
		"fool's mate": {
			moves: []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4"},
			want:  engine.Checkmate,
		},
		"scholar's mate": {
			moves: []string{"e2-e4", "e7-e5", "f1-c4", "b8-c6", "d1-h5", "g8-f6", "h5-f7"},
			want:  engine.Checkmate,
		},
		"castling and en passant": {
			moves: []string{
				"e2-e4", "g8-f6", "e4-e5", "d7-d5", "e5-d6", "e7-d6",
				"g1-f3", "f8-e7", "f1-c4", "e8-g8", "e1-g1",
			},
			want: engine.InProgress,
		},
		"promotion": {
			moves: []string{
				"a2-a4", "b7-b5", "a4-b5", "a7-a6", "b5-a6", "c8-b7", "a6-b7", "g8-f6", "b7-a8",
			},
			want: engine.InProgress,
		},
		// Sam Loyd's ten-move stalemate.
		"quickest stalemate": {
			moves: []string{
				"e2-e3", "a7-a5", "d1-h5", "a8-a6", "h5-a5", "h7-h5", "h2-h4", "a6-h6",
				"a5-c7", "f7-f6", "c7-d7", "e8-f7", "d7-b7", "d8-d3", "b7-b8", "d3-h7",
				"b8-c8", "f7-g6", "c8-e6",
			},
			want: engine.Stalemate,
		},
	}

	for name, tt := range games {
		t.Run(name, func(t *testing.T) {
			s := NewSession()
			oracle := nchess.NewGame(nchess.UseNotation(nchess.UCINotation{}))

			for _, text := range tt.moves {
				move, err := s.MoveText(context.Background(), text)
				if err != nil {
					t.Fatalf("MoveText(%s) error: %v", text, err)
				}
				if err := oracle.MoveStr(uci(move)); err != nil {
					t.Fatalf("notnil rejected %s: %v", uci(move), err)
				}
				if got, want := s.Status(), oracleStatus(oracle); got != want {
					t.Fatalf("after %s: Status() = %v, notnil says %v", text, got, want)
				}
				if got, want := len(s.LegalMoves()), oracleMoveCount(oracle); got != want {
					t.Fatalf("after %s: %d legal moves, notnil has %d", text, got, want)
				}
			}

			if got := s.Status(); got != tt.want {
				t.Errorf("final Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionRejectsMovesAfterGameOver(t *testing.T) {
	s := NewSession()
	for _, text := range []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4"} {
		if _, err := s.MoveText(context.Background(), text); err != nil {
			t.Fatalf("MoveText(%s) error: %v", text, err)
		}
	}

	before := s.Snapshot()
	_, err := s.MoveText(context.Background(), "e1-f2")
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver)

	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("error %T is not a *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.Reason, "Checkmate")
	testutil.AssertEqual(t, s.Snapshot(), before, "board after refused move")
	testutil.AssertEqual(t, len(s.LegalMoves()), 0)
	testutil.AssertEqual(t, s.LegalDestinations(testutil.MustSquare(t, "e1")), chess.SquareSet(0))
}

func TestSessionRejectionIsRecoverable(t *testing.T) {
	s := NewSession()

	tests := []struct {
		text string
		want error
	}{
		{"e2-e5", chesserrors.ErrMoveRejected},
		{"e4-e5", chesserrors.ErrInvalidSquare},
		{"e2-z9", chesserrors.ErrParseFailure},
		{"hello", chesserrors.ErrParseFailure},
		{"e7-e5", chesserrors.ErrMoveRejected},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := s.MoveText(context.Background(), tt.text)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}

	testutil.AssertEqual(t, len(s.History()), 0)
	testutil.AssertEqual(t, s.ToMove(), chess.White)

	if _, err := s.MoveText(context.Background(), "e2-e4"); err != nil {
		t.Fatalf("MoveText(e2-e4) error: %v", err)
	}
	testutil.AssertEqual(t, s.ToMove(), chess.Black)
}

func TestSessionHistoryAndSnapshot(t *testing.T) {
	s := NewSession()
	for _, text := range []string{"e2-e4", "e7-e5", "g1-f3"} {
		if _, err := s.MoveText(context.Background(), text); err != nil {
			t.Fatalf("MoveText(%s) error: %v", text, err)
		}
	}

	var played []string
	for _, m := range s.History() {
		played = append(played, m.String())
	}
	testutil.AssertEqual(t, played, []string{"e2-e4", "e7-e5", "g1-f3"})

	want := testutil.NewGameAfter(t, "e2-e4", "e7-e5", "g1-f3")
	testutil.AssertEqual(t, s.Snapshot(), want)

	// Mutating the snapshot must not reach the session.
	snap := s.Snapshot()
	snap.Set(testutil.MustSquare(t, "e1"), chess.Empty)
	piece, ok := s.PieceAt(testutil.MustSquare(t, "e1"))
	testutil.AssertTrue(t, ok, "king still on e1")
	testutil.AssertEqual(t, piece, chess.W(chess.King))

	hist := s.History()
	hist[0] = chess.Move{}
	testutil.AssertEqual(t, s.History()[0].String(), "e2-e4")
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	for _, text := range []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4"} {
		if _, err := s.MoveText(context.Background(), text); err != nil {
			t.Fatalf("MoveText(%s) error: %v", text, err)
		}
	}
	testutil.AssertEqual(t, s.Status(), engine.Checkmate)

	s.Reset()
	testutil.AssertEqual(t, s.Status(), engine.InProgress)
	testutil.AssertEqual(t, len(s.History()), 0)
	testutil.AssertEqual(t, s.Snapshot(), engine.NewGame())
	testutil.AssertEqual(t, len(s.LegalMoves()), 20)
}

func TestSessionLegalDestinations(t *testing.T) {
	s := NewSession()
	got := s.LegalDestinations(testutil.MustSquare(t, "g1"))
	want := chess.SquareSet(0).Add(testutil.MustSquare(t, "f3")).Add(testutil.MustSquare(t, "h3"))
	testutil.AssertEqual(t, got, want)
}

func TestSessionInCheck(t *testing.T) {
	s := NewSession()
	testutil.AssertFalse(t, s.InCheck())
	for _, text := range []string{"e2-e4", "f7-f6", "d1-h5"} {
		if _, err := s.MoveText(context.Background(), text); err != nil {
			t.Fatalf("MoveText(%s) error: %v", text, err)
		}
	}
	testutil.AssertTrue(t, s.InCheck())
}

func TestSessionLogging(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(WithLogger(trace.NewLogger(&buf, "text", 2)))

	if _, err := s.MoveText(context.Background(), "e2-e4"); err != nil {
		t.Fatalf("MoveText(e2-e4) error: %v", err)
	}
	if _, err := s.MoveText(context.Background(), "e2-e4"); err == nil {
		t.Fatal("second e2-e4 should be rejected")
	}

	out := buf.String()
	for _, want := range []string{"move applied", "move=e2-e4", "move rejected", `reason="no piece on e2"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionContextLoggerWins(t *testing.T) {
	var sessionLog, ctxLog bytes.Buffer
	s := NewSession(WithLogger(trace.NewLogger(&sessionLog, "text", 2)))
	ctx := trace.WithLogger(context.Background(), trace.NewLogger(&ctxLog, "json", 2))

	if _, err := s.MoveText(ctx, "d2-d4"); err != nil {
		t.Fatalf("MoveText(d2-d4) error: %v", err)
	}
	testutil.AssertEqual(t, sessionLog.Len(), 0)
	testutil.AssertTrue(t, strings.Contains(ctxLog.String(), `"msg":"move applied"`))
}

func TestSessionConcurrentReaders(t *testing.T) {
	s := NewSession()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Snapshot()
				s.Status()
				s.PieceAt(chess.Sq(4, 0))
			}
		}()
	}

	for _, text := range []string{"e2-e4", "e7-e5", "g1-f3", "b8-c6"} {
		if _, err := s.MoveText(ctx, text); err != nil {
			t.Errorf("MoveText(%s) error: %v", text, err)
		}
	}
	wg.Wait()
	testutil.AssertEqual(t, len(s.History()), 4)
}
