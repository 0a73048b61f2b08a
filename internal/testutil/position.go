package testutil

import (
	"context"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Placement maps square names such as "e1" to the piece standing there.
type Placement map[string]chess.Piece

// MustSquare parses a square name and fails the test if it is malformed.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// BoardFromPlacement builds a board holding exactly the given pieces with
// toMove to play. Castling rights are granted for every king and rook still
// on its home square; en passant is unavailable and both clocks start fresh.
func BoardFromPlacement(t testing.TB, toMove chess.Colour, pieces Placement) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	board.ToMove = toMove
	for name, piece := range pieces {
		board.Set(MustSquare(t, name), piece)
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := chess.BackRank(colour)
		if board.Get(chess.Sq(chess.KingFile, rank)) != chess.MakeColouredPiece(colour, chess.King) {
			continue
		}
		rook := chess.MakeColouredPiece(colour, chess.Rook)
		board.Castling[colour] = chess.CastlingRights{
			Kingside:  board.Get(chess.Sq(chess.KingsideRookFile, rank)) == rook,
			Queenside: board.Get(chess.Sq(chess.QueensideRookFile, rank)) == rook,
		}
	}
	return board
}

// MustPlay applies coordinate moves like "e2-e4" in order and fails the test
// on the first one that is malformed or rejected.
func MustPlay(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		from, to, err := chess.ParseCoordinateMove(text)
		if err != nil {
			t.Fatalf("ParseCoordinateMove(%q) error: %v", text, err)
		}
		if _, err := engine.ApplyMove(context.Background(), board, from, to); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", text, err)
		}
	}
}

// NewGameAfter returns a board in the starting position with the given moves
// already played.
func NewGameAfter(t testing.TB, moves ...string) *chess.Board {
	t.Helper()
	board := engine.NewGame()
	MustPlay(t, board, moves...)
	return board
}
