package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// sq parses a square name, panicking on malformed input. Only for literals.
func sq(name string) chess.Square {
	s, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}

// squares builds a SquareSet from square names.
func squares(names ...string) chess.SquareSet {
	var set chess.SquareSet
	for _, n := range names {
		set = set.Add(sq(n))
	}
	return set
}

// boardWith places the given pieces on an empty board with toMove to play.
// Castling rights are granted where king and rook stand on their home squares.
func boardWith(toMove chess.Colour, pieces map[string]chess.Piece) *chess.Board {
	board := chess.NewBoard()
	board.ToMove = toMove
	for name, piece := range pieces {
		board.Set(sq(name), piece)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := chess.BackRank(colour)
		if board.Get(chess.Sq(chess.KingFile, rank)) != chess.MakeColouredPiece(colour, chess.King) {
			continue
		}
		rook := chess.MakeColouredPiece(colour, chess.Rook)
		board.Castling[colour].Kingside = board.Get(chess.Sq(chess.KingsideRookFile, rank)) == rook
		board.Castling[colour].Queenside = board.Get(chess.Sq(chess.QueensideRookFile, rank)) == rook
	}
	return board
}

// play applies coordinate moves and fails the test on the first rejection.
func play(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		from, to, err := chess.ParseCoordinateMove(text)
		if err != nil {
			t.Fatalf("ParseCoordinateMove(%q) error: %v", text, err)
		}
		if _, err := ApplyMove(context.Background(), board, from, to); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", text, err)
		}
	}
}

// gameAfter returns the starting position with moves already played.
func gameAfter(t testing.TB, moves ...string) *chess.Board {
	t.Helper()
	board := NewGame()
	play(t, board, moves...)
	return board
}
