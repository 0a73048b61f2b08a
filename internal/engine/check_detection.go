package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the side to move has its king attacked.
func IsInCheck(board *chess.Board) bool {
	return IsColourInCheck(board, board.ToMove)
}

// IsColourInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsColourInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour threatens sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	found := false
	forEachPiece(board, byColour, func(from chess.Square) bool {
		found = destinations(board, from, true).Has(sq)
		return !found
	})
	return found
}

// AttackedSquares returns the union of squares threatened by byColour's pieces.
func AttackedSquares(board *chess.Board, byColour chess.Colour) chess.SquareSet {
	var attacked chess.SquareSet
	forEachPiece(board, byColour, func(from chess.Square) bool {
		attacked = attacked.Union(destinations(board, from, true))
		return true
	})
	return attacked
}

// forEachPiece calls fn for every square holding a piece of the given colour,
// in ascending square index order, until fn returns false.
func forEachPiece(board *chess.Board, colour chess.Colour, fn func(sq chess.Square) bool) {
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		sq := chess.SquareFromIndex(i)
		piece := board.Get(sq)
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}
		if !fn(sq) {
			return
		}
	}
}
