package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	found := false
	forEachLegalMove(board, func(from, to chess.Square) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves returns every legal move for the side to move, ordered by source
// square index and then destination square index.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(board, func(from, to chess.Square) bool {
		u := makeMove(board, from, to)
		moves = append(moves, u.move)
		unmakeMove(board, u)
		return true
	})
	return moves
}

// LegalDestinations returns the squares the piece on from may legally move to.
// It is empty when from does not hold a piece of the side to move.
func LegalDestinations(board *chess.Board, from chess.Square) chess.SquareSet {
	piece := board.Get(from)
	if piece == chess.Empty || chess.ExtractColour(piece) != board.ToMove {
		return 0
	}
	var legal chess.SquareSet
	for _, to := range destinations(board, from, false).Squares() {
		if checkKingSafety(board, from, to) == nil {
			legal = legal.Add(to)
		}
	}
	return legal
}

// forEachLegalMove calls fn for each legal move of the side to move until fn
// returns false. fn may play and take back moves but must leave the board as
// it found it.
func forEachLegalMove(board *chess.Board, fn func(from, to chess.Square) bool) {
	forEachPiece(board, board.ToMove, func(from chess.Square) bool {
		for _, to := range destinations(board, from, false).Squares() {
			if checkKingSafety(board, from, to) != nil {
				continue
			}
			if !fn(from, to) {
				return false
			}
		}
		return true
	})
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	forEachLegalMove(board, func(from, to chess.Square) bool {
		if depth == 1 {
			nodes++
			return true
		}
		u := makeMove(board, from, to)
		nodes += Perft(board, depth-1)
		unmakeMove(board, u)
		return true
	})
	return nodes
}
