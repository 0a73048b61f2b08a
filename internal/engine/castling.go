package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingDestinations returns the two-file king steps currently available to
// the king on sq. Only occupancy is checked here; whether the king is in or
// passes through check is left to the legality filter.
func castlingDestinations(board *chess.Board, sq chess.Square, colour chess.Colour) chess.SquareSet {
	home := chess.Sq(chess.KingFile, chess.BackRank(colour))
	if sq != home {
		return 0
	}

	rights := board.Castling[colour]
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	var reached chess.SquareSet
	if rights.Kingside {
		rookSq := chess.Sq(chess.KingsideRookFile, home.Rank)
		target := home.Offset(2, 0)
		path := castRay(board, home, colour, direction{1, 0}, 2, landQuiet)
		if board.Get(rookSq) == rook && path.Has(target) {
			reached = reached.Add(target)
		}
	}
	if rights.Queenside {
		rookSq := chess.Sq(chess.QueensideRookFile, home.Rank)
		target := home.Offset(-2, 0)
		kingPath := castRay(board, home, colour, direction{-1, 0}, 2, landQuiet)
		// The rook also crosses the b-file square the king never visits.
		rookPath := castRay(board, rookSq, colour, direction{1, 0}, 1, landQuiet)
		if board.Get(rookSq) == rook && kingPath.Has(target) && rookPath.Has(rookSq.Offset(1, 0)) {
			reached = reached.Add(target)
		}
	}
	return reached
}

// isCastle reports whether moving piece from one square to another is a castle.
func isCastle(piece chess.Piece, from, to chess.Square) bool {
	return piece != chess.Empty &&
		chess.ExtractPiece(piece) == chess.King &&
		from.Rank == to.Rank &&
		abs(to.File-from.File) == 2
}

// castlingRookSquares returns where the rook starts and lands for the castle
// whose king travels from one square to another.
func castlingRookSquares(from, to chess.Square) (rookFrom, rookTo chess.Square) {
	if to.File > from.File {
		return chess.Sq(chess.KingsideRookFile, from.Rank), to.Offset(-1, 0)
	}
	return chess.Sq(chess.QueensideRookFile, from.Rank), to.Offset(1, 0)
}

// updateCastlingRights removes castling rights when a king or rook moves, or
// when a rook is captured on its original corner.
func updateCastlingRights(board *chess.Board, piece chess.Piece, from chess.Square, captured chess.Piece, to chess.Square) {
	colour := chess.ExtractColour(piece)
	switch chess.ExtractPiece(piece) {
	case chess.King:
		board.Castling[colour] = chess.CastlingRights{}
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, from)
	}

	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), to)
	}
}

// updateCastlingRightsForRook clears the right tied to a rook leaving (or
// being taken on) the corner square sq.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != chess.BackRank(colour) {
		return
	}
	switch sq.File {
	case chess.KingsideRookFile:
		board.Castling[colour].Kingside = false
	case chess.QueensideRookFile:
		board.Castling[colour].Queenside = false
	}
}
