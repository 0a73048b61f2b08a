// Package engine provides chess move validation and board manipulation.
package engine

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/trace"
)

// ApplyMove validates the move from one square to another for the side to
// move and, if it is legal, applies it to the board. On rejection the board
// is left exactly as it was and the returned error wraps ErrMoveRejected or
// ErrInvalidSquare.
func ApplyMove(ctx context.Context, board *chess.Board, from, to chess.Square) (chess.Move, error) {
	logger := trace.FromContext(ctx)

	if rej := checkLegal(board, from, to); rej != nil {
		rej.Ply = Ply(board)
		logger.Info("move rejected",
			"from", from.String(),
			"to", to.String(),
			"reason", rej.Reason)
		return chess.Move{}, rej
	}

	u := makeMove(board, from, to)
	logger.Debug("move applied",
		"move", u.move.String(),
		"class", u.move.Class.String(),
		"captured", u.move.Captured.String(),
		"halfmove_clock", board.HalfmoveClock,
		"to_move", board.ToMove.String())
	return u.move, nil
}

// Ply returns the 1-based number of the ply about to be played.
func Ply(board *chess.Board) int {
	ply := 2*int(board.MoveNumber) - 1
	if board.ToMove == chess.Black {
		ply++
	}
	return ply
}

// undo holds everything needed to take a move back exactly.
type undo struct {
	move chess.Move

	// Where the captured piece stood; differs from move.To for en passant.
	capturedAt chess.Square

	castled          bool
	rookFrom, rookTo chess.Square

	castling   [2]chess.CastlingRights
	enPassant  bool
	epFile     int
	halfmove   uint
	moveNumber uint
	toMove     chess.Colour
}

// makeMove applies a move without validating it and returns the record
// needed by unmakeMove.
func makeMove(board *chess.Board, from, to chess.Square) undo {
	piece := board.Get(from)
	captured := board.Get(to)
	colour := chess.ExtractColour(piece)
	kind := chess.ExtractPiece(piece)

	u := undo{
		capturedAt: to,
		castling:   board.Castling,
		enPassant:  board.EnPassant,
		epFile:     board.EPFile,
		halfmove:   board.HalfmoveClock,
		moveNumber: board.MoveNumber,
		toMove:     board.ToMove,
	}
	move := chess.Move{From: from, To: to, Piece: piece, Captured: captured, Class: chess.PieceMove}

	updateCastlingRights(board, piece, from, captured, to)

	// Fifty-move rule counter
	if kind == chess.Pawn || captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	board.Set(from, chess.Empty)
	board.Set(to, piece)

	board.EnPassant = false
	board.EPFile = 0

	if kind == chess.Pawn {
		move.Class = chess.PawnMove

		if to.Rank == chess.PromotionRank(colour) {
			queen := chess.MakeColouredPiece(colour, chess.Queen)
			board.Set(to, queen)
			move.Class = chess.PawnMoveWithPromotion
			move.PromotedTo = queen
		}

		// A diagonal step onto an empty square is an en passant capture.
		if captured == chess.Empty && from.File != to.File {
			victim := chess.Sq(to.File, from.Rank)
			u.capturedAt = victim
			move.Captured = board.Get(victim)
			move.Class = chess.EnPassantPawnMove
			board.Set(victim, chess.Empty)
		}

		if abs(to.Rank-from.Rank) == 2 {
			board.EnPassant = true
			board.EPFile = from.File
		}
	}

	if isCastle(piece, from, to) {
		u.castled = true
		u.rookFrom, u.rookTo = castlingRookSquares(from, to)
		board.Set(u.rookTo, board.Get(u.rookFrom))
		board.Set(u.rookFrom, chess.Empty)
		if to.File > from.File {
			move.Class = chess.KingsideCastle
		} else {
			move.Class = chess.QueensideCastle
		}
	}

	if board.ToMove == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()

	u.move = move
	return u
}

// unmakeMove restores the board to its state before the move recorded in u.
func unmakeMove(board *chess.Board, u undo) {
	move := u.move

	if u.castled {
		board.Set(u.rookFrom, board.Get(u.rookTo))
		board.Set(u.rookTo, chess.Empty)
	}

	board.Set(move.To, chess.Empty)
	board.Set(move.From, move.Piece)
	if move.Captured != chess.Empty {
		board.Set(u.capturedAt, move.Captured)
	}

	board.Castling = u.castling
	board.EnPassant = u.enPassant
	board.EPFile = u.epFile
	board.HalfmoveClock = u.halfmove
	board.MoveNumber = u.moveNumber
	board.ToMove = u.toMove
}
