package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// GameStatus classifies a position for the side to move.
type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "In progress"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case FiftyMoveDraw:
		return "Fifty-move rule"
	}
	return "Unknown"
}

// IsOver reports whether the status ends the game.
func (s GameStatus) IsOver() bool {
	return s != InProgress
}

// Status evaluates the position for the side to move. A side with no legal
// move is checkmated when in check and stalemated otherwise; failing that the
// fifty-move rule is tested. Threefold repetition and insufficient material
// are not evaluated.
func Status(board *chess.Board) GameStatus {
	if !HasLegalMoves(board) {
		if IsInCheck(board) {
			return Checkmate
		}
		return Stalemate
	}
	if board.HalfmoveClock >= FiftyMoveLimit {
		return FiftyMoveDraw
	}
	return InProgress
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board) && !HasLegalMoves(board)
}

// NewGame returns a board set up in the standard starting position with
// White to move.
func NewGame() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// PieceAt returns the piece on sq for display. ok is false when the square is
// empty or off the board.
func PieceAt(board *chess.Board, sq chess.Square) (piece chess.Piece, ok bool) {
	piece = board.Get(sq)
	return piece, piece != chess.Empty
}
