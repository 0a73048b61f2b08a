package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsValidMove checks a move against the movement rules only: the start square
// must hold a piece of the side to move, the destination must not hold one of
// its own pieces, and the destination must be reachable. It does not care
// whether the king would end up in check.
func IsValidMove(board *chess.Board, from, to chess.Square) bool {
	return validateMove(board, from, to) == nil
}

// IsLegal reports whether ApplyMove would accept the move.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	return checkLegal(board, from, to) == nil
}

// WouldCauseSelfCheck plays the move without validation, reports whether the
// side that moved is left in check, and then takes the move back.
func WouldCauseSelfCheck(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece == chess.Empty {
		return false
	}
	colour := chess.ExtractColour(piece)

	u := makeMove(board, from, to)
	inCheck := IsColourInCheck(board, colour)
	unmakeMove(board, u)
	return inCheck
}

// validateMove is the error-reporting form of IsValidMove.
func validateMove(board *chess.Board, from, to chess.Square) *errors.MoveError {
	if !from.Valid() || !to.Valid() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, From: from, To: to, Reason: "square off the board"}
	}
	if from == to {
		return errors.Rejected(from, to, "start and end squares are the same")
	}

	piece := board.Get(from)
	if piece == chess.Empty {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, From: from, To: to, Reason: fmt.Sprintf("no piece on %s", from)}
	}

	colour := chess.ExtractColour(piece)
	if colour != board.ToMove {
		return errors.Rejected(from, to, fmt.Sprintf("it is %s's turn", board.ToMove))
	}

	if target := board.Get(to); target != chess.Empty && chess.ExtractColour(target) == colour {
		return errors.Rejected(from, to, "destination holds a piece of the same colour")
	}

	if !destinations(board, from, false).Has(to) {
		return errors.Rejected(from, to, fmt.Sprintf("%s cannot reach %s", piece, to))
	}
	return nil
}

// checkLegal runs the full legality filter: movement rules, the castling
// restrictions, and self-check avoidance.
func checkLegal(board *chess.Board, from, to chess.Square) *errors.MoveError {
	if rej := validateMove(board, from, to); rej != nil {
		return rej
	}
	return checkKingSafety(board, from, to)
}

// checkKingSafety applies the check-related rules to a move that already
// satisfies the movement rules.
func checkKingSafety(board *chess.Board, from, to chess.Square) *errors.MoveError {
	if isCastle(board.Get(from), from, to) {
		if IsInCheck(board) {
			return errors.Rejected(from, to, "cannot castle while in check")
		}
		passing := from.Offset(sign(to.File-from.File), 0)
		if WouldCauseSelfCheck(board, from, passing) {
			return errors.Rejected(from, to, "cannot castle through check")
		}
	}

	if WouldCauseSelfCheck(board, from, to) {
		return errors.Rejected(from, to, "move would leave the king in check")
	}
	return nil
}
