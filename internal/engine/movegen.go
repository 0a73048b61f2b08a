package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// direction is a single step vector in files and ranks.
type direction struct {
	df, dr int
}

var (
	cardinalDirs = []direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalDirs = []direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	knightDirs   = []direction{{-2, -1}, {-1, -2}, {-2, 1}, {-1, 2}, {2, -1}, {1, -2}, {2, 1}, {1, 2}}
	royalDirs    = append(append([]direction{}, cardinalDirs...), diagonalDirs...)
)

// movement describes how a non-pawn piece moves: its step vectors and how
// many times each may be repeated.
type movement struct {
	dirs  []direction
	steps int
}

var movements = [chess.NumPieceValues]movement{
	chess.King:   {royalDirs, 1},
	chess.Queen:  {royalDirs, chess.BoardSize - 1},
	chess.Rook:   {cardinalDirs, chess.BoardSize - 1},
	chess.Bishop: {diagonalDirs, chess.BoardSize - 1},
	chess.Knight: {knightDirs, 1},
}

// landing restricts which squares a ray may end on.
type landing int

const (
	landAny     landing = iota // empty square or opposing piece
	landCapture                // opposing piece or the en passant target (pawn captures)
	landQuiet                  // empty square only (pawn advances, castling paths)
)

// castRay walks from start along dir for at most steps squares on behalf of a
// piece of the given colour. The ray stops at the board edge and at the first
// occupied square, which is included only when it holds an opposing piece and
// the landing mode allows a capture.
func castRay(board *chess.Board, start chess.Square, colour chess.Colour, dir direction, steps int, mode landing) chess.SquareSet {
	var reached chess.SquareSet
	for i := 1; i <= steps; i++ {
		sq := start.Offset(dir.df*i, dir.dr*i)
		if !sq.Valid() {
			break
		}

		occupant := board.Get(sq)
		if occupant == chess.Empty {
			if mode == landCapture {
				if isEnPassantTarget(board, colour, sq) {
					reached = reached.Add(sq)
				}
				break
			}
			reached = reached.Add(sq)
			continue
		}

		if chess.ExtractColour(occupant) != colour && mode != landQuiet {
			reached = reached.Add(sq)
		}
		break
	}
	return reached
}

// isEnPassantTarget reports whether a pawn of the given colour may capture en
// passant onto sq. Only the side to move can use the target.
func isEnPassantTarget(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	return board.EnPassant &&
		colour == board.ToMove &&
		sq.File == board.EPFile &&
		sq.Rank == chess.EnPassantRank(colour)
}

// PossibleDestinations returns every square the piece on sq can move to by its
// movement rules, without regard to whether the move would leave its own king
// in check. With attackingOnly set, pawn advances and castling are left out so
// the result is the set of squares the piece threatens.
func PossibleDestinations(board *chess.Board, sq chess.Square, attackingOnly bool) (chess.SquareSet, error) {
	if !sq.Valid() {
		return 0, &errors.MoveError{Err: errors.ErrInvalidSquare, Reason: fmt.Sprintf("square %v is off the board", sq)}
	}
	if board.Get(sq) == chess.Empty {
		return 0, &errors.MoveError{Err: errors.ErrInvalidSquare, Reason: fmt.Sprintf("no piece on %s", sq)}
	}
	return destinations(board, sq, attackingOnly), nil
}

// destinations is PossibleDestinations for a square known to hold a piece.
func destinations(board *chess.Board, sq chess.Square, attackingOnly bool) chess.SquareSet {
	piece := board.Get(sq)
	colour := chess.ExtractColour(piece)
	kind := chess.ExtractPiece(piece)

	if kind == chess.Pawn {
		return pawnDestinations(board, sq, colour, attackingOnly)
	}

	var reached chess.SquareSet
	m := movements[kind]
	for _, dir := range m.dirs {
		reached = reached.Union(castRay(board, sq, colour, dir, m.steps, landAny))
	}

	if kind == chess.King && !attackingOnly {
		reached = reached.Union(castlingDestinations(board, sq, colour))
	}
	return reached
}

// pawnDestinations handles the pawn's asymmetric moves: quiet advances
// straight ahead and captures on the forward diagonals.
func pawnDestinations(board *chess.Board, sq chess.Square, colour chess.Colour, attackingOnly bool) chess.SquareSet {
	forward := chess.ColourOffset(colour)

	var reached chess.SquareSet
	for _, df := range [...]int{-1, 1} {
		reached = reached.Union(castRay(board, sq, colour, direction{df, forward}, 1, landCapture))
	}

	if !attackingOnly {
		steps := 1
		if sq.Rank == chess.PawnRank(colour) {
			steps = 2
		}
		reached = reached.Union(castRay(board, sq, colour, direction{0, forward}, steps, landQuiet))
	}
	return reached
}
