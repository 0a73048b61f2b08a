package chess

import (
	"fmt"
	"strings"
)

// CastlingRights records which castles a side may still make. Rights are only
// ever cleared during a game, never re-granted.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed Squares[file][rank] with a1 at [0][0].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The full-move number, incremented after Black moves.
	MoveNumber uint

	// Remaining castling rights, indexed by Colour.
	Castling [2]CastlingRights

	// Is en passant capture possible? If so EPFile holds the file of the
	// pawn that has just advanced two squares.
	EnPassant bool
	EPFile    int

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][BackRank(White)] = W(backRank[file])
		b.Squares[file][PawnRank(White)] = W(Pawn)
		b.Squares[file][PawnRank(Black)] = B(Pawn)
		b.Squares[file][BackRank(Black)] = B(backRank[file])
	}

	b.Castling = [2]CastlingRights{
		White: {Kingside: true, Queenside: true},
		Black: {Kingside: true, Queenside: true},
	}

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPFile = 0
	b.HalfmoveClock = 0
}

// Get returns the piece on the square, or Empty if it is empty or off the board.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		return Empty
	}
	return b.Squares[s.File][s.Rank]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(s Square, piece Piece) {
	if s.Valid() {
		b.Squares[s.File][s.Rank] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// KingSquare finds the king of the given colour.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank] == king {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// CountPieces returns the number of pieces of the given colour on the board.
func (b *Board) CountPieces(colour Colour) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if p != Empty && ExtractColour(p) == colour {
				n++
			}
		}
	}
	return n
}

// String renders the board with rank 8 at the top followed by the auxiliary
// game state.
func (b *Board) String() string {
	const sep = "  +---+---+---+---+---+---+---+---+"
	var sb strings.Builder
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	sb.WriteString(sep + "\n")
	for rank := BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%c |", RankBase+rank)
		for file := 0; file < BoardSize; file++ {
			fmt.Fprintf(&sb, " %c |", b.Squares[file][rank].Letter())
		}
		fmt.Fprintf(&sb, " %c\n", RankBase+rank)
		sb.WriteString(sep + "\n")
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	fmt.Fprintf(&sb, "Turn: %s\n", b.ToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", b.castlingString())
	if b.EnPassant {
		fmt.Fprintf(&sb, "En passant: %c-file\n", FileBase+b.EPFile)
	} else {
		sb.WriteString("En passant: -\n")
	}
	fmt.Fprintf(&sb, "Move number: %d\n", b.MoveNumber)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", b.HalfmoveClock)
	return sb.String()
}

// castlingString returns the rights in the familiar KQkq form, or "-".
func (b *Board) castlingString() string {
	var s []byte
	if b.Castling[White].Kingside {
		s = append(s, 'K')
	}
	if b.Castling[White].Queenside {
		s = append(s, 'Q')
	}
	if b.Castling[Black].Kingside {
		s = append(s, 'k')
	}
	if b.Castling[Black].Queenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}
