// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents either a bare piece kind (Pawn..King) or a coloured piece
// built with MakeColouredPiece. Empty is the zero value and marks an
// unoccupied square.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return colouredPiece >> PieceShift
}

// IsColoured reports whether p is a coloured piece rather than Empty or a bare kind.
func (p Piece) IsColoured() bool {
	return p >= 1<<PieceShift
}

// Kind returns the piece kind of a coloured piece, or p itself for bare kinds.
func (p Piece) Kind() Piece {
	if p.IsColoured() {
		return ExtractPiece(p)
	}
	return p
}

var kindNames = [...]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece, e.g. "White Queen".
func (p Piece) String() string {
	kind := p.Kind()
	if kind < 0 || int(kind) >= len(kindNames) {
		return "Unknown"
	}
	if !p.IsColoured() {
		return kindNames[kind]
	}
	return ExtractColour(p).String() + " " + kindNames[kind]
}

// Letter returns the single letter representation of a piece: uppercase for
// White, lowercase for Black, uppercase for bare kinds and a space for Empty.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	kind := p.Kind()
	if kind < 0 || int(kind) >= len(letters) {
		return '?'
	}
	letter := letters[kind]
	if p.IsColoured() && ExtractColour(p) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns a short description of the move class.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "pawn move"
	case PawnMoveWithPromotion:
		return "promotion"
	case EnPassantPawnMove:
		return "en passant"
	case PieceMove:
		return "piece move"
	case KingsideCastle:
		return "kingside castle"
	case QueensideCastle:
		return "queenside castle"
	}
	return "unknown"
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'

	KingFile          = 4
	KingsideRookFile  = BoardSize - 1
	QueensideRookFile = 0
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// BackRank returns the home rank index of the given colour: 0 for White, 7 for Black.
func BackRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of the given colour start on.
func PawnRank(colour Colour) int {
	return BackRank(colour) + ColourOffset(colour)
}

// PromotionRank returns the rank index on which pawns of the given colour promote.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}

// EnPassantRank returns the rank index a pawn of the given colour lands on
// when capturing en passant.
func EnPassantRank(colour Colour) int {
	return BackRank(colour) + 5*ColourOffset(colour)
}
