package chess

// Move records a move that has been applied to a board.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The coloured piece that moved.
	Piece Piece

	// The coloured piece captured (Empty if no capture). For en passant this
	// is the pawn removed from beside the destination.
	Captured Piece

	// The coloured piece a pawn promoted to (Empty if not a promotion).
	PromotedTo Piece
}

// String returns the move in coordinate notation, e.g. "e2-e4".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// IsCapture reports whether the move removed an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsCastle reports whether the move was a castle.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}
