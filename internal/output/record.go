package output

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameRecord is the move list of one game together with how it stands.
type GameRecord struct {
	Moves    []MoveRecord `json:"moves"`
	PlyCount int          `json:"plyCount"`
	Status   string       `json:"status"`
	Result   string       `json:"result"`
}

// MoveRecord describes one applied move.
type MoveRecord struct {
	MoveNumber uint   `json:"moveNumber"`
	Colour     string `json:"colour"` // "white" or "black"
	Move       string `json:"move"`   // coordinate notation, e.g. "e2-e4"
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Class      string `json:"class"`
}

// NewGameRecord builds the record of the moves in history, played from the
// initial position. toMove is the side to move after the last of them.
func NewGameRecord(history []chess.Move, status engine.GameStatus, toMove chess.Colour) *GameRecord {
	rec := &GameRecord{
		Moves:    make([]MoveRecord, 0, len(history)),
		PlyCount: len(history),
		Status:   status.String(),
		Result:   Result(status, toMove),
	}

	for i, m := range history {
		mr := MoveRecord{
			MoveNumber: uint(i/2 + 1),
			Colour:     colourName(chess.ExtractColour(m.Piece)),
			Move:       m.String(),
			Piece:      pieceTypeName(m.Piece),
			Class:      m.Class.String(),
		}
		if m.Captured != chess.Empty {
			mr.Captured = pieceTypeName(m.Captured)
		}
		if m.PromotedTo != chess.Empty {
			mr.Promotion = pieceTypeName(m.PromotedTo)
		}
		rec.Moves = append(rec.Moves, mr)
	}
	return rec
}

// Result returns the game result in the usual score notation: "1-0", "0-1",
// "1/2-1/2", or "*" while the game is unfinished.
func Result(status engine.GameStatus, toMove chess.Colour) string {
	switch status {
	case engine.Checkmate:
		if toMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case engine.Stalemate, engine.FiftyMoveDraw:
		return "1/2-1/2"
	}
	return "*"
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lowercase name of the kind of piece.
func pieceTypeName(p chess.Piece) string {
	switch chess.ExtractPiece(p) {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}
