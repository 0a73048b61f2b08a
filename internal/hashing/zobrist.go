// Package hashing provides Zobrist position keys and a transposition table
// for perft counts.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist keys. They come from a fixed seed so keys are stable between runs.
var (
	pieceKeys    [chess.NumPieceValues][2][64]uint64
	blackToMove  uint64
	castlingKeys [2][2]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5eed_c0de)) //nolint:gosec // G404: keys need not be unpredictable
	for p := range pieceKeys {
		for c := range pieceKeys[p] {
			for sq := range pieceKeys[p][c] {
				pieceKeys[p][c][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
	for c := range castlingKeys {
		castlingKeys[c][0] = rng.Uint64()
		castlingKeys[c][1] = rng.Uint64()
	}
	for f := range epFileKeys {
		epFileKeys[f] = rng.Uint64()
	}
}

// PositionKey returns the Zobrist key of the position on b: piece placement,
// side to move, castling rights and en passant file. The clocks are not part
// of the key.
func PositionKey(b *chess.Board) uint64 {
	var key uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := b.Squares[file][rank]
			if piece == chess.Empty {
				continue
			}
			sq := chess.Sq(file, rank)
			key ^= pieceKeys[chess.ExtractPiece(piece)][chess.ExtractColour(piece)][sq.Index()]
		}
	}

	if b.ToMove == chess.Black {
		key ^= blackToMove
	}
	for c, rights := range b.Castling {
		if rights.Kingside {
			key ^= castlingKeys[c][0]
		}
		if rights.Queenside {
			key ^= castlingKeys[c][1]
		}
	}
	if b.EnPassant {
		key ^= epFileKeys[b.EPFile]
	}
	return key
}
