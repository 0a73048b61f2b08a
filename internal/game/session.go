// Package game owns a single game in progress and serializes access to it.
package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/trace"
)

// Session holds the board of one game. All methods are safe for concurrent
// use; the board itself is never handed out, only copies of it.
type Session struct {
	mu      sync.Mutex
	board   *chess.Board
	history []chess.Move
	status  engine.GameStatus
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used when a call's context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession starts a game from the standard initial position.
func NewSession(opts ...Option) *Session {
	s := &Session{
		board:  engine.NewGame(),
		status: engine.InProgress,
		logger: trace.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset starts a new game, discarding the current one.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = engine.NewGame()
	s.history = nil
	s.status = engine.InProgress
}

// PieceAt returns the piece on sq; ok is false for an empty square.
func (s *Session) PieceAt(sq chess.Square) (chess.Piece, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.PieceAt(s.board, sq)
}

// Move plays the move from one square to another for the side to move.
// Once the game has ended every move is refused with ErrGameOver.
func (s *Session) Move(ctx context.Context, from, to chess.Square) (chess.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = s.withLogger(ctx)
	if s.status.IsOver() {
		return chess.Move{}, &errors.MoveError{
			Err:    errors.ErrGameOver,
			From:   from,
			To:     to,
			Ply:    engine.Ply(s.board),
			Reason: s.status.String(),
		}
	}

	move, err := engine.ApplyMove(ctx, s.board, from, to)
	if err != nil {
		return chess.Move{}, err
	}
	s.history = append(s.history, move)

	s.status = engine.Status(s.board)
	if s.status.IsOver() {
		trace.FromContext(ctx).Info("game over",
			"status", s.status.String(),
			"plies", len(s.history),
			"to_move", s.board.ToMove.String())
	}
	return move, nil
}

// MoveText parses a coordinate move such as "e2-e4" and plays it.
func (s *Session) MoveText(ctx context.Context, text string) (chess.Move, error) {
	from, to, err := chess.ParseCoordinateMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	return s.Move(ctx, from, to)
}

// Status returns the state of the game for the side to move.
func (s *Session) Status() engine.GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ToMove returns the colour whose turn it is.
func (s *Session) ToMove() chess.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.ToMove
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.IsInCheck(s.board)
}

// Snapshot returns a copy of the current board.
func (s *Session) Snapshot() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Copy()
}

// History returns the moves played so far.
func (s *Session) History() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]chess.Move, len(s.history))
	copy(out, s.history)
	return out
}

// LegalDestinations returns where the piece on from may legally move.
func (s *Session) LegalDestinations(from chess.Square) chess.SquareSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.IsOver() {
		return 0
	}
	return engine.LegalDestinations(s.board, from)
}

// LegalMoves returns every legal move for the side to move.
func (s *Session) LegalMoves() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.IsOver() {
		return nil
	}
	return engine.LegalMoves(s.board)
}

// withLogger attaches the session logger unless ctx already carries one.
func (s *Session) withLogger(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if trace.FromContext(ctx) != trace.Discard() {
		return ctx
	}
	return trace.WithLogger(ctx, s.logger)
}
