// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates an off-board coordinate or an empty source square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrMoveRejected indicates a move that violates chess rules.
	ErrMoveRejected = errors.New("move rejected")

	// ErrGameOver indicates a move was submitted after the game ended.
	ErrGameOver = errors.New("game over")

	// ErrParseFailure indicates unparseable move or square text.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Square is the minimal coordinate view MoveError needs. It is satisfied by
// chess.Square without importing the chess package.
type Square interface {
	String() string
}

// MoveError wraps a rejection with the move that caused it. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   Square // Source square (nil if not known)
	To     Square // Destination square (nil if not known)
	Ply    int    // Ply number where the error occurred (0 if not applicable)
	Reason string // Human readable rule that was violated
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != nil && e.To != nil {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Rejected builds a MoveError wrapping ErrMoveRejected.
func Rejected(from, to Square, reason string) *MoveError {
	return &MoveError{Err: ErrMoveRejected, From: from, To: to, Reason: reason}
}

// ParseError represents unparseable input together with what was expected.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The offending text
	Expected string // What was expected
}

// Error returns a formatted error message with the input and expectation.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
