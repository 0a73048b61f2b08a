// Package config provides configuration for the chess rules front-end.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogFormat selects the structured log encoding.
type LogFormat string

const (
	TextLog LogFormat = "text"
	JSONLog LogFormat = "json"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// Config holds all program configuration.
type Config struct {
	// Logging
	Verbosity int // 0=warnings, 1=rejections and results, 2=every move
	LogFormat LogFormat
	LogFile   io.Writer

	// Interactive play
	Input      io.Reader
	OutputFile io.Writer
	ShowBoard  bool
	ScriptFile string // Read moves from this file instead of Input

	// Game records; nothing is recorded when RecordFile is nil.
	RecordFile    io.Writer
	RecordJSON    bool
	MaxLineLength int

	// Move tree counting; PerftDepth 0 means play interactively.
	PerftDepth   int
	PerftDivide  bool
	PerftWorkers int
	PerftHash    int // Transposition table entries; 0 counts without a table
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:     0,
		LogFormat:     TextLog,
		LogFile:       os.Stderr,
		Input:         os.Stdin,
		OutputFile:    os.Stdout,
		ShowBoard:     true,
		MaxLineLength: 80,
		PerftWorkers:  1,
	}
}

// Validate checks the configuration for values the front-end cannot use.
// Every returned error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return invalid("verbosity %d is negative", c.Verbosity)
	}
	switch c.LogFormat {
	case TextLog, JSONLog:
	default:
		return invalid("unknown log format %q", c.LogFormat)
	}
	if c.PerftDepth < 0 || c.PerftDepth > MaxPerftDepth {
		return invalid("perft depth %d outside 0..%d", c.PerftDepth, MaxPerftDepth)
	}
	if c.MaxLineLength < 1 {
		return invalid("line length %d must be at least 1", c.MaxLineLength)
	}
	if c.PerftHash < 0 {
		return invalid("perft hash size %d is negative", c.PerftHash)
	}
	if c.PerftWorkers < 1 {
		return invalid("perft workers %d must be at least 1", c.PerftWorkers)
	}
	if c.PerftDivide && c.PerftDepth == 0 {
		return invalid("divide requires a perft depth")
	}
	if c.LogFile == nil || c.OutputFile == nil {
		return invalid("output streams must be set")
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errors.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
