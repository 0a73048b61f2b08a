// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Logging
	verbosity = flag.Int("v", 0, "Verbosity: 0=warnings, 1=rejected moves and results, 2=every move")
	logFile   = flag.String("log", "", "Write diagnostics to log file (default: stderr)")
	logFormat = flag.String("logformat", "text", "Log format: text or json")

	// Interactive play
	noBoard    = flag.Bool("noboard", false, "Don't print the board before each prompt")
	scriptFile = flag.String("script", "", "Read moves from this file instead of stdin")

	// Game records
	recordFile = flag.String("record", "", "Append a record of each game to this file")
	recordJSON = flag.Bool("json", false, "Write game records as JSON")
	lineLength = flag.Int("w", 80, "Maximum line length of text game records")

	// Move tree counting
	perftDepth  = flag.Int("perft", 0, "Count legal move sequences to this depth from the initial position")
	perftDivide = flag.Bool("divide", false, "With -perft, list the count below each first move")
	workers     = flag.Int("workers", 1, "Number of goroutines used by -perft -divide")
	perftHash   = flag.Int("hash", 0, "Transposition table entries used by -perft (0 = none)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.LogFormat = config.LogFormat(*logFormat)
	cfg.ShowBoard = !*noBoard
	cfg.ScriptFile = *scriptFile
	cfg.RecordJSON = *recordJSON
	cfg.MaxLineLength = *lineLength
	cfg.PerftDepth = *perftDepth
	cfg.PerftDivide = *perftDivide
	cfg.PerftWorkers = *workers
	cfg.PerftHash = *perftHash
}
