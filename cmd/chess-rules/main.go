// chess-rules plays a game of chess from coordinate moves typed at a prompt
// and counts legal move trees.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/trace"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and input files
	setupLogFile(cfg)
	closeScript := setupScriptFile(cfg)
	closeRecord := setupRecordFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	err := run(context.Background(), cfg)
	closeRecord()
	closeScript()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to perft counting or interactive play.
func run(ctx context.Context, cfg *config.Config) error {
	logger := trace.NewLogger(cfg.LogFile, string(cfg.LogFormat), cfg.Verbosity)
	ctx = trace.WithLogger(ctx, logger)

	if cfg.PerftDepth > 0 {
		return runPerft(ctx, cfg)
	}
	return play(ctx, cfg)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupScriptFile replaces the input with the -script file, if given. The
// returned function closes it.
func setupScriptFile(cfg *config.Config) func() {
	if cfg.ScriptFile == "" {
		return func() {}
	}

	file, err := os.Open(cfg.ScriptFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening script file %s: %v\n", cfg.ScriptFile, err)
		os.Exit(1)
	}
	cfg.Input = file
	return func() { _ = file.Close() }
}

// setupRecordFile opens the -record file for appending. The returned function
// closes it.
func setupRecordFile(cfg *config.Config) func() {
	if *recordFile == "" {
		return func() {}
	}

	file, err := os.OpenFile(*recordFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: records are user-created files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening record file %s: %v\n", *recordFile, err)
		os.Exit(1)
	}
	cfg.RecordFile = file
	return func() { _ = file.Close() }
}

func usage() {
	printUsage(os.Stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(w, "Play chess by entering moves such as e2-e4, or count move trees with -perft.\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintf(w, "\nCommands at the move prompt:\n")
	fmt.Fprintf(w, "  e2-e4  Move the piece on e2 to e4 (castle by moving the king two squares)\n")
	fmt.Fprintf(w, "  moves  List the legal moves\n")
	fmt.Fprintf(w, "  board  Print the board\n")
	fmt.Fprintf(w, "  new    Start a new game\n")
	fmt.Fprintf(w, "  quit   Leave the program\n")
}
