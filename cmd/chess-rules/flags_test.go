package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// setFlags sets command-line flags for one test and restores them afterwards.
func setFlags(t *testing.T, values map[string]string) {
	t.Helper()
	for name, value := range values {
		name := name
		f := flag.Lookup(name)
		if f == nil {
			t.Fatalf("no flag -%s", name)
		}
		old := f.Value.String()
		if err := flag.Set(name, value); err != nil {
			t.Fatalf("flag.Set(%s, %s): %v", name, value, err)
		}
		t.Cleanup(func() { _ = flag.Set(name, old) })
	}
}

func TestApplyFlags(t *testing.T) {
	setFlags(t, map[string]string{
		"v":         "2",
		"logformat": "json",
		"noboard":   "true",
		"script":    "moves.txt",
		"perft":     "4",
		"divide":    "true",
		"workers":   "6",
		"json":      "true",
		"hash":      "4096",
		"w":         "60",
	})

	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertEqual(t, cfg.LogFormat, config.JSONLog)
	testutil.AssertFalse(t, cfg.ShowBoard)
	testutil.AssertEqual(t, cfg.ScriptFile, "moves.txt")
	testutil.AssertEqual(t, cfg.PerftDepth, 4)
	testutil.AssertTrue(t, cfg.PerftDivide)
	testutil.AssertEqual(t, cfg.PerftWorkers, 6)
	testutil.AssertEqual(t, cfg.PerftHash, 4096)
	testutil.AssertTrue(t, cfg.RecordJSON)
	testutil.AssertEqual(t, cfg.MaxLineLength, 60)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyFlagsDefaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Verbosity, 0)
	testutil.AssertEqual(t, cfg.LogFormat, config.TextLog)
	testutil.AssertTrue(t, cfg.ShowBoard)
	testutil.AssertEqual(t, cfg.PerftDepth, 0)
	testutil.AssertEqual(t, cfg.PerftWorkers, 1)
	testutil.AssertFalse(t, cfg.RecordJSON)
	testutil.AssertEqual(t, cfg.MaxLineLength, 80)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	defer flag.CommandLine.SetOutput(nil)

	for _, want := range []string{"Usage: chess-rules", "-perft", "-script", "-record", "moves  List the legal moves"} {
		testutil.AssertTrue(t, strings.Contains(buf.String(), want), "usage missing %q", want)
	}
}
