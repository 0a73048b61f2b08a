package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/trace"
)

// runPerft counts the legal move tree from the initial position.
func runPerft(ctx context.Context, cfg *config.Config) error {
	out := cfg.OutputFile
	board := engine.NewGame()
	start := time.Now()

	var (
		cache engine.NodeCache
		table *hashing.ThreadSafePerftTable
	)
	if cfg.PerftHash > 0 {
		table = hashing.NewThreadSafePerftTable(cfg.PerftHash)
		cache = table
	}

	var nodes uint64
	if cfg.PerftDivide {
		entries := engine.DivideCached(board, cfg.PerftDepth, cfg.PerftWorkers, cache)
		for _, e := range entries {
			fmt.Fprintf(out, "%s: %d\n", e.Move, e.Nodes)
		}
		nodes = engine.TotalNodes(entries)
		fmt.Fprintf(out, "\nMoves: %d\n", len(entries))
	} else {
		nodes = engine.PerftCached(board, cfg.PerftDepth, cache)
	}
	fmt.Fprintf(out, "Nodes: %d\n", nodes)

	logger := trace.FromContext(ctx)
	if table != nil {
		logger.Debug("transposition table",
			"entries", table.Len(),
			"hits", table.Hits(),
			"full", table.IsFull())
	}
	logger.Info("perft finished",
		"depth", cfg.PerftDepth,
		"divide", cfg.PerftDivide,
		"workers", cfg.PerftWorkers,
		"nodes", nodes,
		"elapsed", time.Since(start).String())
	return nil
}
