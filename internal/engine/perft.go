package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// NodeCache stores perft counts of positions already visited. Implementations
// shared between divide workers must be safe for concurrent use.
type NodeCache interface {
	Lookup(board *chess.Board, depth int) (uint64, bool)
	Store(board *chess.Board, depth int, nodes uint64)
}

// PerftCached counts like Perft, reusing the counts of transposed positions
// held in cache. A nil cache counts without one.
func PerftCached(board *chess.Board, depth int, cache NodeCache) uint64 {
	if cache == nil || depth <= 1 {
		return Perft(board, depth)
	}
	if nodes, ok := cache.Lookup(board, depth); ok {
		return nodes
	}

	var nodes uint64
	forEachLegalMove(board, func(from, to chess.Square) bool {
		u := makeMove(board, from, to)
		nodes += PerftCached(board, depth-1, cache)
		unmakeMove(board, u)
		return true
	})
	cache.Store(board, depth, nodes)
	return nodes
}

// Divide counts the move tree to depth separately for every legal root move,
// spreading the root moves over the given number of workers. Each worker
// receives its own copy of the board. Entries follow LegalMoves order.
func Divide(board *chess.Board, depth, workers int) []DivideEntry {
	return DivideCached(board, depth, workers, nil)
}

// DivideCached is Divide with the workers sharing cache.
func DivideCached(board *chess.Board, depth, workers int, cache NodeCache) []DivideEntry {
	if depth < 1 {
		return nil
	}

	moves := LegalMoves(board)
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: PerftCached(item.Board, item.Depth, cache),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		for i, m := range moves {
			child := board.Copy()
			makeMove(child, m.From, m.To)
			pool.Submit(worker.WorkItem{Index: i, Move: m, Board: child, Depth: depth - 1})
		}
		pool.Close()
	}()

	entries := make([]DivideEntry, len(moves))
	for r := range pool.Results() {
		entries[r.Index] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
