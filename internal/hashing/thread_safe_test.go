package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestThreadSafePerftTable_Concurrent(t *testing.T) {
	table := NewThreadSafePerftTable(0)
	board := engine.NewGame()

	const numWorkers = 10
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(depth int) {
			defer wg.Done()
			b := board.Copy()
			for j := 0; j < 50; j++ {
				table.Store(b, depth, uint64(depth))
				table.Lookup(b, depth)
			}
		}(i)
	}
	wg.Wait()

	testutil.AssertEqual(t, table.Len(), numWorkers)
	testutil.AssertEqual(t, table.Hits(), numWorkers*50)
	for depth := 0; depth < numWorkers; depth++ {
		nodes, ok := table.Lookup(board, depth)
		testutil.AssertTrue(t, ok, "depth %d stored", depth)
		testutil.AssertEqual(t, nodes, uint64(depth))
	}
}

func TestThreadSafePerftTable_Capacity(t *testing.T) {
	table := NewThreadSafePerftTable(3)
	board := engine.NewGame()
	for depth := 0; depth < 5; depth++ {
		table.Store(board, depth, 1)
	}
	testutil.AssertEqual(t, table.Len(), 3)
	testutil.AssertTrue(t, table.IsFull())
}

func TestThreadSafePerftTable_LoadFrom(t *testing.T) {
	src := NewPerftTable(0)
	board := engine.NewGame()
	src.Store(board, 2, 400)
	src.Store(testutil.NewGameAfter(t, "e2-e4"), 2, 600)

	table := NewThreadSafePerftTable(0)
	table.LoadFrom(src)
	testutil.AssertEqual(t, table.Len(), 2)

	nodes, ok := table.Lookup(testutil.NewGameAfter(t, "e2-e4"), 2)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, nodes, uint64(600))
}

func TestDivideCachedSharedTable(t *testing.T) {
	board := engine.NewGame()
	want := engine.Divide(board, 3, 1)

	table := NewThreadSafePerftTable(0)
	got := engine.DivideCached(board, 3, 4, table)
	testutil.AssertEqual(t, got, want)
	testutil.AssertEqual(t, engine.TotalNodes(got), uint64(8902))
	testutil.AssertTrue(t, table.Len() > 0)
}
