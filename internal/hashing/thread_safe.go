package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ThreadSafePerftTable wraps PerftTable with mutex protection so divide
// workers can share one table.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.RWMutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the stored count for the position on b at depth.
func (t *ThreadSafePerftTable) Lookup(b *chess.Board, depth int) (uint64, bool) {
	key := entryKey{PositionKey(b), depth}
	// lookup counts hits, so it needs the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.lookup(key)
}

// Store records the count for the position on b at depth.
func (t *ThreadSafePerftTable) Store(b *chess.Board, depth int, nodes uint64) {
	key := entryKey{PositionKey(b), depth}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.store(key, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns how many lookups found an entry.
func (t *ThreadSafePerftTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}

// LoadFrom copies entries from an existing table. Call before concurrent use.
func (t *ThreadSafePerftTable) LoadFrom(other *PerftTable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, nodes := range other.entries {
		t.table.entries[key] = nodes
	}
}
