package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// entryKey identifies a stored count: the same position counted to a
// different depth is a different entry.
type entryKey struct {
	position uint64
	depth    int
}

// PerftTable remembers the node counts of positions already counted.
type PerftTable struct {
	entries map[entryKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
}

// NewPerftTable creates an empty table. maxCapacity of 0 means unlimited
// capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for the position on b at depth.
func (t *PerftTable) Lookup(b *chess.Board, depth int) (uint64, bool) {
	return t.lookup(entryKey{PositionKey(b), depth})
}

func (t *PerftTable) lookup(key entryKey) (uint64, bool) {
	nodes, ok := t.entries[key]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records the count for the position on b at depth. Once the table is
// full new positions are dropped.
func (t *PerftTable) Store(b *chess.Board, depth int, nodes uint64) {
	t.store(entryKey{PositionKey(b), depth}, nodes)
}

func (t *PerftTable) store(key entryKey, nodes uint64) {
	if _, ok := t.entries[key]; !ok && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Hits returns how many lookups found an entry.
func (t *PerftTable) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[entryKey]uint64)
	t.hits = 0
}
