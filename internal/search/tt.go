package search

import "github.com/duckchess/duckcore/internal/board"

// Bound identifies which side of the true score a stored TT entry
// represents.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// Entry is one transposition-table slot.
type Entry struct {
	Key   uint32 // upper 32 bits of zbr, for collision detection
	Move  board.Move
	Score float64
	Depth int
	Bound Bound
	valid bool
}

// TranspositionTable is a power-of-two direct-mapped cache keyed by the
// position's Zobrist key, with an always-replace eviction policy.
//
// A single search owns its table. Sharing one across concurrent
// searchers would need atomic 64-bit slot stores plus a key
// verification word to guard against torn reads; nothing here does
// that.
type TranspositionTable struct {
	entries []Entry
	mask    uint64
}

// entryApproxBytes is an approximate per-slot size used only to turn a
// megabyte budget into an entry count.
const entryApproxBytes = 32

// EntriesForSizeMB converts a megabyte budget into an entry count.
func EntriesForSizeMB(sizeMB int) int {
	return int((uint64(sizeMB) * 1024 * 1024) / entryApproxBytes)
}

// NewTranspositionTable allocates a table with at least minEntries slots,
// rounded up to the next power of two.
func NewTranspositionTable(minEntries int) *TranspositionTable {
	n := uint64(1)
	for n < uint64(minEntries) {
		n <<= 1
	}
	return &TranspositionTable{
		entries: make([]Entry, n),
		mask:    n - 1,
	}
}

// Probe looks up zbr, returning the stored entry and whether it was
// found and not a key collision.
func (tt *TranspositionTable) Probe(zbr uint64) (Entry, bool) {
	e := tt.entries[zbr&tt.mask]
	if !e.valid || e.Key != uint32(zbr>>32) {
		return Entry{}, false
	}
	return e, true
}

// Store writes an entry unconditionally (always-replace).
func (tt *TranspositionTable) Store(zbr uint64, depth int, score float64, bound Bound, move board.Move) {
	tt.entries[zbr&tt.mask] = Entry{
		Key:   uint32(zbr >> 32),
		Move:  move,
		Score: score,
		Depth: depth,
		Bound: bound,
		valid: true,
	}
}

// Clear empties every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = Entry{}
	}
}
