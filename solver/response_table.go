package solver

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/domino14/tictac/board"
)

// A ResponseEntry is everything we know about a board: the best move for
// the player to move, and what that player gets out of it with best play
// on both sides. Move is board.NoMove when the game is already over.
type ResponseEntry struct {
	Move    board.Move
	Outcome board.Outcome
}

// ResponseTable maps boards to their resolved entries. Unlike an endgame
// transposition table it never evicts or overwrites anything: an entry is
// written the first time a board is resolved and kept for good.
type ResponseTable struct {
	table   map[board.Board]ResponseEntry
	created uint64
	lookups uint64
	hits    uint64
	// rejected counts stores for a board that already had an entry. This
	// happens for symmetric boards, which appear more than once among
	// their own images.
	rejected uint64
}

func newResponseTable() *ResponseTable {
	return &ResponseTable{table: make(map[board.Board]ResponseEntry)}
}

func (t *ResponseTable) lookup(b board.Board) (ResponseEntry, bool) {
	t.lookups++
	e, ok := t.table[b]
	if ok {
		t.hits++
	}
	return e, ok
}

// peek is a lookup that doesn't count towards the stats.
func (t *ResponseTable) peek(b board.Board) (ResponseEntry, bool) {
	e, ok := t.table[b]
	return e, ok
}

// store writes the entry unless the board already has one.
func (t *ResponseTable) store(b board.Board, e ResponseEntry) bool {
	if _, ok := t.table[b]; ok {
		t.rejected++
		return false
	}
	t.table[b] = e
	t.created++
	return true
}

func (t *ResponseTable) Len() int {
	return len(t.table)
}

// digest folds every (board, entry) pair into a single number. Pairs are
// hashed independently and summed, so map iteration order doesn't matter.
func (t *ResponseTable) digest() uint64 {
	var sum uint64
	buf := make([]byte, 0, board.MaxCells+8)
	for b, e := range t.table {
		buf = buf[:0]
		buf = append(buf, byte(b.Width()))
		for i := 0; i < b.Size(); i++ {
			buf = append(buf, byte(b.At(i)))
		}
		buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(e.Move)))
		buf = append(buf, byte(e.Outcome))
		sum += xxhash.Sum64(buf)
	}
	return sum
}
