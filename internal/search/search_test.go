package search

import (
	"testing"

	"github.com/duckchess/duckcore/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMaterialEvaluator struct{}

func (fakeMaterialEvaluator) IsPair() bool { return false }

func (fakeMaterialEvaluator) Evaluate(pos *board.Position, _ map[string]any) EvalResult {
	score := 0.0
	values := [6]float64{1, 3, 3.5, 5, 9, 1000}
	for pt := board.Pawn; pt <= board.King; pt++ {
		white := pos.Pieces[board.White][pt].PopCount()
		black := pos.Pieces[board.Black][pt].PopCount()
		score += values[pt] * float64(white-black)
	}
	return EvalResult{Score: score}
}

func TestSearchPrefersWinningCapture(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/3q4/3QK3 w - - 0 1")
	require.NoError(t, err)

	arena := NewArena()
	searcher := NewSearcher(NewTranspositionTable(1024))

	score, pieceMove, _ := searcher.Search(pos, arena, 1, fakeMaterialEvaluator{}, nil)

	assert.Equal(t, board.D2, pieceMove.To, "expected the queen capture on d2, got %s", pieceMove)
	assert.Equal(t, board.CAPTURE, pieceMove.Kind)
	assert.Greater(t, score, 5.0, "capturing the undefended queen should score as a clear material win")
}

func TestSearchEndsImmediatelyOnKingCapture(t *testing.T) {
	pos, err := board.ParseFEN("4k2R/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	arena := NewArena()
	searcher := NewSearcher(NewTranspositionTable(1024))

	score, pieceMove, _ := searcher.Search(pos, arena, 2, fakeMaterialEvaluator{}, nil)

	assert.Equal(t, board.E8, pieceMove.To)
	assert.Equal(t, board.H8, pieceMove.From)
	assert.InDelta(t, classicalMate, score, 1.0, "capturing the king should score as a decisive win")
}

func TestSearchRootPicksAmongLegalMovesAndFollowsWithADuckMove(t *testing.T) {
	pos := board.NewPosition()
	arena := NewArena()
	searcher := NewSearcher(nil)

	_, pieceMove, duckMove := searcher.Search(pos, arena, 1, fakeMaterialEvaluator{}, nil)

	legal := pos.GenerateLegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == pieceMove {
			found = true
			break
		}
	}
	assert.True(t, found, "returned piece move %s must be legal from the starting position", pieceMove)
	assert.NotEqual(t, board.NoMove, duckMove, "the starting position always leaves empty squares for a duck placement")
}

func TestTranspositionTableStoreProbe(t *testing.T) {
	tt := NewTranspositionTable(16)
	require.Equal(t, 16, len(tt.entries))

	m := board.NewMove(board.QUIET, board.Knight, board.G1, board.F3)
	tt.Store(0x00000001_deadbeef, 4, 1.5, BoundExact, m)

	entry, found := tt.Probe(0x00000001_deadbeef)
	require.True(t, found)
	assert.Equal(t, 4, entry.Depth)
	assert.Equal(t, 1.5, entry.Score)
	assert.Equal(t, BoundExact, entry.Bound)
	assert.Equal(t, m, entry.Move)

	_, found = tt.Probe(0x00000002_deadbeef)
	assert.False(t, found, "a different key hashing to the same slot must not read as a hit")
}

func TestTranspositionTableAlwaysReplace(t *testing.T) {
	tt := NewTranspositionTable(1)
	m1 := board.NewMove(board.QUIET, board.Knight, board.G1, board.F3)
	m2 := board.NewMove(board.QUIET, board.Pawn, board.E2, board.E3)

	tt.Store(0x1, 8, 10, BoundExact, m1)
	tt.Store(0x1, 1, -10, BoundUpper, m2)

	entry, found := tt.Probe(0x1)
	require.True(t, found)
	assert.Equal(t, 1, entry.Depth, "always-replace means the later store wins even at lower depth")
	assert.Equal(t, m2, entry.Move)
}

func TestEntriesForSizeMB(t *testing.T) {
	got := EntriesForSizeMB(1)
	assert.Equal(t, (1024*1024)/entryApproxBytes, got)
}

func TestArenaExpandAndReroot(t *testing.T) {
	arena := NewArena()
	moves := board.NewMoveList()
	m1 := board.NewMove(board.QUIET, board.Knight, board.G1, board.F3)
	m2 := board.NewMove(board.QUIET, board.Knight, board.B1, board.C3)
	moves.Add(m1)
	moves.Add(m2)

	arena.Expand(arena.Root(), moves)
	children := arena.Children(arena.Root())
	require.Len(t, children, 2)

	reRooted := arena.Rerooted(m1)
	assert.Equal(t, board.NoMove, reRooted.Get(reRooted.Root()).Move, "a rerooted arena's new root carries no incoming move")

	empty := arena.Rerooted(board.NewMove(board.QUIET, board.Pawn, board.A2, board.A3))
	assert.Equal(t, 1, len(empty.nodes), "rerooting on an unexpanded move falls back to a fresh arena")
}
