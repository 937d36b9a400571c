package eval

import (
	"testing"

	"github.com/duckchess/duckcore/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialEvaluatorStartingPositionIsBalanced(t *testing.T) {
	pos := board.NewPosition()
	result := MaterialEvaluator{}.Evaluate(pos, nil)
	assert.Equal(t, 0.0, result.Score, "the starting position is symmetric in material, mobility, and king safety")
}

func TestMaterialEvaluatorFormula(t *testing.T) {
	// White has an extra rook and nothing else differs; mobility and
	// king safety contribute a small residual, but the material term
	// alone should place the score within a pawn of the rook's value.
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	result := MaterialEvaluator{}.Evaluate(pos, nil)

	material := RookValue
	assert.InDelta(t, material, result.Score, 1.0, "a lone extra rook should score close to its pawn-unit value")
}

func TestMaterialEvaluatorIsNotPair(t *testing.T) {
	assert.False(t, MaterialEvaluator{}.IsPair())
}

func TestPseudoLegalCountsRestoresTurn(t *testing.T) {
	pos := board.NewPosition()
	before := pos.Turn
	pseudoLegalCounts(pos)
	assert.Equal(t, before, pos.Turn, "pseudoLegalCounts must restore the position's turn after borrowing it")
}

func TestPseudoLegalCountsStartingPositionIsSymmetric(t *testing.T) {
	pos := board.NewPosition()
	white, black := pseudoLegalCounts(pos)
	assert.Equal(t, white, black, "the starting position is mirror-symmetric in piece mobility")
	assert.Equal(t, 20, white)
}
