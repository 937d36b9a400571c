package eval

import (
	"testing"

	"github.com/duckchess/duckcore/internal/board"
	"github.com/stretchr/testify/assert"
)

func TestPairEvaluatorIsPair(t *testing.T) {
	assert.True(t, NewPairEvaluator(1).IsPair())
}

func TestPairEvaluatorSumsToOne(t *testing.T) {
	pos := board.NewPosition()
	pe := NewPairEvaluator(42)
	result := pe.Evaluate(pos, nil)

	assert.InDelta(t, 1.0, result.PWhite+result.PBlack, 1e-12)
	assert.GreaterOrEqual(t, result.PWhite, 0.0)
	assert.LessOrEqual(t, result.PWhite, 1.0)
}

func TestPairEvaluatorIsDeterministicForASeed(t *testing.T) {
	pos := board.NewPosition()
	a := NewPairEvaluator(7).Evaluate(pos, nil)
	b := NewPairEvaluator(7).Evaluate(pos, nil)

	assert.Equal(t, a, b, "the same seed must reproduce identical weights and therefore identical output")
}

func TestPairEvaluatorDifferentSeedsDiffer(t *testing.T) {
	pos := board.NewPosition()
	a := NewPairEvaluator(1).Evaluate(pos, nil)
	b := NewPairEvaluator(2).Evaluate(pos, nil)

	assert.NotEqual(t, a, b, "different seeds should produce different weights")
}

func TestPairFeaturesTempoFlipsWithSideToMove(t *testing.T) {
	pos := board.NewPosition()
	whiteFeatures := pairFeatures(pos)
	assert.Equal(t, 1.0, whiteFeatures[3])

	pos.MakeMove(board.NewMove(board.DOUBLE_PAWN, board.Pawn, board.E2, board.E4))
	pos.SkipMove()
	blackFeatures := pairFeatures(pos)
	assert.Equal(t, -1.0, blackFeatures[3])
}
