package eval

import (
	"math"

	"github.com/duckchess/duckcore/internal/board"
	"github.com/duckchess/duckcore/internal/search"
)

// pairFeatureCount is the size of the fixed feature vector PairEvaluator
// feeds through its single linear layer (material, mobility, king
// safety, side to move — mirrors MaterialEvaluator's three terms plus
// a tempo bit).
const pairFeatureCount = 4

// PairEvaluator is the NN-style evaluator variant: instead of a single
// score it returns a probability pair (pWhite, pBlack) summing to 1.
// It is a stand-in for a trained network — a single linear layer over
// a handful of positional features squashed through a logistic, with a
// fixed-seed PRNG filling the weights instead of a loaded weights
// file.
type PairEvaluator struct {
	weights [pairFeatureCount]float64
	bias    float64
}

// NewPairEvaluator builds a PairEvaluator with weights
// deterministically derived from seed.
func NewPairEvaluator(seed uint64) *PairEvaluator {
	state := seed
	next := func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		v := int32((state >> 40) & 0xFFFF)
		return (float64(v)/float64(0xFFFF))*2 - 1 // in [-1, 1]
	}

	pe := &PairEvaluator{}
	for i := range pe.weights {
		pe.weights[i] = next()
	}
	pe.bias = next()
	return pe
}

// IsPair reports true: PairEvaluator always returns a probability pair.
func (*PairEvaluator) IsPair() bool { return true }

// Evaluate runs the linear layer over the feature vector and squashes
// it through a logistic to produce pWhite, with pBlack = 1 - pWhite.
func (pe *PairEvaluator) Evaluate(pos *board.Position, _ map[string]any) search.EvalResult {
	features := pairFeatures(pos)

	z := pe.bias
	for i, f := range features {
		z += pe.weights[i] * f
	}
	pWhite := 1.0 / (1.0 + math.Exp(-z))

	return search.EvalResult{PWhite: pWhite, PBlack: 1 - pWhite}
}

// pairFeatures extracts a small positional feature vector, scaled to
// roughly unit magnitude so the logistic layer is well-conditioned.
func pairFeatures(pos *board.Position) [pairFeatureCount]float64 {
	material := 0.0
	for pt := board.Pawn; pt < board.King; pt++ {
		white := pos.Pieces[board.White][pt].PopCount()
		black := pos.Pieces[board.Black][pt].PopCount()
		material += pieceValue[pt] * float64(white-black)
	}

	whiteMoves, blackMoves := pseudoLegalCounts(pos)
	mobility := float64(whiteMoves-blackMoves) / 20.0

	kingSafety := 0.0
	if whiteKingBB := pos.Pieces[board.White][board.King]; whiteKingBB != board.Empty {
		kingSafety += float64((board.KingAttacks(whiteKingBB.LSB()) & pos.White).PopCount())
	}
	if blackKingBB := pos.Pieces[board.Black][board.King]; blackKingBB != board.Empty {
		kingSafety -= float64((board.KingAttacks(blackKingBB.LSB()) & pos.Black).PopCount())
	}
	kingSafety /= 8.0

	tempo := 1.0
	if pos.Turn.Color() == board.Black {
		tempo = -1.0
	}

	return [pairFeatureCount]float64{material / 20.0, mobility, kingSafety, tempo}
}
