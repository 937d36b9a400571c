// Package eval implements the two evaluator contracts pluggable into
// search.Searcher: a single-score material/mobility/king-safety
// evaluator, and a win-probability pair evaluator standing in for a
// trained model.
package eval

import (
	"github.com/duckchess/duckcore/internal/board"
	"github.com/duckchess/duckcore/internal/search"
)

// Piece values, in pawn units.
const (
	PawnValue   = 1.0
	KnightValue = 3.0
	BishopValue = 3.5
	RookValue   = 5.0
	QueenValue  = 9.0
	KingValue   = 100000.0
)

var pieceValue = [6]float64{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

const (
	mobilityWeight   = 0.01
	kingSafetyWeight = 1.0
)

// MaterialEvaluator scores a position as material + mobility +
// king safety, always from White's point of view.
type MaterialEvaluator struct{}

// IsPair reports false: MaterialEvaluator always returns a single score.
func (MaterialEvaluator) IsPair() bool { return false }

// Evaluate computes material + mobility + king safety from White's
// point of view.
func (MaterialEvaluator) Evaluate(pos *board.Position, _ map[string]any) search.EvalResult {
	material := 0.0
	for pt := board.Pawn; pt <= board.King; pt++ {
		white := pos.Pieces[board.White][pt].PopCount()
		black := pos.Pieces[board.Black][pt].PopCount()
		material += pieceValue[pt] * float64(white-black)
	}

	whiteMoves, blackMoves := pseudoLegalCounts(pos)
	mobility := mobilityWeight * float64(whiteMoves-blackMoves)

	kingSafety := 0.0
	if whiteKingBB := pos.Pieces[board.White][board.King]; whiteKingBB != board.Empty {
		kingSafety += kingSafetyWeight * float64((board.KingAttacks(whiteKingBB.LSB()) & pos.White).PopCount())
	}
	if blackKingBB := pos.Pieces[board.Black][board.King]; blackKingBB != board.Empty {
		kingSafety -= kingSafetyWeight * float64((board.KingAttacks(blackKingBB.LSB()) & pos.Black).PopCount())
	}

	return search.EvalResult{Score: material + mobility + kingSafety}
}

// pseudoLegalCounts counts each side's pseudo-legal piece moves.
// Move generation is keyed off Turn, so this briefly substitutes WHITE
// and BLACK in turn to count each side's piece moves independent of
// whichever sub-turn the position actually holds, then restores it.
func pseudoLegalCounts(pos *board.Position) (int, int) {
	turn := pos.Turn

	pos.Turn = board.WHITE
	whiteMoves := pos.GeneratePseudoLegalMoves().Len()
	pos.Turn = board.BLACK
	blackMoves := pos.GeneratePseudoLegalMoves().Len()
	pos.Turn = turn

	return whiteMoves, blackMoves
}
