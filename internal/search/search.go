package search

import (
	"math"
	"math/rand"
	"sort"

	"github.com/duckchess/duckcore/internal/board"
)

// classicalMate is the magnitude of a won/lost terminal position under the
// classical (single-score) evaluator convention; chosen far outside any
// plausible material sum so it always dominates alpha-beta comparisons.
const classicalMate = 1_000_000.0

// EvalResult is what an Evaluator returns for one position: either a
// single higher-is-better-for-White Score, or a probability pair
// (PWhite, PBlack) summing to 1.
type EvalResult struct {
	Score          float64
	PWhite, PBlack float64
}

// Evaluator is any position-scoring function pluggable into the
// search. IsPair is fixed for a given evaluator instance — a search
// never mixes the two conventions mid-tree.
type Evaluator interface {
	IsPair() bool
	Evaluate(pos *board.Position, kwargs map[string]any) EvalResult
}

// Searcher runs negamax with alpha-beta pruning over a Position and a
// persistent node Arena.
type Searcher struct {
	tt       *TranspositionTable
	nodes    uint64
	stopping bool
}

// NewSearcher creates a Searcher backed by tt (may be nil to disable the
// transposition table).
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt}
}

// Stop requests that the in-flight search return as soon as it next
// checks the flag. The search unwinds with every MakeMove matched by
// an UnmakeMove, so the Position is left intact.
func (s *Searcher) Stop() {
	s.stopping = true
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search returns (score, piece move, duck move) for the side to move.
//
// At the root it iterates legal moves, negamaxes each child with the
// duck sub-turn skipped via SkipMove, then — once the best piece move
// is chosen — picks a uniformly random legal duck move in the
// resulting position.
func (s *Searcher) Search(pos *board.Position, arena *Arena, depth int, evaluator Evaluator, kwargs map[string]any) (float64, board.Move, board.Move) {
	s.nodes = 0
	s.stopping = false
	pairMode := evaluator.IsPair()

	rootIdx := arena.Root()
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		return 0, board.NoMove, board.NoMove
	}
	// A rerooted root may have been expanded while the duck stood on
	// another square; drop its children when they no longer match the
	// legal moves so Expand rebuilds them.
	stale := len(arena.Children(rootIdx)) != moves.Len()
	for _, c := range arena.Children(rootIdx) {
		if !moves.Contains(arena.Get(c).Move) {
			stale = true
			break
		}
	}
	if stale {
		arena.Get(rootIdx).children = nil
	}
	arena.Expand(rootIdx, moves)
	children := arena.Children(rootIdx)
	sortChildrenByScore(arena, children)

	alpha, beta := rootBounds(pairMode)
	bestMove := board.NoMove
	bestScore := alpha

	for _, childIdx := range children {
		// The recursion grows the arena, so re-index instead of holding a
		// *Node across it.
		move := arena.Get(childIdx).Move

		pos.MakeMove(move)
		pos.SkipMove()
		childReturn := s.negamax(pos, arena, childIdx, depth-1, transform(pairMode, beta), transform(pairMode, alpha), pairMode, evaluator, kwargs)
		pos.UnmakeMove()
		pos.UnmakeMove()

		childScore := transform(pairMode, childReturn)
		arena.Get(childIdx).Score = childScore

		if s.stopping {
			break
		}

		if bestMove == board.NoMove || childScore > bestScore {
			bestScore = childScore
			bestMove = move
		}
		if childScore > alpha {
			alpha = childScore
		}
	}

	if bestMove == board.NoMove {
		return bestScore, board.NoMove, board.NoMove
	}

	duckMove := board.NoMove
	pos.MakeMove(bestMove)
	duckMoves := pos.GenerateLegalMoves()
	if duckMoves.Len() > 0 {
		duckMove = duckMoves.Get(rand.Intn(duckMoves.Len()))
	}
	pos.UnmakeMove()

	return bestScore, bestMove, duckMove
}

// negamax: a terminal position (a king already captured, or a declared
// stalemate) short-circuits before move generation; depth zero calls
// the evaluator; otherwise it expands the node's children, searches
// them in score-sorted order with the duck sub-turn skipped, and
// returns the fail-hard alpha-beta bound.
func (s *Searcher) negamax(pos *board.Position, arena *Arena, nodeIdx, depth int, alpha, beta float64, pairMode bool, evaluator Evaluator, kwargs map[string]any) float64 {
	s.nodes++
	if s.nodes&4095 == 0 && s.stopping {
		return 0
	}

	if score, ok := terminalScore(pos, pairMode); ok {
		arena.Get(nodeIdx).Score = score
		return score
	}

	if depth <= 0 {
		result := evaluator.Evaluate(pos, kwargs)
		score := leafValue(pos, pairMode, result)
		arena.Get(nodeIdx).Score = score
		return score
	}

	if s.tt != nil {
		if entry, found := s.tt.Probe(pos.Zbr); found && entry.Depth >= depth {
			switch entry.Bound {
			case BoundExact:
				return entry.Score
			case BoundLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case BoundUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	moves := pos.GeneratePseudoLegalMoves()
	arena.Expand(nodeIdx, moves)
	children := arena.Children(nodeIdx)
	sortChildrenByScore(arena, children)

	originalAlpha := alpha
	bestMove := board.NoMove

	for _, childIdx := range children {
		move := arena.Get(childIdx).Move

		pos.MakeMove(move)
		pos.SkipMove()
		childReturn := s.negamax(pos, arena, childIdx, depth-1, transform(pairMode, beta), transform(pairMode, alpha), pairMode, evaluator, kwargs)
		pos.UnmakeMove()
		pos.UnmakeMove()

		childScore := transform(pairMode, childReturn)
		arena.Get(childIdx).Score = childScore

		if s.stopping {
			return 0
		}

		if childScore >= beta {
			if s.tt != nil {
				s.tt.Store(pos.Zbr, depth, beta, BoundLower, move)
			}
			arena.Get(nodeIdx).Score = beta
			return beta
		}
		if childScore > alpha {
			alpha = childScore
			bestMove = move
		}
	}

	if s.tt != nil {
		bound := BoundExact
		if alpha <= originalAlpha {
			bound = BoundUpper
		}
		s.tt.Store(pos.Zbr, depth, alpha, bound, bestMove)
	}
	arena.Get(nodeIdx).Score = alpha
	return alpha
}

// terminalScore reports the search value of a position whose game has
// already ended, so the recursion never generates moves from a position
// missing a king. Like leafValue, the classical branch is scaled by the
// side to move AT THIS NODE, not a sign fixed at the root:
// negamax's self-perspective invariant (a node's value is always stated
// from its own mover's point of view) must hold at every node for the
// alternating negation in the caller to compose correctly regardless of
// how many plies separate this node from the root.
func terminalScore(pos *board.Position, pairMode bool) (float64, bool) {
	switch pos.GameState {
	case board.WhiteWins:
		if pairMode {
			return perspectivePick(pos, 1, 0), true
		}
		return classicalMate * moverSign(pos), true
	case board.BlackWins:
		if pairMode {
			return perspectivePick(pos, 0, 1), true
		}
		return -classicalMate * moverSign(pos), true
	case board.Stalemate:
		if pairMode {
			return 0.5, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// leafValue: the classical evaluator's raw White-perspective score is
// multiplied by the sign of the side to move at this leaf, so its value
// is self-perspective like every other negamax node; the pair evaluator
// instead picks directly by the side to move at this leaf.
func leafValue(pos *board.Position, pairMode bool, result EvalResult) float64 {
	if pairMode {
		return perspectivePick(pos, result.PWhite, result.PBlack)
	}
	return result.Score * moverSign(pos)
}

func perspectivePick(pos *board.Position, pWhite, pBlack float64) float64 {
	if pos.Turn.Color() == board.White {
		return pWhite
	}
	return pBlack
}

func moverSign(pos *board.Position) float64 {
	if pos.Turn.Color() == board.White {
		return 1
	}
	return -1
}

// transform flips a value into the other side's perspective: negation
// for the classical evaluator, 1-x for the probability pair. Applied
// uniformly to scores and to alpha/beta bounds when recursing.
func transform(pairMode bool, x float64) float64 {
	if pairMode {
		return 1 - x
	}
	return -x
}

// rootBounds returns the initial (alpha, beta) window: the full real
// line for the classical evaluator, [0, 1] for the probability pair
// variant.
func rootBounds(pairMode bool) (float64, float64) {
	if pairMode {
		return 0, 1
	}
	return math.Inf(-1), math.Inf(1)
}

// sortChildrenByScore orders children descending by their last-known
// Score. Freshly expanded children all carry the unevaluated sentinel
// and keep generation order.
func sortChildrenByScore(arena *Arena, children []int) {
	sort.SliceStable(children, func(i, j int) bool {
		return arena.Get(children[i]).Score > arena.Get(children[j]).Score
	})
}
