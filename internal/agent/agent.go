// Package agent implements the engine-facing facade a host loop drives:
// reset, pick a move, and advance state, keeping a board.Position and a
// persistent search.Arena in lockstep.
package agent

import (
	"github.com/duckchess/duckcore/internal/board"
	"github.com/duckchess/duckcore/internal/search"
)

// Agent owns one game's worth of engine state: the current Position,
// the persistent node Arena the searcher re-roots across moves, a
// Searcher/TranspositionTable pair, the pluggable Evaluator, and the
// default search depth used when GetNextMove's kwargs don't override it.
type Agent struct {
	pos       *board.Position
	arena     *search.Arena
	searcher  *search.Searcher
	evaluator search.Evaluator
	depth     int
}

// NewAgent builds an Agent at the starting position, ready to search.
func NewAgent(evaluator search.Evaluator, depth int, tt *search.TranspositionTable) *Agent {
	a := &Agent{
		searcher:  search.NewSearcher(tt),
		evaluator: evaluator,
		depth:     depth,
	}
	a.Reset()
	return a
}

// Reset restores the starting position and clears the search tree.
func (a *Agent) Reset() {
	a.pos = board.NewPosition()
	a.arena = search.NewArena()
}

// Position exposes the agent's current Position for read-only inspection
// (FEN export, display, etc.) — callers must not mutate it directly.
func (a *Agent) Position() *board.Position {
	return a.pos
}

// Stop requests that an in-flight GetNextMove return early.
func (a *Agent) Stop() {
	a.searcher.Stop()
}

// GetNextMove runs the search from the current position and returns
// the root score, the chosen piece move, and the duck move chosen in
// the resulting position. kwargs may carry a "depth" override; any
// other key is passed through to the evaluator unexamined.
func (a *Agent) GetNextMove(kwargs map[string]any) (float64, board.Move, board.Move) {
	depth := a.depth
	if v, ok := kwargs["depth"]; ok {
		if d, ok := v.(int); ok {
			depth = d
		}
	}
	return a.searcher.Search(a.pos, a.arena, depth, a.evaluator, kwargs)
}

// PlayMove applies m to the agent's Position and advances the search
// tree to match: re-root to the child reached by m, dropping the
// sibling subtrees. Duck moves have no corresponding arena node — the
// search skips the duck sub-turn internally rather than searching it —
// so a duck placement only advances the Position; the next piece move
// after it re-roots as usual. A piece move re-roots the arena, which
// finds the matching child by Move value alone, and then applies m to
// the Position.
func (a *Agent) PlayMove(m board.Move) {
	if m.Kind == board.DUCK {
		a.pos.MakeMove(m)
		return
	}
	a.arena = a.arena.Rerooted(m)
	a.pos.MakeMove(m)
}
