// Package search implements the negamax/alpha-beta tree search over a
// board.Position, plus the lazily-expanded node arena the Agent keeps
// alive across successive searches.
package search

import "github.com/duckchess/duckcore/internal/board"

// scoreNegInf is the sentinel score of a node that has never been
// evaluated, below any reachable real score.
const scoreNegInf = -1 << 30

// Node is one vertex of the lazily-expanded search tree: the move that
// reaches it from its parent, its evaluated score, and indices into the
// owning Arena's flat storage for parent/children. Nodes are indexed
// rather than pointer-linked; re-rooting copies the kept subtree into a
// fresh Arena with renumbered indices and leaves the rest behind.
type Node struct {
	Move     board.Move
	Score    float64
	parent   int
	children []int
}

// Arena owns the flat node storage for one Agent's search tree. Index 0
// is always the current root.
type Arena struct {
	nodes []Node
}

// NewArena returns an Arena containing a single unexpanded root.
func NewArena() *Arena {
	a := &Arena{}
	a.nodes = append(a.nodes, Node{Move: board.NoMove, Score: scoreNegInf, parent: -1})
	return a
}

// Root returns the index of the current root node.
func (a *Arena) Root() int {
	return 0
}

// Get returns a pointer to the node at idx.
func (a *Arena) Get(idx int) *Node {
	return &a.nodes[idx]
}

// Expand creates one child per move in moves, parented to nodeIdx,
// unless the node already has children — idempotent, so repeated
// negamax visits to an already-expanded node are free. The parent is
// re-indexed after the appends: growing a.nodes can move the backing
// array, so a pointer taken before the loop would write into the old
// one.
func (a *Arena) Expand(nodeIdx int, moves *board.MoveList) {
	if len(a.nodes[nodeIdx].children) > 0 {
		return
	}
	children := make([]int, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		childIdx := len(a.nodes)
		a.nodes = append(a.nodes, Node{Move: moves.Get(i), Score: scoreNegInf, parent: nodeIdx})
		children = append(children, childIdx)
	}
	a.nodes[nodeIdx].children = children
}

// Children returns the child node indices of nodeIdx, in arena order;
// the caller is responsible for any score-based sort before recursing.
func (a *Arena) Children(nodeIdx int) []int {
	return a.nodes[nodeIdx].children
}

// Reset discards every node and reinitialises a fresh unexpanded root.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
	a.nodes = append(a.nodes, Node{Move: board.NoMove, Score: scoreNegInf, parent: -1})
}

// Rerooted returns a brand-new Arena whose root is the subtree that
// used to hang off the root's child reached by m, with every sibling
// subtree dropped. If no matching child is expanded yet (the tree never
// searched that deep), a fresh empty Arena is returned instead — the
// subsequent search simply re-expands from scratch.
func (a *Arena) Rerooted(m board.Move) *Arena {
	root := &a.nodes[0]
	for _, childIdx := range root.children {
		child := a.nodes[childIdx]
		if child.Move != m {
			continue
		}
		return a.subtreeArena(childIdx)
	}
	return NewArena()
}

// subtreeArena rebuilds a compact Arena containing only the subtree
// rooted at idx, renumbering indices from 0.
func (a *Arena) subtreeArena(idx int) *Arena {
	out := &Arena{}
	remap := map[int]int{}

	var walk func(i int) int
	walk = func(i int) int {
		old := a.nodes[i]
		newIdx := len(out.nodes)
		out.nodes = append(out.nodes, Node{Move: old.Move, Score: old.Score, parent: -1})
		remap[i] = newIdx
		children := make([]int, 0, len(old.children))
		for _, c := range old.children {
			children = append(children, walk(c))
		}
		out.nodes[newIdx].children = children
		for _, c := range children {
			out.nodes[c].parent = newIdx
		}
		return newIdx
	}
	walk(idx)
	out.nodes[0].parent = -1
	out.nodes[0].Move = board.NoMove
	return out
}
