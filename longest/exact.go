package longest

import (
	"math"

	"github.com/katalvlaran/longpath/core"
)

// exactSearch carries the transient state of one exhaustive solve: the
// current path, its visited set (exactly the path's vertices) and the best
// result found so far. It exists only for the duration of one ExactSolve
// call, so independent solves never share state.
type exactSearch struct {
	g       *core.Graph
	visited map[string]bool // membership mirror of path
	path    []string        // current simple path, in order
	best    Result          // strictly-improving accumulator
}

// ExactSolve finds the maximum-weight simple path in g by backtracking DFS
// from every vertex, exploring all simple paths.
//
// Semantics:
//   - Every search state is a candidate, the zero-edge singleton included,
//     so a lone vertex is the valid answer when no edge improves on it
//     (in particular under all-negative weights).
//   - Strict improvement only: the first-encountered maximum wins ties, and
//     since starts and neighbors iterate in ascending ID order the winner is
//     deterministic across runs and platforms.
//   - A nil graph is the empty instance: (0, []), not an error.
//
// Complexity: O(V!) worst case (complete graph), depth ≤ V, branching ≤ max
// degree. Intended for graphs up to a few tens of vertices; wall-clock
// limits on larger instances are the caller's responsibility.
func ExactSolve(g *core.Graph) Result {
	if g == nil || g.Order() == 0 {
		return Result{Length: 0, Path: []string{}}
	}

	s := &exactSearch{
		g:       g,
		visited: make(map[string]bool, g.Order()),
		path:    make([]string, 0, g.Order()),
		best:    Result{Length: math.Inf(-1)},
	}

	// Try each vertex as a starting point.
	var start string
	for _, start = range g.Vertices() {
		s.visited[start] = true
		s.path = append(s.path, start)
		s.extend(start, 0)
		s.path = s.path[:0]
		delete(s.visited, start)
	}

	s.best.Length = round1e9(s.best.Length)

	return s.best
}

// extend records the current state when strictly longer than the best, then
// recurses into every unvisited neighbor, undoing each move on return.
func (s *exactSearch) extend(current string, length float64) {
	// 1. Candidate check: strictly longer paths displace the best.
	if length > s.best.Length {
		s.best.Length = length
		s.best.Path = append([]string(nil), s.path...)
	}

	// 2. Recurse into unvisited neighbors; undo on return.
	var (
		nb string
		w  float64
	)
	for _, nb = range s.g.NeighborIDs(current) {
		if s.visited[nb] {
			continue
		}
		w, _ = s.g.Weight(current, nb)

		s.visited[nb] = true
		s.path = append(s.path, nb)
		s.extend(nb, length+w)
		s.path = s.path[:len(s.path)-1]
		delete(s.visited, nb)
	}
}
