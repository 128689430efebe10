// Package longest - path weight and validity utilities shared by both solver
// families and their tests.
//
// Design:
//   - Side-effect free; strict sentinels from types.go.
//   - Stable summation: results rounded to 1e-9 to avoid cross-platform FP
//     noise, matching the solvers' own length stabilization.
//
// Complexity: O(len(path)) time, O(len(path)) space for the repeat check.
package longest

import (
	"math"

	"github.com/katalvlaran/longpath/core"
)

// roundScale controls length stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// PathWeight recomputes the total weight of path over g.
//
// Contract:
//   - An empty path weighs 0 on any graph, nil included.
//   - Every vertex must exist, consecutive vertices must be adjacent, and no
//     vertex may repeat; violations surface as sentinels from types.go.
//
// Complexity: O(len(path)).
func PathWeight(g *core.Graph, path []string) (float64, error) {
	if err := ValidatePath(g, path); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
		w   float64
	)
	for i = 1; i < len(path); i++ {
		w, _ = g.Weight(path[i-1], path[i]) // adjacency already validated
		sum += w
	}

	return round1e9(sum), nil
}

// ValidatePath checks that path is a simple path over g: existing vertices,
// real edges between consecutive vertices, no repeated vertex.
//
// Errors: ErrNilGraph, ErrVertexMissing, ErrEdgeMissing, ErrRepeatedVertex.
//
// Complexity: O(len(path)).
func ValidatePath(g *core.Graph, path []string) error {
	if len(path) == 0 {
		return nil
	}
	if g == nil {
		return ErrNilGraph
	}

	seen := make(map[string]struct{}, len(path))
	var (
		i  int
		id string
	)
	for i, id = range path {
		if !g.HasVertex(id) {
			return ErrVertexMissing
		}
		if _, dup := seen[id]; dup {
			return ErrRepeatedVertex
		}
		seen[id] = struct{}{}

		if i > 0 {
			if _, ok := g.Weight(path[i-1], id); !ok {
				return ErrEdgeMissing
			}
		}
	}

	return nil
}
