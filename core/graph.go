package core

import (
	"math"
	"sort"
)

// Graph is an immutable undirected weighted graph.
//
// Internally it keeps a full adjacency map (vertex → neighbor → weight) for
// O(1) weight lookups, plus per-vertex sorted neighbor slices so traversal
// order is deterministic. Both structures are frozen after Build.
type Graph struct {
	adj   map[string]map[string]float64 // vertex → neighbor → weight
	order []string                      // all vertex IDs, ascending
	nbrs  map[string][]string           // neighbor IDs per vertex, ascending
	size  int                           // number of undirected edges
}

// Build constructs an immutable Graph from explicit vertices and edges.
//
// The vertex set is the union of the given vertices and all edge endpoints,
// so isolated vertices may be declared up front and endpoints need not be.
// Inputs are copied; the caller keeps ownership of its slices.
//
// Errors: ErrEmptyVertexID, ErrSelfLoop, ErrBadWeight, ErrEmptyGraph.
//
// Complexity: O(V log V + E log E) dominated by neighbor-order sorting.
func Build(vertices []string, edges []Edge) (*Graph, error) {
	adj := make(map[string]map[string]float64, len(vertices))

	// touch registers a vertex ID, allocating its adjacency row once.
	touch := func(id string) {
		if _, ok := adj[id]; !ok {
			adj[id] = make(map[string]float64)
		}
	}

	// 1. Declared vertices first, so isolated vertices survive.
	var id string
	for _, id = range vertices {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		touch(id)
	}

	// 2. Edges; both orientations stored, last weight for a pair wins.
	var e Edge
	for _, e = range edges {
		if e.U == "" || e.V == "" {
			return nil, ErrEmptyVertexID
		}
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		if math.IsNaN(e.W) || math.IsInf(e.W, 0) {
			return nil, ErrBadWeight
		}
		touch(e.U)
		touch(e.V)
		adj[e.U][e.V] = e.W
		adj[e.V][e.U] = e.W
	}

	if len(adj) == 0 {
		return nil, ErrEmptyGraph
	}

	// 3. Freeze deterministic iteration orders.
	order := make([]string, 0, len(adj))
	for id = range adj {
		order = append(order, id)
	}
	sort.Strings(order)

	var (
		nbrs  = make(map[string][]string, len(adj))
		half  int // directed arc count; halved below
		row   map[string]float64
		nid   string
		sl    []string
	)
	for id, row = range adj {
		sl = make([]string, 0, len(row))
		for nid = range row {
			sl = append(sl, nid)
		}
		sort.Strings(sl)
		nbrs[id] = sl
		half += len(row)
	}

	return &Graph{adj: adj, order: order, nbrs: nbrs, size: half / 2}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.order) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.size }

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Vertices returns all vertex IDs in ascending order.
// The returned slice is shared and must not be modified.
func (g *Graph) Vertices() []string { return g.order }

// NeighborIDs returns the neighbors of id in ascending order, or nil when id
// is absent. The returned slice is shared and must not be modified.
func (g *Graph) NeighborIDs(id string) []string { return g.nbrs[id] }

// Neighbors returns a fresh neighbor→weight map for id.
//
// Errors: ErrVertexNotFound.
//
// Complexity: O(deg(id)); use Weight/NeighborIDs in hot loops to avoid the copy.
func (g *Graph) Neighbors(id string) (map[string]float64, error) {
	row, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]float64, len(row))
	var (
		nid string
		w   float64
	)
	for nid, w = range row {
		out[nid] = w
	}

	return out, nil
}

// Degree returns the number of edges incident to id.
//
// Errors: ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	row, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// Weight returns the weight of edge {u,v} and whether that edge exists.
func (g *Graph) Weight(u, v string) (float64, bool) {
	row, ok := g.adj[u]
	if !ok {
		return 0, false
	}
	w, ok := row[v]

	return w, ok
}
