// Package core defines the immutable Graph and Edge types shared by every
// longest-path solver in this module.
//
// A Graph is an undirected, edge-weighted adjacency structure built once via
// Build and never mutated afterwards. Immutability is the concurrency model:
// any number of solver goroutines may read the same Graph without locks,
// because there is nothing to protect.
//
// Shape rules:
//   - Vertex IDs are opaque non-empty strings, unique within a graph.
//   - Edges are unordered pairs {U,V}: w(U,V) == w(V,U) always.
//   - Self-loops are rejected (ErrSelfLoop).
//   - Parallel edges are not modeled; the last weight given for a pair wins.
//   - Weights must be finite (NaN and ±Inf ⇒ ErrBadWeight); zero and negative
//     weights are accepted and left to the solvers to interpret.
//
// Determinism:
//   - Vertices() and NeighborIDs(v) iterate in ascending ID order, so every
//     traversal over a given Graph is reproducible across runs and platforms.
//
// Errors (sentinel):
//   - ErrEmptyGraph      - Build received no vertices and no edges.
//   - ErrVertexNotFound  - query referenced a vertex the graph does not have.
//   - ErrSelfLoop        - an edge had U == V.
//   - ErrBadWeight       - an edge weight was NaN or ±Inf.
package core
