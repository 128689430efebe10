package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyGraph indicates Build produced a graph with no vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge with identical endpoints was supplied.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight was supplied.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrEmptyVertexID indicates a vertex or endpoint with an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")
)

// Edge is an undirected weighted connection between two vertices.
//
// The pair is unordered: Edge{U: "a", V: "b", W: 3} and Edge{U: "b", V: "a", W: 3}
// describe the same edge. Build stores both orientations.
type Edge struct {
	// U is one endpoint vertex ID.
	U string

	// V is the other endpoint vertex ID.
	V string

	// W is the edge weight. Finite; may be zero or negative.
	W float64
}
