// Package builder provides deterministic graph generators for longest-path
// experiments and tests.
//
// Every generator returns a freshly built immutable core.Graph. Randomized
// topologies and weights are driven entirely by the seed passed through
// options: the same call with the same options always yields the identical
// graph, so fixtures are reproducible across machines and test runs.
//
// Shapes:
//   - Path, Cycle, Star, Complete — classic fixed topologies.
//   - Tree       — random recursive tree (n−1 edges, no cycles).
//   - Sparse     — n vertices, m random edges (m clamped to C(n,2)).
//   - Dense      — Sparse at a target density fraction.
//   - GreedyTrap — a deliberately deceptive instance: one heavy edge into a
//     dead end versus a chain of medium edges that sums higher. Used to
//     probe the quality gap of greedy scorers.
//
// Vertex IDs are prefix+index ("v1", "v2", …); weights default to uniform
// integers in [1,100], overridable via WithWeightRange.
package builder
