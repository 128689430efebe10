// Package longest provides Longest Simple Path solvers for undirected,
// edge-weighted graphs (core.Graph).
//
// The Longest Path Problem is NP-complete, so the package ships two families:
//
//   - ExactSolve — exhaustive backtracking DFS over all simple paths from
//     every start vertex. Guarantees optimality.
//
//   - Complexity: O(V!) worst case (complete graph); practical up to a few
//     tens of vertices.
//
//   - Memory:     O(V) for the recursion state.
//
//   - ApproxSolve — polynomial multi-start, multi-seed greedy driver over a
//     closed family of step scorers (plain weight, one- and two-step
//     lookahead, high-weight priority, edge-cluster priority), with seeded
//     randomized tie-breaking and bounded one-step dead-end repair.
//
//   - Complexity: O(starts · seeds · scorers · V·E); no optimality guarantee.
//
// Determinism:
//   - ExactSolve iterates starts and neighbors in ascending vertex-ID order
//     and keeps the first strictly-better path, so equal-length optima
//     resolve identically on every run and platform.
//   - ApproxSolve threads an explicit seed through every Builder call
//     (SplitMix64 substream derivation); the same seed reproduces the same
//     result bit-for-bit. No ambient randomness anywhere.
//
// Degenerate input:
//   - A nil graph is the well-defined empty instance: both solvers return
//     (0, []) rather than an error.
//
// Cancellation and wall-clock limits are the caller's responsibility: the
// solvers have no internal deadline, and an exact solve over a dense graph
// may run unboundedly long. Graphs are read-only here, so independent solve
// calls may run concurrently without coordination.
package longest
