// Package longpath solves the Longest Simple Path problem on undirected,
// edge-weighted graphs: find the maximum-weight path that repeats no vertex.
//
// 🚀 What is longpath?
//
//	A small, deterministic toolkit built from four layers:
//		• Exact search: exhaustive backtracking DFS, guaranteed optimal
//		• Greedy heuristics: five pluggable scorers with seeded tie-breaking
//		• Multi-start driver: start selection, seed fan-out, dead-end repair
//		• Tooling: graph generators, a text codec, a comparison harness
//
// ✨ Why longpath?
//
//   - Deterministic – same graph, same options, same seed ⇒ same answer
//   - Honest about hardness – exact is exponential; heuristics are polynomial
//   - Measurable – the compare harness reports optimality gaps per scorer set
//
// Under the hood, everything is organized under five subpackages:
//
//	core/    — immutable Graph value, validated construction, sorted iteration
//	longest/ — ExactSolve and the ApproxSolve heuristic driver
//	builder/ — seeded generators (path, cycle, star, complete, tree, sparse, dense, trap)
//	graphio/ — "n m" header + "u v w" edge-line text format
//	compare/ — YAML-described suites, exact-vs-heuristic gap statistics
//
// Quick ASCII example:
//
//	    A──10──B
//	    │      │
//	    5     20
//	    │      │
//	    C──15──D
//
//	g, _ := core.Build(nil, []core.Edge{
//		{U: "A", V: "B", W: 10}, {U: "B", V: "D", W: 20},
//		{U: "D", V: "C", W: 15}, {U: "C", V: "A", W: 5},
//	})
//	best := longest.ExactSolve(g) // 45, [A B D C]
//
// The longpath CLI under cmd/ wraps all of it: solve one instance,
// generate fixtures, or run a YAML comparison suite.
//
//	go get github.com/katalvlaran/longpath
package longpath
