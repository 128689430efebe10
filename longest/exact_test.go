package longest_test

import (
	"testing"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
	"github.com/stretchr/testify/require"
)

// triangle builds {A-B:10, B-C:20, A-C:5}.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(nil, []core.Edge{
		{U: "A", V: "B", W: 10},
		{U: "B", V: "C", W: 20},
		{U: "A", V: "C", W: 5},
	})
	require.NoError(t, err)

	return g
}

func TestExactSolve_Triangle(t *testing.T) {
	res := longest.ExactSolve(triangle(t))
	require.Equal(t, 30.0, res.Length)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestExactSolve_Star(t *testing.T) {
	// Center C, four unit leaves: the optimum is any leaf-center-leaf hop.
	g, err := core.Build(nil, []core.Edge{
		{U: "C", V: "L1", W: 1},
		{U: "C", V: "L2", W: 1},
		{U: "C", V: "L3", W: 1},
		{U: "C", V: "L4", W: 1},
	})
	require.NoError(t, err)

	res := longest.ExactSolve(g)
	require.Equal(t, 2.0, res.Length)
	require.Len(t, res.Path, 3)
	require.Equal(t, "C", res.Path[1])
	require.NoError(t, longest.ValidatePath(g, res.Path))
}

func TestExactSolve_EmptyInstance(t *testing.T) {
	res := longest.ExactSolve(nil)
	require.Equal(t, 0.0, res.Length)
	require.Empty(t, res.Path)
}

func TestExactSolve_PathGraph(t *testing.T) {
	g, err := core.Build(nil, []core.Edge{
		{U: "A", V: "B", W: 1},
		{U: "B", V: "C", W: 2},
		{U: "C", V: "D", W: 3},
	})
	require.NoError(t, err)

	res := longest.ExactSolve(g)
	require.Equal(t, 6.0, res.Length)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
}

func TestExactSolve_GreedyTrap(t *testing.T) {
	// The heavy A-B edge dead-ends behind C; the global optimum threads the
	// bait in the middle: C-B-A-D-E-F = 1+100+30+30+30.
	g, err := core.Build(nil, []core.Edge{
		{U: "A", V: "B", W: 100},
		{U: "B", V: "C", W: 1},
		{U: "A", V: "D", W: 30},
		{U: "D", V: "E", W: 30},
		{U: "E", V: "F", W: 30},
	})
	require.NoError(t, err)

	res := longest.ExactSolve(g)
	require.Equal(t, 191.0, res.Length)
	require.Equal(t, []string{"C", "B", "A", "D", "E", "F"}, res.Path)
}

func TestExactSolve_EdgelessGraph_SingletonAnswer(t *testing.T) {
	g, err := core.Build([]string{"a", "b"}, nil)
	require.NoError(t, err)

	res := longest.ExactSolve(g)
	require.Equal(t, 0.0, res.Length)
	require.Equal(t, []string{"a"}, res.Path)
}

func TestExactSolve_AllNegativeWeights_SingletonWins(t *testing.T) {
	g, err := core.Build(nil, []core.Edge{
		{U: "a", V: "b", W: -5},
		{U: "b", V: "c", W: -2},
	})
	require.NoError(t, err)

	// Every edge loses weight, so the zero-edge singleton is optimal.
	res := longest.ExactSolve(g)
	require.Equal(t, 0.0, res.Length)
	require.Equal(t, []string{"a"}, res.Path)
}

func TestExactSolve_Deterministic(t *testing.T) {
	g, err := core.Build(nil, []core.Edge{
		// Two disjoint equal-weight paths; the ID-ordered search must pick
		// the same winner every run.
		{U: "a1", V: "a2", W: 7},
		{U: "b1", V: "b2", W: 7},
	})
	require.NoError(t, err)

	first := longest.ExactSolve(g)
	second := longest.ExactSolve(g)
	require.Equal(t, first, second)
	require.Equal(t, []string{"a1", "a2"}, first.Path)
}
