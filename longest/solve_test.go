package longest_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
	"github.com/stretchr/testify/require"
)

func TestApproxSolve_EmptyInstance(t *testing.T) {
	res, err := longest.ApproxSolve(nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Length)
	require.Empty(t, res.Path)
}

func TestApproxSolve_PathGraph_SimpleScorerIsExact(t *testing.T) {
	g, err := core.Build(nil, []core.Edge{
		{U: "A", V: "B", W: 1},
		{U: "B", V: "C", W: 2},
		{U: "C", V: "D", W: 3},
	})
	require.NoError(t, err)

	res, err := longest.ApproxSolve(g, longest.WithScorerSet(longest.ScorerSetGeneral))
	require.NoError(t, err)
	require.Equal(t, 6.0, res.Length)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
}

func TestApproxSolve_Reproducible(t *testing.T) {
	g, err := builder.Sparse(18, 32, builder.WithSeed(5))
	require.NoError(t, err)

	first, err := longest.ApproxSolve(g, longest.WithSeed(42))
	require.NoError(t, err)
	second, err := longest.ApproxSolve(g, longest.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestApproxSolve_GreedyTrap_QualityGap(t *testing.T) {
	// A-B is the bait: heaviest edge, but it dead-ends behind C. Restricted
	// to the single (highest-degree) start A, the greedy family commits to
	// the bait and tops out at 101, while the optimum threads the bait
	// mid-path for 191. Multi-start closes the gap: the walk from C rides
	// C-B-A-D-E-F to the optimum.
	g, err := core.Build(nil, []core.Edge{
		{U: "A", V: "B", W: 100},
		{U: "B", V: "C", W: 1},
		{U: "A", V: "D", W: 30},
		{U: "D", V: "E", W: 30},
		{U: "E", V: "F", W: 30},
	})
	require.NoError(t, err)

	exact := longest.ExactSolve(g)
	require.Equal(t, 191.0, exact.Length)

	trapped, err := longest.ApproxSolve(g,
		longest.WithStartCount(1),
		longest.WithScorerSet(longest.ScorerSetGeneral),
	)
	require.NoError(t, err)
	require.Equal(t, 101.0, trapped.Length)

	full, err := longest.ApproxSolve(g, longest.WithScorerSet(longest.ScorerSetGeneral))
	require.NoError(t, err)
	require.Equal(t, 191.0, full.Length)
}

func TestApproxSolve_OptionValidation(t *testing.T) {
	g := triangle(t)

	_, err := longest.ApproxSolve(g, longest.WithStartCount(-2))
	require.ErrorIs(t, err, longest.ErrBadStartCount)

	_, err = longest.ApproxSolve(g, longest.WithScorerSet(longest.ScorerSet(99)))
	require.ErrorIs(t, err, longest.ErrUnknownScorerSet)
}

// TestSolvers_Properties checks the cross-solver contract on a spread of
// generated instances: reported length always equals the recomputed path
// weight, every returned path is simple and real, and the exact length
// dominates every heuristic configuration.
func TestSolvers_Properties(t *testing.T) {
	fixtures := map[string]*core.Graph{}

	g, err := builder.Complete(7, builder.WithSeed(1))
	require.NoError(t, err)
	fixtures["complete7"] = g

	g, err = builder.Sparse(10, 14, builder.WithSeed(2))
	require.NoError(t, err)
	fixtures["sparse10"] = g

	g, err = builder.Tree(9, builder.WithSeed(3))
	require.NoError(t, err)
	fixtures["tree9"] = g

	g, err = builder.GreedyTrap(8, builder.WithSeed(4))
	require.NoError(t, err)
	fixtures["trap8"] = g

	g, err = builder.Cycle(6, builder.WithSeed(5))
	require.NoError(t, err)
	fixtures["cycle6"] = g

	sets := []longest.ScorerSet{
		longest.ScorerSetAuto,
		longest.ScorerSetGeneral,
		longest.ScorerSetPriority,
		longest.ScorerSetAll,
	}

	for name, g := range fixtures {
		t.Run(name, func(t *testing.T) {
			exact := longest.ExactSolve(g)

			// Self-consistency + validity of the exact result.
			w, err := longest.PathWeight(g, exact.Path)
			require.NoError(t, err)
			require.InDelta(t, exact.Length, w, 1e-9)

			for _, set := range sets {
				t.Run(fmt.Sprintf("set=%s", set), func(t *testing.T) {
					approx, err := longest.ApproxSolve(g,
						longest.WithSeed(7),
						longest.WithScorerSet(set),
					)
					require.NoError(t, err)

					w, err := longest.PathWeight(g, approx.Path)
					require.NoError(t, err)
					require.InDelta(t, approx.Length, w, 1e-9)

					// Exactness dominance.
					require.LessOrEqual(t, approx.Length, exact.Length+1e-9)
				})
			}
		})
	}
}

func TestApproxSolve_WithoutRepair_NeverBeatsRepair(t *testing.T) {
	g, err := builder.GreedyTrap(10, builder.WithSeed(11))
	require.NoError(t, err)

	repaired, err := longest.ApproxSolve(g, longest.WithSeed(3))
	require.NoError(t, err)
	strict, err := longest.ApproxSolve(g, longest.WithSeed(3), longest.WithoutRepair())
	require.NoError(t, err)

	require.GreaterOrEqual(t, repaired.Length+1e-9, strict.Length)
}

func TestApproxSolve_StartCapIsHonored(t *testing.T) {
	// A capped solve must still return a valid result; the cap only limits
	// work, not correctness.
	g, err := builder.Sparse(60, 150, builder.WithSeed(8))
	require.NoError(t, err)

	res, err := longest.ApproxSolve(g, longest.WithStartCount(5), longest.WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, longest.ValidatePath(g, res.Path))

	w, err := longest.PathWeight(g, res.Path)
	require.NoError(t, err)
	require.InDelta(t, res.Length, w, 1e-9)
}
