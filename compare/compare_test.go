package compare_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/longpath/compare"
	"github.com/katalvlaran/longpath/longest"
	"github.com/stretchr/testify/require"
)

const suiteYAML = `
name: smoke
cases:
  - name: tiny-path
    shape: path
    n: 5
    seed: 1
  - name: complete-7
    shape: complete
    n: 7
    seed: 2
  - name: trap-8
    shape: trap
    n: 8
    seed: 3
  - name: sparse-10
    shape: sparse
    n: 10
    m: 14
    seed: 4
`

func TestLoadSuite(t *testing.T) {
	s, err := compare.LoadSuite(strings.NewReader(suiteYAML))
	require.NoError(t, err)
	require.Equal(t, "smoke", s.Name)
	require.Len(t, s.Cases, 4)
	require.Equal(t, "complete", s.Cases[1].Shape)
}

func TestLoadSuite_Errors(t *testing.T) {
	_, err := compare.LoadSuite(strings.NewReader("name: empty\ncases: []\n"))
	require.ErrorIs(t, err, compare.ErrEmptySuite)

	bad := "name: x\ncases:\n  - name: c\n    shape: dodecahedron\n    n: 5\n"
	_, err = compare.LoadSuite(strings.NewReader(bad))
	require.ErrorIs(t, err, compare.ErrUnknownShape)
}

func TestCaseSpec_Build(t *testing.T) {
	g, err := compare.CaseSpec{Name: "d", Shape: "dense", N: 8, Density: 0.5, Seed: 1}.Build()
	require.NoError(t, err)
	require.Equal(t, 8, g.Order())

	_, err = compare.CaseSpec{Name: "bad", Shape: "cycle", N: 2, Seed: 1}.Build()
	require.ErrorIs(t, err, compare.ErrBadCase)
}

func TestRun_SmokeSuite(t *testing.T) {
	s, err := compare.LoadSuite(strings.NewReader(suiteYAML))
	require.NoError(t, err)

	rep, err := compare.Run(context.Background(), s,
		compare.WithSeed(42),
		compare.WithScorerSet(longest.ScorerSetAll),
		compare.WithExactBudget(time.Minute),
	)
	require.NoError(t, err)
	require.Len(t, rep.Results, 4)
	require.Equal(t, 4, rep.Summary.Cases)
	require.Zero(t, rep.Summary.TimedOut)

	for _, r := range rep.Results {
		require.False(t, r.TimedOut)
		// The heuristic can never beat the exact optimum.
		require.GreaterOrEqual(t, r.GapPercent, -1e-9, "case %s", r.Name)
		require.GreaterOrEqual(t, r.Exact.Length+1e-9, r.Approx.Length, "case %s", r.Name)
	}

	require.GreaterOrEqual(t, rep.Summary.MaxGap, rep.Summary.MeanGap)
	require.GreaterOrEqual(t, rep.Summary.OptimalRate, 0.0)
	require.LessOrEqual(t, rep.Summary.OptimalRate, 1.0)
}

func TestRun_ContextCancel(t *testing.T) {
	s, err := compare.LoadSuite(strings.NewReader(suiteYAML))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = compare.Run(ctx, s)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_NilSuite(t *testing.T) {
	_, err := compare.Run(context.Background(), nil)
	require.ErrorIs(t, err, compare.ErrEmptySuite)
}
