package compare

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
)

// LoadSuite decodes a YAML suite from r and validates its cases.
func LoadSuite(r io.Reader) (*Suite, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compare: read suite: %w", err)
	}

	var s Suite
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("compare: decode suite: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, ErrEmptySuite
	}
	var c CaseSpec
	for _, c = range s.Cases {
		if !knownShape(c.Shape) {
			return nil, fmt.Errorf("%w: %q (case %q)", ErrUnknownShape, c.Shape, c.Name)
		}
	}

	return &s, nil
}

// knownShape reports whether Build can dispatch the shape.
func knownShape(shape string) bool {
	switch shape {
	case "path", "cycle", "star", "complete", "tree", "sparse", "dense", "trap":
		return true
	default:
		return false
	}
}

// Build generates the case's graph.
func (c CaseSpec) Build() (*core.Graph, error) {
	seed := builder.WithSeed(c.Seed)

	var (
		g   *core.Graph
		err error
	)
	switch c.Shape {
	case "path":
		g, err = builder.Path(c.N, seed)
	case "cycle":
		g, err = builder.Cycle(c.N, seed)
	case "star":
		g, err = builder.Star(c.N, seed)
	case "complete":
		g, err = builder.Complete(c.N, seed)
	case "tree":
		g, err = builder.Tree(c.N, seed)
	case "sparse":
		g, err = builder.Sparse(c.N, c.M, seed)
	case "dense":
		g, err = builder.Dense(c.N, c.Density, seed)
	case "trap":
		g, err = builder.GreedyTrap(c.N, seed)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, c.Shape)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: case %q: %v", ErrBadCase, c.Name, err)
	}

	return g, nil
}

// Run executes the suite: every case is generated, solved exactly under the
// wall-clock budget, solved heuristically, and folded into the summary.
// ctx cancels between cases; a running exact solve cannot be interrupted,
// only abandoned when its budget lapses.
func Run(ctx context.Context, suite *Suite, opts ...Option) (*Report, error) {
	if suite == nil || len(suite.Cases) == 0 {
		return nil, ErrEmptySuite
	}

	o := Options{ExactBudget: defaultExactBudget}
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.ExactBudget <= 0 {
		o.ExactBudget = defaultExactBudget
	}

	rep := &Report{
		Suite:   suite.Name,
		Results: make([]CaseResult, 0, len(suite.Cases)),
	}

	var c CaseSpec
	for _, c = range suite.Cases {
		select {
		case <-ctx.Done():
			return rep, ctx.Err()
		default:
		}

		g, err := c.Build()
		if err != nil {
			return rep, err
		}

		res, err := runCase(c.Name, g, o)
		if err != nil {
			return rep, err
		}
		rep.Results = append(rep.Results, res)
	}

	rep.Summary = summarize(rep.Results)

	return rep, nil
}

// runCase solves one graph with both families.
func runCase(name string, g *core.Graph, o Options) (CaseResult, error) {
	out := CaseResult{
		Name:  name,
		Order: g.Order(),
		Size:  g.Size(),
	}

	// Exact under an external wall-clock bound: the solver itself has no
	// deadline, so an overrun is abandoned, not interrupted.
	type exactOutcome struct {
		res     longest.Result
		elapsed time.Duration
	}
	done := make(chan exactOutcome, 1)
	go func() {
		startedAt := time.Now()
		res := longest.ExactSolve(g)
		done <- exactOutcome{res: res, elapsed: time.Since(startedAt)}
	}()

	select {
	case ex := <-done:
		out.Exact = ex.res
		out.ExactElapsed = ex.elapsed
	case <-time.After(o.ExactBudget):
		out.TimedOut = true
	}

	startedAt := time.Now()
	approx, err := longest.ApproxSolve(g,
		longest.WithSeed(o.Seed),
		longest.WithScorerSet(o.ScorerSet),
	)
	if err != nil {
		return CaseResult{}, err
	}
	out.Approx = approx
	out.ApproxElapsed = time.Since(startedAt)

	if !out.TimedOut && out.Exact.Length > 0 {
		out.GapPercent = 100 * (out.Exact.Length - out.Approx.Length) / out.Exact.Length
	}

	return out, nil
}

// summarize aggregates the completed cases.
func summarize(results []CaseResult) Summary {
	var (
		s    Summary
		gaps []float64
		r    CaseResult
	)
	for _, r = range results {
		if r.TimedOut {
			s.TimedOut++

			continue
		}
		s.Cases++
		gaps = append(gaps, r.GapPercent)
		if r.GapPercent <= gapOptimalEps {
			s.Optimal++
		}
	}
	if s.Cases == 0 {
		return s
	}

	s.OptimalRate = float64(s.Optimal) / float64(s.Cases)
	s.MeanGap = stat.Mean(gaps, nil)

	sort.Float64s(gaps)
	s.MaxGap = gaps[len(gaps)-1]
	s.P90Gap = stat.Quantile(0.9, stat.Empirical, gaps, nil)

	return s
}

// gapOptimalEps treats sub-1e-9-percent gaps as optimal (FP stabilization
// keeps true optima at exactly zero, this only guards the comparison).
const gapOptimalEps = 1e-9
