// Package compare measures the quality gap between the exact and heuristic
// longest-path solvers over suites of generated instances.
//
// A Suite is a YAML-described list of generator cases; Run builds each
// graph, solves it with both families, and aggregates per-case gaps into a
// Summary (mean/max/90th-percentile gap, optimality rate). The exact solver
// has no internal deadline, so Run bounds it externally with a per-case
// wall-clock budget: a case whose exact solve overruns is reported as timed
// out and excluded from the aggregates.
package compare

import (
	"errors"
	"time"

	"github.com/katalvlaran/longpath/longest"
)

// Sentinel errors for suite loading and execution.
var (
	// ErrEmptySuite indicates a suite with no cases.
	ErrEmptySuite = errors.New("compare: suite has no cases")

	// ErrUnknownShape indicates a case naming a shape no generator implements.
	ErrUnknownShape = errors.New("compare: unknown case shape")

	// ErrBadCase indicates a case whose parameters the generator rejected.
	ErrBadCase = errors.New("compare: invalid case parameters")
)

// defaultExactBudget bounds one exact solve when the caller sets none.
const defaultExactBudget = 30 * time.Second

// Suite is a named list of generator cases, typically loaded from YAML.
type Suite struct {
	Name  string     `yaml:"name"`
	Cases []CaseSpec `yaml:"cases"`
}

// CaseSpec describes one generated instance.
//
// Shape selects the generator: path, cycle, star, complete, tree, sparse,
// dense or trap. N is the vertex count; M (sparse) and Density (dense) are
// shape-specific; Seed freezes the instance.
type CaseSpec struct {
	Name    string  `yaml:"name"`
	Shape   string  `yaml:"shape"`
	N       int     `yaml:"n"`
	M       int     `yaml:"m,omitempty"`
	Density float64 `yaml:"density,omitempty"`
	Seed    int64   `yaml:"seed"`
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name     string
	Order    int // vertices
	Size     int // edges
	TimedOut bool

	Exact  longest.Result
	Approx longest.Result

	ExactElapsed  time.Duration
	ApproxElapsed time.Duration

	// GapPercent is 100·(exact−approx)/exact; zero when exact is zero.
	GapPercent float64
}

// Summary aggregates the non-timed-out cases of a run.
type Summary struct {
	Cases    int // completed cases
	TimedOut int
	Optimal  int // cases where the heuristic matched the exact length

	OptimalRate float64 // Optimal / Cases
	MeanGap     float64 // percent
	MaxGap      float64 // percent
	P90Gap      float64 // percent, empirical 90th percentile
}

// Report is the full outcome of Run.
type Report struct {
	Suite   string
	Results []CaseResult
	Summary Summary
}

// Options configures Run.
//
// ExactBudget - wall-clock bound per exact solve (0 ⇒ defaultExactBudget).
// Seed        - base seed handed to the heuristic driver.
// ScorerSet   - heuristic family to measure.
type Options struct {
	ExactBudget time.Duration
	Seed        int64
	ScorerSet   longest.ScorerSet
}

// Option is a functional option for Run.
type Option func(*Options)

// WithExactBudget bounds each exact solve's wall-clock time.
func WithExactBudget(d time.Duration) Option {
	return func(o *Options) { o.ExactBudget = d }
}

// WithSeed sets the base seed for heuristic solves.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithScorerSet selects the heuristic family to measure.
func WithScorerSet(set longest.ScorerSet) Option {
	return func(o *Options) { o.ScorerSet = set }
}
