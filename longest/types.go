package longest

import "errors"

// Sentinel errors returned by the approximate driver's option validation.
var (
	// ErrBadStartCount indicates a StartCount below AllStarts (-1).
	ErrBadStartCount = errors.New("longest: start count must be AllStarts, 0 (auto) or positive")

	// ErrUnknownScorerSet indicates a ScorerSet outside the declared enum.
	ErrUnknownScorerSet = errors.New("longest: unknown scorer set")
)

// Sentinel errors returned by path validation (PathWeight, ValidatePath).
var (
	// ErrNilGraph indicates a nil graph paired with a non-empty path.
	ErrNilGraph = errors.New("longest: graph is nil")

	// ErrVertexMissing indicates the path references a vertex the graph lacks.
	ErrVertexMissing = errors.New("longest: path vertex not in graph")

	// ErrEdgeMissing indicates two consecutive path vertices share no edge.
	ErrEdgeMissing = errors.New("longest: consecutive path vertices not adjacent")

	// ErrRepeatedVertex indicates the path visits some vertex twice.
	ErrRepeatedVertex = errors.New("longest: path repeats a vertex")
)

// tieEps is the absolute tolerance for score tie detection and the precision
// lengths are stabilized to. Keeps tie groups and reported lengths identical
// across platforms and optimization levels.
const tieEps = 1e-9

// Result holds the outcome of a longest-path solve.
type Result struct {
	// Length is the total weight of Path's consecutive edges.
	Length float64

	// Path is the vertex sequence, no vertex repeated. Empty for the empty
	// instance; a single vertex when no edge improves on the bare start.
	Path []string
}

// ScorerKind selects one greedy step-scoring strategy. The set is closed:
// scorers are dispatched by explicit switch, not open-ended interfaces.
type ScorerKind int

const (
	// Simple scores a hop by its direct edge weight only.
	Simple ScorerKind = iota

	// OneStepLookahead adds a fraction of the best unvisited forward edge.
	OneStepLookahead

	// TwoStepLookahead extends the lookahead one hop further with decaying
	// fractions.
	TwoStepLookahead

	// HighWeightPriority chases the graph's top-weight edges, amplifying
	// qualifying forward edges and penalizing imminent dead ends.
	HighWeightPriority

	// EdgeClusterPriority steers toward clusters formed by the endpoints of
	// the graph's top-weight edges.
	EdgeClusterPriority
)

// String returns the scorer's stable identifier.
func (k ScorerKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case OneStepLookahead:
		return "one-step-lookahead"
	case TwoStepLookahead:
		return "two-step-lookahead"
	case HighWeightPriority:
		return "high-weight-priority"
	case EdgeClusterPriority:
		return "edge-cluster-priority"
	default:
		return "unknown"
	}
}

// ScorerSet names which scorer family ApproxSolve runs per (start, seed).
type ScorerSet int

const (
	// ScorerSetAuto picks ScorerSetPriority for moderate-order, low-density
	// graphs (where the general scorers underperform) and ScorerSetGeneral
	// otherwise.
	ScorerSetAuto ScorerSet = iota

	// ScorerSetGeneral runs Simple, OneStepLookahead and TwoStepLookahead.
	ScorerSetGeneral

	// ScorerSetPriority runs HighWeightPriority and EdgeClusterPriority.
	ScorerSetPriority

	// ScorerSetAll runs every scorer.
	ScorerSetAll
)

// String returns the set's stable identifier.
func (s ScorerSet) String() string {
	switch s {
	case ScorerSetAuto:
		return "auto"
	case ScorerSetGeneral:
		return "general"
	case ScorerSetPriority:
		return "priority"
	case ScorerSetAll:
		return "all"
	default:
		return "unknown"
	}
}

// AllStarts directs ApproxSolve to try every vertex as a start regardless of
// graph order.
const AllStarts = -1

// Options configures ApproxSolve.
//
// StartCount - AllStarts: every vertex; 0: automatic (all vertices for small
// graphs, a high-degree-first cap with a few random diversity picks for large
// ones); k>0: at most k starts.
// Seed       - base seed for all randomized tie-breaking; 0 selects a fixed
// default so results stay reproducible by default.
// Scorers    - which scorer family to run per (start, seed).
// Repair     - enables the one-step dead-end repair in the path builder.
type Options struct {
	StartCount int       // start-vertex budget (AllStarts, 0=auto, or positive cap)
	Seed       int64     // base RNG seed; 0 ⇒ defaultSeed
	Scorers    ScorerSet // active scorer family
	Repair     bool      // one-step backtrack repair on dead ends
}

// Option is a functional option for ApproxSolve.
type Option func(*Options)

// WithStartCount caps the number of start vertices. Pass AllStarts to force
// every vertex; 0 restores automatic selection.
func WithStartCount(n int) Option {
	return func(o *Options) { o.StartCount = n }
}

// WithAllStarts forces every vertex to be tried as a start.
func WithAllStarts() Option {
	return func(o *Options) { o.StartCount = AllStarts }
}

// WithSeed sets the base seed for randomized tie-breaking. The same seed on
// the same graph and options reproduces the identical result.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithScorerSet selects the scorer family to run.
func WithScorerSet(set ScorerSet) Option {
	return func(o *Options) { o.Scorers = set }
}

// WithoutRepair disables the one-step dead-end repair, yielding the strict
// greedy builder.
func WithoutRepair() Option {
	return func(o *Options) { o.Repair = false }
}

// DefaultOptions returns the driver defaults: automatic start selection,
// fixed default seed, automatic scorer-set switching, repair enabled.
func DefaultOptions() Options {
	return Options{
		StartCount: 0,
		Seed:       0,
		Scorers:    ScorerSetAuto,
		Repair:     true,
	}
}
