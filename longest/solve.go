// Package longest - multi-start / multi-seed approximate driver.
//
// ApproxSolve runs the greedy path builder from many start vertices, with
// several derived seeds per start, once per scorer in the active set, and
// keeps the single best path. Cost is deterministically bounded by
// starts × seeds × scorers builder calls; there is no early stopping and no
// convergence check.
package longest

import (
	"math"
	"sort"

	"github.com/katalvlaran/longpath/core"
)

// Driver budgets. Starts are capped for large graphs and the seed budget per
// start shrinks as the graph grows, keeping total work polynomial.
const (
	allStartsThreshold = 40  // try every vertex up to this order
	maxAutoStarts      = 200 // start cap for automatic selection
	diversityStarts    = 16  // random picks reserved among capped starts

	// Auto scorer-set switch: moderate order + low density is where the
	// general scorers were observed to underperform the priority pair.
	autoPriorityMinOrder = 15
	autoPriorityMaxOrder = 80
	autoPriorityDensity  = 0.3
)

// seedBudget returns the number of derived seeds per start for a graph of
// order n: tens for small instances, single digits for large ones.
func seedBudget(n int) int {
	switch {
	case n <= 20:
		return 24
	case n <= 60:
		return 12
	case n <= 150:
		return 6
	case n <= 400:
		return 4
	default:
		return 2
	}
}

// ApproxSolve finds an approximate longest simple path in g.
//
// Semantics:
//   - Global best across all (start, seed, scorer) builder calls; strict
//     improvement, so the first-found path wins ties.
//   - Deterministic for a fixed graph, seed and options: every builder call
//     receives its own SplitMix64-derived RNG stream.
//   - A nil graph is the empty instance: (0, []), not an error.
//
// Errors: ErrBadStartCount, ErrUnknownScorerSet (option validation only).
//
// Complexity: O(starts · seeds · scorers · V·E) worst case.
func ApproxSolve(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Resolve options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.StartCount < AllStarts {
		return Result{}, ErrBadStartCount
	}
	if o.Scorers < ScorerSetAuto || o.Scorers > ScorerSetAll {
		return Result{}, ErrUnknownScorerSet
	}

	// 2. Degenerate instance.
	if g == nil || g.Order() == 0 {
		return Result{Length: 0, Path: []string{}}, nil
	}

	// 3. Per-solve precomputation.
	var (
		sc     = newScoreContext(g)
		kinds  = activeScorers(g, o.Scorers)
		starts = selectStarts(g, o.StartCount, o.Seed)
		seeds  = seedBudget(g.Order())
		best   = Result{Length: math.Inf(-1)}
	)

	// 4. starts × seeds × scorers builder calls; strict-improvement best.
	var (
		start  string
		si     int
		kind   ScorerKind
		stream uint64
		length float64
		path   []string
	)
	for _, start = range starts {
		for si = 0; si < seeds; si++ {
			for _, kind = range kinds {
				rng := rngFromSeed(deriveSeed(o.Seed, stream))
				stream++

				length, path = sc.extendFrom(kind, start, rng, o.Repair)
				if length > best.Length {
					best = Result{Length: length, Path: path}
				}
			}
		}
	}

	best.Length = round1e9(best.Length)

	return best, nil
}

// activeScorers resolves a ScorerSet against the graph's size class.
func activeScorers(g *core.Graph, set ScorerSet) []ScorerKind {
	general := []ScorerKind{Simple, OneStepLookahead, TwoStepLookahead}
	priority := []ScorerKind{HighWeightPriority, EdgeClusterPriority}

	switch set {
	case ScorerSetGeneral:
		return general
	case ScorerSetPriority:
		return priority
	case ScorerSetAll:
		return append(general, priority...)
	default: // ScorerSetAuto
		n := g.Order()
		if n >= autoPriorityMinOrder && n <= autoPriorityMaxOrder && density(g) <= autoPriorityDensity {
			return priority
		}

		return general
	}
}

// density returns 2E / (V·(V−1)), the filled fraction of possible edges.
func density(g *core.Graph) float64 {
	n := g.Order()
	if n < 2 {
		return 0
	}

	return 2 * float64(g.Size()) / (float64(n) * float64(n-1))
}

// selectStarts picks the start vertices: every vertex when the budget covers
// the graph, otherwise the highest-degree vertices first (ties in ID order)
// with a few seeded random picks from the remainder for diversity.
func selectStarts(g *core.Graph, startCount int, seed int64) []string {
	var (
		verts = g.Vertices()
		n     = len(verts)
		limit int
	)
	switch {
	case startCount == AllStarts:
		return verts
	case startCount > 0:
		limit = startCount
	default: // automatic
		if n <= allStartsThreshold {
			return verts
		}
		limit = maxAutoStarts
	}
	if limit >= n {
		return verts
	}

	// Degree-descending order; Vertices() is ID-sorted, stable sort keeps
	// that as the tie-break.
	order := append([]string(nil), verts...)
	sort.SliceStable(order, func(i, j int) bool {
		di, _ := g.Degree(order[i]) // ids come from Vertices(), cannot be missing
		dj, _ := g.Degree(order[j])

		return di > dj
	})

	// Reserve a slice of the budget for random diversity picks.
	reserve := diversityStarts
	if reserve > limit/4 {
		reserve = limit / 4
	}
	picked := append([]string(nil), order[:limit-reserve]...)

	if reserve > 0 {
		rest := order[limit-reserve:]
		rng := rngFromSeed(deriveSeed(seed, uint64(n)))
		var i, j int
		for i = 0; i < reserve; i++ {
			j = i + rng.Intn(len(rest)-i)
			rest[i], rest[j] = rest[j], rest[i]
			picked = append(picked, rest[i])
		}
	}

	return picked
}
