package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/longpath/core"
)

// ids returns Prefix+"1" … Prefix+"n".
func ids(n int, o Options) []string {
	out := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = o.Prefix + strconv.Itoa(i+1)
	}

	return out
}

// weightFn returns a uniform integer-weight generator over the configured
// range, or an error when the range is inverted.
func weightFn(o Options, rng *rand.Rand) (func() float64, error) {
	if o.MinWeight > o.MaxWeight {
		return nil, ErrBadWeightRange
	}
	span := o.MaxWeight - o.MinWeight + 1

	return func() float64 {
		return float64(o.MinWeight + rng.Intn(span))
	}, nil
}

// Path generates the path graph P_n: v1−v2−…−vn with random weights.
// Requires n ≥ 2.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	o := resolve(opts)
	rng := rand.New(rand.NewSource(o.Seed))
	w, err := weightFn(o, rng)
	if err != nil {
		return nil, err
	}

	v := ids(n, o)
	edges := make([]core.Edge, 0, n-1)
	var i int
	for i = 0; i < n-1; i++ {
		edges = append(edges, core.Edge{U: v[i], V: v[i+1], W: w()})
	}

	return core.Build(v, edges)
}

// Cycle generates the cycle graph C_n with random weights. Requires n ≥ 3.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	o := resolve(opts)
	rng := rand.New(rand.NewSource(o.Seed))
	w, err := weightFn(o, rng)
	if err != nil {
		return nil, err
	}

	v := ids(n, o)
	edges := make([]core.Edge, 0, n)
	var i int
	for i = 0; i < n; i++ {
		edges = append(edges, core.Edge{U: v[i], V: v[(i+1)%n], W: w()})
	}

	return core.Build(v, edges)
}

// Star generates a star: v1 is the center, v2…vn the leaves. Requires n ≥ 2.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	o := resolve(opts)
	rng := rand.New(rand.NewSource(o.Seed))
	w, err := weightFn(o, rng)
	if err != nil {
		return nil, err
	}

	v := ids(n, o)
	edges := make([]core.Edge, 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		edges = append(edges, core.Edge{U: v[0], V: v[i], W: w()})
	}

	return core.Build(v, edges)
}

// Complete generates the complete graph K_n with random weights.
// Requires n ≥ 1.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	o := resolve(opts)
	rng := rand.New(rand.NewSource(o.Seed))
	w, err := weightFn(o, rng)
	if err != nil {
		return nil, err
	}

	v := ids(n, o)
	edges := make([]core.Edge, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, core.Edge{U: v[i], V: v[j], W: w()})
		}
	}

	return core.Build(v, edges)
}

// Tree generates a random recursive tree: each vertex after the first
// attaches to a uniformly chosen earlier vertex. n−1 edges, no cycles.
// Requires n ≥ 1.
func Tree(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	o := resolve(opts)
	rng := rand.New(rand.NewSource(o.Seed))
	w, err := weightFn(o, rng)
	if err != nil {
		return nil, err
	}

	v := ids(n, o)
	edges := make([]core.Edge, 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		edges = append(edges, core.Edge{U: v[rng.Intn(i)], V: v[i], W: w()})
	}

	return core.Build(v, edges)
}

// Sparse generates n vertices and m random distinct edges (m clamped to
// C(n,2)): the possible-edge list is shuffled and the first m taken.
// Requires n ≥ 1.
func Sparse(n, m int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	o := resolve(opts)
	rng := rand.New(rand.NewSource(o.Seed))
	w, err := weightFn(o, rng)
	if err != nil {
		return nil, err
	}

	maxEdges := n * (n - 1) / 2
	if m > maxEdges {
		m = maxEdges
	}
	if m < 0 {
		m = 0
	}

	v := ids(n, o)
	possible := make([][2]int, 0, maxEdges)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			possible = append(possible, [2]int{i, j})
		}
	}
	rng.Shuffle(len(possible), func(a, b int) {
		possible[a], possible[b] = possible[b], possible[a]
	})

	edges := make([]core.Edge, 0, m)
	for i = 0; i < m; i++ {
		edges = append(edges, core.Edge{U: v[possible[i][0]], V: v[possible[i][1]], W: w()})
	}

	return core.Build(v, edges)
}

// Dense generates a Sparse graph at the given density fraction of C(n,2).
// Requires n ≥ 1 and density in (0, 1].
func Dense(n int, density float64, opts ...Option) (*core.Graph, error) {
	if density <= 0 || density > 1 {
		return nil, ErrBadDensity
	}
	m := int(float64(n*(n-1)/2) * density)

	return Sparse(n, m, opts...)
}

// GreedyTrap generates a deceptive instance for greedy scorers: a heavy edge
// (100) from v1 into a short dead end versus a chain of medium edges (30)
// whose total exceeds it, plus a few random braces among the chain's tail.
// Requires n ≥ 4.
func GreedyTrap(n int, opts ...Option) (*core.Graph, error) {
	if n < 4 {
		return nil, ErrTooFewVertices
	}
	o := resolve(opts)
	rng := rand.New(rand.NewSource(o.Seed))

	v := ids(n, o)
	edges := []core.Edge{
		{U: v[0], V: v[1], W: 100}, // the bait
		{U: v[1], V: v[2], W: 1},   // the dead end behind it
		{U: v[0], V: v[3], W: 30},  // entry to the medium chain
	}

	// Medium chain v4−v5−v6−… capped at the first six vertices.
	var i, j int
	for i = 3; i < n && i < 6; i++ {
		if i+1 < n {
			edges = append(edges, core.Edge{U: v[i], V: v[i+1], W: 30})
		}
	}

	// Random braces among the remainder keep larger instances interesting.
	for i = 4; i < n; i++ {
		for j = i + 1; j < n && j < i+3; j++ {
			edges = append(edges, core.Edge{U: v[i], V: v[j], W: float64(10 + rng.Intn(41))})
		}
	}

	return core.Build(v, edges)
}
