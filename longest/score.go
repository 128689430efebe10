// Package longest - greedy step scorers.
//
// A scorer ranks a candidate next hop (current → neighbor) given the set of
// vertices the path has already visited. All scorers are pure with respect to
// solve state: they read the graph and a per-solve scoreContext of graph-wide
// facts, and never mutate anything.
//
// The family (constants below match the observed reference behavior):
//   - Simple:              score = w.
//   - OneStepLookahead:    score = w + 0.3·(best unvisited forward edge).
//   - TwoStepLookahead:    score = w + 0.4·max(f: w_f + 0.2·best third hop).
//   - HighWeightPriority:  weight-threshold bonuses, forward amplification,
//     access counting and dead-end avoidance.
//   - EdgeClusterPriority: bonuses for the graph's top-weight edges and
//     their endpoint clusters.
//
// Complexity: Simple O(1); lookaheads O(deg·deg) per candidate worst case.
package longest

import (
	"math"
	"sort"

	"github.com/katalvlaran/longpath/core"
)

// Scoring constants. Each is a tuned fraction or flat bonus; changing one
// changes heuristic behavior, not correctness.
const (
	oneStepFactor  = 0.3 // OneStepLookahead forward fraction
	twoStepFactor  = 0.4 // TwoStepLookahead second-hop fraction
	thirdHopFactor = 0.2 // TwoStepLookahead third-hop fraction

	highWeightRank    = 3    // threshold = 3rd-largest distinct weight
	highWeightBonus   = 1.2  // +20% on a qualifying direct edge
	highForwardFactor = 0.6  // fraction of best forward 1-hop value
	highAmplify       = 1.15 // +15% per qualifying forward edge value
	highTwoHopFactor  = 0.4  // fraction of best forward 2-hop weight
	highAccessBonus   = 20.0 // flat, per accessible high edge beyond the first
	highDeadEndMalus  = 30.0 // flat penalty for near-dead-end neighbors

	clusterRank          = 5   // top edges = 5 largest distinct weights
	clusterEdgeBonus     = 1.5 // +50% when the hop itself is a top edge
	clusterEndpointBonus = 20.0
	clusterTopForward    = 0.6 // accumulated per forward top edge
	clusterOtherForward  = 0.3 // max over non-top forward edges
)

// edgeKey canonicalizes an undirected pair for set membership.
func edgeKey(u, v string) [2]string {
	if u > v {
		u, v = v, u
	}

	return [2]string{u, v}
}

// scoreContext caches graph-wide facts the priority scorers need: the
// high-weight threshold and the top-weight edge set with its endpoints.
// Built once per solve from the graph alone, then treated as read-only.
type scoreContext struct {
	g *core.Graph

	highThreshold float64                // Wth: weights ≥ this are "high"
	topEdge       map[[2]string]struct{} // edges among the top distinct weights
	topEndpoint   map[string]struct{}    // endpoints of top edges
}

// newScoreContext precomputes scoring facts for g.
//
// Complexity: O(E log E) for the distinct-weight ordering.
func newScoreContext(g *core.Graph) *scoreContext {
	sc := &scoreContext{
		g:             g,
		highThreshold: math.Inf(1), // edgeless graphs never qualify
		topEdge:       make(map[[2]string]struct{}),
		topEndpoint:   make(map[string]struct{}),
	}

	// 1. Collect distinct edge weights.
	distinctSet := make(map[float64]struct{})
	var (
		u, v string
		w    float64
	)
	for _, u = range g.Vertices() {
		for _, v = range g.NeighborIDs(u) {
			if u < v { // each undirected edge once
				w, _ = g.Weight(u, v)
				distinctSet[w] = struct{}{}
			}
		}
	}
	if len(distinctSet) == 0 {
		return sc
	}

	distinct := make([]float64, 0, len(distinctSet))
	for w = range distinctSet {
		distinct = append(distinct, w)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	// 2. High-weight threshold: 3rd-largest distinct weight, or the largest
	//    when fewer than 3 distinct weights exist.
	if len(distinct) >= highWeightRank {
		sc.highThreshold = distinct[highWeightRank-1]
	} else {
		sc.highThreshold = distinct[0]
	}

	// 3. Top-edge cut: the 5 largest distinct weights (all, when fewer).
	cutIdx := clusterRank - 1
	if cutIdx >= len(distinct) {
		cutIdx = len(distinct) - 1
	}
	cut := distinct[cutIdx]
	for _, u = range g.Vertices() {
		for _, v = range g.NeighborIDs(u) {
			if u >= v {
				continue
			}
			w, _ = g.Weight(u, v)
			if w >= cut {
				sc.topEdge[edgeKey(u, v)] = struct{}{}
				sc.topEndpoint[u] = struct{}{}
				sc.topEndpoint[v] = struct{}{}
			}
		}
	}

	return sc
}

// score ranks the hop current→neighbor (direct weight w) for the given
// scorer kind. visited holds the path's vertices, current included; neighbor
// is never in it. Pure: no state is touched.
func (sc *scoreContext) score(kind ScorerKind, current, neighbor string, w float64, visited map[string]bool) float64 {
	switch kind {
	case Simple:
		return w
	case OneStepLookahead:
		return sc.scoreOneStep(neighbor, w, visited)
	case TwoStepLookahead:
		return sc.scoreTwoStep(neighbor, w, visited)
	case HighWeightPriority:
		return sc.scoreHighWeight(neighbor, w, visited)
	case EdgeClusterPriority:
		return sc.scoreEdgeCluster(current, neighbor, w, visited)
	default:
		return w
	}
}

// scoreOneStep adds a fraction of the heaviest edge the path could take next
// if it committed to neighbor. The edge back to current is excluded by the
// visited check (current is on the path).
func (sc *scoreContext) scoreOneStep(neighbor string, w float64, visited map[string]bool) float64 {
	var (
		best float64
		f    string
		fw   float64
	)
	for _, f = range sc.g.NeighborIDs(neighbor) {
		if visited[f] {
			continue
		}
		fw, _ = sc.g.Weight(neighbor, f)
		if fw > best {
			best = fw
		}
	}

	return w + oneStepFactor*best
}

// scoreTwoStep looks two hops ahead: for every unvisited forward vertex f it
// values w_f plus a fraction of f's own best onward edge, and takes the best.
func (sc *scoreContext) scoreTwoStep(neighbor string, w float64, visited map[string]bool) float64 {
	var (
		best  float64
		f, t  string
		fw    float64
		tw    float64
		third float64
		val   float64
	)
	for _, f = range sc.g.NeighborIDs(neighbor) {
		if visited[f] {
			continue
		}
		fw, _ = sc.g.Weight(neighbor, f)

		third = 0
		for _, t = range sc.g.NeighborIDs(f) {
			if visited[t] || t == neighbor {
				continue
			}
			tw, _ = sc.g.Weight(f, t)
			if tw > third {
				third = tw
			}
		}

		val = fw + thirdHopFactor*third
		if val > best {
			best = val
		}
	}

	return w + twoStepFactor*best
}

// scoreHighWeight prioritizes hops that take, or keep within reach, the
// graph's heaviest edges:
//   - +20% when the direct edge itself qualifies (w ≥ threshold);
//   - 0.6× the best forward 1-hop value, qualifying forward edges amplified
//     +15% and counted as accessible;
//   - 0.4× the best forward 2-hop weight;
//   - +20 per accessible high edge beyond the first;
//   - −30 when neighbor has ≤1 onward unvisited vertex while more than two
//     vertices remain unvisited overall (dead-end avoidance).
func (sc *scoreContext) scoreHighWeight(neighbor string, w float64, visited map[string]bool) float64 {
	score := w
	if w >= sc.highThreshold {
		score *= highWeightBonus
	}

	var (
		bestF1     float64
		bestF2     float64
		highAccess int
		onward     int
		f, t       string
		fw, tw     float64
		val        float64
	)
	for _, f = range sc.g.NeighborIDs(neighbor) {
		if visited[f] {
			continue
		}
		onward++

		// Forward 1-hop value, amplified when the edge qualifies.
		fw, _ = sc.g.Weight(neighbor, f)
		val = fw
		if fw >= sc.highThreshold {
			val = fw * highAmplify
			highAccess++
		}
		if val > bestF1 {
			bestF1 = val
		}

		// Forward 2-hop: heaviest edge leaving f, neighbor excluded.
		for _, t = range sc.g.NeighborIDs(f) {
			if visited[t] || t == neighbor {
				continue
			}
			tw, _ = sc.g.Weight(f, t)
			if tw > bestF2 {
				bestF2 = tw
			}
		}
	}

	score += highForwardFactor * bestF1
	score += highTwoHopFactor * bestF2
	if highAccess > 1 {
		score += float64(highAccess-1) * highAccessBonus
	}

	// Dead-end avoidance: neighbor counts as unvisited here.
	remaining := sc.g.Order() - len(visited)
	if onward <= 1 && remaining > 2 {
		score -= highDeadEndMalus
	}

	return score
}

// scoreEdgeCluster steers toward the cluster spanned by the graph's
// top-weight edges: +50% when the hop is itself a top edge, +20 flat when
// neighbor touches one, plus a forward bonus accumulating 0.6× per forward
// top edge (falling back to 0.3× the best ordinary forward edge when none).
func (sc *scoreContext) scoreEdgeCluster(current, neighbor string, w float64, visited map[string]bool) float64 {
	score := w
	if _, ok := sc.topEdge[edgeKey(current, neighbor)]; ok {
		score *= clusterEdgeBonus
	}
	if _, ok := sc.topEndpoint[neighbor]; ok {
		score += clusterEndpointBonus
	}

	var (
		accTop    float64
		bestOther float64
		f         string
		fw        float64
		val       float64
	)
	for _, f = range sc.g.NeighborIDs(neighbor) {
		if visited[f] {
			continue
		}
		fw, _ = sc.g.Weight(neighbor, f)
		if _, ok := sc.topEdge[edgeKey(neighbor, f)]; ok {
			accTop += clusterTopForward * fw
		} else if val = clusterOtherForward * fw; val > bestOther {
			bestOther = val
		}
	}
	if accTop > 0 {
		score += accTop
	} else {
		score += bestOther
	}

	return score
}
