// Package longest - greedy path builder.
//
// extendFrom grows a simple path from one start vertex under one scorer:
// score every unvisited neighbor of the tip, gather all candidates within
// tieEps of the maximum, pick uniformly at random among them with the
// caller-supplied RNG, commit the hop's direct edge weight (not its score),
// advance. On a dead end the repair-capable variant undoes exactly one hop
// and retries from the new tip; a popped vertex is barred from re-entering
// the walk, which bounds the loop (each dead end removes one vertex from
// play, each advance consumes one).
//
// Complexity: O(V·E) per call worst case (each of ≤V steps scores ≤deg
// candidates, lookahead scorers touch ≤E forward edges).
package longest

import "math/rand"

// extendFrom builds one greedy path. Returns the best (length, path) snapshot
// observed during the walk, so a repair sequence that fails to extend cannot
// hand back a worse path than the walk already had.
func (sc *scoreContext) extendFrom(kind ScorerKind, start string, rng *rand.Rand, repair bool) (float64, []string) {
	g := sc.g

	var (
		visited = map[string]bool{start: true}
		banned  map[string]bool // popped by repair; barred from this walk
		path    = []string{start}
		current = start
		length  float64

		bestLen  float64
		bestPath = []string{start}

		candIDs    []string  // candidate buffer, reused across steps
		candScores []float64 // scores aligned with candIDs
		ties       []int     // indices within tieEps of the max
	)

	for {
		// 1. Score all admissible next hops from the tip.
		candIDs = candIDs[:0]
		candScores = candScores[:0]
		var (
			best   float64
			scored bool
			nb     string
			w, s   float64
		)
		for _, nb = range g.NeighborIDs(current) {
			if visited[nb] || banned[nb] {
				continue
			}
			w, _ = g.Weight(current, nb)
			s = sc.score(kind, current, nb, w, visited)
			candIDs = append(candIDs, nb)
			candScores = append(candScores, s)
			if !scored || s > best {
				best = s
				scored = true
			}
		}

		// 2. Dead end: undo one hop and retry, or terminate.
		if len(candIDs) == 0 {
			if repair && len(path) > 1 && len(visited) < g.Order() {
				tail := path[len(path)-1]
				path = path[:len(path)-1]
				prev := path[len(path)-1]
				w, _ = g.Weight(prev, tail)
				length -= w
				delete(visited, tail)
				if banned == nil {
					banned = make(map[string]bool, 4)
				}
				banned[tail] = true
				current = prev

				continue
			}

			break
		}

		// 3. Randomized tie-break among candidates within tolerance of max.
		ties = ties[:0]
		var i int
		for i = range candScores {
			if best-candScores[i] <= tieEps {
				ties = append(ties, i)
			}
		}
		pick := ties[0]
		if len(ties) > 1 {
			pick = ties[rng.Intn(len(ties))]
		}

		// 4. Commit the hop: direct edge weight, never the score.
		chosen := candIDs[pick]
		w, _ = g.Weight(current, chosen)
		length += w
		visited[chosen] = true
		path = append(path, chosen)
		current = chosen

		// 5. Snapshot strict improvements.
		if length > bestLen {
			bestLen = length
			bestPath = append(bestPath[:0:0], path...)
		}
	}

	return bestLen, bestPath
}
