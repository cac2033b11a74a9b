package textpulse

import (
	"math"
	"sort"
)

const (
	textrankDamping = 0.85   // PageRank damping factor
	textrankEpsilon = 0.0001 // convergence threshold
	textrankMaxIter = 100    // iteration cap
	textrankWindow  = 2      // forward co-occurrence neighbors per word
)

// scoreTextRank ranks content words by running a PageRank-style update over
// an undirected weighted co-occurrence graph. words is the lowercased content
// word sequence in document order.
func scoreTextRank(words []string) map[string]float64 {
	nodes, edges := buildCooccurrenceGraph(words)
	if len(nodes) == 0 {
		return map[string]float64{}
	}

	ranks := pagerank(len(nodes), edges)

	scores := make(map[string]float64, len(nodes))
	for i, node := range nodes {
		scores[node] = ranks[i]
	}
	return scores
}

// graphEdge is a neighbor index plus accumulated co-occurrence weight.
type graphEdge struct {
	to     int
	weight float64
}

func buildCooccurrenceGraph(words []string) ([]string, [][]graphEdge) {
	index := make(map[string]int)
	var nodes []string
	for _, w := range words {
		if _, ok := index[w]; !ok {
			index[w] = len(nodes)
			nodes = append(nodes, w)
		}
	}

	edgeMaps := make([]map[int]float64, len(nodes))
	for i := range edgeMaps {
		edgeMaps[i] = make(map[int]float64)
	}

	for i, w := range words {
		wi := index[w]
		end := minInt(i+textrankWindow+1, len(words))
		for j := i + 1; j < end; j++ {
			wj := index[words[j]]
			if wi != wj {
				edgeMaps[wi][wj]++
				edgeMaps[wj][wi]++
			}
		}
	}

	edges := make([][]graphEdge, len(nodes))
	for i, m := range edgeMaps {
		edges[i] = make([]graphEdge, 0, len(m))
		for to, w := range m {
			edges[i] = append(edges[i], graphEdge{to: to, weight: w})
		}
		// Deterministic iteration order.
		sort.Slice(edges[i], func(a, b int) bool {
			return edges[i][a].to < edges[i][b].to
		})
	}

	return nodes, edges
}

// pagerank runs the damped power iteration until scores stabilize or the
// iteration cap is hit.
func pagerank(n int, edges [][]graphEdge) []float64 {
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	outWeight := make([]float64, n)
	for i, neighbors := range edges {
		for _, e := range neighbors {
			outWeight[i] += e.weight
		}
	}

	nf := float64(n)
	for iter := 0; iter < textrankMaxIter; iter++ {
		next := make([]float64, n)
		maxDelta := 0.0

		for i := 0; i < n; i++ {
			sum := 0.0
			for _, e := range edges[i] {
				if outWeight[e.to] > 0 {
					sum += (e.weight / outWeight[e.to]) * scores[e.to]
				}
			}
			next[i] = (1-textrankDamping)/nf + textrankDamping*sum
			if delta := math.Abs(next[i] - scores[i]); delta > maxDelta {
				maxDelta = delta
			}
		}

		scores = next
		if maxDelta < textrankEpsilon {
			break
		}
	}

	return scores
}
