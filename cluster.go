package textpulse

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"
	"gonum.org/v1/gonum/floats"
)

const (
	clusterCandidateLimit = 30    // merged keywords considered for clustering
	clusterWindow         = 5     // co-occurrence window
	clusterMaxK           = 5     // cluster count cap
	clusterMaxIter        = 50    // k-means iteration cap
	clusterConvergence    = 0.001 // max centroid coordinate delta
)

// buildTopics clusters the top merged keywords by their co-occurrence
// profiles. Each keyword's feature vector is its co-occurrence row against
// the candidate set (window 5); k-means with Euclidean distance partitions
// the candidates into at most five clusters. Centroid seeding draws from rng,
// so a fixed seed makes the clustering reproducible.
func buildTopics(candidates []ScoredKeyword, words []string, corpus []string, rng *rand.Rand) []TopicCluster {
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) > clusterCandidateLimit {
		candidates = candidates[:clusterCandidateLimit]
	}

	index := make(map[string]int, len(candidates))
	for i, c := range candidates {
		index[c.Keyword] = i
	}

	vectors := cooccurrenceVectors(index, len(candidates), words)
	k := clusterMaxK
	if len(candidates) < 2*k {
		k = maxInt(1, len(candidates)/2)
	}

	assignment := kmeans(vectors, k, rng)

	// Group members per cluster, preserving candidate (score) order.
	members := make([][]int, k)
	for i, c := range assignment {
		members[c] = append(members[c], i)
	}

	maxScore := candidates[0].Score
	if maxScore == 0 {
		maxScore = 1
	}

	var topics []TopicCluster
	for _, m := range members {
		if len(m) == 0 {
			continue
		}
		keywords := make([]string, len(m))
		relevance := 0.0
		for i, idx := range m {
			keywords[i] = candidates[idx].Keyword
			relevance += candidates[idx].Score / maxScore
		}
		relevance /= float64(len(m))

		topics = append(topics, TopicCluster{
			ID:            ulid.Make().String(),
			Name:          clusterName(keywords),
			Keywords:      keywords,
			Relevance:     clamp01(relevance),
			DocumentCount: countDocuments(keywords, corpus),
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Relevance > topics[j].Relevance
	})
	return topics
}

// cooccurrenceVectors builds one feature vector per candidate: counts of how
// often each other candidate appears within the window around it.
func cooccurrenceVectors(index map[string]int, dim int, words []string) [][]float64 {
	vectors := make([][]float64, dim)
	for i := range vectors {
		vectors[i] = make([]float64, dim)
	}

	for i, w := range words {
		wi, ok := index[w]
		if !ok {
			continue
		}
		hi := minInt(len(words), i+clusterWindow+1)
		for j := i + 1; j < hi; j++ {
			wj, ok := index[words[j]]
			if !ok || wi == wj {
				continue
			}
			vectors[wi][wj]++
			vectors[wj][wi]++
		}
	}
	return vectors
}

// kmeans assigns each vector to one of k clusters. Centroids start as k
// distinct random members of the candidate set and update to cluster means
// until movement falls below the convergence delta or the iteration cap.
func kmeans(vectors [][]float64, k int, rng *rand.Rand) []int {
	n := len(vectors)
	if n == 0 {
		return nil
	}
	if k >= n {
		assignment := make([]int, n)
		for i := range assignment {
			assignment[i] = i % maxInt(k, 1)
		}
		return assignment
	}

	dim := len(vectors[0])
	centroids := make([][]float64, k)
	for i, pick := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), vectors[pick]...)
	}

	assignment := make([]int, n)
	for iter := 0; iter < clusterMaxIter; iter++ {
		for i, v := range vectors {
			best, bestDist := 0, floats.Distance(v, centroids[0], 2)
			for c := 1; c < k; c++ {
				if d := floats.Distance(v, centroids[c], 2); d < bestDist {
					best, bestDist = c, d
				}
			}
			assignment[i] = best
		}

		maxDelta := 0.0
		for c := 0; c < k; c++ {
			mean := make([]float64, dim)
			count := 0
			for i, a := range assignment {
				if a == c {
					floats.Add(mean, vectors[i])
					count++
				}
			}
			if count == 0 {
				continue
			}
			floats.Scale(1/float64(count), mean)
			for d := 0; d < dim; d++ {
				if delta := abs(mean[d] - centroids[c][d]); delta > maxDelta {
					maxDelta = delta
				}
			}
			centroids[c] = mean
		}

		if maxDelta < clusterConvergence {
			break
		}
	}

	return assignment
}

// clusterName labels a cluster by its first two member keywords.
func clusterName(keywords []string) string {
	if len(keywords) == 1 {
		return keywords[0]
	}
	return keywords[0] + " & " + keywords[1]
}

// countDocuments reports how many corpus documents mention any member
// keyword. Without a corpus the count is 1: the analyzed document itself.
func countDocuments(keywords []string, corpus []string) int {
	if len(corpus) == 0 {
		return 1
	}
	count := 0
	for _, doc := range corpus {
		lower := strings.ToLower(doc)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				count++
				break
			}
		}
	}
	return count
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
