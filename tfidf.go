package textpulse

import (
	"math"
	"strings"
)

// scoreTFIDF weights content words by normalized term frequency times inverse
// document frequency. With a corpus, IDF is log((N+1)/(df+1)) + 1. Without
// one, a pseudo-IDF stands in: earlier first mentions weigh higher via
// 1/log(pos+2), and rarer terms gain 1/(1+log(1+count)).
func (ke *KeywordExtractor) scoreTFIDF(words []string, firstPos map[string]int, corpus []string) map[string]float64 {
	if len(words) == 0 {
		return map[string]float64{}
	}

	tf := make(map[string]int, len(words))
	maxTF := 0
	for _, w := range words {
		tf[w]++
		if tf[w] > maxTF {
			maxTF = tf[w]
		}
	}

	var df map[string]int
	if len(corpus) > 0 {
		df = ke.documentFrequencies(corpus, tf)
	}

	scores := make(map[string]float64, len(tf))
	for term, count := range tf {
		tfNorm := float64(count) / float64(maxTF)

		var idf float64
		if df != nil {
			n := float64(len(corpus))
			idf = math.Log((n+1)/float64(df[term]+1)) + 1
		} else {
			pos := firstPos[term]
			idf = 1/math.Log(float64(pos)+2) + 1/(1+math.Log1p(float64(count)))
		}

		scores[term] = tfNorm * idf
	}
	return scores
}

// documentFrequencies counts, per candidate term, how many corpus documents
// contain it.
func (ke *KeywordExtractor) documentFrequencies(corpus []string, terms map[string]int) map[string]int {
	df := make(map[string]int, len(terms))
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, t := range ke.tok.Tokenize(doc) {
			if !t.IsAlpha {
				continue
			}
			lower := strings.ToLower(t.Text)
			if _, wanted := terms[lower]; wanted && !seen[lower] {
				seen[lower] = true
				df[lower]++
			}
		}
	}
	return df
}
