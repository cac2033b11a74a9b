package textpulse

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

const (
	defaultKeywordLimit       = 20
	defaultExtractorCacheSize = 100

	// methodAgreementBoost rewards keywords proposed by several algorithms:
	// the merged score is multiplied by 1 + boost x (methods - 1).
	methodAgreementBoost = 0.3
)

// A KeywordExtractor runs four extraction algorithms (TextRank, RAKE, TF-IDF,
// n-gram mining), merges their rankings, and clusters the winners into
// topics. Instances are safe for concurrent use. Topic clustering is seeded
// deterministically by default; see UsingClusterSeed.
type KeywordExtractor struct {
	tok   *Tokenizer
	cache *fifoCache[ExtractionResult]
	limit int
	seed  int64
}

// ExtractorOpt configures a KeywordExtractor.
type ExtractorOpt func(*KeywordExtractor)

// UsingExtractorTokenizer sets the tokenizer used during extraction.
func UsingExtractorTokenizer(tok *Tokenizer) ExtractorOpt {
	return func(ke *KeywordExtractor) {
		ke.tok = tok
	}
}

// UsingExtractorCache sets the capacity of the extractor's FIFO result cache.
func UsingExtractorCache(capacity int) ExtractorOpt {
	return func(ke *KeywordExtractor) {
		ke.cache = newFIFOCache[ExtractionResult](capacity)
	}
}

// UsingKeywordLimit caps the number of merged keywords returned.
func UsingKeywordLimit(n int) ExtractorOpt {
	return func(ke *KeywordExtractor) {
		if n > 0 {
			ke.limit = n
		}
	}
}

// UsingClusterSeed sets the seed for k-means centroid initialization. The
// default seed of 1 makes repeated extractions on identical input produce
// identical topic clusters.
func UsingClusterSeed(seed int64) ExtractorOpt {
	return func(ke *KeywordExtractor) {
		ke.seed = seed
	}
}

// NewKeywordExtractor creates a KeywordExtractor with default settings.
func NewKeywordExtractor(opts ...ExtractorOpt) *KeywordExtractor {
	ke := &KeywordExtractor{
		tok:   NewTokenizer(),
		cache: newFIFOCache[ExtractionResult](defaultExtractorCacheSize),
		limit: defaultKeywordLimit,
		seed:  1,
	}
	for _, applyOpt := range opts {
		applyOpt(ke)
	}
	return ke
}

// Extract analyzes text and returns merged keywords, keyphrases, topic
// clusters, and corpus statistics. corpus may be nil; when supplied it drives
// true inverse document frequencies for the TF-IDF stage. Empty input yields
// an empty result.
func (ke *KeywordExtractor) Extract(text string, corpus []string) ExtractionResult {
	if strings.TrimSpace(text) == "" {
		return emptyExtraction()
	}

	key := cacheKey(text) + "\x00" + strconv.Itoa(len(corpus))
	if cached, ok := ke.cache.get(key); ok {
		return cached
	}

	tokens := ke.tok.Tokenize(text)

	// Content word sequence (lowercased) and first-mention positions.
	var content []string
	firstPos := make(map[string]int)
	for _, t := range tokens {
		if !isContentToken(t) {
			continue
		}
		lower := strings.ToLower(t.Text)
		if _, seen := firstPos[lower]; !seen {
			firstPos[lower] = len(content)
		}
		content = append(content, lower)
	}

	if len(content) == 0 {
		return emptyExtraction()
	}

	// Run the four extractors.
	textrankScores := scoreTextRank(content)
	rakePhrases := scoreRAKE(tokens)
	tfidfScores := ke.scoreTFIDF(content, firstPos, corpus)
	ngrams := mineNgrams(tokens)

	merged := mergeMethods(textrankScores, rakePhrases, tfidfScores, ngrams, content)

	keywords := merged
	if len(keywords) > ke.limit {
		keywords = keywords[:ke.limit]
	}

	keyphrases := collectKeyphrases(merged)

	// All alphabetic words feed the clustering co-occurrence window.
	var allWords []string
	for _, t := range tokens {
		if t.IsAlpha {
			allWords = append(allWords, strings.ToLower(t.Text))
		}
	}
	rng := rand.New(rand.NewSource(ke.seed))
	topics := buildTopics(merged, allWords, corpus, rng)

	result := ExtractionResult{
		Keywords:   keywords,
		Keyphrases: keyphrases,
		Topics:     topics,
		Statistics: computeStatistics(tokens, keywords),
	}
	ke.cache.put(key, result)
	return result
}

func emptyExtraction() ExtractionResult {
	return ExtractionResult{
		Keywords:   []ScoredKeyword{},
		Keyphrases: []KeyPhrase{},
		Topics:     []TopicCluster{},
	}
}

// mergeCandidate accumulates per-method normalized scores for one keyword.
type mergeCandidate struct {
	score     float64
	frequency int
	methods   map[ExtractionMethod]bool
}

// mergeMethods normalizes each method's scores to its own maximum, sums them
// per keyword, and applies the cross-method agreement boost.
func mergeMethods(textrank map[string]float64, rakes []rakePhrase, tfidf map[string]float64, ngrams []ngramCandidate, content []string) []ScoredKeyword {
	freq := make(map[string]int, len(content))
	for _, w := range content {
		freq[w]++
	}

	pool := make(map[string]*mergeCandidate)
	add := func(keyword string, normScore float64, frequency int, method ExtractionMethod) {
		c := pool[keyword]
		if c == nil {
			c = &mergeCandidate{methods: make(map[ExtractionMethod]bool)}
			pool[keyword] = c
		}
		c.score += normScore
		c.methods[method] = true
		if frequency > c.frequency {
			c.frequency = frequency
		}
	}

	if max := maxMapValue(textrank); max > 0 {
		for w, s := range textrank {
			add(w, s/max, freq[w], MethodTextRank)
		}
	}
	if max := maxMapValue(tfidf); max > 0 {
		for w, s := range tfidf {
			add(w, s/max, freq[w], MethodTFIDF)
		}
	}

	maxRake := 0.0
	for _, p := range rakes {
		if p.score > maxRake {
			maxRake = p.score
		}
	}
	if maxRake > 0 {
		for _, p := range rakes {
			add(p.text, p.score/maxRake, p.count, MethodRAKE)
		}
	}

	maxNgram := 0.0
	for _, g := range ngrams {
		if g.score > maxNgram {
			maxNgram = g.score
		}
	}
	if maxNgram > 0 {
		for _, g := range ngrams {
			add(g.text, g.score/maxNgram, g.count, MethodNgram)
		}
	}

	result := make([]ScoredKeyword, 0, len(pool))
	for keyword, c := range pool {
		methods := make([]ExtractionMethod, 0, len(c.methods))
		for m := range c.methods {
			methods = append(methods, m)
		}
		sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })

		score := c.score * (1 + methodAgreementBoost*float64(len(c.methods)-1))
		result = append(result, ScoredKeyword{
			Keyword:   keyword,
			Score:     score,
			Frequency: c.frequency,
			Methods:   methods,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Keyword < result[j].Keyword
	})
	return result
}

// collectKeyphrases returns the multi-word survivors of the merged set,
// deduplicated by exact text and sorted by score.
func collectKeyphrases(merged []ScoredKeyword) []KeyPhrase {
	seen := make(map[string]bool)
	var phrases []KeyPhrase
	for _, kw := range merged {
		words := strings.Fields(kw.Keyword)
		if len(words) < 2 || seen[kw.Keyword] {
			continue
		}
		seen[kw.Keyword] = true
		phrases = append(phrases, KeyPhrase{
			Phrase:    kw.Keyword,
			Score:     kw.Score,
			Frequency: kw.Frequency,
			Words:     words,
		})
	}
	return phrases
}

// computeStatistics summarizes the token stream against the final keyword
// set.
func computeStatistics(tokens []Token, keywords []ScoredKeyword) TextStatistics {
	var total int
	unique := make(map[string]bool)
	for _, t := range tokens {
		if !t.IsAlpha {
			continue
		}
		total++
		unique[strings.ToLower(t.Text)] = true
	}

	stats := TextStatistics{
		TotalWords:  total,
		UniqueWords: len(unique),
	}
	if total == 0 {
		return stats
	}
	stats.LexicalDiversity = float64(len(unique)) / float64(total)

	keywordWords := make(map[string]bool)
	occurrences := 0
	scores := make([]float64, 0, len(keywords))
	for _, kw := range keywords {
		occurrences += kw.Frequency
		scores = append(scores, kw.Score)
		for _, w := range strings.Fields(kw.Keyword) {
			keywordWords[w] = true
		}
	}
	stats.KeywordDensity = float64(occurrences) / float64(total)

	covered := 0
	for _, t := range tokens {
		if t.IsAlpha && keywordWords[strings.ToLower(t.Text)] {
			covered++
		}
	}
	stats.Coverage = float64(covered) / float64(total)

	if len(scores) > 0 {
		stats.ScoreMean = stat.Mean(scores, nil)
	}
	if len(scores) > 1 {
		stats.ScoreStdDev = stat.StdDev(scores, nil)
	}
	return stats
}

func maxMapValue(m map[string]float64) float64 {
	max := 0.0
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	return max
}
