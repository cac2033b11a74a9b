package textpulse

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	// maxWordScore is the theoretical maximum per-word lexicon score, used to
	// normalize accumulated sums into [-1, 1].
	maxWordScore = 5.0

	// negationWindow is how many alphabetic tokens a negation word affects.
	negationWindow = 3

	// negationFactor dampens and flips a negated word's score. Negation does
	// not fully invert: "not good" is mildly negative, not the mirror of
	// "good".
	negationFactor = -0.5

	// shiftThreshold flags an adjacent-sentence sentiment delta as a shift.
	shiftThreshold = 0.3

	// aspectRadius is the token window consulted around an aspect term.
	aspectRadius = 5

	defaultSentimentCacheSize = 300
)

// A SentimentAnalyzer scores text against a sentiment/emotion lexicon.
// Instances are safe for concurrent use.
type SentimentAnalyzer struct {
	lexicon *Lexicon
	tok     *Tokenizer
	cache   *fifoCache[SentimentScore]
}

// SentimentOpt configures a SentimentAnalyzer.
type SentimentOpt func(*SentimentAnalyzer)

// UsingLexicon replaces the built-in lexicon, e.g. one extended via
// Lexicon.MergeFile.
func UsingLexicon(lex *Lexicon) SentimentOpt {
	return func(sa *SentimentAnalyzer) {
		sa.lexicon = lex
	}
}

// UsingSentimentTokenizer sets the tokenizer used during analysis.
func UsingSentimentTokenizer(tok *Tokenizer) SentimentOpt {
	return func(sa *SentimentAnalyzer) {
		sa.tok = tok
	}
}

// UsingSentimentCache sets the capacity of the analyzer's FIFO result cache.
func UsingSentimentCache(capacity int) SentimentOpt {
	return func(sa *SentimentAnalyzer) {
		sa.cache = newFIFOCache[SentimentScore](capacity)
	}
}

// NewSentimentAnalyzer creates a SentimentAnalyzer with the built-in lexicon.
func NewSentimentAnalyzer(opts ...SentimentOpt) *SentimentAnalyzer {
	sa := &SentimentAnalyzer{
		lexicon: DefaultLexicon(),
		tok:     NewTokenizer(),
		cache:   newFIFOCache[SentimentScore](defaultSentimentCacheSize),
	}
	for _, applyOpt := range opts {
		applyOpt(sa)
	}
	return sa
}

// wordToken reports whether a token counts as a word during scoring. Alpha
// tokens qualify, and so do apostrophe contractions ("don't", "it's"), which
// carry the negation cues.
func wordToken(t Token) bool {
	if t.IsAlpha {
		return true
	}
	r, ok := firstRune(t.Text)
	return ok && unicode.IsLetter(r)
}

// lookupToken finds the lexicon entry for a token, trying the lemma first and
// falling back to the lowercased surface form for entries keyed on inflected
// words ("amazing", "disgusting").
func (sa *SentimentAnalyzer) lookupToken(t Token) (LexiconEntry, bool) {
	if entry, ok := sa.lexicon.entry(t.Lemma); ok {
		return entry, ok
	}
	return sa.lexicon.entry(strings.ToLower(t.Text))
}

// Analyze returns the document-level sentiment of text. Text with no
// sentiment-bearing words yields {Overall: 0, Neutral: 1, Confidence: 0.5}.
func (sa *SentimentAnalyzer) Analyze(text string) SentimentScore {
	key := cacheKey(text)
	if cached, ok := sa.cache.get(key); ok {
		return cached
	}

	score := sa.scoreTokens(sa.tok.Tokenize(text))
	sa.cache.put(key, score)
	return score
}

// scoreTokens runs the left-to-right lexicon scan over a token sequence.
func (sa *SentimentAnalyzer) scoreTokens(tokens []Token) SentimentScore {
	var (
		posSum, negSum   float64
		sentimentWords   int
		totalWords       int
		multiplier       = 1.0
		negationPending  int
	)

	for _, t := range tokens {
		if !wordToken(t) {
			continue
		}
		totalWords++
		lower := strings.ToLower(t.Text)

		if sa.lexicon.isNegation(lower) {
			// +1 because the window decrements on the negation token itself.
			negationPending = negationWindow + 1
		}
		if f, ok := sa.lexicon.modifier(lower); ok {
			multiplier = f
		}

		if entry, ok := sa.lookupToken(t); ok {
			score := entry.Score * entry.Intensity * multiplier
			multiplier = 1.0
			if negationPending > 0 {
				score *= negationFactor
			}

			if score > 0 {
				posSum += score
			} else {
				negSum += -score
			}
			sentimentWords++
		}

		if negationPending > 0 {
			negationPending--
		}
	}

	if sentimentWords == 0 {
		return SentimentScore{Overall: 0, Neutral: 1, Confidence: 0.5}
	}

	norm := float64(sentimentWords) * maxWordScore
	positive := clamp01(posSum / norm)
	negative := clamp01(negSum / norm)
	overall := (posSum - negSum) / norm
	if overall > 1 {
		overall = 1
	} else if overall < -1 {
		overall = -1
	}

	confidence := float64(sentimentWords) / float64(maxInt(totalWords, 1))
	if confidence > 1 {
		confidence = 1
	}

	return SentimentScore{
		Overall:    overall,
		Positive:   positive,
		Negative:   negative,
		Neutral:    math.Max(0, 1-positive-negative),
		Confidence: confidence,
	}
}

// AnalyzeEmotions tallies the lexicon's emotion tags across text and reports
// the distribution with the top two tags as primary and secondary. Results
// are computed per call; the analyzer's result cache serves Analyze only,
// though repeated calls still reuse the tokenizer's cached token sequence.
func (sa *SentimentAnalyzer) AnalyzeEmotions(text string) EmotionAnalysis {
	tokens := sa.tok.Tokenize(text)

	type tally struct {
		count     int
		intensity float64
	}
	tallies := make(map[EmotionCategory]*tally)
	var totalWords int

	for _, t := range tokens {
		if !wordToken(t) {
			continue
		}
		totalWords++
		entry, ok := sa.lookupToken(t)
		if !ok {
			continue
		}
		for _, e := range entry.Emotions {
			if tallies[e] == nil {
				tallies[e] = &tally{}
			}
			tallies[e].count++
			tallies[e].intensity += entry.Intensity
		}
	}

	if len(tallies) == 0 {
		return EmotionAnalysis{Emotions: map[EmotionCategory]float64{}}
	}

	// Raw score per emotion: occurrence count weighted by mean intensity.
	raw := make(map[EmotionCategory]float64, len(tallies))
	maxRaw := 0.0
	var meanIntensity float64
	var emotional int
	for e, t := range tallies {
		mean := t.intensity / float64(t.count)
		raw[e] = float64(t.count) * mean
		if raw[e] > maxRaw {
			maxRaw = raw[e]
		}
		meanIntensity += t.intensity
		emotional += t.count
	}
	meanIntensity /= float64(emotional)

	emotions := make(map[EmotionCategory]float64, len(raw))
	for e, v := range raw {
		emotions[e] = v / maxRaw
	}

	ordered := make([]EmotionCategory, 0, len(emotions))
	for e := range emotions {
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if emotions[ordered[i]] != emotions[ordered[j]] {
			return emotions[ordered[i]] > emotions[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})

	result := EmotionAnalysis{
		Primary:   ordered[0],
		Emotions:  emotions,
		Intensity: clamp01(meanIntensity),
	}
	if len(ordered) > 1 {
		result.Secondary = ordered[1]
	}
	if totalWords > 0 {
		result.Confidence = clamp01(float64(emotional) / float64(totalWords) * 2)
	}
	return result
}

// SentimentShift marks a sentence whose sentiment differs from its
// predecessor by more than the shift threshold.
type SentimentShift struct {
	Index int     // Index of the later sentence.
	Delta float64 // Signed change in Overall from the previous sentence.
}

// Trend maps each sentence to its overall sentiment score, in order.
func (sa *SentimentAnalyzer) Trend(sentences []string) []float64 {
	trend := make([]float64, len(sentences))
	for i, s := range sentences {
		trend[i] = sa.Analyze(s).Overall
	}
	return trend
}

// DetectShifts flags adjacent-sentence sentiment deltas exceeding 0.3.
func (sa *SentimentAnalyzer) DetectShifts(sentences []string) []SentimentShift {
	trend := sa.Trend(sentences)
	var shifts []SentimentShift
	for i := 1; i < len(trend); i++ {
		delta := trend[i] - trend[i-1]
		if math.Abs(delta) > shiftThreshold {
			shifts = append(shifts, SentimentShift{Index: i, Delta: delta})
		}
	}
	return shifts
}

// AspectSentiment averages lexicon hits within a 5-token radius of each
// occurrence of aspect, weighted by inverse distance. An aspect that never
// occurs, or has no nearby sentiment words, yields the neutral score.
func (sa *SentimentAnalyzer) AspectSentiment(text, aspect string) SentimentScore {
	aspect = strings.ToLower(strings.TrimSpace(aspect))
	if aspect == "" {
		return SentimentScore{Neutral: 1, Confidence: 0.5}
	}

	tokens := sa.tok.Tokenize(text)
	var weighted, totalWeight float64
	var hits int

	for i, t := range tokens {
		if strings.ToLower(t.Text) != aspect && t.Lemma != aspect {
			continue
		}
		lo := maxInt(0, i-aspectRadius)
		hi := minInt(len(tokens), i+aspectRadius+1)
		for j := lo; j < hi; j++ {
			if j == i || !wordToken(tokens[j]) {
				continue
			}
			entry, ok := sa.lookupToken(tokens[j])
			if !ok {
				continue
			}
			dist := math.Abs(float64(j - i))
			weight := 1.0 / dist
			weighted += entry.Score * entry.Intensity * weight
			totalWeight += weight
			hits++
		}
	}

	if hits == 0 || totalWeight == 0 {
		return SentimentScore{Neutral: 1, Confidence: 0.5}
	}

	overall := weighted / (totalWeight * maxWordScore)
	if overall > 1 {
		overall = 1
	} else if overall < -1 {
		overall = -1
	}

	score := SentimentScore{Overall: overall}
	if overall > 0 {
		score.Positive = overall
	} else {
		score.Negative = -overall
	}
	score.Neutral = math.Max(0, 1-score.Positive-score.Negative)
	score.Confidence = clamp01(float64(hits) / float64(aspectRadius*2))
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
