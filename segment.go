package textpulse

import (
	"regexp"
	"strings"
	"unicode"

	sentencestok "gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// defaultSplitterCacheSize bounds the splitter's per-instance result cache.
const defaultSplitterCacheSize = 200

// abbreviations suppress sentence breaks after a trailing period. Keys are
// lowercase with the trailing dot included.
var abbreviations = map[string]bool{
	// Titles and honorifics.
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"st.": true, "rev.": true, "gen.": true, "sen.": true, "rep.": true,
	"capt.": true, "lt.": true, "col.": true, "sgt.": true, "gov.": true,
	// Months.
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true,
	"jul.": true, "aug.": true, "sep.": true, "sept.": true, "oct.": true,
	"nov.": true, "dec.": true,
	// States and places.
	"ave.": true, "blvd.": true, "rd.": true, "mt.": true, "ft.": true,
	"calif.": true, "fla.": true, "mass.": true, "tex.": true, "wash.": true,
	// Common.
	"etc.": true, "vs.": true, "inc.": true, "ltd.": true, "corp.": true,
	"co.": true, "jr.": true, "sr.": true, "no.": true, "fig.": true,
	"est.": true, "approx.": true, "dept.": true, "univ.": true, "assn.": true,
	// Units.
	"oz.": true, "lb.": true, "lbs.": true, "hr.": true, "min.": true,
	"sec.": true, "mi.": true, "km.": true, "kg.": true,
}

// titleAbbreviations are the subset that introduce a name: a following
// capitalized word continues the same sentence ("Dr. Smith").
var titleAbbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"st.": true, "rev.": true, "gen.": true, "sen.": true, "rep.": true,
	"capt.": true, "lt.": true, "col.": true, "sgt.": true, "gov.": true,
}

// subordinators and coordinators feed the complexity score.
var subordinators = map[string]bool{
	"because": true, "although": true, "though": true, "while": true,
	"if": true, "unless": true, "since": true, "whereas": true, "until": true,
	"after": true, "before": true, "whenever": true, "wherever": true,
}

var coordinators = map[string]bool{
	"and": true, "but": true, "or": true, "nor": true, "so": true, "yet": true,
}

// Lightweight per-sentence sentiment word lists, independent of the analyzer's
// lexicon. Used only when the full analyzer is not invoked.
var fallbackPositive = map[string]bool{
	"glad": true, "pleasant": true, "favorable": true, "upbeat": true,
	"cheerful": true, "agreeable": true, "worthwhile": true, "refreshing": true,
	"commendable": true, "satisfying": true, "enjoyable": true, "promising": true,
}

var fallbackNegative = map[string]bool{
	"unpleasant": true, "unfavorable": true, "dreary": true, "lousy": true,
	"dismal": true, "irritating": true, "tiresome": true, "regrettable": true,
	"shoddy": true, "bleak": true, "disagreeable": true, "troubling": true,
}

var splitURLEmailPattern = regexp.MustCompile(
	`https?://[^\s<>"]+|www\.[^\s<>"]+|[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// A SentenceSplitter segments raw text into enriched sentences. Instances are
// safe for concurrent use.
type SentenceSplitter struct {
	tok   *Tokenizer
	cache *fifoCache[[]Sentence]
	punkt *sentencestok.DefaultSentenceTokenizer
}

// SplitterOpt configures a SentenceSplitter.
type SplitterOpt func(*SentenceSplitter)

// UsingSplitterTokenizer sets the tokenizer used to annotate sentences.
func UsingSplitterTokenizer(tok *Tokenizer) SplitterOpt {
	return func(s *SentenceSplitter) {
		s.tok = tok
	}
}

// UsingSplitterCache sets the capacity of the splitter's FIFO result cache.
func UsingSplitterCache(capacity int) SplitterOpt {
	return func(s *SentenceSplitter) {
		s.cache = newFIFOCache[[]Sentence](capacity)
	}
}

// UsingPunktBoundaries replaces the built-in boundary scanner with a Punkt
// sentence tokenizer, e.g. one from NewPunktBoundaries. Sentence enrichment
// (typing, complexity, fallback sentiment) is unchanged.
func UsingPunktBoundaries(st *sentencestok.DefaultSentenceTokenizer) SplitterOpt {
	return func(s *SentenceSplitter) {
		s.punkt = st
	}
}

// NewPunktBoundaries builds an English Punkt sentence tokenizer from the
// embedded training data, for use with UsingPunktBoundaries.
func NewPunktBoundaries() (*sentencestok.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
}

// NewSentenceSplitter creates a SentenceSplitter with default settings.
func NewSentenceSplitter(opts ...SplitterOpt) *SentenceSplitter {
	s := &SentenceSplitter{
		tok:   NewTokenizer(),
		cache: newFIFOCache[[]Sentence](defaultSplitterCacheSize),
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// Split segments text into sentences. Sentence spans are contiguous modulo
// inter-sentence whitespace, non-overlapping, and ordered by Start. Empty
// input yields an empty sequence.
func (s *SentenceSplitter) Split(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return []Sentence{}
	}

	key := cacheKey(text)
	if cached, ok := s.cache.get(key); ok {
		return cached
	}

	var bounds []int
	if s.punkt != nil {
		bounds = s.punktBounds(text)
	} else {
		bounds = scanBoundaries(text)
	}

	tokens := s.tok.Tokenize(text)
	result := s.buildSentences(text, bounds, tokens)

	s.cache.put(key, result)
	return result
}

// scanBoundaries runs the left-to-right boundary scan and returns the end
// offset (exclusive) of every detected sentence.
func scanBoundaries(text string) []int {
	protected := splitURLEmailPattern.FindAllStringIndex(text, -1)
	var bounds []int

	i := 0
	for i < len(text) {
		c := text[i]

		if c == '!' || c == '?' {
			j := consumeTerminalCluster(text, i)
			j = absorbClosers(text, j)
			bounds = append(bounds, j)
			i = j
			continue
		}

		if c != '.' {
			i++
			continue
		}

		if insideSpan(protected, i) {
			i++
			continue
		}

		// Ellipsis continues the sentence.
		if i+2 < len(text) && text[i+1] == '.' && text[i+2] == '.' {
			j := i
			for j < len(text) && text[j] == '.' {
				j++
			}
			i = j
			continue
		}

		// Decimal number.
		if i > 0 && isASCIIDigit(text[i-1]) && i+1 < len(text) && isASCIIDigit(text[i+1]) {
			i++
			continue
		}

		prev := wordBeforeDot(text, i)

		// A single capital letter acting as an initial, followed by another
		// capitalized word ("J. K. Rowling").
		if len(prev) == 1 && prev[0] >= 'A' && prev[0] <= 'Z' && followedByCapital(text, i+1) {
			i++
			continue
		}

		if prev != "" {
			abbr := strings.ToLower(prev) + "."
			if abbreviations[abbr] {
				if titleAbbreviations[abbr] {
					// Name continuation: "Dr. Smith" never breaks.
					i++
					continue
				}
				if !followedByCapital(text, i+1) {
					i++
					continue
				}
				// Non-title abbreviation followed by a capitalized word is a
				// plausible sentence end; fall through to the general rule.
			}
		}

		j := consumeTerminalCluster(text, i)
		j = absorbClosers(text, j)
		next := nextNonSpace(text, j)
		if next == -1 {
			bounds = append(bounds, j)
			i = j
			continue
		}
		r := runeAt(text, next)
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			bounds = append(bounds, j)
			i = j
			continue
		}
		// Lowercase continuation: not a boundary.
		i = j
	}

	if len(bounds) == 0 || bounds[len(bounds)-1] < len(text) {
		if nextNonSpace(text, lastBound(bounds)) != -1 {
			bounds = append(bounds, len(text))
		}
	}
	return bounds
}

// punktBounds maps Punkt sentence texts back to end offsets in text.
func (s *SentenceSplitter) punktBounds(text string) []int {
	var bounds []int
	cursor := 0
	for _, sent := range s.punkt.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		idx := strings.Index(text[cursor:], trimmed)
		if idx < 0 {
			continue
		}
		end := cursor + idx + len(trimmed)
		bounds = append(bounds, end)
		cursor = end
	}
	if len(bounds) == 0 {
		bounds = append(bounds, len(text))
	}
	return bounds
}

// buildSentences slices text at bounds and enriches each sentence with its
// token view, type, complexity, and fallback sentiment.
func (s *SentenceSplitter) buildSentences(text string, bounds []int, tokens []Token) []Sentence {
	result := make([]Sentence, 0, len(bounds))
	start := 0
	tokenCursor := 0

	for _, end := range bounds {
		for start < end && isSpaceByte(text[start]) {
			start++
		}
		if start >= end {
			start = end
			continue
		}

		sent := Sentence{
			Text:  text[start:end],
			Start: start,
			End:   end,
		}

		// Advance over tokens preceding this sentence, then take the view.
		for tokenCursor < len(tokens) && tokens[tokenCursor].Start < start {
			tokenCursor++
		}
		viewStart := tokenCursor
		for tokenCursor < len(tokens) && tokens[tokenCursor].End <= end {
			tokenCursor++
		}
		sent.Tokens = tokens[viewStart:tokenCursor]

		sent.Type = classifySentence(sent.Text, sent.Tokens)
		sent.Complexity = complexityScore(sent.Tokens)
		sent.Sentiment = fallbackSentiment(sent.Tokens)

		result = append(result, sent)
		start = end
	}

	return result
}

// classifySentence assigns one of the four sentence types. Interrogative and
// exclamatory come from final punctuation; imperative requires the first
// content token to be a bare verb.
func classifySentence(text string, tokens []Token) SentenceType {
	trimmed := strings.TrimRight(text, `"')]} `)
	if strings.HasSuffix(trimmed, "?") {
		return Interrogative
	}
	if strings.HasSuffix(trimmed, "!") {
		return Exclamatory
	}
	for _, t := range tokens {
		if !t.IsAlpha {
			continue
		}
		if t.POS == "VERB" && t.Tag == "VB" {
			return Imperative
		}
		break
	}
	return Declarative
}

// complexityScore derives a 0-100 complexity estimate from word length,
// syllable counts, and clause connectors.
func complexityScore(tokens []Token) float64 {
	var words, letters, syllables, clauses int
	for _, t := range tokens {
		if !t.IsAlpha {
			continue
		}
		words++
		letters += len(t.Text)
		syllables += countSyllables(t.Text)
		lower := strings.ToLower(t.Text)
		if subordinators[lower] || coordinators[lower] {
			clauses++
		}
	}
	if words == 0 {
		return 0
	}

	avgLen := float64(letters) / float64(words)
	avgSyl := float64(syllables) / float64(words)

	score := avgLen*4 + avgSyl*12 + float64(clauses)*8
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// countSyllables estimates syllables by vowel groups, with silent-e and
// consonant+"le" adjustments. Always at least 1 for alphabetic words.
func countSyllables(word string) int {
	w := strings.ToLower(word)
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent final e, except in consonant+"le" words where it is syllabic.
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// fallbackSentiment scores a sentence against the two fallback word lists.
// Neutral is always 1 - positive - negative on this path.
func fallbackSentiment(tokens []Token) SentimentScore {
	var words, pos, neg int
	for _, t := range tokens {
		if !t.IsAlpha {
			continue
		}
		words++
		lower := strings.ToLower(t.Text)
		if fallbackPositive[lower] {
			pos++
		} else if fallbackNegative[lower] {
			neg++
		}
	}

	if pos+neg == 0 || words == 0 {
		return SentimentScore{Neutral: 1, Confidence: 0.5}
	}

	positive := float64(pos) / float64(words)
	negative := float64(neg) / float64(words)
	confidence := float64(pos+neg) / float64(words) * 2
	if confidence > 1 {
		confidence = 1
	}
	return SentimentScore{
		Overall:    (float64(pos) - float64(neg)) / float64(pos+neg),
		Positive:   positive,
		Negative:   negative,
		Neutral:    1 - positive - negative,
		Confidence: confidence,
	}
}

// Scan helpers.

func consumeTerminalCluster(text string, i int) int {
	j := i
	for j < len(text) {
		switch text[j] {
		case '.', '!', '?':
			j++
		default:
			return j
		}
	}
	return j
}

func absorbClosers(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case '"', '\'', ')', ']', '}':
			i++
		default:
			return i
		}
	}
	return i
}

func insideSpan(spans [][]int, pos int) bool {
	for _, sp := range spans {
		if pos >= sp[0] && pos < sp[1] {
			return true
		}
		if sp[0] > pos {
			break
		}
	}
	return false
}

func nextNonSpace(text string, i int) int {
	for i < len(text) {
		if !isSpaceByte(text[i]) {
			return i
		}
		i++
	}
	return -1
}

// followedByCapital reports whether the first non-space character at or after
// pos is an uppercase letter.
func followedByCapital(text string, pos int) bool {
	idx := nextNonSpace(text, pos)
	if idx == -1 {
		return false
	}
	return unicode.IsUpper(runeAt(text, idx))
}

// wordBeforeDot returns the run of letters immediately preceding the dot at
// dotPos, or "" when the dot is not preceded by a letter.
func wordBeforeDot(text string, dotPos int) string {
	i := dotPos
	for i > 0 {
		c := text[i-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			i--
		} else {
			break
		}
	}
	return text[i:dotPos]
}

func runeAt(text string, i int) rune {
	for _, r := range text[i:] {
		return r
	}
	return 0
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func lastBound(bounds []int) int {
	if len(bounds) == 0 {
		return 0
	}
	return bounds[len(bounds)-1]
}
