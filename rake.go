package textpulse

import "strings"

const (
	rakeMaxPhraseLen = 5
)

// rakePhrase is one stop-word-delimited candidate phrase with its score.
type rakePhrase struct {
	text  string
	words []string
	score float64
	count int
}

// scoreRAKE implements Rapid Automatic Keyword Extraction: candidate phrases
// are the runs of content words between stop words and delimiters; each word
// is scored degree/frequency, where degree sums the lengths of the phrases
// the word appears in; a phrase scores the sum of its word scores.
func scoreRAKE(tokens []Token) []rakePhrase {
	var phrases [][]string
	var current []string

	flush := func() {
		if n := len(current); n > 0 && n <= rakeMaxPhraseLen {
			phrases = append(phrases, current)
		}
		current = nil
	}

	for _, t := range tokens {
		if isContentToken(t) {
			current = append(current, strings.ToLower(t.Text))
			continue
		}
		flush()
	}
	flush()

	if len(phrases) == 0 {
		return nil
	}

	freq := make(map[string]int)
	degree := make(map[string]float64)
	for _, p := range phrases {
		for _, w := range p {
			freq[w]++
			degree[w] += float64(len(p))
		}
	}

	wordScore := make(map[string]float64, len(freq))
	for w, f := range freq {
		wordScore[w] = degree[w] / float64(f)
	}

	byText := make(map[string]*rakePhrase)
	var order []string
	for _, p := range phrases {
		text := strings.Join(p, " ")
		if existing, ok := byText[text]; ok {
			existing.count++
			continue
		}
		score := 0.0
		for _, w := range p {
			score += wordScore[w]
		}
		byText[text] = &rakePhrase{text: text, words: p, score: score, count: 1}
		order = append(order, text)
	}

	result := make([]rakePhrase, 0, len(order))
	for _, text := range order {
		result = append(result, *byText[text])
	}
	return result
}

// isContentToken reports whether a token can participate in a keyword: an
// alphabetic non-stop word longer than two characters.
func isContentToken(t Token) bool {
	return t.IsAlpha && !t.IsStop && len(t.Text) > 2
}
