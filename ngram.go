package textpulse

import "strings"

const ngramMinCount = 2

// ngramCandidate is a mined 2- or 3-gram with its occurrence count.
type ngramCandidate struct {
	text  string
	words []string
	count int
	score float64
}

// mineNgrams extracts 2- and 3-grams from runs of alphabetic tokens. An
// n-gram is discarded when it starts or ends on a stop word, or contains more
// than one stop word internally. Survivors need at least two occurrences and
// score count x length.
func mineNgrams(tokens []Token) []ngramCandidate {
	var runs [][]string
	var current []string
	for _, t := range tokens {
		if t.IsAlpha {
			current = append(current, strings.ToLower(t.Text))
			continue
		}
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}

	counts := make(map[string]int)
	wordsOf := make(map[string][]string)
	var order []string

	for _, run := range runs {
		for n := 2; n <= 3; n++ {
			for i := 0; i+n <= len(run); i++ {
				gram := run[i : i+n]
				if !validNgram(gram) {
					continue
				}
				text := strings.Join(gram, " ")
				if counts[text] == 0 {
					wordsOf[text] = append([]string(nil), gram...)
					order = append(order, text)
				}
				counts[text]++
			}
		}
	}

	var result []ngramCandidate
	for _, text := range order {
		count := counts[text]
		if count < ngramMinCount {
			continue
		}
		words := wordsOf[text]
		result = append(result, ngramCandidate{
			text:  text,
			words: words,
			count: count,
			score: float64(count * len(words)),
		})
	}
	return result
}

func validNgram(gram []string) bool {
	stops := extendedStopWords()
	if stops[gram[0]] || stops[gram[len(gram)-1]] {
		return false
	}
	internal := 0
	for _, w := range gram[1 : len(gram)-1] {
		if stops[w] {
			internal++
		}
	}
	return internal <= 1
}
