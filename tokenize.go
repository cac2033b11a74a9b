package textpulse

import (
	"regexp"
	"unicode"
)

// tokenPattern is the combined scanning pattern: word runs with internal
// apostrophes, numeric runs with an optional decimal part and an ordinal
// ("3rd") or percent suffix, and single non-word, non-space characters.
// Whitespace is consumed by the gaps between matches and never emitted as a
// token.
var tokenPattern = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)*|\d+(?:\.\d+)?(?:st|nd|rd|th)?%?|[^\sA-Za-z0-9]`)

var numericPattern = regexp.MustCompile(`^\d+(?:\.\d+)?%?$`)

// defaultTokenizerCacheSize bounds the tokenizer's per-instance result cache.
const defaultTokenizerCacheSize = 500

// A Tokenizer splits raw text into annotated tokens. Instances are safe for
// concurrent use; the internal cache is mutex-guarded.
type Tokenizer struct {
	cache *fifoCache[[]Token]
}

// TokenizerOpt configures a Tokenizer.
type TokenizerOpt func(*Tokenizer)

// UsingTokenCache sets the capacity of the tokenizer's FIFO result cache.
func UsingTokenCache(capacity int) TokenizerOpt {
	return func(t *Tokenizer) {
		t.cache = newFIFOCache[[]Token](capacity)
	}
}

// NewTokenizer creates a Tokenizer with the default cache capacity.
func NewTokenizer(opts ...TokenizerOpt) *Tokenizer {
	t := &Tokenizer{
		cache: newFIFOCache[[]Token](defaultTokenizerCacheSize),
	}
	for _, applyOpt := range opts {
		applyOpt(t)
	}
	return t
}

// Tokenize splits text into an ordered token sequence. Every token records
// its byte span, so s[t.Start:t.End] == t.Text for each token and the
// concatenation of token texts reproduces the input minus whitespace.
// Empty input yields an empty sequence. Returned slices are read-only.
func (t *Tokenizer) Tokenize(text string) []Token {
	if text == "" {
		return []Token{}
	}

	key := cacheKey(text)
	if cached, ok := t.cache.get(key); ok {
		return cached
	}

	spans := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(spans))
	for i, span := range spans {
		raw := text[span[0]:span[1]]
		pos, tag := tagWord(raw)
		tokens = append(tokens, Token{
			Text:    raw,
			Lemma:   lemmatize(raw, pos),
			POS:     pos,
			Tag:     tag,
			IsStop:  isStopWord(raw),
			IsPunct: isPunctToken(raw),
			IsAlpha: isAlphaToken(raw),
			IsDigit: numericPattern.MatchString(raw),
			Index:   i,
			Start:   span[0],
			End:     span[1],
		})
	}

	t.cache.put(key, tokens)
	return tokens
}

func isAlphaToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isPunctToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
