package textpulse

import (
	"regexp"
	"strings"
	"unicode"
)

// posEntry pairs a coarse part of speech with its fine-grained tag.
type posEntry struct {
	POS string
	Tag string
}

// lexTags maps curated words to their most common part of speech. Lookup is
// case-insensitive and happens before any heuristic rule fires.
var lexTags = map[string]posEntry{
	// Determiners.
	"the": {"DET", "DT"}, "a": {"DET", "DT"}, "an": {"DET", "DT"},
	"this": {"DET", "DT"}, "that": {"DET", "DT"}, "these": {"DET", "DT"},
	"those": {"DET", "DT"}, "every": {"DET", "DT"}, "each": {"DET", "DT"},
	"some": {"DET", "DT"}, "any": {"DET", "DT"}, "no": {"DET", "DT"},

	// Pronouns.
	"i": {"PRON", "PRP"}, "you": {"PRON", "PRP"}, "he": {"PRON", "PRP"},
	"she": {"PRON", "PRP"}, "it": {"PRON", "PRP"}, "we": {"PRON", "PRP"},
	"they": {"PRON", "PRP"}, "me": {"PRON", "PRP"}, "him": {"PRON", "PRP"},
	"her": {"PRON", "PRP$"}, "us": {"PRON", "PRP"}, "them": {"PRON", "PRP"},
	"my": {"PRON", "PRP$"}, "your": {"PRON", "PRP$"}, "his": {"PRON", "PRP$"},
	"its": {"PRON", "PRP$"}, "our": {"PRON", "PRP$"}, "their": {"PRON", "PRP$"},
	"who": {"PRON", "WP"}, "whom": {"PRON", "WP"}, "whose": {"PRON", "WP$"},
	"which": {"PRON", "WDT"}, "what": {"PRON", "WP"},

	// Prepositions and subordinating conjunctions.
	"in": {"ADP", "IN"}, "on": {"ADP", "IN"}, "at": {"ADP", "IN"},
	"by": {"ADP", "IN"}, "for": {"ADP", "IN"}, "with": {"ADP", "IN"},
	"from": {"ADP", "IN"}, "to": {"PRT", "TO"}, "of": {"ADP", "IN"},
	"about": {"ADP", "IN"}, "into": {"ADP", "IN"}, "over": {"ADP", "IN"},
	"under": {"ADP", "IN"}, "between": {"ADP", "IN"}, "through": {"ADP", "IN"},
	"during": {"ADP", "IN"}, "before": {"ADP", "IN"}, "after": {"ADP", "IN"},
	"against": {"ADP", "IN"}, "without": {"ADP", "IN"},

	// Conjunctions.
	"and": {"CONJ", "CC"}, "or": {"CONJ", "CC"}, "but": {"CONJ", "CC"},
	"nor": {"CONJ", "CC"}, "so": {"CONJ", "CC"}, "yet": {"CONJ", "CC"},
	"because": {"SCONJ", "IN"}, "although": {"SCONJ", "IN"},
	"though": {"SCONJ", "IN"}, "while": {"SCONJ", "IN"}, "if": {"SCONJ", "IN"},
	"unless": {"SCONJ", "IN"}, "since": {"SCONJ", "IN"}, "whereas": {"SCONJ", "IN"},

	// Auxiliary and common verbs.
	"is": {"VERB", "VBZ"}, "am": {"VERB", "VBP"}, "are": {"VERB", "VBP"},
	"was": {"VERB", "VBD"}, "were": {"VERB", "VBD"}, "be": {"VERB", "VB"},
	"been": {"VERB", "VBN"}, "being": {"VERB", "VBG"},
	"have": {"VERB", "VBP"}, "has": {"VERB", "VBZ"}, "had": {"VERB", "VBD"},
	"do": {"VERB", "VBP"}, "does": {"VERB", "VBZ"}, "did": {"VERB", "VBD"},
	"will": {"VERB", "MD"}, "would": {"VERB", "MD"}, "can": {"VERB", "MD"},
	"could": {"VERB", "MD"}, "shall": {"VERB", "MD"}, "should": {"VERB", "MD"},
	"may": {"VERB", "MD"}, "might": {"VERB", "MD"}, "must": {"VERB", "MD"},
	"go": {"VERB", "VB"}, "get": {"VERB", "VB"}, "make": {"VERB", "VB"},
	"take": {"VERB", "VB"}, "know": {"VERB", "VB"}, "see": {"VERB", "VB"},
	"come": {"VERB", "VB"}, "think": {"VERB", "VB"}, "want": {"VERB", "VB"},
	"give": {"VERB", "VB"}, "use": {"VERB", "VB"}, "find": {"VERB", "VB"},
	"tell": {"VERB", "VB"}, "say": {"VERB", "VB"}, "look": {"VERB", "VB"},
	"stop": {"VERB", "VB"}, "run": {"VERB", "VB"}, "call": {"VERB", "VB"},
	"keep": {"VERB", "VB"}, "let": {"VERB", "VB"}, "watch": {"VERB", "VB"},
	"listen": {"VERB", "VB"}, "imagine": {"VERB", "VB"}, "remember": {"VERB", "VB"},
	"check": {"VERB", "VB"}, "follow": {"VERB", "VB"}, "share": {"VERB", "VB"},
	"subscribe": {"VERB", "VB"}, "click": {"VERB", "VB"}, "try": {"VERB", "VB"},

	// Adverbs.
	"not": {"ADV", "RB"}, "very": {"ADV", "RB"}, "too": {"ADV", "RB"},
	"also": {"ADV", "RB"}, "just": {"ADV", "RB"}, "here": {"ADV", "RB"},
	"there": {"ADV", "RB"}, "now": {"ADV", "RB"}, "then": {"ADV", "RB"},
	"always": {"ADV", "RB"}, "never": {"ADV", "RB"}, "often": {"ADV", "RB"},
	"again": {"ADV", "RB"}, "when": {"ADV", "WRB"}, "where": {"ADV", "WRB"},
	"why": {"ADV", "WRB"}, "how": {"ADV", "WRB"},

	// Common adjectives whose suffixes give no signal.
	"good": {"ADJ", "JJ"}, "bad": {"ADJ", "JJ"}, "new": {"ADJ", "JJ"},
	"old": {"ADJ", "JJ"}, "great": {"ADJ", "JJ"}, "big": {"ADJ", "JJ"},
	"small": {"ADJ", "JJ"}, "long": {"ADJ", "JJ"}, "high": {"ADJ", "JJ"},
	"best": {"ADJ", "JJS"}, "worst": {"ADJ", "JJS"}, "first": {"ADJ", "JJ"},
	"last": {"ADJ", "JJ"}, "many": {"ADJ", "JJ"}, "much": {"ADJ", "JJ"},
	"more": {"ADJ", "JJR"}, "most": {"ADJ", "JJS"}, "other": {"ADJ", "JJ"},
	"own": {"ADJ", "JJ"}, "same": {"ADJ", "JJ"}, "few": {"ADJ", "JJ"},
}

// tagRule is one (predicate, result) entry in the heuristic cascade. Rules run
// in order; the first match wins.
type tagRule struct {
	pattern *regexp.Regexp
	pos     string
	tag     string
}

var tagRules = []tagRule{
	// Punctuation and symbols.
	{regexp.MustCompile(`^[[:punct:]]+$`), "PUNCT", "."},
	// Numbers, decimals, and percentages.
	{regexp.MustCompile(`^\d+(?:\.\d+)?%?$`), "NUM", "CD"},
	// Ordinals.
	{regexp.MustCompile(`^\d+(?:st|nd|rd|th)$`), "ADJ", "JJ"},
	// Interjections.
	{regexp.MustCompile(`^(?i:oh|wow|hey|ouch|oops|ah|aha|hmm|yay|ugh|huh)$`), "INTJ", "UH"},
	// Verb forms by suffix.
	{regexp.MustCompile(`^(?i:[a-z]+ing)$`), "VERB", "VBG"},
	{regexp.MustCompile(`^(?i:[a-z]+ed)$`), "VERB", "VBD"},
	{regexp.MustCompile(`^(?i:[a-z]+(?:ize|ise|ify))$`), "VERB", "VB"},
	// Adverbs by suffix.
	{regexp.MustCompile(`^(?i:[a-z]+ly)$`), "ADV", "RB"},
	// Adjectives by suffix.
	{regexp.MustCompile(`^(?i:[a-z]+(?:ous|ful|ive|able|ible|ish|less|ic|al))$`), "ADJ", "JJ"},
	// Nouns by suffix.
	{regexp.MustCompile(`^(?i:[a-z]+(?:tion|sion|ment|ness|ity|ship|hood|ism|ist|ance|ence))$`), "NOUN", "NN"},
}

// tagWord assigns (POS, tag) to a raw token: curated table first, then the
// heuristic cascade, defaulting to NOUN. Capitalized words that fall through
// to the default are treated as proper nouns.
func tagWord(text string) (string, string) {
	if entry, ok := lexTags[strings.ToLower(text)]; ok {
		return entry.POS, entry.Tag
	}
	for _, rule := range tagRules {
		if rule.pattern.MatchString(text) {
			return rule.pos, rule.tag
		}
	}
	if first, _ := firstRune(text); unicode.IsUpper(first) {
		return "PROPN", "NNP"
	}
	if strings.HasSuffix(text, "s") && len(text) > 3 {
		return "NOUN", "NNS"
	}
	return "NOUN", "NN"
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
