package textpulse

import "strings"

// irregularVerbs maps inflected verb forms to their base form.
var irregularVerbs = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"goes": "go", "went": "go", "gone": "go", "going": "go",
	"says": "say", "said": "say",
	"makes": "make", "made": "make",
	"takes": "take", "took": "take", "taken": "take",
	"comes": "come", "came": "come",
	"sees": "see", "saw": "see", "seen": "see",
	"gets": "get", "got": "get", "gotten": "get",
	"gives": "give", "gave": "give", "given": "give",
	"knows": "know", "knew": "know", "known": "know",
	"thinks": "think", "thought": "think",
	"finds": "find", "found": "find",
	"tells": "tell", "told": "tell",
	"becomes": "become", "became": "become",
	"shows": "show", "showed": "show", "shown": "show",
	"leaves": "leave", "left": "leave",
	"feels": "feel", "felt": "feel",
	"brings": "bring", "brought": "bring",
	"begins": "begin", "began": "begin", "begun": "begin",
	"keeps": "keep", "kept": "keep",
	"holds": "hold", "held": "hold",
	"writes": "write", "wrote": "write", "written": "write",
	"stands": "stand", "stood": "stand",
	"hears": "hear", "heard": "hear",
	"means": "mean", "meant": "mean",
	"runs": "run", "ran": "run", "running": "run",
	"pays": "pay", "paid": "pay",
	"meets": "meet", "met": "meet",
	"loses": "lose", "lost": "lose",
	"buys": "buy", "bought": "buy",
	"sells": "sell", "sold": "sell",
	"speaks": "speak", "spoke": "speak", "spoken": "speak",
	"grows": "grow", "grew": "grow", "grown": "grow",
	"wins": "win", "won": "win",
	"falls": "fall", "fell": "fall", "fallen": "fall",
	"sends": "send", "sent": "send",
	"builds": "build", "built": "build",
}

// irregularPlurals maps irregular plural nouns to their singular form.
var irregularPlurals = map[string]string{
	"children": "child", "people": "person", "men": "man", "women": "woman",
	"feet": "foot", "teeth": "tooth", "mice": "mouse", "geese": "goose",
	"lives": "life", "wives": "wife", "knives": "knife", "leaves": "leaf",
	"wolves": "wolf", "shelves": "shelf", "halves": "half",
	"criteria": "criterion", "phenomena": "phenomenon", "data": "datum",
	"media": "medium", "analyses": "analysis", "crises": "crisis",
	"theses": "thesis", "indices": "index", "matrices": "matrix",
}

// lemmaRule is one ordered suffix-stripping rule. A rule applies when the
// word carries the suffix, meets the minimum length, and (when pos is set)
// was tagged with that coarse part of speech. The first applicable rule wins.
type lemmaRule struct {
	suffix  string
	replace string
	minLen  int
	pos     string // "" matches any part of speech.
}

var lemmaRules = []lemmaRule{
	{"sses", "ss", 5, ""},
	{"ches", "ch", 5, ""},
	{"shes", "sh", 5, ""},
	{"xes", "x", 4, ""},
	{"ies", "y", 4, ""},
	{"ying", "y", 5, "VERB"},
	{"ing", "", 5, "VERB"},
	{"ied", "y", 4, ""},
	{"ed", "", 4, "VERB"},
	{"est", "", 5, "ADJ"},
	{"er", "", 4, "ADJ"},
	{"ly", "", 4, "ADV"},
	{"s", "", 4, ""},
}

// lemmatize returns the base form of word. Irregular tables are consulted
// first; otherwise the ordered suffix rules apply. Unmatched words return
// unchanged (lowercased).
func lemmatize(word, pos string) string {
	lower := strings.ToLower(word)

	if base, ok := irregularVerbs[lower]; ok {
		return base
	}
	if base, ok := irregularPlurals[lower]; ok {
		return base
	}

	for _, rule := range lemmaRules {
		if len(lower) < rule.minLen {
			continue
		}
		if rule.pos != "" && rule.pos != pos {
			continue
		}
		if !strings.HasSuffix(lower, rule.suffix) {
			continue
		}
		stem := lower[:len(lower)-len(rule.suffix)] + rule.replace
		return undouble(stem, rule.suffix)
	}

	return lower
}

// undouble collapses a doubled final consonant left behind by stripping a
// verbal suffix: "running" -> "runn" -> "run". Only applies after -ing/-ed,
// and never to -ll/-ss endings ("falling" -> "fall", "missed" -> "miss").
func undouble(stem, strippedSuffix string) string {
	if strippedSuffix != "ing" && strippedSuffix != "ed" {
		return stem
	}
	n := len(stem)
	if n < 3 {
		return stem
	}
	last := stem[n-1]
	if last != stem[n-2] {
		return stem
	}
	if last == 'l' || last == 's' || last == 'e' {
		return stem
	}
	return stem[:n-1]
}
