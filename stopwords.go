package textpulse

import (
	"strings"
	"sync"

	"github.com/bbalet/stopwords"
)

// coreStopWords is the fixed stop-word set used for token flagging, RAKE
// phrase splitting, and n-gram filtering. Token.IsStop is derived from this
// set only, so tokenization stays fully deterministic.
var coreStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"could": true, "did": true, "do": true, "does": true, "doing": true,
	"down": true, "during": true, "each": true, "few": true, "for": true,
	"from": true, "further": true, "had": true, "has": true, "have": true,
	"having": true, "he": true, "her": true, "here": true, "hers": true,
	"herself": true, "him": true, "himself": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "itself": true, "just": true, "me": true, "more": true,
	"most": true, "my": true, "myself": true, "no": true, "nor": true,
	"not": true, "now": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "our": true,
	"ours": true, "ourselves": true, "out": true, "over": true, "own": true,
	"same": true, "she": true, "should": true, "so": true, "some": true,
	"such": true, "than": true, "that": true, "the": true, "their": true,
	"theirs": true, "them": true, "themselves": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "to": true, "too": true, "under": true, "until": true,
	"up": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "whom": true, "why": true, "will": true, "with": true,
	"would": true, "you": true, "your": true, "yours": true, "yourself": true,
	"yourselves": true,
}

// stopProbeCandidates are frequent words not in the core set that may still be
// noise for keyword extraction. Each is probed against the stopwords library
// once; words the library filters out join the extended set.
var stopProbeCandidates = []string{
	"also", "back", "even", "ever", "every", "get", "go", "going", "got",
	"however", "know", "let", "like", "made", "make", "many", "may", "might",
	"much", "must", "never", "new", "one", "said", "say", "see", "shall",
	"still", "take", "thing", "things", "think", "two", "us", "use", "want",
	"way", "well", "yet",
}

var (
	extendedStopOnce sync.Once
	extendedStop     map[string]bool
)

// extendedStopWords returns the keyword-extraction stop set: the core set plus
// every probe candidate the stopwords library treats as an English stop word.
// The library doesn't export its word lists, so membership is detected by
// running each candidate through CleanString and seeing whether it survives.
func extendedStopWords() map[string]bool {
	extendedStopOnce.Do(func() {
		extendedStop = make(map[string]bool, len(coreStopWords)+len(stopProbeCandidates))
		for w := range coreStopWords {
			extendedStop[w] = true
		}
		for _, w := range stopProbeCandidates {
			cleaned := strings.TrimSpace(stopwords.CleanString(w, "en", false))
			if cleaned == "" || cleaned != w {
				extendedStop[w] = true
			}
		}
	})
	return extendedStop
}

// isStopWord reports membership in the fixed core stop-word set.
func isStopWord(word string) bool {
	return coreStopWords[strings.ToLower(word)]
}
