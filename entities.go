package textpulse

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	defaultEntityCacheSize = 200

	// maxSpanWords caps how many words a capitalized span may hold before the
	// scan gives up on it as a name.
	maxSpanWords = 6

	entityBaseConfidence = 0.5
	entityMaxConfidence  = 0.95
)

// spanConnectors may join capitalized words inside one name, as in
// "University of Washington" or "Museum of Science and Industry".
var spanConnectors = map[string]bool{
	"of": true, "the": true, "and": true, "for": true, "de": true,
}

var nerWordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z'\-]*\.?`)

// An EntityRecognizer finds named entities with a two-stage rule pipeline:
// regex patterns for structured types (URLs, emails, dates, money) and a
// capitalized-span scan classified against a gazetteer for people, places,
// organizations, and products. Instances are safe for concurrent use.
type EntityRecognizer struct {
	gaz   *Gazetteer
	cache *fifoCache[[]NamedEntity]
}

// RecognizerOpt configures an EntityRecognizer.
type RecognizerOpt func(*EntityRecognizer)

// UsingGazetteer sets the name lists used to classify capitalized spans.
func UsingGazetteer(gaz *Gazetteer) RecognizerOpt {
	return func(er *EntityRecognizer) {
		er.gaz = gaz
	}
}

// UsingEntityCache sets the capacity of the recognizer's FIFO result cache.
func UsingEntityCache(capacity int) RecognizerOpt {
	return func(er *EntityRecognizer) {
		er.cache = newFIFOCache[[]NamedEntity](capacity)
	}
}

// NewEntityRecognizer creates an EntityRecognizer with default settings.
func NewEntityRecognizer(opts ...RecognizerOpt) *EntityRecognizer {
	er := &EntityRecognizer{
		gaz:   DefaultGazetteer(),
		cache: newFIFOCache[[]NamedEntity](defaultEntityCacheSize),
	}
	for _, applyOpt := range opts {
		applyOpt(er)
	}
	return er
}

// Recognize extracts named entities from text, sorted by start offset with no
// overlapping spans. Every entity satisfies text[e.Start:e.End] == e.Text for
// span entities; pattern entities may trim trailing punctuation from the
// matched range.
func (er *EntityRecognizer) Recognize(text string) []NamedEntity {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	key := cacheKey(text)
	if cached, ok := er.cache.get(key); ok {
		return cached
	}

	candidates := matchPatterns(text)
	candidates = append(candidates, er.scanSpans(text)...)

	result := resolveEntityOverlaps(candidates)
	er.cache.put(key, result)
	return result
}

// nerWord is one word occurrence with its byte span.
type nerWord struct {
	text  string
	start int
	end   int
}

// scanSpans walks runs of capitalized words, joining through connector words,
// and classifies each run against the gazetteer and structural cues.
func (er *EntityRecognizer) scanSpans(text string) []NamedEntity {
	raw := nerWordPattern.FindAllStringIndex(text, -1)
	words := make([]nerWord, len(raw))
	for i, m := range raw {
		words[i] = nerWord{text: text[m[0]:m[1]], start: m[0], end: m[1]}
	}

	var entities []NamedEntity
	i := 0
	for i < len(words) {
		if !isCapitalizedWord(words[i].text) {
			i++
			continue
		}

		// Extend the run while adjacent words stay capitalized, allowing
		// connector words when a capitalized word follows them. A word with a
		// trailing period ends the run unless it is a title ("Dr."), since the
		// period usually ends the sentence too.
		run := []int{i}
		j := i + 1
		for j < len(words) && len(run) < maxSpanWords {
			if terminalWord(words[run[len(run)-1]].text) {
				break
			}
			if !spaceSeparated(text, words[j-1], words[j]) {
				break
			}
			if isCapitalizedWord(words[j].text) {
				run = append(run, j)
				j++
				continue
			}
			bare := strings.ToLower(strings.TrimSuffix(words[j].text, "."))
			if spanConnectors[bare] && j+1 < len(words) &&
				isCapitalizedWord(words[j+1].text) && spaceSeparated(text, words[j], words[j+1]) {
				run = append(run, j, j+1)
				j += 2
				continue
			}
			break
		}

		// Trailing generational or credential suffix extends a name.
		if j < len(words) && spaceSeparated(text, words[j-1], words[j]) &&
			personSuffixes[strings.ToLower(strings.TrimSuffix(words[j].text, "."))] {
			run = append(run, j)
			j++
		}

		if e, ok := er.classifySpan(text, words, run); ok {
			entities = append(entities, e)
		}
		i = j
	}
	return entities
}

// classifySpan decides the entity type and confidence for one capitalized
// run, or rejects it.
func (er *EntityRecognizer) classifySpan(text string, words []nerWord, run []int) (NamedEntity, bool) {
	// A leading title ("Dr.", "President") is a cue, not part of the name.
	titled := false
	for len(run) > 1 && personTitles[strings.ToLower(strings.TrimSuffix(words[run[0]].text, "."))] {
		run = run[1:]
		titled = true
	}

	first, last := words[run[0]], words[run[len(run)-1]]

	// A trailing period usually belongs to the sentence, not the name, so it
	// stays out of the span and the gazetteer key. Dotted abbreviations that
	// carry meaning ("Corp.", "Jr.") keep theirs.
	end := last.end
	if strings.HasSuffix(last.text, ".") {
		bare := strings.ToLower(strings.TrimSuffix(last.text, "."))
		if !orgSuffixes[bare] && !personSuffixes[bare] {
			end--
		}
	}

	spanText := text[first.start:end]
	spanWords := make([]string, len(run))
	for i, idx := range run {
		spanWords[i] = words[idx].text
	}

	prev := ""
	if run[0] > 0 {
		prev = strings.ToLower(strings.TrimSuffix(words[run[0]-1].text, "."))
	}

	lastBare := strings.ToLower(strings.TrimSuffix(spanWords[len(spanWords)-1], "."))
	hasOrgSuffix := false
	hasLocIndicator := false
	for _, w := range spanWords {
		bare := strings.ToLower(strings.TrimSuffix(w, "."))
		if orgSuffixes[bare] {
			hasOrgSuffix = true
		}
		if locationIndicators[bare] {
			hasLocIndicator = true
		}
	}
	hasPersonSuffix := personSuffixes[lastBare]

	confidence := entityBaseConfidence
	if len(spanWords) >= 2 {
		confidence += 0.1
	}

	var typ EntityType
	switch {
	case er.gaz.isOrganization(spanText):
		typ, confidence = EntityOrganization, confidence+0.2
	case er.gaz.isLocation(spanText):
		typ, confidence = EntityLocation, confidence+0.2
	case er.gaz.isProduct(spanText):
		typ, confidence = EntityProduct, confidence+0.2
	case hasOrgSuffix:
		typ, confidence = EntityOrganization, confidence+0.15
	case hasLocIndicator:
		typ, confidence = EntityLocation, confidence+0.15
	case titled || personTitles[prev] || hasPersonSuffix:
		typ, confidence = EntityPerson, confidence+0.15
	case len(spanWords) == 1:
		// A lone capitalized word is usually just sentence case. Keep it only
		// when the gazetteer knows the name.
		if er.gaz.isFirstName(spanText) {
			typ, confidence = EntityPerson, confidence+0.2
		} else {
			return NamedEntity{}, false
		}
	case len(spanWords) <= 3:
		typ = EntityPerson
		if er.gaz.isFirstName(spanWords[0]) {
			confidence += 0.2
		}
	default:
		typ = EntityOrganization
	}

	if confidence > entityMaxConfidence {
		confidence = entityMaxConfidence
	}

	return NamedEntity{
		Text:       spanText,
		Type:       typ,
		Start:      first.start,
		End:        end,
		Confidence: confidence,
	}, true
}

// resolveEntityOverlaps removes overlapping candidates. The longer match
// wins; at equal length the higher-confidence one does. Same-text same-type
// near duplicates starting within 5 bytes of a kept entity are dropped too.
// Returns entities sorted by start offset.
func resolveEntityOverlaps(candidates []NamedEntity) []NamedEntity {
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		la, lb := a.End-a.Start, b.End-b.Start
		if la != lb {
			return la > lb
		}
		return a.Confidence > b.Confidence
	})

	result := make([]NamedEntity, 0, len(candidates))
	maxEnd := 0
	for _, e := range candidates {
		if e.Start < maxEnd {
			continue
		}
		if n := len(result); n > 0 {
			prev := result[n-1]
			if prev.Text == e.Text && prev.Type == e.Type && e.Start-prev.Start < 5 {
				continue
			}
		}
		result = append(result, e)
		maxEnd = e.End
	}
	return result
}

// terminalWord reports whether a word's trailing period plausibly ends the
// sentence: any dotted word that is not a personal title.
func terminalWord(w string) bool {
	if !strings.HasSuffix(w, ".") {
		return false
	}
	return !personTitles[strings.ToLower(strings.TrimSuffix(w, "."))]
}

func isCapitalizedWord(w string) bool {
	r, ok := firstRune(w)
	return ok && unicode.IsUpper(r)
}

// spaceSeparated reports whether only space bytes lie between two words.
func spaceSeparated(text string, a, b nerWord) bool {
	if b.start <= a.end {
		return false
	}
	for i := a.end; i < b.start; i++ {
		if text[i] != ' ' {
			return false
		}
	}
	return true
}
