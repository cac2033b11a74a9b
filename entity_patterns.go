package textpulse

import (
	"regexp"
	"strings"
)

// Compiled regexes for pattern-matched entity types. Order matters in the
// pattern pass: high-specificity patterns (URL, EMAIL) run first so they win
// overlap resolution against the generic ones.
var (
	// URL: http or https prefixed, restricted to RFC 3986 characters.
	reURL = regexp.MustCompile(`https?://[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+`)

	// Email: standard pattern.
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Hashtag and mention: social-media handles.
	reHashtag = regexp.MustCompile(`#[A-Za-z][A-Za-z0-9_]*`)
	reMention = regexp.MustCompile(`@[A-Za-z][A-Za-z0-9_]*`)

	// Date: "January 5, 2024", "5 January 2024", or numeric 12/25/2024 and
	// 2024-12-25 forms.
	reDateMonthFirst = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?\b`)
	reDateDayFirst   = regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)(?:,?\s+\d{4})?\b`)
	reDateNumeric    = regexp.MustCompile(`\b(?:\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|\d{4}-\d{2}-\d{2})\b`)

	// Time: 3:30pm, 14:05, 9 AM.
	reTimeClock  = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\s?(?:[ap]\.?m\.?|[AP]\.?M\.?)?\b`)
	reTimeMeridiem = regexp.MustCompile(`\b\d{1,2}\s?(?:[ap]\.?m\.?|[AP]\.?M\.?)\b`)

	// Money: currency symbol amounts with optional magnitude suffix, or
	// amounts followed by a currency word.
	reMoneySymbol = regexp.MustCompile(`[$€£¥]\s?\d+(?:,\d{3})*(?:\.\d+)?(?:\s?(?:million|billion|trillion|[mMbB]n?|[kK]))?`)
	reMoneyWord   = regexp.MustCompile(`\b\d+(?:,\d{3})*(?:\.\d+)?\s(?:dollars|euros|pounds|cents|USD|EUR|GBP)\b`)

	// Percent: 45%, 3.5 percent.
	rePercent = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?(?:%|percent\b)`)

	// Event: capitalized phrase ending in an event head noun, optionally
	// year-prefixed ("2024 Winter Olympics", "World Economic Forum Summit").
	reEvent = regexp.MustCompile(`\b(?:\d{4}\s)?(?:[A-Z][A-Za-z]+\s){1,4}(?:Olympics|Conference|Summit|Festival|Championship|Cup|Expo|Forum|Convention|Games)\b`)
)

// Confidence assigned per pattern type. Structural patterns (URL, email) are
// near-certain; looser shapes like events rank lower.
var patternConfidence = map[EntityType]float64{
	EntityURL:     0.95,
	EntityEmail:   0.95,
	EntityHashtag: 0.9,
	EntityMention: 0.9,
	EntityDate:    0.85,
	EntityTime:    0.85,
	EntityMoney:   0.9,
	EntityPercent: 0.9,
	EntityEvent:   0.75,
}

// matchPatterns runs every pattern matcher over text and returns raw,
// possibly overlapping candidates.
func matchPatterns(text string) []NamedEntity {
	const minCap = 8
	all := make([]NamedEntity, 0, len(text)/200+minCap)

	all = appendURLs(all, text)
	all = appendPattern(all, text, reEmail, EntityEmail)
	all = appendPattern(all, text, reHashtag, EntityHashtag)
	all = appendMentions(all, text)
	all = appendPattern(all, text, reDateMonthFirst, EntityDate)
	all = appendPattern(all, text, reDateDayFirst, EntityDate)
	all = appendPattern(all, text, reDateNumeric, EntityDate)
	all = appendPattern(all, text, reTimeClock, EntityTime)
	all = appendPattern(all, text, reTimeMeridiem, EntityTime)
	all = appendPattern(all, text, reMoneySymbol, EntityMoney)
	all = appendPattern(all, text, reMoneyWord, EntityMoney)
	all = appendPattern(all, text, rePercent, EntityPercent)
	all = appendPattern(all, text, reEvent, EntityEvent)

	return all
}

// appendPattern appends every match of re as an entity of the given type.
func appendPattern(all []NamedEntity, text string, re *regexp.Regexp, typ EntityType) []NamedEntity {
	for _, m := range re.FindAllStringIndex(text, -1) {
		all = append(all, NamedEntity{
			Text:       text[m[0]:m[1]],
			Type:       typ,
			Start:      m[0],
			End:        m[1],
			Confidence: patternConfidence[typ],
		})
	}
	return all
}

// appendURLs appends HTTP/HTTPS URLs, trimming trailing punctuation that is
// likely sentence punctuation rather than part of the URL.
func appendURLs(all []NamedEntity, text string) []NamedEntity {
	for _, m := range reURL.FindAllStringIndex(text, -1) {
		matched := strings.TrimRight(text[m[0]:m[1]], ".,;:!?)]}>")
		if matched == "" {
			continue
		}
		all = append(all, NamedEntity{
			Text:       matched,
			Type:       EntityURL,
			Start:      m[0],
			End:        m[0] + len(matched),
			Confidence: patternConfidence[EntityURL],
		})
	}
	return all
}

// appendMentions appends @handles, skipping those that are the local part of
// an email address (preceded by an alphanumeric byte).
func appendMentions(all []NamedEntity, text string) []NamedEntity {
	for _, m := range reMention.FindAllStringIndex(text, -1) {
		if m[0] > 0 && isWordByte(text[m[0]-1]) {
			continue
		}
		all = append(all, NamedEntity{
			Text:       text[m[0]:m[1]],
			Type:       EntityMention,
			Start:      m[0],
			End:        m[1],
			Confidence: patternConfidence[EntityMention],
		})
	}
	return all
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '.' || b == '_'
}
