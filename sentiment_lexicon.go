package textpulse

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// LexiconEntry holds the sentiment information for one base form.
type LexiconEntry struct {
	Score     float64           // -5 (most negative) to +5 (most positive).
	Intensity float64           // 0 to 1.
	Emotions  []EmotionCategory // Emotion tags associated with the word.
}

// A Lexicon maps lemmas to sentiment entries plus negation and modifier word
// sets. Safe for concurrent reads after construction; MergeFile takes the
// write lock.
type Lexicon struct {
	mu        sync.RWMutex
	words     map[string]LexiconEntry
	negations map[string]bool
	modifiers map[string]float64 // multiplier applied to the next sentiment word
}

// lexiconFile is the YAML schema for external lexicon files.
type lexiconFile struct {
	Words []struct {
		Word      string   `yaml:"word"`
		Score     float64  `yaml:"score"`
		Intensity float64  `yaml:"intensity"`
		Emotions  []string `yaml:"emotions"`
	} `yaml:"words"`
	Negations    []string `yaml:"negations"`
	Intensifiers []struct {
		Word   string  `yaml:"word"`
		Factor float64 `yaml:"factor"`
	} `yaml:"intensifiers"`
	Diminishers []struct {
		Word   string  `yaml:"word"`
		Factor float64 `yaml:"factor"`
	} `yaml:"diminishers"`
}

// DefaultLexicon returns a Lexicon populated with the built-in English word
// lists.
func DefaultLexicon() *Lexicon {
	l := &Lexicon{
		words:     make(map[string]LexiconEntry, len(baseLexicon)),
		negations: make(map[string]bool, len(baseNegations)),
		modifiers: make(map[string]float64, len(baseModifiers)),
	}
	for w, e := range baseLexicon {
		l.words[w] = e
	}
	for _, w := range baseNegations {
		l.negations[w] = true
	}
	for w, f := range baseModifiers {
		l.modifiers[w] = f
	}
	return l
}

// MergeFile loads a YAML lexicon file and merges its entries, overriding
// built-in words on conflict. File access happens here only, never during
// analysis.
func (l *Lexicon) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read lexicon: %w", err)
	}

	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse lexicon: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, w := range file.Words {
		if w.Word == "" {
			continue
		}
		if w.Score < -5 || w.Score > 5 || w.Intensity < 0 || w.Intensity > 1 {
			return fmt.Errorf("lexicon entry %q: %w", w.Word, ErrInvalidConfig)
		}
		entry := LexiconEntry{Score: w.Score, Intensity: w.Intensity}
		for _, e := range w.Emotions {
			entry.Emotions = append(entry.Emotions, EmotionCategory(strings.ToLower(e)))
		}
		l.words[strings.ToLower(w.Word)] = entry
	}
	for _, n := range file.Negations {
		l.negations[strings.ToLower(n)] = true
	}
	for _, m := range file.Intensifiers {
		if m.Factor > 0 {
			l.modifiers[strings.ToLower(m.Word)] = m.Factor
		}
	}
	for _, m := range file.Diminishers {
		if m.Factor > 0 {
			l.modifiers[strings.ToLower(m.Word)] = m.Factor
		}
	}
	return nil
}

func (l *Lexicon) entry(lemma string) (LexiconEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.words[lemma]
	return e, ok
}

func (l *Lexicon) isNegation(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.negations[word]
}

func (l *Lexicon) modifier(word string) (float64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.modifiers[word]
	return f, ok
}

// baseLexicon maps lemmas to sentiment entries. Keys are base forms so a
// token's lemma, not its surface text, drives the lookup.
var baseLexicon = map[string]LexiconEntry{
	// Strong positives.
	"amazing":    {4.5, 0.9, []EmotionCategory{Joy, Excitement, Admiration}},
	"awesome":    {4.5, 0.9, []EmotionCategory{Joy, Excitement}},
	"incredible": {4.5, 0.9, []EmotionCategory{Surprise, Excitement, Admiration}},
	"fantastic":  {4.5, 0.9, []EmotionCategory{Joy, Excitement}},
	"wonderful":  {4.0, 0.85, []EmotionCategory{Joy, Love, Serenity}},
	"excellent":  {4.0, 0.85, []EmotionCategory{Admiration, Trust}},
	"brilliant":  {4.0, 0.85, []EmotionCategory{Admiration, Excitement}},
	"perfect":    {4.5, 0.9, []EmotionCategory{Joy, Admiration}},
	"outstanding": {4.0, 0.85, []EmotionCategory{Admiration, Pride}},
	"magnificent": {4.0, 0.85, []EmotionCategory{Admiration, Surprise}},
	"stunning":   {4.0, 0.85, []EmotionCategory{Surprise, Admiration}},
	"spectacular": {4.0, 0.85, []EmotionCategory{Surprise, Excitement}},
	"phenomenal": {4.5, 0.9, []EmotionCategory{Surprise, Admiration}},
	"love":       {4.0, 0.9, []EmotionCategory{Love, Joy}},
	"adore":      {4.0, 0.9, []EmotionCategory{Love, Admiration}},
	"thrill":     {3.5, 0.85, []EmotionCategory{Excitement, Surprise}},
	"delight":    {3.5, 0.8, []EmotionCategory{Joy, Amusement}},
	"bliss":      {4.0, 0.85, []EmotionCategory{Joy, Serenity}},
	"ecstatic":   {4.5, 0.95, []EmotionCategory{Joy, Excitement}},
	"triumph":    {3.5, 0.8, []EmotionCategory{Pride, Joy}},

	// Moderate positives.
	"happy":      {3.0, 0.7, []EmotionCategory{Joy}},
	"joy":        {3.5, 0.8, []EmotionCategory{Joy}},
	"beautiful":  {3.5, 0.75, []EmotionCategory{Admiration, Love}},
	"impressive": {3.0, 0.7, []EmotionCategory{Admiration, Surprise}},
	"enjoy":      {3.0, 0.7, []EmotionCategory{Joy, Amusement}},
	"exciting":   {3.5, 0.8, []EmotionCategory{Excitement, Anticipation}},
	"win":        {3.0, 0.7, []EmotionCategory{Pride, Joy}},
	"success":    {3.0, 0.7, []EmotionCategory{Pride, Optimism}},
	"succeed":    {3.0, 0.7, []EmotionCategory{Pride, Optimism}},
	"improve":    {2.5, 0.6, []EmotionCategory{Optimism, Anticipation}},
	"hope":       {2.5, 0.6, []EmotionCategory{Optimism, Anticipation}},
	"helpful":    {2.5, 0.6, []EmotionCategory{Trust, Gratitude}},
	"reliable":   {2.5, 0.6, []EmotionCategory{Trust}},
	"honest":     {2.5, 0.6, []EmotionCategory{Trust, Admiration}},
	"smart":      {2.5, 0.6, []EmotionCategory{Admiration}},
	"clever":     {2.5, 0.6, []EmotionCategory{Admiration, Amusement}},
	"fun":        {3.0, 0.7, []EmotionCategory{Amusement, Joy}},
	"funny":      {3.0, 0.7, []EmotionCategory{Amusement}},
	"hilarious":  {3.5, 0.85, []EmotionCategory{Amusement, Surprise}},
	"laugh":      {2.5, 0.65, []EmotionCategory{Amusement, Joy}},
	"thank":      {2.5, 0.6, []EmotionCategory{Gratitude}},
	"grateful":   {3.0, 0.7, []EmotionCategory{Gratitude, Serenity}},
	"appreciate": {2.5, 0.6, []EmotionCategory{Gratitude, Admiration}},
	"proud":      {3.0, 0.7, []EmotionCategory{Pride}},
	"calm":       {2.0, 0.5, []EmotionCategory{Serenity}},
	"peaceful":   {2.5, 0.6, []EmotionCategory{Serenity}},
	"relax":      {2.0, 0.5, []EmotionCategory{Serenity}},
	"fresh":      {2.0, 0.5, []EmotionCategory{Joy, Anticipation}},
	"strong":     {2.0, 0.5, []EmotionCategory{Pride, Trust}},
	"popular":    {2.0, 0.5, []EmotionCategory{Admiration}},
	"interesting": {2.0, 0.5, []EmotionCategory{Anticipation, Surprise}},
	"inspire":    {3.0, 0.7, []EmotionCategory{Admiration, Optimism}},
	"support":    {2.0, 0.5, []EmotionCategory{Trust, Gratitude}},
	"safe":       {2.0, 0.5, []EmotionCategory{Trust, Serenity}},
	"easy":       {1.5, 0.4, []EmotionCategory{Serenity}},
	"free":       {1.5, 0.4, []EmotionCategory{Joy}},
	"better":     {1.5, 0.4, []EmotionCategory{Optimism}},
	"recommend":  {2.5, 0.6, []EmotionCategory{Trust, Admiration}},
	"curious":    {1.5, 0.4, []EmotionCategory{Anticipation, Surprise}},
	"eager":      {2.0, 0.55, []EmotionCategory{Anticipation, Excitement}},

	// Strong negatives.
	"terrible":   {-4.5, 0.9, []EmotionCategory{Disgust, Fear}},
	"horrible":   {-4.5, 0.9, []EmotionCategory{Disgust, Fear}},
	"awful":      {-4.0, 0.85, []EmotionCategory{Disgust, Sadness}},
	"disgusting": {-4.5, 0.9, []EmotionCategory{Disgust}},
	"hate":       {-4.0, 0.9, []EmotionCategory{Anger, Disgust}},
	"despise":    {-4.0, 0.9, []EmotionCategory{Anger, Disgust}},
	"dreadful":   {-4.0, 0.85, []EmotionCategory{Fear, Disgust}},
	"atrocious":  {-4.5, 0.9, []EmotionCategory{Disgust, Anger}},
	"nightmare":  {-4.0, 0.85, []EmotionCategory{Fear, Sadness}},
	"disaster":   {-4.0, 0.85, []EmotionCategory{Fear, Sadness}},
	"catastrophe": {-4.5, 0.9, []EmotionCategory{Fear, Sadness}},
	"furious":    {-4.0, 0.9, []EmotionCategory{Anger}},
	"devastate":  {-4.0, 0.9, []EmotionCategory{Sadness, Fear}},
	"worst":      {-4.5, 0.9, []EmotionCategory{Disgust, Sadness}},

	// Moderate negatives.
	"sad":        {-3.0, 0.7, []EmotionCategory{Sadness}},
	"angry":      {-3.5, 0.8, []EmotionCategory{Anger}},
	"anger":      {-3.5, 0.8, []EmotionCategory{Anger}},
	"fear":       {-3.0, 0.75, []EmotionCategory{Fear}},
	"afraid":     {-3.0, 0.75, []EmotionCategory{Fear}},
	"scary":      {-3.0, 0.75, []EmotionCategory{Fear}},
	"scare":      {-3.0, 0.75, []EmotionCategory{Fear}},
	"worry":      {-2.5, 0.6, []EmotionCategory{Fear, Anticipation}},
	"anxious":    {-2.5, 0.65, []EmotionCategory{Fear, Anticipation}},
	"cry":        {-2.5, 0.65, []EmotionCategory{Sadness}},
	"grief":      {-3.5, 0.8, []EmotionCategory{Sadness}},
	"miserable":  {-3.5, 0.8, []EmotionCategory{Sadness}},
	"depress":    {-3.5, 0.8, []EmotionCategory{Sadness}},
	"pain":       {-3.0, 0.7, []EmotionCategory{Sadness, Fear}},
	"hurt":       {-3.0, 0.7, []EmotionCategory{Sadness, Anger}},
	"fail":       {-3.0, 0.7, []EmotionCategory{Sadness, Fear}},
	"failure":    {-3.0, 0.7, []EmotionCategory{Sadness, Fear}},
	"lose":       {-2.5, 0.6, []EmotionCategory{Sadness}},
	"broken":     {-2.5, 0.6, []EmotionCategory{Sadness}},
	"wrong":      {-2.0, 0.5, []EmotionCategory{Anger, Sadness}},
	"bad":        {-3.0, 0.7, []EmotionCategory{Disgust, Sadness}},
	"poor":       {-2.5, 0.6, []EmotionCategory{Sadness, Disgust}},
	"ugly":       {-3.0, 0.7, []EmotionCategory{Disgust}},
	"boring":     {-2.5, 0.6, []EmotionCategory{Sadness}},
	"annoying":   {-2.5, 0.65, []EmotionCategory{Anger, Disgust}},
	"annoy":      {-2.5, 0.65, []EmotionCategory{Anger, Disgust}},
	"stupid":     {-3.0, 0.7, []EmotionCategory{Anger, Disgust}},
	"useless":    {-3.0, 0.7, []EmotionCategory{Disgust, Sadness}},
	"worthless":  {-3.5, 0.75, []EmotionCategory{Disgust, Sadness}},
	"cheap":      {-1.5, 0.4, []EmotionCategory{Disgust}},
	"slow":       {-1.5, 0.4, []EmotionCategory{Sadness}},
	"problem":    {-1.5, 0.4, []EmotionCategory{Fear, Anticipation}},
	"difficult":  {-1.5, 0.4, []EmotionCategory{Fear, Sadness}},
	"disappoint": {-3.0, 0.7, []EmotionCategory{Sadness, Surprise}},
	"shock":      {-2.0, 0.7, []EmotionCategory{Surprise, Fear}},
	"betray":     {-3.5, 0.8, []EmotionCategory{Anger, Sadness}},
	"doubt":      {-1.5, 0.4, []EmotionCategory{Fear, Anticipation}},
	"risk":       {-1.5, 0.4, []EmotionCategory{Fear, Anticipation}},
	"danger":     {-3.0, 0.75, []EmotionCategory{Fear}},
	"threat":     {-3.0, 0.75, []EmotionCategory{Fear, Anger}},
	"crisis":     {-3.0, 0.7, []EmotionCategory{Fear, Sadness}},
	"blame":      {-2.5, 0.6, []EmotionCategory{Anger}},
	"toxic":      {-3.5, 0.8, []EmotionCategory{Disgust, Anger}},
	"scam":       {-3.5, 0.8, []EmotionCategory{Anger, Disgust}},
	"lie":        {-3.0, 0.7, []EmotionCategory{Anger, Disgust}},

	// Mild / context words.
	"good":     {2.5, 0.6, []EmotionCategory{Joy, Trust}},
	"great":    {3.5, 0.75, []EmotionCategory{Joy, Admiration}},
	"okay":     {1.0, 0.3, []EmotionCategory{Serenity}},
	"fine":     {1.0, 0.3, []EmotionCategory{Serenity}},
	"nice":     {2.0, 0.5, []EmotionCategory{Joy, Trust}},
	"like":     {2.0, 0.5, []EmotionCategory{Joy, Love}},
	"surprise": {1.0, 0.6, []EmotionCategory{Surprise}},
	"sudden":   {-0.5, 0.4, []EmotionCategory{Surprise}},
	"unexpected": {0.5, 0.5, []EmotionCategory{Surprise}},
}

// baseNegations activate a 3-token negation window.
var baseNegations = []string{
	"not", "no", "never", "neither", "nor", "nothing", "nobody", "nowhere",
	"cannot", "without", "hardly", "barely", "scarcely",
	"don't", "doesn't", "didn't", "isn't", "aren't", "wasn't", "weren't",
	"can't", "couldn't", "won't", "wouldn't", "shouldn't", "hasn't",
	"haven't", "hadn't", "mustn't", "ain't",
}

// baseModifiers multiply the next sentiment word's score. Values above 1
// intensify; values below 1 diminish.
var baseModifiers = map[string]float64{
	"very":        1.5,
	"extremely":   2.0,
	"absolutely":  1.8,
	"really":      1.4,
	"incredibly":  1.9,
	"totally":     1.6,
	"completely":  1.7,
	"highly":      1.5,
	"utterly":     1.8,
	"remarkably":  1.6,
	"deeply":      1.5,
	"truly":       1.5,
	"especially":  1.4,
	"insanely":    1.9,
	"super":       1.6,
	"quite":       1.2,
	"so":          1.3,
	"slightly":    0.5,
	"somewhat":    0.6,
	"kinda":       0.6,
	"rather":      0.8,
	"fairly":      0.7,
	"marginally":  0.4,
	"mildly":      0.5,
	"moderately":  0.7,
}
