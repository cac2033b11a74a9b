package textpulse

// A Token represents an individual unit of text such as a word, number, or
// punctuation symbol. Tokens are value objects: once returned they are never
// mutated by the library.
type Token struct {
	Text    string // The token's actual content.
	Lemma   string // Normalized base form ("running" -> "run").
	POS     string // Coarse part of speech (NOUN, VERB, ADJ, ...).
	Tag     string // Fine-grained Penn-style tag (NN, VBG, JJ, ...).
	IsStop  bool   // Member of the stop-word set.
	IsPunct bool   // Pure punctuation.
	IsAlpha bool   // Entirely alphabetic.
	IsDigit bool   // Entirely numeric (allowing decimal point and % suffix).
	Index   int    // Position within the token sequence of one call.
	Start   int    // Start byte offset in the original text.
	End     int    // End byte offset in the original text (exclusive).
}

// SentenceType classifies a sentence by its communicative function.
type SentenceType string

const (
	Declarative   SentenceType = "declarative"
	Interrogative SentenceType = "interrogative"
	Exclamatory   SentenceType = "exclamatory"
	Imperative    SentenceType = "imperative"
)

// A Sentence represents a segmented portion of text. Tokens is a view into the
// token sequence of the owning split call, not a copy.
type Sentence struct {
	Text       string
	Tokens     []Token
	Start      int // Start byte offset in the original text.
	End        int // End byte offset in the original text (exclusive).
	Type       SentenceType
	Sentiment  SentimentScore
	Complexity float64 // 0-100 readability-style complexity score.
}

// String returns the text content of the sentence.
func (s Sentence) String() string {
	return s.Text
}

// SentimentScore represents document- or sentence-level sentiment.
type SentimentScore struct {
	Overall    float64 // -1.0 (negative) to 1.0 (positive).
	Positive   float64 // 0.0 to 1.0.
	Negative   float64 // 0.0 to 1.0.
	Neutral    float64 // 0.0 to 1.0.
	Confidence float64 // 0.0 to 1.0 reliability score.
}

// EmotionCategory identifies one of the fixed emotion dimensions tracked by
// the emotion analyzer.
type EmotionCategory string

const (
	Joy          EmotionCategory = "joy"
	Sadness      EmotionCategory = "sadness"
	Anger        EmotionCategory = "anger"
	Fear         EmotionCategory = "fear"
	Surprise     EmotionCategory = "surprise"
	Disgust      EmotionCategory = "disgust"
	Trust        EmotionCategory = "trust"
	Anticipation EmotionCategory = "anticipation"
	Love         EmotionCategory = "love"
	Optimism     EmotionCategory = "optimism"
	Pride        EmotionCategory = "pride"
	Admiration   EmotionCategory = "admiration"
	Gratitude    EmotionCategory = "gratitude"
	Serenity     EmotionCategory = "serenity"
	Amusement    EmotionCategory = "amusement"
	Excitement   EmotionCategory = "excitement"
)

// EmotionAnalysis reports the emotion distribution of a text.
type EmotionAnalysis struct {
	Primary    EmotionCategory             // Strongest emotion, or "" when none detected.
	Secondary  EmotionCategory             // Second strongest, or "" when absent.
	Emotions   map[EmotionCategory]float64 // Per-category scores normalized to [0,1].
	Intensity  float64                     // 0.0 to 1.0 mean intensity of emotional words.
	Confidence float64                     // 0.0 to 1.0.
}

// ExtractionMethod identifies which keyword-extraction algorithm produced a
// candidate.
type ExtractionMethod string

const (
	MethodTextRank ExtractionMethod = "textrank"
	MethodRAKE     ExtractionMethod = "rake"
	MethodTFIDF    ExtractionMethod = "tfidf"
	MethodNgram    ExtractionMethod = "ngram"
)

// ScoredKeyword is a keyword with its merged score and provenance.
type ScoredKeyword struct {
	Keyword   string
	Score     float64
	Frequency int
	Methods   []ExtractionMethod // Sorted; every method that proposed this keyword.
}

// KeyPhrase is a multi-word keyword candidate.
type KeyPhrase struct {
	Phrase    string
	Score     float64
	Frequency int
	Words     []string
}

// TopicCluster groups related keywords discovered by co-occurrence clustering.
type TopicCluster struct {
	ID            string   // ULID, unique per clustering run.
	Name          string   // Derived from the first two member keywords.
	Keywords      []string // Member keywords, ordered by merged score.
	Relevance     float64  // 0.0 to 1.0.
	DocumentCount int
}

// TextStatistics summarizes an extraction run.
type TextStatistics struct {
	TotalWords       int
	UniqueWords      int
	LexicalDiversity float64 // UniqueWords / TotalWords.
	KeywordDensity   float64 // Keyword occurrences / TotalWords.
	Coverage         float64 // Fraction of word tokens covered by the keyword set.
	ScoreMean        float64 // Mean merged keyword score.
	ScoreStdDev      float64 // Standard deviation of merged keyword scores.
}

// ExtractionResult bundles the outputs of one keyword-extraction call.
type ExtractionResult struct {
	Keywords   []ScoredKeyword
	Keyphrases []KeyPhrase
	Topics     []TopicCluster
	Statistics TextStatistics
}

// EntityType classifies a named entity.
type EntityType string

const (
	EntityPerson       EntityType = "PERSON"
	EntityOrganization EntityType = "ORGANIZATION"
	EntityLocation     EntityType = "LOCATION"
	EntityProduct      EntityType = "PRODUCT"
	EntityDate         EntityType = "DATE"
	EntityTime         EntityType = "TIME"
	EntityMoney        EntityType = "MONEY"
	EntityPercent      EntityType = "PERCENT"
	EntityEvent        EntityType = "EVENT"
	EntityURL          EntityType = "URL"
	EntityEmail        EntityType = "EMAIL"
	EntityHashtag      EntityType = "HASHTAG"
	EntityMention      EntityType = "MENTION"
)

// A NamedEntity represents an individual named-entity occurrence. Within one
// recognition call no two entities have overlapping [Start, End) ranges.
type NamedEntity struct {
	Text       string
	Type       EntityType
	Start      int // Start byte offset in the original text.
	End        int // End byte offset in the original text (exclusive).
	Confidence float64
}
