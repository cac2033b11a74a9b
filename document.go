package textpulse

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might disable named-entity extraction:
//
//	doc := textpulse.NewDocument("...", textpulse.WithEntities(false))
type DocOpt func(doc *Document, opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Segment   bool            // If true, include sentence segmentation
	Sentiment bool            // If true, include sentiment and emotion analysis
	Keywords  bool            // If true, include keyword extraction
	Entities  bool            // If true, include named-entity recognition
	Corpus    []string        // Reference documents for TF-IDF and topic counts
	Context   context.Context // Context for cancellation and timeouts
	Timeout   time.Duration   // Processing timeout

	Tokenizer  *Tokenizer
	Splitter   *SentenceSplitter
	Analyzer   *SentimentAnalyzer
	Extractor  *KeywordExtractor
	Recognizer *EntityRecognizer
}

// UsingDocTokenizer specifies the Tokenizer to use.
func UsingDocTokenizer(tok *Tokenizer) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Tokenizer = tok
	}
}

// UsingSplitter specifies the SentenceSplitter to use.
func UsingSplitter(sp *SentenceSplitter) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Splitter = sp
	}
}

// UsingAnalyzer specifies the SentimentAnalyzer to use.
func UsingAnalyzer(sa *SentimentAnalyzer) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Analyzer = sa
	}
}

// UsingExtractor specifies the KeywordExtractor to use.
func UsingExtractor(ke *KeywordExtractor) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Extractor = ke
	}
}

// UsingRecognizer specifies the EntityRecognizer to use.
func UsingRecognizer(er *EntityRecognizer) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Recognizer = er
	}
}

// WithSegmentation can enable (the default) or disable sentence segmentation.
func WithSegmentation(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Segment = include
	}
}

// WithSentiment can enable (the default) or disable sentiment analysis.
func WithSentiment(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Sentiment = include
	}
}

// WithKeywords can enable (the default) or disable keyword extraction.
func WithKeywords(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Keywords = include
	}
}

// WithEntities can enable (the default) or disable named-entity recognition.
func WithEntities(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Entities = include
	}
}

// WithCorpus supplies reference documents for corpus-aware keyword scoring.
func WithCorpus(corpus []string) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Corpus = corpus
	}
}

// WithContext sets the context for document processing.
func WithContext(ctx context.Context) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Context = ctx
	}
}

// WithTimeout sets a timeout for document processing.
func WithTimeout(timeout time.Duration) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Timeout = timeout
	}
}

// DocumentMetadata records processing details for a Document.
type DocumentMetadata struct {
	ProcessedAt      time.Time
	ProcessingTimeMs int64
	TokenCount       int
	SentenceCount    int
	EntityCount      int
	KeywordCount     int
}

// A Document represents a fully analyzed body of text.
type Document struct {
	Text     string
	Metadata DocumentMetadata

	tokens    []Token
	sentences []Sentence
	sentiment SentimentScore
	emotions  EmotionAnalysis
	keywords  ExtractionResult
	entities  []NamedEntity
}

// Tokens returns `doc`'s tokens.
func (doc *Document) Tokens() []Token {
	return doc.tokens
}

// Sentences returns `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// Sentiment returns `doc`'s overall sentiment.
func (doc *Document) Sentiment() SentimentScore {
	return doc.sentiment
}

// Emotions returns `doc`'s emotion analysis.
func (doc *Document) Emotions() EmotionAnalysis {
	return doc.emotions
}

// Keywords returns `doc`'s keyword-extraction result.
func (doc *Document) Keywords() ExtractionResult {
	return doc.keywords
}

// Entities returns `doc`'s named entities.
func (doc *Document) Entities() []NamedEntity {
	return doc.entities
}

var defaultDocOpts = DocOpts{
	Segment:   true,
	Sentiment: true,
	Keywords:  true,
	Entities:  true,
	Context:   context.Background(),
	Timeout:   30 * time.Second,
}

// NewDocument runs the full analysis pipeline over text according to the
// user-specified options.
//
// For example,
//
//	doc, err := textpulse.NewDocument("...")
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}

	startTime := time.Now()

	doc := Document{
		Text: text,
		Metadata: DocumentMetadata{
			ProcessedAt: startTime,
		},
	}

	base := defaultDocOpts
	for _, applyOpt := range opts {
		applyOpt(&doc, &base)
	}

	if base.Tokenizer == nil {
		base.Tokenizer = NewTokenizer()
	}

	ctx := base.Context
	if base.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, base.Timeout)
		defer cancel()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Tokenization always runs; every downstream engine consumes tokens.
	doc.tokens = base.Tokenizer.Tokenize(text)
	doc.Metadata.TokenCount = len(doc.tokens)

	if base.Segment {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if base.Splitter == nil {
			base.Splitter = NewSentenceSplitter(UsingSplitterTokenizer(base.Tokenizer))
		}
		doc.sentences = base.Splitter.Split(text)
		doc.Metadata.SentenceCount = len(doc.sentences)
	}

	if base.Sentiment {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if base.Analyzer == nil {
			base.Analyzer = NewSentimentAnalyzer(UsingSentimentTokenizer(base.Tokenizer))
		}
		doc.sentiment = base.Analyzer.Analyze(text)
		doc.emotions = base.Analyzer.AnalyzeEmotions(text)
	}

	if base.Keywords {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if base.Extractor == nil {
			base.Extractor = NewKeywordExtractor(UsingExtractorTokenizer(base.Tokenizer))
		}
		doc.keywords = base.Extractor.Extract(text, base.Corpus)
		doc.Metadata.KeywordCount = len(doc.keywords.Keywords)
	}

	if base.Entities {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if base.Recognizer == nil {
			base.Recognizer = NewEntityRecognizer()
		}
		doc.entities = base.Recognizer.Recognize(text)
		doc.Metadata.EntityCount = len(doc.entities)
	}

	doc.Metadata.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return &doc, nil
}
