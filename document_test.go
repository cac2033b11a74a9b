package textpulse

import (
	"context"
	"errors"
	"testing"
)

func TestNewDocumentPipeline(t *testing.T) {
	text := "Dr. Smith loves the amazing new product from Acme Corp. It works well."
	doc, err := NewDocument(text)
	if err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}

	if len(doc.Tokens()) == 0 {
		t.Error("expected tokens")
	}
	if got := len(doc.Sentences()); got != 2 {
		t.Errorf("expected 2 sentences, got %d", got)
	}
	if doc.Sentiment().Overall <= 0 {
		t.Errorf("expected positive sentiment, got %.3f", doc.Sentiment().Overall)
	}
	if len(doc.Keywords().Keywords) == 0 {
		t.Error("expected keywords")
	}
	if _, ok := findEntity(doc.Entities(), EntityOrganization); !ok {
		t.Errorf("expected an ORGANIZATION entity, got %v", doc.Entities())
	}

	md := doc.Metadata
	if md.TokenCount != len(doc.Tokens()) {
		t.Errorf("token count %d != %d", md.TokenCount, len(doc.Tokens()))
	}
	if md.SentenceCount != len(doc.Sentences()) {
		t.Errorf("sentence count %d != %d", md.SentenceCount, len(doc.Sentences()))
	}
	if md.EntityCount != len(doc.Entities()) {
		t.Errorf("entity count %d != %d", md.EntityCount, len(doc.Entities()))
	}
	if md.KeywordCount != len(doc.Keywords().Keywords) {
		t.Errorf("keyword count %d != %d", md.KeywordCount, len(doc.Keywords().Keywords))
	}
	if md.ProcessedAt.IsZero() {
		t.Error("ProcessedAt not set")
	}
}

func TestNewDocumentDisabledStages(t *testing.T) {
	text := "Dr. Smith loves the amazing product."
	doc, err := NewDocument(text,
		WithSegmentation(false),
		WithSentiment(false),
		WithKeywords(false),
		WithEntities(false),
	)
	if err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}

	if len(doc.Tokens()) == 0 {
		t.Error("tokenization always runs")
	}
	if len(doc.Sentences()) != 0 || doc.Metadata.SentenceCount != 0 {
		t.Error("segmentation should be skipped")
	}
	if doc.Sentiment().Overall != 0 {
		t.Error("sentiment should be skipped")
	}
	if len(doc.Keywords().Keywords) != 0 || doc.Metadata.KeywordCount != 0 {
		t.Error("keyword extraction should be skipped")
	}
	if len(doc.Entities()) != 0 || doc.Metadata.EntityCount != 0 {
		t.Error("entity recognition should be skipped")
	}
}

func TestNewDocumentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDocument("Some text.", WithContext(ctx))
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewDocumentSharedEngines(t *testing.T) {
	tok := NewTokenizer()
	sa := NewSentimentAnalyzer(UsingSentimentTokenizer(tok))
	ke := NewKeywordExtractor(UsingExtractorTokenizer(tok))

	doc, err := NewDocument("The wonderful library performed admirably.",
		UsingDocTokenizer(tok),
		UsingAnalyzer(sa),
		UsingExtractor(ke),
	)
	if err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}
	if doc.Sentiment().Overall <= 0 {
		t.Errorf("expected positive sentiment, got %.3f", doc.Sentiment().Overall)
	}
}

func TestNewDocumentInvalidUTF8(t *testing.T) {
	_, err := NewDocument("broken \xff\xfe input")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNewDocumentEmpty(t *testing.T) {
	doc, err := NewDocument("")
	if err != nil {
		t.Fatalf("NewDocument failed on empty input: %v", err)
	}
	if len(doc.Tokens()) != 0 || len(doc.Sentences()) != 0 || len(doc.Entities()) != 0 {
		t.Errorf("empty input should produce empty results: %+v", doc.Metadata)
	}
}
