package textpulse

import (
	"strings"
	"testing"
)

const keywordFixture = "Machine learning transforms modern software. " +
	"Machine learning models need quality data. " +
	"Neural networks drive machine learning research. " +
	"Quality data improves neural networks. " +
	"Researchers train neural networks with quality data."

func TestExtractKeywords(t *testing.T) {
	ke := NewKeywordExtractor()
	result := ke.Extract(keywordFixture, nil)

	if len(result.Keywords) == 0 {
		t.Fatal("expected keywords, got none")
	}

	stops := extendedStopWords()
	for i, kw := range result.Keywords {
		if kw.Keyword == "" {
			t.Errorf("keyword %d is empty", i)
		}
		if kw.Score <= 0 {
			t.Errorf("keyword %q has non-positive score %.3f", kw.Keyword, kw.Score)
		}
		if kw.Frequency < 1 {
			t.Errorf("keyword %q has frequency %d", kw.Keyword, kw.Frequency)
		}
		if len(kw.Methods) == 0 {
			t.Errorf("keyword %q has no provenance methods", kw.Keyword)
		}
		if i > 0 && result.Keywords[i-1].Score < kw.Score {
			t.Errorf("keywords not sorted: %q (%.3f) after %q (%.3f)",
				kw.Keyword, kw.Score, result.Keywords[i-1].Keyword, result.Keywords[i-1].Score)
		}
		for _, w := range strings.Fields(kw.Keyword) {
			if stops[w] {
				t.Errorf("keyword %q contains stop word %q", kw.Keyword, w)
			}
		}
	}
}

func TestExtractKeyphrases(t *testing.T) {
	ke := NewKeywordExtractor()
	result := ke.Extract(keywordFixture, nil)

	if len(result.Keyphrases) == 0 {
		t.Fatal("expected keyphrases from repeated bigrams")
	}

	found := false
	for _, kp := range result.Keyphrases {
		if len(kp.Words) < 2 {
			t.Errorf("keyphrase %q has %d words, want >= 2", kp.Phrase, len(kp.Words))
		}
		if kp.Phrase != strings.Join(kp.Words, " ") {
			t.Errorf("keyphrase text %q does not match words %v", kp.Phrase, kp.Words)
		}
		if kp.Phrase == "machine learning" || kp.Phrase == "neural networks" {
			found = true
		}
	}
	if !found {
		t.Error("expected a dominant repeated bigram among keyphrases")
	}
}

func TestExtractTopics(t *testing.T) {
	ke := NewKeywordExtractor()
	result := ke.Extract(keywordFixture, nil)

	if len(result.Topics) == 0 || len(result.Topics) > clusterMaxK {
		t.Fatalf("expected 1..%d topics, got %d", clusterMaxK, len(result.Topics))
	}
	for i, topic := range result.Topics {
		if topic.ID == "" || topic.Name == "" {
			t.Errorf("topic %d missing ID or name: %+v", i, topic)
		}
		if len(topic.Keywords) == 0 {
			t.Errorf("topic %d has no keywords", i)
		}
		if topic.Relevance < 0 || topic.Relevance > 1 {
			t.Errorf("topic %d relevance %.3f outside [0,1]", i, topic.Relevance)
		}
		if topic.DocumentCount < 1 {
			t.Errorf("topic %d document count %d", i, topic.DocumentCount)
		}
		if i > 0 && result.Topics[i-1].Relevance < topic.Relevance {
			t.Errorf("topics not sorted by relevance at %d", i)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	first := NewKeywordExtractor().Extract(keywordFixture, nil)
	second := NewKeywordExtractor().Extract(keywordFixture, nil)

	if len(first.Keywords) != len(second.Keywords) {
		t.Fatalf("keyword counts differ: %d vs %d", len(first.Keywords), len(second.Keywords))
	}
	for i := range first.Keywords {
		a, b := first.Keywords[i], second.Keywords[i]
		if a.Keyword != b.Keyword || a.Score != b.Score || a.Frequency != b.Frequency {
			t.Errorf("keyword %d differs: %+v vs %+v", i, a, b)
		}
	}

	if len(first.Topics) != len(second.Topics) {
		t.Fatalf("topic counts differ: %d vs %d", len(first.Topics), len(second.Topics))
	}
	for i := range first.Topics {
		a, b := first.Topics[i], second.Topics[i]
		// ULIDs differ per run; membership and relevance must not.
		if a.Name != b.Name || a.Relevance != b.Relevance || len(a.Keywords) != len(b.Keywords) {
			t.Errorf("topic %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestExtractLimit(t *testing.T) {
	ke := NewKeywordExtractor(UsingKeywordLimit(3))
	result := ke.Extract(keywordFixture, nil)
	if len(result.Keywords) > 3 {
		t.Errorf("expected at most 3 keywords, got %d", len(result.Keywords))
	}
}

func TestExtractEmpty(t *testing.T) {
	ke := NewKeywordExtractor()
	for _, text := range []string{"", "   ", "the and of"} {
		result := ke.Extract(text, nil)
		if len(result.Keywords) != 0 || len(result.Keyphrases) != 0 || len(result.Topics) != 0 {
			t.Errorf("%q: expected empty result, got %+v", text, result)
		}
	}
}

func TestExtractWithCorpus(t *testing.T) {
	corpus := []string{
		"Quality data matters in every software project.",
		"Modern software ships quality data pipelines.",
		"Software engineering is a broad discipline.",
	}

	ke := NewKeywordExtractor()
	result := ke.Extract(keywordFixture, corpus)

	if len(result.Keywords) == 0 {
		t.Fatal("expected keywords with corpus supplied")
	}

	// "software" appears in every corpus document, so corpus IDF should rank
	// it below a term the corpus never mentions.
	rank := func(word string) int {
		for i, kw := range result.Keywords {
			if kw.Keyword == word {
				return i
			}
		}
		return len(result.Keywords)
	}
	if rank("networks") > rank("software") {
		t.Errorf("corpus-common term ranked above corpus-rare term: networks=%d software=%d",
			rank("networks"), rank("software"))
	}
}

func TestExtractStatistics(t *testing.T) {
	ke := NewKeywordExtractor()
	stats := ke.Extract(keywordFixture, nil).Statistics

	if stats.TotalWords == 0 || stats.UniqueWords == 0 {
		t.Fatalf("expected word counts, got %+v", stats)
	}
	if stats.UniqueWords > stats.TotalWords {
		t.Errorf("unique %d exceeds total %d", stats.UniqueWords, stats.TotalWords)
	}
	if stats.LexicalDiversity <= 0 || stats.LexicalDiversity > 1 {
		t.Errorf("lexical diversity %.3f outside (0,1]", stats.LexicalDiversity)
	}
	if stats.Coverage < 0 || stats.Coverage > 1 {
		t.Errorf("coverage %.3f outside [0,1]", stats.Coverage)
	}
	if stats.KeywordDensity <= 0 {
		t.Errorf("keyword density %.3f should be positive", stats.KeywordDensity)
	}
	if stats.ScoreMean <= 0 || stats.ScoreStdDev < 0 {
		t.Errorf("score moments look wrong: mean=%.3f stddev=%.3f", stats.ScoreMean, stats.ScoreStdDev)
	}
}

func TestScoreTextRank(t *testing.T) {
	words := []string{"alpha", "beta", "alpha", "gamma", "alpha", "beta"}
	scores := scoreTextRank(words)

	if len(scores) != 3 {
		t.Fatalf("expected 3 scored words, got %d", len(scores))
	}
	// "alpha" has the densest co-occurrence neighborhood.
	if scores["alpha"] <= scores["gamma"] {
		t.Errorf("alpha (%.4f) should outrank gamma (%.4f)", scores["alpha"], scores["gamma"])
	}
	for w, s := range scores {
		if s <= 0 {
			t.Errorf("word %q has non-positive rank %.4f", w, s)
		}
	}
}

func TestMineNgrams(t *testing.T) {
	tok := NewTokenizer()
	tokens := tok.Tokenize("deep learning wins. deep learning scales. shallow parsing stalls.")

	grams := mineNgrams(tokens)
	var texts []string
	for _, g := range grams {
		texts = append(texts, g.text)
	}

	found := false
	for _, g := range grams {
		if g.text == "deep learning" {
			found = true
			if g.count != 2 {
				t.Errorf("deep learning count = %d, want 2", g.count)
			}
			if g.score != float64(g.count*len(g.words)) {
				t.Errorf("score %.1f != count*len", g.score)
			}
		}
	}
	if !found {
		t.Fatalf("expected \"deep learning\" among n-grams, got %v", texts)
	}
	for _, g := range grams {
		if g.count < ngramMinCount {
			t.Errorf("n-gram %q below minimum count: %d", g.text, g.count)
		}
	}
}

func BenchmarkExtract(b *testing.B) {
	ke := NewKeywordExtractor(UsingExtractorCache(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ke.Extract(keywordFixture, nil)
	}
}
