package textpulse

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestAnalyzePolarity(t *testing.T) {
	tests := []struct {
		text     string
		positive bool
		desc     string
	}{
		{"This is absolutely amazing and wonderful!", true, "Intensified positive"},
		{"I love this product.", true, "Simple positive"},
		{"The service was terrible and disappointing.", false, "Strong negative"},
		{"I hate waiting in useless queues.", false, "Multiple negatives"},
		{"What a fantastic, brilliant performance!", true, "Stacked positives"},
	}

	sa := NewSentimentAnalyzer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score := sa.Analyze(tt.text)
			if tt.positive && score.Overall <= 0 {
				t.Errorf("%q: expected positive overall, got %.3f", tt.text, score.Overall)
			}
			if !tt.positive && score.Overall >= 0 {
				t.Errorf("%q: expected negative overall, got %.3f", tt.text, score.Overall)
			}
			if score.Overall < -1 || score.Overall > 1 {
				t.Errorf("%q: overall %.3f outside [-1,1]", tt.text, score.Overall)
			}
		})
	}
}

func TestAnalyzeNeutral(t *testing.T) {
	sa := NewSentimentAnalyzer()

	for _, text := range []string{"", "The table has four legs.", "   "} {
		score := sa.Analyze(text)
		if score.Overall != 0 || score.Neutral != 1 || score.Confidence != 0.5 {
			t.Errorf("%q: expected neutral {0, neutral:1, conf:0.5}, got %+v", text, score)
		}
	}
}

func TestNegationHandling(t *testing.T) {
	pairs := []struct {
		plain   string
		negated string
		desc    string
	}{
		{"This is good.", "This is not good.", "Simple negation"},
		{"I like it.", "I don't like it.", "Contraction negation"},
		{"The food is excellent.", "The food is never excellent.", "Never negation"},
		{"This is a very good movie.", "This is not a very good movie.", "Third word in window"},
	}

	sa := NewSentimentAnalyzer()
	for _, pair := range pairs {
		t.Run(pair.desc, func(t *testing.T) {
			plain := sa.Analyze(pair.plain)
			negated := sa.Analyze(pair.negated)

			if plain.Overall <= 0 {
				t.Fatalf("%q should score positive, got %.3f", pair.plain, plain.Overall)
			}
			if negated.Overall >= 0 {
				t.Errorf("%q should score negative, got %.3f", pair.negated, negated.Overall)
			}
			// Dampened flip, not a mirror image.
			if math.Abs(negated.Overall) >= plain.Overall {
				t.Errorf("negated magnitude %.3f should be below plain %.3f",
					math.Abs(negated.Overall), plain.Overall)
			}
		})
	}
}

func TestAnalyzeLongSharedPrefix(t *testing.T) {
	prefix := "The committee reviewed the quarterly report and the accompanying " +
		"appendix before the meeting adjourned on Thursday afternoon. "
	sa := NewSentimentAnalyzer()

	pos := sa.Analyze(prefix + "The results were amazing and wonderful.")
	neg := sa.Analyze(prefix + "The results were terrible, awful, and disappointing.")

	if pos.Overall <= 0 {
		t.Errorf("positive text scored %.3f", pos.Overall)
	}
	if neg.Overall >= 0 {
		t.Errorf("negative text scored %.3f; a shared prefix must not alias cache entries", neg.Overall)
	}
}

func TestModifierEffects(t *testing.T) {
	sa := NewSentimentAnalyzer()

	base := sa.Analyze("This is good.")
	intensified := sa.Analyze("This is very good.")
	diminished := sa.Analyze("This is slightly good.")
	strong := sa.Analyze("This is extremely good.")

	if intensified.Overall <= base.Overall {
		t.Errorf("intensifier failed: base=%.3f, very=%.3f", base.Overall, intensified.Overall)
	}
	if strong.Overall <= intensified.Overall {
		t.Errorf("strong intensifier failed: very=%.3f, extremely=%.3f",
			intensified.Overall, strong.Overall)
	}
	if diminished.Overall >= base.Overall {
		t.Errorf("diminisher failed: base=%.3f, slightly=%.3f", base.Overall, diminished.Overall)
	}
	if diminished.Overall <= 0 {
		t.Errorf("diminished positive should stay positive, got %.3f", diminished.Overall)
	}
}

func TestAnalyzeEmotions(t *testing.T) {
	sa := NewSentimentAnalyzer()

	analysis := sa.AnalyzeEmotions("I love this amazing, wonderful gift. Pure joy!")
	if analysis.Primary != Joy {
		t.Errorf("expected primary emotion joy, got %q", analysis.Primary)
	}
	if analysis.Emotions[Joy] != 1 {
		t.Errorf("primary emotion should normalize to 1, got %.3f", analysis.Emotions[Joy])
	}
	if analysis.Secondary == "" || analysis.Secondary == analysis.Primary {
		t.Errorf("expected distinct secondary emotion, got %q", analysis.Secondary)
	}
	for e, v := range analysis.Emotions {
		if v < 0 || v > 1 {
			t.Errorf("emotion %s score %.3f outside [0,1]", e, v)
		}
	}
	if analysis.Intensity <= 0 || analysis.Intensity > 1 {
		t.Errorf("intensity %.3f outside (0,1]", analysis.Intensity)
	}

	empty := sa.AnalyzeEmotions("The chair is next to the table.")
	if empty.Primary != "" || len(empty.Emotions) != 0 {
		t.Errorf("emotionless text should yield empty analysis, got %+v", empty)
	}
}

func TestTrendAndShifts(t *testing.T) {
	sa := NewSentimentAnalyzer()
	sentences := []string{
		"This is wonderful and amazing.",
		"Everything is terrible and awful now.",
		"Things are terrible still.",
	}

	trend := sa.Trend(sentences)
	if len(trend) != 3 {
		t.Fatalf("expected 3 trend points, got %d", len(trend))
	}
	if trend[0] <= 0 || trend[1] >= 0 {
		t.Errorf("trend direction wrong: %v", trend)
	}

	shifts := sa.DetectShifts(sentences)
	if len(shifts) != 1 {
		t.Fatalf("expected exactly 1 shift, got %d: %v", len(shifts), shifts)
	}
	if shifts[0].Index != 1 || shifts[0].Delta >= 0 {
		t.Errorf("expected negative shift at index 1, got %+v", shifts[0])
	}
}

func TestAspectSentiment(t *testing.T) {
	sa := NewSentimentAnalyzer()
	text := "The battery is amazing but the screen is terrible."

	battery := sa.AspectSentiment(text, "battery")
	if battery.Overall <= 0 {
		t.Errorf("battery aspect should be positive, got %.3f", battery.Overall)
	}

	screen := sa.AspectSentiment(text, "screen")
	if screen.Overall >= 0 {
		t.Errorf("screen aspect should be negative, got %.3f", screen.Overall)
	}

	missing := sa.AspectSentiment(text, "keyboard")
	if missing.Overall != 0 || missing.Neutral != 1 {
		t.Errorf("absent aspect should be neutral, got %+v", missing)
	}
}

func TestLexiconMergeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := []byte(`
words:
  - word: stellar
    score: 4.0
    intensity: 0.9
    emotions: [admiration]
negations:
  - nope
intensifiers:
  - word: massively
    factor: 1.9
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	lex := DefaultLexicon()
	if err := lex.MergeFile(path); err != nil {
		t.Fatalf("MergeFile failed: %v", err)
	}

	sa := NewSentimentAnalyzer(UsingLexicon(lex))
	score := sa.Analyze("The show was stellar.")
	if score.Overall <= 0 {
		t.Errorf("merged word should score positive, got %.3f", score.Overall)
	}

	boosted := sa.Analyze("The show was massively stellar.")
	if boosted.Overall <= score.Overall {
		t.Errorf("merged intensifier should boost: %.3f vs %.3f", boosted.Overall, score.Overall)
	}
}

func TestLexiconMergeFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := []byte(`
words:
  - word: broken
    score: 42.0
    intensity: 0.5
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	lex := DefaultLexicon()
	err := lex.MergeFile(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	if err := lex.MergeFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func BenchmarkAnalyze(b *testing.B) {
	texts := []string{
		"This product exceeded every expectation, absolutely wonderful.",
		"The customer service was terrible and the delivery failed twice.",
		"It arrived on a Tuesday in a cardboard box.",
	}
	sa := NewSentimentAnalyzer(UsingSentimentCache(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sa.Analyze(texts[i%len(texts)])
	}
}
