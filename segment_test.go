package textpulse

import (
	"strings"
	"testing"
)

func TestSplitBasic(t *testing.T) {
	tests := []struct {
		text  string
		count int
		desc  string
	}{
		{"This is one sentence.", 1, "Single sentence"},
		{"First sentence. Second sentence.", 2, "Two sentences"},
		{"Dr. Smith met Mrs. Jones. They left.", 2, "Title abbreviations"},
		{"The price rose 3.5 percent. Analysts cheered.", 2, "Decimal number"},
		{"Wait... what happened?", 1, "Ellipsis continues"},
		{"Visit https://example.com today. It works.", 2, "URL protected"},
		{"She works at Acme Inc. in Boston.", 1, "Abbreviation before lowercase"},
		{"She works at Acme Inc. The office is downtown.", 2, "Abbreviation before capital"},
		{"J. K. Rowling wrote the books.", 1, "Initials"},
		{"No terminal punctuation", 1, "Missing terminator"},
		{"", 0, "Empty input"},
		{"   \n  ", 0, "Whitespace only"},
	}

	sp := NewSentenceSplitter()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			sentences := sp.Split(tt.text)
			if len(sentences) != tt.count {
				texts := make([]string, len(sentences))
				for i, s := range sentences {
					texts[i] = s.Text
				}
				t.Errorf("expected %d sentences, got %d: %q", tt.count, len(sentences), texts)
			}
		})
	}
}

func TestSplitOffsets(t *testing.T) {
	text := "The morning was calm. Then the storm arrived! Did anyone notice? Nobody did."
	sp := NewSentenceSplitter()
	sentences := sp.Split(text)

	if len(sentences) != 4 {
		t.Fatalf("expected 4 sentences, got %d", len(sentences))
	}

	prevEnd := 0
	for i, s := range sentences {
		if text[s.Start:s.End] != s.Text {
			t.Errorf("sentence %d: span [%d:%d] yields %q, want %q",
				i, s.Start, s.End, text[s.Start:s.End], s.Text)
		}
		if s.Start < prevEnd {
			t.Errorf("sentence %d overlaps previous (start %d < end %d)", i, s.Start, prevEnd)
		}
		// Gaps between sentences hold only whitespace.
		if strings.TrimSpace(text[prevEnd:s.Start]) != "" {
			t.Errorf("non-whitespace gap before sentence %d: %q", i, text[prevEnd:s.Start])
		}
		prevEnd = s.End
	}
}

func TestSplitTokenViews(t *testing.T) {
	text := "Cats sleep all day. Dogs bark at night."
	sp := NewSentenceSplitter()
	sentences := sp.Split(text)

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	for i, s := range sentences {
		if len(s.Tokens) == 0 {
			t.Fatalf("sentence %d has no tokens", i)
		}
		for _, tk := range s.Tokens {
			if tk.Start < s.Start || tk.End > s.End {
				t.Errorf("sentence %d: token %q span [%d:%d] outside sentence span [%d:%d]",
					i, tk.Text, tk.Start, tk.End, s.Start, s.End)
			}
		}
	}
	if first := sentences[0].Tokens[0].Text; first != "Cats" {
		t.Errorf("first token of first sentence: expected \"Cats\", got %q", first)
	}
	if first := sentences[1].Tokens[0].Text; first != "Dogs" {
		t.Errorf("first token of second sentence: expected \"Dogs\", got %q", first)
	}
}

func TestSentenceTypes(t *testing.T) {
	tests := []struct {
		text string
		want SentenceType
		desc string
	}{
		{"The weather is nice.", Declarative, "Plain statement"},
		{"Are you sure?", Interrogative, "Question"},
		{"What a goal!", Exclamatory, "Exclamation"},
		{"Stop right there.", Imperative, "Leading bare verb"},
		{"Listen to this carefully.", Imperative, "Imperative with adverb"},
		{"He said \"stop\"?", Interrogative, "Question after quote"},
	}

	sp := NewSentenceSplitter()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			sentences := sp.Split(tt.text)
			if len(sentences) != 1 {
				t.Fatalf("expected 1 sentence, got %d", len(sentences))
			}
			if sentences[0].Type != tt.want {
				t.Errorf("%q: expected type %s, got %s", tt.text, tt.want, sentences[0].Type)
			}
		})
	}
}

func TestComplexityOrdering(t *testing.T) {
	sp := NewSentenceSplitter()

	simple := sp.Split("The cat sat.")
	complex := sp.Split("Although the committee deliberated extensively because the extraordinary circumstances demanded thoroughness, the participants remained unconvinced.")

	if len(simple) != 1 || len(complex) != 1 {
		t.Fatalf("expected single sentences, got %d and %d", len(simple), len(complex))
	}
	if simple[0].Complexity >= complex[0].Complexity {
		t.Errorf("simple sentence complexity %.1f should be below complex %.1f",
			simple[0].Complexity, complex[0].Complexity)
	}
	for _, s := range []Sentence{simple[0], complex[0]} {
		if s.Complexity < 0 || s.Complexity > 100 {
			t.Errorf("complexity %.1f outside [0,100]", s.Complexity)
		}
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"beautiful", 3},
		{"the", 1},
		{"idea", 2},
		{"strength", 1},
	}
	for _, tt := range tests {
		if got := countSyllables(tt.word); got != tt.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "The report covers three quarters.\n\nRevenue grew steadily. Costs stayed flat."
	sp := NewSentenceSplitter()
	sentences := sp.Split(text)

	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences across paragraphs, got %d", len(sentences))
	}
	for i, s := range sentences {
		if strings.TrimSpace(s.Text) == "" {
			t.Errorf("sentence %d is blank", i)
		}
	}
}

func BenchmarkSplit(b *testing.B) {
	text := strings.Repeat("Dr. Smith reviewed the findings. The results looked promising! Were they conclusive? ", 10)
	sp := NewSentenceSplitter(UsingSplitterCache(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sp.Split(text)
	}
}
