package textpulse

import "testing"

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
		desc  string
	}{
		{
			"<html><head><title>Page</title><script>var x=1;</script></head>" +
				"<body><p>Hello <b>world</b>.</p></body></html>",
			"Hello world .",
			"Scripts and title dropped",
		},
		{
			"<div>  spaced   <span>out</span>\n\ttext </div>",
			"spaced out text",
			"Whitespace collapsed",
		},
		{
			"<p>Hello &amp; goodbye</p>",
			"Hello & goodbye",
			"Entities decoded",
		},
		{
			"plain text without markup",
			"plain text without markup",
			"Plain text passes through",
		},
		{
			"<style>body{color:red}</style><noscript>enable js</noscript>",
			"",
			"Only excluded elements",
		},
		{
			"",
			"",
			"Empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := CleanHTML(tt.input); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanHTMLFeedsPipeline(t *testing.T) {
	page := "<html><body><h1>Review</h1><p>This product is absolutely wonderful.</p></body></html>"
	text := CleanHTML(page)

	doc, err := NewDocument(text, WithKeywords(false), WithEntities(false))
	if err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}
	if doc.Sentiment().Overall <= 0 {
		t.Errorf("expected positive sentiment from cleaned page, got %.3f", doc.Sentiment().Overall)
	}
}
