package textpulse

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanHTML extracts plain text from an HTML document, dropping script,
// style, and noscript content. The result has runs of whitespace collapsed to
// single spaces, ready for the analysis engines. Invalid markup falls back to
// the parser's best-effort tree, so the function never fails; an empty string
// means no text content was found.
func CleanHTML(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "title":
				return
			}
		}
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				text.WriteString(trimmed)
				text.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	return strings.Join(strings.Fields(text.String()), " ")
}
