package search

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	pkghttp "github.com/glucoin/glucoin-ai/pkg/http"
)

const (
	maxContentLength = 2000
	minParagraphLen  = 50
)

var skippedTags = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"footer": true,
	"header": true,
	"aside":  true,
}

var contentTags = map[string]bool{
	"p":       true,
	"article": true,
	"main":    true,
}

// FetchPageContent downloads a result page and extracts its readable
// text: paragraphs and article/main bodies, minus navigation chrome.
// Errors are swallowed; enrichment is best effort.
func FetchPageContent(ctx context.Context, connector *pkghttp.Connector, pageURL string) string {
	body, err := connector.GetRaw(ctx, pageURL)
	if err != nil {
		return ""
	}
	return extractReadableText(body)
}

func extractReadableText(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skippedTags[n.Data] {
				return
			}
			if contentTags[n.Data] {
				if text := nodeText(n); len(text) > minParagraphLen {
					paragraphs = append(paragraphs, text)
				}
				// Children are already covered by nodeText.
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	content := strings.Join(paragraphs, "\n")
	if len(content) > maxContentLength {
		content = truncateUTF8(content, maxContentLength) + "..."
	}
	return content
}

// truncateUTF8 cuts s to at most limit bytes without splitting a rune.
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
