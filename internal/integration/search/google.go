package search

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/glucoin/glucoin-ai/internal/entity"
	pkghttp "github.com/glucoin/glucoin-ai/pkg/http"
)

const googleEndpoint = "https://www.google.com/search"

// GoogleEngine scrapes the public results page. Titles come from the
// h3 inside each result anchor; Google serves no usable snippet here.
type GoogleEngine struct {
	connector *pkghttp.Connector
}

func NewGoogleEngine(connector *pkghttp.Connector) *GoogleEngine {
	return &GoogleEngine{connector: connector}
}

func (e *GoogleEngine) Name() string {
	return "google"
}

func (e *GoogleEngine) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	searchURL := fmt.Sprintf("%s?q=%s&num=%d&hl=id", googleEndpoint, url.QueryEscape(query), maxResults)

	body, err := e.connector.GetRaw(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("google request: %w", err)
	}

	results := parseGoogleHTML(body)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// parseGoogleHTML extracts result links of the form /url?q=<target>.
func parseGoogleHTML(body []byte) []entity.SearchResult {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var results []entity.SearchResult
	seen := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attrValue(n, "href")
			if target := resolveGoogleURL(href); target != "" && !seen[target] {
				seen[target] = true
				results = append(results, entity.SearchResult{
					Title:  findHeadingText(n),
					URL:    target,
					Source: ExtractDomain(target),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return results
}

func resolveGoogleURL(href string) string {
	if !strings.HasPrefix(href, "/url?") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	target := parsed.Query().Get("q")
	if !strings.HasPrefix(target, "http") {
		return ""
	}

	return target
}

func findHeadingText(anchor *html.Node) string {
	var heading string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if heading != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "h3" {
			heading = nodeText(n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(anchor)
	return heading
}
