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

const duckduckgoEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGoEngine scrapes the HTML endpoint, which needs no API key.
type DuckDuckGoEngine struct {
	connector *pkghttp.Connector
}

func NewDuckDuckGoEngine(connector *pkghttp.Connector) *DuckDuckGoEngine {
	return &DuckDuckGoEngine{connector: connector}
}

func (e *DuckDuckGoEngine) Name() string {
	return "duckduckgo"
}

func (e *DuckDuckGoEngine) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	searchURL := fmt.Sprintf("%s?q=%s", duckduckgoEndpoint, url.QueryEscape(query))

	body, err := e.connector.GetRaw(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request: %w", err)
	}

	results := parseDuckDuckGoHTML(body)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// parseDuckDuckGoHTML extracts title/url/snippet triples from the HTML
// results page. Result links carry class "result__a", snippets
// "result__snippet".
func parseDuckDuckGoHTML(body []byte) []entity.SearchResult {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var results []entity.SearchResult
	var current *entity.SearchResult

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			class := attrValue(n, "class")
			switch {
			case strings.Contains(class, "result__a"):
				if current != nil {
					results = append(results, *current)
				}
				link := resolveDuckDuckGoURL(attrValue(n, "href"))
				current = &entity.SearchResult{
					Title:  nodeText(n),
					URL:    link,
					Source: ExtractDomain(link),
				}
			case strings.Contains(class, "result__snippet"):
				if current != nil && current.Snippet == "" {
					current.Snippet = nodeText(n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if current != nil {
		results = append(results, *current)
	}

	return results
}

// resolveDuckDuckGoURL unwraps the /l/?uddg= redirect wrapper.
func resolveDuckDuckGoURL(href string) string {
	if href == "" {
		return ""
	}

	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}

	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}

	return href
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
