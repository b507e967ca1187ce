// Package search queries public web search engines for fresh diabetes
// information and prepares the results for prompt enrichment.
package search

import (
	"context"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

// Engine is one upstream search provider.
type Engine interface {
	Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error)
	Name() string
}
