package chat

import (
	"context"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

type LLMConnector interface {
	Complete(ctx context.Context, messages []entity.LLMMessage) (string, error)
	Model() string
}

type WebSearcher interface {
	// Search looks the query up; fetchContent additionally downloads
	// page text for prompt enrichment.
	Search(ctx context.Context, query string, fetchContent bool) ([]entity.SearchResult, error)
}
