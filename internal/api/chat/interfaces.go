package chat

import (
	"context"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

type ChatUsecase interface {
	Chat(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error)
	ChatWithWebsearch(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error)
	Topics(ctx context.Context) *entity.TopicsResponse
	Search(ctx context.Context, query string) (*entity.SearchResponse, error)
}
