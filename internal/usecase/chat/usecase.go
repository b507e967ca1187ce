// Package chat implements the Glucare conversation flow: topic
// gating, optional web search enrichment, and the provider call.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/integration/search"
	"github.com/glucoin/glucoin-ai/internal/pkg/validator"
)

// llmFailureResponse is shown to the user when the provider is down.
// The request itself still succeeds at the HTTP level.
const llmFailureResponse = "Maaf, layanan sedang mengalami kendala. Silakan coba lagi beberapa saat lagi. 🙏"

// ChatUsecase implements the chatbot business logic.
type ChatUsecase struct {
	llm       LLMConnector
	searcher  WebSearcher
	validator *validator.Validator
	topics    config.TopicCatalog
	logger    *zap.Logger
}

func NewUsecase(
	llm LLMConnector,
	searcher WebSearcher,
	validator *validator.Validator,
	topics config.TopicCatalog,
	logger *zap.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		llm:       llm,
		searcher:  searcher,
		validator: validator,
		topics:    topics,
		logger:    logger,
	}
}

// Chat answers one message. Off-topic messages are answered with the
// canned refusal without calling the model. A provider outage yields
// success=false with an apology, never a transport error.
func (uc *ChatUsecase) Chat(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	start := time.Now()

	if err := uc.validator.ValidateChat(req); err != nil {
		return nil, err
	}

	if req.SessionID != "" {
		ctxzap.AddFields(ctx, zap.String("session_id", req.SessionID))
	}

	if !IsDiabetesRelated(req.Message) {
		ctxzap.Info(ctx, "message rejected by topic gate")
		return &entity.ChatResponse{
			Success:           true,
			Response:          offTopicResponse,
			IsDiabetesRelated: false,
			WebsearchUsed:     false,
			Sources:           []entity.ChatSource{},
			ResponseTimeMs:    time.Since(start).Milliseconds(),
			Model:             uc.llm.Model(),
		}, nil
	}

	var (
		searchContext string
		sources       = []entity.ChatSource{}
		websearchUsed bool
	)

	if req.UseWebsearch {
		results, err := uc.searcher.Search(ctx, req.Message, true)
		if err != nil {
			// Search is an enrichment; the chat proceeds without it.
			ctxzap.Warn(ctx, "web search failed, answering without context", zap.Error(err))
		} else if len(results) > 0 {
			websearchUsed = true
			searchContext = search.FormatResultsForLLM(results)
			for _, r := range results {
				sources = append(sources, entity.ChatSource{
					Title:  r.Title,
					URL:    r.URL,
					Source: r.Source,
				})
			}
		}
	}

	reply, err := uc.llm.Complete(ctx, buildMessages(req.Message, searchContext))
	if err != nil {
		if !errors.Is(err, entity.ErrLLMUnavailable) {
			return nil, err
		}
		ctxzap.Error(ctx, "llm provider unavailable", zap.Error(err))
		return &entity.ChatResponse{
			Success:           false,
			Response:          llmFailureResponse,
			IsDiabetesRelated: true,
			WebsearchUsed:     websearchUsed,
			Sources:           sources,
			ResponseTimeMs:    time.Since(start).Milliseconds(),
			Model:             uc.llm.Model(),
		}, nil
	}

	ctxzap.Info(ctx, "chat answered",
		zap.Bool("websearch_used", websearchUsed),
		zap.Int("source_count", len(sources)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &entity.ChatResponse{
		Success:           true,
		Response:          reply,
		IsDiabetesRelated: true,
		WebsearchUsed:     websearchUsed,
		Sources:           sources,
		ResponseTimeMs:    time.Since(start).Milliseconds(),
		Model:             uc.llm.Model(),
	}, nil
}

// ChatWithWebsearch forces search enrichment regardless of the flag.
func (uc *ChatUsecase) ChatWithWebsearch(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	forced := *req
	forced.UseWebsearch = true
	return uc.Chat(ctx, &forced)
}

// Topics returns the static topic catalog.
func (uc *ChatUsecase) Topics(ctx context.Context) *entity.TopicsResponse {
	return &entity.TopicsResponse{
		SupportedTopics: uc.topics.SupportedTopics,
		SampleQuestions: uc.topics.SampleQuestions,
	}
}

// Search exposes the web search directly, without the model. Results
// carry snippets only; page text is fetched for LLM prompts alone.
func (uc *ChatUsecase) Search(ctx context.Context, query string) (*entity.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query", entity.ErrMissingField)
	}

	results, err := uc.searcher.Search(ctx, query, false)
	if err != nil {
		return nil, err
	}

	return &entity.SearchResponse{
		Query:   query,
		Results: results,
	}, nil
}

func buildMessages(message, searchContext string) []entity.LLMMessage {
	messages := []entity.LLMMessage{
		{Role: entity.LLMRoleSystem, Content: systemPrompt},
	}

	if searchContext != "" {
		messages = append(messages, entity.LLMMessage{
			Role:    entity.LLMRoleSystem,
			Content: searchContextPrefix + searchContext,
		})
	}

	return append(messages, entity.LLMMessage{Role: entity.LLMRoleUser, Content: message})
}
