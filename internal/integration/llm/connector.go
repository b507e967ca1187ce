// Package llm talks to the chat-completions provider that generates
// the Glucare replies.
package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/integration/common"
	pkghttp "github.com/glucoin/glucoin-ai/pkg/http"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends the conversation to the provider and returns the
// generated text. Completions are not retried: the call is not
// idempotent from a latency budget point of view.
func (c *Connector) Complete(ctx context.Context, messages []entity.LLMMessage) (string, error) {
	ctxzap.Info(ctx, "requesting chat completion",
		zap.String("model", c.config.Model),
		zap.Int("message_count", len(messages)),
	)

	req := &entity.LLMChatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	}

	var resp entity.LLMChatResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatEndpoint, req, &resp)
	if err != nil {
		ctxzap.Error(ctx, "chat completion failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", entity.ErrLLMUnavailable, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", entity.ErrLLMUnavailable)
	}

	content := resp.Choices[0].Message.Content
	ctxzap.Info(ctx, "chat completion received", zap.Int("result_length", len(content)))

	return content, nil
}

// Model returns the provider model identifier echoed in responses.
func (c *Connector) Model() string {
	return c.config.Model
}
