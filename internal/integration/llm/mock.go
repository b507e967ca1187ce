package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

const mockModelName = "mock-llm"

// MockConnector returns a canned reply so the chatbot runs without a
// provider key.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Complete(ctx context.Context, messages []entity.LLMMessage) (string, error) {
	ctxzap.Info(ctx, "[MOCK] chat completion", zap.Int("message_count", len(messages)))

	return "Diabetes mellitus adalah kondisi kronis di mana kadar gula darah terlalu tinggi. " +
		"Gejala umum meliputi sering buang air kecil, mudah haus, dan mudah lelah. " +
		"Silakan konsultasikan dengan dokter untuk diagnosis dan penanganan yang tepat. (MOCK)", nil
}

func (m *MockConnector) Model() string {
	return mockModelName
}
