package model

import (
	"context"
	"hash/fnv"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

// MockConnector scores images deterministically from their content so
// the stack runs without the inference sidecar.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Predict(ctx context.Context, imageType entity.ImageType, filename string, image []byte) (float64, error) {
	h := fnv.New32a()
	h.Write([]byte(imageType))
	h.Write(image)
	probability := float64(h.Sum32()%1000) / 999.0

	ctxzap.Info(ctx, "[MOCK] inference completed",
		zap.String("image_type", string(imageType)),
		zap.Float64("probability", probability),
	)

	return probability, nil
}
