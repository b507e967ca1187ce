// Package model talks to the external inference service that scores
// tongue/nail images for diabetes probability.
package model

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/integration/common"
	pkgretry "github.com/glucoin/glucoin-ai/internal/pkg/retry"
	pkghttp "github.com/glucoin/glucoin-ai/pkg/http"
)

type predictResponse struct {
	Probability float64 `json:"probability"`
}

type Connector struct {
	config    config.ModelConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ModelConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Predict uploads the image and returns the diabetes probability.
// POST {predict_endpoint}?image_type={type} with multipart/form-data.
func (c *Connector) Predict(ctx context.Context, imageType entity.ImageType, filename string, image []byte) (float64, error) {
	endpoint := fmt.Sprintf("%s?image_type=%s", c.config.PredictEndpoint, imageType)

	ctxzap.Info(ctx, "requesting inference",
		zap.String("image_type", string(imageType)),
		zap.Int("size_bytes", len(image)),
	)

	prepareBody := func(writer *multipart.Writer) error {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := part.Write(image); err != nil {
			return fmt.Errorf("write file content: %w", err)
		}
		return nil
	}

	var resp predictResponse
	err := pkgretry.Do(ctx, &c.config.Retry, func() error {
		return c.connector.DoMultipartRequest(ctx, http.MethodPost, endpoint, prepareBody, &resp)
	})
	if err != nil {
		ctxzap.Error(ctx, "inference request failed", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", entity.ErrModelUnavailable, err)
	}

	if resp.Probability < 0 || resp.Probability > 1 {
		return 0, fmt.Errorf("inference service returned probability out of range: %v", resp.Probability)
	}

	ctxzap.Info(ctx, "inference completed", zap.Float64("probability", resp.Probability))

	return resp.Probability, nil
}
