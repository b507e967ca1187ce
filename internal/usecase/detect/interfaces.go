package detect

import (
	"context"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

type ModelConnector interface {
	Predict(ctx context.Context, imageType entity.ImageType, filename string, image []byte) (float64, error)
}
