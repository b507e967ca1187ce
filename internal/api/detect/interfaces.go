package detect

import (
	"context"
	"mime/multipart"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

type DetectUsecase interface {
	DetectImage(ctx context.Context, imageType entity.ImageType, header *multipart.FileHeader) (*entity.ImageDetectionResult, error)
	DetectDualImage(ctx context.Context, tongueHeader, nailHeader *multipart.FileHeader) (*entity.DualImageDetectionResult, error)
	ScoreNonDiabetic(ctx context.Context, q *entity.NonDiabeticQuestionnaire) (*entity.QuestionnaireResult, error)
	ScoreDiabetic(ctx context.Context, q *entity.DiabeticQuestionnaire) (*entity.QuestionnaireResult, error)
	Combine(ctx context.Context, req *entity.CombinedRequest) (*entity.CombinedResult, error)
	BuildReport(ctx context.Context, req *entity.CombinedRequest) (*entity.ScreeningReport, error)
}
