// Package detect implements the screening flows: image plausibility
// checks plus external inference, questionnaire scoring, and the
// weighted combination of both.
package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/imagecheck"
	"github.com/glucoin/glucoin-ai/internal/pkg/validator"
	"github.com/glucoin/glucoin-ai/internal/scoring"
)

// DetectUsecase implements the detection business logic.
type DetectUsecase struct {
	model     ModelConnector
	validator *validator.Validator
	threshold float64
	logger    *zap.Logger
}

func NewUsecase(
	model ModelConnector,
	validator *validator.Validator,
	threshold float64,
	logger *zap.Logger,
) *DetectUsecase {
	return &DetectUsecase{
		model:     model,
		validator: validator,
		threshold: threshold,
		logger:    logger,
	}
}

// DetectImage scores a single tongue or nail photo. Uploads that fail
// the local plausibility check never reach the inference service.
func (uc *DetectUsecase) DetectImage(
	ctx context.Context,
	imageType entity.ImageType,
	header *multipart.FileHeader,
) (*entity.ImageDetectionResult, error) {
	if !imageType.IsValid() {
		return nil, fmt.Errorf("%w: image_type must be 'tongue' or 'nail'", entity.ErrInvalidParameter)
	}

	if err := uc.validator.ValidateImageUpload(header); err != nil {
		return nil, err
	}

	upload, err := readUploadedImage(header)
	if err != nil {
		return nil, err
	}

	check := imagecheck.Check(upload.decoded, imageType)
	if !check.Valid {
		ctxzap.Info(ctx, "image rejected by plausibility check",
			zap.String("image_type", string(imageType)),
			zap.Float64("confidence", check.Confidence),
		)
		return &entity.ImageDetectionResult{
			Success:              false,
			IsValidImage:         false,
			ImageType:            string(imageType),
			ValidationConfidence: ptr(check.Confidence),
			Message: fmt.Sprintf("❌ Gambar tidak valid. %s. Silakan upload gambar %s yang jelas.",
				check.Message, imageType.Indonesian()),
		}, nil
	}

	probability, err := uc.model.Predict(ctx, imageType, upload.filename, upload.raw)
	if err != nil {
		return nil, err
	}

	result := &entity.ImageDetectionResult{
		Success:              true,
		IsValidImage:         true,
		ImageType:            string(imageType),
		ValidationConfidence: ptr(check.Confidence),
		Probability:          ptr(probability),
		Prediction:           ptr(uc.predict(probability)),
		RiskLevel:            ptr(scoring.RiskLevel(probability)),
		Message: fmt.Sprintf("✅ Analisis gambar %s selesai. Probabilitas diabetes: %.1f%%",
			imageType.Indonesian(), probability*100),
	}

	ctxzap.Info(ctx, "image detection completed",
		zap.String("image_type", string(imageType)),
		zap.Float64("probability", probability),
		zap.String("risk_level", *result.RiskLevel),
	)

	return result, nil
}

// DetectDualImage scores a tongue and a nail photo together. The
// combined probability is the mean of the valid scores and is null
// only when both images fail validation.
func (uc *DetectUsecase) DetectDualImage(
	ctx context.Context,
	tongueHeader *multipart.FileHeader,
	nailHeader *multipart.FileHeader,
) (*entity.DualImageDetectionResult, error) {
	tongue, err := uc.DetectImage(ctx, entity.ImageTypeTongue, tongueHeader)
	if err != nil {
		return nil, err
	}

	nail, err := uc.DetectImage(ctx, entity.ImageTypeNail, nailHeader)
	if err != nil {
		return nil, err
	}

	result := &entity.DualImageDetectionResult{
		TongueValid:                tongue.IsValidImage,
		TongueProbability:          tongue.Probability,
		TongueValidationConfidence: tongue.ValidationConfidence,
		NailValid:                  nail.IsValidImage,
		NailProbability:            nail.Probability,
		NailValidationConfidence:   nail.ValidationConfidence,
	}

	var sum float64
	var valid int
	if tongue.IsValidImage {
		sum += *tongue.Probability
		valid++
	}
	if nail.IsValidImage {
		sum += *nail.Probability
		valid++
	}

	if valid == 0 {
		result.Success = false
		result.Message = fmt.Sprintf("❌ Kedua gambar tidak valid. Lidah: %s Kuku: %s",
			tongue.Message, nail.Message)
		return result, nil
	}

	combined := sum / float64(valid)
	result.Success = true
	result.CombinedProbability = ptr(combined)
	result.Prediction = ptr(uc.predict(combined))
	result.RiskLevel = ptr(scoring.RiskLevel(combined))
	result.Message = fmt.Sprintf("✅ Analisis selesai (%d dari 2 gambar valid). Probabilitas diabetes: %.1f%%",
		valid, combined*100)

	ctxzap.Info(ctx, "dual image detection completed",
		zap.Int("valid_images", valid),
		zap.Float64("combined_probability", combined),
	)

	return result, nil
}

// ScoreNonDiabetic evaluates the screening questionnaire.
func (uc *DetectUsecase) ScoreNonDiabetic(
	ctx context.Context,
	q *entity.NonDiabeticQuestionnaire,
) (*entity.QuestionnaireResult, error) {
	if err := uc.validator.ValidateNonDiabetic(q); err != nil {
		return nil, err
	}

	return uc.questionnaireResult(ctx, scoring.NonDiabeticScore(q), false), nil
}

// ScoreDiabetic evaluates the monitoring questionnaire.
func (uc *DetectUsecase) ScoreDiabetic(
	ctx context.Context,
	q *entity.DiabeticQuestionnaire,
) (*entity.QuestionnaireResult, error) {
	if err := uc.validator.ValidateDiabetic(q); err != nil {
		return nil, err
	}

	return uc.questionnaireResult(ctx, scoring.DiabeticScore(q), true), nil
}

func (uc *DetectUsecase) questionnaireResult(ctx context.Context, score float64, isDiabetic bool) *entity.QuestionnaireResult {
	riskLevel := scoring.RiskLevel(score)

	ctxzap.Info(ctx, "questionnaire scored",
		zap.Bool("is_diabetic", isDiabetic),
		zap.Float64("score", score),
		zap.String("risk_level", riskLevel),
	)

	return &entity.QuestionnaireResult{
		Success:         true,
		Score:           score,
		RiskLevel:       riskLevel,
		Interpretation:  scoring.Interpretation(score, isDiabetic),
		Recommendations: scoring.Recommendations(score, isDiabetic),
	}
}

// Combine blends an optional image probability with the questionnaire
// score using fixed 70/30 weights.
func (uc *DetectUsecase) Combine(ctx context.Context, req *entity.CombinedRequest) (*entity.CombinedResult, error) {
	if err := uc.validator.ValidateCombined(req); err != nil {
		return nil, err
	}

	qScore, err := uc.scoreRawQuestionnaire(req)
	if err != nil {
		return nil, err
	}

	finalScore := scoring.CombineScores(req.ImageScore, qScore)

	ctxzap.Info(ctx, "combined detection completed",
		zap.Bool("is_diabetic", req.IsDiabetic),
		zap.Bool("has_image_score", req.ImageScore != nil),
		zap.Float64("final_score", finalScore),
	)

	return &entity.CombinedResult{
		Success:            true,
		ImageScore:         req.ImageScore,
		QuestionnaireScore: qScore,
		FinalScore:         finalScore,
		RiskLevel:          scoring.RiskLevel(finalScore),
		Interpretation:     scoring.Interpretation(finalScore, req.IsDiabetic),
		Recommendations:    scoring.Recommendations(finalScore, req.IsDiabetic),
	}, nil
}

// BuildReport runs the combined flow and packages the result for the
// report renderer.
func (uc *DetectUsecase) BuildReport(ctx context.Context, req *entity.CombinedRequest) (*entity.ScreeningReport, error) {
	combined, err := uc.Combine(ctx, req)
	if err != nil {
		return nil, err
	}

	return &entity.ScreeningReport{
		IsDiabetic:         req.IsDiabetic,
		ImageScore:         combined.ImageScore,
		QuestionnaireScore: combined.QuestionnaireScore,
		FinalScore:         combined.FinalScore,
		RiskLevel:          combined.RiskLevel,
		Interpretation:     combined.Interpretation,
		Recommendations:    combined.Recommendations,
	}, nil
}

func (uc *DetectUsecase) scoreRawQuestionnaire(req *entity.CombinedRequest) (float64, error) {
	if req.IsDiabetic {
		var q entity.DiabeticQuestionnaire
		if err := json.Unmarshal(req.Questionnaire, &q); err != nil {
			return 0, fmt.Errorf("%w: questionnaire: %v", entity.ErrInvalidFormat, err)
		}
		if err := uc.validator.ValidateDiabetic(&q); err != nil {
			return 0, err
		}
		return scoring.DiabeticScore(&q), nil
	}

	var q entity.NonDiabeticQuestionnaire
	if err := json.Unmarshal(req.Questionnaire, &q); err != nil {
		return 0, fmt.Errorf("%w: questionnaire: %v", entity.ErrInvalidFormat, err)
	}
	if err := uc.validator.ValidateNonDiabetic(&q); err != nil {
		return 0, err
	}
	return scoring.NonDiabeticScore(&q), nil
}

func (uc *DetectUsecase) predict(probability float64) string {
	if probability >= uc.threshold {
		return entity.PredictionDiabetes
	}
	return entity.PredictionNonDiabetes
}
