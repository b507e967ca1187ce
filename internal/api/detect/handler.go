package detect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/pkg/formatter"
	"github.com/glucoin/glucoin-ai/internal/pkg/logger"
	"github.com/glucoin/glucoin-ai/internal/pkg/response"
)

type Handler struct {
	usecase       DetectUsecase
	formatters    *formatter.Factory
	maxUploadSize int64
}

func NewHandler(usecase DetectUsecase, formatters *formatter.Factory, maxUploadSize int64) *Handler {
	return &Handler{
		usecase:       usecase,
		formatters:    formatters,
		maxUploadSize: maxUploadSize,
	}
}

// DetectImage handles POST /detect/image
func (h *Handler) DetectImage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DetectImage")

	file, ok := h.parseSingleUpload(ctx, w, r, "file")
	if !ok {
		return
	}

	imageType := entity.ImageType(r.FormValue("image_type"))
	if imageType == "" {
		imageType = entity.ImageTypeTongue
	}

	result, err := h.usecase.DetectImage(ctx, imageType, file)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// DetectDualImage handles POST /detect/dual-image
func (h *Handler) DetectDualImage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DetectDualImage")

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	tongue := firstFile(r, "tongue")
	nail := firstFile(r, "nail")
	if tongue == nil || nail == nil {
		h.respondError(ctx, w, http.StatusBadRequest, "both 'tongue' and 'nail' images are required", nil)
		return
	}

	result, err := h.usecase.DetectDualImage(ctx, tongue, nail)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// QuestionnaireNonDiabetic handles POST /detect/questionnaire/non-diabetic
func (h *Handler) QuestionnaireNonDiabetic(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "QuestionnaireNonDiabetic")

	var q entity.NonDiabeticQuestionnaire
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	result, err := h.usecase.ScoreNonDiabetic(ctx, &q)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// QuestionnaireDiabetic handles POST /detect/questionnaire/diabetic
func (h *Handler) QuestionnaireDiabetic(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "QuestionnaireDiabetic")

	var q entity.DiabeticQuestionnaire
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	result, err := h.usecase.ScoreDiabetic(ctx, &q)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// DetectCombined handles POST /detect/combined
func (h *Handler) DetectCombined(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DetectCombined")

	var req entity.CombinedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	result, err := h.usecase.Combine(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// Report handles POST /detect/report?format={markdown|pdf|docx}
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Report")

	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}
	if !format.IsValid() {
		h.respondError(ctx, w, http.StatusBadRequest, "format must be 'markdown', 'pdf' or 'docx'", nil)
		return
	}

	var req entity.CombinedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	report, err := h.usecase.BuildReport(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	f, err := h.formatters.Create(format)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "unsupported format", err)
		return
	}

	rendered, err := f.Format(report)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to render report", err)
		return
	}

	filename := fmt.Sprintf("screening-%s%s", uuid.New().String(), f.FileExtension())

	ctxzap.Info(ctx, "report rendered",
		zap.String("format", string(format)),
		zap.String("filename", filename),
		zap.Int("size_bytes", len(rendered)),
	)

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(rendered)
}

func (h *Handler) parseSingleUpload(ctx context.Context, w http.ResponseWriter, r *http.Request, field string) (*multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return nil, false
	}

	file := firstFile(r, field)
	if file == nil {
		h.respondError(ctx, w, http.StatusBadRequest, fmt.Sprintf("field '%s' is required", field), nil)
		return nil, false
	}

	return file, true
}

func firstFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrOutOfRange),
		errors.Is(err, entity.ErrInvalidFormat):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrInvalidExtension),
		errors.Is(err, entity.ErrNotAnImage),
		errors.Is(err, entity.ErrFileTooLarge),
		errors.Is(err, entity.ErrUndecodableImage):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid file", err)
	case errors.Is(err, entity.ErrModelUnavailable):
		h.respondError(ctx, w, http.StatusServiceUnavailable, "inference service unavailable", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
