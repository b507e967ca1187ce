package detect_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glucoin/glucoin-ai/internal/api/detect"
	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/pkg/formatter"
)

type stubUsecase struct {
	imageResp     *entity.ImageDetectionResult
	imageErr      error
	dualResp      *entity.DualImageDetectionResult
	questionResp  *entity.QuestionnaireResult
	questionErr   error
	combinedResp  *entity.CombinedResult
	combinedErr   error
	report        *entity.ScreeningReport
	lastImageType entity.ImageType
}

func (s *stubUsecase) DetectImage(_ context.Context, imageType entity.ImageType, _ *multipart.FileHeader) (*entity.ImageDetectionResult, error) {
	s.lastImageType = imageType
	return s.imageResp, s.imageErr
}

func (s *stubUsecase) DetectDualImage(_ context.Context, _, _ *multipart.FileHeader) (*entity.DualImageDetectionResult, error) {
	return s.dualResp, nil
}

func (s *stubUsecase) ScoreNonDiabetic(_ context.Context, _ *entity.NonDiabeticQuestionnaire) (*entity.QuestionnaireResult, error) {
	return s.questionResp, s.questionErr
}

func (s *stubUsecase) ScoreDiabetic(_ context.Context, _ *entity.DiabeticQuestionnaire) (*entity.QuestionnaireResult, error) {
	return s.questionResp, s.questionErr
}

func (s *stubUsecase) Combine(_ context.Context, _ *entity.CombinedRequest) (*entity.CombinedResult, error) {
	return s.combinedResp, s.combinedErr
}

func (s *stubUsecase) BuildReport(_ context.Context, _ *entity.CombinedRequest) (*entity.ScreeningReport, error) {
	return s.report, s.combinedErr
}

func newRouter(uc *stubUsecase) chi.Router {
	r := chi.NewRouter()
	detect.RegisterRoutes(r, detect.NewHandler(uc, formatter.NewFactory(), 16<<20))
	return r
}

func multipartBody(t *testing.T, files map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := writer.CreateFormFile(name, name+".png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestDetectImageEndpoint(t *testing.T) {
	probability := 0.82
	uc := &stubUsecase{imageResp: &entity.ImageDetectionResult{
		Success:      true,
		IsValidImage: true,
		ImageType:    "nail",
		Probability:  &probability,
	}}

	body, contentType := multipartBody(t,
		map[string][]byte{"file": []byte("fake image bytes")},
		map[string]string{"image_type": "nail"},
	)
	req := httptest.NewRequest(http.MethodPost, "/detect/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.ImageTypeNail, uc.lastImageType)

	var got entity.ImageDetectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	require.NotNil(t, got.Probability)
	assert.InDelta(t, 0.82, *got.Probability, 1e-9)
}

func TestDetectImageEndpoint_DefaultsToTongue(t *testing.T) {
	uc := &stubUsecase{imageResp: &entity.ImageDetectionResult{Success: true}}

	body, contentType := multipartBody(t, map[string][]byte{"file": []byte("x")}, nil)
	req := httptest.NewRequest(http.MethodPost, "/detect/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.ImageTypeTongue, uc.lastImageType)
}

func TestDetectImageEndpoint_MissingFile(t *testing.T) {
	body, contentType := multipartBody(t, nil, map[string]string{"image_type": "tongue"})
	req := httptest.NewRequest(http.MethodPost, "/detect/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newRouter(&stubUsecase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.Message, "'file' is required")
}

func TestDetectImageEndpoint_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid parameter", entity.ErrInvalidParameter, http.StatusBadRequest},
		{"bad extension", entity.ErrInvalidExtension, http.StatusBadRequest},
		{"oversized file", entity.ErrFileTooLarge, http.StatusBadRequest},
		{"undecodable image", entity.ErrUndecodableImage, http.StatusBadRequest},
		{"model down", entity.ErrModelUnavailable, http.StatusServiceUnavailable},
		{"unexpected", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &stubUsecase{imageErr: tc.err}

			body, contentType := multipartBody(t, map[string][]byte{"file": []byte("x")}, nil)
			req := httptest.NewRequest(http.MethodPost, "/detect/image", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestDetectDualImageEndpoint(t *testing.T) {
	combined := 0.70
	uc := &stubUsecase{dualResp: &entity.DualImageDetectionResult{
		Success:             true,
		TongueValid:         true,
		NailValid:           true,
		CombinedProbability: &combined,
	}}

	body, contentType := multipartBody(t, map[string][]byte{
		"tongue": []byte("tongue bytes"),
		"nail":   []byte("nail bytes"),
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/detect/dual-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.DualImageDetectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
}

func TestDetectDualImageEndpoint_RequiresBothFiles(t *testing.T) {
	body, contentType := multipartBody(t, map[string][]byte{"tongue": []byte("x")}, nil)
	req := httptest.NewRequest(http.MethodPost, "/detect/dual-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newRouter(&stubUsecase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuestionnaireEndpoints(t *testing.T) {
	uc := &stubUsecase{questionResp: &entity.QuestionnaireResult{
		Success:   true,
		Score:     0.25,
		RiskLevel: "rendah",
	}}
	router := newRouter(uc)

	for _, path := range []string{
		"/detect/questionnaire/non-diabetic",
		"/detect/questionnaire/diabetic",
	} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)

		var got entity.QuestionnaireResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "rendah", got.RiskLevel, path)
	}
}

func TestQuestionnaireEndpoint_OutOfRange(t *testing.T) {
	uc := &stubUsecase{questionErr: entity.ErrOutOfRange}

	req := httptest.NewRequest(http.MethodPost, "/detect/questionnaire/non-diabetic", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetectCombinedEndpoint(t *testing.T) {
	uc := &stubUsecase{combinedResp: &entity.CombinedResult{
		Success:    true,
		FinalScore: 0.59,
		RiskLevel:  "sedang",
	}}

	req := httptest.NewRequest(http.MethodPost, "/detect/combined",
		strings.NewReader(`{"is_diabetic": false, "image_score": 0.65, "questionnaire": {}}`))
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.CombinedResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.InDelta(t, 0.59, got.FinalScore, 1e-9)
}

func TestReportEndpoint_Markdown(t *testing.T) {
	uc := &stubUsecase{report: &entity.ScreeningReport{
		FinalScore:      0.59,
		RiskLevel:       "sedang",
		Interpretation:  "interpretasi",
		Recommendations: []string{"konsultasi dokter"},
	}}

	req := httptest.NewRequest(http.MethodPost, "/detect/report?format=markdown",
		strings.NewReader(`{"questionnaire": {}}`))
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))

	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, ".md")
	assert.Contains(t, rec.Body.String(), "sedang")
}

func TestReportEndpoint_RejectsUnknownFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/detect/report?format=xlsx",
		strings.NewReader(`{"questionnaire": {}}`))
	rec := httptest.NewRecorder()
	newRouter(&stubUsecase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
