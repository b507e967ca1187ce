package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glucoin/glucoin-ai/internal/api/chat"
	"github.com/glucoin/glucoin-ai/internal/entity"
)

type stubUsecase struct {
	chatResp   *entity.ChatResponse
	chatErr    error
	searchResp *entity.SearchResponse
	searchErr  error
	lastReq    *entity.ChatRequest
}

func (s *stubUsecase) Chat(_ context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	s.lastReq = req
	return s.chatResp, s.chatErr
}

func (s *stubUsecase) ChatWithWebsearch(_ context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	forced := *req
	forced.UseWebsearch = true
	s.lastReq = &forced
	return s.chatResp, s.chatErr
}

func (s *stubUsecase) Topics(_ context.Context) *entity.TopicsResponse {
	return &entity.TopicsResponse{
		SupportedTopics: []string{"Diabetes Tipe 1"},
		SampleQuestions: []string{"Apa itu diabetes?"},
	}
}

func (s *stubUsecase) Search(_ context.Context, _ string) (*entity.SearchResponse, error) {
	return s.searchResp, s.searchErr
}

func newRouter(uc *stubUsecase) chi.Router {
	r := chi.NewRouter()
	chat.RegisterRoutes(r, chat.NewHandler(uc))
	return r
}

func TestChatEndpoint(t *testing.T) {
	uc := &stubUsecase{chatResp: &entity.ChatResponse{
		Success:           true,
		Response:          "Insulin adalah hormon.",
		IsDiabetesRelated: true,
		Sources:           []entity.ChatSource{},
		Model:             "llama-3.3-70b-versatile",
	}}

	req := httptest.NewRequest(http.MethodPost, "/chat",
		strings.NewReader(`{"message": "apa itu insulin", "session_id": "abc-123"}`))
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got entity.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "Insulin adalah hormon.", got.Response)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "apa itu insulin", uc.lastReq.Message)
	assert.Equal(t, "abc-123", uc.lastReq.SessionID)
}

func TestChatEndpoint_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	newRouter(&stubUsecase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Bad Request", got.Error)
}

func TestChatEndpoint_MissingMessage(t *testing.T) {
	uc := &stubUsecase{chatErr: entity.ErrMissingField}

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": ""}`))
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatWebsearchEndpoint_ForcesFlag(t *testing.T) {
	uc := &stubUsecase{chatResp: &entity.ChatResponse{Success: true}}

	req := httptest.NewRequest(http.MethodPost, "/chat/websearch",
		strings.NewReader(`{"message": "penelitian terbaru diabetes"}`))
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.True(t, uc.lastReq.UseWebsearch)
}

func TestTopicsEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/topics", nil)
	rec := httptest.NewRecorder()
	newRouter(&stubUsecase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.TopicsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Diabetes Tipe 1"}, got.SupportedTopics)
}

func TestSearchEndpoint(t *testing.T) {
	uc := &stubUsecase{searchResp: &entity.SearchResponse{
		Query: "diabetes obat terbaru",
		Results: []entity.SearchResult{
			{Title: "t", URL: "https://www.who.int/diabetes", Source: "who.int"},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/search?query=obat+terbaru", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, "who.int", got.Results[0].Source)
}

func TestSearchEndpoint_Unavailable(t *testing.T) {
	uc := &stubUsecase{searchErr: entity.ErrSearchUnavailable}

	req := httptest.NewRequest(http.MethodGet, "/search?query=diabetes", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
