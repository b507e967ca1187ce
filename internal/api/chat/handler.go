package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/pkg/logger"
	"github.com/glucoin/glucoin-ai/internal/pkg/response"
)

type Handler struct {
	usecase ChatUsecase
}

func NewHandler(usecase ChatUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Chat handles POST /chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Chat")

	req, ok := h.decodeChatRequest(ctx, w, r)
	if !ok {
		return
	}

	result, err := h.usecase.Chat(ctx, req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// ChatWithWebsearch handles POST /chat/websearch
func (h *Handler) ChatWithWebsearch(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ChatWithWebsearch")

	req, ok := h.decodeChatRequest(ctx, w, r)
	if !ok {
		return
	}

	result, err := h.usecase.ChatWithWebsearch(ctx, req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// Topics handles GET /topics
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Topics")

	response.Success(w, h.usecase.Topics(ctx))
}

// Search handles GET /search?query=...
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Search")

	query := r.URL.Query().Get("query")

	result, err := h.usecase.Search(ctx, query)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

func (h *Handler) decodeChatRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (*entity.ChatRequest, bool) {
	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return nil, false
	}
	return &req, true
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
	case errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidParameter):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrSearchUnavailable):
		h.respondError(ctx, w, http.StatusServiceUnavailable, "web search unavailable", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
