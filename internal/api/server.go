// Package api assembles the HTTP routers. The detection and chatbot
// services each get their own router; the combined binary mounts both
// under path prefixes.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	chatapi "github.com/glucoin/glucoin-ai/internal/api/chat"
	detectapi "github.com/glucoin/glucoin-ai/internal/api/detect"
	"github.com/glucoin/glucoin-ai/internal/api/docs"
	"github.com/glucoin/glucoin-ai/internal/api/middleware"
	"github.com/glucoin/glucoin-ai/internal/pkg/response"
)

const version = "1.0.0"

// DetectionStatus feeds the detection health and banner endpoints.
type DetectionStatus struct {
	ModelAvailable bool
	Threshold      float64
}

// ChatbotStatus feeds the chatbot health and banner endpoints.
type ChatbotStatus struct {
	LLMAvailable       bool
	WebsearchAvailable bool
	Model              string
}

// SetupDetectionRouter creates the router served by cmd/detection-api.
func SetupDetectionRouter(h *detectapi.Handler, status DetectionStatus, logger *zap.Logger) http.Handler {
	r := newRouter(logger)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]any{
			"service": "Diabetes Detection API",
			"version": version,
			"endpoints": map[string]string{
				"detect_image":                      "POST /detect/image",
				"detect_dual_image":                 "POST /detect/dual-image",
				"detect_questionnaire_non_diabetic": "POST /detect/questionnaire/non-diabetic",
				"detect_questionnaire_diabetic":     "POST /detect/questionnaire/diabetic",
				"detect_combined":                   "POST /detect/combined",
				"detect_report":                     "POST /detect/report",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]any{
			"status":          "healthy",
			"model_available": status.ModelAvailable,
			"threshold":       status.Threshold,
		})
	})

	docs.RegisterRoutes(r)
	detectapi.RegisterRoutes(r, h)

	return r
}

// SetupChatbotRouter creates the router served by cmd/chatbot-api.
func SetupChatbotRouter(h *chatapi.Handler, status ChatbotStatus, logger *zap.Logger) http.Handler {
	r := newRouter(logger)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]any{
			"service": "Glucare Chatbot API",
			"version": version,
			"status":  "healthy",
			"model":   status.Model,
			"endpoints": map[string]string{
				"chat":           "POST /chat",
				"chat_websearch": "POST /chat/websearch",
				"topics":         "GET /topics",
				"search":         "GET /search?query=...",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]any{
			"status":              "healthy",
			"llm_available":       status.LLMAvailable,
			"websearch_available": status.WebsearchAvailable,
		})
	})

	docs.RegisterRoutes(r)
	chatapi.RegisterRoutes(r, h)

	return r
}

// SetupCombinedRouter mounts both services on one router under
// /detection and /chatbot.
func SetupCombinedRouter(
	detectHandler *detectapi.Handler,
	chatHandler *chatapi.Handler,
	detectionStatus DetectionStatus,
	chatbotStatus ChatbotStatus,
	logger *zap.Logger,
) http.Handler {
	r := newRouter(logger)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]any{
			"service": "Glucoin AI API",
			"version": version,
			"services": map[string]string{
				"detection": "/detection",
				"chatbot":   "/chatbot",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]any{
			"status": "healthy",
			"detection": map[string]any{
				"model_available": detectionStatus.ModelAvailable,
				"threshold":       detectionStatus.Threshold,
			},
			"chatbot": map[string]any{
				"llm_available":       chatbotStatus.LLMAvailable,
				"websearch_available": chatbotStatus.WebsearchAvailable,
			},
		})
	})

	docs.RegisterRoutes(r)

	r.Route("/detection", func(r chi.Router) {
		detectapi.RegisterRoutes(r, detectHandler)
	})
	r.Route("/chatbot", func(r chi.Router) {
		chatapi.RegisterRoutes(r, chatHandler)
	})

	return r
}

func newRouter(logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	return r
}
