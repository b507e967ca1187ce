package chat

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers chatbot routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/chat", h.Chat)
	r.Post("/chat/websearch", h.ChatWithWebsearch)
	r.Get("/topics", h.Topics)
	r.Get("/search", h.Search)
}
