package detect

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers detection routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/detect", func(r chi.Router) {
		r.Post("/image", h.DetectImage)
		r.Post("/dual-image", h.DetectDualImage)
		r.Post("/questionnaire/non-diabetic", h.QuestionnaireNonDiabetic)
		r.Post("/questionnaire/diabetic", h.QuestionnaireDiabetic)
		r.Post("/combined", h.DetectCombined)
		r.Post("/report", h.Report)
	})
}
