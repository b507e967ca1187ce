package search

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

// MockEngine serves fixed results for offline development.
type MockEngine struct{}

func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

func (m *MockEngine) Name() string {
	return "mock"
}

func (m *MockEngine) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	ctxzap.Info(ctx, "[MOCK] web search", zap.String("query", query))

	results := []entity.SearchResult{
		{
			Title:   "Diabetes - World Health Organization",
			URL:     "https://www.who.int/news-room/fact-sheets/detail/diabetes",
			Snippet: "Diabetes is a chronic disease that occurs when the pancreas does not produce enough insulin.",
			Source:  "who.int",
		},
		{
			Title:   "Diabetes: Gejala, Penyebab, dan Pengobatan",
			URL:     "https://www.alodokter.com/diabetes",
			Snippet: "Diabetes adalah penyakit kronis yang ditandai dengan kadar gula darah tinggi.",
			Source:  "alodokter.com",
		},
		{
			Title:   "Diabetes - Symptoms and causes - Mayo Clinic",
			URL:     "https://www.mayoclinic.org/diseases-conditions/diabetes/symptoms-causes/syc-20371444",
			Snippet: "Diabetes mellitus refers to a group of diseases that affect how the body uses blood sugar.",
			Source:  "mayoclinic.org",
		},
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
