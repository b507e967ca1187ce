package search

import (
	"context"
	"strings"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

// searchTriggers flag questions about current events and figures that
// the model cannot answer from its training data.
var searchTriggers = []string{
	"terbaru", "berita", "penelitian", "studi",
	"obat baru", "terapi baru", "update",
	"statistik", "data", "prevalensi",
	"rekomendasi", "guideline", "panduan terbaru",
	"perkembangan", "inovasi", "teknologi",
}

// factQuestionWords catch who/when/where/how-many style questions.
var factQuestionWords = []string{"kapan", "dimana", "siapa", "berapa"}

// queryStopwords are filler words stripped before searching.
var queryStopwords = map[string]bool{
	"apa":       true,
	"bagaimana": true,
	"mengapa":   true,
	"apakah":    true,
	"tolong":    true,
	"jelaskan":  true,
}

// Agent decides when a chat message warrants a live web search and
// runs it with a cleaned-up query.
type Agent struct {
	searcher *Searcher
}

func NewAgent(searcher *Searcher) *Agent {
	return &Agent{searcher: searcher}
}

// ShouldSearch reports whether the message asks for information that
// is likely newer than the model's knowledge.
func (a *Agent) ShouldSearch(message string) bool {
	lower := strings.ToLower(message)

	for _, trigger := range searchTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}

	for _, word := range factQuestionWords {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}

// EnhanceQuery strips question fillers so the engines see keywords.
func (a *Agent) EnhanceQuery(message string) string {
	words := strings.Fields(strings.ToLower(message))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !queryStopwords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Lookup searches for the message when warranted (or when forced) and
// returns snippet-only hits. A nil slice with nil error means search
// was skipped.
func (a *Agent) Lookup(ctx context.Context, message string, force bool) ([]entity.SearchResult, error) {
	if !force && !a.ShouldSearch(message) {
		return nil, nil
	}

	return a.searcher.Search(ctx, a.EnhanceQuery(message), false)
}
