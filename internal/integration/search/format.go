package search

import (
	"fmt"
	"strings"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

const maxContentInPrompt = 500

// FormatResultsForLLM renders search results as a markdown block that
// is injected into the system prompt.
func FormatResultsForLLM(results []entity.SearchResult) string {
	if len(results) == 0 {
		return "Tidak ditemukan hasil pencarian yang relevan."
	}

	var sb strings.Builder
	for i, result := range results {
		fmt.Fprintf(&sb, "\n### Sumber %d: %s\n", i+1, result.Source)
		fmt.Fprintf(&sb, "**Judul:** %s\n", result.Title)
		fmt.Fprintf(&sb, "**URL:** %s\n", result.URL)
		fmt.Fprintf(&sb, "**Ringkasan:** %s\n", result.Snippet)
		if result.Content != "" {
			content := truncateUTF8(result.Content, maxContentInPrompt)
			fmt.Fprintf(&sb, "**Konten:**\n%s...\n", content)
		}
	}
	return sb.String()
}
