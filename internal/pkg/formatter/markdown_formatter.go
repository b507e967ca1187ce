package formatter

import (
	"bytes"
	"fmt"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(report *entity.ScreeningReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", baseTitle)

	profile := "Skrining (belum terdiagnosis)"
	if report.IsDiabetic {
		profile = "Monitoring (sudah terdiagnosis)"
	}
	fmt.Fprintf(&buf, "**Profil:** %s\n\n", profile)

	if report.ImageScore != nil {
		fmt.Fprintf(&buf, "| Skor gambar | %.2f |\n", *report.ImageScore)
	} else {
		buf.WriteString("| Skor gambar | - |\n")
	}
	fmt.Fprintf(&buf, "| Skor kuesioner | %.2f |\n", report.QuestionnaireScore)
	fmt.Fprintf(&buf, "| Skor akhir | %.2f |\n", report.FinalScore)
	fmt.Fprintf(&buf, "| Tingkat risiko | %s |\n\n", report.RiskLevel)

	fmt.Fprintf(&buf, "%s\n\n## Rekomendasi\n\n", report.Interpretation)
	for _, rec := range report.Recommendations {
		fmt.Fprintf(&buf, "- %s\n", rec)
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
