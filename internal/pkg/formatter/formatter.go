package formatter

import (
	"fmt"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

const baseTitle = "Laporan Skrining Diabetes"

type Formatter interface {
	Format(report *entity.ScreeningReport) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// reportLines flattens a report into the label/value lines shared by
// the PDF and DOCX renderings.
func reportLines(r *entity.ScreeningReport) []string {
	profile := "Skrining (belum terdiagnosis)"
	if r.IsDiabetic {
		profile = "Monitoring (sudah terdiagnosis)"
	}

	lines := []string{
		fmt.Sprintf("Profil: %s", profile),
	}

	if r.ImageScore != nil {
		lines = append(lines, fmt.Sprintf("Skor gambar: %.2f", *r.ImageScore))
	}

	lines = append(lines,
		fmt.Sprintf("Skor kuesioner: %.2f", r.QuestionnaireScore),
		fmt.Sprintf("Skor akhir: %.2f", r.FinalScore),
		fmt.Sprintf("Tingkat risiko: %s", r.RiskLevel),
		"",
		r.Interpretation,
		"",
		"Rekomendasi:",
	)

	for _, rec := range r.Recommendations {
		lines = append(lines, fmt.Sprintf("- %s", rec))
	}

	return lines
}
