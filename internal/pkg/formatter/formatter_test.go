package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/pkg/formatter"
)

func sampleReport() *entity.ScreeningReport {
	imageScore := 0.65
	return &entity.ScreeningReport{
		IsDiabetic:         false,
		ImageScore:         &imageScore,
		QuestionnaireScore: 0.45,
		FinalScore:         0.59,
		RiskLevel:          "sedang",
		Interpretation:     "RISIKO SEDANG: Ditemukan beberapa indikasi.",
		Recommendations:    []string{"Konsultasi ke dokter", "Perbaiki pola makan"},
	}
}

func TestFactory_Create(t *testing.T) {
	factory := formatter.NewFactory()

	cases := []struct {
		format        entity.ResultFormat
		wantExtension string
	}{
		{entity.FormatMarkdown, ".md"},
		{entity.FormatPDF, ".pdf"},
		{entity.FormatDOCX, ".docx"},
	}

	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			f, err := factory.Create(tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.wantExtension, f.FileExtension())
			assert.NotEmpty(t, f.ContentType())
		})
	}
}

func TestFactory_RejectsUnknownFormat(t *testing.T) {
	_, err := formatter.NewFactory().Create(entity.ResultFormat("xlsx"))
	assert.Error(t, err)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := formatter.NewMarkdownFormatter().Format(sampleReport())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Laporan Skrining Diabetes")
	assert.Contains(t, md, "Skrining (belum terdiagnosis)")
	assert.Contains(t, md, "| Skor gambar | 0.65 |")
	assert.Contains(t, md, "| Skor akhir | 0.59 |")
	assert.Contains(t, md, "| Tingkat risiko | sedang |")
	assert.Contains(t, md, "- Konsultasi ke dokter")
}

func TestMarkdownFormatter_WithoutImageScore(t *testing.T) {
	report := sampleReport()
	report.ImageScore = nil
	report.IsDiabetic = true

	out, err := formatter.NewMarkdownFormatter().Format(report)
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "| Skor gambar | - |")
	assert.Contains(t, md, "Monitoring (sudah terdiagnosis)")
}

func TestPDFFormatter_ProducesPDF(t *testing.T) {
	out, err := formatter.NewPDFFormatter().Format(sampleReport())
	require.NoError(t, err)

	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestDOCXFormatter_ProducesZipArchive(t *testing.T) {
	out, err := formatter.NewDOCXFormatter().Format(sampleReport())
	require.NoError(t, err)

	// docx files are zip archives
	require.Greater(t, len(out), 2)
	assert.Equal(t, "PK", string(out[:2]))
}
