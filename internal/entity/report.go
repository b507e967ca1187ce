package entity

// ResultFormat selects the rendering of a screening report.
type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatPDF, FormatDOCX:
		return true
	}
	return false
}

// ScreeningReport is the material rendered by POST /detect/report.
type ScreeningReport struct {
	IsDiabetic         bool     `json:"is_diabetic"`
	ImageScore         *float64 `json:"image_score"`
	QuestionnaireScore float64  `json:"questionnaire_score"`
	FinalScore         float64  `json:"final_score"`
	RiskLevel          string   `json:"risk_level"`
	Interpretation     string   `json:"interpretation"`
	Recommendations    []string `json:"recommendations"`
}
