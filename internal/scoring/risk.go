// Package scoring holds the deterministic risk rules shared by every
// detection path: the bucket table that maps a [0,1] score to a risk
// level and the additive questionnaire scoring formulas.
package scoring

// Risk levels, ordered from highest to lowest.
const (
	RiskTinggi = "tinggi"
	RiskSedang = "sedang"
	RiskRendah = "rendah"
	RiskTidak  = "tidak"
)

// RiskLevel buckets a score into exactly one risk level. Bands are
// inclusive on their lower bound: [0.75,1] tinggi, [0.50,0.75) sedang,
// [0.25,0.50) rendah, [0,0.25) tidak.
func RiskLevel(score float64) string {
	switch {
	case score >= 0.75:
		return RiskTinggi
	case score >= 0.50:
		return RiskSedang
	case score >= 0.25:
		return RiskRendah
	default:
		return RiskTidak
	}
}

const (
	// ImageWeight and QuestionnaireWeight are the fixed blend used by
	// combined detection.
	ImageWeight         = 0.70
	QuestionnaireWeight = 0.30
)

// CombineScores blends an image probability with a questionnaire score.
// When no image score is present the questionnaire stands alone.
func CombineScores(imageScore *float64, questionnaireScore float64) float64 {
	if imageScore == nil {
		return questionnaireScore
	}
	return ImageWeight**imageScore + QuestionnaireWeight*questionnaireScore
}
