package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glucoin/glucoin-ai/internal/scoring"
)

// The bucket bounds are inclusive on the low side; these cases pin the
// boundaries exactly.
func TestRiskLevel_Buckets(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		want  string
	}{
		{"zero is tidak", 0.0, scoring.RiskTidak},
		{"just below rendah", 0.249, scoring.RiskTidak},
		{"rendah lower bound", 0.25, scoring.RiskRendah},
		{"mid rendah", 0.40, scoring.RiskRendah},
		{"just below sedang", 0.499, scoring.RiskRendah},
		{"sedang lower bound", 0.50, scoring.RiskSedang},
		{"mid sedang", 0.65, scoring.RiskSedang},
		{"just below tinggi", 0.749, scoring.RiskSedang},
		{"tinggi lower bound", 0.75, scoring.RiskTinggi},
		{"high tinggi", 0.80, scoring.RiskTinggi},
		{"max", 1.0, scoring.RiskTinggi},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoring.RiskLevel(tc.score))
		})
	}
}

func TestCombineScores_WithImage(t *testing.T) {
	imageScore := 0.65

	// 0.70*0.65 + 0.30*0.45 = 0.59
	got := scoring.CombineScores(&imageScore, 0.45)
	assert.InDelta(t, 0.59, got, 1e-9)
}

func TestCombineScores_WithoutImage(t *testing.T) {
	got := scoring.CombineScores(nil, 0.45)
	assert.Equal(t, 0.45, got, "questionnaire stands alone when no image score is given")
}

func TestInterpretation_MatchesRiskBand(t *testing.T) {
	assert.Contains(t, scoring.Interpretation(0.80, false), "RISIKO SANGAT TINGGI")
	assert.Contains(t, scoring.Interpretation(0.65, false), "RISIKO TINGGI")
	assert.Contains(t, scoring.Interpretation(0.30, false), "RISIKO SEDANG")
	assert.Contains(t, scoring.Interpretation(0.10, false), "RISIKO RENDAH")

	assert.Contains(t, scoring.Interpretation(0.80, true), "TIDAK TERKONTROL")
	assert.Contains(t, scoring.Interpretation(0.10, true), "TERKONTROL BAIK")
}

func TestRecommendations_NeverEmpty(t *testing.T) {
	for _, score := range []float64{0.0, 0.30, 0.60, 0.90} {
		assert.NotEmpty(t, scoring.Recommendations(score, false))
		assert.NotEmpty(t, scoring.Recommendations(score, true))
	}
}
