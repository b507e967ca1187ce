package scoring

import "github.com/glucoin/glucoin-ai/internal/entity"

// Both forms accumulate weighted points over a 12-point scale and are
// capped at 1.0.
const questionnaireMaxScore = 12.0

// BMI computes body mass index from weight in kg and height in cm.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

// NonDiabeticScore computes the screening risk score for users without
// a diabetes diagnosis.
func NonDiabeticScore(q *entity.NonDiabeticQuestionnaire) float64 {
	score := 0.0

	if q.PenglihatanBuram {
		score++
	}
	if q.SeringBAK {
		score++
	}
	if q.LukaLamaSembuh {
		score++
	}
	if q.Kesemutan {
		score++
	}
	if q.Obesitas {
		score++
	}
	if q.SeringLapar {
		score++
	}

	switch bmi := BMI(q.BeratBadan, q.TinggiBadan); {
	case bmi >= 30:
		score += 1.5
	case bmi >= 25:
		score++
	}

	if q.RiwayatKeluarga {
		score += 1.5
	}
	if q.TekananDarahTinggi {
		score++
	}
	if q.KolesterolTinggi {
		score++
	}

	switch q.FrekuensiOlahraga {
	case 0:
		score++
	case 1:
		score += 0.5
	}

	switch q.PolaMakan {
	case 0:
		score++
	case 1:
		score += 0.5
	}

	return capScore(score)
}

// DiabeticScore computes the severity score for diagnosed users.
func DiabeticScore(q *entity.DiabeticQuestionnaire) float64 {
	score := 0.0

	if q.PeningkatanBAK {
		score++
	}
	if q.Kesemutan {
		score++
	}

	switch {
	case q.PerubahanBerat >= 2:
		score += 1.5
	case q.PerubahanBerat == 1:
		score += 0.5
	}

	switch {
	case q.GulaDarahPuasa >= 180:
		score += 2
	case q.GulaDarahPuasa >= 130:
		score += 1.5
	case q.GulaDarahPuasa >= 100:
		score++
	}

	if q.RutinHbA1c && q.HasilHbA1c != nil {
		switch {
		case *q.HasilHbA1c >= 9:
			score += 2
		case *q.HasilHbA1c >= 7:
			score++
		}
	} else if !q.RutinHbA1c {
		score += 0.5
	}

	switch {
	case q.TekananDarahSistolik >= 140:
		score++
	case q.TekananDarahSistolik >= 130:
		score += 0.5
	}

	switch q.KondisiKolesterol {
	case 2:
		score++
	case 1:
		score += 0.5
	}

	if !q.KonsumsiObat {
		score += 0.5
	}
	if q.PernahHipoglikemia {
		score++
	}
	if !q.OlahragaRutin {
		score++
	}

	switch q.PolaMakan {
	case 0:
		score++
	case 1:
		score += 0.5
	}

	return capScore(score)
}

func capScore(score float64) float64 {
	normalized := score / questionnaireMaxScore
	if normalized > 1.0 {
		return 1.0
	}
	return normalized
}
