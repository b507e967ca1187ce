package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/scoring"
)

func healthyNonDiabetic() *entity.NonDiabeticQuestionnaire {
	return &entity.NonDiabeticQuestionnaire{
		BeratBadan:        60,  // BMI 20.8, below every band
		TinggiBadan:       170,
		FrekuensiOlahraga: 3, // 5+x per week, no points
		PolaMakan:         2, // healthy diet, no points
	}
}

func TestBMI(t *testing.T) {
	assert.InDelta(t, 24.22, scoring.BMI(70, 170), 0.01)
	assert.InDelta(t, 30.0, scoring.BMI(86.7, 170), 0.01)
}

func TestNonDiabeticScore_AllHealthy(t *testing.T) {
	got := scoring.NonDiabeticScore(healthyNonDiabetic())
	assert.Equal(t, 0.0, got)
}

func TestNonDiabeticScore_SymptomsAddUp(t *testing.T) {
	q := healthyNonDiabetic()
	q.PenglihatanBuram = true
	q.SeringBAK = true
	q.Kesemutan = true

	// 3 points on the 12 point scale
	assert.InDelta(t, 0.25, scoring.NonDiabeticScore(q), 1e-9)
}

func TestNonDiabeticScore_BMIBands(t *testing.T) {
	q := healthyNonDiabetic()

	q.BeratBadan = 75 // BMI 25.95 -> +1
	assert.InDelta(t, 1.0/12.0, scoring.NonDiabeticScore(q), 1e-9)

	q.BeratBadan = 90 // BMI 31.1 -> +1.5
	assert.InDelta(t, 1.5/12.0, scoring.NonDiabeticScore(q), 1e-9)
}

func TestNonDiabeticScore_FamilyHistoryWeighsMore(t *testing.T) {
	q := healthyNonDiabetic()
	q.RiwayatKeluarga = true

	assert.InDelta(t, 1.5/12.0, scoring.NonDiabeticScore(q), 1e-9)
}

func TestNonDiabeticScore_LifestylePoints(t *testing.T) {
	q := healthyNonDiabetic()
	q.FrekuensiOlahraga = 0 // +1
	q.PolaMakan = 0         // +1

	assert.InDelta(t, 2.0/12.0, scoring.NonDiabeticScore(q), 1e-9)
}

func TestNonDiabeticScore_CappedAtOne(t *testing.T) {
	q := &entity.NonDiabeticQuestionnaire{
		PenglihatanBuram:   true,
		SeringBAK:          true,
		LukaLamaSembuh:     true,
		Kesemutan:          true,
		Obesitas:           true,
		SeringLapar:        true,
		BeratBadan:         120, // BMI 41.5 -> +1.5
		TinggiBadan:        170,
		RiwayatKeluarga:    true, // +1.5
		TekananDarahTinggi: true,
		KolesterolTinggi:   true,
		FrekuensiOlahraga:  0, // +1
		PolaMakan:          0, // +1
	}

	// 13 raw points, normalized and capped
	assert.Equal(t, 1.0, scoring.NonDiabeticScore(q))
}

func controlledDiabetic() *entity.DiabeticQuestionnaire {
	return &entity.DiabeticQuestionnaire{
		GulaDarahPuasa:       90,
		RutinHbA1c:           true,
		HasilHbA1c:           ptr(5.8),
		TekananDarahSistolik: 110,
		KonsumsiObat:         true,
		OlahragaRutin:        true,
		PolaMakan:            2,
	}
}

func TestDiabeticScore_WellControlled(t *testing.T) {
	assert.Equal(t, 0.0, scoring.DiabeticScore(controlledDiabetic()))
}

func TestDiabeticScore_FastingGlucoseBands(t *testing.T) {
	q := controlledDiabetic()

	q.GulaDarahPuasa = 100 // +1
	assert.InDelta(t, 1.0/12.0, scoring.DiabeticScore(q), 1e-9)

	q.GulaDarahPuasa = 130 // +1.5
	assert.InDelta(t, 1.5/12.0, scoring.DiabeticScore(q), 1e-9)

	q.GulaDarahPuasa = 180 // +2
	assert.InDelta(t, 2.0/12.0, scoring.DiabeticScore(q), 1e-9)
}

func TestDiabeticScore_HbA1cBands(t *testing.T) {
	q := controlledDiabetic()

	q.HasilHbA1c = ptr(7.5) // +1
	assert.InDelta(t, 1.0/12.0, scoring.DiabeticScore(q), 1e-9)

	q.HasilHbA1c = ptr(9.5) // +2
	assert.InDelta(t, 2.0/12.0, scoring.DiabeticScore(q), 1e-9)
}

func TestDiabeticScore_NoHbA1cMonitoringPenalty(t *testing.T) {
	q := controlledDiabetic()
	q.RutinHbA1c = false
	q.HasilHbA1c = nil

	assert.InDelta(t, 0.5/12.0, scoring.DiabeticScore(q), 1e-9)
}

func TestDiabeticScore_WeightChangeBands(t *testing.T) {
	q := controlledDiabetic()

	q.PerubahanBerat = 1 // slight gain, +0.5
	assert.InDelta(t, 0.5/12.0, scoring.DiabeticScore(q), 1e-9)

	q.PerubahanBerat = 2 // sharp loss, +1.5
	assert.InDelta(t, 1.5/12.0, scoring.DiabeticScore(q), 1e-9)

	q.PerubahanBerat = 3 // sharp gain, +1.5
	assert.InDelta(t, 1.5/12.0, scoring.DiabeticScore(q), 1e-9)
}

func ptr[T any](v T) *T {
	return &v
}
