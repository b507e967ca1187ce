package validator

import (
	"fmt"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

// ValidateNonDiabetic checks the screening form ranges.
func (v *Validator) ValidateNonDiabetic(q *entity.NonDiabeticQuestionnaire) error {
	if q.BeratBadan < 20 || q.BeratBadan > 300 {
		return fmt.Errorf("%w: berat_badan must be between 20 and 300 kg, got %v", entity.ErrOutOfRange, q.BeratBadan)
	}
	if q.TinggiBadan < 100 || q.TinggiBadan > 250 {
		return fmt.Errorf("%w: tinggi_badan must be between 100 and 250 cm, got %v", entity.ErrOutOfRange, q.TinggiBadan)
	}
	if q.FrekuensiOlahraga < 0 || q.FrekuensiOlahraga > 3 {
		return fmt.Errorf("%w: frekuensi_olahraga must be between 0 and 3, got %d", entity.ErrOutOfRange, q.FrekuensiOlahraga)
	}
	if q.PolaMakan < 0 || q.PolaMakan > 2 {
		return fmt.Errorf("%w: pola_makan must be between 0 and 2, got %d", entity.ErrOutOfRange, q.PolaMakan)
	}
	return nil
}

// ValidateDiabetic checks the monitoring form ranges.
func (v *Validator) ValidateDiabetic(q *entity.DiabeticQuestionnaire) error {
	if q.PerubahanBerat < 0 || q.PerubahanBerat > 3 {
		return fmt.Errorf("%w: perubahan_berat must be between 0 and 3, got %d", entity.ErrOutOfRange, q.PerubahanBerat)
	}
	if q.GulaDarahPuasa < 50 || q.GulaDarahPuasa > 500 {
		return fmt.Errorf("%w: gula_darah_puasa must be between 50 and 500 mg/dL, got %v", entity.ErrOutOfRange, q.GulaDarahPuasa)
	}
	if q.HasilHbA1c != nil && (*q.HasilHbA1c < 4 || *q.HasilHbA1c > 15) {
		return fmt.Errorf("%w: hasil_hba1c must be between 4 and 15, got %v", entity.ErrOutOfRange, *q.HasilHbA1c)
	}
	if q.TekananDarahSistolik < 80 || q.TekananDarahSistolik > 250 {
		return fmt.Errorf("%w: tekanan_darah_sistolik must be between 80 and 250 mmHg, got %v", entity.ErrOutOfRange, q.TekananDarahSistolik)
	}
	if q.KondisiKolesterol < 0 || q.KondisiKolesterol > 2 {
		return fmt.Errorf("%w: kondisi_kolesterol must be between 0 and 2, got %d", entity.ErrOutOfRange, q.KondisiKolesterol)
	}
	if q.PolaMakan < 0 || q.PolaMakan > 2 {
		return fmt.Errorf("%w: pola_makan must be between 0 and 2, got %d", entity.ErrOutOfRange, q.PolaMakan)
	}
	return nil
}

// ValidateCombined checks the combined detection request envelope.
func (v *Validator) ValidateCombined(req *entity.CombinedRequest) error {
	if len(req.Questionnaire) == 0 {
		return fmt.Errorf("%w: questionnaire", entity.ErrMissingField)
	}
	if req.ImageScore != nil && (*req.ImageScore < 0 || *req.ImageScore > 1) {
		return fmt.Errorf("%w: image_score must be between 0 and 1, got %v", entity.ErrOutOfRange, *req.ImageScore)
	}
	return nil
}
