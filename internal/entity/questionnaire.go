package entity

import "encoding/json"

// NonDiabeticQuestionnaire is the screening form for users without a
// diabetes diagnosis. Field names follow the public API contract.
type NonDiabeticQuestionnaire struct {
	PenglihatanBuram   bool    `json:"penglihatan_buram"` // blurred or unstable vision
	SeringBAK          bool    `json:"sering_bak"`        // frequent urination, esp. at night
	LukaLamaSembuh     bool    `json:"luka_lama_sembuh"`  // slow-healing wounds
	Kesemutan          bool    `json:"kesemutan"`         // tingling in hands or feet
	Obesitas           bool    `json:"obesitas"`
	SeringLapar        bool    `json:"sering_lapar"` // hungry even after eating
	BeratBadan         float64 `json:"berat_badan"`  // kg, 20-300
	TinggiBadan        float64 `json:"tinggi_badan"` // cm, 100-250
	RiwayatKeluarga    bool    `json:"riwayat_keluarga"` // family history of type 2
	TekananDarahTinggi bool    `json:"tekanan_darah_tinggi"`
	KolesterolTinggi   bool    `json:"kolesterol_tinggi"`
	FrekuensiOlahraga  int     `json:"frekuensi_olahraga"` // 0=never, 1=1-2x, 2=3-4x, 3=5+x per week
	PolaMakan          int     `json:"pola_makan"`         // 0=high sugar/carbs, 1=balanced, 2=healthy
}

// DiabeticQuestionnaire is the monitoring form for diagnosed users.
type DiabeticQuestionnaire struct {
	PeningkatanBAK       bool     `json:"peningkatan_bak"`
	Kesemutan            bool     `json:"kesemutan"`
	PerubahanBerat       int      `json:"perubahan_berat"`  // 0=stable, 1=slight gain, 2=sharp loss, 3=sharp gain
	GulaDarahPuasa       float64  `json:"gula_darah_puasa"` // fasting glucose mg/dL, 50-500
	RutinHbA1c           bool     `json:"rutin_hba1c"`
	HasilHbA1c           *float64 `json:"hasil_hba1c"`            // last HbA1c %, 4-15, optional
	TekananDarahSistolik float64  `json:"tekanan_darah_sistolik"` // mmHg, 80-250
	KondisiKolesterol    int      `json:"kondisi_kolesterol"`     // 0=normal, 1=slightly high, 2=high
	KonsumsiObat         bool     `json:"konsumsi_obat"`
	PernahHipoglikemia   bool     `json:"pernah_hipoglikemia"`
	OlahragaRutin        bool     `json:"olahraga_rutin"`
	PolaMakan            int      `json:"pola_makan"` // 0=high sugar/carbs, 1=controlled, 2=strict diet
}

// QuestionnaireResult is the response of both questionnaire endpoints.
type QuestionnaireResult struct {
	Success         bool     `json:"success"`
	Score           float64  `json:"score"`
	RiskLevel       string   `json:"risk_level"`
	Interpretation  string   `json:"interpretation"`
	Recommendations []string `json:"recommendations"`
}

// CombinedRequest is the body of POST /detect/combined. Questionnaire is
// kept raw because its shape depends on IsDiabetic.
type CombinedRequest struct {
	IsDiabetic    bool            `json:"is_diabetic"`
	ImageScore    *float64        `json:"image_score"`
	Questionnaire json.RawMessage `json:"questionnaire"`
}

// CombinedResult blends the image probability with the questionnaire
// score using fixed 70/30 weights.
type CombinedResult struct {
	Success            bool     `json:"success"`
	ImageScore         *float64 `json:"image_score"`
	QuestionnaireScore float64  `json:"questionnaire_score"`
	FinalScore         float64  `json:"final_score"`
	RiskLevel          string   `json:"risk_level"`
	Interpretation     string   `json:"interpretation"`
	Recommendations    []string `json:"recommendations"`
}
