package scoring

// Interpretation returns the static interpretation text for a score,
// keyed by the risk band and whether the user is already diagnosed.
func Interpretation(score float64, isDiabetic bool) string {
	if isDiabetic {
		switch {
		case score >= 0.75:
			return "DIABETES TIDAK TERKONTROL - Kondisi diabetes kurang terkontrol dengan baik. Diperlukan tindakan segera."
		case score >= 0.50:
			return "DIABETES PERLU PERHATIAN - Ada beberapa aspek yang perlu diperbaiki."
		case score >= 0.25:
			return "DIABETES CUKUP TERKONTROL - Kondisi cukup baik, pertahankan!"
		default:
			return "DIABETES TERKONTROL BAIK - Diabetes terkontrol dengan baik."
		}
	}

	switch {
	case score >= 0.75:
		return "RISIKO SANGAT TINGGI - Risiko sangat tinggi terkena diabetes. Diperlukan tindakan segera."
	case score >= 0.50:
		return "RISIKO TINGGI - Risiko tinggi terkena diabetes."
	case score >= 0.25:
		return "RISIKO SEDANG - Ada beberapa faktor risiko yang perlu diperhatikan."
	default:
		return "RISIKO RENDAH - Risiko diabetes rendah. Pertahankan pola hidup sehat!"
	}
}

// Recommendations returns the static advice list for a score band.
func Recommendations(score float64, isDiabetic bool) []string {
	if isDiabetic {
		switch {
		case score >= 0.75:
			return []string{
				"Konsultasi dengan dokter/endokrinolog secepatnya",
				"Review dosis obat/insulin",
				"Periksa gula darah lebih sering",
				"Evaluasi pola makan dan olahraga",
				"Periksa komplikasi (mata, ginjal, kaki)",
			}
		case score >= 0.50:
			return []string{
				"Kontrol rutin ke dokter",
				"Jaga pola makan rendah gula/karbo",
				"Tingkatkan aktivitas fisik",
				"Pantau gula darah secara teratur",
			}
		case score >= 0.25:
			return []string{
				"Lanjutkan pengobatan sesuai anjuran dokter",
				"Pertahankan pola hidup sehat",
				"Kontrol rutin sesuai jadwal",
			}
		default:
			return []string{
				"Pertahankan pola makan sehat",
				"Olahraga teratur",
				"Minum obat sesuai anjuran",
			}
		}
	}

	switch {
	case score >= 0.75:
		return []string{
			"Periksa gula darah puasa dan HbA1c segera",
			"Konsultasi ke dokter secepatnya",
			"Kurangi konsumsi gula dan karbohidrat",
			"Mulai program olahraga teratur",
			"Turunkan berat badan jika berlebih",
		}
	case score >= 0.50:
		return []string{
			"Periksa gula darah untuk skrining",
			"Konsultasi ke dokter untuk evaluasi",
			"Mulai pola hidup sehat",
			"Olahraga minimal 3x seminggu",
		}
	case score >= 0.25:
		return []string{
			"Periksa gula darah rutin (1x setahun)",
			"Jaga pola makan seimbang",
			"Olahraga teratur",
		}
	default:
		return []string{
			"Tetap jaga pola makan sehat",
			"Olahraga teratur",
			"Periksa kesehatan rutin tahunan",
		}
	}
}
