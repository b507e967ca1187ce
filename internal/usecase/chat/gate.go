package chat

import (
	"regexp"
	"strings"
)

// diabetesKeywords gate incoming messages. A single match anywhere in
// the lower-cased message passes the gate.
var diabetesKeywords = []string{
	"diabetes", "diabetesi", "gula darah", "glukosa", "insulin", "hiperglikemia",
	"hipoglikemia", "kencing manis", "prediabetes", "resistensi insulin",
	"hba1c", "a1c", "gdp", "gds", "ttgo", "ogtt",
	"metformin", "glibenklamid", "glimepirid", "sulfonilurea",
	"retinopati", "neuropati", "nefropati", "kaki diabetik",
	"pankreas", "sel beta", "hormon",
	"obesitas", "kegemukan", "berat badan", "diet", "karbohidrat",
	"kalori", "indeks glikemik", "serat", "nutrisi",
	"komplikasi", "amputasi", "luka", "kesemutan", "baal",
	"sering kencing", "haus", "lapar", "lelah", "lemas",
	"mata kabur", "penglihatan", "ginjal", "jantung", "stroke",
	"kolesterol", "trigliserida", "tekanan darah", "hipertensi",
	"olahraga", "aktivitas fisik", "gaya hidup", "sehat",
	"puasa", "makan", "makanan", "minuman", "buah", "sayur",
	"gula", "manis", "pemanis", "stevia", "sukrosa",
	"cek gula", "tes darah", "monitor", "glucometer",
	"pompa insulin", "suntik", "injeksi", "pen insulin",
	"blood sugar", "glucose", "glycemic", "carbohydrate", "carbs",
	"type 1", "type 2", "gestational", "mellitus", "blood test",
	"endokrin", "metabolik", "metabolisme", "sindrom metabolik",
	"lidah", "kuku", "deteksi", "screening", "skrining",
}

// diabetesPatterns cover spaced variants the plain keyword scan misses.
var diabetesPatterns = []*regexp.Regexp{
	regexp.MustCompile(`gula\s*darah`),
	regexp.MustCompile(`kadar\s*gula`),
	regexp.MustCompile(`cek\s*gula`),
	regexp.MustCompile(`tes\s*gula`),
	regexp.MustCompile(`kencing\s*manis`),
	regexp.MustCompile(`sakit\s*gula`),
	regexp.MustCompile(`penyakit\s*gula`),
	regexp.MustCompile(`blood\s*sugar`),
	regexp.MustCompile(`type\s*[12]`),
	regexp.MustCompile(`tipe\s*[12]`),
}

// IsDiabetesRelated reports whether the message is on topic.
func IsDiabetesRelated(message string) bool {
	lower := strings.ToLower(message)

	for _, keyword := range diabetesKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	for _, pattern := range diabetesPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	return false
}
