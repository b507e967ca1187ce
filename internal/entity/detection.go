package entity

// ImageType selects which validator and model head is applied to an upload.
type ImageType string

const (
	ImageTypeTongue ImageType = "tongue"
	ImageTypeNail   ImageType = "nail"
)

func (t ImageType) IsValid() bool {
	return t == ImageTypeTongue || t == ImageTypeNail
}

// Indonesian returns the local name used in user-facing messages.
func (t ImageType) Indonesian() string {
	if t == ImageTypeNail {
		return "kuku"
	}
	return "lidah"
}

// Prediction labels produced by thresholding the model probability.
const (
	PredictionDiabetes    = "DIABETES"
	PredictionNonDiabetes = "NON_DIABETES"
)

// ImageCheck is the outcome of the local plausibility heuristic.
type ImageCheck struct {
	Valid      bool
	Confidence float64
	Message    string
}

// ImageDetectionResult is the response of POST /detect/image.
// Probability, prediction and risk level are null when the upload
// failed the plausibility check.
type ImageDetectionResult struct {
	Success              bool     `json:"success"`
	IsValidImage         bool     `json:"is_valid_image"`
	ImageType            string   `json:"image_type,omitempty"`
	ValidationConfidence *float64 `json:"validation_confidence"`
	Probability          *float64 `json:"probability"`
	Prediction           *string  `json:"prediction"`
	RiskLevel            *string  `json:"risk_level"`
	Message              string   `json:"message"`
}

// DualImageDetectionResult is the response of POST /detect/dual-image.
// CombinedProbability is null iff neither image passed validation.
type DualImageDetectionResult struct {
	Success bool `json:"success"`

	TongueValid                bool     `json:"tongue_valid"`
	TongueProbability          *float64 `json:"tongue_probability"`
	TongueValidationConfidence *float64 `json:"tongue_validation_confidence"`

	NailValid                bool     `json:"nail_valid"`
	NailProbability          *float64 `json:"nail_probability"`
	NailValidationConfidence *float64 `json:"nail_validation_confidence"`

	CombinedProbability *float64 `json:"combined_probability"`
	Prediction          *string  `json:"prediction"`
	RiskLevel           *string  `json:"risk_level"`
	Message             string   `json:"message"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
