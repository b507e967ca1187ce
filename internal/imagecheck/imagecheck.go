// Package imagecheck implements the local plausibility heuristic that
// guards the inference service: it decides from simple color statistics
// whether an upload looks like a tongue or a nail at all.
package imagecheck

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

// Each passed check contributes this much confidence; an image is
// accepted when at least two of the four checks pass.
const (
	checkWeight    = 0.25
	validThreshold = 0.5
)

type channelStats struct {
	rMean, gMean, bMean float64
	rStd, gStd, bStd    float64
}

// Check runs the four-point heuristic for the given image type.
func Check(img image.Image, imageType entity.ImageType) entity.ImageCheck {
	stats := computeStats(img)
	h, s, v := rgbToHSV(stats.rMean/255, stats.gMean/255, stats.bMean/255)

	confidence := 0.0
	var reasons []string

	if imageType == entity.ImageTypeTongue {
		// Tongues read as red/pink with medium saturation and visible texture.
		if stats.rMean > stats.gMean && stats.rMean > stats.bMean*0.8 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "warna tidak sesuai karakteristik lidah")
		}

		if h <= 0.12 || h >= 0.85 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "tone warna bukan merah/pink")
		}

		if s >= 0.15 && s <= 0.85 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "saturasi tidak normal")
		}

		if stats.rStd > 15 && stats.gStd > 10 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "tekstur tidak terdeteksi")
		}
	} else {
		// Nails are pale pink/white/yellowish and brighter.
		if v >= 0.3 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "gambar terlalu gelap untuk kuku")
		}

		if stats.rMean >= stats.gMean*0.85 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "warna tidak sesuai skin tone")
		}

		if s <= 0.7 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "warna terlalu jenuh untuk kuku")
		}

		if stats.rStd > 10 || stats.gStd > 10 {
			confidence += checkWeight
		} else {
			reasons = append(reasons, "tekstur tidak terdeteksi")
		}
	}

	valid := confidence >= validThreshold

	var message string
	if valid {
		message = fmt.Sprintf("Gambar %s terdeteksi valid (confidence: %.0f%%)", imageType, confidence*100)
	} else {
		message = fmt.Sprintf("Gambar tidak terdeteksi sebagai %s. %s", imageType, strings.Join(reasons, ", "))
	}

	return entity.ImageCheck{
		Valid:      valid,
		Confidence: confidence,
		Message:    message,
	}
}

func computeStats(img image.Image) channelStats {
	bounds := img.Bounds()
	n := float64(bounds.Dx() * bounds.Dy())
	if n == 0 {
		return channelStats{}
	}

	var rSum, gSum, bSum float64
	var rSq, gSq, bSq float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			b := float64(b16 >> 8)

			rSum += r
			gSum += g
			bSum += b
			rSq += r * r
			gSq += g * g
			bSq += b * b
		}
	}

	stats := channelStats{
		rMean: rSum / n,
		gMean: gSum / n,
		bMean: bSum / n,
	}
	stats.rStd = math.Sqrt(math.Max(0, rSq/n-stats.rMean*stats.rMean))
	stats.gStd = math.Sqrt(math.Max(0, gSq/n-stats.gMean*stats.gMean))
	stats.bStd = math.Sqrt(math.Max(0, bSq/n-stats.bMean*stats.bMean))
	return stats
}

// rgbToHSV converts normalized [0,1] RGB to HSV with hue in [0,1).
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	v = maxC

	if maxC == minC {
		return 0, 0, v
	}

	delta := maxC - minC
	s = delta / maxC

	switch maxC {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}

	h /= 6
	if h < 0 {
		h++
	}
	return h, s, v
}
