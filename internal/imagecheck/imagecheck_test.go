package imagecheck_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glucoin/glucoin-ai/internal/entity"
	"github.com/glucoin/glucoin-ai/internal/imagecheck"
)

// checkerboard alternates two colors so channel means land between
// them and channel stds are half the per-channel distance.
func checkerboard(a, b color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

func flat(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCheck_TongueRedTextured(t *testing.T) {
	img := checkerboard(
		color.RGBA{R: 200, G: 100, B: 100, A: 255},
		color.RGBA{R: 140, G: 60, B: 60, A: 255},
	)

	got := imagecheck.Check(img, entity.ImageTypeTongue)

	assert.True(t, got.Valid)
	assert.Equal(t, 1.0, got.Confidence, "all four tongue checks should pass")
	assert.Contains(t, got.Message, "valid")
}

func TestCheck_TongueRejectsFlatBlue(t *testing.T) {
	got := imagecheck.Check(flat(color.RGBA{R: 50, G: 50, B: 200, A: 255}), entity.ImageTypeTongue)

	assert.False(t, got.Valid)
	assert.Less(t, got.Confidence, 0.5)
	assert.Contains(t, got.Message, "tidak terdeteksi sebagai lidah")
}

func TestCheck_NailPalePink(t *testing.T) {
	img := checkerboard(
		color.RGBA{R: 230, G: 200, B: 190, A: 255},
		color.RGBA{R: 200, G: 170, B: 160, A: 255},
	)

	got := imagecheck.Check(img, entity.ImageTypeNail)

	assert.True(t, got.Valid)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestCheck_NailRejectsDarkSaturated(t *testing.T) {
	got := imagecheck.Check(flat(color.RGBA{R: 10, G: 60, B: 10, A: 255}), entity.ImageTypeNail)

	assert.False(t, got.Valid)
	assert.Equal(t, 0.0, got.Confidence, "every nail check should fail on a dark green frame")
	assert.Contains(t, got.Message, "kuku")
}

func TestCheck_PartialConfidenceBelowThresholdIsInvalid(t *testing.T) {
	// Flat mid-gray passes the hue check only: one out of four is not
	// enough to clear the 0.5 threshold.
	got := imagecheck.Check(flat(color.RGBA{R: 128, G: 128, B: 128, A: 255}), entity.ImageTypeTongue)

	assert.False(t, got.Valid)
}
