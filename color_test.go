package knitter

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPerceptual(t *testing.T) {
	black := ToPerceptual(Pixel{0, 0, 0})
	assert.InDelta(t, 0, black.L, 1e-9)
	assert.InDelta(t, 0, black.A, 1e-9)
	assert.InDelta(t, 0, black.B, 1e-9)

	white := ToPerceptual(Pixel{255, 255, 255})
	assert.InDelta(t, 100, white.L, 0.01)
	assert.InDelta(t, 0, white.A, 0.01)
	assert.InDelta(t, 0, white.B, 0.01)

	// Yellow is light and strongly towards +b.
	yellow := ToPerceptual(Pixel{255, 255, 0})
	assert.InDelta(t, 97.1, yellow.L, 0.5)
	assert.Greater(t, yellow.B, 90.0)
}

func TestDistance(t *testing.T) {
	a := PerceptualColor{L: 10, A: 0, B: 0}
	b := PerceptualColor{L: 13, A: 4, B: 0}

	assert.InDelta(t, 5, a.Distance(b), 1e-9)
	assert.InDelta(t, a.Distance(b), b.Distance(a), 1e-9)
	assert.Zero(t, a.Distance(a))
}

func TestPixelFromColor(t *testing.T) {
	tests := []struct {
		name     string
		in       color.Color
		expected Pixel
	}{
		{"opaque rgba", color.RGBA{R: 10, G: 20, B: 30, A: 255}, Pixel{10, 20, 30}},
		{"gray", color.Gray{Y: 200}, Pixel{200, 200, 200}},
		{"non-premultiplied alpha is dropped", color.NRGBA{R: 255, G: 0, B: 0, A: 128}, Pixel{255, 0, 0}},
		{"pixel round trip", Pixel{1, 2, 3}, Pixel{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PixelFromColor(tt.in))
		})
	}
}
