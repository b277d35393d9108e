package knitter

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an 8-bit RGB color as produced by image decoding.
type Pixel struct {
	R, G, B uint8
}

// PixelFromColor normalizes any color.Color to a Pixel. Alpha is discarded
// after un-premultiplying, so a half transparent red is still red.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}.RGBA()
}

// PerceptualColor is a CIE L*a*b* coordinate relative to the D65 white point,
// with L in [0, 100].
type PerceptualColor struct {
	L, A, B float64
}

// ToPerceptual converts a pixel from sRGB to CIE L*a*b*.
func ToPerceptual(p Pixel) PerceptualColor {
	c := colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}

	// colorful reports lightness in [0, 1]; scale everything to the
	// conventional CIE units.
	l, a, b := c.Lab()
	return PerceptualColor{L: l * 100, A: a * 100, B: b * 100}
}

// Distance returns the Euclidean (CIE76) distance between two colors.
func (c PerceptualColor) Distance(o PerceptualColor) float64 {
	dl := c.L - o.L
	da := c.A - o.A
	db := c.B - o.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
