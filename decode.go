package knitter

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
)

// DefaultMaxPixels is the pixel limit used by Decode, a 4096x4096 image.
const DefaultMaxPixels = 4096 * 4096

// Decode decodes a PNG, GIF or BMP image of at most DefaultMaxPixels pixels
// and reports its format name.
func Decode(r io.Reader) (image.Image, string, error) {
	return DecodeLimit(r, DefaultMaxPixels)
}

// DecodeLimit is like Decode but rejects images with more than maxPixels
// pixels with an InvalidInputError. The size is read from the image header
// before any pixel data is decoded. A maxPixels of zero or less means
// DefaultMaxPixels.
func DecodeLimit(r io.Reader, maxPixels int) (image.Image, string, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	var header bytes.Buffer
	cfg, format, err := image.DecodeConfig(io.TeeReader(r, &header))
	if err != nil {
		return nil, "", fmt.Errorf("knitter: Decode: %w", err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", inputErrorf("Decode", "image must not be empty, got %dx%d",
			cfg.Width, cfg.Height)
	}
	if cfg.Width > maxPixels/cfg.Height {
		return nil, "", inputErrorf("Decode", "image of %dx%d exceeds %d pixels",
			cfg.Width, cfg.Height, maxPixels)
	}

	img, _, err := image.Decode(io.MultiReader(&header, r))
	if err != nil {
		return nil, "", fmt.Errorf("knitter: Decode: %w", err)
	}

	return img, format, nil
}

// Resize scales img to the given width, keeping its aspect ratio. Nearest
// neighbor sampling is used so that no new colors are blended in between
// flat areas.
func Resize(img image.Image, width int) image.Image {
	g := gift.New(gift.Resize(width, 0, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
