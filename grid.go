package knitter

import (
	"image"
	"math"
)

// Grid is a decoded pixel grid addressed from (0, 0) at the top left.
type Grid interface {
	Width() int
	Height() int
	PixelAt(x, y int) Pixel
}

// PixelGrid is an in-memory, row-major Grid.
type PixelGrid struct {
	width  int
	height int
	pixels []Pixel
}

// NewPixelGrid returns a grid of the given size backed by pixels, which must
// hold exactly width*height pixels in row-major order.
func NewPixelGrid(width, height int, pixels []Pixel) (*PixelGrid, error) {
	if width < 0 || height < 0 {
		return nil, inputErrorf("NewPixelGrid", "negative size %dx%d", width, height)
	}
	if height != 0 && width > math.MaxInt/height {
		return nil, inputErrorf("NewPixelGrid", "size %dx%d is too large", width, height)
	}
	if len(pixels) != width*height {
		return nil, inputErrorf("NewPixelGrid", "got %d pixels for a %dx%d grid",
			len(pixels), width, height)
	}

	return &PixelGrid{width: width, height: height, pixels: pixels}, nil
}

func (g *PixelGrid) Width() int  { return g.width }
func (g *PixelGrid) Height() int { return g.height }

func (g *PixelGrid) PixelAt(x, y int) Pixel {
	return g.pixels[y*g.width+x]
}

// ImageGrid adapts an image.Image of any color model to a Grid. The image
// bounds do not need to start at the origin.
type ImageGrid struct {
	img    image.Image
	bounds image.Rectangle
}

// NewImageGrid wraps img.
func NewImageGrid(img image.Image) *ImageGrid {
	return &ImageGrid{img: img, bounds: img.Bounds()}
}

func (g *ImageGrid) Width() int  { return g.bounds.Dx() }
func (g *ImageGrid) Height() int { return g.bounds.Dy() }

func (g *ImageGrid) PixelAt(x, y int) Pixel {
	return PixelFromColor(g.img.At(g.bounds.Min.X+x, g.bounds.Min.Y+y))
}
