package knitter

import "image"

// Options configures a conversion.
type Options struct {
	// Palette to quantize against. Nil means DefaultPalette.
	Palette *Palette
	// DualBed writes a rear bed row after every front bed row.
	DualBed bool
	// AddPadding inserts spacer rows according to Padding.
	AddPadding bool
	Padding    PaddingPolicy
	// Width resizes image inputs to this many stitches per row before
	// conversion, keeping the aspect ratio. Zero keeps the image size.
	// Grids passed to Convert directly are never resized.
	Width int
}

func (o *Options) validate() error {
	if o.Width < 0 {
		return configErrorf("Convert", "width must not be negative, got %d", o.Width)
	}
	if o.AddPadding {
		if o.Padding.IncreaseCount > MaxSpacers || o.Padding.DecreaseCount > MaxSpacers {
			return configErrorf("Convert", "spacer counts must not exceed %d, got %d/%d",
				MaxSpacers, o.Padding.IncreaseCount, o.Padding.DecreaseCount)
		}
		if !printable(o.Padding.blank()) {
			return configErrorf("Convert", "blank symbol must be printable ASCII")
		}
		if !printable(o.Padding.spacer()) {
			return configErrorf("Convert", "spacer symbol must be printable ASCII")
		}
	}

	return nil
}

func (o *Options) palette() *Palette {
	if o.Palette == nil {
		return DefaultPalette()
	}
	return o.Palette
}

// Convert turns a pixel grid into a knitting pattern. Either the complete
// pattern is returned or an error, never a partial pattern.
func Convert(grid Grid, opts Options) (Pattern, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pattern, err := AssemblePattern(grid, opts.palette(), opts.DualBed)
	if err != nil {
		return nil, err
	}

	if opts.AddPadding {
		pattern = opts.Padding.Apply(pattern)
	}

	return pattern, nil
}

// ConvertImage converts a decoded image, resizing it first when opts.Width
// is set.
func ConvertImage(img image.Image, opts Options) (Pattern, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, inputErrorf("ConvertImage", "image must not be empty")
	}

	if opts.Width > 0 && opts.Width != img.Bounds().Dx() {
		img = Resize(img, opts.Width)
	}

	return Convert(NewImageGrid(img), opts)
}
