package knitter

// Quantizer classifies pixels against a palette and remembers the result for
// every distinct pixel it has seen. Flat color artwork repeats the same few
// pixels across the whole image, so the L*a*b* conversion runs once per color
// instead of once per pixel.
//
// A Quantizer is meant to live for one conversion and is not safe for
// concurrent use. The palette it reads is never modified.
type Quantizer struct {
	palette *Palette
	memo    map[Pixel]int
}

// NewQuantizer returns a quantizer for the given palette.
func NewQuantizer(palette *Palette) (*Quantizer, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, configErrorf("NewQuantizer", "palette must have at least one entry")
	}

	return &Quantizer{
		palette: palette,
		memo:    make(map[Pixel]int),
	}, nil
}

// Classify returns the palette entry nearest to px.
func (q *Quantizer) Classify(px Pixel) PaletteEntry {
	i, ok := q.memo[px]
	if !ok {
		i = q.palette.nearest(ToPerceptual(px))
		q.memo[px] = i
	}

	return q.palette.entries[i]
}

// Palette returns the palette the quantizer classifies against.
func (q *Quantizer) Palette() *Palette {
	return q.palette
}
