package knitter

import "strings"

// Pattern is the ordered list of text rows sent to the knitting machine.
type Pattern []string

// EncodeRow encodes image row y into its front bed symbols and, when dualBed
// is set, its rear bed symbols. Both strings are exactly grid.Width() long.
func EncodeRow(grid Grid, y int, q *Quantizer, dualBed bool) (front, rear string) {
	width := grid.Width()

	var fb, rb strings.Builder
	fb.Grow(width)
	if dualBed {
		rb.Grow(width)
	}

	for x := 0; x < width; x++ {
		entry := q.Classify(grid.PixelAt(x, y))
		fb.WriteByte(entry.Front)
		if dualBed {
			rb.WriteByte(entry.Rear)
		}
	}

	return fb.String(), rb.String()
}

// AssemblePattern encodes every row of grid from top to bottom. In dual bed
// mode each front row is immediately followed by the rear row of the same
// image row, so the pattern holds 2*height rows instead of height.
func AssemblePattern(grid Grid, palette *Palette, dualBed bool) (Pattern, error) {
	if err := validateGrid("AssemblePattern", grid); err != nil {
		return nil, err
	}

	q, err := NewQuantizer(palette)
	if err != nil {
		return nil, err
	}

	height := grid.Height()
	size := height
	if dualBed {
		size *= 2
	}

	pattern := make(Pattern, 0, size)
	for y := 0; y < height; y++ {
		front, rear := EncodeRow(grid, y, q, dualBed)
		pattern = append(pattern, front)
		if dualBed {
			pattern = append(pattern, rear)
		}
	}

	return pattern, nil
}

func validateGrid(op string, grid Grid) error {
	if grid == nil {
		return inputErrorf(op, "no pixel grid")
	}
	if grid.Width() <= 0 || grid.Height() <= 0 {
		return inputErrorf(op, "image must not be empty, got %dx%d",
			grid.Width(), grid.Height())
	}

	return nil
}
