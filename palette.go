package knitter

import "strconv"

// PaletteEntry maps a representative color to the symbols written for the
// front and rear needle beds.
type PaletteEntry struct {
	Color Pixel
	Front byte
	Rear  byte
}

// Palette is an ordered, immutable set of palette entries. Declaration order
// decides ties during classification.
type Palette struct {
	entries []PaletteEntry
	lab     []PerceptualColor
}

// DefaultPalette returns the black, white and yellow palette used by the
// reference deployment. White encodes to the blank symbol on both beds.
func DefaultPalette() *Palette {
	p, err := NewPalette(
		PaletteEntry{Color: Pixel{0, 0, 0}, Front: '-', Rear: 'o'},
		PaletteEntry{Color: Pixel{255, 255, 255}, Front: ' ', Rear: ' '},
		PaletteEntry{Color: Pixel{255, 255, 0}, Front: 'x', Rear: 'y'},
	)
	if err != nil {
		panic(err)
	}

	return p
}

// NewPalette validates the given entries and returns a palette that keeps
// them in the given order. The palette must not be empty, every symbol must
// be a printable ASCII character, and no two entries may share a front or a
// rear symbol.
func NewPalette(entries ...PaletteEntry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, configErrorf("NewPalette", "palette must have at least one entry")
	}

	front := make(map[byte]int, len(entries))
	rear := make(map[byte]int, len(entries))

	p := &Palette{
		entries: make([]PaletteEntry, len(entries)),
		lab:     make([]PerceptualColor, len(entries)),
	}

	for i, entry := range entries {
		if !printable(entry.Front) {
			return nil, configErrorf("NewPalette",
				"entry %d: front symbol %s is not printable ASCII", i, strconv.QuoteRune(rune(entry.Front)))
		}
		if !printable(entry.Rear) {
			return nil, configErrorf("NewPalette",
				"entry %d: rear symbol %s is not printable ASCII", i, strconv.QuoteRune(rune(entry.Rear)))
		}
		if j, ok := front[entry.Front]; ok {
			return nil, configErrorf("NewPalette",
				"entries %d and %d share front symbol %q", j, i, entry.Front)
		}
		if j, ok := rear[entry.Rear]; ok {
			return nil, configErrorf("NewPalette",
				"entries %d and %d share rear symbol %q", j, i, entry.Rear)
		}

		front[entry.Front] = i
		rear[entry.Rear] = i

		p.entries[i] = entry
		p.lab[i] = ToPerceptual(entry.Color)
	}

	return p, nil
}

func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the i-th entry in declaration order.
func (p *Palette) Entry(i int) PaletteEntry {
	return p.entries[i]
}

// Entries returns a copy of the entries in declaration order.
func (p *Palette) Entries() []PaletteEntry {
	out := make([]PaletteEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Classify returns the entry nearest to the pixel in L*a*b* space. When two
// entries are equally near, the one declared first wins. Only an empty
// palette, which NewPalette never returns, makes it fail.
func (p *Palette) Classify(px Pixel) (PaletteEntry, error) {
	if p == nil || len(p.entries) == 0 {
		return PaletteEntry{}, configErrorf("Classify", "palette must have at least one entry")
	}

	return p.entries[p.nearest(ToPerceptual(px))], nil
}

func (p *Palette) nearest(lab PerceptualColor) int {
	best := 0
	bestDist := lab.Distance(p.lab[0])

	for i := 1; i < len(p.lab); i++ {
		// Strictly less keeps the earliest entry on ties.
		if d := lab.Distance(p.lab[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}
