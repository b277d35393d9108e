package knitter

import "strings"

// Default symbols used by PaddingPolicy when left unset.
const (
	DefaultBlank  = ' '
	DefaultSpacer = '$'
)

// MaxSpacers is the largest accepted IncreaseCount or DecreaseCount.
const MaxSpacers = 64

// PaddingPolicy controls how many spacer rows are inserted where the number
// of blank symbols changes between adjacent rows. Spacer rows leave room in
// the pattern for the operator to carry out increase and decrease edits.
type PaddingPolicy struct {
	// IncreaseCount spacers follow a row whose successor has more blanks.
	IncreaseCount uint
	// DecreaseCount spacers follow a row whose successor has fewer blanks.
	DecreaseCount uint

	// Blank is the "no stitch" symbol that is counted. Zero means DefaultBlank.
	Blank byte
	// Spacer fills inserted rows. Zero means DefaultSpacer.
	Spacer byte
}

// UniformPadding returns a policy that inserts n spacers on any change in
// blank count, regardless of direction.
func UniformPadding(n uint) PaddingPolicy {
	return PaddingPolicy{IncreaseCount: n, DecreaseCount: n}
}

func (p PaddingPolicy) blank() byte {
	if p.Blank == 0 {
		return DefaultBlank
	}
	return p.Blank
}

func (p PaddingPolicy) spacer() byte {
	if p.Spacer == 0 {
		return DefaultSpacer
	}
	return p.Spacer
}

// BlankCount returns the number of blank symbols in row.
func (p PaddingPolicy) BlankCount(row string) int {
	return strings.Count(row, string(p.blank()))
}

// Apply returns a copy of rows with spacer rows inserted after every row
// whose blank count differs from the next row's. Each spacer is as long as
// the row it follows. Comparisons always use the original rows, never the
// inserted spacers, and rows is not modified.
func (p PaddingPolicy) Apply(rows Pattern) Pattern {
	if len(rows) < 2 {
		out := make(Pattern, len(rows))
		copy(out, rows)
		return out
	}

	counts := make([]int, len(rows))
	for i, row := range rows {
		counts[i] = p.BlankCount(row)
	}

	out := make(Pattern, 0, len(rows))
	for i, row := range rows {
		out = append(out, row)
		if i == len(rows)-1 {
			break
		}

		var n uint
		switch {
		case counts[i] < counts[i+1]:
			n = p.IncreaseCount
		case counts[i] > counts[i+1]:
			n = p.DecreaseCount
		}

		if n == 0 {
			continue
		}

		spacer := strings.Repeat(string(p.spacer()), len(row))
		for j := uint(0); j < n; j++ {
			out = append(out, spacer)
		}
	}

	return out
}
