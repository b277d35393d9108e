package knitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddingApply(t *testing.T) {
	tests := []struct {
		name     string
		policy   PaddingPolicy
		rows     Pattern
		expected Pattern
	}{
		{
			name:     "empty pattern",
			policy:   UniformPadding(2),
			rows:     Pattern{},
			expected: Pattern{},
		},
		{
			name:     "single row",
			policy:   UniformPadding(2),
			rows:     Pattern{"- -"},
			expected: Pattern{"- -"},
		},
		{
			name:     "increase then decrease",
			policy:   PaddingPolicy{IncreaseCount: 1, DecreaseCount: 1},
			rows:     Pattern{"-", " ", "-"},
			expected: Pattern{"-", "$", " ", "$", "-"},
		},
		{
			name:     "independent counts",
			policy:   PaddingPolicy{IncreaseCount: 1, DecreaseCount: 3},
			rows:     Pattern{"---", "- -", "---"},
			expected: Pattern{"---", "$$$", "- -", "$$$", "$$$", "$$$", "---"},
		},
		{
			name:     "equal blank counts insert nothing",
			policy:   UniformPadding(5),
			rows:     Pattern{"- -", " --", "-- "},
			expected: Pattern{"- -", " --", "-- "},
		},
		{
			name:     "zero increase count",
			policy:   PaddingPolicy{IncreaseCount: 0, DecreaseCount: 2},
			rows:     Pattern{"--", "- ", "--"},
			expected: Pattern{"--", "- ", "$$", "$$", "--"},
		},
		{
			name:     "uniform policy is direction insensitive",
			policy:   UniformPadding(2),
			rows:     Pattern{"xx", "x ", "xx"},
			expected: Pattern{"xx", "$$", "$$", "x ", "$$", "$$", "xx"},
		},
		{
			name:     "custom blank and spacer",
			policy:   PaddingPolicy{IncreaseCount: 1, DecreaseCount: 1, Blank: '.', Spacer: '*'},
			rows:     Pattern{"- -", "-.-"},
			expected: Pattern{"- -", "***", "-.-"},
		},
		{
			name:     "spacer takes the length of the triggering row",
			policy:   UniformPadding(1),
			rows:     Pattern{"----", "  "},
			expected: Pattern{"----", "$$$$", "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.Apply(tt.rows))
		})
	}
}

func TestPaddingComparesOriginalRows(t *testing.T) {
	// The spacer inserted after row 0 has no blanks; row 1 must still be
	// compared against row 2, not against the spacer.
	policy := PaddingPolicy{IncreaseCount: 1, DecreaseCount: 1}
	rows := Pattern{"--", "  ", "  "}

	assert.Equal(t, Pattern{"--", "$$", "  ", "  "}, policy.Apply(rows))
}

func TestPaddingDoesNotModifyInput(t *testing.T) {
	policy := UniformPadding(3)
	rows := Pattern{"-", " ", "-", "-", " "}
	orig := append(Pattern(nil), rows...)

	first := policy.Apply(rows)
	second := policy.Apply(rows)

	assert.Equal(t, orig, rows)
	assert.Equal(t, first, second)
}

func TestPaddingPreservesOrder(t *testing.T) {
	policy := PaddingPolicy{IncreaseCount: 2, DecreaseCount: 1}
	rows := Pattern{"a  ", "aa ", "a  ", "aaa", "   "}

	var kept Pattern
	for _, row := range policy.Apply(rows) {
		if row != "$$$" {
			kept = append(kept, row)
		}
	}
	assert.Equal(t, rows, kept)
}

func TestBlankCount(t *testing.T) {
	assert.Equal(t, 2, PaddingPolicy{}.BlankCount("- x "))
	assert.Equal(t, 0, PaddingPolicy{}.BlankCount("-x-"))
	assert.Equal(t, 1, PaddingPolicy{Blank: 'x'}.BlankCount("- x "))
}
