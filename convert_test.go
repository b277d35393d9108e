package knitter

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	// A narrow silhouette: blank counts per image row are 1, 0, 2.
	grid := mustGrid(t, 3, 3,
		white, black, black,
		black, yellow, black,
		white, black, white,
	)

	tests := []struct {
		name     string
		opts     Options
		expected Pattern
	}{
		{
			name:     "front bed only",
			opts:     Options{},
			expected: Pattern{" --", "-x-", " - "},
		},
		{
			name: "dual bed",
			opts: Options{DualBed: true},
			expected: Pattern{
				" --", " oo",
				"-x-", "oyo",
				" - ", " o ",
			},
		},
		{
			name: "padding",
			opts: Options{
				AddPadding: true,
				Padding:    PaddingPolicy{IncreaseCount: 1, DecreaseCount: 2},
			},
			expected: Pattern{" --", "$$$", "$$$", "-x-", "$$$", " - "},
		},
		{
			name: "padding is ignored unless enabled",
			opts: Options{
				Padding: UniformPadding(4),
			},
			expected: Pattern{" --", "-x-", " - "},
		},
		{
			name: "dual bed with uniform padding",
			opts: Options{
				DualBed:    true,
				AddPadding: true,
				Padding:    UniformPadding(1),
			},
			expected: Pattern{
				" --", " oo",
				"$$$",
				"-x-", "oyo",
				"$$$",
				" - ", " o ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, err := Convert(grid, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pattern)
		})
	}
}

func TestConvertEmptyImage(t *testing.T) {
	pattern, err := Convert(mustGrid(t, 0, 0), Options{AddPadding: true})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Nil(t, pattern)

	pattern, err = Convert(nil, Options{})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Nil(t, pattern)

	pattern, err = ConvertImage(image.NewRGBA(image.Rect(0, 0, 0, 0)), Options{})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Nil(t, pattern)
}

func TestConvertInvalidOptions(t *testing.T) {
	grid := mustGrid(t, 1, 1, black)

	_, err := Convert(grid, Options{Width: -1})
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = Convert(grid, Options{AddPadding: true, Padding: PaddingPolicy{Spacer: '\t'}})
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = Convert(grid, Options{AddPadding: true, Padding: UniformPadding(MaxSpacers + 1)})
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = Convert(grid, Options{AddPadding: true, Padding: PaddingPolicy{DecreaseCount: 3000000}})
	assert.True(t, errors.Is(err, ErrConfiguration))

	pattern, err := Convert(grid, Options{AddPadding: true, Padding: UniformPadding(MaxSpacers)})
	require.NoError(t, err)
	assert.Equal(t, Pattern{"-"}, pattern)
}

func TestConvertIsRepeatable(t *testing.T) {
	grid := mustGrid(t, 2, 3, black, white, white, white, black, black)
	opts := Options{DualBed: true, AddPadding: true, Padding: PaddingPolicy{IncreaseCount: 2, DecreaseCount: 1}}

	first, err := Convert(grid, opts)
	require.NoError(t, err)
	second, err := Convert(grid, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvertImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.Black)
		img.Set(x, 1, color.White)
	}

	pattern, err := ConvertImage(img, Options{})
	require.NoError(t, err)
	assert.Equal(t, Pattern{"----", "    "}, pattern)
}

func TestConvertImageResize(t *testing.T) {
	// Left half black, right half yellow.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.RGBA{R: 255, G: 255, A: 255})
			}
		}
	}

	pattern, err := ConvertImage(img, Options{Width: 4})
	require.NoError(t, err)
	require.Len(t, pattern, 4)
	for _, row := range pattern {
		assert.Equal(t, "--xx", row)
	}
}
