package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1F6FEB")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x1f, G: 0x6f, B: 0xeb}, c)

	c, err = ParseHex("ffffff")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, c)

	_, err = ParseHex("#fff")
	require.Error(t, err)
	_, err = ParseHex("not-a-color")
	require.Error(t, err)
	_, err = ParseHex("")
	require.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#1f6feb", RGB{R: 0x1f, G: 0x6f, B: 0xeb}.Hex())
	assert.Equal(t, "#000000", RGB{}.Hex())
}

func TestRelativeLuminance_Extremes(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance(RGB{}), 1e-9)
	assert.InDelta(t, 1.0, RelativeLuminance(RGB{R: 255, G: 255, B: 255}), 1e-9)
}

func TestRatio_BlackOnWhite(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}

	assert.InDelta(t, 21.0, Ratio(black, white), 0.01)
	// Argument order does not matter.
	assert.InDelta(t, Ratio(black, white), Ratio(white, black), 1e-9)
}

func TestRatio_SameColor(t *testing.T) {
	gray := RGB{R: 128, G: 128, B: 128}
	assert.InDelta(t, 1.0, Ratio(gray, gray), 1e-9)
}

func TestRatio_KnownPair(t *testing.T) {
	// White on #767676 is the canonical 4.54:1 AA boundary example.
	white := RGB{R: 255, G: 255, B: 255}
	gray := RGB{R: 0x76, G: 0x76, B: 0x76}

	assert.InDelta(t, 4.54, Ratio(white, gray), 0.01)
}

func TestRating_Bands(t *testing.T) {
	assert.Equal(t, "AAA", Rating(21.0))
	assert.Equal(t, "AAA", Rating(7.0))
	assert.Equal(t, "AA", Rating(6.99))
	assert.Equal(t, "AA", Rating(4.5))
	assert.Equal(t, "AA18", Rating(4.49))
	assert.Equal(t, "AA18", Rating(3.0))
	assert.Equal(t, "Fail", Rating(2.99))
	assert.Equal(t, "Fail", Rating(1.0))
}
