package graphics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#336699")
	require.NoError(t, err)
	assert.Equal(t, RGB(0x33, 0x66, 0x99), c)
	assert.Equal(t, "#336699ff", c.Hex())

	c, err = ParseHex("#33669980")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.NRGBA().A)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestParseColorKeywords(t *testing.T) {
	c, err := ParseColor("SteelBlue")
	require.NoError(t, err)
	assert.Equal(t, RGB(70, 130, 180), c)

	c, err = ParseColor("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, ColorWhite, c)

	_, err = ParseColor("blurple")
	assert.Error(t, err)
}

func TestColorConversions(t *testing.T) {
	c := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, c.NRGBA())
	assert.Equal(t, uint8(0), c.WithAlpha(0).NRGBA().A)
	assert.Equal(t, ColorTransparent, ColorBlack.WithAlpha(0)&0xFF000000)
}
