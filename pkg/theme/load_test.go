package theme_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/graphics"
	"github.com/go-drift/pane/pkg/theme"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	th, err := theme.Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), th)
}

func TestParseOverrides(t *testing.T) {
	th, err := theme.Parse([]byte(`
name: ocean
brightness: dark
colors:
  primary: "#336699"
  outline: steelblue
  palette: ["#000000", "white"]
box:
  spacing: 4
  v_align: center
slider:
  padding: 0
  button_width: 12
  orientation: vertical
`))
	require.NoError(t, err)

	assert.Equal(t, "ocean", th.Name)
	assert.Equal(t, theme.BrightnessDark, th.Brightness)
	assert.Equal(t, graphics.RGB(0x33, 0x66, 0x99), th.ColorScheme.Primary)
	assert.Equal(t, graphics.RGB(70, 130, 180), th.ColorScheme.Outline)
	assert.Equal(t, []graphics.Color{graphics.ColorBlack, graphics.ColorWhite}, th.ColorScheme.Palette)
	assert.Equal(t, theme.DarkColorScheme().Background, th.ColorScheme.Background)
	assert.Equal(t, 4.0, th.Box.Spacing)
	assert.Equal(t, "center", th.Box.VAlign)
	assert.Equal(t, "leading", th.Box.HAlign)
	assert.Zero(t, th.Slider.Padding)
	assert.Equal(t, 12.0, th.Slider.ButtonWidth)
	assert.Equal(t, 20.0, th.Slider.ButtonHeight)
	assert.Equal(t, "vertical", th.Slider.Orientation)
}

func TestParseRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
	}{
		{"alignment", "box: {h_align: middle}", errors.ErrInvalidAlignment},
		{"orientation", "slider: {orientation: diagonal}", errors.ErrInvalidOrientation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := theme.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.sentinel))
			assert.Equal(t, errors.KindConfig, errors.KindOf(err))
		})
	}
}

func TestParseRejectsBrightness(t *testing.T) {
	_, err := theme.Parse([]byte("brightness: dim"))
	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := theme.Parse([]byte(`colors: {surface: "#12"}`))
	require.Error(t, err)
	assert.Equal(t, errors.KindParsing, errors.KindOf(err))

	_, err = theme.Parse([]byte(`colors: {palette: [notacolor]}`))
	require.Error(t, err)
	assert.Equal(t, errors.KindParsing, errors.KindOf(err))
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := theme.Parse([]byte("box: [1, 2"))
	require.Error(t, err)
	assert.Equal(t, errors.KindParsing, errors.KindOf(err))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file"), 0o644))

	th, err := theme.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", th.Name)

	_, err = theme.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	src := `name = "toml"
brightness = "dark"

[colors]
background = "navy"

[slider]
button_width = 30.0
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	th, err := theme.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toml", th.Name)
	assert.Equal(t, theme.BrightnessDark, th.Brightness)
	assert.Equal(t, graphics.RGB(0, 0, 0x80), th.ColorScheme.Background)
	assert.Equal(t, 30.0, th.Slider.ButtonWidth)
}

func TestParseTOMLRejectsMalformedInput(t *testing.T) {
	_, err := theme.ParseTOML([]byte("[box"))
	require.Error(t, err)
	assert.Equal(t, errors.KindParsing, errors.KindOf(err))
}

func TestApplyToLeavesBaseUntouched(t *testing.T) {
	base := theme.DefaultDark()
	spacing := 9.0
	f := theme.File{Name: "tweaked", Colors: theme.ColorsFile{Palette: []string{"red"}}, Box: &theme.BoxFile{Spacing: &spacing}}

	th, err := f.ApplyTo(base)
	require.NoError(t, err)

	assert.Equal(t, "tweaked", th.Name)
	assert.Equal(t, []graphics.Color{graphics.RGB(0xFF, 0, 0)}, th.ColorScheme.Palette)
	assert.Equal(t, 9.0, th.Box.Spacing)
	assert.Equal(t, theme.BrightnessDark, th.Brightness)

	assert.Equal(t, "dark", base.Name)
	assert.Zero(t, base.Box.Spacing)
	assert.Equal(t, theme.DarkColorScheme().Palette, base.ColorScheme.Palette)
}
