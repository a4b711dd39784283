// Package theme holds the configuration values the widget tree treats as
// opaque inputs: colors for backends and default geometry for catalog widgets.
package theme

import (
	"log/slog"

	"github.com/jinzhu/copier"

	"github.com/go-drift/pane/pkg/graphics"
)

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme defines the colors a backend uses to draw widget bounds.
type ColorScheme struct {
	Background graphics.Color
	Surface    graphics.Color
	Outline    graphics.Color
	Primary    graphics.Color
	Disabled   graphics.Color
	// Palette is indexed by tree depth when filling widget bounds.
	Palette []graphics.Color
}

// BoxTheme holds defaults for box and panel containers.
type BoxTheme struct {
	Spacing float64
	Padding float64
	HAlign  string
	VAlign  string
}

// SliderTheme holds defaults for sliders.
type SliderTheme struct {
	Width        float64
	Height       float64
	Padding      float64
	ButtonWidth  float64
	ButtonHeight float64
	Orientation  string
}

// Theme contains all theme configuration for a widget tree.
type Theme struct {
	Name        string
	Brightness  Brightness
	ColorScheme ColorScheme
	Box         BoxTheme
	Slider      SliderTheme
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Background: graphics.RGB(0xFA, 0xFA, 0xFA),
		Surface:    graphics.RGB(0xFF, 0xFF, 0xFF),
		Outline:    graphics.RGB(0x79, 0x74, 0x7E),
		Primary:    graphics.RGB(0x67, 0x50, 0xA4),
		Disabled:   graphics.RGB(0xBD, 0xBD, 0xBD),
		Palette: []graphics.Color{
			graphics.RGB(0xE8, 0xDE, 0xF8),
			graphics.RGB(0xD0, 0xBC, 0xFF),
			graphics.RGB(0xB6, 0x9D, 0xF8),
			graphics.RGB(0x9A, 0x82, 0xDB),
		},
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Background: graphics.RGB(0x1C, 0x1B, 0x1F),
		Surface:    graphics.RGB(0x2B, 0x29, 0x30),
		Outline:    graphics.RGB(0x93, 0x8F, 0x99),
		Primary:    graphics.RGB(0xD0, 0xBC, 0xFF),
		Disabled:   graphics.RGB(0x49, 0x45, 0x4F),
		Palette: []graphics.Color{
			graphics.RGB(0x38, 0x1E, 0x72),
			graphics.RGB(0x4F, 0x37, 0x8B),
			graphics.RGB(0x63, 0x4B, 0x9F),
			graphics.RGB(0x7F, 0x67, 0xBE),
		},
	}
}

// Default returns the default light theme.
func Default() *Theme {
	return &Theme{
		Name:        "light",
		Brightness:  BrightnessLight,
		ColorScheme: LightColorScheme(),
		Box: BoxTheme{
			HAlign: "leading",
			VAlign: "leading",
		},
		Slider: SliderTheme{
			Width:        400,
			Height:       28,
			Padding:      4,
			ButtonWidth:  20,
			ButtonHeight: 20,
			Orientation:  "horizontal",
		},
	}
}

// DefaultDark returns the default dark theme.
func DefaultDark() *Theme {
	t := Default()
	t.Name = "dark"
	t.Brightness = BrightnessDark
	t.ColorScheme = DarkColorScheme()
	return t
}

// Copy returns a deep copy so callers can mutate without affecting t.
func (t *Theme) Copy() *Theme {
	var c Theme
	if err := copier.CopyWithOption(&c, t, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("theme.Copy", "err", err)
	}
	return &c
}

// PaletteColor returns the palette entry for a tree depth, cycling through
// the palette. An empty palette falls back to Surface.
func (t *Theme) PaletteColor(depth int) graphics.Color {
	p := t.ColorScheme.Palette
	if len(p) == 0 {
		return t.ColorScheme.Surface
	}
	return p[depth%len(p)]
}
