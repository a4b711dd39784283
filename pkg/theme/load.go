package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/graphics"
)

// File is the decoded shape of a theme file. Every field is optional; missing
// values keep the defaults of the selected brightness.
type File struct {
	Name       string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Brightness string      `yaml:"brightness,omitempty" toml:"brightness,omitempty"`
	Colors     ColorsFile  `yaml:"colors,omitempty" toml:"colors,omitempty"`
	Box        *BoxFile    `yaml:"box,omitempty" toml:"box,omitempty"`
	Slider     *SliderFile `yaml:"slider,omitempty" toml:"slider,omitempty"`
}

// ColorsFile holds hex colors or SVG color keywords.
type ColorsFile struct {
	Background string   `yaml:"background,omitempty" toml:"background,omitempty"`
	Surface    string   `yaml:"surface,omitempty" toml:"surface,omitempty"`
	Outline    string   `yaml:"outline,omitempty" toml:"outline,omitempty"`
	Primary    string   `yaml:"primary,omitempty" toml:"primary,omitempty"`
	Disabled   string   `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Palette    []string `yaml:"palette,omitempty" toml:"palette,omitempty"`
}

// BoxFile overrides BoxTheme.
type BoxFile struct {
	Spacing *float64 `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Padding *float64 `yaml:"padding,omitempty" toml:"padding,omitempty"`
	HAlign  string   `yaml:"h_align,omitempty" toml:"h_align,omitempty"`
	VAlign  string   `yaml:"v_align,omitempty" toml:"v_align,omitempty"`
}

// SliderFile overrides SliderTheme.
type SliderFile struct {
	Width        *float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height       *float64 `yaml:"height,omitempty" toml:"height,omitempty"`
	Padding      *float64 `yaml:"padding,omitempty" toml:"padding,omitempty"`
	ButtonWidth  *float64 `yaml:"button_width,omitempty" toml:"button_width,omitempty"`
	ButtonHeight *float64 `yaml:"button_height,omitempty" toml:"button_height,omitempty"`
	Orientation  string   `yaml:"orientation,omitempty" toml:"orientation,omitempty"`
}

var (
	alignments   = []string{"leading", "center", "trailing"}
	orientations = []string{"horizontal", "vertical"}
)

// Load reads and parses a theme file. Files ending in .toml are decoded as
// TOML, everything else as YAML.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	t, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML theme. Unknown alignment, orientation or brightness
// names are rejected rather than defaulted.
func Parse(data []byte) (*Theme, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.PaneError{Op: "theme.Parse", Kind: errors.KindParsing, Err: err}
	}
	return f.Resolve()
}

// ParseTOML decodes a TOML theme with the same keys as the YAML form.
func ParseTOML(data []byte) (*Theme, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &errors.PaneError{Op: "theme.ParseTOML", Kind: errors.KindParsing, Err: err}
	}
	return f.Resolve()
}

// Resolve applies the file on top of the defaults for its brightness.
func (f *File) Resolve() (*Theme, error) {
	var base *Theme
	switch strings.ToLower(f.Brightness) {
	case "", "light":
		base = Default()
	case "dark":
		base = DefaultDark()
	default:
		return nil, errors.Config("theme.Resolve", fmt.Errorf("unknown brightness %q", f.Brightness))
	}
	return f.ApplyTo(base)
}

// ApplyTo returns a copy of base with the file's values applied. base is
// left untouched; Brightness is not consulted.
func (f *File) ApplyTo(base *Theme) (*Theme, error) {
	t := base.Copy()
	if f.Name != "" {
		t.Name = f.Name
	}
	if err := f.Colors.apply(&t.ColorScheme); err != nil {
		return nil, err
	}
	if f.Box != nil {
		if err := f.Box.apply(&t.Box); err != nil {
			return nil, err
		}
	}
	if f.Slider != nil {
		if err := f.Slider.apply(&t.Slider); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (c ColorsFile) apply(cs *ColorScheme) error {
	fields := []struct {
		src string
		dst *graphics.Color
	}{
		{c.Background, &cs.Background},
		{c.Surface, &cs.Surface},
		{c.Outline, &cs.Outline},
		{c.Primary, &cs.Primary},
		{c.Disabled, &cs.Disabled},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		col, err := graphics.ParseColor(f.src)
		if err != nil {
			return &errors.PaneError{Op: "theme.Resolve", Kind: errors.KindParsing, Err: err}
		}
		*f.dst = col
	}
	if len(c.Palette) > 0 {
		palette := make([]graphics.Color, 0, len(c.Palette))
		for _, s := range c.Palette {
			col, err := graphics.ParseColor(s)
			if err != nil {
				return &errors.PaneError{Op: "theme.Resolve", Kind: errors.KindParsing, Err: err}
			}
			palette = append(palette, col)
		}
		cs.Palette = palette
	}
	return nil
}

func (b *BoxFile) apply(bt *BoxTheme) error {
	if b.Spacing != nil {
		bt.Spacing = *b.Spacing
	}
	if b.Padding != nil {
		bt.Padding = *b.Padding
	}
	if b.HAlign != "" {
		if err := checkName("box.h_align", b.HAlign, alignments, errors.ErrInvalidAlignment); err != nil {
			return err
		}
		bt.HAlign = b.HAlign
	}
	if b.VAlign != "" {
		if err := checkName("box.v_align", b.VAlign, alignments, errors.ErrInvalidAlignment); err != nil {
			return err
		}
		bt.VAlign = b.VAlign
	}
	return nil
}

func (s *SliderFile) apply(st *SliderTheme) error {
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{s.Width, &st.Width},
		{s.Height, &st.Height},
		{s.Padding, &st.Padding},
		{s.ButtonWidth, &st.ButtonWidth},
		{s.ButtonHeight, &st.ButtonHeight},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if s.Orientation != "" {
		if err := checkName("slider.orientation", s.Orientation, orientations, errors.ErrInvalidOrientation); err != nil {
			return err
		}
		st.Orientation = s.Orientation
	}
	return nil
}

func checkName(field, value string, allowed []string, sentinel error) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.Config("theme.Resolve", fmt.Errorf("%s %q: %w", field, value, sentinel))
}

