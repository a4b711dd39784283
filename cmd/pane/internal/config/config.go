// Package config loads widget tree documents for the pane CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/graphics"
	"github.com/go-drift/pane/pkg/layout"
	"github.com/go-drift/pane/pkg/theme"
	"github.com/go-drift/pane/pkg/widgets"
)

// CurrentFormat is the newest document format this build understands.
// Documents of the same major version and an equal or older minor load.
const CurrentFormat = "v1.1"

// Document is a widget tree file.
type Document struct {
	Format string `yaml:"format,omitempty"`
	// Theme is a theme file path, relative to the document.
	Theme string `yaml:"theme,omitempty"`
	Root  Node   `yaml:"root"`

	dir string
}

// Node describes one widget. Vectors are [x, y] or [width, height].
// Padding takes one value for all sides, two for vertical and horizontal,
// or four in top, right, bottom, left order.
type Node struct {
	Name     string    `yaml:"name,omitempty"`
	Kind     string    `yaml:"kind,omitempty"`
	Size     []float64 `yaml:"size,omitempty"`
	Position []float64 `yaml:"position,omitempty"`
	Padding  []float64 `yaml:"padding,omitempty"`
	Min      []float64 `yaml:"min,omitempty"`
	Max      []float64 `yaml:"max,omitempty"`
	HPolicy  string    `yaml:"h_policy,omitempty"`
	VPolicy  string    `yaml:"v_policy,omitempty"`
	HAlign   string    `yaml:"h_align,omitempty"`
	VAlign   string    `yaml:"v_align,omitempty"`
	Spacing  float64   `yaml:"spacing,omitempty"`
	Clip     bool      `yaml:"clip,omitempty"`
	Disabled bool      `yaml:"disabled,omitempty"`

	Slider   *SliderNode `yaml:"slider,omitempty"`
	Children []Node      `yaml:"children,omitempty"`
}

// SliderNode holds the slider-only fields of a node. A zero Max means 100.
type SliderNode struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Value       float64 `yaml:"value"`
	Orientation string  `yaml:"orientation,omitempty"`
}

// Load reads and parses a document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.dir = filepath.Dir(path)
	return doc, nil
}

// Parse decodes a document and checks its format version.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.PaneError{Op: "config.Parse", Kind: errors.KindParsing, Err: err}
	}
	if err := checkFormat(doc.Format); err != nil {
		return nil, err
	}
	return &doc, nil
}

func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	v := format
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return errors.Config("config.Parse", fmt.Errorf("invalid format version %q", format))
	}
	if semver.Major(v) != semver.Major(CurrentFormat) || semver.Compare(v, CurrentFormat) > 0 {
		return errors.Config("config.Parse",
			fmt.Errorf("format %s is not supported (this build reads %s)", format, CurrentFormat))
	}
	return nil
}

// ResolveTheme loads the theme named by override, or by the document when
// override is empty, falling back to the default theme.
func (d *Document) ResolveTheme(override string) (*theme.Theme, error) {
	path := d.ThemePath(override)
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

// ThemePath returns the theme file ResolveTheme would load, or "" for the
// default theme.
func (d *Document) ThemePath(override string) string {
	if override != "" || d.Theme == "" {
		return override
	}
	if filepath.IsAbs(d.Theme) {
		return d.Theme
	}
	return filepath.Join(d.dir, d.Theme)
}

// Tree is a built document.
type Tree struct {
	Root    *layout.Widget
	Theme   *theme.Theme
	Sliders map[string]*widgets.Slider
}

// Build creates the widget tree described by the document. An unnamed node
// is named after its parent and its index, as in "toolbar.1".
func (d *Document) Build(th *theme.Theme) (*Tree, error) {
	if th == nil {
		th = theme.Default()
	}
	t := &Tree{Theme: th, Sliders: make(map[string]*widgets.Slider)}
	root, err := t.build(d.Root, "root")
	if err != nil {
		return nil, err
	}
	root.SetTheme(th)
	t.Root = root
	return t, nil
}

func (t *Tree) build(n Node, fallback string) (*layout.Widget, error) {
	name := n.Name
	if name == "" {
		name = fallback
	}
	fail := func(err error) (*layout.Widget, error) {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	kind := strings.ToLower(strings.TrimSpace(n.Kind))
	def := layout.PolicyFixed
	if kind == "spacer" {
		def = layout.PolicyExpanding
	}
	hPolicy, vPolicy, err := parsePolicies(n, def)
	if err != nil {
		return fail(err)
	}

	var w *layout.Widget
	switch kind {
	case "", "panel", "hbox", "vbox":
		lk := layout.KindFixed
		if kind == "hbox" || kind == "vbox" {
			lk, _ = layout.ParseLayoutKind(kind)
		}
		box := widgets.Box{
			Name:    name,
			Kind:    lk,
			Theme:   t.Theme,
			Spacing: n.Spacing,
			HAlign:  n.HAlign,
			VAlign:  n.VAlign,
			HPolicy: hPolicy,
			VPolicy: vPolicy,
		}
		if n.Size != nil {
			if box.Size, err = size(n.Size, "size"); err != nil {
				return fail(err)
			}
		}
		if n.Padding != nil {
			p, err := padding(n.Padding)
			if err != nil {
				return fail(err)
			}
			box.Padding = &p
		}
		if w, err = box.Build(); err != nil {
			return fail(err)
		}
	case "spacer":
		w = widgets.NewSpacer(name)
		if err := w.SetPolicies(hPolicy, vPolicy); err != nil {
			return fail(err)
		}
	case "slider":
		if len(n.Children) > 0 {
			return fail(errors.Structure("config.Build", name, fmt.Errorf("a slider cannot have children")))
		}
		if w, err = t.buildSlider(n, name, hPolicy, vPolicy); err != nil {
			return fail(err)
		}
	default:
		return fail(errors.Config("config.Build", fmt.Errorf("kind %q: %w", n.Kind, errors.ErrInvalidLayoutKind)))
	}

	if err := applyCommon(w, n); err != nil {
		return fail(err)
	}
	for i, c := range n.Children {
		child, err := t.build(c, fmt.Sprintf("%s.%d", name, i))
		if err != nil {
			return nil, err
		}
		if err := w.AddChild(child); err != nil {
			return fail(err)
		}
	}
	return w, nil
}

func (t *Tree) buildSlider(n Node, name string, hPolicy, vPolicy layout.SizePolicy) (*layout.Widget, error) {
	opts := widgets.SliderOptions{Name: name, Theme: t.Theme, Max: 100}
	orientation := t.Theme.Slider.Orientation
	if sn := n.Slider; sn != nil {
		opts.Min, opts.Value = sn.Min, sn.Value
		if sn.Max != 0 {
			opts.Max = sn.Max
		}
		if sn.Orientation != "" {
			orientation = sn.Orientation
		}
	}
	if orientation != "" {
		o, err := layout.ParseOrientation(orientation)
		if err != nil {
			return nil, err
		}
		opts.Orientation = o
	}
	if n.Padding != nil {
		if len(n.Padding) != 1 {
			return nil, errors.Config("config.Build", fmt.Errorf("slider padding takes a single value"))
		}
		opts.Padding = &n.Padding[0]
	}
	s, err := widgets.NewSlider(opts)
	if err != nil {
		return nil, err
	}
	w := s.Widget()
	if n.Size != nil {
		sz, err := size(n.Size, "size")
		if err != nil {
			return nil, err
		}
		w.SetSize(sz)
	}
	if err := w.SetPolicies(hPolicy, vPolicy); err != nil {
		return nil, err
	}
	if _, dup := t.Sliders[name]; dup {
		return nil, errors.Structure("config.Build", name, fmt.Errorf("duplicate slider name"))
	}
	t.Sliders[name] = s
	return w, nil
}

// parsePolicies returns the node's policies, using def for axes it leaves
// unset.
func parsePolicies(n Node, def layout.SizePolicy) (h, v layout.SizePolicy, err error) {
	h, v = def, def
	if n.HPolicy != "" {
		if h, err = layout.ParseSizePolicy(n.HPolicy); err != nil {
			return
		}
	}
	if n.VPolicy != "" {
		if v, err = layout.ParseSizePolicy(n.VPolicy); err != nil {
			return
		}
	}
	return
}

func applyCommon(w *layout.Widget, n Node) error {
	if n.Position != nil {
		x, y, err := pair(n.Position, "position")
		if err != nil {
			return err
		}
		w.SetPosition(graphics.Offset{X: x, Y: y})
	}
	if n.Min != nil {
		s, err := size(n.Min, "min")
		if err != nil {
			return err
		}
		w.SetMin(s)
	}
	if n.Max != nil {
		s, err := size(n.Max, "max")
		if err != nil {
			return err
		}
		w.SetMax(s)
	}
	if n.Clip {
		w.SetClipChildren(true)
	}
	if n.Disabled {
		w.SetDisabled(true)
	}
	return nil
}

func pair(v []float64, field string) (float64, float64, error) {
	if len(v) != 2 {
		return 0, 0, errors.Config("config.Build", fmt.Errorf("%s needs 2 values, got %d", field, len(v)))
	}
	return v[0], v[1], nil
}

func size(v []float64, field string) (graphics.Size, error) {
	w, h, err := pair(v, field)
	if err != nil {
		return graphics.Size{}, err
	}
	if w < 0 || h < 0 {
		return graphics.Size{}, errors.Config("config.Build", fmt.Errorf("%s must not be negative", field))
	}
	return graphics.Size{Width: w, Height: h}, nil
}

func padding(v []float64) (graphics.EdgeInsets, error) {
	switch len(v) {
	case 1:
		return graphics.EdgeInsetsAll(v[0]), nil
	case 2:
		return graphics.EdgeInsetsSymmetric(v[0], v[1]), nil
	case 4:
		return graphics.EdgeInsets{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}, nil
	}
	return graphics.EdgeInsets{}, errors.Config("config.Build", fmt.Errorf("padding needs 1, 2 or 4 values, got %d", len(v)))
}
