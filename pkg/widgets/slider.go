package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/graphics"
	"github.com/go-drift/pane/pkg/layout"
	"github.com/go-drift/pane/pkg/theme"
)

// SliderOptions configures a Slider. Zero-valued geometry falls back to the
// theme's slider defaults.
type SliderOptions struct {
	Name string
	Min  float64
	Max  float64
	// Value is the initial value; it is clamped to [Min, Max].
	Value       float64
	Orientation layout.Orientation
	Theme       *theme.Theme

	// Width and Height size the slider along and across its track.
	Width        float64
	Height       float64
	Padding      *float64
	ButtonWidth  float64
	ButtonHeight float64

	// Transform remaps the clamped value returned by Value. RawValue is
	// never transformed.
	Transform func(raw float64) float64
	// OnChange is called after DragTo with the transformed value.
	OnChange func(value float64)
}

// Slider is a composite of three widgets: the slider itself, an expanding
// track, and a fixed-size button the track positions by hand.
//
// The button's main-axis position is the slider's state. It is written
// under bypass so moving the handle never re-lays out the tree, and
// Value derives the number back from that position.
type Slider struct {
	root   *layout.Widget
	track  *layout.Widget
	button *layout.Widget

	axis     layout.Axis
	min, max float64
	value    float64

	Transform func(raw float64) float64
	OnChange  func(value float64)
}

// NewSlider builds the slider tree and places the button for the initial
// value once the track is first laid out.
func NewSlider(opts SliderOptions) (*Slider, error) {
	if err := opts.Orientation.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(opts.Min) || math.IsNaN(opts.Max) || opts.Max < opts.Min {
		return nil, errors.Config("widgets.NewSlider",
			fmt.Errorf("invalid range [%v, %v]", opts.Min, opts.Max))
	}

	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	st := th.Slider
	width := orDefault(opts.Width, st.Width)
	height := orDefault(opts.Height, st.Height)
	bw := orDefault(opts.ButtonWidth, st.ButtonWidth)
	bh := orDefault(opts.ButtonHeight, st.ButtonHeight)
	padding := st.Padding
	if opts.Padding != nil {
		padding = *opts.Padding
	}

	name := opts.Name
	if name == "" {
		name = "slider"
	}

	s := &Slider{
		axis:      opts.Orientation.Axis(),
		min:       opts.Min,
		max:       opts.Max,
		Transform: opts.Transform,
		OnChange:  opts.OnChange,
	}
	s.value = s.clamp(opts.Value)

	boxKind, size, buttonSize := layout.KindHBox, graphics.Size{Width: width, Height: height}, graphics.Size{Width: bw, Height: bh}
	trackH, trackV := layout.AlignLeading, layout.AlignCenter
	if opts.Orientation == layout.OrientationVertical {
		boxKind = layout.KindVBox
		size = graphics.Size{Width: height, Height: width}
		buttonSize = graphics.Size{Width: bh, Height: bw}
		trackH, trackV = layout.AlignCenter, layout.AlignLeading
	}

	s.root = layout.NewWidget(name)
	if _, err := s.root.UseLayout(boxKind); err != nil {
		return nil, err
	}
	s.root.SetPadding(graphics.EdgeInsetsAll(padding))
	s.root.SetSize(size)

	s.track = layout.NewWidget(name + ".track")
	if err := s.track.SetPolicies(layout.PolicyExpanding, layout.PolicyExpanding); err != nil {
		return nil, err
	}
	if err := s.track.Layout().SetAlignment(trackH, trackV); err != nil {
		return nil, err
	}
	s.track.SetOnLayout(func(*layout.Widget) { s.sync() })

	s.button = layout.NewWidget(name + ".button")
	s.button.SetSize(buttonSize)

	if err := s.root.AddChild(s.track); err != nil {
		return nil, err
	}
	if err := s.track.AddChild(s.button); err != nil {
		return nil, err
	}
	s.root.SetTheme(th)
	return s, nil
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Widget returns the slider's root widget for insertion into a tree.
func (s *Slider) Widget() *layout.Widget {
	return s.root
}

// Track returns the expanding track widget.
func (s *Slider) Track() *layout.Widget {
	return s.track
}

// Button returns the handle widget.
func (s *Slider) Button() *layout.Widget {
	return s.button
}

// Range returns the value bounds.
func (s *Slider) Range() (lo, hi float64) {
	return s.min, s.max
}

// SetRange changes the bounds, reclamps the stored value and moves the
// button to match.
func (s *Slider) SetRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || hi < lo {
		return errors.Config("widgets.Slider.SetRange",
			fmt.Errorf("invalid range [%v, %v]", lo, hi))
	}
	s.min, s.max = lo, hi
	s.value = s.clamp(s.value)
	s.sync()
	return nil
}

// RawValue returns the stored value before Transform.
func (s *Slider) RawValue() float64 {
	return s.value
}

// SetValue clamps v, stores it and moves the button without invalidating.
func (s *Slider) SetValue(v float64) {
	s.value = s.clamp(v)
	s.sync()
}

// Value recomputes the value from the button position, clamps it and
// applies Transform. Before the track has been laid out the stored value
// stands in for the geometry.
func (s *Slider) Value() float64 {
	v := s.valueFromGeometry()
	if s.Transform != nil {
		return s.Transform(v)
	}
	return v
}

// DragTo centres the button on pos, a main-axis coordinate in track space,
// and updates the stored value from the resulting geometry.
func (s *Slider) DragTo(pos float64) {
	if s.button.Disabled() {
		return
	}
	travel := s.travel()
	offset := pos - s.axis.Extent(s.button.Size())/2
	s.place(math.Max(0, math.Min(offset, travel)))
	s.value = s.valueFromGeometry()
	layout.Logger().Debug("slider drag", "slider", s.root.Name(), "pos", pos, "value", s.value)
	if s.OnChange != nil {
		s.notify()
	}
}

// notify runs OnChange. A panicking callback is reported and does not
// unwind into the pointer layer.
func (s *Slider) notify() {
	defer errors.Recover("widgets.Slider.OnChange")
	s.OnChange(s.Value())
}

// travel is how far the button can move along the track.
func (s *Slider) travel() float64 {
	return math.Max(0, s.axis.Extent(s.track.ContentSize())-s.axis.Extent(s.button.Size()))
}

func (s *Slider) fraction(v float64) float64 {
	span := s.max - s.min
	if span == 0 {
		return 0
	}
	return (v - s.min) / span
}

func (s *Slider) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.min
	}
	return math.Max(s.min, math.Min(v, s.max))
}

func (s *Slider) valueFromGeometry() float64 {
	travel := s.travel()
	if travel <= 0 {
		return s.value
	}
	frac := s.axis.Coord(s.button.Position()) / travel
	return s.clamp(s.min + frac*(s.max-s.min))
}

// sync places the button for the stored value. It runs from the track's
// layout hook so a resized track keeps the handle in proportion.
func (s *Slider) sync() {
	s.place(s.fraction(s.value) * s.travel())
}

// place moves the button along the main axis under bypass, then validates
// it directly so the backend sees the new position on the next flush.
func (s *Slider) place(offset float64) {
	s.button.WithBypass(func() {
		s.button.SetPosition(s.axis.WithCoord(s.button.Position(), offset))
	})
	s.button.Validate()
}
