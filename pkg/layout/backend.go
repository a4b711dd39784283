package layout

import (
	"github.com/go-drift/pane/pkg/graphics"
	"github.com/go-drift/pane/pkg/theme"
)

// Geometry is what a rendering backend receives for one validated widget.
// All rectangles are in root coordinates.
type Geometry struct {
	Widget   *Widget
	Name     string
	Depth    int
	Bounds   graphics.Rect
	Clip     graphics.Rect
	Mask     graphics.Rect
	Masked   bool
	Disabled bool
	Theme    *theme.Theme
}

// GeometryOf snapshots the current geometry of w.
func GeometryOf(w *Widget) Geometry {
	origin := w.GlobalPosition()
	mask, masked := w.EffectiveMask()
	return Geometry{
		Widget:   w,
		Name:     w.name,
		Depth:    w.depth,
		Bounds:   graphics.RectFromOffsetSize(origin, w.size),
		Clip:     w.clip.Rect.Translate(origin.X, origin.Y),
		Mask:     mask,
		Masked:   masked,
		Disabled: w.disabled,
		Theme:    w.theme,
	}
}

// Backend consumes the geometry produced by a validation pass. The layout
// engine never draws; it only hands over authoritative rectangles.
type Backend interface {
	// BeginFrame is called once per flush that validated something.
	BeginFrame(root *Widget) error
	// DrawWidget receives widgets parents first.
	DrawWidget(g Geometry) error
	// EndFrame finishes the frame.
	EndFrame() error
}
