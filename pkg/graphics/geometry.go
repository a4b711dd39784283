package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// ClampNonNegative returns s with negative dimensions raised to zero.
func (s Size) ClampNonNegative() Size {
	return Size{Width: math.Max(0, s.Width), Height: math.Max(0, s.Height)}
}

// Clamp returns s constrained component-wise to [lo, hi]. A zero or negative
// upper bound on an axis means the axis is unbounded.
func (s Size) Clamp(lo, hi Size) Size {
	return Size{
		Width:  clampDim(s.Width, lo.Width, hi.Width),
		Height: clampDim(s.Height, lo.Height, hi.Height),
	}
}

// Half returns half of each dimension.
func (s Size) Half() Size {
	return Size{Width: s.Width * 0.5, Height: s.Height * 0.5}
}

func clampDim(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return math.Max(0, v)
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOffsetSize constructs a Rect anchored at o with size s.
func RectFromOffsetSize(o Offset, s Size) Rect {
	return RectFromLTWH(o.X, o.Y, s.Width, s.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// ApproxEqual reports whether two rects match within floating-point tolerance.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.Left, other.Left) && floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) && floatEqual(r.Bottom, other.Bottom)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// EdgeInsets describes a four-sided inset such as padding.
type EdgeInsets struct {
	Top, Right, Bottom, Left float64
}

// EdgeInsetsAll creates insets with the same value on all sides.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeInsetsSymmetric creates insets with vertical (top/bottom) and
// horizontal (left/right) values.
func EdgeInsetsSymmetric(vertical, horizontal float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the sum of Left and Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Leading returns the top-left inset as an offset.
func (e EdgeInsets) Leading() Offset {
	return Offset{X: e.Left, Y: e.Top}
}

// Deflate returns s reduced by the insets, never negative.
func (e EdgeInsets) Deflate(s Size) Size {
	return Size{Width: s.Width - e.Horizontal(), Height: s.Height - e.Vertical()}.ClampNonNegative()
}
