package layout

import (
	"fmt"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/graphics"
	"github.com/go-drift/pane/pkg/theme"
)

// ClipGraphic is the padding-adjusted rectangle that masks a widget's
// children. It is never drawn: Visible and Renderable stay false.
type ClipGraphic struct {
	Rect       graphics.Rect
	Visible    bool
	Renderable bool
}

// SizeProxy stands in for the space a widget reserves. It shares the
// widget's mask and is never drawn.
type SizeProxy struct {
	Size    graphics.Size
	Mask    *ClipGraphic
	Visible bool
}

// Widget is one node of the retained tree.
//
// A widget owns its children, its layout and its two size policies. The
// parent pointer is a back reference only; detaching a child clears it.
// Geometry is in the parent's coordinate space, with (0,0) at the parent's
// top-left corner outside its padding.
type Widget struct {
	name     string
	parent   *Widget // back reference for routing, not an owner
	children []*Widget
	depth    int

	layout  *Layout
	hPolicy SizePolicy
	vPolicy SizePolicy

	min      graphics.Size
	max      graphics.Size
	padding  graphics.EdgeInsets
	position graphics.Offset
	size     graphics.Size
	halfSize graphics.Size

	valid       bool
	bypassDepth int

	disabled      bool
	theme         *theme.Theme
	themeOverride bool

	clipChildren bool
	clip         *ClipGraphic
	mask         *ClipGraphic
	proxy        SizeProxy

	owner    *PipelineOwner
	onLayout func(w *Widget)
}

// NewWidget creates a detached widget with fixed policies and a fixed
// layout. New widgets start invalid so their first update lays them out.
func NewWidget(name string) *Widget {
	w := &Widget{
		name:    name,
		hPolicy: PolicyFixed,
		vPolicy: PolicyFixed,
		clip:    &ClipGraphic{},
	}
	w.layout = &Layout{kind: KindFixed, owner: w}
	return w
}

// Name returns the debug name given at construction.
func (w *Widget) Name() string {
	return w.name
}

func (w *Widget) String() string {
	return fmt.Sprintf("Widget(%s)", w.name)
}

// Layout returns the layout strategy arranging this widget's children.
func (w *Widget) Layout() *Layout {
	return w.layout
}

// SetLayout replaces the layout, rebinding l to this widget. The previous
// layout is released. The widget is invalidated.
func (w *Widget) SetLayout(l *Layout) error {
	if l == nil {
		return errors.Config("layout.Widget.SetLayout", errors.ErrInvalidLayoutKind)
	}
	if err := l.kind.Validate(); err != nil {
		return err
	}
	if old := l.owner; old != nil && old != w && old.layout == l {
		old.layout = &Layout{kind: KindFixed, owner: old}
		old.Invalidate()
	}
	if w.layout != nil && w.layout != l {
		w.layout.owner = nil
	}
	l.owner = w
	w.layout = l
	w.Invalidate()
	return nil
}

// UseLayout creates a layout of the given kind and assigns it.
func (w *Widget) UseLayout(kind LayoutKind) (*Layout, error) {
	l, err := NewLayout(kind, w)
	if err != nil {
		return nil, err
	}
	if err := w.SetLayout(l); err != nil {
		return nil, err
	}
	return l, nil
}

// HPolicy returns the horizontal size policy.
func (w *Widget) HPolicy() SizePolicy {
	return w.hPolicy
}

// VPolicy returns the vertical size policy.
func (w *Widget) VPolicy() SizePolicy {
	return w.vPolicy
}

// SetHPolicy replaces the horizontal policy. The parent's allocation for this
// widget is stale afterwards, so the parent is routed too.
func (w *Widget) SetHPolicy(p SizePolicy) error {
	return w.setPolicy(AxisHorizontal, p)
}

// SetVPolicy replaces the vertical policy.
func (w *Widget) SetVPolicy(p SizePolicy) error {
	return w.setPolicy(AxisVertical, p)
}

// SetPolicies replaces both policies.
func (w *Widget) SetPolicies(h, v SizePolicy) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if err := w.setPolicy(AxisHorizontal, h); err != nil {
		return err
	}
	return w.setPolicy(AxisVertical, v)
}

func (w *Widget) setPolicy(a Axis, p SizePolicy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	slot := &w.hPolicy
	if a == AxisVertical {
		slot = &w.vPolicy
	}
	if *slot == p {
		return nil
	}
	*slot = p
	w.invalidateAllocation(a)
	return nil
}

func (w *Widget) policy(a Axis) SizePolicy {
	if a == AxisHorizontal {
		return w.hPolicy
	}
	return w.vPolicy
}

// IsFixed reports whether the widget is fixed on every axis in a.
func (w *Widget) IsFixed(a Axis) bool {
	if a.Has(AxisHorizontal) && !w.hPolicy.IsFixed() {
		return false
	}
	if a.Has(AxisVertical) && !w.vPolicy.IsFixed() {
		return false
	}
	return true
}

// dependsOnParent reports whether a parent re-layout can change this
// widget's size.
func (w *Widget) dependsOnParent() bool {
	return !w.hPolicy.IsFixed() || !w.vPolicy.IsFixed()
}

// Size returns the current size.
func (w *Widget) Size() graphics.Size {
	return w.size
}

// SetSize sets the size, clamped to the min/max bounds, and invalidates the
// widget. When the parent's layout reads child sizes (a box, or a fixed
// layout that aligns) the parent is invalidated and scheduled too.
func (w *Widget) SetSize(s graphics.Size) {
	s = s.Clamp(w.min, w.max)
	if s == w.size || w.bypassDepth > 0 {
		w.size = s
		return
	}
	w.size = s
	w.markInvalid()
	if p := w.parent; p != nil && p.layout.readsChildSize() && p.bypassDepth == 0 {
		p.markInvalid()
	}
}

// Position returns the offset within the parent.
func (w *Widget) Position() graphics.Offset {
	return w.position
}

// SetPosition moves the widget within its parent and invalidates it.
func (w *Widget) SetPosition(p graphics.Offset) {
	if p == w.position {
		return
	}
	w.position = p
	w.Invalidate()
}

// Padding returns the inset between the bounds and the content box.
func (w *Widget) Padding() graphics.EdgeInsets {
	return w.padding
}

// SetPadding replaces the padding and invalidates the widget.
func (w *Widget) SetPadding(p graphics.EdgeInsets) {
	if p == w.padding {
		return
	}
	w.padding = p
	w.Invalidate()
}

// Min returns the lower size bound.
func (w *Widget) Min() graphics.Size {
	return w.min
}

// Max returns the upper size bound. Zero on an axis means unbounded.
func (w *Widget) Max() graphics.Size {
	return w.max
}

// SetMin sets the lower size bound and reclamps the current size.
func (w *Widget) SetMin(s graphics.Size) {
	w.setBounds(s.ClampNonNegative(), w.max)
}

// SetMax sets the upper size bound and reclamps the current size.
func (w *Widget) SetMax(s graphics.Size) {
	w.setBounds(w.min, s.ClampNonNegative())
}

func (w *Widget) setBounds(lo, hi graphics.Size) {
	if lo == w.min && hi == w.max {
		return
	}
	w.min, w.max = lo, hi
	w.size = w.size.Clamp(lo, hi)
	w.invalidateAllocation(AxisBoth)
}

// ContentSize returns the size minus padding, never negative.
func (w *Widget) ContentSize() graphics.Size {
	return w.padding.Deflate(w.size)
}

// ContentRect returns the content box in the widget's own coordinates.
func (w *Widget) ContentRect() graphics.Rect {
	return graphics.RectFromOffsetSize(w.padding.Leading(), w.ContentSize())
}

// HalfSize returns the half dimensions cached by the last Validate.
func (w *Widget) HalfSize() graphics.Size {
	return w.halfSize
}

// GlobalPosition returns the position relative to the root.
func (w *Widget) GlobalPosition() graphics.Offset {
	var p graphics.Offset
	for cur := w; cur != nil; cur = cur.parent {
		p = p.Add(cur.position)
	}
	return p
}

// GlobalBounds returns the bounds relative to the root.
func (w *Widget) GlobalBounds() graphics.Rect {
	return graphics.RectFromOffsetSize(w.GlobalPosition(), w.size)
}

// IsValid reports whether the geometry is current.
func (w *Widget) IsValid() bool {
	return w.valid
}

// BypassDepth returns the current bypass nesting depth.
func (w *Widget) BypassDepth() int {
	return w.bypassDepth
}

// Disabled reports whether the widget is disabled.
func (w *Widget) Disabled() bool {
	return w.disabled
}

// SetDisabled sets the flag on this widget and every descendant.
func (w *Widget) SetDisabled(disabled bool) {
	w.Walk(func(cur *Widget) bool {
		cur.disabled = disabled
		return true
	})
}

// Theme returns the theme in effect, or nil if none was assigned.
func (w *Widget) Theme() *theme.Theme {
	return w.theme
}

// HasThemeOverride reports whether the theme was set explicitly with
// SetThemeOverride.
func (w *Widget) HasThemeOverride() bool {
	return w.themeOverride
}

// SetTheme assigns t to this widget and to every descendant that has no
// explicit override. Overridden subtrees keep their own theme.
func (w *Widget) SetTheme(t *theme.Theme) {
	w.theme = t
	w.cascadeTheme(t)
}

// SetThemeOverride pins t on this widget so ancestor SetTheme calls stop
// here. Passing nil clears the pin and re-inherits the parent's theme.
func (w *Widget) SetThemeOverride(t *theme.Theme) {
	w.themeOverride = t != nil
	if t == nil && w.parent != nil {
		t = w.parent.theme
	}
	w.SetTheme(t)
}

func (w *Widget) cascadeTheme(t *theme.Theme) {
	for _, child := range w.children {
		if child.themeOverride {
			continue
		}
		child.theme = t
		child.cascadeTheme(t)
	}
}

// ClipGraphic returns the clip region computed by the last Validate. The
// pointer is stable for the widget's lifetime.
func (w *Widget) ClipGraphic() *ClipGraphic {
	return w.clip
}

// Mask returns the parent's clip graphic when the parent clips its
// children, else nil.
func (w *Widget) Mask() *ClipGraphic {
	return w.mask
}

// SizeProxy returns the stand-in for the space this widget reserves.
func (w *Widget) SizeProxy() *SizeProxy {
	return &w.proxy
}

// ClipsChildren reports whether children are masked by this widget's clip.
func (w *Widget) ClipsChildren() bool {
	return w.clipChildren
}

// SetClipChildren toggles masking of children by this widget's clip graphic.
func (w *Widget) SetClipChildren(clip bool) {
	if w.clipChildren == clip {
		return
	}
	w.clipChildren = clip
	for _, child := range w.children {
		child.setMask(w.childMask())
	}
}

func (w *Widget) childMask() *ClipGraphic {
	if w.clipChildren {
		return w.clip
	}
	return nil
}

func (w *Widget) setMask(m *ClipGraphic) {
	w.mask = m
	w.proxy.Mask = m
}

// EffectiveMask returns the intersection of every ancestor clip that masks
// this widget, in root coordinates. ok is false when nothing masks it.
func (w *Widget) EffectiveMask() (r graphics.Rect, ok bool) {
	for cur := w; cur.parent != nil; cur = cur.parent {
		if cur.mask == nil {
			continue
		}
		origin := cur.parent.GlobalPosition()
		m := cur.mask.Rect.Translate(origin.X, origin.Y)
		if !ok {
			r, ok = m, true
		} else {
			r = r.Intersect(m)
		}
	}
	return r, ok
}

// SetOnLayout installs a hook run after the layout is applied and before the
// widget is validated. Composite widgets use it to sync derived geometry.
func (w *Widget) SetOnLayout(fn func(w *Widget)) {
	w.onLayout = fn
}

// Owner returns the pipeline owner the widget is attached to, if any.
func (w *Widget) Owner() *PipelineOwner {
	return w.owner
}
