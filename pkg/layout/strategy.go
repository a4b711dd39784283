package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/pane/pkg/errors"
)

// LayoutKind selects how a widget arranges its children.
type LayoutKind uint8

const (
	// KindFixed leaves children where they were put and only aligns them.
	KindFixed LayoutKind = iota
	// KindHBox lays children out left to right.
	KindHBox
	// KindVBox lays children out top to bottom.
	KindVBox
)

func (k LayoutKind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindHBox:
		return "hbox"
	case KindVBox:
		return "vbox"
	default:
		return fmt.Sprintf("LayoutKind(%d)", int(k))
	}
}

// Validate rejects values outside the enumeration.
func (k LayoutKind) Validate() error {
	if int(k) >= len(applyFuncs) {
		return errors.Config("layout.LayoutKind.Validate", fmt.Errorf("%d: %w", k, errors.ErrInvalidLayoutKind))
	}
	return nil
}

// ParseLayoutKind accepts "fixed", "hbox" or "vbox".
func ParseLayoutKind(s string) (LayoutKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return KindFixed, nil
	case "hbox":
		return KindHBox, nil
	case "vbox":
		return KindVBox, nil
	}
	return 0, errors.Config("layout.ParseLayoutKind", fmt.Errorf("%q: %w", s, errors.ErrInvalidLayoutKind))
}

// applyFuncs is the dispatch table for Layout.Apply, indexed by kind.
var applyFuncs = [...]func(l *Layout, w *Widget){
	KindFixed: applyFixed,
	KindHBox:  func(l *Layout, w *Widget) { applyBox(l, w, AxisHorizontal) },
	KindVBox:  func(l *Layout, w *Widget) { applyBox(l, w, AxisVertical) },
}

// Layout arranges the children of the widget that owns it.
//
// A Layout belongs to exactly one widget. Assigning it with Widget.SetLayout
// rebinds it and invalidates the new owner.
type Layout struct {
	kind    LayoutKind
	owner   *Widget
	hAlign  Alignment
	vAlign  Alignment
	spacing float64
}

// NewLayout creates a layout bound to owner. The owner must be non-nil; the
// layout takes effect once passed to owner.SetLayout.
func NewLayout(kind LayoutKind, owner *Widget) (*Layout, error) {
	if owner == nil {
		return nil, errors.Config("layout.NewLayout", errors.ErrNilWidget)
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	return &Layout{kind: kind, owner: owner}, nil
}

// Kind returns the layout variant.
func (l *Layout) Kind() LayoutKind {
	return l.kind
}

// Owner returns the widget this layout is bound to.
func (l *Layout) Owner() *Widget {
	return l.owner
}

// Alignment returns the horizontal and vertical alignment.
func (l *Layout) Alignment() (h, v Alignment) {
	return l.hAlign, l.vAlign
}

// SetAlignment configures per-axis alignment. Both values are checked before
// either is applied.
func (l *Layout) SetAlignment(h, v Alignment) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if l.hAlign == h && l.vAlign == v {
		return nil
	}
	l.hAlign, l.vAlign = h, v
	l.invalidateOwner()
	return nil
}

// Spacing returns the gap inserted between consecutive box children.
func (l *Layout) Spacing() float64 {
	return l.spacing
}

// SetSpacing sets the gap between consecutive box children.
func (l *Layout) SetSpacing(spacing float64) error {
	if math.IsNaN(spacing) || spacing < 0 {
		return errors.Config("layout.Layout.SetSpacing", fmt.Errorf("invalid spacing %v", spacing))
	}
	if l.spacing == spacing {
		return nil
	}
	l.spacing = spacing
	l.invalidateOwner()
	return nil
}

func (l *Layout) align(a Axis) Alignment {
	if a == AxisHorizontal {
		return l.hAlign
	}
	return l.vAlign
}

// readsChildSize reports whether Apply depends on the children's sizes.
func (l *Layout) readsChildSize() bool {
	return l.kind != KindFixed || l.hAlign != AlignLeading || l.vAlign != AlignLeading
}

func (l *Layout) invalidateOwner() {
	if l.owner != nil && l.owner.layout == l {
		l.owner.Invalidate()
	}
}

// Apply positions and sizes the owner's children inside its content box.
func (l *Layout) Apply() {
	if l.owner == nil {
		return
	}
	applyFuncs[l.kind](l, l.owner)
}
