package widgets

import (
	"github.com/go-drift/pane/pkg/graphics"
	"github.com/go-drift/pane/pkg/layout"
	"github.com/go-drift/pane/pkg/theme"
)

// Box configures a container that arranges children with a box or fixed
// layout. Zero-valued fields fall back to the theme's box defaults.
//
//	row, err := widgets.Box{Name: "toolbar", Kind: layout.KindHBox, Spacing: 8}.Build(a, b, c)
type Box struct {
	Name string
	Kind layout.LayoutKind
	// Theme supplies defaults. Nil uses theme.Default.
	Theme *theme.Theme
	// Size is the initial size. Expanding axes are overwritten by the parent.
	Size    graphics.Size
	Spacing float64
	Padding *graphics.EdgeInsets
	// HAlign and VAlign override the theme alignments when non-empty.
	HAlign string
	VAlign string
	// HPolicy and VPolicy are the policies the container presents to its parent.
	HPolicy layout.SizePolicy
	VPolicy layout.SizePolicy
}

// Build creates the container widget and appends children in order.
func (b Box) Build(children ...*layout.Widget) (*layout.Widget, error) {
	th := b.Theme
	if th == nil {
		th = theme.Default()
	}

	w := layout.NewWidget(b.Name)
	l, err := w.UseLayout(b.Kind)
	if err != nil {
		return nil, err
	}

	hName, vName := th.Box.HAlign, th.Box.VAlign
	if b.HAlign != "" {
		hName = b.HAlign
	}
	if b.VAlign != "" {
		vName = b.VAlign
	}
	h, err := parseAlignmentOr(hName)
	if err != nil {
		return nil, err
	}
	v, err := parseAlignmentOr(vName)
	if err != nil {
		return nil, err
	}
	if err := l.SetAlignment(h, v); err != nil {
		return nil, err
	}

	spacing := b.Spacing
	if spacing == 0 {
		spacing = th.Box.Spacing
	}
	if err := l.SetSpacing(spacing); err != nil {
		return nil, err
	}

	if b.Padding != nil {
		w.SetPadding(*b.Padding)
	} else if th.Box.Padding > 0 {
		w.SetPadding(graphics.EdgeInsetsAll(th.Box.Padding))
	}
	if err := w.SetPolicies(b.HPolicy, b.VPolicy); err != nil {
		return nil, err
	}
	w.SetSize(b.Size)
	w.SetTheme(th)

	for _, child := range children {
		if err := w.AddChild(child); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func parseAlignmentOr(name string) (layout.Alignment, error) {
	if name == "" {
		return layout.AlignLeading, nil
	}
	return layout.ParseAlignment(name)
}

// NewHBox returns an expanding horizontal box with theme defaults.
func NewHBox(name string, children ...*layout.Widget) (*layout.Widget, error) {
	return Box{
		Name:    name,
		Kind:    layout.KindHBox,
		HPolicy: layout.PolicyExpanding,
		VPolicy: layout.PolicyExpanding,
	}.Build(children...)
}

// NewVBox returns an expanding vertical box with theme defaults.
func NewVBox(name string, children ...*layout.Widget) (*layout.Widget, error) {
	return Box{
		Name:    name,
		Kind:    layout.KindVBox,
		HPolicy: layout.PolicyExpanding,
		VPolicy: layout.PolicyExpanding,
	}.Build(children...)
}

// NewPanel returns a fixed-size container whose children keep explicit
// positions.
func NewPanel(name string, size graphics.Size, children ...*layout.Widget) (*layout.Widget, error) {
	return Box{Name: name, Kind: layout.KindFixed, Size: size}.Build(children...)
}

// NewSpacer returns an empty widget that takes up a share of the free space.
func NewSpacer(name string) *layout.Widget {
	w := layout.NewWidget(name)
	// Both values are valid, so SetPolicies cannot fail.
	_ = w.SetPolicies(layout.PolicyExpanding, layout.PolicyExpanding)
	return w
}

// NewFixed returns a leaf with a fixed size on both axes.
func NewFixed(name string, width, height float64) *layout.Widget {
	w := layout.NewWidget(name)
	w.SetSize(graphics.Size{Width: width, Height: height})
	return w
}
