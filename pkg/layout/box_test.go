package layout

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/graphics"
)

type boxFixture struct {
	root    *Widget
	layout  *Layout
	fixed   *Widget
	expandA *Widget
	expandB *Widget
}

// newHBox builds root(hbox) with [fixed 100x20, expanding, expanding].
func newHBox(t *testing.T, width float64) boxFixture {
	t.Helper()
	root := NewWidget("root")
	root.SetSize(size(width, 100))
	l, err := root.UseLayout(KindHBox)
	require.NoError(t, err)

	fixed := NewWidget("fixed")
	fixed.SetSize(size(100, 20))
	a := NewWidget("a")
	require.NoError(t, a.SetPolicies(PolicyExpanding, PolicyExpanding))
	b := NewWidget("b")
	require.NoError(t, b.SetPolicies(PolicyExpanding, PolicyExpanding))
	for _, c := range []*Widget{fixed, a, b} {
		require.NoError(t, root.AddChild(c))
	}
	return boxFixture{root: root, layout: l, fixed: fixed, expandA: a, expandB: b}
}

func TestHBoxDistributesRemainingSpace(t *testing.T) {
	f := newHBox(t, 300)
	f.root.Update()

	assert.Equal(t, graphics.Offset{X: 0, Y: 0}, f.fixed.Position())
	assert.Equal(t, size(100, 20), f.fixed.Size(), "fixed child keeps its size")
	assert.Equal(t, graphics.Offset{X: 100, Y: 0}, f.expandA.Position())
	assert.Equal(t, size(100, 100), f.expandA.Size())
	assert.Equal(t, graphics.Offset{X: 200, Y: 0}, f.expandB.Position())
	assert.Equal(t, size(100, 100), f.expandB.Size())
}

func TestHBoxSpacing(t *testing.T) {
	f := newHBox(t, 300)
	require.NoError(t, f.layout.SetSpacing(10))
	f.root.Update()

	assert.Equal(t, 90.0, f.expandA.Size().Width)
	assert.Equal(t, 110.0, f.expandA.Position().X)
	assert.Equal(t, 210.0, f.expandB.Position().X)
}

func TestHBoxNoRemainingSpaceYieldsZeroSize(t *testing.T) {
	f := newHBox(t, 80)
	f.root.Update()

	assert.Equal(t, 0.0, f.expandA.Size().Width)
	assert.Equal(t, 0.0, f.expandB.Size().Width)
	assert.Equal(t, 100.0, f.expandA.Position().X)
	assert.Equal(t, 100.0, f.expandB.Position().X)
}

func TestHBoxPadding(t *testing.T) {
	f := newHBox(t, 300)
	f.root.SetPadding(graphics.EdgeInsetsAll(10))
	f.root.Update()

	assert.Equal(t, graphics.Offset{X: 10, Y: 10}, f.fixed.Position())
	assert.Equal(t, size(90, 80), f.expandA.Size())
	assert.Equal(t, 200.0, f.expandB.Position().X)
}

func TestHBoxCrossAlignment(t *testing.T) {
	f := newHBox(t, 300)
	require.NoError(t, f.layout.SetAlignment(AlignLeading, AlignCenter))
	f.root.Update()
	assert.Equal(t, 40.0, f.fixed.Position().Y)

	require.NoError(t, f.layout.SetAlignment(AlignLeading, AlignTrailing))
	f.root.Update()
	assert.Equal(t, 80.0, f.fixed.Position().Y)
	assert.Equal(t, 0.0, f.expandA.Position().Y, "expanding children fill the cross axis")
}

func TestHBoxMainAlignmentWithoutExpandingChildren(t *testing.T) {
	root := NewWidget("root")
	root.SetSize(size(300, 50))
	l, err := root.UseLayout(KindHBox)
	require.NoError(t, err)
	require.NoError(t, l.SetAlignment(AlignCenter, AlignLeading))
	child := NewWidget("child")
	child.SetSize(size(100, 50))
	require.NoError(t, root.AddChild(child))

	root.Update()
	assert.Equal(t, 100.0, child.Position().X)
}

func TestHBoxClampsToMax(t *testing.T) {
	f := newHBox(t, 300)
	f.expandA.SetMax(size(50, 0))
	f.root.Update()

	assert.Equal(t, 50.0, f.expandA.Size().Width)
	assert.Equal(t, 150.0, f.expandB.Position().X)
}

func TestVBoxStacksTopToBottom(t *testing.T) {
	root := NewWidget("root")
	root.SetSize(size(120, 300))
	_, err := root.UseLayout(KindVBox)
	require.NoError(t, err)

	header := NewWidget("header")
	header.SetSize(size(120, 40))
	body := NewWidget("body")
	require.NoError(t, body.SetPolicies(PolicyExpanding, PolicyExpanding))
	footer := NewWidget("footer")
	footer.SetSize(size(60, 60))
	for _, c := range []*Widget{header, body, footer} {
		require.NoError(t, root.AddChild(c))
	}

	root.Update()
	assert.Equal(t, graphics.Offset{X: 0, Y: 0}, header.Position())
	assert.Equal(t, size(120, 200), body.Size())
	assert.Equal(t, 40.0, body.Position().Y)
	assert.Equal(t, 240.0, footer.Position().Y)
}

func TestFixedLayoutKeepsExplicitPositions(t *testing.T) {
	root := NewWidget("root")
	root.SetSize(size(300, 100))
	child := NewWidget("child")
	child.SetSize(size(50, 20))
	child.SetPosition(graphics.Offset{X: 5, Y: 7})
	require.NoError(t, root.AddChild(child))

	root.Update()
	assert.Equal(t, graphics.Offset{X: 5, Y: 7}, child.Position())

	require.NoError(t, root.Layout().SetAlignment(AlignTrailing, AlignLeading))
	root.Update()
	assert.Equal(t, graphics.Offset{X: 250, Y: 7}, child.Position())
	assert.Equal(t, size(50, 20), child.Size(), "fixed layout never resizes")
}

func TestResizedChildIsRelaidOut(t *testing.T) {
	f := newHBox(t, 300)
	inner := NewWidget("inner")
	require.NoError(t, inner.SetPolicies(PolicyExpanding, PolicyExpanding))
	_, err := f.expandA.UseLayout(KindHBox)
	require.NoError(t, err)
	require.NoError(t, f.expandA.AddChild(inner))
	f.root.Update()
	assert.Equal(t, 100.0, inner.Size().Width)

	f.root.SetSize(size(500, 100))
	f.root.Update()
	assert.Equal(t, 200.0, inner.Size().Width)
}

func TestNewLayoutRequiresOwner(t *testing.T) {
	_, err := NewLayout(KindHBox, nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNilWidget))

	_, err = NewLayout(LayoutKind(9), NewWidget("w"))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidLayoutKind))
}

func TestSetLayoutRebindsOwner(t *testing.T) {
	a := NewWidget("a")
	b := NewWidget("b")
	l, err := a.UseLayout(KindVBox)
	require.NoError(t, err)
	a.Validate()

	require.NoError(t, b.SetLayout(l))
	assert.Same(t, b, l.Owner())
	assert.Same(t, l, b.Layout())
	assert.NotSame(t, l, a.Layout())
	assert.Equal(t, KindFixed, a.Layout().Kind())
	assert.False(t, a.IsValid())
	assert.False(t, b.IsValid())
}

func TestLayoutRejectsInvalidConfiguration(t *testing.T) {
	w := NewWidget("w")
	l := w.Layout()
	assert.True(t, stderrors.Is(l.SetAlignment(Alignment(5), AlignLeading), errors.ErrInvalidAlignment))
	assert.Error(t, l.SetSpacing(-1))
	assert.Equal(t, errors.KindConfig, errors.KindOf(l.SetSpacing(math.NaN())))
	assert.Zero(t, l.Spacing())
	assert.Error(t, w.SetLayout(nil))

	_, err := ParseLayoutKind("grid")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidLayoutKind))
	k, err := ParseLayoutKind("vbox")
	require.NoError(t, err)
	assert.Equal(t, KindVBox, k)
}
