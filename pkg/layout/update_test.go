package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/pane/pkg/graphics"
)

func TestRecursiveRouteUpdateLaysOutFromHighestInvalidAncestor(t *testing.T) {
	ws := chain(t, "a", "b", "c")
	calls := make(map[string]int)
	var order []string
	for _, w := range ws {
		w.SetOnLayout(func(w *Widget) {
			calls[w.Name()]++
			order = append(order, w.Name())
		})
	}

	require.NoError(t, ws[3].RouteInvalidation(AxisBoth))
	ws[3].RecursiveRouteUpdate()

	assert.Equal(t, []string{"root", "a", "b", "c"}, order, "layout flows downward")
	for _, w := range ws {
		assert.True(t, w.IsValid(), w.Name())
		assert.Equal(t, 1, calls[w.Name()], "%s laid out once", w.Name())
	}
}

func TestRecursiveRouteUpdateStopsBelowValidParent(t *testing.T) {
	ws := chain(t, "a", "b")
	require.NoError(t, ws[2].SetPolicies(PolicyFixed, PolicyFixed))
	ws[0].Update()
	var order []string
	for _, w := range ws {
		w.SetOnLayout(func(w *Widget) { order = append(order, w.Name()) })
	}

	ws[2].Invalidate()
	ws[2].RecursiveRouteUpdate()

	assert.Equal(t, []string{"b"}, order)
	assert.True(t, ws[2].IsValid())
}

func TestUpdateSkipsValidFixedChildren(t *testing.T) {
	root := NewWidget("root")
	root.SetSize(size(100, 100))
	fixed := NewWidget("fixed")
	fixed.SetSize(size(10, 10))
	grow := NewWidget("grow")
	require.NoError(t, grow.SetPolicies(PolicyExpanding, PolicyFixed))
	require.NoError(t, root.AddChild(fixed))
	require.NoError(t, root.AddChild(grow))
	root.Update()

	var order []string
	fixed.SetOnLayout(func(*Widget) { order = append(order, "fixed") })
	grow.SetOnLayout(func(*Widget) { order = append(order, "grow") })
	root.Invalidate()
	root.Update()

	assert.Equal(t, []string{"grow"}, order)
}

func TestValidateIsIdempotent(t *testing.T) {
	w := NewWidget("w")
	w.SetSize(size(120, 80))
	w.SetPadding(graphics.EdgeInsets{Top: 1, Right: 2, Bottom: 3, Left: 4})

	w.Validate()
	first := *w.ClipGraphic()
	half := w.HalfSize()
	w.Validate()

	assert.Equal(t, first, *w.ClipGraphic())
	assert.Equal(t, half, w.HalfSize())
	assert.Equal(t, size(60, 40), half)
}

func TestClipGraphicUniformPadding(t *testing.T) {
	tests := []struct {
		w, h, p float64
	}{
		{100, 60, 5},
		{400, 28, 4},
		{50, 50, 0},
	}
	for _, tt := range tests {
		w := NewWidget("w")
		w.SetSize(size(tt.w, tt.h))
		w.SetPadding(graphics.EdgeInsetsAll(tt.p))
		w.Validate()

		clip := w.ClipGraphic()
		assert.Equal(t, tt.w-2*tt.p, clip.Rect.Width())
		assert.Equal(t, tt.h-2*tt.p, clip.Rect.Height())
		assert.Equal(t, graphics.Offset{X: tt.p, Y: tt.p}, clip.Rect.TopLeft())
		assert.False(t, clip.Visible)
		assert.False(t, clip.Renderable)
	}
}

func TestClipGraphicNeverNegative(t *testing.T) {
	w := NewWidget("w")
	w.SetSize(size(6, 6))
	w.SetPadding(graphics.EdgeInsetsAll(5))
	w.Validate()
	assert.Equal(t, 0.0, w.ClipGraphic().Rect.Width())
}

func TestValidateUpdatesSizeProxy(t *testing.T) {
	w := NewWidget("w")
	w.SetSize(size(30, 40))
	w.Validate()
	assert.Equal(t, size(30, 40), w.SizeProxy().Size)
	assert.False(t, w.SizeProxy().Visible)
}

func TestValidateClipsToContentRect(t *testing.T) {
	w := NewWidget("w")
	w.SetSize(size(100, 60))
	w.SetPadding(graphics.EdgeInsets{Top: 4, Right: 6, Bottom: 8, Left: 10})

	w.Validate()

	assert.Equal(t, graphics.RectFromOffsetSize(offset(10, 4), size(84, 48)), w.ContentRect())
	assert.Equal(t, w.ContentRect(), w.ClipGraphic().Rect)
}
