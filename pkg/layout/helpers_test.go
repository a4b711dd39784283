package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/pane/pkg/graphics"
)

func size(w, h float64) graphics.Size {
	return graphics.Size{Width: w, Height: h}
}

// chain builds root -> names[0] -> names[1] ... and returns every widget,
// root first. All widgets are expanding on both axes and fully validated.
func chain(t *testing.T, names ...string) []*Widget {
	t.Helper()
	root := NewWidget("root")
	root.SetSize(size(400, 300))
	out := []*Widget{root}
	parent := root
	for _, name := range names {
		w := NewWidget(name)
		require.NoError(t, w.SetPolicies(PolicyExpanding, PolicyExpanding))
		require.NoError(t, parent.AddChild(w))
		out = append(out, w)
		parent = w
	}
	root.Update()
	for _, w := range out {
		require.True(t, w.IsValid(), "%s should be valid after root update", w.Name())
	}
	return out
}

func validity(ws ...*Widget) map[string]bool {
	m := make(map[string]bool, len(ws))
	for _, w := range ws {
		m[w.Name()] = w.IsValid()
	}
	return m
}

func offset(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}

func graphicsAll(v float64) graphics.EdgeInsets {
	return graphics.EdgeInsetsAll(v)
}
