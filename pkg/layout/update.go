package layout

import "github.com/go-drift/pane/pkg/graphics"

// Validate recomputes state derived from the widget's own geometry (clip
// graphic, half size, size proxy) and marks it valid. It does not recurse and
// is idempotent.
func (w *Widget) Validate() {
	w.updateClipGraphic()
	w.halfSize = w.size.Half()
	w.proxy.Size = w.size
	w.valid = true
	if w.owner != nil {
		w.owner.noteValidated(w)
	}
}

// updateClipGraphic sets the clip to the content box: the size minus padding
// on each side, offset by the leading padding.
func (w *Widget) updateClipGraphic() {
	*w.clip = ClipGraphic{
		Rect:       w.ContentRect(),
		Visible:    false,
		Renderable: false,
	}
}

// Update applies the layout, validates, then updates every child whose size
// follows this widget (expanding on some axis) or that is itself stale.
func (w *Widget) Update() {
	w.layout.Apply()
	if w.onLayout != nil {
		w.onLayout(w)
	}
	w.Validate()
	for _, child := range w.children {
		if child.dependsOnParent() || !child.valid {
			child.Update()
		}
	}
}

// RecursiveRouteUpdate climbs to the highest invalid ancestor and lays out
// downward from there, so no widget is laid out against a stale parent.
func (w *Widget) RecursiveRouteUpdate() {
	if w.parent == nil || w.parent.valid {
		w.Update()
		return
	}
	w.parent.RecursiveRouteUpdate()
	if !w.valid {
		w.Update()
	}
}

// assignGeometry is how layouts write child geometry. It is not a mutation
// from outside, so it does not invalidate; a size change marks the child
// stale so the update pass descends into it.
func (w *Widget) assignGeometry(pos graphics.Offset, size graphics.Size) {
	w.position = pos
	if size != w.size {
		w.size = size
		w.valid = false
	}
}
