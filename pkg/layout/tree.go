package layout

import (
	"slices"

	"github.com/go-drift/pane/pkg/errors"
)

// Parent returns the containing widget, or nil for a root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns the ordered children. The slice must not be modified.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Depth returns the distance from the root (root = 0).
func (w *Widget) Depth() int {
	return w.depth
}

// Root returns the topmost ancestor.
func (w *Widget) Root() *Widget {
	cur := w
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// IsAncestorOf reports whether w is other or one of its ancestors.
func (w *Widget) IsAncestorOf(other *Widget) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == w {
			return true
		}
	}
	return false
}

// Walk visits w and its descendants depth-first in child order. Returning
// false from visit skips that widget's subtree.
func (w *Widget) Walk(visit func(*Widget) bool) {
	if !visit(w) {
		return
	}
	for _, child := range w.children {
		child.Walk(visit)
	}
}

// Find returns the first widget in the subtree with the given name.
func (w *Widget) Find(name string) *Widget {
	var found *Widget
	w.Walk(func(cur *Widget) bool {
		if found != nil {
			return false
		}
		if cur.name == name {
			found = cur
			return false
		}
		return true
	})
	return found
}

// AddChild appends child. See AddChildAt.
func (w *Widget) AddChild(child *Widget) error {
	return w.addChildAt(child, len(w.children), true)
}

// AddChildAt inserts child at index, detaching it from any previous parent
// first. The child inherits this widget's theme (unless it carries an
// override), its disabled state, its pipeline owner and its clip mask, then
// invalidation is routed from the child. The container itself is
// invalidated because its child list changed.
func (w *Widget) AddChildAt(child *Widget, index int) error {
	return w.addChildAt(child, index, false)
}

func (w *Widget) addChildAt(child *Widget, index int, appending bool) error {
	const op = "layout.Widget.AddChildAt"
	if child == nil {
		return errors.Structure(op, w.name, errors.ErrNilWidget)
	}
	if child.IsAncestorOf(w) {
		return errors.Structure(op, child.name, errors.ErrCycle)
	}
	if index < 0 || index > len(w.children) {
		return errors.Structure(op, w.name, errors.ErrIndexOutOfRange)
	}

	if old := child.parent; old != nil {
		if old == w {
			if i := slices.Index(w.children, child); i < index {
				index--
			}
		}
		old.RemoveChild(child)
	}
	if appending {
		index = len(w.children)
	}

	w.children = slices.Insert(w.children, index, child)
	child.parent = w
	child.setDepth(w.depth + 1)
	child.setOwner(w.owner)
	if w.theme != nil && !child.themeOverride {
		child.SetTheme(w.theme)
	}
	if w.disabled {
		child.SetDisabled(true)
	}
	child.setMask(w.childMask())

	child.routeInvalidation(AxisBoth)
	w.Invalidate()
	Logger().Debug("child added", "parent", w.name, "child", child.name, "index", index)
	return nil
}

// RemoveChild detaches child. It reports false if child is not a direct
// child of w.
func (w *Widget) RemoveChild(child *Widget) bool {
	i := slices.Index(w.children, child)
	if i < 0 {
		return false
	}
	w.children = slices.Delete(w.children, i, i+1)
	child.parent = nil
	child.setDepth(0)
	child.setOwner(nil)
	child.setMask(nil)
	w.Invalidate()
	return true
}

func (w *Widget) setDepth(depth int) {
	w.depth = depth
	for _, child := range w.children {
		child.setDepth(depth + 1)
	}
}

func (w *Widget) setOwner(p *PipelineOwner) {
	w.Walk(func(cur *Widget) bool {
		cur.owner = p
		if p != nil && !cur.valid {
			p.schedule(cur)
		}
		return true
	})
}
