package layout

import "github.com/go-drift/pane/pkg/errors"

// Invalidate marks this widget's geometry stale without touching ancestors.
// It does nothing while a bypass is active.
func (w *Widget) Invalidate() {
	if w.bypassDepth > 0 {
		return
	}
	w.markInvalid()
}

func (w *Widget) markInvalid() {
	w.valid = false
	if w.owner != nil {
		w.owner.schedule(w)
	}
}

// RouteInvalidation marks this widget and its ancestors invalid, stopping at
// the first widget that is fixed on every axis in a. That widget's size does
// not depend on its parent, so nothing above it needs re-layout. With no
// fixed widget on the way the walk ends at the root, which is always marked.
// An ancestor under bypass is left alone and the walk ends below it.
func (w *Widget) RouteInvalidation(a Axis) error {
	if err := a.Validate(); err != nil {
		return err
	}
	w.routeInvalidation(a)
	return nil
}

func (w *Widget) routeInvalidation(a Axis) {
	var last *Widget
	for cur := w; cur != nil; cur = cur.parent {
		if cur.bypassDepth > 0 {
			Logger().Debug("route suppressed by bypass", "widget", cur.name, "from", w.name)
			break
		}
		cur.valid = false
		last = cur
		if cur.parent == nil || cur.IsFixed(a) {
			Logger().Debug("route stopped", "widget", cur.name, "from", w.name, "axis", a)
			break
		}
	}
	if last != nil && last.owner != nil {
		last.owner.schedule(last)
	}
}

// invalidateAllocation marks the widget stale and routes from its parent,
// whose layout decides this widget's size and position.
func (w *Widget) invalidateAllocation(a Axis) {
	if w.bypassDepth > 0 {
		return
	}
	w.markInvalid()
	if w.parent != nil {
		w.parent.routeInvalidation(a)
	}
}

// BeginBypassUpdate suspends invalidation on this widget until the matching
// EndBypassUpdate. Calls nest.
func (w *Widget) BeginBypassUpdate() {
	w.bypassDepth++
}

// EndBypassUpdate closes the innermost bypass scope. Calling it with no open
// scope is a programming error and leaves the counter untouched.
func (w *Widget) EndBypassUpdate() error {
	if w.bypassDepth == 0 {
		return errors.Structure("layout.Widget.EndBypassUpdate", w.name, errors.ErrBypassUnderflow)
	}
	w.bypassDepth--
	return nil
}

// WithBypass runs fn inside a bypass scope.
func (w *Widget) WithBypass(fn func()) {
	w.BeginBypassUpdate()
	defer func() {
		_ = w.EndBypassUpdate()
	}()
	fn()
}
