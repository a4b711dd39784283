package layout

import (
	"math"

	"github.com/go-drift/pane/pkg/graphics"
)

// applyFixed keeps explicit child geometry. Only axes with a non-leading
// alignment move children, and nothing is resized.
func applyFixed(l *Layout, w *Widget) {
	content := w.ContentSize()
	origin := w.padding.Leading()
	for _, child := range w.children {
		pos := child.position
		for _, a := range [...]Axis{AxisHorizontal, AxisVertical} {
			align := l.align(a)
			if align == AlignLeading {
				continue
			}
			free := extent(content, a) - extent(child.size, a)
			pos = withCoord(pos, a, coord(origin, a)+align.offset(free))
		}
		child.assignGeometry(pos, child.size)
	}
}

// applyBox lays children out along main in insertion order. Fixed children
// keep their main-axis size; the space left after them and the spacing is
// split evenly between expanding children, never below zero.
func applyBox(l *Layout, w *Widget, main Axis) {
	children := w.children
	if len(children) == 0 {
		return
	}
	cross := main.cross()
	content := w.ContentSize()
	origin := w.padding.Leading()
	mainExtent := extent(content, main)
	crossExtent := extent(content, cross)

	used := l.spacing * float64(len(children)-1)
	expanding := 0
	for _, child := range children {
		if child.policy(main).IsFixed() {
			used += extent(child.size, main)
		} else {
			expanding++
		}
	}
	share := 0.0
	if expanding > 0 {
		share = math.Max(0, (mainExtent-used)/float64(expanding))
	}

	sizes := make([]graphics.Size, len(children))
	total := l.spacing * float64(len(children)-1)
	for i, child := range children {
		size := child.size
		if !child.policy(main).IsFixed() {
			size = withExtent(size, main, share)
		}
		if !child.policy(cross).IsFixed() {
			size = withExtent(size, cross, crossExtent)
		}
		size = size.Clamp(child.min, child.max)
		sizes[i] = size
		total += extent(size, main)
	}

	cursor := coord(origin, main)
	if free := mainExtent - total; free > 0 {
		cursor += l.align(main).offset(free)
	}
	for i, child := range children {
		if i > 0 {
			cursor += l.spacing
		}
		size := sizes[i]
		var pos graphics.Offset
		pos = withCoord(pos, main, cursor)
		pos = withCoord(pos, cross, coord(origin, cross)+l.align(cross).offset(crossExtent-extent(size, cross)))
		child.assignGeometry(pos, size)
		cursor += extent(size, main)
	}
}
