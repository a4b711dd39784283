package layout

import (
	"fmt"
	"slices"

	"github.com/go-drift/pane/pkg/errors"
)

// PipelineOwner tracks widgets that need validation and drives the
// validation pass.
//
// Invalidation happens eagerly as mutations arrive: RouteInvalidation marks
// the dirty chain and schedules the widget where it stopped. Validation only
// runs when Flush is called (for example once per rendering tick), so a
// mutation's invalidation always completes before any layout runs.
type PipelineOwner struct {
	root         *Widget
	backend      Backend
	dirty        []*Widget
	dirtySet     map[*Widget]bool
	validated    []*Widget
	validatedSet map[*Widget]bool
	frames       int
}

// NewPipelineOwner creates an owner. backend may be nil.
func NewPipelineOwner(backend Backend) *PipelineOwner {
	return &PipelineOwner{backend: backend}
}

// Attach makes root the tree this owner drives. Widgets added below root
// later inherit the owner.
func (p *PipelineOwner) Attach(root *Widget) error {
	if root == nil {
		return errors.Structure("layout.PipelineOwner.Attach", "", errors.ErrNilWidget)
	}
	if root.parent != nil {
		return errors.Structure("layout.PipelineOwner.Attach", root.name, fmt.Errorf("%s is not a root", root.name))
	}
	if p.root != nil && p.root != root {
		p.root.setOwner(nil)
	}
	p.root = root
	root.setOwner(p)
	return nil
}

// Root returns the attached root.
func (p *PipelineOwner) Root() *Widget {
	return p.root
}

// Frames returns the number of frames handed to the backend.
func (p *PipelineOwner) Frames() int {
	return p.frames
}

func (p *PipelineOwner) schedule(w *Widget) {
	if p.dirtySet == nil {
		p.dirtySet = make(map[*Widget]bool)
	}
	if p.dirtySet[w] {
		return
	}
	p.dirtySet[w] = true
	p.dirty = append(p.dirty, w)
}

func (p *PipelineOwner) noteValidated(w *Widget) {
	if p.validatedSet == nil {
		p.validatedSet = make(map[*Widget]bool)
	}
	if p.validatedSet[w] {
		return
	}
	p.validatedSet[w] = true
	p.validated = append(p.validated, w)
}

// NeedsLayout reports whether any scheduled widget is still invalid.
func (p *PipelineOwner) NeedsLayout() bool {
	for _, w := range p.dirty {
		if w.owner == p && !w.valid {
			return true
		}
	}
	return false
}

// Flush validates every scheduled widget, parents first, then hands the
// geometry of each widget validated in this pass to the backend. A panic
// raised while laying out or drawing is recovered, reported through the
// errors package and returned.
func (p *PipelineOwner) Flush() (err error) {
	defer errors.RecoverWithCallback("layout.PipelineOwner.Flush", func(r any) {
		err = &errors.PaneError{Op: "layout.PipelineOwner.Flush", Kind: errors.KindPanic, Err: fmt.Errorf("%v", r)}
		p.dirty, p.dirtySet = nil, nil
		p.validated, p.validatedSet = nil, nil
	})

	for len(p.dirty) > 0 {
		batch := p.dirty
		p.dirty, p.dirtySet = nil, nil
		slices.SortStableFunc(batch, func(a, b *Widget) int {
			return a.depth - b.depth
		})
		for _, w := range batch {
			// A parent earlier in the batch may already have laid this one out.
			if w.owner == p && !w.valid {
				w.RecursiveRouteUpdate()
			}
		}
	}

	validated := p.validated
	p.validated, p.validatedSet = nil, nil
	Logger().Debug("flush", "validated", len(validated))
	if p.backend == nil || len(validated) == 0 {
		return nil
	}
	return p.emit(validated)
}

func (p *PipelineOwner) emit(validated []*Widget) error {
	slices.SortStableFunc(validated, func(a, b *Widget) int {
		return a.depth - b.depth
	})
	wrap := func(err error) error {
		return &errors.PaneError{Op: "layout.PipelineOwner.Flush", Kind: errors.KindRender, Err: err}
	}
	if err := p.backend.BeginFrame(p.root); err != nil {
		return wrap(err)
	}
	for _, w := range validated {
		if w.owner != p {
			continue
		}
		if err := p.backend.DrawWidget(GeometryOf(w)); err != nil {
			return wrap(err)
		}
	}
	if err := p.backend.EndFrame(); err != nil {
		return wrap(err)
	}
	p.frames++
	return nil
}
