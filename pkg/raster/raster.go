// Package raster is a software rendering backend for the layout pipeline.
// It paints every widget's bounds as a filled box in its theme's palette
// color so a layout can be inspected as an image.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"slices"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/pane/pkg/graphics"
	"github.com/go-drift/pane/pkg/layout"
	"github.com/go-drift/pane/pkg/theme"
)

// Options configures a Backend.
type Options struct {
	// Scale multiplies the output size of Encode. Zero means 1.
	Scale float64
	// Labels draws each widget's name in its top-left corner.
	Labels bool
	// Outline draws a one pixel border around each widget.
	Outline bool
}

// Backend retains every widget it has been handed and repaints the whole
// scene at the end of each frame from the widgets' current geometry. The
// pipeline only emits revalidated widgets, so an incremental flush still
// produces a complete image.
type Backend struct {
	opts   Options
	root   *layout.Widget
	scene  map[*layout.Widget]layout.Geometry
	order  []*layout.Widget
	canvas *image.RGBA
	frames int
}

// New returns a backend with an empty scene.
func New(opts Options) *Backend {
	return &Backend{
		opts:  opts,
		scene: make(map[*layout.Widget]layout.Geometry),
	}
}

// BeginFrame sizes the canvas to the root widget.
func (b *Backend) BeginFrame(root *layout.Widget) error {
	if root == nil {
		return fmt.Errorf("raster: nil root")
	}
	size := root.Size()
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: root %q has empty size %vx%v", root.Name(), size.Width, size.Height)
	}
	if b.root != root {
		clear(b.scene)
		b.order = b.order[:0]
		b.root = root
	}
	if b.canvas == nil || b.canvas.Rect.Dx() != w || b.canvas.Rect.Dy() != h {
		b.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return nil
}

// DrawWidget records the geometry for the next EndFrame.
func (b *Backend) DrawWidget(g layout.Geometry) error {
	if _, ok := b.scene[g.Widget]; !ok {
		b.order = append(b.order, g.Widget)
	}
	b.scene[g.Widget] = g
	return nil
}

// EndFrame drops widgets that left the tree, refreshes the geometry of the
// rest and repaints the scene parents first.
func (b *Backend) EndFrame() error {
	b.order = slices.DeleteFunc(b.order, func(w *layout.Widget) bool {
		if w.Root() != b.root {
			delete(b.scene, w)
			return true
		}
		b.scene[w] = layout.GeometryOf(w)
		return false
	})
	slices.SortStableFunc(b.order, func(x, y *layout.Widget) int {
		return b.scene[x].Depth - b.scene[y].Depth
	})

	th := b.themeOf(b.root.Theme())
	draw.Draw(b.canvas, b.canvas.Rect, image.NewUniform(th.ColorScheme.Background.NRGBA()), image.Point{}, draw.Src)
	for _, w := range b.order {
		b.paint(b.scene[w])
	}
	b.frames++
	return nil
}

// Frames returns how many frames have been painted.
func (b *Backend) Frames() int {
	return b.frames
}

// Canvas returns the image painted by the last frame, or nil before the
// first one.
func (b *Backend) Canvas() *image.RGBA {
	return b.canvas
}

// Encode writes the canvas as PNG, scaled by Options.Scale.
func (b *Backend) Encode(w io.Writer) error {
	if b.canvas == nil {
		return fmt.Errorf("raster: nothing has been drawn")
	}
	var img image.Image = b.canvas
	if s := b.opts.Scale; s > 0 && s != 1 {
		r := b.canvas.Rect
		dst := image.NewRGBA(image.Rect(0, 0, int(math.Round(float64(r.Dx())*s)), int(math.Round(float64(r.Dy())*s))))
		scaler := draw.Scaler(draw.CatmullRom)
		if s >= 1 {
			scaler = draw.NearestNeighbor
		}
		scaler.Scale(dst, dst.Rect, b.canvas, r, draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}

// WritePNG encodes the canvas to a file.
func (b *Backend) WritePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return b.Encode(f)
}

func (b *Backend) themeOf(t *theme.Theme) *theme.Theme {
	if t == nil {
		return theme.Default()
	}
	return t
}

func (b *Backend) paint(g layout.Geometry) {
	th := b.themeOf(g.Theme)
	area := g.Bounds
	if g.Masked {
		area = area.Intersect(g.Mask)
	}
	r := pixelRect(area).Intersect(b.canvas.Rect)
	if r.Empty() {
		return
	}

	c := th.PaletteColor(g.Depth)
	if g.Disabled {
		c = th.ColorScheme.Disabled
	}
	fill(b.canvas, r, c)

	if b.opts.Outline {
		outline := th.ColorScheme.Outline
		bounds := pixelRect(g.Bounds)
		for _, edge := range []image.Rectangle{
			image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+1),
			image.Rect(bounds.Min.X, bounds.Max.Y-1, bounds.Max.X, bounds.Max.Y),
			image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+1, bounds.Max.Y),
			image.Rect(bounds.Max.X-1, bounds.Min.Y, bounds.Max.X, bounds.Max.Y),
		} {
			fill(b.canvas, edge.Intersect(r), outline)
		}
	}

	if b.opts.Labels && g.Name != "" {
		face := basicfont.Face7x13
		d := font.Drawer{
			Dst:  b.canvas.SubImage(r).(*image.RGBA),
			Src:  image.NewUniform(labelColor(th).NRGBA()),
			Face: face,
			Dot:  fixed.P(r.Min.X+2, r.Min.Y+face.Ascent),
		}
		d.DrawString(g.Name)
	}
}

func labelColor(th *theme.Theme) graphics.Color {
	if th.Brightness == theme.BrightnessDark {
		return graphics.FromColor(colornames.White)
	}
	return graphics.FromColor(colornames.Black)
}

func fill(dst *image.RGBA, r image.Rectangle, c graphics.Color) {
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

// pixelRect snaps a rect outward to whole pixels.
func pixelRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
}
