// Package render redraws whole scenes on a turtle.Surface.
//
// There is no dirty region tracking: every call clears the surface,
// issues every object from scratch and flushes once.
package render

import (
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/shapes"
	"github.com/benoitkugler/shapecraft/turtle"
)

// Pipeline draws scenes on Surface.
type Pipeline struct {
	Surface turtle.Surface
	Options shapes.Options
}

// New returns a pipeline with default options.
func New(s turtle.Surface) *Pipeline { return &Pipeline{Surface: s} }

// RenderFull clears the surface, draws every object in order and
// flushes. Objects which can't be drawn are skipped; the first error
// met is returned after the flush.
func (pl *Pipeline) RenderFull(sc *scene.Scene) error {
	return pl.RenderExcept(sc, -1)
}

// RenderExcept is like RenderFull, but draws the object at index
// excluded after all the others, so that it appears on top.
// An out of range index behaves like RenderFull.
func (pl *Pipeline) RenderExcept(sc *scene.Scene, excluded int) error {
	pl.Surface.Clear()
	pen := turtle.NewPen(pl.Surface)

	var first error
	draw := func(o scene.Object) {
		if err := pl.Options.Draw(pen, o); err != nil && first == nil {
			first = err
		}
	}
	for i, o := range sc.Objects {
		if i != excluded {
			draw(o)
		}
	}
	if excluded >= 0 && excluded < sc.Len() {
		draw(sc.At(excluded))
	}

	pl.Surface.Flush()
	return first
}

// ClearOnly clears the surface and flushes it.
func (pl *Pipeline) ClearOnly() {
	pl.Surface.Clear()
	pl.Surface.Flush()
}
