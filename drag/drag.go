// Package drag implements the picking and the live repositioning
// of shapes with a pointer.
package drag

import (
	"github.com/benoitkugler/shapecraft/render"
	"github.com/benoitkugler/shapecraft/scene"
)

// ScreenToModel maps the pixel (sx, sy) of a w x h surface to model space.
func ScreenToModel(w, h int, sx, sy float64) (x, y float64) {
	return sx - float64(w)/2, float64(h)/2 - sy
}

// Hit returns true if (x, y), in model space, falls in the hit box of s.
// The box is centered on the anchor of the shape, and spans its
// HalfExtent in each direction, edges included.
func Hit(s scene.Shape, x, y float64) bool {
	p := s.Anchor()
	hw, hh := s.HalfExtent()
	return p.X-hw <= x && x <= p.X+hw && p.Y-hh <= y && y <= p.Y+hh
}

// Pick returns the index of the topmost shape of sc hit at (x, y),
// or -1. Patterns are never picked.
func Pick(sc *scene.Scene, x, y float64) int {
	for i := sc.Len() - 1; i >= 0; i-- {
		if s, ok := sc.At(i).(scene.Shape); ok && Hit(s, x, y) {
			return i
		}
	}
	return -1
}

// Controller is a two states machine, idle or dragging one object.
// The zero value is not usable: see NewController.
type Controller struct {
	scene    *scene.Scene
	pipeline *render.Pipeline

	index            int // -1 when idle
	offsetX, offsetY float64
}

// NewController returns an idle controller moving the objects of sc,
// and redrawing them with pl.
func NewController(sc *scene.Scene, pl *render.Pipeline) *Controller {
	return &Controller{scene: sc, pipeline: pl, index: -1}
}

// Start picks the object under the screen point (sx, sy).
// It returns false, staying idle, if there is none.
func (c *Controller) Start(sx, sy float64) bool {
	w, h := c.pipeline.Surface.Size()
	x, y := ScreenToModel(w, h, sx, sy)
	i := Pick(c.scene, x, y)
	if i == -1 {
		c.index = -1
		return false
	}
	p := c.scene.At(i).Anchor()
	c.index = i
	c.offsetX, c.offsetY = p.X-x, p.Y-y
	return true
}

// Move repositions the dragged object so that it keeps its offset with
// the pointer, and redraws the scene with it on top.
// It does nothing when idle.
func (c *Controller) Move(sx, sy float64) error {
	if c.index == -1 {
		return nil
	}
	if c.index >= c.scene.Len() { // the scene shrank under us
		c.index = -1
		return nil
	}
	w, h := c.pipeline.Surface.Size()
	x, y := ScreenToModel(w, h, sx, sy)
	c.scene.At(c.index).Anchor().MoveTo(x+c.offsetX, y+c.offsetY)
	return c.pipeline.RenderExcept(c.scene, c.index)
}

// End goes back to the idle state. The last position is kept.
func (c *Controller) End() { c.index = -1 }

// Dragging returns the index of the dragged object, if any.
func (c *Controller) Dragging() (index int, ok bool) {
	return c.index, c.index != -1
}
