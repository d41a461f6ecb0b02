// Package studio is the single owner of an edited scene: every
// mutation (new objects, undo, drag, animations, loading) goes through
// a Studio, which redraws the surface accordingly.
package studio

import (
	"io"
	"time"

	"github.com/benoitkugler/shapecraft/anim"
	"github.com/benoitkugler/shapecraft/drag"
	"github.com/benoitkugler/shapecraft/persist"
	"github.com/benoitkugler/shapecraft/render"
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/turtle"
	"github.com/pkg/errors"
)

// ErrBusy is returned by the edits refused while a one-shot
// animation (rotate, move, expand, contract, blink) runs.
var ErrBusy = errors.New("an animation is running")

// Canvas is a surface whose background color may be changed,
// such as a *raster.Surface.
type Canvas interface {
	turtle.Surface
	SetBackground(name string) error
}

// Studio wires a scene to a surface.
type Studio struct {
	scene    *scene.Scene
	pipeline *render.Pipeline
	drag     *drag.Controller
	anim     *anim.Engine

	// ErrorMode is used when loading documents.
	ErrorMode persist.ErrorMode
}

// New returns a studio editing an empty scene drawn on s.
func New(s turtle.Surface) *Studio {
	st := &Studio{pipeline: render.New(s), ErrorMode: persist.WarnErrorMode}
	st.reset(scene.New())
	return st
}

func (st *Studio) reset(sc *scene.Scene) {
	st.scene = sc
	st.drag = drag.NewController(sc, st.pipeline)
	st.anim = anim.NewEngine(sc, st.pipeline)
}

// Scene returns the edited scene. It should only be mutated
// through the studio.
func (st *Studio) Scene() *scene.Scene { return st.scene }

// Redraw renders the whole scene.
func (st *Studio) Redraw() error { return st.pipeline.RenderFull(st.scene) }

// busy reports whether a one-shot animation owns the scene.
// The color cycle only changes fill colors and does not block edits.
func (st *Studio) busy() bool {
	m := st.anim.Mode()
	return m != anim.None && !m.Cyclic()
}

// checkColors resolves the colors of o with the surface.
func (st *Studio) checkColors(o scene.Object) error {
	var names []string
	switch o := o.(type) {
	case scene.Shape:
		style := o.Paint()
		names = append(names, style.PenColor)
		if style.FillColor != "" {
			names = append(names, style.FillColor)
		}
	case scene.Pattern:
		names = append(names, o.Ink())
	}
	for _, name := range names {
		if _, err := st.pipeline.Surface.ResolveColor(name); err != nil {
			return errors.Wrap(err, o.Type())
		}
	}
	return nil
}

// Add appends a new object on top of the scene, after checking its fields.
// An invalid object is returned as a *scene.ValidationError, an unknown
// color as a *scene.InvalidColorError; in both cases the scene is unchanged.
// ErrBusy is returned during a one-shot animation.
func (st *Studio) Add(o scene.Object) error {
	if st.busy() {
		return ErrBusy
	}
	if err := scene.Validate(o); err != nil {
		return err
	}
	if err := st.checkColors(o); err != nil {
		return err
	}
	st.scene.Append(o)
	return st.Redraw()
}

// Undo removes the last added object. It does nothing on an empty scene
// (but still redraws). ErrBusy is returned during a one-shot animation.
func (st *Studio) Undo() error {
	if st.busy() {
		return ErrBusy
	}
	st.drag.End()
	st.scene.Pop()
	return st.Redraw()
}

// SetBackground changes the background color of the surface, if supported.
// An invalid color leaves the current background in place.
func (st *Studio) SetBackground(name string) error {
	canvas, ok := st.pipeline.Surface.(Canvas)
	if !ok {
		return errors.New("the surface does not support background colors")
	}
	if err := canvas.SetBackground(name); err != nil {
		return err
	}
	return st.Redraw()
}

// PointerDown starts dragging the shape under the pixel (sx, sy), if any.
// Nothing can be dragged during a one-shot animation.
func (st *Studio) PointerDown(sx, sy float64) bool {
	if st.busy() {
		return false
	}
	return st.drag.Start(sx, sy)
}

// PointerMove moves the dragged shape, if any.
func (st *Studio) PointerMove(sx, sy float64) error {
	return st.drag.Move(sx, sy)
}

// PointerUp ends the current drag.
func (st *Studio) PointerUp() { st.drag.End() }

// Dragging returns the index of the dragged object.
func (st *Studio) Dragging() (int, bool) { return st.drag.Dragging() }

// Animate starts the animation named mode (see anim.ParseMode).
// A one-shot animation ends any drag.
func (st *Studio) Animate(mode string) error {
	m, err := anim.ParseMode(mode)
	if err != nil {
		return err
	}
	st.StartAnimation(m)
	return nil
}

// StartAnimation starts m. One-shot modes end any drag.
func (st *Studio) StartAnimation(m anim.Mode) {
	if m != anim.None && !m.Cyclic() {
		st.drag.End()
	}
	st.anim.Start(m)
}

// StopAnimation stops the current animation.
func (st *Studio) StopAnimation() { st.anim.Stop() }

// Animation returns the running animation, or anim.None.
func (st *Studio) Animation() anim.Mode { return st.anim.Mode() }

// Update advances the running animation; it should be called by the
// host at each frame, with the time elapsed since the previous one.
func (st *Studio) Update(dt time.Duration) error {
	return st.anim.Update(dt)
}

// Load replaces the scene by the document read from r,
// stopping any drag or animation. Objects whose colors the surface
// does not know are refused. On error, the scene is unchanged.
func (st *Studio) Load(r io.Reader) error {
	sc, err := persist.Decode(r, st.ErrorMode)
	if err != nil {
		return err
	}
	for i, o := range sc.Objects {
		if err := st.checkColors(o); err != nil {
			return errors.Wrapf(err, "object %d", i)
		}
	}
	st.anim.Stop()
	st.drag.End()
	st.reset(sc)
	return st.Redraw()
}

// Save writes the scene to w.
func (st *Studio) Save(w io.Writer) error {
	return persist.Encode(w, st.scene)
}
