// Package anim mutates a whole scene step by step, redrawing it
// after each step.
//
// An Engine does not own a clock: the host calls Tick (or Update)
// at its own cadence, so that the display refreshes between steps and
// the animation can be stopped between any two of them.
package anim

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/benoitkugler/shapecraft/config"
	"github.com/benoitkugler/shapecraft/render"
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/utils"
)

// Engine runs at most one animation at a time on a scene.
type Engine struct {
	scene    *scene.Scene
	pipeline *render.Pipeline

	mode      Mode
	iteration int          // steps done by the current one-shot mode
	snapshot  *scene.Scene // saved by blink

	cycling bool // cleared to stop the color cycle on its next tick
	hue     float64
	elapsed time.Duration
}

// NewEngine returns an idle engine animating sc, redrawn with pl.
func NewEngine(sc *scene.Scene, pl *render.Pipeline) *Engine {
	return &Engine{scene: sc, pipeline: pl}
}

// Mode returns the current animation, or None.
func (e *Engine) Mode() Mode { return e.mode }

// Running returns true if an animation is in progress.
func (e *Engine) Running() bool { return e.mode != None }

// Hue returns the last hue, in degrees, applied by the color cycle.
func (e *Engine) Hue() float64 { return e.hue }

// Start begins the animation m. Any one-shot mode in progress is
// aborted, and the color cycle is stopped before any one-shot mode.
// Starting the color cycle while it runs does nothing; otherwise the hue
// starts again from 0. Start(None) is the same as Stop.
func (e *Engine) Start(m Mode) {
	switch {
	case m == None:
		e.Stop()
	case m.Cyclic():
		if e.cycling {
			return
		}
		e.abort()
		e.mode, e.cycling = m, true
		e.hue, e.elapsed = 0, 0
	default:
		e.cycling = false
		e.abort()
		e.mode, e.iteration = m, 0
		if m == Blink {
			e.snapshot = e.scene.Clone()
		}
	}
}

// Stop aborts a one-shot mode, restoring the scene saved by blink.
// A running color cycle ends on its next tick.
func (e *Engine) Stop() {
	e.cycling = false
	e.abort()
}

// abort drops the one-shot mode in progress, if any.
func (e *Engine) abort() {
	if e.mode == None || e.mode.Cyclic() {
		return
	}
	if e.mode == Blink && e.snapshot != nil {
		e.scene.Restore(e.snapshot)
		_ = e.pipeline.RenderFull(e.scene)
	}
	e.mode, e.iteration, e.snapshot = None, 0, nil
}

// Tick performs one step of the current animation, redrawing the scene
// exactly once. It returns false when no animation is running anymore.
// Render errors do not stop the animation.
func (e *Engine) Tick() (running bool, err error) {
	switch {
	case e.mode == None:
		return false, nil
	case e.mode.Cyclic():
		if !e.cycling {
			e.mode = None
			return false, nil
		}
		return true, e.cycleColors()
	default:
		err = e.step()
		e.iteration++
		if e.iteration < e.mode.iterations() {
			return true, err
		}
		if e.mode == Blink {
			e.scene.Restore(e.snapshot)
			if rerr := e.pipeline.RenderFull(e.scene); err == nil {
				err = rerr
			}
		}
		e.mode, e.iteration, e.snapshot = None, 0, nil
		return false, err
	}
}

// step applies one iteration of a one-shot mode.
func (e *Engine) step() error {
	switch e.mode {
	case Rotate:
		for _, o := range e.scene.Objects {
			o.Anchor().Heading += config.RotateStep
		}
	case Move:
		for _, o := range e.scene.Objects {
			o.Anchor().X += config.MoveStep
		}
	case Expand:
		for _, s := range e.scene.Shapes() {
			s.Scale(config.ExpandFactor)
		}
	case Contract:
		for _, s := range e.scene.Shapes() {
			s.Scale(config.ContractFactor)
		}
	case Blink:
		if e.iteration%2 == 0 {
			e.pipeline.ClearOnly()
			return nil
		}
	}
	return e.pipeline.RenderFull(e.scene)
}

func (e *Engine) cycleColors() error {
	e.hue = math.Mod(e.hue+config.HueStep, 360)
	fill := HueColor(e.hue)
	for _, s := range e.scene.Shapes() {
		s.Paint().FillColor = fill
	}
	return e.pipeline.RenderFull(e.scene)
}

// Update advances the animation by the time dt elapsed since the
// last call. One-shot modes do one step per call; the color cycle
// does one tick every config.ColorCycleDelay.
// It returns the first render error.
func (e *Engine) Update(dt time.Duration) error {
	if !e.mode.Cyclic() {
		_, err := e.Tick()
		return err
	}
	e.elapsed += dt
	var first error
	for e.elapsed >= config.ColorCycleDelay {
		e.elapsed -= config.ColorCycleDelay
		running, err := e.Tick()
		if err != nil && first == nil {
			first = err
		}
		if !running {
			e.elapsed = 0
			break
		}
	}
	return first
}

// Run plays the animation m until it completes, pausing
// config.ColorCycleDelay between color cycle ticks. The color cycle
// never completes: it runs until ctx is done.
// Cancelling ctx stops the animation between two steps and returns ctx.Err().
// Otherwise, the first render error met is returned.
func (e *Engine) Run(ctx context.Context, m Mode) error {
	e.Start(m)
	var first error
	tick := func() bool {
		running, err := e.Tick()
		if err != nil && first == nil {
			first = err
		}
		return running
	}

	if !m.Cyclic() {
		for {
			if err := ctx.Err(); err != nil {
				e.Stop()
				return err
			}
			if !tick() {
				return first
			}
		}
	}

	ticker := time.NewTicker(config.ColorCycleDelay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.Stop()
			e.mode = None
			return ctx.Err()
		case <-ticker.C:
			if !tick() {
				return first
			}
		}
	}
}

// HueColor returns the "#rrggbb" code of the fully saturated,
// full value color of the given hue (in degrees).
// Channels are truncated, not rounded.
func HueColor(hue float64) string {
	h := math.Mod(hue, 360) / 360
	if h < 0 {
		h += 1
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	q, t := 1-f, 1-(1-f)
	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = 1, t, 0
	case 1:
		r, g, b = q, 1, 0
	case 2:
		r, g, b = 0, 1, t
	case 3:
		r, g, b = 0, q, 1
	case 4:
		r, g, b = t, 0, 1
	case 5:
		r, g, b = 1, 0, q
	}
	channel := func(c float64) int { return utils.Clamp(int(c*255), 0, 255) }
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}
