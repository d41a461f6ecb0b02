// Package shapes turns scene objects into pen moves.
//
// Every construction starts pen up at the object anchor, with the object
// heading, and leaves the pen up. Objects failing the geometric guards
// are not drawn at all and a *scene.DegenerateGeometryError is returned.
package shapes

import (
	"fmt"
	"math/rand"

	"github.com/benoitkugler/shapecraft/config"
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/turtle"
)

// Options tunes the constructions.
type Options struct {
	// Rand is the source used by random walks.
	// If nil, the global math/rand source is used.
	Rand *rand.Rand

	// PatternWidth is the pen width of patterns, 1 if zero.
	PatternWidth float64
}

// Draw dispatches o to DrawShape or DrawPattern, with default options.
func Draw(pen *turtle.Pen, o scene.Object) error { return Options{}.Draw(pen, o) }

// DrawShape draws s with default options.
func DrawShape(pen *turtle.Pen, s scene.Shape) error { return Options{}.DrawShape(pen, s) }

// DrawPattern draws p with default options.
func DrawPattern(pen *turtle.Pen, p scene.Pattern) error { return Options{}.DrawPattern(pen, p) }

// Draw dispatches o to DrawShape or DrawPattern.
func (opts Options) Draw(pen *turtle.Pen, o scene.Object) error {
	switch o := o.(type) {
	case scene.Shape:
		return opts.DrawShape(pen, o)
	case scene.Pattern:
		return opts.DrawPattern(pen, o)
	default:
		panic(fmt.Sprintf("unexpected object type %T", o))
	}
}

// guard rejects the objects which would produce a meaningless draw
// (non finite numbers, zero sides, non positive lengths).
func guard(o scene.Object) error {
	if err := scene.Validate(o); err != nil {
		return &scene.DegenerateGeometryError{Type: o.Type(), Reason: err.Error()}
	}
	return nil
}

// moveToAnchor lifts the pen and places it at the anchor of o.
func moveToAnchor(pen *turtle.Pen, p *scene.Pose) {
	pen.PenUp()
	pen.Goto(p.X, p.Y)
	pen.SetHeading(p.Heading)
}

// DrawShape draws the outline of s, filled when its fill color is not empty.
func (opts Options) DrawShape(pen *turtle.Pen, s scene.Shape) error {
	if err := guard(s); err != nil {
		return err
	}
	moveToAnchor(pen, s.Anchor())

	style := s.Paint()
	if err := pen.SetColor(style.PenColor, style.FillColor); err != nil {
		return err
	}
	pen.SetWidth(float64(style.PenThickness))
	pen.PenDown()

	fill := style.FillColor != ""
	if fill {
		pen.BeginFill()
	}

	switch s := s.(type) {
	case *scene.Square:
		for range 4 {
			pen.Forward(s.Size)
			pen.Right(90)
		}
	case *scene.Rectangle:
		for range 2 {
			pen.Forward(s.Width)
			pen.Right(90)
			pen.Forward(s.Height)
			pen.Right(90)
		}
	case *scene.Circle:
		pen.Circle(s.Size, 360)
	case *scene.Triangle:
		for range 3 {
			pen.Forward(s.Size)
			pen.Left(120)
		}
	case *scene.Star:
		for range 5 {
			pen.Forward(s.Size)
			pen.Right(144)
		}
	case *scene.Polygon:
		angle := 360 / float64(s.Sides)
		for range s.Sides {
			pen.Forward(s.Size)
			pen.Right(angle)
		}
	}

	if fill {
		pen.EndFill()
	}
	pen.PenUp()
	return nil
}

// DrawPattern draws the strokes of p. Patterns are never filled.
func (opts Options) DrawPattern(pen *turtle.Pen, p scene.Pattern) error {
	if err := guard(p); err != nil {
		return err
	}
	anchor := p.Anchor()
	moveToAnchor(pen, anchor)
	if err := pen.SetColor(p.Ink(), ""); err != nil {
		return err
	}
	width := opts.PatternWidth
	if width == 0 {
		width = 1
	}
	pen.SetWidth(width)
	pen.PenDown()

	switch p := p.(type) {
	case *scene.Spiral:
		drawSpiral(pen, p)
	case *scene.Flower:
		drawFlower(pen, p)
	case *scene.Mandala:
		drawMandala(pen, p)
	case *scene.Grid:
		drawGrid(pen, p)
	case *scene.RandomWalk:
		opts.drawRandomWalk(pen, p)
	}

	pen.PenUp()
	return nil
}

func drawSpiral(pen *turtle.Pen, p *scene.Spiral) {
	length := p.StartLength
	for range p.Repeat {
		pen.Forward(length)
		pen.Right(p.TurnAngle)
		length += p.Grow
	}
}

// each petal is made of two 60° arcs, joined by a 120° turn
func drawFlower(pen *turtle.Pen, p *scene.Flower) {
	spacing := 360 / float64(p.Petals)
	for range p.Petals {
		for range 2 {
			pen.Circle(p.Radius, 60)
			pen.Left(120)
		}
		pen.Left(spacing)
	}
}

// every dot is reached pen up from the pattern origin
func drawMandala(pen *turtle.Pen, p *scene.Mandala) {
	for i := range p.Layers {
		r := float64(i+1) * p.Step
		for j := range p.Circles {
			pen.PenUp()
			pen.Goto(p.X, p.Y)
			pen.SetHeading(360 * float64(j) / float64(p.Circles))
			pen.Forward(r)
			pen.PenDown()
			pen.Circle(config.MandalaDotRadius, 360)
		}
	}
}

// rows extend downward and columns rightward from the anchor,
// whatever the heading
func drawGrid(pen *turtle.Pen, p *scene.Grid) {
	width, height := float64(p.Cols)*p.CellSize, float64(p.Rows)*p.CellSize
	for r := range p.Rows + 1 {
		pen.PenUp()
		pen.Goto(p.X, p.Y-float64(r)*p.CellSize)
		pen.SetHeading(0)
		pen.PenDown()
		pen.Forward(width)
	}
	for c := range p.Cols + 1 {
		pen.PenUp()
		pen.Goto(p.X+float64(c)*p.CellSize, p.Y)
		pen.SetHeading(-90)
		pen.PenDown()
		pen.Forward(height)
	}
}

var walkHeadings = [4]float64{0, 90, 180, 270}

func (opts Options) drawRandomWalk(pen *turtle.Pen, p *scene.RandomWalk) {
	intn := rand.Intn
	if opts.Rand != nil {
		intn = opts.Rand.Intn
	}
	for range p.Steps {
		pen.SetHeading(walkHeadings[intn(len(walkHeadings))])
		pen.Forward(p.StepLen)
	}
}
