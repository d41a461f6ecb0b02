package turtle

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
)

// This file defines the basic path structure, built by a Pen
// in model space and sent to a Drawer only when painted.

// Point is a location in model space.
type Point struct{ X, Y float64 }

// Drawer accumulates path commands in surface space.
// It is implemented by rasterx.Filler and rasterx.Dasher.
type Drawer interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a linear segment to the current curve.
	Line(b fixed.Point26_6)
	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop closes the curve to its start point if closeLoop is true
	Stop(closeLoop bool)
}

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`, after applying the transform `m`
	drawTo(d Drawer, m matrix.Matrix)
}

type MoveTo Point

type LineTo Point

type CubicTo [3]Point

type Close struct{}

// starts a new curve at the given point.
func (op MoveTo) drawTo(d Drawer, m matrix.Matrix) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(toFixed(m, Point(op)))
}

func (op LineTo) drawTo(d Drawer, m matrix.Matrix) {
	d.Line(toFixed(m, Point(op)))
}

func (op CubicTo) drawTo(d Drawer, m matrix.Matrix) {
	d.CubeBezier(toFixed(m, op[0]), toFixed(m, op[1]), toFixed(m, op[2]))
}

func (op Close) drawTo(d Drawer, _ matrix.Matrix) {
	d.Stop(true)
}

// toFixed maps p through m, using the row vector convention
// x' = a x + c y + e, y' = b x + d y + f.
func toFixed(m matrix.Matrix, p Point) fixed.Point26_6 {
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// Path describes a sequence of basic operations, which should not be nil
// Higher-level shapes are reduced to a path by a Pen.
type Path []Operation

// DrawTo sends the path to d, mapping model space to surface space with m.
func (p Path) DrawTo(d Drawer, m matrix.Matrix) {
	for _, op := range p {
		op.drawTo(d, m)
	}
	d.Stop(false)
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Segments returns the number of drawing operations (lines and curves).
func (p Path) Segments() int {
	n := 0
	for _, op := range p {
		switch op.(type) {
		case LineTo, CubicTo:
			n++
		}
	}
	return n
}
