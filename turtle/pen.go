// Package turtle implements a pen cursor turning relative moves
// (forward, turn, arc) into paths, sent lazily to a Surface.
//
// Angles are in degrees, 0 pointing along +x and increasing counter
// clockwise. Coordinates are in model space (y up).
package turtle

import (
	"image/color"
	"math"
)

// strokeItem is a finished outline waiting to be painted.
type strokeItem struct {
	path  Path
	color color.Color
	width float64
}

// Pen is a turtle style cursor: a position, a heading, a pen which may be
// up or down, a pen color, a fill color and a pen width.
//
// Lines drawn while the pen is down are accumulated into a Path,
// which is handed to the Surface only when the pen is lifted or its
// style changes. Between BeginFill and EndFill, every visited position
// also goes to the fill outline, which is painted under the strokes
// drawn in the meantime.
type Pen struct {
	surface Surface

	pos     Point
	heading float64
	down    bool

	penColor  color.Color
	fillColor color.Color
	width     float64

	stroke  Path // current outline, empty when nothing is pending
	filling bool
	fill    Path
	pending []strokeItem // strokes produced while filling
}

// NewPen returns a pen at the origin, heading east, pen down,
// drawing in black with a width of 1.
func NewPen(s Surface) *Pen {
	return &Pen{
		surface:   s,
		down:      true,
		penColor:  color.Black,
		fillColor: color.Black,
		width:     1,
	}
}

// Surface returns the surface the pen draws on.
func (p *Pen) Surface() Surface { return p.surface }

// Pos returns the current position.
func (p *Pen) Pos() Point { return p.pos }

// Heading returns the current heading, in degrees.
func (p *Pen) Heading() float64 { return p.heading }

// IsDown reports whether moves are drawn.
func (p *Pen) IsDown() bool { return p.down }

// Filling reports whether a fill is in progress.
func (p *Pen) Filling() bool { return p.filling }

// PenUp lifts the pen, painting the pending outline.
func (p *Pen) PenUp() {
	p.flushStroke()
	p.down = false
}

// PenDown lowers the pen: following moves are drawn.
func (p *Pen) PenDown() {
	p.down = true
}

// SetHeading turns the pen to the absolute angle deg.
func (p *Pen) SetHeading(deg float64) { p.heading = deg }

// Left turns the pen counter clockwise by deg.
func (p *Pen) Left(deg float64) { p.heading += deg }

// Right turns the pen clockwise by deg.
func (p *Pen) Right(deg float64) { p.heading -= deg }

// SetWidth changes the pen width for the following strokes.
func (p *Pen) SetWidth(w float64) {
	if w == p.width {
		return
	}
	p.flushStroke()
	p.width = w
}

// SetColor resolves and sets the pen and fill colors.
// An empty fill keeps the current fill color. When a color is rejected
// by the surface, the pen is left unchanged and the error is returned.
func (p *Pen) SetColor(pen, fill string) error {
	pc, err := p.surface.ResolveColor(pen)
	if err != nil {
		return err
	}
	fc := p.fillColor
	if fill != "" {
		if fc, err = p.surface.ResolveColor(fill); err != nil {
			return err
		}
	}
	p.flushStroke()
	p.penColor, p.fillColor = pc, fc
	return nil
}

// Goto moves to (x, y), drawing a line if the pen is down.
func (p *Pen) Goto(x, y float64) {
	to := Point{x, y}
	if p.down {
		if len(p.stroke) == 0 {
			p.stroke.Start(p.pos)
		}
		p.stroke.Line(to)
	}
	if p.filling {
		p.fill.Line(to)
	}
	p.pos = to
}

// Forward moves by d along the heading.
func (p *Pen) Forward(d float64) {
	sin, cos := math.Sincos(p.heading * math.Pi / 180)
	p.Goto(p.pos.X+d*cos, p.pos.Y+d*sin)
}

// Circle draws an arc of the given radius, spanning extent degrees.
// The center lies radius units to the left of the pen: a positive radius
// turns counter clockwise, a negative one clockwise.
// The heading changes by the swept angle.
func (p *Pen) Circle(radius, extent float64) {
	sweep := extent
	if radius < 0 {
		sweep = -extent
	}
	defer func() { p.heading += sweep }()
	if radius == 0 || extent == 0 {
		return
	}

	h := p.heading * math.Pi / 180
	sin, cos := math.Sincos(h)
	center := Point{p.pos.X - radius*sin, p.pos.Y + radius*cos}
	r := math.Abs(radius)
	theta0 := math.Atan2(p.pos.Y-center.Y, p.pos.X-center.X)
	rad := sweep * math.Pi / 180

	var end Point
	if p.down {
		if len(p.stroke) == 0 {
			p.stroke.Start(p.pos)
		}
		end = p.stroke.arcTo(center, r, theta0, rad)
	}
	if p.filling {
		end = p.fill.arcTo(center, r, theta0, rad)
	}
	if !p.down && !p.filling {
		sin, cos := math.Sincos(theta0 + rad)
		end = Point{center.X + r*cos, center.Y + r*sin}
	}
	p.pos = end
}

// BeginFill starts recording the outline to fill.
func (p *Pen) BeginFill() {
	p.flushStroke()
	p.filling = true
	p.fill = Path{MoveTo(p.pos)}
	p.pending = p.pending[:0]
}

// EndFill paints the recorded outline with the fill color,
// then the strokes drawn since BeginFill.
func (p *Pen) EndFill() {
	if !p.filling {
		return
	}
	p.flushStroke()
	p.filling = false
	if p.fill.Segments() > 1 {
		p.fill.Stop(true)
		p.surface.Fill(p.fill, p.fillColor)
	}
	for _, s := range p.pending {
		p.surface.Stroke(s.path, s.color, s.width)
	}
	p.fill, p.pending = nil, p.pending[:0]
}

// flushStroke hands the current outline to the surface
// (or keeps it aside while filling).
func (p *Pen) flushStroke() {
	if p.stroke.Segments() == 0 {
		p.stroke = nil
		return
	}
	item := strokeItem{path: p.stroke, color: p.penColor, width: p.width}
	p.stroke = nil
	if p.filling {
		p.pending = append(p.pending, item)
		return
	}
	p.surface.Stroke(item.path, item.color, item.width)
}
