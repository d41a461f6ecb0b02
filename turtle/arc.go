package turtle

import "math"

// maxArcStep is the maximum angle, in radians, a single cubic
// spline is allowed to span when approximating a circular arc.
const maxArcStep = math.Pi / 8

// arcTo appends to p the circular arc of center c and radius r,
// starting at angle theta0 and sweeping by sweep (radians, counter
// clockwise when positive). The end point is returned, computed directly
// from the angle so that no error accumulates along the splines.
func (p *Path) arcTo(c Point, r, theta0, sweep float64) Point {
	// Approximate the circular arc using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	// The method is simplified for circles.
	segs := int(math.Abs(sweep)/maxArcStep) + 1
	dTheta := sweep / float64(segs)
	tde := math.Tan(dTheta / 2)
	alpha := math.Sin(dTheta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	at := func(theta float64) (pt, tangent Point) {
		sin, cos := math.Sincos(theta)
		return Point{c.X + r*cos, c.Y + r*sin}, Point{-r * sin, r * cos}
	}

	s, ds := at(theta0)
	for i := 1; i <= segs; i++ {
		e, de := at(theta0 + dTheta*float64(i))
		p.CubeBezier(
			Point{s.X + alpha*ds.X, s.Y + alpha*ds.Y},
			Point{e.X - alpha*de.X, e.Y - alpha*de.Y},
			e)
		s, ds = e, de
	}
	return s
}
