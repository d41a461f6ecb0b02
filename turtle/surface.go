package turtle

import "image/color"

// Surface is the render target of a Pen.
// Paths are given in model space: origin at the center of the surface,
// y axis pointing up. Implementations map them to their own pixel space.
type Surface interface {
	// Size returns the pixel dimensions of the surface.
	Size() (w, h int)
	// ResolveColor converts a color string to a color,
	// or returns a *scene.InvalidColorError.
	ResolveColor(name string) (color.Color, error)
	// Clear erases every drawing.
	Clear()
	// Stroke draws the outline of p.
	Stroke(p Path, c color.Color, width float64)
	// Fill paints the interior of p.
	Fill(p Path, c color.Color)
	// Flush publishes what has been drawn since the last Flush,
	// in a single update.
	Flush()
}
