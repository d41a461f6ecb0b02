// Implements the pixel backend of the scene engine,
// by wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/benoitkugler/shapecraft/turtle"
	"github.com/benoitkugler/shapecraft/utils"
	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
)

var _ turtle.Surface = (*Surface)(nil) // assert interface conformance

// Surface paints into a back buffer, published to the front image
// by Flush, so that readers never see a partially drawn frame.
type Surface struct {
	width, height int

	back, front *image.RGBA
	background  color.Color
	frames      int

	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	toPixel matrix.Matrix
}

// NewSurface returns a white surface of the given pixel size.
// The model origin is mapped to the center of the surface, with
// the y axis pointing up.
func NewSurface(width, height int) *Surface {
	bounds := image.Rect(0, 0, width, height)
	s := &Surface{
		width:      width,
		height:     height,
		back:       image.NewRGBA(bounds),
		front:      image.NewRGBA(bounds),
		background: color.White,
		toPixel:    matrix.Scale(1, -1).Mul(matrix.Translate(float64(width)/2, float64(height)/2)),
	}
	scanner := rasterx.NewScannerGV(width, height, s.back, bounds)
	s.dasher = rasterx.NewDasher(width, height, scanner)
	s.filler = rasterx.NewFiller(width, height, scanner)
	s.filler.SetWinding(false) // even-odd, as the turtle screen does
	s.Clear()
	s.Flush()
	return s
}

func (s *Surface) Size() (w, h int) { return s.width, s.height }

// ResolveColor accepts the names of the SVG palette and "#rgb" / "#rrggbb" codes.
func (s *Surface) ResolveColor(name string) (color.Color, error) { return turtle.ParseColor(name) }

// SetBackground changes the color used by Clear. The new background
// is visible after the next Clear and Flush. An invalid name leaves
// the surface unchanged.
func (s *Surface) SetBackground(name string) error {
	c, err := s.ResolveColor(name)
	if err != nil {
		return errors.Wrap(err, "background")
	}
	s.background = c
	return nil
}

// Background returns the current background color.
func (s *Surface) Background() color.Color { return s.background }

// Clear fills the back buffer with the background color.
func (s *Surface) Clear() {
	xdraw.Draw(s.back, s.back.Bounds(), image.NewUniform(s.background), image.Point{}, xdraw.Src)
}

// Stroke draws the outline of p, with round caps and joins.
func (s *Surface) Stroke(p turtle.Path, c color.Color, width float64) {
	if width <= 0 || len(p) == 0 {
		return
	}
	s.dasher.Clear()
	s.dasher.SetStroke(fixed.Int26_6(width*64), 4*64, rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	s.dasher.SetColor(c)
	p.DrawTo(s.dasher, s.toPixel)
	s.dasher.Draw()
}

// Fill paints the interior of p, using the even-odd rule.
func (s *Surface) Fill(p turtle.Path, c color.Color) {
	if len(p) == 0 {
		return
	}
	s.filler.Clear()
	s.filler.SetColor(c)
	p.DrawTo(s.filler, s.toPixel)
	s.filler.Draw()
}

// Flush publishes the back buffer.
func (s *Surface) Flush() {
	copy(s.front.Pix, s.back.Pix)
	s.frames++
}

// Image returns the last published frame.
// It is updated in place by Flush.
func (s *Surface) Image() *image.RGBA { return s.front }

// Frames returns the number of published frames.
func (s *Surface) Frames() int { return s.frames }

// WritePNG encodes the last published frame.
func (s *Surface) WritePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, s.front), "encoding frame")
}

// Thumbnail returns a copy of the last published frame, scaled down
// to fit in a maxW x maxH box while keeping its aspect ratio.
func (s *Surface) Thumbnail(maxW, maxH int) *image.RGBA {
	ratio := utils.Min(float64(maxW)/float64(s.width), float64(maxH)/float64(s.height))
	ratio = utils.Clamp(ratio, 0, 1)
	w := utils.Max(1, int(float64(s.width)*ratio))
	h := utils.Max(1, int(float64(s.height)*ratio))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), s.front, s.front.Bounds(), xdraw.Src, nil)
	return dst
}
