package turtle

import (
	"fmt"
	"image/color"
)

var _ Surface = (*Recorder)(nil) // assert interface conformance

// CallKind identifies a recorded Surface method.
type CallKind uint8

const (
	CallClear CallKind = iota
	CallStroke
	CallFill
	CallFlush
)

func (k CallKind) String() string {
	switch k {
	case CallClear:
		return "clear"
	case CallStroke:
		return "stroke"
	case CallFill:
		return "fill"
	case CallFlush:
		return "flush"
	default:
		return "<unknown CallKind>"
	}
}

// Call is one recorded Surface method invocation.
// Path, Color and Width are only set for strokes and fills.
type Call struct {
	Kind  CallKind
	Path  Path
	Color color.Color
	Width float64
}

func (c Call) String() string {
	switch c.Kind {
	case CallStroke:
		return fmt.Sprintf("stroke(%s, %v, %g)", c.Path, c.Color, c.Width)
	case CallFill:
		return fmt.Sprintf("fill(%s, %v)", c.Path, c.Color)
	default:
		return c.Kind.String()
	}
}

// Recorder is a Surface keeping track of every call it receives,
// instead of painting anything.
type Recorder struct {
	W, H  int
	Calls []Call
}

// NewRecorder returns a recorder with the given pixel size.
func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (w, h int) { return r.W, r.H }

// ResolveColor accepts the same colors as ParseColor.
func (r *Recorder) ResolveColor(name string) (color.Color, error) { return ParseColor(name) }

func (r *Recorder) Clear() { r.Calls = append(r.Calls, Call{Kind: CallClear}) }

func (r *Recorder) Stroke(p Path, c color.Color, width float64) {
	r.Calls = append(r.Calls, Call{Kind: CallStroke, Path: append(Path(nil), p...), Color: c, Width: width})
}

func (r *Recorder) Fill(p Path, c color.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallFill, Path: append(Path(nil), p...), Color: c})
}

func (r *Recorder) Flush() { r.Calls = append(r.Calls, Call{Kind: CallFlush}) }

// Reset forgets the recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(kind CallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Paths returns the paths of the recorded strokes and fills, in order.
func (r *Recorder) Paths() []Path {
	var out []Path
	for _, c := range r.Calls {
		if c.Kind == CallStroke || c.Kind == CallFill {
			out = append(out, c.Path)
		}
	}
	return out
}
