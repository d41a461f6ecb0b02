// Package scene defines the drawable objects of a sketch and
// the ordered collection holding them.
//
// Objects are a closed sum type: the Shape and Pattern categories
// are implemented only by the pointer types of this package, so that
// dispatchers may switch over them exhaustively.
// All coordinates are in model space: origin at the canvas center,
// x to the right, y upward. Angles are in degrees.
package scene

import "encoding/json"

// Kind is the category of an object.
type Kind uint8

const (
	KindShape Kind = iota
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindPattern:
		return "pattern"
	default:
		return "<unknown Kind>"
	}
}

// Object is a drawable element of a Scene.
type Object interface {
	Kind() Kind
	// Type returns the wire name of the object type.
	Type() string
	// Anchor gives access to the position and heading of the object.
	Anchor() *Pose

	clone() Object
}

// Shape is a closed, fillable object which may be dragged and resized.
type Shape interface {
	Object
	Paint() *Style
	// Scale multiplies the size parameters of the shape by f.
	Scale(f float64)
	// HalfExtent returns the half sizes of the box used for hit testing.
	HalfExtent() (w, h float64)

	isShape()
}

// Pattern is a generative, stroke only object.
type Pattern interface {
	Object
	// Ink returns the stroke color.
	Ink() string

	isPattern()
}

// Pose holds the fields common to every object.
type Pose struct {
	X, Y    float64
	Heading float64

	// Extra stores the record keys this package does not know about,
	// so that they survive a load/save cycle.
	Extra map[string]json.RawMessage
}

func (p *Pose) Anchor() *Pose { return p }

// MoveTo sets the position of the object.
func (p *Pose) MoveTo(x, y float64) { p.X, p.Y = x, y }

func (p Pose) clonePose() Pose {
	if p.Extra != nil {
		extra := make(map[string]json.RawMessage, len(p.Extra))
		for k, v := range p.Extra {
			extra[k] = append(json.RawMessage(nil), v...)
		}
		p.Extra = extra
	}
	return p
}

// Style holds the painting parameters of shapes.
// An empty FillColor disables filling.
type Style struct {
	FillColor    string
	PenColor     string
	PenThickness int
}

func (s *Style) Paint() *Style { return s }

type Square struct {
	Pose
	Style
	Size float64
}

type Rectangle struct {
	Pose
	Style
	Width, Height float64
}

type Circle struct {
	Pose
	Style
	Size float64 // radius of the arc
}

type Triangle struct {
	Pose
	Style
	Size float64
}

type Star struct {
	Pose
	Style
	Size float64
}

type Polygon struct {
	Pose
	Style
	Size  float64
	Sides int
}

type Spiral struct {
	Pose
	Color       string
	Repeat      int
	TurnAngle   float64
	StartLength float64
	Grow        float64
}

type Flower struct {
	Pose
	Color  string
	Petals int
	Radius float64
}

type Mandala struct {
	Pose
	Color   string
	Layers  int
	Step    float64
	Circles int
}

// Grid lines are always axis aligned: the heading is
// stored but not used when drawing.
type Grid struct {
	Pose
	Color    string
	Rows     int
	Cols     int
	CellSize float64
}

type RandomWalk struct {
	Pose
	Color   string
	Steps   int
	StepLen float64
}

func (*Square) Kind() Kind     { return KindShape }
func (*Rectangle) Kind() Kind  { return KindShape }
func (*Circle) Kind() Kind     { return KindShape }
func (*Triangle) Kind() Kind   { return KindShape }
func (*Star) Kind() Kind       { return KindShape }
func (*Polygon) Kind() Kind    { return KindShape }
func (*Spiral) Kind() Kind     { return KindPattern }
func (*Flower) Kind() Kind     { return KindPattern }
func (*Mandala) Kind() Kind    { return KindPattern }
func (*Grid) Kind() Kind       { return KindPattern }
func (*RandomWalk) Kind() Kind { return KindPattern }

func (*Square) Type() string     { return "square" }
func (*Rectangle) Type() string  { return "rectangle" }
func (*Circle) Type() string     { return "circle" }
func (*Triangle) Type() string   { return "triangle" }
func (*Star) Type() string       { return "star" }
func (*Polygon) Type() string    { return "polygon" }
func (*Spiral) Type() string     { return "spiral" }
func (*Flower) Type() string     { return "flower" }
func (*Mandala) Type() string    { return "mandala" }
func (*Grid) Type() string       { return "grid" }
func (*RandomWalk) Type() string { return "random_walk" }

func (*Square) isShape()    {}
func (*Rectangle) isShape() {}
func (*Circle) isShape()    {}
func (*Triangle) isShape()  {}
func (*Star) isShape()      {}
func (*Polygon) isShape()   {}

func (*Spiral) isPattern()     {}
func (*Flower) isPattern()     {}
func (*Mandala) isPattern()    {}
func (*Grid) isPattern()       {}
func (*RandomWalk) isPattern() {}

func (o *Spiral) Ink() string     { return o.Color }
func (o *Flower) Ink() string     { return o.Color }
func (o *Mandala) Ink() string    { return o.Color }
func (o *Grid) Ink() string       { return o.Color }
func (o *RandomWalk) Ink() string { return o.Color }

func (o *Square) Scale(f float64)   { o.Size *= f }
func (o *Circle) Scale(f float64)   { o.Size *= f }
func (o *Triangle) Scale(f float64) { o.Size *= f }
func (o *Star) Scale(f float64)     { o.Size *= f }
func (o *Polygon) Scale(f float64)  { o.Size *= f }
func (o *Rectangle) Scale(f float64) {
	o.Width *= f
	o.Height *= f
}

// The hit box of sized shapes spans size in every direction
// from the anchor, whatever the actual geometry.
func (o *Square) HalfExtent() (w, h float64)   { return o.Size, o.Size }
func (o *Circle) HalfExtent() (w, h float64)   { return o.Size, o.Size }
func (o *Triangle) HalfExtent() (w, h float64) { return o.Size, o.Size }
func (o *Star) HalfExtent() (w, h float64)     { return o.Size, o.Size }
func (o *Polygon) HalfExtent() (w, h float64)  { return o.Size, o.Size }

// HalfExtent uses the full width and height of the rectangle.
func (o *Rectangle) HalfExtent() (w, h float64) { return o.Width, o.Height }

func (o *Square) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Rectangle) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Circle) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Triangle) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Star) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Polygon) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Spiral) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Flower) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Mandala) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *Grid) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

func (o *RandomWalk) clone() Object {
	c := *o
	c.Pose = o.Pose.clonePose()
	return &c
}

// Clone returns a deep copy of o.
func Clone(o Object) Object { return o.clone() }
