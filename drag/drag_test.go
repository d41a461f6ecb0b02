package drag

import (
	"testing"

	"github.com/benoitkugler/shapecraft/render"
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/turtle"
	"github.com/google/go-cmp/cmp"
)

func style() scene.Style { return scene.Style{PenColor: "black", PenThickness: 1} }

func TestScreenToModel(t *testing.T) {
	for _, test := range []struct {
		sx, sy, x, y float64
	}{
		{425, 300, 0, 0},
		{0, 0, -425, 300},
		{850, 600, 425, -300},
		{435, 280, 10, 20},
	} {
		x, y := ScreenToModel(850, 600, test.sx, test.sy)
		if x != test.x || y != test.y {
			t.Errorf("(%g, %g): expected (%g, %g), got (%g, %g)", test.sx, test.sy, test.x, test.y, x, y)
		}
	}
}

func TestHit(t *testing.T) {
	sq := &scene.Square{Pose: scene.Pose{X: 10, Y: 10}, Style: style(), Size: 5}
	rect := &scene.Rectangle{Pose: scene.Pose{X: 0, Y: 0}, Style: style(), Width: 40, Height: 10}
	for _, test := range []struct {
		s    scene.Shape
		x, y float64
		want bool
	}{
		{sq, 10, 10, true},
		{sq, 15, 15, true}, // edges are included
		{sq, 5, 5, true},
		{sq, 15.1, 10, false},
		{sq, 10, 4.9, false},
		{rect, 40, 10, true}, // full width and height on each side
		{rect, -40, -10, true},
		{rect, 41, 0, false},
		{rect, 0, 11, false},
	} {
		if got := Hit(test.s, test.x, test.y); got != test.want {
			t.Errorf("%s at (%g, %g): expected %v", test.s.Type(), test.x, test.y, test.want)
		}
	}
}

func TestPickTopmost(t *testing.T) {
	a := &scene.Square{Style: style(), Size: 50}
	b := &scene.Circle{Pose: scene.Pose{X: 10}, Style: style(), Size: 50}
	pattern := &scene.Flower{Color: "red", Petals: 5, Radius: 100}
	sc := scene.New(a, b, pattern)

	if got := Pick(sc, 5, 5); got != 1 {
		t.Errorf("expected the topmost shape (1), got %d", got)
	}
	if got := Pick(sc, -45, 0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := Pick(sc, 200, 200); got != -1 {
		t.Errorf("expected no pick, got %d", got)
	}
}

func TestDragCycle(t *testing.T) {
	rec := turtle.NewRecorder(850, 600)
	a := &scene.Square{Pose: scene.Pose{X: 0, Y: 0}, Style: style(), Size: 20}
	b := &scene.Square{Pose: scene.Pose{X: 100, Y: 0}, Style: style(), Size: 20}
	sc := scene.New(a, b)
	c := NewController(sc, render.New(rec))

	if c.Start(0, 0) {
		t.Fatal("nothing lies at the top left corner")
	}
	if _, ok := c.Dragging(); ok {
		t.Fatal("controller should be idle")
	}
	if err := c.Move(10, 10); err != nil || len(rec.Calls) != 0 {
		t.Fatal("moving while idle should do nothing")
	}

	// model (5, 5): 5 units right and up of a's anchor
	if !c.Start(430, 295) {
		t.Fatal("expected a pick")
	}
	if i, ok := c.Dragging(); !ok || i != 0 {
		t.Fatalf("expected to drag object 0, got %d, %v", i, ok)
	}
	if err := c.Move(530, 195); err != nil {
		t.Fatal(err)
	}
	// the offset is kept: pointer at model (105, 105)
	if a.X != 100 || a.Y != 100 {
		t.Errorf("unexpected position (%g, %g)", a.X, a.Y)
	}
	// dragged object is drawn last
	strokes := rec.Paths()
	if diff := cmp.Diff(turtle.Point{X: 100, Y: 100}, turtle.Point(strokes[1][0].(turtle.MoveTo))); diff != "" {
		t.Errorf("dragged object should be on top (-want +got):\n%s", diff)
	}

	c.End()
	if _, ok := c.Dragging(); ok {
		t.Error("controller should be idle")
	}
	if a.X != 100 || a.Y != 100 {
		t.Error("the last position should be kept")
	}
}
