package render

import (
	"testing"

	"github.com/benoitkugler/shapecraft/scene"
	"github.com/benoitkugler/shapecraft/turtle"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

func square(x float64, color string) *scene.Square {
	return &scene.Square{
		Pose:  scene.Pose{X: x},
		Style: scene.Style{PenColor: color, PenThickness: 1},
		Size:  10,
	}
}

func kinds(rec *turtle.Recorder) []turtle.CallKind {
	var out []turtle.CallKind
	for _, c := range rec.Calls {
		out = append(out, c.Kind)
	}
	return out
}

func TestRenderFull(t *testing.T) {
	rec := turtle.NewRecorder(850, 600)
	pl := New(rec)
	sc := scene.New(square(0, "red"), square(10, "green"), &scene.Spiral{Color: "blue", Repeat: 2, StartLength: 5})
	if err := pl.RenderFull(sc); err != nil {
		t.Fatal(err)
	}
	want := []turtle.CallKind{turtle.CallClear, turtle.CallStroke, turtle.CallStroke, turtle.CallStroke, turtle.CallFlush}
	if diff := cmp.Diff(want, kinds(rec)); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
	if rec.Calls[1].Color != colornames.Red || rec.Calls[3].Color != colornames.Blue {
		t.Errorf("objects drawn out of order: %v", rec.Calls)
	}
}

func TestRenderExcept(t *testing.T) {
	colors := []string{"red", "green", "blue", "orange"}
	for excluded := range colors {
		var objects []scene.Object
		for i, c := range colors {
			objects = append(objects, square(float64(i), c))
		}

		rec := turtle.NewRecorder(850, 600)
		if err := New(rec).RenderExcept(scene.New(objects...), excluded); err != nil {
			t.Fatal(err)
		}

		// same frame as a full render with the excluded object moved on top
		reordered := append(append([]scene.Object{}, objects[:excluded]...), objects[excluded+1:]...)
		reordered = append(reordered, objects[excluded])
		ref := turtle.NewRecorder(850, 600)
		if err := New(ref).RenderFull(scene.New(reordered...)); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(ref.Calls, rec.Calls); diff != "" {
			t.Errorf("excluded %d: unexpected calls (-want +got):\n%s", excluded, diff)
		}
		if rec.Count(turtle.CallFlush) != 1 {
			t.Errorf("excluded %d: expected a single flush, got %d", excluded, rec.Count(turtle.CallFlush))
		}
		last := rec.Calls[len(rec.Calls)-2]
		if want, _ := turtle.ParseColor(colors[excluded]); last.Color != want {
			t.Errorf("excluded %d: expected %s on top, got %v", excluded, colors[excluded], last.Color)
		}
	}
}

func TestRenderExceptOutOfRange(t *testing.T) {
	sc := scene.New(square(0, "red"), square(10, "green"))
	for _, excluded := range []int{-1, 2, 100} {
		rec, ref := turtle.NewRecorder(850, 600), turtle.NewRecorder(850, 600)
		if err := New(rec).RenderExcept(sc, excluded); err != nil {
			t.Fatal(err)
		}
		if err := New(ref).RenderFull(sc); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(ref.Calls, rec.Calls); diff != "" {
			t.Errorf("excluded %d: unexpected calls (-want +got):\n%s", excluded, diff)
		}
	}
}

func TestDegenerateSkipped(t *testing.T) {
	rec := turtle.NewRecorder(850, 600)
	bad := &scene.Polygon{Style: scene.Style{PenColor: "black"}, Size: 10, Sides: 0}
	sc := scene.New(square(0, "red"), bad, square(10, "green"))
	err := New(rec).RenderFull(sc)
	if !errors.Is(err, scene.ErrDegenerate) {
		t.Fatalf("expected a degenerate geometry error, got %v", err)
	}
	want := []turtle.CallKind{turtle.CallClear, turtle.CallStroke, turtle.CallStroke, turtle.CallFlush}
	if diff := cmp.Diff(want, kinds(rec)); diff != "" {
		t.Errorf("the valid objects should still be drawn (-want +got):\n%s", diff)
	}
}

func TestClearOnly(t *testing.T) {
	rec := turtle.NewRecorder(850, 600)
	New(rec).ClearOnly()
	if diff := cmp.Diff([]turtle.CallKind{turtle.CallClear, turtle.CallFlush}, kinds(rec)); diff != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", diff)
	}
}
