package persist

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/shapecraft/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func sampleScene() *scene.Scene {
	style := scene.Style{FillColor: "red", PenColor: "black", PenThickness: 2}
	sc := scene.New(
		&scene.Square{Pose: scene.Pose{X: 1, Y: 2, Heading: 30}, Style: style, Size: 50},
		&scene.Rectangle{Pose: scene.Pose{X: -10, Y: 5.5, Extra: map[string]json.RawMessage{"size": json.RawMessage(`50`)}},
			Style: style, Width: 80, Height: 40},
		&scene.Circle{Style: scene.Style{PenColor: "#00ff00", PenThickness: 1}, Size: 25},
		&scene.Triangle{Pose: scene.Pose{X: 100}, Style: style, Size: 60},
		&scene.Star{Pose: scene.Pose{Y: -100}, Style: style, Size: 70},
		&scene.Polygon{Style: style, Size: 30, Sides: 7},
		&scene.Spiral{Pose: scene.Pose{X: 3, Y: 4}, Color: "blue", Repeat: 20, TurnAngle: 91, StartLength: 2, Grow: 1.5},
		&scene.Flower{Color: "pink", Petals: 8, Radius: 40},
		&scene.Mandala{Color: "purple", Layers: 3, Step: 15, Circles: 12},
		&scene.Grid{Pose: scene.Pose{Heading: 90}, Color: "gray", Rows: 4, Cols: 5, CellSize: 20},
		&scene.RandomWalk{Pose: scene.Pose{
			Extra: map[string]json.RawMessage{"seed": json.RawMessage(`{"value":42,"tags":["a","b"]}`)},
		}, Color: "green", Steps: 100, StepLen: 5},
	)
	sc.Extra = map[string]json.RawMessage{"title": json.RawMessage(`"my sketch"`)}
	return sc
}

func TestRoundTrip(t *testing.T) {
	sc := sampleScene()
	data, err := Marshal(sc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data, StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sc, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyDocument(t *testing.T) {
	for _, doc := range []string{`{}`, `{"objects": []}`, `{"objects": null}`} {
		sc, err := Unmarshal([]byte(doc), StrictErrorMode)
		if err != nil {
			t.Fatalf("%s: %s", doc, err)
		}
		if sc.Len() != 0 || sc.Extra != nil {
			t.Errorf("%s: expected an empty scene, got %+v", doc, sc)
		}
	}

	if _, err := Unmarshal([]byte(`[1, 2]`), StrictErrorMode); err == nil {
		t.Error("expected an error for a non object document")
	}
}

func TestDefaults(t *testing.T) {
	doc := `{"objects": [
		{"kind": "shape", "type": "square", "x": 1, "y": 2},
		{"kind": "pattern", "type": "spiral", "x": 0, "y": 0, "repeat": 3, "turn_angle": 90, "start_length": 10, "grow": 0}
	]}`
	sc, err := Unmarshal([]byte(doc), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	want := scene.New(
		&scene.Square{Pose: scene.Pose{X: 1, Y: 2}, Style: scene.Style{PenColor: "black", PenThickness: 2}, Size: 50},
		&scene.Spiral{Color: "blue", Repeat: 3, TurnAngle: 90, StartLength: 10},
	)
	if diff := cmp.Diff(want, sc); diff != "" {
		t.Errorf("unexpected defaults (-want +got):\n%s", diff)
	}
}

func TestLegacyDocument(t *testing.T) {
	// as written by the first version of the studio
	doc := `{
  "objects": [
    {
      "kind": "shape",
      "type": "rectangle",
      "x": 10.0,
      "y": -20.0,
      "size": 50.0,
      "fill_color": "",
      "pen_color": "black",
      "pen_thickness": 2,
      "heading": 0,
      "width": 100.0,
      "height": 40.0
    }
  ]
}`
	sc, err := Unmarshal([]byte(doc), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	rect := sc.At(0).(*scene.Rectangle)
	if rect.Width != 100 || rect.Height != 40 || rect.X != 10 || rect.Y != -20 {
		t.Errorf("unexpected rectangle %+v", rect)
	}
	if got := string(rect.Extra["size"]); got != "50.0" {
		t.Errorf("the unused size should be kept, got %q", got)
	}

	out, err := Marshal(sc)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string][]map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back["objects"][0]["size"] != 50.0 {
		t.Errorf("the unused size should be written back, got %v", back["objects"][0])
	}
}

func TestUnknownType(t *testing.T) {
	doc := []byte(`{"objects": [
		{"kind": "shape", "type": "hexagram", "x": 0, "y": 0},
		{"kind": "shape", "type": "circle", "x": 0, "y": 0, "size": 10}
	]}`)

	sc, err := Unmarshal(doc, IgnoreErrorMode)
	if err != nil || sc.Len() != 1 {
		t.Fatalf("unknown objects should be skipped: %v, %v", sc, err)
	}

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)
	sc, err = Unmarshal(doc, WarnErrorMode)
	if err != nil || sc.Len() != 1 {
		t.Fatalf("unknown objects should be skipped: %v, %v", sc, err)
	}
	if !strings.Contains(logs.String(), "hexagram") {
		t.Errorf("expected a warning, got %q", logs.String())
	}

	_, err = Unmarshal(doc, StrictErrorMode)
	var ut *UnknownTypeError
	if !errors.As(err, &ut) || ut.Type != "hexagram" {
		t.Errorf("expected an unknown type error, got %v", err)
	}
}

func TestInvalidRecords(t *testing.T) {
	for _, test := range []struct {
		record string
		field  string
	}{
		{`{"kind": "shape", "type": "polygon", "x": 0, "y": 0, "sides": 2}`, "sides"},
		{`{"kind": "shape", "type": "polygon", "x": 0, "y": 0, "sides": 3.5}`, "sides"},
		{`{"kind": "shape", "type": "polygon", "x": 0, "y": 0}`, "sides"},
		{`{"kind": "shape", "type": "square", "y": 0}`, "x"},
		{`{"kind": "shape", "type": "square", "x": "left", "y": 0}`, "x"},
		{`{"kind": "shape", "type": "square", "x": 0, "y": 0, "size": -4}`, "size"},
		{`{"kind": "shape", "type": "square", "x": 0, "y": 0, "pen_color": 12}`, "pen_color"},
		{`{"kind": "pattern", "type": "square", "x": 0, "y": 0}`, "kind"},
		{`{"kind": "pattern", "type": "flower", "x": 0, "y": 0, "petals": 0, "radius": 10}`, "petals"},
		{`{"kind": "pattern", "x": 0, "y": 0}`, "type"},
	} {
		_, err := Unmarshal([]byte(`{"objects": [`+test.record+`]}`), IgnoreErrorMode)
		if !errors.Is(err, scene.ErrValidation) {
			t.Errorf("%s: expected a validation error, got %v", test.record, err)
			continue
		}
		var ve *scene.ValidationError
		errors.As(err, &ve)
		if ve.Field != test.field {
			t.Errorf("%s: expected an error on %s, got %v", test.record, test.field, err)
		}
	}
}

func TestDecodeCharset(t *testing.T) {
	// "Café" in latin1
	doc := []byte("{\"title\": \"Caf\xe9\", \"objects\": []}")
	sc, err := DecodeCharset(bytes.NewReader(doc), "latin1", StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(sc.Extra["title"]); got != `"Café"` {
		t.Errorf("unexpected title %s", got)
	}

	if _, err := DecodeCharset(bytes.NewReader(doc), "klingon", StrictErrorMode); err == nil {
		t.Error("expected an error for an unknown charset")
	}
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.json")
	sc := sampleScene()
	if err := WriteFile(path, sc); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sc, got); diff != "" {
		t.Errorf("file round trip mismatch (-want +got):\n%s", diff)
	}
}
