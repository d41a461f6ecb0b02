package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/shapecraft/scene"
	"github.com/pkg/errors"
)

// Encode writes sc as an indented JSON document.
func Encode(w io.Writer, sc *scene.Scene) error {
	doc := make(map[string]any, len(sc.Extra)+1)
	for k, v := range sc.Extra {
		doc[k] = v
	}
	records := make([]map[string]any, len(sc.Objects))
	for i, o := range sc.Objects {
		records[i] = encodeObject(o)
	}
	doc["objects"] = records

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(doc), "encoding scene document")
}

// Marshal returns the JSON document of sc.
func Marshal(sc *scene.Scene) ([]byte, error) {
	var buf bytes.Buffer
	err := Encode(&buf, sc)
	return buf.Bytes(), err
}

// WriteFile saves sc in the named file.
func WriteFile(path string, sc *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(f, sc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeObject(o scene.Object) map[string]any {
	p := o.Anchor()
	rec := map[string]any{
		"kind":    o.Kind().String(),
		"type":    o.Type(),
		"x":       p.X,
		"y":       p.Y,
		"heading": p.Heading,
	}
	if s, ok := o.(scene.Shape); ok {
		st := s.Paint()
		rec["fill_color"] = st.FillColor
		rec["pen_color"] = st.PenColor
		rec["pen_thickness"] = st.PenThickness
	}

	switch o := o.(type) {
	case *scene.Square:
		rec["size"] = o.Size
	case *scene.Rectangle:
		rec["width"] = o.Width
		rec["height"] = o.Height
	case *scene.Circle:
		rec["size"] = o.Size
	case *scene.Triangle:
		rec["size"] = o.Size
	case *scene.Star:
		rec["size"] = o.Size
	case *scene.Polygon:
		rec["size"] = o.Size
		rec["sides"] = o.Sides
	case *scene.Spiral:
		rec["color"] = o.Color
		rec["repeat"] = o.Repeat
		rec["turn_angle"] = o.TurnAngle
		rec["start_length"] = o.StartLength
		rec["grow"] = o.Grow
	case *scene.Flower:
		rec["color"] = o.Color
		rec["petals"] = o.Petals
		rec["radius"] = o.Radius
	case *scene.Mandala:
		rec["color"] = o.Color
		rec["layers"] = o.Layers
		rec["step"] = o.Step
		rec["circles"] = o.Circles
	case *scene.Grid:
		rec["color"] = o.Color
		rec["rows"] = o.Rows
		rec["cols"] = o.Cols
		rec["cell_size"] = o.CellSize
	case *scene.RandomWalk:
		rec["color"] = o.Color
		rec["steps"] = o.Steps
		rec["step_len"] = o.StepLen
	default:
		panic(fmt.Sprintf("unexpected object type %T", o))
	}

	for k, v := range p.Extra {
		if _, known := rec[k]; !known {
			rec[k] = v
		}
	}
	return rec
}
