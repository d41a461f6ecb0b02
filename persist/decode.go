// Package persist reads and writes scenes as JSON documents
// of the form {"objects": [...]}.
//
// Each object is a flat record with a "kind" ("shape" or "pattern")
// and a "type" key, plus the fields of its type. Keys not understood
// by this package are kept, and written back on save.
package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/benoitkugler/shapecraft/config"
	"github.com/benoitkugler/shapecraft/scene"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the decoder reacts to unknown object types
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unknown objects
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode outputs a warning when an unknown object is found
	WarnErrorMode
	// StrictErrorMode causes a error when an unknown object is found
	StrictErrorMode
)

// UnknownTypeError is returned in StrictErrorMode for objects
// whose type is not supported.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unsupported object type %q", e.Type)
}

// Decode reads a scene document. A document without "objects" yields
// an empty scene. Records with invalid fields are rejected with
// a *scene.ValidationError; unknown types are handled according to mode.
func Decode(r io.Reader, mode ErrorMode) (*scene.Scene, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding scene document")
	}

	sc := scene.New()
	rawObjects, ok := doc["objects"]
	delete(doc, "objects")
	if len(doc) != 0 {
		sc.Extra = compact(doc)
	}
	if !ok {
		return sc, nil
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(rawObjects, &records); err != nil {
		return nil, errors.Wrap(err, "decoding scene objects")
	}
	for i, rec := range records {
		o, err := decodeObject(rec)
		if ut, isUnknown := err.(*UnknownTypeError); isUnknown {
			if mode == StrictErrorMode {
				return nil, errors.Wrapf(err, "object %d", i)
			} else if mode == WarnErrorMode {
				log.Println("Skipping object", i, ":", ut)
			}
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		sc.Append(o)
	}
	return sc, nil
}

// DecodeCharset is like Decode, for documents written in a legacy encoding,
// as named by label (for instance "latin1" or "windows-1252").
func DecodeCharset(r io.Reader, label string, mode ErrorMode) (*scene.Scene, error) {
	utf8, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported charset %q", label)
	}
	return Decode(utf8, mode)
}

// Unmarshal decodes a scene from data.
func Unmarshal(data []byte, mode ErrorMode) (*scene.Scene, error) {
	return Decode(bytes.NewReader(data), mode)
}

// ReadFile reads the scene from the named file.
func ReadFile(path string, mode ErrorMode) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, mode)
}

// fieldReader consumes the known keys of a record, recording
// the first problem met.
type fieldReader struct {
	typ    string
	fields map[string]json.RawMessage
	err    error
}

func (fr *fieldReader) fail(key, reason string) {
	if fr.err == nil {
		fr.err = &scene.ValidationError{Type: fr.typ, Field: key, Reason: reason}
	}
}

// number returns the value of key, or def if the key is absent.
// A required key must be present.
func (fr *fieldReader) number(key string, def float64, required bool) float64 {
	raw, ok := fr.fields[key]
	delete(fr.fields, key)
	if !ok {
		if required {
			fr.fail(key, "missing")
		}
		return def
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		fr.fail(key, "not a number")
	}
	return v
}

func (fr *fieldReader) integer(key string, def int, required bool) int {
	v := fr.number(key, float64(def), required)
	if v != math.Trunc(v) {
		fr.fail(key, "not an integer")
	}
	return int(v)
}

func (fr *fieldReader) text(key, def string) string {
	raw, ok := fr.fields[key]
	delete(fr.fields, key)
	if !ok {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		fr.fail(key, "not a string")
	}
	return s
}

func (fr *fieldReader) pose() scene.Pose {
	return scene.Pose{
		X:       fr.number("x", 0, true),
		Y:       fr.number("y", 0, true),
		Heading: fr.number("heading", 0, false),
	}
}

func (fr *fieldReader) style() scene.Style {
	return scene.Style{
		FillColor:    fr.text("fill_color", ""),
		PenColor:     fr.text("pen_color", config.DefaultPenColor),
		PenThickness: fr.integer("pen_thickness", config.DefaultPenThickness, false),
	}
}

func (fr *fieldReader) size() float64 { return fr.number("size", config.DefaultShapeSize, false) }

func (fr *fieldReader) color() string { return fr.text("color", config.DefaultPatternColor) }

func decodeObject(rec map[string]json.RawMessage) (scene.Object, error) {
	fr := fieldReader{fields: rec}
	kind := fr.text("kind", "")
	fr.typ = fr.text("type", "")
	if fr.err != nil {
		return nil, fr.err
	}
	if fr.typ == "" {
		return nil, &scene.ValidationError{Type: "<unknown>", Field: "type", Reason: "missing"}
	}

	var o scene.Object
	switch fr.typ {
	case "square":
		o = &scene.Square{Pose: fr.pose(), Style: fr.style(), Size: fr.size()}
	case "rectangle":
		// the size entered in the dialog is stored but unused
		o = &scene.Rectangle{Pose: fr.pose(), Style: fr.style(),
			Width:  fr.number("width", 0, true),
			Height: fr.number("height", 0, true),
		}
	case "circle":
		o = &scene.Circle{Pose: fr.pose(), Style: fr.style(), Size: fr.size()}
	case "triangle":
		o = &scene.Triangle{Pose: fr.pose(), Style: fr.style(), Size: fr.size()}
	case "star":
		o = &scene.Star{Pose: fr.pose(), Style: fr.style(), Size: fr.size()}
	case "polygon":
		o = &scene.Polygon{Pose: fr.pose(), Style: fr.style(), Size: fr.size(),
			Sides: fr.integer("sides", 0, true),
		}
	case "spiral":
		o = &scene.Spiral{Pose: fr.pose(), Color: fr.color(),
			Repeat:      fr.integer("repeat", 0, true),
			TurnAngle:   fr.number("turn_angle", 0, true),
			StartLength: fr.number("start_length", 0, true),
			Grow:        fr.number("grow", 0, true),
		}
	case "flower":
		o = &scene.Flower{Pose: fr.pose(), Color: fr.color(),
			Petals: fr.integer("petals", 0, true),
			Radius: fr.number("radius", 0, true),
		}
	case "mandala":
		o = &scene.Mandala{Pose: fr.pose(), Color: fr.color(),
			Layers:  fr.integer("layers", 0, true),
			Step:    fr.number("step", 0, true),
			Circles: fr.integer("circles", 0, true),
		}
	case "grid":
		o = &scene.Grid{Pose: fr.pose(), Color: fr.color(),
			Rows:     fr.integer("rows", 0, true),
			Cols:     fr.integer("cols", 0, true),
			CellSize: fr.number("cell_size", 0, true),
		}
	case "random_walk":
		o = &scene.RandomWalk{Pose: fr.pose(), Color: fr.color(),
			Steps:   fr.integer("steps", 0, true),
			StepLen: fr.number("step_len", 0, true),
		}
	default:
		return nil, &UnknownTypeError{Type: fr.typ}
	}
	if fr.err != nil {
		return nil, fr.err
	}
	if kind != "" && kind != o.Kind().String() {
		return nil, &scene.ValidationError{Type: fr.typ, Field: "kind", Reason: fmt.Sprintf("expected %q", o.Kind())}
	}
	if err := scene.Validate(o); err != nil {
		return nil, err
	}
	if len(fr.fields) != 0 {
		o.Anchor().Extra = compact(fr.fields)
	}
	return o, nil
}

// compact strips the insignificant spaces of the values of m,
// so that unknown entries compare equal whatever the indentation of
// the document they come from.
func compact(m map[string]json.RawMessage) map[string]json.RawMessage {
	for k, v := range m {
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err == nil {
			m[k] = buf.Bytes()
		}
	}
	return m
}
