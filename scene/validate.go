package scene

import "math"

type fieldCheck struct {
	name  string
	value float64
	rule  rule
}

type rule uint8

const (
	finite   rule = iota // any finite number
	positive             // finite and > 0
	natural              // >= 0
	atLeast1             // >= 1
	atLeast3             // >= 3
)

func (r rule) holds(v float64) (bool, string) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false, "must be finite"
	}
	switch r {
	case positive:
		return v > 0, "must be positive"
	case natural:
		return v >= 0, "must not be negative"
	case atLeast1:
		return v >= 1, "must be at least 1"
	case atLeast3:
		return v >= 3, "must be at least 3"
	}
	return true, ""
}

// Validate checks the numeric fields of o, as the parameter dialogs
// are expected to do before handing a record to the scene.
// It returns a *ValidationError for the first offending field.
func Validate(o Object) error {
	p := o.Anchor()
	checks := []fieldCheck{
		{"x", p.X, finite},
		{"y", p.Y, finite},
		{"heading", p.Heading, finite},
	}
	if sh, ok := o.(Shape); ok {
		checks = append(checks, fieldCheck{"pen_thickness", float64(sh.Paint().PenThickness), natural})
	}

	switch o := o.(type) {
	case *Square:
		checks = append(checks, fieldCheck{"size", o.Size, positive})
	case *Rectangle:
		checks = append(checks,
			fieldCheck{"width", o.Width, positive},
			fieldCheck{"height", o.Height, positive})
	case *Circle:
		checks = append(checks, fieldCheck{"size", o.Size, positive})
	case *Triangle:
		checks = append(checks, fieldCheck{"size", o.Size, positive})
	case *Star:
		checks = append(checks, fieldCheck{"size", o.Size, positive})
	case *Polygon:
		checks = append(checks,
			fieldCheck{"size", o.Size, positive},
			fieldCheck{"sides", float64(o.Sides), atLeast3})
	case *Spiral:
		checks = append(checks,
			fieldCheck{"repeat", float64(o.Repeat), natural},
			fieldCheck{"turn_angle", o.TurnAngle, finite},
			fieldCheck{"start_length", o.StartLength, finite},
			fieldCheck{"grow", o.Grow, finite})
	case *Flower:
		checks = append(checks,
			fieldCheck{"petals", float64(o.Petals), atLeast1},
			fieldCheck{"radius", o.Radius, positive})
	case *Mandala:
		checks = append(checks,
			fieldCheck{"layers", float64(o.Layers), natural},
			fieldCheck{"step", o.Step, positive},
			fieldCheck{"circles", float64(o.Circles), atLeast1})
	case *Grid:
		checks = append(checks,
			fieldCheck{"rows", float64(o.Rows), natural},
			fieldCheck{"cols", float64(o.Cols), natural},
			fieldCheck{"cell_size", o.CellSize, positive})
	case *RandomWalk:
		checks = append(checks,
			fieldCheck{"steps", float64(o.Steps), natural},
			fieldCheck{"step_len", o.StepLen, positive})
	}

	for _, c := range checks {
		if ok, reason := c.rule.holds(c.value); !ok {
			return &ValidationError{Type: o.Type(), Field: c.name, Reason: reason}
		}
	}
	return nil
}
