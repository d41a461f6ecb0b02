package scene

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinels matched by the typed errors below, for use with errors.Is.
var (
	ErrValidation   = errors.New("invalid object parameters")
	ErrInvalidColor = errors.New("invalid color")
	ErrDegenerate   = errors.New("degenerate geometry")
)

// ValidationError reports a malformed field of an object record.
// It never reaches the scene: records carrying one are rejected.
type ValidationError struct {
	Type   string // object type, e.g. "polygon"
	Field  string // wire name of the field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Type, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidColorError is returned when a color string is not accepted
// by the render surface.
type InvalidColorError struct {
	Color string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Color)
}

func (e *InvalidColorError) Is(target error) bool { return target == ErrInvalidColor }

// DegenerateGeometryError is returned by the path construction
// when an object would produce a meaningless draw (zero sides, zero length...).
// Nothing is drawn for such an object.
type DegenerateGeometryError struct {
	Type   string
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: degenerate geometry: %s", e.Type, e.Reason)
}

func (e *DegenerateGeometryError) Is(target error) bool { return target == ErrDegenerate }
