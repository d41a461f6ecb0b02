package scene

import "encoding/json"

// Scene is an ordered list of objects. The order is the render order:
// later objects are drawn on top of earlier ones.
// Objects have no identity besides their index.
type Scene struct {
	Objects []Object

	// Extra stores the unknown top level keys of the document
	// the scene was loaded from.
	Extra map[string]json.RawMessage
}

// New returns an empty scene.
func New(objects ...Object) *Scene {
	return &Scene{Objects: objects}
}

func (s *Scene) Len() int { return len(s.Objects) }

// At returns the object at index i, which must be valid.
func (s *Scene) At(i int) Object { return s.Objects[i] }

// Append adds o on top of the scene.
func (s *Scene) Append(o Object) { s.Objects = append(s.Objects, o) }

// Pop removes and returns the topmost object.
// It returns false for an empty scene, which is left untouched.
func (s *Scene) Pop() (Object, bool) {
	if len(s.Objects) == 0 {
		return nil, false
	}
	last := s.Objects[len(s.Objects)-1]
	s.Objects[len(s.Objects)-1] = nil
	s.Objects = s.Objects[:len(s.Objects)-1]
	return last, true
}

// Clone returns a deep copy of the scene: mutating the copy
// does not affect s.
func (s *Scene) Clone() *Scene {
	out := &Scene{Objects: make([]Object, len(s.Objects))}
	for i, o := range s.Objects {
		out.Objects[i] = o.clone()
	}
	if s.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// Restore replaces the content of s by a copy of snapshot.
func (s *Scene) Restore(snapshot *Scene) {
	c := snapshot.Clone()
	s.Objects, s.Extra = c.Objects, c.Extra
}

// Shapes returns the shapes of the scene, in render order.
func (s *Scene) Shapes() []Shape {
	var out []Shape
	for _, o := range s.Objects {
		if sh, ok := o.(Shape); ok {
			out = append(out, sh)
		}
	}
	return out
}
