// Package layers keeps the attached shapes of a board in paint order.
package layers

import "github.com/example/sketchboard/internal/shape"

// Store is an ordered list of attached shapes. Later shapes are painted on
// top and win hit-tests.
type Store struct {
	shapes []shape.Shape
}

// Append adds sh on top. Empty and drawing-only shapes are refused.
func (s *Store) Append(sh shape.Shape) bool {
	if sh == nil || sh.IsEmpty() || sh.DrawingOnly() {
		return false
	}
	s.shapes = append(s.shapes, sh)
	return true
}

// RemoveByID removes the shape with id and returns it.
func (s *Store) RemoveByID(id string) (shape.Shape, bool) {
	for i, sh := range s.shapes {
		if sh.ID() == id {
			s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
			return sh, true
		}
	}
	return nil, false
}

// Filter returns the shapes matching pred, bottom first.
func (s *Store) Filter(pred func(shape.Shape) bool) []shape.Shape {
	var out []shape.Shape
	for _, sh := range s.shapes {
		if pred(sh) {
			out = append(out, sh)
		}
	}
	return out
}

// Map replaces every shape with fn's result. A nil result removes the
// shape and releases it.
func (s *Store) Map(fn func(shape.Shape) shape.Shape) {
	out := s.shapes[:0]
	for _, sh := range s.shapes {
		n := fn(sh)
		if n == nil {
			sh.Release()
			continue
		}
		out = append(out, n)
	}
	clear(s.shapes[len(out):])
	s.shapes = out
}

// Each calls fn for every shape, bottom first.
func (s *Store) Each(fn func(shape.Shape)) {
	for _, sh := range s.shapes {
		fn(sh)
	}
}

// Topmost returns the last shape matching pred.
func (s *Store) Topmost(pred func(shape.Shape) bool) (shape.Shape, bool) {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if pred(s.shapes[i]) {
			return s.shapes[i], true
		}
	}
	return nil, false
}

// Top returns the last shape.
func (s *Store) Top() (shape.Shape, bool) {
	if len(s.shapes) == 0 {
		return nil, false
	}
	return s.shapes[len(s.shapes)-1], true
}

// Selected returns the selected shapes, bottom first.
func (s *Store) Selected() []shape.Shape {
	return s.Filter(shape.Shape.IsSelected)
}

// DeselectAll clears the selection of every shape.
func (s *Store) DeselectAll() {
	for _, sh := range s.shapes {
		sh.Deselect()
	}
}

// All returns a copy of the shapes, bottom first.
func (s *Store) All() []shape.Shape {
	return append([]shape.Shape(nil), s.shapes...)
}

// Len returns the number of shapes.
func (s *Store) Len() int {
	return len(s.shapes)
}

// Clear empties the store and returns what it held.
func (s *Store) Clear() []shape.Shape {
	old := s.shapes
	s.shapes = nil
	return old
}
