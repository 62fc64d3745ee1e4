// Copyright (c) 2025 Visvasity LLC

package input

import "fmt"

// Shape is a multi-method contract whose default method dispatches back
// into the required methods.
type Shape interface {
	Name() string
	Area() float64

	// Describe renders a one-line summary. The default composes Name
	// and Area.
	Describe() string
}

// ShapeDefaultDescribe is the default body for Describe. Calls on self
// dispatch through the table of the value's concrete type.
func ShapeDefaultDescribe(self Shape) string {
	return fmt.Sprintf("%s of area %g", self.Name(), self.Area())
}

// Circle implements Shape with the default Describe.
type Circle struct {
	Radius float64
}

func (c Circle) Name() string { return "circle" }

func (c Circle) Area() float64 { return 3.141592653589793 * c.Radius * c.Radius }

// Square implements all of Shape, overriding Describe.
type Square struct {
	Side float64
}

func (s Square) Name() string { return "square" }

func (s Square) Area() float64 { return s.Side * s.Side }

func (s Square) Describe() string {
	return fmt.Sprintf("%gx%g square", s.Side, s.Side)
}
