package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeRadius is returned by NewCircle for a radius below zero.
var ErrNegativeRadius = errors.New("negative radius")

// Circle is a closed disc: boundary points count as inside.
type Circle struct {
	Centre Point
	Radius float64
}

// NewCircle returns a circle, rejecting negative radii.
func NewCircle(centre Point, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, fmt.Errorf("%w: %s", ErrNegativeRadius, num(radius))
	}
	return Circle{Centre: centre, Radius: radius}, nil
}

// UnitCircle is the circle of radius 1 about the origin.
func UnitCircle() Circle { return Circle{Radius: 1} }

func (c Circle) String() string {
	return fmt.Sprintf("Circle:\tCentre: %v\n        Radius: %s", c.Centre, num(c.Radius))
}

func (c Circle) GoString() string {
	return fmt.Sprintf("Circle(centre = %v, radius = %s)", c.Centre, num(c.Radius))
}

// Circumference returns 2πr.
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.Radius }

// Area returns πr².
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Includes reports whether p lies inside or on c.
func (c Circle) Includes(p Point) bool { return c.Centre.Distance(p) <= c.Radius }

// Intersects reports whether c and o share at least one point.
// Tangent circles intersect; a circle nested inside another does too.
func (c Circle) Intersects(o Circle) bool {
	return c.Centre.Distance(o.Centre) <= c.Radius+o.Radius
}
