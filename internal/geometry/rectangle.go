package geometry

import (
	"fmt"
	"math"
)

// Corner names one corner of a Rectangle.
type Corner string

const (
	TopRight    Corner = "top-right"
	TopLeft     Corner = "top-left"
	BottomRight Corner = "bottom-right"
	BottomLeft  Corner = "bottom-left"
)

// Rectangle is an axis-aligned rectangle described by its centre, its
// horizontal extent (length) and its vertical extent (width). The corners
// are cached and recomputed by every setter.
type Rectangle struct {
	centre  Point
	length  float64
	width   float64
	corners map[Corner]Point
}

// NewRectangle returns a rectangle centred on centre. Negative extents are
// treated as their absolute value.
func NewRectangle(centre Point, length, width float64) *Rectangle {
	r := &Rectangle{centre: centre, length: math.Abs(length), width: math.Abs(width)}
	r.updateCorners()
	return r
}

func (r *Rectangle) updateCorners() {
	hl, hw := r.length/2, r.width/2
	r.corners = map[Corner]Point{
		TopRight:    r.centre.Add(Pt(hl, hw)),
		TopLeft:     r.centre.Add(Pt(-hl, hw)),
		BottomRight: r.centre.Add(Pt(hl, -hw)),
		BottomLeft:  r.centre.Add(Pt(-hl, -hw)),
	}
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle:\tCentre Point:\t%v\n\t\tLength:\t%s\n\t\tWidth:\t%s", r.centre, num(r.length), num(r.width))
}

func (r *Rectangle) GoString() string {
	return fmt.Sprintf("Rectangle(centre = %v, length = %s, width = %s)", r.centre, num(r.length), num(r.width))
}

func (r *Rectangle) Centre() Point   { return r.centre }
func (r *Rectangle) Length() float64 { return r.length }
func (r *Rectangle) Width() float64  { return r.width }

// Corners returns a copy of the labelled corner points.
func (r *Rectangle) Corners() map[Corner]Point {
	out := make(map[Corner]Point, len(r.corners))
	for k, v := range r.corners {
		out[k] = v
	}
	return out
}

// SetCentre moves the rectangle so that it is centred on centre.
func (r *Rectangle) SetCentre(centre Point) {
	r.centre = centre
	r.updateCorners()
}

// SetLength changes the horizontal extent.
func (r *Rectangle) SetLength(length float64) {
	r.length = math.Abs(length)
	r.updateCorners()
}

// SetWidth changes the vertical extent.
func (r *Rectangle) SetWidth(width float64) {
	r.width = math.Abs(width)
	r.updateCorners()
}

func (r *Rectangle) Perimeter() float64 { return 2 * (r.length + r.width) }
func (r *Rectangle) Area() float64      { return r.length * r.width }

// Includes reports whether p lies inside or on the boundary of r.
func (r *Rectangle) Includes(p Point) bool {
	return r.corners[BottomLeft].LessEq(p) && p.LessEq(r.corners[TopRight])
}

// Intersects reports whether r and o share at least one point. The test is
// an interval overlap on each axis, so crossing rectangles whose corners
// all lie outside each other still intersect, and the result is symmetric.
func (r *Rectangle) Intersects(o *Rectangle) bool {
	a0, a1 := r.corners[BottomLeft], r.corners[TopRight]
	b0, b1 := o.corners[BottomLeft], o.corners[TopRight]
	return a0.LessEq(b1) && b0.LessEq(a1)
}
