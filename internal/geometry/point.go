package geometry

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/banshee-data/occupancy/internal/grid"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// ErrAxis is returned by At for an index other than 0 or 1.
var ErrAxis = errors.New("axis index out of range")

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// num formats f without trailing zeros, so 2.0 prints as 2.
func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func (p Point) String() string { return fmt.Sprintf("(%s, %s)", num(p.X), num(p.Y)) }

// GoString returns a read-out such as Point(1, -2.5).
func (p Point) GoString() string { return fmt.Sprintf("Point(%s, %s)", num(p.X), num(p.Y)) }

// At returns the coordinate on axis i: 0 for X, 1 for Y.
func (p Point) At(i int) (float64, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrAxis, i)
}

// Add returns the element-wise sum p+q.
func (p Point) Add(q Point) Point { return fromVec(r2.Add(p.vec(), q.vec())) }

// Neg returns the element-wise negation of p.
func (p Point) Neg() Point { return fromVec(r2.Scale(-1, p.vec())) }

// Sub returns the element-wise difference p-q.
func (p Point) Sub(q Point) Point { return fromVec(r2.Sub(p.vec(), q.vec())) }

// Eq reports whether both coordinates match exactly.
func (p Point) Eq(q Point) bool { return p == q }

// ApproxEq reports whether both coordinates agree within tol, absolute or
// relative.
func (p Point) ApproxEq(q Point, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(p.X, q.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(p.Y, q.Y, tol, tol)
}

// The ordering predicates are componentwise: they hold only when the
// relation holds for both X and Y, so two points may be unordered.

// Less reports whether p.X < q.X and p.Y < q.Y.
func (p Point) Less(q Point) bool { return p.X < q.X && p.Y < q.Y }

// LessEq reports whether p.X <= q.X and p.Y <= q.Y.
func (p Point) LessEq(q Point) bool { return p.X <= q.X && p.Y <= q.Y }

// Greater reports whether p.X > q.X and p.Y > q.Y.
func (p Point) Greater(q Point) bool { return p.X > q.X && p.Y > q.Y }

// GreaterEq reports whether p.X >= q.X and p.Y >= q.Y.
func (p Point) GreaterEq(q Point) bool { return p.X >= q.X && p.Y >= q.Y }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return r2.Norm(r2.Sub(p.vec(), q.vec())) }

// Rotated returns p rotated anticlockwise about centre through angle radians.
func (p Point) Rotated(centre Point, angle float64) Point {
	return fromVec(r2.Rotate(p.vec(), angle, centre.vec()))
}

// CellCentre places the centre of cell c in the plane: x is the column,
// y is the negated row, so row 0 is the top edge of the board.
func CellCentre(c grid.Coord) Point { return Point{X: float64(c.Col), Y: -float64(c.Row)} }

// BoardCentre is the point about which an n×n board laid out by CellCentre
// rotates onto itself.
func BoardCentre(n int) Point {
	m := float64(n-1) / 2
	return Point{X: m, Y: -m}
}
