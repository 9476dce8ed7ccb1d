// Package geometry models points, circles and axis-aligned rectangles in
// the plane.
//
// Coordinates follow the mathematical convention: x increases to the right,
// y increases upward, and angles are radians measured anticlockwise. Vector
// arithmetic is delegated to gonum's spatial/r2.
//
// CellCentre maps a grid.Coord into this plane with row 0 at the top, so
// that grid transforms can be checked against plane rotations.
package geometry
