// Package grid owns the n×n boolean occupancy grid.
//
// Responsibilities: occupancy bookkeeping, geometric transforms
// (reflection, 90° rotation) and set-algebraic comparison between grids.
// Key types: Grid, Coord, Glyphs.
//
// The occupied-coordinate set is the source of truth. The dense row view
// is updated in the same code path as the set on every mutation, so the two
// never diverge.
//
// Coordinate convention: Coord{Row, Col} with row 0 at the top and col 0 at
// the left. Renderers consuming Row or Occupancies must draw row 0 first.
//
// The zero Grid is a read-only 0×0 board with no cells; decoders fill one
// in place. Use New or MustNew for anything else.
//
// A Grid has no internal locking. Transforms and comparisons only read the
// receiver; callers sharing a Grid across goroutines must guard
// AddOccupancy and DelOccupancy themselves.
package grid
