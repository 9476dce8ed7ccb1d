package grid

import (
	"fmt"
	"slices"
)

// Grid is an n×n board of occupied and vacant cells.
//
// occupied is the canonical set; rows is the dense view derived from it.
// Every write goes through set/clear so both stay in agreement.
type Grid struct {
	n        int
	occupied map[Coord]struct{}
	rows     [][]bool
}

// New builds a grid of size n with the given cells occupied.
// Duplicate coordinates collapse to one. Construction is all-or-nothing:
// if any coordinate is out of range no grid is returned.
func New(n int, occupancies []Coord) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	for _, c := range occupancies {
		if !c.in(n) {
			return nil, &CoordinateError{Coord: c, N: n}
		}
	}
	g := empty(n)
	for _, c := range occupancies {
		g.set(c)
	}
	return g, nil
}

// MustNew is like New but panics on error. Intended for fixtures and tests.
func MustNew(n int, occupancies ...Coord) *Grid {
	g, err := New(n, occupancies)
	if err != nil {
		panic(err)
	}
	return g
}

// FromRows builds a grid from a square dense view, the inverse of Rows.
func FromRows(rows [][]bool) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	g := empty(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), n)
		}
		for c, v := range row {
			if v {
				g.set(Coord{r, c})
			}
		}
	}
	return g, nil
}

func empty(n int) *Grid {
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = make([]bool, n)
	}
	return &Grid{n: n, occupied: make(map[Coord]struct{}), rows: rows}
}

func (g *Grid) set(c Coord) {
	g.occupied[c] = struct{}{}
	g.rows[c.Row][c.Col] = true
}

func (g *Grid) clear(c Coord) {
	delete(g.occupied, c)
	g.rows[c.Row][c.Col] = false
}

// Size returns the grid dimension n.
func (g *Grid) Size() int { return g.n }

// Len returns the number of occupied cells.
func (g *Grid) Len() int { return len(g.occupied) }

// Contains reports whether c is occupied. Out-of-range coordinates are vacant.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.occupied[c]
	return ok
}

// Occupancies returns a snapshot of the occupied cells in row-major order.
// The slice is freshly allocated; modifying it does not affect g.
func (g *Grid) Occupancies() []Coord {
	out := make([]Coord, 0, len(g.occupied))
	for c := range g.occupied {
		out = append(out, c)
	}
	slices.SortFunc(out, Coord.Compare)
	return out
}

// Row returns a copy of row i of the dense view.
func (g *Grid) Row(i int) ([]bool, error) {
	if i < 0 || i >= g.n {
		return nil, &IndexError{Index: i, N: g.n}
	}
	return slices.Clone(g.rows[i]), nil
}

// Rows returns a deep copy of the dense view, row 0 first.
func (g *Grid) Rows() [][]bool {
	out := make([][]bool, g.n)
	for i, row := range g.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// AddOccupancy marks c occupied. Adding an occupied cell is a no-op.
func (g *Grid) AddOccupancy(c Coord) error {
	if !c.in(g.n) {
		return &CoordinateError{Coord: c, N: g.n}
	}
	g.set(c)
	return nil
}

// DelOccupancy marks c vacant. Deleting a vacant cell is a no-op.
func (g *Grid) DelOccupancy(c Coord) error {
	if !c.in(g.n) {
		return &CoordinateError{Coord: c, N: g.n}
	}
	g.clear(c)
	return nil
}

// Copy returns an independent grid with the same size and occupancy.
func (g *Grid) Copy() *Grid {
	out := empty(g.n)
	for c := range g.occupied {
		out.set(c)
	}
	return out
}
