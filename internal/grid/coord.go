package grid

import (
	"cmp"
	"fmt"
)

// Coord addresses one cell. Row 0 is the top row, Col 0 the left column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Compare orders coordinates row-major: by Row, then by Col.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, o.Col)
}

// Less reports whether c sorts before o in row-major order.
func (c Coord) Less(o Coord) bool { return c.Compare(o) < 0 }

// in reports whether c lies inside a grid of size n.
func (c Coord) in(n int) bool {
	return c.Row >= 0 && c.Row < n && c.Col >= 0 && c.Col < n
}
