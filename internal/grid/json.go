package grid

import (
	"encoding/json"
	"fmt"
)

// gridJSON is the serialised form of a Grid. Occupancies are [row, col]
// pairs in row-major order. Pairs decode as []int so that short or long
// pairs are rejected instead of zero-filled or truncated.
type gridJSON struct {
	N           int     `json:"n"`
	Occupancies [][]int `json:"occupancies"`
}

// MarshalJSON encodes g as {"n":3,"occupancies":[[0,1],[1,0]]}.
func (g *Grid) MarshalJSON() ([]byte, error) {
	cells := g.Occupancies()
	out := gridJSON{N: g.n, Occupancies: make([][]int, len(cells))}
	for i, c := range cells {
		out.Occupancies[i] = []int{c.Row, c.Col}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON. The decoded cells
// are validated exactly as New validates them; on error g is unchanged.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var in gridJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode grid: %w", err)
	}
	cells := make([]Coord, len(in.Occupancies))
	for i, p := range in.Occupancies {
		if len(p) != 2 {
			return fmt.Errorf("decode grid: %w: occupancy %d has %d elements, want [row, col]", ErrMalformed, i, len(p))
		}
		cells[i] = Coord{p[0], p[1]}
	}
	decoded, err := New(in.N, cells)
	if err != nil {
		return fmt.Errorf("decode grid: %w", err)
	}
	*g = *decoded
	return nil
}
