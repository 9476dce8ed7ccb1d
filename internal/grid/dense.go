package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense returns the dense view as a gonum matrix holding 1 for occupied
// cells and 0 for vacant ones. The zero Grid yields an empty matrix.
func ToDense(g *Grid) *mat.Dense {
	if g.n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(g.n, g.n, nil)
	for c := range g.occupied {
		m.Set(c.Row, c.Col, 1)
	}
	return m
}

// Transposed returns g reflected across its main diagonal, (r, c) -> (c, r).
func (g *Grid) Transposed() *Grid {
	if g.n == 0 {
		return g.Copy()
	}
	t, err := FromDense(ToDense(g).T())
	if err != nil {
		// A transposed square matrix is square.
		panic(err)
	}
	return t
}

// FromDense builds a grid from a square matrix, treating every non-zero
// element as occupied.
func FromDense(m mat.Matrix) (*Grid, error) {
	r, c := m.Dims()
	if r != c || r == 0 {
		return nil, fmt.Errorf("%w: matrix is %dx%d", ErrInvalidSize, r, c)
	}
	g := empty(r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				g.set(Coord{i, j})
			}
		}
	}
	return g, nil
}
