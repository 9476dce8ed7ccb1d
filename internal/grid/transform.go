package grid

// mapped returns a new grid with every occupied cell moved by f.
// f must be a bijection on [0,n)² so the result needs no bounds check.
func (g *Grid) mapped(f func(n int, c Coord) Coord) *Grid {
	out := empty(g.n)
	for c := range g.occupied {
		out.set(f(g.n, c))
	}
	return out
}

// ReflectedVertical returns g flipped top-to-bottom: (r, c) -> (n-1-r, c).
func (g *Grid) ReflectedVertical() *Grid {
	return g.mapped(func(n int, c Coord) Coord {
		return Coord{n - 1 - c.Row, c.Col}
	})
}

// ReflectedHorizontal returns g flipped left-to-right: (r, c) -> (r, n-1-c).
func (g *Grid) ReflectedHorizontal() *Grid {
	return g.mapped(func(n int, c Coord) Coord {
		return Coord{c.Row, n - 1 - c.Col}
	})
}

// RotatedClockwise90 returns g turned a quarter turn clockwise:
// (r, c) -> (c, n-1-r). Four applications give back the original occupancy.
func (g *Grid) RotatedClockwise90() *Grid {
	return g.mapped(func(n int, c Coord) Coord {
		return Coord{c.Col, n - 1 - c.Row}
	})
}
