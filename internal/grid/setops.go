package grid

func sameSize(op string, a, b *Grid) error {
	if a.n != b.n {
		return &SizeMismatchError{Op: op, Left: a.n, Right: b.n}
	}
	return nil
}

// SymmetricDifference returns a grid occupying exactly the cells occupied in
// one of g and o but not both. Neither operand is modified.
func (g *Grid) SymmetricDifference(o *Grid) (*Grid, error) {
	if err := sameSize("symmetric difference", g, o); err != nil {
		return nil, err
	}
	out := empty(g.n)
	for c := range g.occupied {
		if !o.Contains(c) {
			out.set(c)
		}
	}
	for c := range o.occupied {
		if !g.Contains(c) {
			out.set(c)
		}
	}
	return out, nil
}

// Equals reports whether g and o occupy the same cells.
func (g *Grid) Equals(o *Grid) (bool, error) {
	if err := sameSize("equals", g, o); err != nil {
		return false, err
	}
	return len(g.occupied) == len(o.occupied) && subset(g, o), nil
}

// IsSubsetOf reports whether every cell occupied in g is occupied in o.
func (g *Grid) IsSubsetOf(o *Grid) (bool, error) {
	if err := sameSize("subset", g, o); err != nil {
		return false, err
	}
	return subset(g, o), nil
}

// IsSupersetOf reports whether every cell occupied in o is occupied in g.
func (g *Grid) IsSupersetOf(o *Grid) (bool, error) {
	if err := sameSize("superset", g, o); err != nil {
		return false, err
	}
	return subset(o, g), nil
}

func subset(a, b *Grid) bool {
	if len(a.occupied) > len(b.occupied) {
		return false
	}
	for c := range a.occupied {
		if !b.Contains(c) {
			return false
		}
	}
	return true
}
