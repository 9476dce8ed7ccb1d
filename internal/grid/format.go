package grid

import (
	"fmt"
	"strings"
	"unicode"
)

// Glyphs selects the strings drawn for occupied and vacant cells.
type Glyphs struct {
	Occupied string `json:"occupied"`
	Vacant   string `json:"vacant"`
}

// DefaultGlyphs is the canonical drawing used by String.
var DefaultGlyphs = Glyphs{Occupied: "■", Vacant: "□"}

// Validate reports whether a drawing made with gl can be parsed back.
func (gl Glyphs) Validate() error {
	switch {
	case gl.Occupied == "" || gl.Vacant == "":
		return fmt.Errorf("%w: empty glyph", ErrMalformed)
	case gl.Occupied == gl.Vacant:
		return fmt.Errorf("%w: occupied and vacant glyphs are both %q", ErrMalformed, gl.Vacant)
	case strings.ContainsFunc(gl.Occupied+gl.Vacant, unicode.IsSpace):
		return fmt.Errorf("%w: glyphs may not contain whitespace", ErrMalformed)
	}
	return nil
}

// String draws the grid with DefaultGlyphs.
func (g *Grid) String() string { return g.Render(DefaultGlyphs) }

// Render draws the grid row by row starting at row 0. Cells are separated
// by a single space and rows by a newline; there is no trailing newline.
func (g *Grid) Render(glyphs Glyphs) string {
	var b strings.Builder
	for r, row := range g.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, occupied := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if occupied {
				b.WriteString(glyphs.Occupied)
			} else {
				b.WriteString(glyphs.Vacant)
			}
		}
	}
	return b.String()
}

// GoString returns a read-out that can be pasted back as a constructor call,
// e.g. Grid(n=2, occupancies=[(0, 1), (1, 0)]).
func (g *Grid) GoString() string {
	cells := g.Occupancies()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return fmt.Sprintf("Grid(n=%d, occupancies=[%s])", g.n, strings.Join(parts, ", "))
}

// Parse reads a drawing produced by Render with the same glyphs.
// Blank lines and surrounding whitespace are ignored.
func Parse(text string, glyphs Glyphs) (*Grid, error) {
	if err := glyphs.Validate(); err != nil {
		return nil, err
	}
	var lines [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields)
	}
	n := len(lines)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	g := empty(n)
	for r, fields := range lines {
		if len(fields) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, r, len(fields), n)
		}
		for c, f := range fields {
			switch f {
			case glyphs.Occupied:
				g.set(Coord{r, c})
			case glyphs.Vacant:
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %v", ErrMalformed, f, Coord{r, c})
			}
		}
	}
	return g, nil
}
