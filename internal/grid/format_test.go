package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Sample(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "□ ■ ■\n■ ■ □\n■ □ ■", sample().String())
}

func TestRender_CustomGlyphs(t *testing.T) {
	t.Parallel()

	g := MustNew(2, C(0, 0), C(1, 1))
	assert.Equal(t, "# .\n. #", g.Render(Glyphs{Occupied: "#", Vacant: "."}))
	assert.Equal(t, "□", MustNew(1).String())
}

func TestGoString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Grid(n=3, occupancies=[(0, 1), (0, 2), (1, 0), (1, 1), (2, 0), (2, 2)])", sample().GoString())
	assert.Equal(t, "Grid(n=2, occupancies=[])", MustNew(2).GoString())
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, g := range randomGrids(t) {
		back, err := Parse(g.String(), DefaultGlyphs)
		require.NoError(t, err)
		assert.True(t, mustEqual(t, g, back))
	}

	glyphs := Glyphs{Occupied: "x", Vacant: "o"}
	back, err := Parse("\n  x o o\no x o  \n\no o x\n", glyphs)
	require.NoError(t, err)
	assert.Equal(t, []Coord{C(0, 0), C(1, 1), C(2, 2)}, back.Occupancies())
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		glyphs Glyphs
	}{
		{"empty", "  \n ", DefaultGlyphs},
		{"ragged", "■ □\n□", DefaultGlyphs},
		{"not square", "■ □ ■\n□ ■ □", DefaultGlyphs},
		{"unknown glyph", "■ x\n□ ■", DefaultGlyphs},
		{"same glyphs", "a a\na a", Glyphs{Occupied: "a", Vacant: "a"}},
		{"blank glyph", "a\n", Glyphs{Occupied: "a"}},
		{"spaced glyph", "a", Glyphs{Occupied: "a", Vacant: "b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.text, tt.glyphs)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
