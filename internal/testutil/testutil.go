// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common grid fixtures so that store, CLI and
// geometry tests agree on the boards they exercise.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/occupancy/internal/grid"
)

// SampleText is SampleGrid drawn with grid.DefaultGlyphs, newline-terminated
// as it would be read from a file.
const SampleText = "□ ■ ■\n■ ■ □\n■ □ ■\n"

// SampleGrid returns a fresh copy of the 3x3 board used throughout the tests.
func SampleGrid() *grid.Grid {
	return grid.MustNew(3,
		grid.C(0, 1), grid.C(0, 2),
		grid.C(1, 0), grid.C(1, 1),
		grid.C(2, 0), grid.C(2, 2),
	)
}

// SampleRotatedCells is the occupancy of SampleGrid after one clockwise turn.
func SampleRotatedCells() []grid.Coord {
	return []grid.Coord{
		grid.C(1, 2), grid.C(2, 2), grid.C(0, 1),
		grid.C(1, 1), grid.C(0, 0), grid.C(2, 0),
	}
}

// WriteFile writes body to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}
