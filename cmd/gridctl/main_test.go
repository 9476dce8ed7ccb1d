package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/occupancy/internal/fsutil"
	"github.com/banshee-data/occupancy/internal/grid"
	"github.com/banshee-data/occupancy/internal/monitoring"
	"github.com/banshee-data/occupancy/internal/store"
	"github.com/banshee-data/occupancy/internal/testutil"
	"github.com/banshee-data/occupancy/internal/version"
)

const sampleText = testutil.SampleText

func init() {
	monitoring.SetLogger(nil)
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRun_Demo(t *testing.T) {
	out, err := runCLI(t, "", "demo")
	require.NoError(t, err)

	want := "\nInstance:\n□ ■ ■\n■ ■ □\n■ □ ■\n" +
		"\nVertical Reflection:\n■ □ ■\n■ ■ □\n□ ■ ■\n" +
		"\nRotation 90 degrees Clockwise:\n■ ■ □\n□ ■ ■\n■ □ ■\n"
	assert.Equal(t, want, out)
}

func TestRun_Version(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", out)
}

func TestRun_DemoWithConfigGlyphs(t *testing.T) {
	dir := t.TempDir()
	cfg := testutil.WriteFile(t, dir, "cfg.json", `{"occupied_glyph":"#","vacant_glyph":"."}`)

	out, err := runCLI(t, "", "-config", cfg, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Instance:\n. # #\n# # .\n# . #\n")
}

func TestRun_Transform(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rotate", []string{"-op", "r"}, grid.MustNew(3, testutil.SampleRotatedCells()...).String()},
		{"rotate four times", []string{"-op", "r", "-n", "4"}, strings.TrimSpace(sampleText)},
		{"vertical", []string{"-op", "v"}, "■ □ ■\n■ ■ □\n□ ■ ■"},
		{"horizontal", []string{"-op", "h"}, "■ ■ □\n□ ■ ■\n■ □ ■"},
		{"transpose symmetric board", []string{"-op", "t"}, strings.TrimSpace(sampleText)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, sampleText, append([]string{"transform"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestRun_TransformXor(t *testing.T) {
	dir := t.TempDir()
	other := testutil.WriteFile(t, dir, "other.txt", "■ ■ ■\n□ □ □\n□ □ □\n")

	out, err := runCLI(t, sampleText, "transform", "-op", "x", "-other", other)
	require.NoError(t, err)
	assert.Equal(t, "■ □ □\n■ ■ □\n■ □ ■\n", out)

	small := testutil.WriteFile(t, dir, "small.txt", "■ □\n□ ■\n")
	_, err = runCLI(t, sampleText, "transform", "-op", "x", "-other", small)
	assert.ErrorIs(t, err, grid.ErrSizeMismatch)
}

func TestRun_Compare(t *testing.T) {
	dir := t.TempDir()
	full := testutil.WriteFile(t, dir, "full.txt", "■ ■ ■\n■ ■ ■\n■ ■ ■\n")
	same := testutil.WriteFile(t, dir, "same.txt", sampleText)

	out, err := runCLI(t, sampleText, "compare", "-op", "sub", "-other", full)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = runCLI(t, sampleText, "compare", "-op", "sup", "-other", full)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = runCLI(t, sampleText, "compare", "-other", same)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestRun_UsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"bogus"},
		{"transform", "-op", "z"},
		{"transform", "-op", "x"},
		{"transform", "-op", "x", "-other", "-"},
		{"compare", "-other", "-"},
		{"compare"},
		{"show"},
		{"rm", "a", "b"},
	}
	for _, args := range cases {
		_, err := runCLI(t, sampleText, args...)
		assert.ErrorIs(t, err, errUsage, "args %v", args)
	}
}

func TestRun_TransformTransposeFile(t *testing.T) {
	board := testutil.WriteFile(t, t.TempDir(), "board.txt", "■ ■ ■\n□ □ □\n□ □ □\n")

	out, err := runCLI(t, "", "transform", "-op", "t", "-file", board)
	require.NoError(t, err)
	assert.Equal(t, "■ □ □\n■ □ □\n■ □ □\n", out)
}

func TestRun_MalformedInput(t *testing.T) {
	_, err := runCLI(t, "■ □\n■", "transform", "-op", "r")
	assert.ErrorIs(t, err, grid.ErrMalformed)
}

func TestRun_StoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grids.db")

	out, err := runCLI(t, sampleText, "-db", dbPath, "save", "-label", "start")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = runCLI(t, "", "-db", dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "n=3\toccupied=6\tstart")

	out, err = runCLI(t, "", "-db", dbPath, "show", id)
	require.NoError(t, err)
	assert.Equal(t, "start Grid(n=3, occupancies=[(0, 1), (0, 2), (1, 0), (1, 1), (2, 0), (2, 2)])\n"+sampleText, out)

	_, err = runCLI(t, "", "-db", dbPath, "rm", id)
	require.NoError(t, err)

	out, err = runCLI(t, "", "-db", dbPath, "list")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = runCLI(t, "", "-db", dbPath, "show", id)
	assert.Error(t, err)
}

func TestRun_Export(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grids.db")
	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("in.txt", []byte(sampleText), 0644))

	var out bytes.Buffer
	require.NoError(t, runWithFS([]string{"-db", dbPath, "save", "-file", "in.txt"}, mfs, strings.NewReader(""), &out))
	id := strings.TrimSpace(out.String())

	export := func(args ...string) error {
		return runWithFS(append([]string{"-db", dbPath, "export"}, args...), mfs, strings.NewReader(""), io.Discard)
	}

	require.NoError(t, export("-out", "board.txt", id))
	data, err := mfs.ReadFile("board.txt")
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))

	require.NoError(t, export("-out", "board.json", "-format", "json", id))
	data, err = mfs.ReadFile("board.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":3,"occupancies":[[0,1],[0,2],[1,0],[1,1],[2,0],[2,2]]}`, string(data))

	err = export("-out", "board.txt", id)
	assert.ErrorContains(t, err, "already exists")
	assert.NoError(t, export("-out", "board.txt", "-force", id))

	assert.ErrorIs(t, export("-out", "x.txt", "-format", "png", id), errUsage)
	assert.ErrorIs(t, export(id), errUsage)
	assert.ErrorIs(t, export("-out", "missing.txt", "no-such-id"), store.ErrNotFound)
	assert.Equal(t, []string{"board.json", "board.txt", "in.txt"}, mfs.Names())
}

func TestRun_ListUsesConfiguredTimezone(t *testing.T) {
	dir := t.TempDir()
	cfg := testutil.WriteFile(t, dir, "cfg.json", `{"timezone":"Asia/Tokyo","db_path":"`+filepath.ToSlash(filepath.Join(dir, "g.db"))+`"}`)

	_, err := runCLI(t, sampleText, "-config", cfg, "save")
	require.NoError(t, err)

	out, err := runCLI(t, "", "-config", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "+09:00\tn=3")
}
