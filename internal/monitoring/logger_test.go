package monitoring

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests in this file mutate package state and must not run in parallel.

func TestSetLogger(t *testing.T) {
	defer SetLogWriters(LogWriters{})

	var got []string
	SetLogger(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})
	Opsf("saved %d", 3)
	assert.Equal(t, []string{"saved 3"}, got)

	// nil installs a no-op and must not panic.
	SetLogger(nil)
	Opsf("dropped")
	assert.Len(t, got, 1)
}

func TestSetLogWriters(t *testing.T) {
	defer SetLogWriters(LogWriters{})

	var ops, diag bytes.Buffer
	SetLogWriters(LogWriters{Ops: &ops, Diag: &diag})

	Opsf("snapshot %s", "abc")
	Diagf("glyphs %q", "■")

	assert.Contains(t, ops.String(), "[occupancy] ")
	assert.Contains(t, ops.String(), "snapshot abc")
	assert.NotContains(t, ops.String(), "glyphs")
	assert.Contains(t, diag.String(), `glyphs "■"`)
}

func TestSetLogWriters_NilMutes(t *testing.T) {
	defer SetLogWriters(LogWriters{})

	var ops bytes.Buffer
	SetLogWriters(LogWriters{Ops: &ops})
	SetLogWriters(LogWriters{})

	Opsf("quiet")
	Diagf("quiet")
	assert.Empty(t, ops.String())
}
