package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(MustNew(3, C(2, 0), C(0, 1)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":3,"occupancies":[[0,1],[2,0]]}`, string(data))

	data, err = json.Marshal(MustNew(2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2,"occupancies":[]}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var g Grid
	require.NoError(t, json.Unmarshal([]byte(`{"n":3,"occupancies":[[1,1],[1,1],[0,2]]}`), &g))
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []Coord{C(0, 2), C(1, 1)}, g.Occupancies())
	assertConsistent(t, &g)
}

func TestUnmarshalJSON_Invalid(t *testing.T) {
	t.Parallel()

	var g Grid
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"n":2,"occupancies":[[2,0]]}`), &g), ErrInvalidCoordinate)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"n":0}`), &g), ErrInvalidSize)
	assert.Error(t, json.Unmarshal([]byte(`{"n":"three"}`), &g))

	for _, pairs := range []string{`[[0,1,2]]`, `[[2]]`, `[[]]`, `[[0,1],[1]]`} {
		err := json.Unmarshal([]byte(`{"n":3,"occupancies":`+pairs+`}`), &g)
		assert.ErrorIs(t, err, ErrMalformed, "occupancies %s", pairs)
	}
	assert.Equal(t, 0, g.Size(), "failed decode must leave the target untouched")
}
