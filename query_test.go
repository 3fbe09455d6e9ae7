package dotmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContainer(t *testing.T, mode Mode) *Container {
	t.Helper()
	if mode == ModeFlat {
		return mustNew(t, map[string]any{
			"food.bacon.taste": "good",
			"food.bacon.smell": "great",
			"n":                1,
		}, ModeFlat)
	}
	return mustNew(t, map[string]any{
		"food": map[string]any{"bacon": map[string]any{"taste": "good", "smell": "great"}},
		"n":    1,
	}, ModeNested)
}

func TestQuery(t *testing.T) {
	for _, mode := range []Mode{ModeFlat, ModeNested} {
		t.Run(string(mode), func(t *testing.T) {
			c := queryContainer(t, mode)

			got, err := c.Query(".food.bacon.taste")
			require.NoError(t, err)
			assert.Equal(t, []any{"good"}, got)

			got, err = c.Query(".food.bacon | keys")
			require.NoError(t, err)
			assert.Equal(t, []any{[]any{"smell", "taste"}}, got)

			got, err = c.Query(".n")
			require.NoError(t, err)
			assert.Equal(t, []any{float64(1)}, got)
		})
	}
}

func TestQuery_NoOutput(t *testing.T) {
	c := queryContainer(t, ModeNested)

	got, err := c.Query("empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_Halt(t *testing.T) {
	c := queryContainer(t, ModeNested)

	got, err := c.Query(`.food.bacon.taste, halt, "never"`)
	require.NoError(t, err)
	assert.Equal(t, []any{"good"}, got)
}

func TestQuery_InvalidExpression(t *testing.T) {
	c := queryContainer(t, ModeNested)

	_, err := c.Query(".[")
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestQuery_RuntimeError(t *testing.T) {
	c := queryContainer(t, ModeNested)

	_, err := c.Query(`error("boom")`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidQuery)
}

func TestQuery_ConflictingFlatData(t *testing.T) {
	c := mustNew(t, map[string]any{"a": 1, "a.b": 2}, ModeFlat)

	_, err := c.Query(".")
	require.ErrorIs(t, err, ErrNotMapping)
}
