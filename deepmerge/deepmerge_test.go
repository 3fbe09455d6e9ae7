package deepmerge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_LaterSourceWins(t *testing.T) {
	got := Merge(
		map[string]any{"a": 1, "b": map[string]any{"x": 1}},
		map[string]any{"a": 2, "b": map[string]any{"y": 2}},
	)
	assert.Equal(t, map[string]any{"a": 2, "b": map[string]any{"x": 1, "y": 2}}, got)
}

func TestMerge_NoSources(t *testing.T) {
	assert.Equal(t, map[string]any{}, Merge())
	assert.Equal(t, map[string]any{}, Merge(nil, nil))
}

func TestMerge_ListsReplacedWholesale(t *testing.T) {
	src := []any{"z"}
	got := Merge(
		map[string]any{"l": []any{"a", "b", "c"}},
		map[string]any{"l": src},
	)
	assert.Equal(t, []any{"z"}, got["l"])

	got["l"].([]any)[0] = "changed"
	assert.Equal(t, "z", src[0], "lists are copied")
}

func TestMerge_TypeChanges(t *testing.T) {
	got := Merge(
		map[string]any{"scalar": 1, "mapping": map[string]any{"x": 1}},
		map[string]any{"scalar": map[string]any{"y": 2}, "mapping": "flat"},
	)
	assert.Equal(t, map[string]any{
		"scalar":  map[string]any{"y": 2},
		"mapping": "flat",
	}, got)
}

func TestMerge_NilValueOverrides(t *testing.T) {
	got := Merge(map[string]any{"a": 1}, map[string]any{"a": nil})
	assert.Contains(t, got, "a")
	assert.Nil(t, got["a"])
}

func TestMerge_DoesNotAliasSources(t *testing.T) {
	first := map[string]any{"a": map[string]any{"x": 1}}
	second := map[string]any{"a": map[string]any{"y": 2}, "b": map[string]any{"z": 3}}

	got := Merge(first, second)
	got["a"].(map[string]any)["w"] = 0
	got["b"].(map[string]any)["w"] = 0

	assert.Equal(t, map[string]any{"x": 1}, first["a"])
	assert.Equal(t, map[string]any{"y": 2}, second["a"])
	assert.Equal(t, map[string]any{"z": 3}, second["b"])
}

func TestInto_MutatesDestination(t *testing.T) {
	inner := map[string]any{"x": 1}
	dst := map[string]any{"a": inner}

	Into(dst, map[string]any{"a": map[string]any{"y": 2}}, map[string]any{"b": true})

	assert.Equal(t, map[string]any{"x": 1, "y": 2}, inner, "existing sub-mappings are merged in place")
	assert.Equal(t, true, dst["b"])
}
