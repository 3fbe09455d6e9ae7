package dotmap

import (
	"strconv"
	"strings"
)

//------------------------------------------------------------------------------
// FETCH
//------------------------------------------------------------------------------

// Fetch returns the value stored at key, or def when there is none.
//
// An exact top-level match for key always wins. Otherwise a nested Container
// walks the dotted path, giving up with def as soon as a segment is missing or
// cannot be descended into. A stored nil is returned as nil, not def.
func (c *Container) Fetch(key string, def any) any {
	if v, ok := c.data[key]; ok {
		return v
	}
	if c.IsFlat() {
		return def
	}
	return fetchPath(c.data, SplitKey(key), def)
}

// FetchPath is Fetch for a path. Each segment is split on the separator
// first, so Path{"a.b", "c"} and Path{"a", "b", "c"} address the same value.
// A flat Container joins the path and looks the result up as one key.
func (c *Container) FetchPath(path Path, def any) any {
	path = path.normalize()
	if c.IsFlat() {
		return c.Fetch(path.String(), def)
	}
	return fetchPath(c.data, path, def)
}

func fetchPath(root map[string]any, path Path, def any) any {
	if len(path) == 0 {
		return def
	}

	var node any = root
	for _, seg := range path {
		child, ok := lookup(node, seg)
		if !ok {
			return def
		}
		node = child
	}
	return node
}

// lookup reads one segment from a mapping, or from a list when the segment
// is a decimal index.
func lookup(node any, seg string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[seg]
		return v, ok
	case []any:
		// Only canonical indexes: "+1" and "01" name no element.
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(n) || strconv.Itoa(i) != seg {
			return nil, false
		}
		return n[i], true
	default:
		return nil, false
	}
}

//------------------------------------------------------------------------------
// PUT
//------------------------------------------------------------------------------

// Put stores value at key. A flat Container, or a key without a separator,
// assigns a single top-level entry. A nested Container creates the missing
// mappings along the path; it fails with a *PathError, without modifying
// anything, when an existing intermediate value is not a mapping.
func (c *Container) Put(key string, value any) error {
	if c.IsFlat() || !strings.Contains(key, Separator) {
		c.root()[key] = value
		return nil
	}
	return putPath(c.root(), key, SplitKey(key), value)
}

// PutPath is Put for a path, normalized as in FetchPath.
func (c *Container) PutPath(path Path, value any) error {
	path = path.normalize()
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if c.IsFlat() {
		c.root()[path.String()] = value
		return nil
	}
	return putPath(c.root(), path.String(), path, value)
}

func putPath(root map[string]any, key string, path Path, value any) error {
	last := len(path) - 1

	// Only missing segments are created, and nothing after a created segment
	// can fail, so an error never leaves a partial write behind.
	node := root
	for i, seg := range path[:last] {
		existing, exists := node[seg]
		if !exists {
			child := make(map[string]any)
			node[seg] = child
			node = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return &PathError{
				Op:      "put",
				Key:     key,
				Segment: path[:i+1].String(),
				Value:   existing,
				Err:     ErrNotMapping,
			}
		}
		node = child
	}
	node[path[last]] = value
	return nil
}

//------------------------------------------------------------------------------
// REMOVE
//------------------------------------------------------------------------------

// Remove deletes key. Missing keys and unresolvable parents are ignored.
func (c *Container) Remove(key string) {
	if c.IsFlat() || !strings.Contains(key, Separator) {
		delete(c.data, key)
		return
	}
	c.RemovePath(SplitKey(key))
}

// RemovePath is Remove for a path, normalized as in FetchPath.
func (c *Container) RemovePath(path Path) {
	path = path.normalize()
	if len(path) == 0 {
		return
	}
	if c.IsFlat() {
		delete(c.data, path.String())
		return
	}

	last := len(path) - 1
	var parent any = c.data
	if last > 0 {
		parent = fetchPath(c.data, path[:last], nil)
	}
	if m, ok := parent.(map[string]any); ok {
		delete(m, path[last])
	}
}

//------------------------------------------------------------------------------
// KEY EXPRESSIONS
//------------------------------------------------------------------------------

// FetchKey is Fetch for a key expression built from parts, as accepted by
// NormalizeKey:
//
//	c.FetchKey(nil, "food", []any{"bacon.taste"}) // same as c.Fetch("food.bacon.taste", nil)
func (c *Container) FetchKey(def any, parts ...any) (any, error) {
	path, err := NormalizeKey(parts...)
	if err != nil {
		return nil, err
	}
	return c.FetchPath(path, def), nil
}

// PutKey is Put for a key expression built from parts.
func (c *Container) PutKey(value any, parts ...any) error {
	path, err := NormalizeKey(parts...)
	if err != nil {
		return err
	}
	return c.PutPath(path, value)
}

// RemoveKey is Remove for a key expression built from parts.
func (c *Container) RemoveKey(parts ...any) error {
	path, err := NormalizeKey(parts...)
	if err != nil {
		return err
	}
	c.RemovePath(path)
	return nil
}

//------------------------------------------------------------------------------
// CONVENIENCE
//------------------------------------------------------------------------------

// FetchOrPut returns the value at key, storing and returning toPut when that
// value is nil. A stored nil is treated the same as a missing key.
func (c *Container) FetchOrPut(key string, toPut any) (any, error) {
	if v := c.Fetch(key, nil); v != nil {
		return v, nil
	}
	if err := c.Put(key, toPut); err != nil {
		return nil, err
	}
	return toPut, nil
}

// ApplyDefaults fills the gaps under key with defaults; values already present
// win. In a nested Container the mapping at key is replaced by the merge of
// defaults and the current mapping, while a non-mapping value at key is left
// alone. In a flat Container each flattened default is stored under
// key + "." + subkey unless that entry already exists.
func (c *Container) ApplyDefaults(key string, defaults map[string]any) error {
	if c.IsFlat() {
		data := c.root()
		for sub, value := range Flatten(defaults) {
			full := key + Separator + sub
			if _, ok := data[full]; !ok {
				data[full] = value
			}
		}
		return nil
	}

	merged := make(map[string]any)
	switch current := c.Fetch(key, nil).(type) {
	case nil:
		c.merge(merged, defaults)
	case map[string]any:
		c.merge(merged, defaults, current)
	default:
		return nil
	}
	return c.Put(key, merged)
}
