package dotmap

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

//------------------------------------------------------------------------------
// JSON
//------------------------------------------------------------------------------

// FromJSON decodes a JSON object into a new Container. The document must
// already be in the shape mode describes.
func FromJSON(data []byte, mode Mode, opts ...Option) (*Container, error) {
	m, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return New(m, mode, opts...)
}

func decodeJSON(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, res.Type)
	}
	m, _ := res.Value().(map[string]any)
	return m, nil
}

// MarshalJSON encodes the held mapping.
func (c *Container) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.root())
}

// UnmarshalJSON replaces the entries of the held mapping with the decoded
// object, keeping the mapping itself and the mode.
func (c *Container) UnmarshalJSON(data []byte) error {
	m, err := decodeJSON(data)
	if err != nil {
		return err
	}
	c.replace(m)
	return nil
}

// PrettyJSON encodes the held mapping with indentation.
func (c *Container) PrettyJSON() ([]byte, error) {
	b, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(b), nil
}

// Overlay writes every flattened entry into the JSON document doc and returns
// the result; entries already in doc are overwritten, other content is kept.
// An empty doc starts from an empty object.
//
// sjson paths cannot address an empty key, so a key with an empty segment
// fails with a *PathError wrapping ErrEmptySegment before anything is written.
func (c *Container) Overlay(doc []byte) ([]byte, error) {
	if len(doc) == 0 {
		doc = []byte("{}")
	} else if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidJSON
	}

	flat := c.Flatten()
	keys := sortedKeys(flat)
	for _, key := range keys {
		if err := checkSegments(key, flat[key]); err != nil {
			return nil, err
		}
	}

	var err error
	for _, key := range keys {
		path := BuildEscapedPath(SplitKey(key)...)
		if doc, err = sjson.SetBytes(doc, path, flat[key]); err != nil {
			return nil, fmt.Errorf("dotmap: overlay %q: %w", key, err)
		}
	}
	return doc, nil
}

func checkSegments(key string, value any) error {
	segments := SplitKey(key)
	for i, seg := range segments {
		if seg == "" {
			return &PathError{
				Op:      "overlay",
				Key:     key,
				Segment: segments[:i+1].String(),
				Value:   value,
				Err:     ErrEmptySegment,
			}
		}
	}
	return nil
}

//------------------------------------------------------------------------------
// YAML
//------------------------------------------------------------------------------

// FromYAML decodes a YAML mapping into a new Container. An empty document
// yields an empty Container.
func FromYAML(data []byte, mode Mode, opts ...Option) (*Container, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dotmap: decode yaml: %w", err)
	}
	if raw == nil {
		return New(nil, mode, opts...)
	}
	m, ok := normalizeYAML(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, raw)
	}
	return New(m, mode, opts...)
}

// MarshalYAML lets yaml.Marshal encode a Container as its held mapping.
func (c *Container) MarshalYAML() (any, error) {
	return c.root(), nil
}

// YAML encodes the held mapping as YAML.
func (c *Container) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// normalizeYAML converts the map[any]any that YAML produces for mappings with
// non-string keys into map[string]any, recursively.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, sub := range val {
			val[k] = normalizeYAML(sub)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, sub := range val {
			out[fmt.Sprint(k)] = normalizeYAML(sub)
		}
		return out
	case []any:
		for i, sub := range val {
			val[i] = normalizeYAML(sub)
		}
		return val
	default:
		return v
	}
}

func (c *Container) replace(m map[string]any) {
	data := c.root()
	for k := range data {
		delete(data, k)
	}
	for k, v := range m {
		data[k] = v
	}
}
