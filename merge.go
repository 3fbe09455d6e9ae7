package dotmap

import "github.com/dhawalhost/dotmap/deepmerge"

// Merge deep-merges sources into the Container's own mapping, left to right,
// and returns the Container. Nil sources are skipped. Each source is first
// reshaped to the Container's mode: flattened for a flat Container, expanded
// for a nested one, so dotted and nested inputs can be mixed freely.
func (c *Container) Merge(sources ...map[string]any) *Container {
	conformed := make([]map[string]any, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		conformed = append(conformed, c.conform(src))
	}
	if len(conformed) > 0 {
		c.merge(c.root(), conformed...)
	}
	return c
}

// MergeFrom merges the mappings held by other Containers, whatever their mode.
func (c *Container) MergeFrom(others ...*Container) *Container {
	sources := make([]map[string]any, 0, len(others))
	for _, o := range others {
		if o == nil {
			continue
		}
		sources = append(sources, o.data)
	}
	return c.Merge(sources...)
}

func (c *Container) conform(src map[string]any) map[string]any {
	if c.IsFlat() {
		return Flatten(src)
	}
	// Overwriting parents cannot fail.
	nested, _ := Expand(src, true)
	return nested
}

// Merge deep-merges sources into a new mapping, left to right, without any
// reshaping. Later sources win conflicts, mappings merge recursively and lists
// are replaced wholesale.
func Merge(sources ...map[string]any) map[string]any {
	return deepmerge.Merge(sources...)
}
