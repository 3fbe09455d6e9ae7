package dotmap

import "sort"

// IsPlainMap reports whether v is a mapping that Flatten and Expand walk into.
// Only map[string]any qualifies; lists, nil, scalars, other map types, structs,
// pointers and *Container values are leaves.
func IsPlainMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

//------------------------------------------------------------------------------
// FLATTEN
//------------------------------------------------------------------------------

// Flatten converts a nested mapping into a one-level mapping whose keys are the
// dot-joined paths to every leaf. Lists are leaves and are never indexed into.
// Empty sub-mappings produce no entries.
func Flatten(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	flattenInto(out, src, "")
	return out
}

func flattenInto(out, src map[string]any, prefix string) {
	for key, value := range src {
		path := prefix + key
		if sub, ok := value.(map[string]any); ok {
			flattenInto(out, sub, path+Separator)
			continue
		}
		out[path] = value
	}
}

//------------------------------------------------------------------------------
// EXPAND
//------------------------------------------------------------------------------

// Expand converts a flat mapping with dotted keys into a nested mapping.
//
// Keys are processed in ascending order and later keys win conflicts. When an
// intermediate segment already holds a non-mapping value, overwriteParent
// replaces it with a fresh mapping; otherwise Expand fails with a *PathError.
// Mapping values are expanded recursively, so mixed input is normalized too.
// The result never shares sub-mappings with src.
func Expand(src map[string]any, overwriteParent bool) (map[string]any, error) {
	out := make(map[string]any, len(src))
	if err := expandInto(out, src, "", overwriteParent); err != nil {
		return nil, err
	}
	return out, nil
}

// prefix is the dotted location of src within the overall input, used only
// to report errors against the key the caller supplied.
func expandInto(dst, src map[string]any, prefix string, overwriteParent bool) error {
	for _, key := range sortedKeys(src) {
		value := src[key]
		segments := SplitKey(key)
		last := len(segments) - 1

		node := dst
		for i, seg := range segments[:last] {
			existing, exists := node[seg]
			child, ok := existing.(map[string]any)
			if !ok {
				if exists && !overwriteParent {
					return &PathError{
						Op:      "expand",
						Key:     prefix + key,
						Segment: prefix + segments[:i+1].String(),
						Value:   existing,
						Err:     ErrNotMapping,
					}
				}
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}

		sub, ok := value.(map[string]any)
		if !ok {
			node[segments[last]] = value
			continue
		}
		target, ok := node[segments[last]].(map[string]any)
		if !ok {
			target = make(map[string]any, len(sub))
			node[segments[last]] = target
		}
		if err := expandInto(target, sub, prefix+key+Separator, overwriteParent); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
