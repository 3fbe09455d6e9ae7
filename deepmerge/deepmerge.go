// Package deepmerge overlays map[string]any trees.
//
// Mappings merge key by key, recursively. Every other value, lists included,
// is replaced wholesale by the later source. Sources are never modified and
// their sub-mappings are never shared with the destination.
package deepmerge

// Func overlays sources onto dst in place, left to right, later sources
// winning conflicts. It must not replace dst itself.
type Func func(dst map[string]any, sources ...map[string]any)

var _ Func = Into

// Into is the default Func.
func Into(dst map[string]any, sources ...map[string]any) {
	for _, src := range sources {
		mergeMap(dst, src)
	}
}

// Merge overlays sources onto a fresh map and returns it.
func Merge(sources ...map[string]any) map[string]any {
	out := make(map[string]any)
	Into(out, sources...)
	return out
}

func mergeMap(dst, src map[string]any) {
	for key, value := range src {
		srcMap, ok := value.(map[string]any)
		if !ok {
			dst[key] = copyList(value)
			continue
		}

		// A mapping replaces a non-mapping, then merges like any other.
		dstMap, ok := dst[key].(map[string]any)
		if !ok {
			dstMap = make(map[string]any, len(srcMap))
			dst[key] = dstMap
		}
		mergeMap(dstMap, srcMap)
	}
}

func copyList(v any) any {
	list, ok := v.([]any)
	if !ok || list == nil {
		return v
	}
	out := make([]any, len(list))
	copy(out, list)
	return out
}
