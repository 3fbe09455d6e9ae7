package dotmap

import (
	"fmt"
	"strings"
)

// Separator joins path segments in flat keys and dotted key expressions.
const Separator = "."

// Path is an ordered sequence of key segments. Segments may be empty.
type Path []string

// SplitKey splits a dotted key into its segments. A key without a separator
// yields a single segment, "" yields [""] and "." yields ["", ""].
func SplitKey(key string) Path {
	return strings.Split(key, Separator)
}

// String joins the segments back into a dotted key.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// normalize splits every segment on the separator. Already split paths are
// returned as they are.
func (p Path) normalize() Path {
	for _, seg := range p {
		if strings.Contains(seg, Separator) {
			out, _ := appendKey(make(Path, 0, len(p)+1), p)
			return out
		}
	}
	return p
}

// NormalizeKey flattens heterogeneous key expressions into one Path.
//
// Every part is either a dotted string, a []string / Path of dotted strings,
// or a []any holding any mix of these, nested to any depth:
//
//	NormalizeKey("a.b", []string{"c"}, []any{"d.e", []any{"f"}})
//	// Path{"a", "b", "c", "d", "e", "f"}
func NormalizeKey(parts ...any) (Path, error) {
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		var err error
		if path, err = appendKey(path, part); err != nil {
			return nil, err
		}
	}
	return path, nil
}

func appendKey(path Path, part any) (Path, error) {
	switch p := part.(type) {
	case string:
		return append(path, SplitKey(p)...), nil
	case Path:
		for _, s := range p {
			path = append(path, SplitKey(s)...)
		}
		return path, nil
	case []string:
		for _, s := range p {
			path = append(path, SplitKey(s)...)
		}
		return path, nil
	case []any:
		var err error
		for _, nested := range p {
			if path, err = appendKey(path, nested); err != nil {
				return nil, err
			}
		}
		return path, nil
	default:
		return nil, fmt.Errorf("%w: unsupported part of type %T", ErrInvalidKey, part)
	}
}
