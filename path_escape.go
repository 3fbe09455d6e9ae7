package dotmap

import "strings"

// EscapePathSegment escapes characters that have special meaning in gjson and
// sjson paths so a key segment is matched literally. Keys containing dots,
// wildcards, query operators or modifiers all round-trip through it.
func EscapePathSegment(seg string) string {
	needsEscape := false
	for i := 0; i < len(seg); i++ {
		if shouldEscapePathChar(seg[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return seg
	}

	var b strings.Builder
	b.Grow(len(seg) * 2)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if shouldEscapePathChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// BuildEscapedPath joins literal segments into an sjson path. Each segment is
// escaped, and all-digit segments get a leading ':' so sjson creates object
// keys rather than array slots for them. An empty segment yields an empty path
// part, which sjson reads as an array append; callers reject those first.
// Example: BuildEscapedPath("config", "foo.bar", "0") -> "config.foo\\.bar.:0".
func BuildEscapedPath(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}

	escaped := make([]string, len(segments))
	for i, s := range segments {
		if isDigits(s) {
			escaped[i] = ":" + s
			continue
		}
		escaped[i] = EscapePathSegment(s)
	}
	return strings.Join(escaped, ".")
}

func shouldEscapePathChar(c byte) bool {
	switch c {
	case '\\', '.', ':', '|', '@', '*', '?', '#', ',', '(', ')', '=', '!', '<', '>', '~':
		return true
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
