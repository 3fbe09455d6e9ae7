package dotmap

import "testing"

func TestEscapePathSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"foo.bar", `foo\.bar`},
		{"*key", `\*key`},
		{"a@b|c", `a\@b\|c`},
		{":0", `\:0`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := EscapePathSegment(tt.in); got != tt.want {
			t.Errorf("EscapePathSegment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildEscapedPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"config", "foo.bar", "0"}, `config.foo\.bar.:0`},
		{[]string{"", ""}, "."},
		{[]string{"v1", "12a"}, "v1.12a"},
	}

	for _, tt := range tests {
		if got := BuildEscapedPath(tt.segments...); got != tt.want {
			t.Errorf("BuildEscapedPath(%q) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}
