package dotmap

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/match"
)

// SearchResult is one flattened entry whose rendered value matched.
type SearchResult struct {
	Key   string
	Value any
}

// Search returns every flattened entry whose rendered value contains phrase,
// ordered by key. Lists of any element type are rendered as JSON; the returned Value is the
// stored, unrendered value.
func (c *Container) Search(phrase string) []SearchResult {
	return c.search(func(s string) bool {
		return strings.Contains(s, phrase)
	})
}

// SearchRegexp is Search with a regular expression.
func (c *Container) SearchRegexp(re *regexp.Regexp) []SearchResult {
	return c.search(re.MatchString)
}

// SearchGlob is Search with a glob pattern ('*' and '?') that must match the
// whole rendered value.
func (c *Container) SearchGlob(pattern string) []SearchResult {
	return c.search(func(s string) bool {
		return match.Match(s, pattern)
	})
}

func (c *Container) search(matches func(string) bool) []SearchResult {
	flat := c.Flatten()

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	found := []SearchResult{}
	for _, key := range keys {
		value := flat[key]
		if matches(render(value)) {
			found = append(found, SearchResult{Key: key, Value: value})
		}
	}
	return found
}

// render produces the text a value is searched by.
func render(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	}

	// Lists and mappings of any element type search as JSON text.
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}
