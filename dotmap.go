// Package dotmap wraps a map[string]any in one of two interchangeable shapes and
// addresses it with dotted keys.
//
// # Modes
//
// A nested Container holds a tree of sub-mappings and reads "a.b.c" as a path
// through it. A flat Container holds a single-level mapping whose keys are the
// dot-joined paths themselves, so "a.b.c" is an opaque key:
//
//	nested: {"food": {"bacon": {"taste": "good"}}}
//	flat:   {"food.bacon.taste": "good"}
//
// Flatten and Expand convert between the two. Lists are always leaves; they are
// never decomposed into indexed keys. Empty sub-mappings vanish on Flatten.
//
// # Quick Start
//
//	c, _ := dotmap.New(nil, dotmap.ModeNested)
//	_ = c.Put("food.bacon.taste", "good")
//	c.Fetch("food.bacon.taste", nil) // "good"
//	c.Merge(map[string]any{"food.bacon.smell": "great"})
//	c.Search("ea") // [{food.bacon.smell great}]
//
// # Sharp Edges
//
// A key containing a literal dot cannot be told apart from a path once nested.
// Fetch checks for the exact key at the top level before walking the path, so
// the same key may resolve two ways depending on whether such a literal exists.
//
// Returned sub-mappings alias the Container's storage; mutating them mutates
// the Container. Merge, by contrast, always builds new sub-mappings.
//
// A Container is not safe for concurrent use.
package dotmap

import (
	"fmt"

	"github.com/dhawalhost/dotmap/deepmerge"
)

// Mode selects how a Container interprets its keys.
type Mode string

const (
	ModeFlat   Mode = "flat"
	ModeNested Mode = "nested"
)

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == ModeFlat || m == ModeNested
}

// Option customizes Container behavior.
type Option func(*Container)

// WithMerger replaces the deep-merge function used by Merge, MergeFrom and
// ApplyDefaults. A nil merger keeps the default deepmerge.Into.
func WithMerger(merger deepmerge.Func) Option {
	return func(c *Container) {
		if merger != nil {
			c.merger = merger
		}
	}
}

// Container holds one mapping together with the mode that describes its shape.
// The zero value is an empty nested Container.
type Container struct {
	data   map[string]any
	mode   Mode
	merger deepmerge.Func
}

// New wraps data, which is used as is and not copied. A nil data starts empty
// and an empty mode defaults to ModeNested.
func New(data map[string]any, mode Mode, opts ...Option) (*Container, error) {
	c := &Container{data: data}
	if c.data == nil {
		c.data = make(map[string]any)
	}
	if err := c.SetMode(mode); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetMode changes the mode. An empty mode means ModeNested. On error the
// current mode is kept. The data is not converted; callers switching modes
// must also reshape it.
func (c *Container) SetMode(mode Mode) error {
	if mode == "" {
		mode = ModeNested
	}
	if !mode.Valid() {
		return fmt.Errorf("%w %q: must be one of %q or %q", ErrInvalidMode, mode, ModeFlat, ModeNested)
	}
	c.mode = mode
	return nil
}

// Mode returns the current mode.
func (c *Container) Mode() Mode {
	if c.mode == "" {
		return ModeNested
	}
	return c.mode
}

// IsFlat reports whether keys are opaque single-level entries.
func (c *Container) IsFlat() bool { return c.mode == ModeFlat }

// IsNested reports whether keys are paths through sub-mappings.
func (c *Container) IsNested() bool { return !c.IsFlat() }

// Data returns the held mapping itself, not a copy.
func (c *Container) Data() map[string]any {
	return c.root()
}

// Expand returns the nested form of the data. A nested Container returns its
// own mapping; a flat one builds a new tree and fails on self-conflicting keys
// such as "a" and "a.b".
func (c *Container) Expand() (map[string]any, error) {
	if c.IsNested() {
		return c.root(), nil
	}
	return Expand(c.data, false)
}

// Flatten returns the flat form of the data. A flat Container returns its own
// mapping.
func (c *Container) Flatten() map[string]any {
	if c.IsFlat() {
		return c.root()
	}
	return Flatten(c.data)
}

func (c *Container) root() map[string]any {
	if c.data == nil {
		c.data = make(map[string]any)
	}
	return c.data
}

func (c *Container) merge(dst map[string]any, sources ...map[string]any) {
	if c.merger == nil {
		deepmerge.Into(dst, sources...)
		return
	}
	c.merger(dst, sources...)
}
