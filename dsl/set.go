package dsl

import (
	"reflect"
	"slices"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// SetSchema validates collections of distinct values and yields *skema.Set.
// Slices are deduplicated before the cardinality checks run; Go maps are
// read as sets of their keys.
type SetSchema struct {
	elem  skema.Schema
	sizes []step[int]
	desc  string
}

// Set returns a set schema with the given element schema.
func Set(elem skema.Schema) SetSchema {
	if elem == nil {
		panic("dsl: Set of nil schema")
	}
	return SetSchema{elem: elem}
}

func (s SetSchema) Kind() skema.Kind { return skema.KindSet }

// Element returns the element schema.
func (s SetSchema) Element() skema.Schema { return s.elem }

// Describe sets the description exported to JSON Schema.
func (s SetSchema) Describe(text string) SetSchema { s.desc = text; return s }

// Min sets the minimum cardinality.
func (s SetSchema) Min(n int, msg ...string) SetSchema {
	s.sizes = appendStep(s.sizes, minSize("set", n, first(msg)))
	return s
}

// Max sets the maximum cardinality.
func (s SetSchema) Max(n int, msg ...string) SetSchema {
	s.sizes = appendStep(s.sizes, maxSize("set", n, first(msg)))
	return s
}

// Size requires exactly n elements.
func (s SetSchema) Size(n int, msg ...string) SetSchema {
	s.sizes = appendStep(s.sizes, exactSize("set", n, first(msg)))
	return s
}

// NonEmpty is Min(1).
func (s SetSchema) NonEmpty(msg ...string) SetSchema { return s.Min(1, msg...) }

func setInput(v any) (*skema.Set, bool) {
	if set, ok := v.(*skema.Set); ok {
		return set, set != nil
	}
	if items, ok := sequence(v); ok {
		return skema.NewSet(items...), true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	keys := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.Interface())
	}
	slices.SortFunc(keys, compareKeys)
	return skema.NewSet(keys...), true
}

func (s SetSchema) Evaluate(c *skema.Ctx, v any) any {
	in, ok := setInput(v)
	if !ok {
		invalidType(c, "set", v)
		return skema.Never
	}
	before := c.IssueCount()
	runSteps(c, s.sizes, in.Len())
	failed := false
	out := &skema.Set{}
	for i, it := range in.Values() {
		r := s.elem.Evaluate(c.Index(i), it)
		if skema.IsNever(r) {
			failed = true
			continue
		}
		out.Add(r)
	}
	if failed || c.IssueCount() > before {
		return skema.Never
	}
	return out
}

func (s SetSchema) JSONSchema() (*js.Schema, error) {
	items, err := s.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return applySteps(&js.Schema{Type: "array", Items: items, UniqueItems: true, Description: s.desc}, s.sizes), nil
}

func (s SetSchema) Optional() Wrapper { return Optional(s) }
func (s SetSchema) Nullable() Wrapper { return Nullable(s) }
func (s SetSchema) Default(v any) Wrapper { return Default(s, v) }
func (s SetSchema) Transform(fn TransformFunc) Wrapper { return Transform(s, fn) }
func (s SetSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(s, fn) }
func (s SetSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(s, pred, msg...)
}
