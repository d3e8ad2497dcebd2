package dsl

import (
	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// MapSchema validates key/value collections and yields *skema.OrderedMap.
// Insertion order of an *skema.OrderedMap input is kept; Go maps are walked
// in sorted key order. Issues for entry i sit at [i, "key"] or [i, "value"].
type MapSchema struct {
	key   skema.Schema
	value skema.Schema
	desc  string
}

// Map returns a map schema. key may be nil to leave keys unchecked.
func Map(key, value skema.Schema) MapSchema {
	if value == nil {
		panic("dsl: Map with nil value schema")
	}
	return MapSchema{key: key, value: value}
}

func (m MapSchema) Kind() skema.Kind { return skema.KindMap }

// Describe sets the description exported to JSON Schema.
func (m MapSchema) Describe(text string) MapSchema { m.desc = text; return m }

func (m MapSchema) Evaluate(c *skema.Ctx, v any) any {
	in, ok := entries(v)
	if !ok {
		invalidType(c, "map", v)
		return skema.Never
	}
	before := c.IssueCount()
	failed := false
	out := &skema.OrderedMap{}
	for i, e := range in {
		k := e.Key
		if m.key != nil {
			k = m.key.Evaluate(c.At(skema.Index(i), skema.Key("key")), e.Key)
		}
		val := m.value.Evaluate(c.At(skema.Index(i), skema.Key("value")), e.Value)
		if skema.IsNever(k) || skema.IsNever(val) {
			failed = true
			continue
		}
		out.Set(k, val)
	}
	if failed || c.IssueCount() > before {
		return skema.Never
	}
	return out
}

// JSONSchema describes string-keyed maps as objects; other key types have
// no JSON object form and yield an array of [key, value] pairs.
func (m MapSchema) JSONSchema() (*js.Schema, error) {
	vs, err := m.value.JSONSchema()
	if err != nil {
		return nil, err
	}
	if m.key == nil || m.key.Kind() == skema.KindString || m.key.Kind() == skema.KindEnum {
		return &js.Schema{Type: "object", AdditionalProperties: vs, Description: m.desc}, nil
	}
	ks, err := m.key.JSONSchema()
	if err != nil {
		return nil, err
	}
	pair := &js.Schema{
		Type:       "object",
		Properties: map[string]*js.Schema{"key": ks, "value": vs},
		Required:   []string{"key", "value"},
	}
	return &js.Schema{Type: "array", Items: pair, Description: m.desc}, nil
}

func (m MapSchema) Optional() Wrapper { return Optional(m) }
func (m MapSchema) Nullable() Wrapper { return Nullable(m) }
func (m MapSchema) Default(v any) Wrapper { return Default(m, v) }
func (m MapSchema) Transform(fn TransformFunc) Wrapper { return Transform(m, fn) }
func (m MapSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(m, fn) }
func (m MapSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(m, pred, msg...)
}

// RecordSchema validates string-keyed objects whose values share one schema
// and yields map[string]any. Value issues sit at the member key.
type RecordSchema struct {
	key   skema.Schema
	value skema.Schema
	desc  string
}

// Record returns a record schema with the given value schema.
func Record(value skema.Schema) RecordSchema {
	if value == nil {
		panic("dsl: Record with nil value schema")
	}
	return RecordSchema{value: value}
}

func (r RecordSchema) Kind() skema.Kind { return skema.KindRecord }

// Describe sets the description exported to JSON Schema.
func (r RecordSchema) Describe(text string) RecordSchema { r.desc = text; return r }

// Keys validates every member name with s (a string, enum or similar schema).
func (r RecordSchema) Keys(s skema.Schema) RecordSchema { r.key = s; return r }

func (r RecordSchema) Evaluate(c *skema.Ctx, v any) any {
	in, keys, ok := stringMap(v)
	if !ok {
		invalidType(c, "object", v)
		return skema.Never
	}
	before := c.IssueCount()
	failed := false
	out := make(map[string]any, len(in))
	for _, k := range keys {
		kc := c.Key(k)
		name := k
		if r.key != nil {
			kr := r.key.Evaluate(kc, k)
			ks, isStr := kr.(string)
			if !isStr {
				failed = true
				continue
			}
			name = ks
		}
		val := r.value.Evaluate(kc, in[k])
		switch {
		case skema.IsNever(val):
			failed = true
		case !skema.IsUndefined(val):
			out[name] = val
		}
	}
	if failed || c.IssueCount() > before {
		return skema.Never
	}
	return out
}

func (r RecordSchema) JSONSchema() (*js.Schema, error) {
	vs, err := r.value.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: vs, Description: r.desc}, nil
}

func (r RecordSchema) Optional() Wrapper { return Optional(r) }
func (r RecordSchema) Nullable() Wrapper { return Nullable(r) }
func (r RecordSchema) Default(v any) Wrapper { return Default(r, v) }
func (r RecordSchema) Transform(fn TransformFunc) Wrapper { return Transform(r, fn) }
func (r RecordSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(r, fn) }
func (r RecordSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(r, pred, msg...)
}
