package dsl

import (
	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// UnionSchema accepts a value matching any of its options. Options are
// tried in order and the first success wins. When none matches, a single
// invalid_union issue carries each option's issues in Params["unionErrors"].
type UnionSchema struct {
	options []skema.Schema
	desc    string
}

// Union returns a union of at least one option.
func Union(options ...skema.Schema) UnionSchema {
	if len(options) == 0 {
		panic("dsl: Union needs at least one option")
	}
	for _, o := range options {
		if o == nil {
			panic("dsl: Union with nil option")
		}
	}
	return UnionSchema{options: options}
}

func (u UnionSchema) Kind() skema.Kind { return skema.KindUnion }

// Describe sets the description exported to JSON Schema.
func (u UnionSchema) Describe(text string) UnionSchema { u.desc = text; return u }

// Options returns the union members in order.
func (u UnionSchema) Options() []skema.Schema { return append([]skema.Schema(nil), u.options...) }

func (u UnionSchema) Evaluate(c *skema.Ctx, v any) any {
	errs := make([]skema.Issues, 0, len(u.options))
	for _, o := range u.options {
		fc := c.Fork()
		r := o.Evaluate(fc, v)
		if !skema.IsNever(r) && fc.IssueCount() == 0 {
			return r
		}
		errs = append(errs, fc.Issues())
	}
	report(c, skema.CodeInvalidUnion, skema.CodeInvalidUnion, map[string]any{"unionErrors": errs}, "")
	return skema.Never
}

func (u UnionSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Description: u.desc, AnyOf: make([]*js.Schema, 0, len(u.options))}
	for _, o := range u.options {
		s, err := o.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, s)
	}
	return out, nil
}

func (u UnionSchema) Optional() Wrapper { return Optional(u) }
func (u UnionSchema) Nullable() Wrapper { return Nullable(u) }
func (u UnionSchema) Default(v any) Wrapper { return Default(u, v) }
func (u UnionSchema) Transform(fn TransformFunc) Wrapper { return Transform(u, fn) }
func (u UnionSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(u, fn) }
func (u UnionSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(u, pred, msg...)
}

// DiscriminatedUnionSchema picks one object variant by the string value of
// a discriminator property, so only that variant's issues are reported.
type DiscriminatedUnionSchema struct {
	key      string
	tags     []string
	variants map[string]ObjectSchema
	list     []ObjectSchema
	desc     string
}

// DiscriminatedUnion returns a union over object variants keyed by the
// property key. Every variant must declare key as a string Literal or an
// Enum, and no tag may map to two variants.
func DiscriminatedUnion(key string, variants ...ObjectSchema) DiscriminatedUnionSchema {
	u := DiscriminatedUnionSchema{key: key, variants: make(map[string]ObjectSchema)}
	for _, v := range variants {
		for _, tag := range discriminatorTags(v, key) {
			if _, dup := u.variants[tag]; dup {
				panic("dsl: duplicate discriminator value " + tag)
			}
			u.variants[tag] = v
			u.tags = append(u.tags, tag)
		}
		u.list = append(u.list, v)
	}
	if len(u.tags) == 0 {
		panic("dsl: DiscriminatedUnion needs at least one variant")
	}
	return u
}

func discriminatorTags(o ObjectSchema, key string) []string {
	for _, f := range o.fields {
		if f.Name != key {
			continue
		}
		switch s := f.Schema.(type) {
		case LiteralSchema:
			if tag, ok := s.value.(string); ok {
				return []string{tag}
			}
		case EnumSchema:
			return s.Options()
		}
	}
	panic("dsl: variant without a string literal or enum field " + key)
}

func (u DiscriminatedUnionSchema) Kind() skema.Kind { return skema.KindUnion }

// Describe sets the description exported to JSON Schema.
func (u DiscriminatedUnionSchema) Describe(text string) DiscriminatedUnionSchema {
	u.desc = text
	return u
}

func (u DiscriminatedUnionSchema) Evaluate(c *skema.Ctx, v any) any {
	in, _, ok := stringMap(v)
	if !ok {
		invalidType(c, "object", v)
		return skema.Never
	}
	tag, _ := in[u.key].(string)
	variant, ok := u.variants[tag]
	if !ok {
		report(c.Key(u.key), skema.CodeInvalidUnionDiscriminator, skema.CodeInvalidUnionDiscriminator, map[string]any{"options": u.tags}, "")
		return skema.Never
	}
	return variant.Evaluate(c, v)
}

func (u DiscriminatedUnionSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Description: u.desc, AnyOf: make([]*js.Schema, 0, len(u.list))}
	for _, v := range u.list {
		s, err := v.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, s)
	}
	return out, nil
}

func (u DiscriminatedUnionSchema) Optional() Wrapper { return Optional(u) }
func (u DiscriminatedUnionSchema) Nullable() Wrapper { return Nullable(u) }
func (u DiscriminatedUnionSchema) Default(v any) Wrapper { return Default(u, v) }
func (u DiscriminatedUnionSchema) Transform(fn TransformFunc) Wrapper { return Transform(u, fn) }
func (u DiscriminatedUnionSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper {
	return SuperRefine(u, fn)
}
func (u DiscriminatedUnionSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(u, pred, msg...)
}
