package dsl

import (
	"slices"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/coerce"
	"github.com/reoring/skema/internal/hashkey"
	js "github.com/reoring/skema/jsonschema"
)

// EnumSchema accepts one of a fixed list of strings.
type EnumSchema struct {
	values []string
	desc   string
}

// Enum returns a string enum schema. It panics without values.
func Enum(values ...string) EnumSchema {
	if len(values) == 0 {
		panic("dsl: Enum needs at least one value")
	}
	return EnumSchema{values: slices.Clone(values)}
}

func (e EnumSchema) Kind() skema.Kind { return skema.KindEnum }

// Describe sets the description exported to JSON Schema.
func (e EnumSchema) Describe(text string) EnumSchema { e.desc = text; return e }

// Options returns the accepted values in declaration order.
func (e EnumSchema) Options() []string { return slices.Clone(e.values) }

// Extract returns an enum restricted to values.
func (e EnumSchema) Extract(values ...string) EnumSchema {
	keep := slices.DeleteFunc(slices.Clone(values), func(v string) bool { return !slices.Contains(e.values, v) })
	return Enum(keep...).Describe(e.desc)
}

// Exclude returns an enum without values.
func (e EnumSchema) Exclude(values ...string) EnumSchema {
	keep := slices.DeleteFunc(slices.Clone(e.values), func(v string) bool { return slices.Contains(values, v) })
	return Enum(keep...).Describe(e.desc)
}

func (e EnumSchema) Evaluate(c *skema.Ctx, v any) any {
	s, ok := v.(string)
	if !ok {
		invalidType(c, "string", v)
		return skema.Never
	}
	if !slices.Contains(e.values, s) {
		report(c, skema.CodeInvalidEnumValue, skema.CodeInvalidEnumValue, map[string]any{"options": e.Options(), "received": s}, "")
		return skema.Never
	}
	return s
}

func (e EnumSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Description: e.desc}
	for _, v := range e.values {
		out.Enum = append(out.Enum, v)
	}
	return out, nil
}

func (e EnumSchema) Optional() Wrapper { return Optional(e) }
func (e EnumSchema) Nullable() Wrapper { return Nullable(e) }
func (e EnumSchema) Default(v any) Wrapper { return Default(e, v) }
func (e EnumSchema) Transform(fn TransformFunc) Wrapper { return Transform(e, fn) }
func (e EnumSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(e, fn) }
func (e EnumSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(e, pred, msg...)
}

// LiteralSchema accepts exactly one value. Numbers compare by value, so
// Literal(1) accepts a decoded float64(1) or json.Number("1").
type LiteralSchema struct {
	value any
	desc  string
}

// Literal returns a schema accepting only v.
func Literal(v any) LiteralSchema { return LiteralSchema{value: v} }

func (l LiteralSchema) Kind() skema.Kind { return skema.KindLiteral }

// Describe sets the description exported to JSON Schema.
func (l LiteralSchema) Describe(text string) LiteralSchema { l.desc = text; return l }

// Value returns the accepted value.
func (l LiteralSchema) Value() any { return l.value }

func (l LiteralSchema) matches(v any) bool {
	if a, ok := coerce.Float(l.value); ok {
		b, ok := coerce.Float(v)
		return ok && a == b
	}
	return hashkey.Equal(l.value, v)
}

func (l LiteralSchema) Evaluate(c *skema.Ctx, v any) any {
	if !l.matches(v) {
		report(c, skema.CodeInvalidLiteral, skema.CodeInvalidLiteral, map[string]any{"expected": literalText(l.value), "received": v}, "")
		return skema.Never
	}
	return l.value
}

func (l LiteralSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Const: l.value, Description: l.desc}, nil
}

func (l LiteralSchema) Optional() Wrapper { return Optional(l) }
func (l LiteralSchema) Nullable() Wrapper { return Nullable(l) }
func (l LiteralSchema) Default(v any) Wrapper { return Default(l, v) }
func (l LiteralSchema) Transform(fn TransformFunc) Wrapper { return Transform(l, fn) }
func (l LiteralSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(l, fn) }
func (l LiteralSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(l, pred, msg...)
}
