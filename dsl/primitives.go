package dsl

import (
	"slices"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/coerce"
	js "github.com/reoring/skema/jsonschema"
)

// step is one entry of a primitive's constraint chain: either a normalizer
// that rewrites the value or a check that may report issues. Steps run in
// the order they were chained.
type step[T any] struct {
	norm  func(T) T
	check func(c *skema.Ctx, v T)
	js    func(s *js.Schema)
}

func appendStep[T any](steps []step[T], st step[T]) []step[T] {
	return append(slices.Clip(steps), st)
}

func runSteps[T any](c *skema.Ctx, steps []step[T], v T) T {
	for _, st := range steps {
		if st.norm != nil {
			v = st.norm(v)
			continue
		}
		if st.check != nil {
			st.check(c, v)
		}
	}
	return v
}

func applySteps[T any](out *js.Schema, steps []step[T]) *js.Schema {
	for _, st := range steps {
		if st.js != nil {
			st.js(out)
		}
	}
	return out
}

// Coerce holds the coercing variants of the primitive builders, e.g.
// Coerce.Number() accepts "20000".
var Coerce coercer

type coercer struct{}

func (coercer) String() StringSchema { return StringSchema{coerce: true} }
func (coercer) Number() NumberSchema { return NumberSchema{coerce: true} }
func (coercer) Bool() BoolSchema { return BoolSchema{coerce: true} }
func (coercer) Date() DateSchema { return DateSchema{coerce: true} }

// BoolSchema validates booleans.
type BoolSchema struct {
	coerce bool
	desc   string
}

// Bool returns a boolean schema.
func Bool() BoolSchema { return BoolSchema{} }

func (b BoolSchema) Kind() skema.Kind { return skema.KindBool }

// Describe sets the description exported to JSON Schema.
func (b BoolSchema) Describe(text string) BoolSchema { b.desc = text; return b }

func (b BoolSchema) Evaluate(c *skema.Ctx, v any) any {
	x, ok := v.(bool)
	if !ok && b.coerce {
		x, ok = coerce.ToBool(v)
	}
	if !ok {
		invalidType(c, "boolean", v)
		return skema.Never
	}
	return x
}

func (b BoolSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "boolean", Description: b.desc}, nil
}

func (b BoolSchema) Optional() Wrapper { return Optional(b) }
func (b BoolSchema) Nullable() Wrapper { return Nullable(b) }
func (b BoolSchema) Default(v any) Wrapper { return Default(b, v) }
func (b BoolSchema) Transform(fn TransformFunc) Wrapper { return Transform(b, fn) }
func (b BoolSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(b, fn) }
func (b BoolSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(b, pred, msg...)
}

// AnySchema accepts every value, including a missing one, unchanged.
type AnySchema struct{ desc string }

// Any returns a schema that accepts anything.
func Any() AnySchema { return AnySchema{} }

func (a AnySchema) Kind() skema.Kind { return skema.KindAny }
func (a AnySchema) Describe(text string) AnySchema { a.desc = text; return a }
func (a AnySchema) Evaluate(_ *skema.Ctx, v any) any { return v }
func (a AnySchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Description: a.desc}, nil }
func (a AnySchema) Transform(fn TransformFunc) Wrapper { return Transform(a, fn) }
func (a AnySchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(a, fn) }
func (a AnySchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(a, pred, msg...)
}
