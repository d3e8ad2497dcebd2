package dsl

import (
	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// size checks shared by arrays and sets; typ is "array" or "set".

func minSize(typ string, n int, m string) step[int] {
	return step[int]{
		check: func(c *skema.Ctx, l int) {
			if l < n {
				report(c, skema.CodeTooSmall, "too_small."+typ, lengthParams("minimum", n, typ, false), m)
			}
		},
		js: func(o *js.Schema) { o.MinItems = js.Ptr(n) },
	}
}

func maxSize(typ string, n int, m string) step[int] {
	return step[int]{
		check: func(c *skema.Ctx, l int) {
			if l > n {
				report(c, skema.CodeTooLarge, "too_large."+typ, lengthParams("maximum", n, typ, false), m)
			}
		},
		js: func(o *js.Schema) { o.MaxItems = js.Ptr(n) },
	}
}

func exactSize(typ string, n int, m string) step[int] {
	return step[int]{
		check: func(c *skema.Ctx, l int) {
			switch {
			case l < n:
				report(c, skema.CodeTooSmall, "too_small."+typ+".exact", lengthParams("minimum", n, typ, true), m)
			case l > n:
				report(c, skema.CodeTooLarge, "too_large."+typ+".exact", lengthParams("maximum", n, typ, true), m)
			}
		},
		js: func(o *js.Schema) { o.MinItems, o.MaxItems = js.Ptr(n), js.Ptr(n) },
	}
}

// ArraySchema validates slices and arrays element by element and yields []any.
// Size issues are reported at the array itself, element issues at their index.
type ArraySchema struct {
	elem  skema.Schema
	sizes []step[int]
	desc  string
}

// Array returns an array schema with the given element schema.
func Array(elem skema.Schema) ArraySchema {
	if elem == nil {
		panic("dsl: Array of nil schema")
	}
	return ArraySchema{elem: elem}
}

func (a ArraySchema) Kind() skema.Kind { return skema.KindArray }

// Element returns the element schema.
func (a ArraySchema) Element() skema.Schema { return a.elem }

// Describe sets the description exported to JSON Schema.
func (a ArraySchema) Describe(text string) ArraySchema { a.desc = text; return a }

// Min sets the minimum length.
func (a ArraySchema) Min(n int, msg ...string) ArraySchema {
	a.sizes = appendStep(a.sizes, minSize("array", n, first(msg)))
	return a
}

// Max sets the maximum length.
func (a ArraySchema) Max(n int, msg ...string) ArraySchema {
	a.sizes = appendStep(a.sizes, maxSize("array", n, first(msg)))
	return a
}

// Length requires exactly n elements.
func (a ArraySchema) Length(n int, msg ...string) ArraySchema {
	a.sizes = appendStep(a.sizes, exactSize("array", n, first(msg)))
	return a
}

// NonEmpty is Min(1).
func (a ArraySchema) NonEmpty(msg ...string) ArraySchema { return a.Min(1, msg...) }

func (a ArraySchema) Evaluate(c *skema.Ctx, v any) any {
	items, ok := sequence(v)
	if !ok {
		invalidType(c, "array", v)
		return skema.Never
	}
	before := c.IssueCount()
	runSteps(c, a.sizes, len(items))
	failed := false
	out := make([]any, len(items))
	for i, it := range items {
		r := a.elem.Evaluate(c.Index(i), it)
		if skema.IsNever(r) {
			failed = true
		}
		out[i] = r
	}
	if failed || c.IssueCount() > before {
		return skema.Never
	}
	return out
}

func (a ArraySchema) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return applySteps(&js.Schema{Type: "array", Items: items, Description: a.desc}, a.sizes), nil
}

func (a ArraySchema) Optional() Wrapper { return Optional(a) }
func (a ArraySchema) Nullable() Wrapper { return Nullable(a) }
func (a ArraySchema) Default(v any) Wrapper { return Default(a, v) }
func (a ArraySchema) Transform(fn TransformFunc) Wrapper { return Transform(a, fn) }
func (a ArraySchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(a, fn) }
func (a ArraySchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(a, pred, msg...)
}
