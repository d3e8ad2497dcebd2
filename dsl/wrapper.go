package dsl

import (
	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// TransformFunc maps a validated value to the output value. It may report
// issues on c and returns skema.Never when no usable value exists.
type TransformFunc func(v any, c *skema.Ctx) any

// Wrapper decorates exactly one inner schema: optional, nullable, default,
// transform or refine. Use the package functions or the methods of the same
// name on every builder to create one.
type Wrapper struct {
	kind      skema.Kind
	inner     skema.Schema
	def       any
	transform TransformFunc
	check     func(v any, c *skema.Ctx)
	desc      string
}

func wrap(kind skema.Kind, inner skema.Schema) Wrapper {
	if inner == nil {
		panic("dsl: " + kind.String() + " of nil schema")
	}
	return Wrapper{kind: kind, inner: inner}
}

// Optional accepts a missing value (skema.Undefined) without evaluating s.
func Optional(s skema.Schema) Wrapper { return wrap(skema.KindOptional, s) }

// Nullable accepts nil without evaluating s.
func Nullable(s skema.Schema) Wrapper { return wrap(skema.KindNullable, s) }

// Default replaces a missing value with v before evaluating s. A v of type
// func() any is called on every use.
func Default(s skema.Schema, v any) Wrapper {
	w := wrap(skema.KindDefault, s)
	w.def = v
	return w
}

// Transform applies fn to the output of s once s succeeds.
func Transform(s skema.Schema, fn TransformFunc) Wrapper {
	if fn == nil {
		panic("dsl: nil transform")
	}
	w := wrap(skema.KindTransform, s)
	w.transform = fn
	return w
}

// Refine runs pred on the output of s once s succeeds; false adds a custom
// issue carrying msg (default "Invalid input").
func Refine(s skema.Schema, pred func(v any) bool, msg ...string) Wrapper {
	if pred == nil {
		panic("dsl: nil refinement")
	}
	m := first(msg)
	return SuperRefine(s, func(v any, c *skema.Ctx) {
		if !pred(v) {
			report(c, skema.CodeCustom, skema.CodeCustom, nil, m)
		}
	})
}

// SuperRefine runs fn on the output of s once s succeeds; any issue fn adds
// fails the evaluation.
func SuperRefine(s skema.Schema, fn func(v any, c *skema.Ctx)) Wrapper {
	if fn == nil {
		panic("dsl: nil refinement")
	}
	w := wrap(skema.KindRefine, s)
	w.check = fn
	return w
}

func (w Wrapper) Kind() skema.Kind { return w.kind }

// Unwrap returns the inner schema.
func (w Wrapper) Unwrap() skema.Schema { return w.inner }

// Describe sets the description exported to JSON Schema.
func (w Wrapper) Describe(text string) Wrapper { w.desc = text; return w }

func (w Wrapper) Evaluate(c *skema.Ctx, v any) any {
	switch w.kind {
	case skema.KindOptional:
		if skema.IsUndefined(v) {
			return skema.Undefined
		}
		return w.inner.Evaluate(c, v)
	case skema.KindNullable:
		if v == nil {
			return nil
		}
		return w.inner.Evaluate(c, v)
	case skema.KindDefault:
		if skema.IsUndefined(v) {
			v = w.defaultValue()
		}
		return w.inner.Evaluate(c, v)
	}

	before := c.IssueCount()
	out := w.inner.Evaluate(c, v)
	if skema.IsNever(out) || c.IssueCount() > before {
		return skema.Never
	}
	switch w.kind {
	case skema.KindTransform:
		out = w.transform(out, c)
	case skema.KindRefine:
		w.check(out, c)
	}
	if c.IssueCount() > before {
		return skema.Never
	}
	if skema.IsNever(out) {
		report(c, skema.CodeCustom, skema.CodeCustom, nil, "")
		return skema.Never
	}
	return out
}

func (w Wrapper) defaultValue() any {
	if f, ok := w.def.(func() any); ok {
		return f()
	}
	return w.def
}

func (w Wrapper) JSONSchema() (*js.Schema, error) {
	in, err := w.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	out := in
	switch w.kind {
	case skema.KindNullable:
		out = js.Nullable(in)
	case skema.KindDefault:
		if _, dynamic := w.def.(func() any); !dynamic {
			cp := *in
			cp.Default = w.def
			out = &cp
		}
	}
	if w.desc != "" {
		cp := *out
		cp.Description = w.desc
		out = &cp
	}
	return out, nil
}

func (w Wrapper) Optional() Wrapper { return Optional(w) }
func (w Wrapper) Nullable() Wrapper { return Nullable(w) }
func (w Wrapper) Default(v any) Wrapper { return Default(w, v) }
func (w Wrapper) Transform(fn TransformFunc) Wrapper { return Transform(w, fn) }
func (w Wrapper) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(w, fn) }
func (w Wrapper) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(w, pred, msg...)
}

// IsOptional reports whether an object field using s may be absent: s is
// Optional, Default or Any, possibly under Nullable, Transform or Refine.
func IsOptional(s skema.Schema) bool {
	for s != nil {
		switch s.Kind() {
		case skema.KindOptional, skema.KindDefault, skema.KindAny:
			return true
		case skema.KindNullable, skema.KindTransform, skema.KindRefine:
			u, ok := s.(interface{ Unwrap() skema.Schema })
			if !ok {
				return false
			}
			s = u.Unwrap()
		default:
			return false
		}
	}
	return false
}
