package dsl

import (
	"math"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/coerce"
	js "github.com/reoring/skema/jsonschema"
)

// NumberSchema validates numbers. It accepts every Go numeric kind and
// json.Number and yields float64. NaN is never a number.
type NumberSchema struct {
	coerce bool
	isInt  bool
	steps  []step[float64]
	desc   string
}

// Number returns a number schema.
func Number() NumberSchema { return NumberSchema{} }

func (n NumberSchema) with(st step[float64]) NumberSchema {
	n.steps = appendStep(n.steps, st)
	return n
}

func (n NumberSchema) Kind() skema.Kind { return skema.KindNumber }

// Describe sets the description exported to JSON Schema.
func (n NumberSchema) Describe(text string) NumberSchema { n.desc = text; return n }

func (n NumberSchema) lower(min float64, inclusive bool, m string) NumberSchema {
	key := "too_small.number"
	if !inclusive {
		key += ".exclusive"
	}
	return n.with(step[float64]{
		check: func(c *skema.Ctx, v float64) {
			if v < min || (!inclusive && v == min) {
				report(c, skema.CodeTooSmall, key, map[string]any{"minimum": min, "type": "number", "inclusive": inclusive, "exact": false}, m)
			}
		},
		js: func(o *js.Schema) {
			if inclusive {
				o.Minimum = js.Ptr(min)
			} else {
				o.ExclusiveMinimum = js.Ptr(min)
			}
		},
	})
}

func (n NumberSchema) upper(max float64, inclusive bool, m string) NumberSchema {
	key := "too_large.number"
	if !inclusive {
		key += ".exclusive"
	}
	return n.with(step[float64]{
		check: func(c *skema.Ctx, v float64) {
			if v > max || (!inclusive && v == max) {
				report(c, skema.CodeTooLarge, key, map[string]any{"maximum": max, "type": "number", "inclusive": inclusive, "exact": false}, m)
			}
		},
		js: func(o *js.Schema) {
			if inclusive {
				o.Maximum = js.Ptr(max)
			} else {
				o.ExclusiveMaximum = js.Ptr(max)
			}
		},
	})
}

// Min requires v >= min.
func (n NumberSchema) Min(min float64, msg ...string) NumberSchema { return n.lower(min, true, first(msg)) }

// Gte is Min.
func (n NumberSchema) Gte(min float64, msg ...string) NumberSchema { return n.lower(min, true, first(msg)) }

// Gt requires v > min.
func (n NumberSchema) Gt(min float64, msg ...string) NumberSchema { return n.lower(min, false, first(msg)) }

// Max requires v <= max.
func (n NumberSchema) Max(max float64, msg ...string) NumberSchema { return n.upper(max, true, first(msg)) }

// Lte is Max.
func (n NumberSchema) Lte(max float64, msg ...string) NumberSchema { return n.upper(max, true, first(msg)) }

// Lt requires v < max.
func (n NumberSchema) Lt(max float64, msg ...string) NumberSchema { return n.upper(max, false, first(msg)) }

// Positive is Gt(0).
func (n NumberSchema) Positive(msg ...string) NumberSchema { return n.Gt(0, msg...) }

// Negative is Lt(0).
func (n NumberSchema) Negative(msg ...string) NumberSchema { return n.Lt(0, msg...) }

// NonNegative is Min(0).
func (n NumberSchema) NonNegative(msg ...string) NumberSchema { return n.Min(0, msg...) }

// NonPositive is Max(0).
func (n NumberSchema) NonPositive(msg ...string) NumberSchema { return n.Max(0, msg...) }

// Int requires an integral value.
func (n NumberSchema) Int(msg ...string) NumberSchema {
	m := first(msg)
	n = n.with(step[float64]{
		check: func(c *skema.Ctx, v float64) {
			if v != math.Trunc(v) || math.IsInf(v, 0) {
				report(c, skema.CodeInvalidType, skema.CodeInvalidType, map[string]any{"expected": "integer", "received": "float"}, m)
			}
		},
	})
	n.isInt = true
	return n
}

// MultipleOf requires v to be an integral multiple of step, tolerating
// binary floating point error (0.3 is a multiple of 0.1).
func (n NumberSchema) MultipleOf(step float64, msg ...string) NumberSchema {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		panic("dsl: MultipleOf needs a positive finite step")
	}
	m := first(msg)
	return n.with(stepFloat(func(c *skema.Ctx, v float64) {
		r := v / step
		if math.Abs(r-math.Round(r)) > 1e-9*math.Max(1, math.Abs(r)) {
			report(c, skema.CodeNotMultipleOf, skema.CodeNotMultipleOf, map[string]any{"multipleOf": step}, m)
		}
	}, func(o *js.Schema) { o.MultipleOf = js.Ptr(step) }))
}

// Finite rejects ±Inf.
func (n NumberSchema) Finite(msg ...string) NumberSchema {
	m := first(msg)
	return n.with(stepFloat(func(c *skema.Ctx, v float64) {
		if math.IsInf(v, 0) {
			report(c, skema.CodeNotFinite, skema.CodeNotFinite, nil, m)
		}
	}, nil))
}

func stepFloat(check func(*skema.Ctx, float64), jsf func(*js.Schema)) step[float64] {
	return step[float64]{check: check, js: jsf}
}

func (n NumberSchema) Evaluate(c *skema.Ctx, v any) any {
	var (
		f  float64
		ok bool
	)
	if n.coerce {
		f, ok = coerce.ToNumber(v)
	} else {
		f, ok = coerce.Float(v)
		ok = ok && !math.IsNaN(f)
	}
	if !ok {
		invalidType(c, "number", v)
		return skema.Never
	}
	before := c.IssueCount()
	f = runSteps(c, n.steps, f)
	if c.IssueCount() > before {
		return skema.Never
	}
	return f
}

func (n NumberSchema) JSONSchema() (*js.Schema, error) {
	t := "number"
	if n.isInt {
		t = "integer"
	}
	return applySteps(&js.Schema{Type: t, Description: n.desc}, n.steps), nil
}

func (n NumberSchema) Optional() Wrapper { return Optional(n) }
func (n NumberSchema) Nullable() Wrapper { return Nullable(n) }
func (n NumberSchema) Default(v any) Wrapper { return Default(n, v) }
func (n NumberSchema) Transform(fn TransformFunc) Wrapper { return Transform(n, fn) }
func (n NumberSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(n, fn) }
func (n NumberSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(n, pred, msg...)
}
