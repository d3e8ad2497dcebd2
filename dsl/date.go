package dsl

import (
	"time"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/coerce"
	js "github.com/reoring/skema/jsonschema"
)

// DateSchema validates time.Time values. With coercion it also accepts
// calendar dates, RFC 3339 timestamps and Unix milliseconds.
type DateSchema struct {
	coerce bool
	steps  []step[time.Time]
	desc   string
}

// Date returns a date schema.
func Date() DateSchema { return DateSchema{} }

func (d DateSchema) Kind() skema.Kind { return skema.KindDate }

// Describe sets the description exported to JSON Schema.
func (d DateSchema) Describe(text string) DateSchema { d.desc = text; return d }

// Min requires a date at or after t.
func (d DateSchema) Min(t time.Time, msg ...string) DateSchema {
	m := first(msg)
	d.steps = appendStep(d.steps, step[time.Time]{check: func(c *skema.Ctx, v time.Time) {
		if v.Before(t) {
			report(c, skema.CodeTooSmall, "too_small.date", map[string]any{"minimum": t, "type": "date", "inclusive": true, "exact": false}, m)
		}
	}})
	return d
}

// Max requires a date at or before t.
func (d DateSchema) Max(t time.Time, msg ...string) DateSchema {
	m := first(msg)
	d.steps = appendStep(d.steps, step[time.Time]{check: func(c *skema.Ctx, v time.Time) {
		if v.After(t) {
			report(c, skema.CodeTooLarge, "too_large.date", map[string]any{"maximum": t, "type": "date", "inclusive": true, "exact": false}, m)
		}
	}})
	return d
}

func (d DateSchema) Evaluate(c *skema.Ctx, v any) any {
	var (
		t  time.Time
		ok bool
	)
	switch x := v.(type) {
	case time.Time:
		t, ok = x, true
	case *time.Time:
		if x != nil {
			t, ok = *x, true
		}
	}
	if !ok && d.coerce && !skema.IsUndefined(v) {
		t, ok = coerce.ToDate(v)
	}
	if !ok {
		invalidType(c, "date", v)
		return skema.Never
	}
	before := c.IssueCount()
	runSteps(c, d.steps, t)
	if c.IssueCount() > before {
		return skema.Never
	}
	return t
}

func (d DateSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "date-time", Description: d.desc}, nil
}

func (d DateSchema) Optional() Wrapper { return Optional(d) }
func (d DateSchema) Nullable() Wrapper { return Nullable(d) }
func (d DateSchema) Default(v any) Wrapper { return Default(d, v) }
func (d DateSchema) Transform(fn TransformFunc) Wrapper { return Transform(d, fn) }
func (d DateSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(d, fn) }
func (d DateSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(d, pred, msg...)
}
