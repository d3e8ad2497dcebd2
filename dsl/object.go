package dsl

import (
	"slices"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// ObjectField is one declared property of an object schema.
type ObjectField struct {
	Name   string
	Schema skema.Schema
}

// Field declares property name validated by s.
func Field(name string, s skema.Schema) ObjectField {
	if s == nil {
		panic("dsl: field " + name + " has a nil schema")
	}
	return ObjectField{Name: name, Schema: s}
}

// ObjectSchema validates string-keyed objects field by field, in
// declaration order. A missing property is evaluated as skema.Undefined and
// fields whose result is Undefined are left out of the output map.
type ObjectSchema struct {
	fields  []ObjectField
	unknown skema.UnknownPolicy
	desc    string
}

// Object returns an object schema with the given fields. Unknown input keys
// are stripped.
func Object(fields ...ObjectField) ObjectSchema {
	return ObjectSchema{}.Extend(fields...)
}

func (o ObjectSchema) Kind() skema.Kind { return skema.KindObject }

// Describe sets the description exported to JSON Schema.
func (o ObjectSchema) Describe(text string) ObjectSchema { o.desc = text; return o }

// Strict reports unknown keys as one unrecognized_keys issue.
func (o ObjectSchema) Strict() ObjectSchema { return o.Unknown(skema.UnknownStrict) }

// Strip drops unknown keys (the default).
func (o ObjectSchema) Strip() ObjectSchema { return o.Unknown(skema.UnknownStrip) }

// Passthrough copies unknown keys into the output unchanged.
func (o ObjectSchema) Passthrough() ObjectSchema { return o.Unknown(skema.UnknownPassthrough) }

// Unknown sets the unknown-key policy.
func (o ObjectSchema) Unknown(p skema.UnknownPolicy) ObjectSchema { o.unknown = p; return o }

// Shape returns the declared fields in order.
func (o ObjectSchema) Shape() []ObjectField { return slices.Clone(o.fields) }

// Extend adds fields; a field named like an existing one replaces it in place.
func (o ObjectSchema) Extend(fields ...ObjectField) ObjectSchema {
	out := slices.Clone(o.fields)
	for _, f := range fields {
		if f.Schema == nil {
			panic("dsl: field " + f.Name + " has a nil schema")
		}
		if i := slices.IndexFunc(out, func(g ObjectField) bool { return g.Name == f.Name }); i >= 0 {
			out[i] = f
			continue
		}
		out = append(out, f)
	}
	o.fields = out
	return o
}

// Merge extends o with the fields of other and adopts its unknown-key policy.
func (o ObjectSchema) Merge(other ObjectSchema) ObjectSchema {
	o = o.Extend(other.fields...)
	o.unknown = other.unknown
	return o
}

// Pick keeps only the named fields.
func (o ObjectSchema) Pick(names ...string) ObjectSchema {
	o.fields = slices.DeleteFunc(slices.Clone(o.fields), func(f ObjectField) bool { return !slices.Contains(names, f.Name) })
	return o
}

// Omit drops the named fields.
func (o ObjectSchema) Omit(names ...string) ObjectSchema {
	o.fields = slices.DeleteFunc(slices.Clone(o.fields), func(f ObjectField) bool { return slices.Contains(names, f.Name) })
	return o
}

// Partial makes every field optional.
func (o ObjectSchema) Partial() ObjectSchema {
	out := slices.Clone(o.fields)
	for i, f := range out {
		if !IsOptional(f.Schema) {
			out[i].Schema = Optional(f.Schema)
		}
	}
	o.fields = out
	return o
}

// Required removes a top-level Optional wrapper from every field.
func (o ObjectSchema) Required() ObjectSchema {
	out := slices.Clone(o.fields)
	for i, f := range out {
		if w, ok := f.Schema.(Wrapper); ok && w.kind == skema.KindOptional {
			out[i].Schema = w.inner
		}
	}
	o.fields = out
	return o
}

func (o ObjectSchema) declared(name string) bool {
	return slices.ContainsFunc(o.fields, func(f ObjectField) bool { return f.Name == name })
}

func (o ObjectSchema) Evaluate(c *skema.Ctx, v any) any {
	in, keys, ok := stringMap(v)
	if !ok {
		invalidType(c, "object", v)
		return skema.Never
	}
	before := c.IssueCount()
	failed := false
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		fv, present := in[f.Name]
		if !present {
			fv = skema.Undefined
		}
		r := f.Schema.Evaluate(c.Key(f.Name), fv)
		switch {
		case skema.IsNever(r):
			failed = true
		case !skema.IsUndefined(r):
			out[f.Name] = r
		}
	}
	var unknown []string
	for _, k := range keys {
		if !o.declared(k) {
			unknown = append(unknown, k)
		}
	}
	switch o.unknown {
	case skema.UnknownStrict:
		if len(unknown) > 0 {
			report(c, skema.CodeUnrecognizedKeys, skema.CodeUnrecognizedKeys, map[string]any{"keys": unknown}, "")
		}
	case skema.UnknownPassthrough:
		for _, k := range unknown {
			out[k] = in[k]
		}
	}
	if failed || c.IssueCount() > before {
		return skema.Never
	}
	return out
}

func (o ObjectSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Description: o.desc, Properties: make(map[string]*js.Schema, len(o.fields))}
	for _, f := range o.fields {
		fs, err := f.Schema.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.Properties[f.Name] = fs
		if !IsOptional(f.Schema) {
			out.Required = append(out.Required, f.Name)
		}
	}
	switch o.unknown {
	case skema.UnknownStrict:
		out.AdditionalProperties = false
	case skema.UnknownPassthrough:
		out.AdditionalProperties = true
	}
	return out, nil
}

func (o ObjectSchema) Optional() Wrapper { return Optional(o) }
func (o ObjectSchema) Nullable() Wrapper { return Nullable(o) }
func (o ObjectSchema) Default(v any) Wrapper { return Default(o, v) }
func (o ObjectSchema) Transform(fn TransformFunc) Wrapper { return Transform(o, fn) }
func (o ObjectSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(o, fn) }
func (o ObjectSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(o, pred, msg...)
}
