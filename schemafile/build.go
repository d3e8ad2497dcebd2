package schemafile

import (
	"fmt"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
	"github.com/reoring/skema/expr"
)

// Compile loads and builds a schema document.
func Compile(data []byte) (skema.Schema, error) {
	d, err := Load(data)
	if err != nil {
		return nil, err
	}
	return Build(d)
}

// Build turns a definition into a schema. The base schema is wrapped in
// this order: refinements, nullable, then default or optional.
func Build(d *Definition) (skema.Schema, error) {
	if d == nil {
		return nil, fmt.Errorf("schemafile: nil definition")
	}
	s, err := buildBase(d)
	if err != nil {
		return nil, err
	}
	for _, r := range d.Refine {
		p := r.Program
		if p == nil {
			if p, err = expr.Compile(r.Expr); err != nil {
				return nil, fmt.Errorf("schemafile: line %d: %w", d.Line, err)
			}
		}
		s = dsl.SuperRefine(s, expr.Refinement(p, r.Message))
	}
	if d.Nullable {
		s = dsl.Nullable(s)
	}
	switch {
	case d.HasDefault:
		s = dsl.Default(s, d.Default)
	case d.Optional:
		s = dsl.Optional(s)
	}
	return s, nil
}

func buildBase(d *Definition) (skema.Schema, error) {
	switch d.Type {
	case "string":
		return buildString(d), nil
	case "number":
		return buildNumber(d), nil
	case "boolean":
		if d.Coerce {
			return dsl.Coerce.Bool().Describe(d.Description), nil
		}
		return dsl.Bool().Describe(d.Description), nil
	case "date":
		s := dsl.Date()
		if d.Coerce {
			s = dsl.Coerce.Date()
		}
		if d.MinDate != nil {
			s = s.Min(*d.MinDate, d.message("min")...)
		}
		if d.MaxDate != nil {
			s = s.Max(*d.MaxDate, d.message("max")...)
		}
		return s.Describe(d.Description), nil
	case "object":
		return buildObject(d)
	case "array":
		items, err := Build(d.Items)
		if err != nil {
			return nil, err
		}
		s := dsl.Array(items)
		if d.Min != nil {
			s = s.Min(int(*d.Min), d.message("min")...)
		}
		if d.Max != nil {
			s = s.Max(int(*d.Max), d.message("max")...)
		}
		if d.Length != nil {
			s = s.Length(*d.Length, d.message("length")...)
		}
		return s.Describe(d.Description), nil
	case "set":
		items, err := Build(d.Items)
		if err != nil {
			return nil, err
		}
		s := dsl.Set(items)
		if d.Min != nil {
			s = s.Min(int(*d.Min), d.message("min")...)
		}
		if d.Max != nil {
			s = s.Max(int(*d.Max), d.message("max")...)
		}
		if d.Length != nil {
			s = s.Size(*d.Length, d.message("length")...)
		}
		return s.Describe(d.Description), nil
	case "map", "record":
		var key skema.Schema
		if d.Key != nil {
			k, err := Build(d.Key)
			if err != nil {
				return nil, err
			}
			key = k
		}
		val, err := Build(d.Value)
		if err != nil {
			return nil, err
		}
		if d.Type == "map" {
			return dsl.Map(key, val).Describe(d.Description), nil
		}
		r := dsl.Record(val)
		if key != nil {
			r = r.Keys(key)
		}
		return r.Describe(d.Description), nil
	case "enum":
		return dsl.Enum(d.Values...).Describe(d.Description), nil
	case "literal":
		return dsl.Literal(d.Literal).Describe(d.Description), nil
	case "any":
		return dsl.Any().Describe(d.Description), nil
	case "union":
		return buildUnion(d)
	}
	return nil, fmt.Errorf("schemafile: line %d: unknown type %q", d.Line, d.Type)
}

func buildString(d *Definition) dsl.StringSchema {
	s := dsl.String()
	if d.Coerce {
		s = dsl.Coerce.String()
	}
	// normalizers run ahead of every check
	for _, n := range d.Normalize {
		switch n {
		case "trim":
			s = s.Trim()
		case "upper":
			s = s.ToUpperCase()
		case "lower":
			s = s.ToLowerCase()
		}
	}
	if d.Min != nil {
		s = s.Min(int(*d.Min), d.message("min")...)
	}
	if d.Max != nil {
		s = s.Max(int(*d.Max), d.message("max")...)
	}
	if d.Length != nil {
		s = s.Length(*d.Length, d.message("length")...)
	}
	switch d.Format {
	case "email":
		s = s.Email(d.message("format")...)
	case "url":
		s = s.URL(d.message("format")...)
	case "uuid":
		s = s.UUID(d.message("format")...)
	}
	if d.Pattern != nil {
		s = s.Regex(d.Pattern, d.message("pattern")...)
	}
	if d.StartsWith != "" {
		s = s.StartsWith(d.StartsWith, d.message("startsWith")...)
	}
	if d.EndsWith != "" {
		s = s.EndsWith(d.EndsWith, d.message("endsWith")...)
	}
	if d.Includes != "" {
		s = s.Includes(d.Includes, d.message("includes")...)
	}
	return s.Describe(d.Description)
}

func buildNumber(d *Definition) dsl.NumberSchema {
	s := dsl.Number()
	if d.Coerce {
		s = dsl.Coerce.Number()
	}
	if d.Int {
		s = s.Int(d.message("int")...)
	}
	if d.Min != nil {
		s = s.Min(*d.Min, d.message("min")...)
	}
	if d.Gt != nil {
		s = s.Gt(*d.Gt, d.message("gt")...)
	}
	if d.Max != nil {
		s = s.Max(*d.Max, d.message("max")...)
	}
	if d.Lt != nil {
		s = s.Lt(*d.Lt, d.message("lt")...)
	}
	if d.MultipleOf != nil {
		s = s.MultipleOf(*d.MultipleOf, d.message("multipleOf")...)
	}
	return s.Describe(d.Description)
}

func buildObject(d *Definition) (dsl.ObjectSchema, error) {
	fields := make([]dsl.ObjectField, 0, len(d.Properties))
	for _, p := range d.Properties {
		s, err := Build(p.Def)
		if err != nil {
			return dsl.ObjectSchema{}, err
		}
		fields = append(fields, dsl.Field(p.Name, s))
	}
	o := dsl.Object(fields...).Describe(d.Description)
	switch d.Unknown {
	case "strict":
		o = o.Strict()
	case "passthrough":
		o = o.Passthrough()
	}
	return o, nil
}

func buildUnion(d *Definition) (skema.Schema, error) {
	if d.Discriminator == "" {
		opts := make([]skema.Schema, 0, len(d.Options))
		for _, od := range d.Options {
			s, err := Build(od)
			if err != nil {
				return nil, err
			}
			opts = append(opts, s)
		}
		return dsl.Union(opts...).Describe(d.Description), nil
	}

	seen := map[string]bool{}
	variants := make([]dsl.ObjectSchema, 0, len(d.Options))
	for _, od := range d.Options {
		if od.Type != "object" || od.Optional || od.Nullable || od.HasDefault || len(od.Refine) > 0 {
			return nil, fmt.Errorf("schemafile: line %d: discriminated union options must be plain objects", od.Line)
		}
		tags, err := discriminatorTags(od, d.Discriminator)
		if err != nil {
			return nil, err
		}
		for _, tag := range tags {
			if seen[tag] {
				return nil, fmt.Errorf("schemafile: line %d: discriminator value %q is used twice", od.Line, tag)
			}
			seen[tag] = true
		}
		o, err := buildObject(od)
		if err != nil {
			return nil, err
		}
		variants = append(variants, o)
	}
	return dsl.DiscriminatedUnion(d.Discriminator, variants...).Describe(d.Description), nil
}

func discriminatorTags(od *Definition, key string) ([]string, error) {
	for _, p := range od.Properties {
		if p.Name != key {
			continue
		}
		pd := p.Def
		plain := !pd.Optional && !pd.Nullable && !pd.HasDefault && len(pd.Refine) == 0
		if tag, ok := pd.Literal.(string); ok && pd.Type == "literal" && plain {
			return []string{tag}, nil
		}
		if pd.Type == "enum" && plain {
			return pd.Values, nil
		}
		break
	}
	return nil, fmt.Errorf("schemafile: line %d: option needs a string literal or enum property %q", od.Line, key)
}
