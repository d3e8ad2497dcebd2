package schemafile

import (
	"fmt"
	"math"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/reoring/skema/expr"
	"github.com/reoring/skema/internal/coerce"
)

// Load parses a schema document. Unknown keywords, keywords that do not
// apply to the declared type and malformed values are errors carrying the
// line they were found on.
func Load(data []byte) (*Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("schemafile: empty document")
	}
	return parseDef(doc.Content[0])
}

func errAt(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("schemafile: line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func parseDef(n *yaml.Node) (*Definition, error) {
	n = resolve(n)
	if n.Kind == yaml.ScalarNode {
		if _, ok := typeKeywords[n.Value]; !ok {
			return nil, errAt(n, "unknown type %q", n.Value)
		}
		d := &Definition{Type: n.Value, Line: n.Line}
		return d, checkRequired(d, n)
	}
	if n.Kind != yaml.MappingNode {
		return nil, errAt(n, "a definition must be a mapping or a type name")
	}

	d := &Definition{Line: n.Line}
	var keys []*yaml.Node
	values := map[string]*yaml.Node{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if _, dup := values[k.Value]; dup {
			return nil, errAt(k, "duplicate keyword %q", k.Value)
		}
		keys = append(keys, k)
		values[k.Value] = n.Content[i+1]
	}
	tn, ok := values["type"]
	if !ok {
		return nil, errAt(n, "missing type")
	}
	d.Type = resolve(tn).Value
	allowed, ok := typeKeywords[d.Type]
	if !ok {
		return nil, errAt(tn, "unknown type %q", d.Type)
	}

	for _, k := range keys {
		if !commonKeywords[k.Value] && !allowed[k.Value] {
			if isKeyword(k.Value) {
				return nil, errAt(k, "keyword %q does not apply to type %s", k.Value, d.Type)
			}
			return nil, errAt(k, "unknown keyword %q", k.Value)
		}
		if err := d.set(k, resolve(values[k.Value])); err != nil {
			return nil, err
		}
	}
	return d, checkRequired(d, n)
}

func isKeyword(k string) bool {
	if commonKeywords[k] {
		return true
	}
	for _, kw := range typeKeywords {
		if kw[k] {
			return true
		}
	}
	return false
}

func checkRequired(d *Definition, n *yaml.Node) error {
	switch {
	case (d.Type == "array" || d.Type == "set") && d.Items == nil:
		return errAt(n, "%s needs items", d.Type)
	case (d.Type == "map" || d.Type == "record") && d.Value == nil:
		return errAt(n, "%s needs value", d.Type)
	case d.Type == "enum" && len(d.Values) == 0:
		return errAt(n, "enum needs values")
	case d.Type == "union" && len(d.Options) == 0:
		return errAt(n, "union needs options")
	}
	return nil
}

func decode[T any](v *yaml.Node, what string) (T, error) {
	var out T
	if err := v.Decode(&out); err != nil {
		return out, errAt(v, "%s: %v", what, err)
	}
	return out, nil
}

// set decodes the value v of keyword k into d.
func (d *Definition) set(k, v *yaml.Node) error {
	var err error
	switch k.Value {
	case "type":
	case "description":
		d.Description, err = decode[string](v, k.Value)
	case "coerce":
		d.Coerce, err = decode[bool](v, k.Value)
	case "optional":
		d.Optional, err = decode[bool](v, k.Value)
	case "nullable":
		d.Nullable, err = decode[bool](v, k.Value)
	case "int":
		d.Int, err = decode[bool](v, k.Value)
	case "default":
		d.Default, err = decode[any](v, k.Value)
		d.HasDefault = true
	case "min", "max":
		return d.setBound(k, v)
	case "gt":
		d.Gt, err = decodePtr[float64](v, k.Value)
	case "lt":
		d.Lt, err = decodePtr[float64](v, k.Value)
	case "multipleOf":
		d.MultipleOf, err = decodePtr[float64](v, k.Value)
		if err == nil && *d.MultipleOf <= 0 {
			err = errAt(v, "multipleOf must be positive")
		}
	case "length":
		d.Length, err = decodePtr[int](v, k.Value)
	case "format":
		d.Format, err = decode[string](v, k.Value)
		if err == nil && !formats[d.Format] {
			err = errAt(v, "unknown format %q (email, url or uuid)", d.Format)
		}
	case "pattern":
		var src string
		if src, err = decode[string](v, k.Value); err == nil {
			if d.Pattern, err = regexp.Compile(src); err != nil {
				err = errAt(v, "pattern: %v", err)
			}
		}
	case "startsWith":
		d.StartsWith, err = decode[string](v, k.Value)
	case "endsWith":
		d.EndsWith, err = decode[string](v, k.Value)
	case "includes":
		d.Includes, err = decode[string](v, k.Value)
	case "normalize":
		if d.Normalize, err = decode[[]string](v, k.Value); err == nil {
			for _, s := range d.Normalize {
				if !normalizer[s] {
					return errAt(v, "unknown normalizer %q (trim, upper or lower)", s)
				}
			}
		}
	case "unknown":
		d.Unknown, err = decode[string](v, k.Value)
		if err == nil && !unknowns[d.Unknown] {
			err = errAt(v, "unknown must be strip, strict or passthrough")
		}
	case "properties":
		return d.setProperties(v)
	case "items":
		d.Items, err = parseDef(v)
	case "key":
		d.Key, err = parseDef(v)
	case "value":
		if d.Type == "literal" {
			d.Literal, err = decode[any](v, k.Value)
		} else {
			d.Value, err = parseDef(v)
		}
	case "values":
		d.Values, err = decode[[]string](v, k.Value)
	case "options":
		if v.Kind != yaml.SequenceNode {
			return errAt(v, "options must be a list")
		}
		for _, o := range v.Content {
			od, err := parseDef(o)
			if err != nil {
				return err
			}
			d.Options = append(d.Options, od)
		}
	case "discriminator":
		d.Discriminator, err = decode[string](v, k.Value)
	case "messages":
		if d.Messages, err = decode[map[string]string](v, k.Value); err == nil {
			for m := range d.Messages {
				if !messageKeys[m] {
					return errAt(v, "no check named %q takes a message", m)
				}
			}
		}
	case "refine":
		return d.setRefine(v)
	}
	return err
}

func decodePtr[T any](v *yaml.Node, what string) (*T, error) {
	x, err := decode[T](v, what)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

func (d *Definition) setBound(k, v *yaml.Node) error {
	if d.Type == "date" {
		raw, err := decode[any](v, k.Value)
		if err != nil {
			return err
		}
		t, ok := coerce.ToDate(raw)
		if !ok {
			return errAt(v, "%s: %q is not a date", k.Value, v.Value)
		}
		if k.Value == "min" {
			d.MinDate = &t
		} else {
			d.MaxDate = &t
		}
		return nil
	}
	f, err := decode[float64](v, k.Value)
	if err != nil {
		return err
	}
	if d.Type != "number" && (f < 0 || f != math.Trunc(f)) {
		return errAt(v, "%s must be a non-negative integer for %s", k.Value, d.Type)
	}
	if k.Value == "min" {
		d.Min = &f
	} else {
		d.Max = &f
	}
	return nil
}

func (d *Definition) setProperties(v *yaml.Node) error {
	if v.Kind != yaml.MappingNode {
		return errAt(v, "properties must be a mapping")
	}
	seen := map[string]bool{}
	for i := 0; i+1 < len(v.Content); i += 2 {
		k := v.Content[i]
		if seen[k.Value] {
			return errAt(k, "duplicate property %q", k.Value)
		}
		seen[k.Value] = true
		pd, err := parseDef(v.Content[i+1])
		if err != nil {
			return err
		}
		d.Properties = append(d.Properties, Property{Name: k.Value, Def: pd})
	}
	return nil
}

func (d *Definition) setRefine(v *yaml.Node) error {
	type rule struct {
		Expr    string `yaml:"expr"`
		Message string `yaml:"message"`
	}
	if v.Kind != yaml.SequenceNode {
		return errAt(v, "refine must be a list")
	}
	for _, item := range v.Content {
		var r rule
		if err := item.Decode(&r); err != nil {
			return errAt(item, "refine: %v", err)
		}
		if r.Expr == "" {
			return errAt(item, "refine: missing expr")
		}
		p, err := expr.Compile(r.Expr)
		if err != nil {
			return errAt(item, "%v", err)
		}
		d.Refine = append(d.Refine, Refinement{Expr: r.Expr, Message: r.Message, Program: p})
	}
	return nil
}
