// Package schemafile loads declarative schema definitions written in YAML
// (or JSON) and builds dsl schemas from them.
//
//	type: object
//	unknown: strict
//	properties:
//	  username: {type: string, format: email, messages: {format: username harus email}}
//	  password: {type: string, min: 6, max: 20}
//	  lastName: {type: string, min: 3, optional: true}
//	refine:
//	  - expr: value.username != value.password
//	    message: password must differ from username
//
// Properties keep document order, so issues are reported in the order the
// fields are written. A bare scalar such as `tags: {type: array, items: string}`
// is shorthand for a definition with only a type.
package schemafile

import (
	"regexp"
	"time"

	"github.com/reoring/skema/expr"
)

// Definition is one node of a schema document.
type Definition struct {
	Type        string
	Description string
	Coerce      bool
	Optional    bool
	Nullable    bool
	Default     any
	HasDefault  bool

	// bounds: characters for strings, elements for arrays and sets
	Min, Max, Gt, Lt *float64
	Length           *int
	MinDate, MaxDate *time.Time
	Int              bool
	MultipleOf       *float64

	Format     string
	Pattern    *regexp.Regexp
	StartsWith string
	EndsWith   string
	Includes   string
	Normalize  []string

	Properties []Property
	Unknown    string

	Items *Definition
	Key   *Definition
	Value *Definition

	Values        []string
	Literal       any
	Options       []*Definition
	Discriminator string

	// Messages maps a check keyword (min, format, ...) to a custom message.
	Messages map[string]string
	Refine   []Refinement

	Line int
}

// Property is a named object member.
type Property struct {
	Name string
	Def  *Definition
}

// Refinement is a CEL expression that must hold for the value.
type Refinement struct {
	Expr    string
	Message string
	Program *expr.Program
}

func (d *Definition) message(check string) []string {
	if m, ok := d.Messages[check]; ok {
		return []string{m}
	}
	return nil
}

func set(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

var (
	commonKeywords = set("type", "description", "optional", "nullable", "default", "messages", "refine")

	typeKeywords = map[string]map[string]bool{
		"string":  set("coerce", "min", "max", "length", "format", "pattern", "startsWith", "endsWith", "includes", "normalize"),
		"number":  set("coerce", "min", "max", "gt", "lt", "int", "multipleOf"),
		"boolean": set("coerce"),
		"date":    set("coerce", "min", "max"),
		"object":  set("properties", "unknown"),
		"array":   set("items", "min", "max", "length"),
		"set":     set("items", "min", "max", "length"),
		"map":     set("key", "value"),
		"record":  set("key", "value"),
		"enum":    set("values"),
		"literal": set("value"),
		"any":     set(),
		"union":   set("options", "discriminator"),
	}

	messageKeys = set("min", "max", "length", "gt", "lt", "int", "multipleOf", "format",
		"pattern", "startsWith", "endsWith", "includes")
	formats    = set("email", "url", "uuid")
	normalizer = set("trim", "upper", "lower")
	unknowns   = set("strip", "strict", "passthrough")
)
