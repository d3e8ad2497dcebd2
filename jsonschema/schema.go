// Package jsonschema holds the JSON Schema (draft 2020-12 subset) document
// model produced by Schema.JSONSchema.
package jsonschema

// Draft is the $schema URI emitted on root documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	SchemaURI   string `json:"$schema,omitempty"`
	Type        any    `json:"type,omitempty"` // string or []string (nullable)
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Const       any    `json:"const,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema `json:"items,omitempty"`
	MinItems    *int    `json:"minItems,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
}

// Ptr returns a pointer to v; convenient for the optional bound fields.
func Ptr[T any](v T) *T { return &v }

// Nullable returns a copy of s that also admits null. A single-typed schema
// gets a type list; anything else is wrapped in anyOf.
func Nullable(s *Schema) *Schema {
	if s == nil {
		return &Schema{Type: "null"}
	}
	if t, ok := s.Type.(string); ok && t != "" {
		cp := *s
		cp.Type = []string{t, "null"}
		return &cp
	}
	return &Schema{AnyOf: []*Schema{s, {Type: "null"}}}
}

// HasType reports whether s declares type t, alone or in a type list.
func (s *Schema) HasType(t string) bool {
	if s == nil {
		return false
	}
	switch v := s.Type.(type) {
	case string:
		return v == t
	case []string:
		for _, x := range v {
			if x == t {
				return true
			}
		}
	}
	return false
}
