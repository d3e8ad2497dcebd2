package dsl

import (
	"strings"

	"github.com/reoring/skema"
)

// ToUpper returns a transform that upper-cases strings using Unicode
// special casing (ß becomes SS). Other values pass through.
func ToUpper() TransformFunc {
	return func(v any, _ *skema.Ctx) any {
		if s, ok := v.(string); ok {
			return upper(s)
		}
		return v
	}
}

// ToLower returns a transform that lower-cases strings.
func ToLower() TransformFunc {
	return func(v any, _ *skema.Ctx) any {
		if s, ok := v.(string); ok {
			return lower(s)
		}
		return v
	}
}

// TrimSpace returns a transform that strips surrounding white space.
func TrimSpace() TransformFunc {
	return func(v any, _ *skema.Ctx) any {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	}
}

// Chain composes transforms left to right, stopping at the first Never.
func Chain(fns ...TransformFunc) TransformFunc {
	return func(v any, c *skema.Ctx) any {
		for _, fn := range fns {
			v = fn(v, c)
			if skema.IsNever(v) {
				return v
			}
		}
		return v
	}
}

// MustUpperCase returns a transform that keeps strings already in upper
// case and otherwise reports a custom issue with msg and yields Never.
func MustUpperCase(msg string) TransformFunc {
	return func(v any, c *skema.Ctx) any {
		s, ok := v.(string)
		if !ok || s != upper(s) {
			c.AddIssue(skema.Issue{Code: skema.CodeCustom, Message: msg})
			return skema.Never
		}
		return s
	}
}
