package dsl

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/coerce"
	"github.com/reoring/skema/internal/format"
	js "github.com/reoring/skema/jsonschema"
)

// StringSchema validates strings. Lengths count runes. Every check accepts
// an optional custom message that replaces the catalog text.
type StringSchema struct {
	coerce bool
	steps  []step[string]
	desc   string
}

// String returns a string schema.
func String() StringSchema { return StringSchema{} }

func (s StringSchema) with(st step[string]) StringSchema {
	s.steps = appendStep(s.steps, st)
	return s
}

func (s StringSchema) Kind() skema.Kind { return skema.KindString }

// Describe sets the description exported to JSON Schema.
func (s StringSchema) Describe(text string) StringSchema { s.desc = text; return s }

func lengthParams(bound string, n int, typ string, exact bool) map[string]any {
	return map[string]any{bound: n, "type": typ, "inclusive": true, "exact": exact}
}

// Min requires at least n characters.
func (s StringSchema) Min(n int, msg ...string) StringSchema {
	m := first(msg)
	return s.with(step[string]{
		check: func(c *skema.Ctx, v string) {
			if utf8.RuneCountInString(v) < n {
				report(c, skema.CodeTooSmall, "too_small.string", lengthParams("minimum", n, "string", false), m)
			}
		},
		js: func(o *js.Schema) { o.MinLength = js.Ptr(n) },
	})
}

// Max allows at most n characters.
func (s StringSchema) Max(n int, msg ...string) StringSchema {
	m := first(msg)
	return s.with(step[string]{
		check: func(c *skema.Ctx, v string) {
			if utf8.RuneCountInString(v) > n {
				report(c, skema.CodeTooLarge, "too_large.string", lengthParams("maximum", n, "string", false), m)
			}
		},
		js: func(o *js.Schema) { o.MaxLength = js.Ptr(n) },
	})
}

// Length requires exactly n characters.
func (s StringSchema) Length(n int, msg ...string) StringSchema {
	m := first(msg)
	return s.with(step[string]{
		check: func(c *skema.Ctx, v string) {
			switch l := utf8.RuneCountInString(v); {
			case l < n:
				report(c, skema.CodeTooSmall, "too_small.string.exact", lengthParams("minimum", n, "string", true), m)
			case l > n:
				report(c, skema.CodeTooLarge, "too_large.string.exact", lengthParams("maximum", n, "string", true), m)
			}
		},
		js: func(o *js.Schema) { o.MinLength, o.MaxLength = js.Ptr(n), js.Ptr(n) },
	})
}

// NonEmpty is Min(1).
func (s StringSchema) NonEmpty(msg ...string) StringSchema { return s.Min(1, msg...) }

func (s StringSchema) format(validation string, ok func(string) bool, jsFormat string, m string) StringSchema {
	return s.with(step[string]{
		check: func(c *skema.Ctx, v string) {
			if !ok(v) {
				report(c, skema.CodeInvalidString, "invalid_string."+validation, map[string]any{"validation": validation}, m)
			}
		},
		js: func(o *js.Schema) { o.Format = jsFormat },
	})
}

// Email requires an email address.
func (s StringSchema) Email(msg ...string) StringSchema {
	return s.format("email", format.Email, "email", first(msg))
}

// URL requires an absolute URL.
func (s StringSchema) URL(msg ...string) StringSchema {
	return s.format("url", format.URL, "uri", first(msg))
}

// UUID requires a hyphenated UUID.
func (s StringSchema) UUID(msg ...string) StringSchema {
	return s.format("uuid", format.UUID, "uuid", first(msg))
}

// Regex requires a match of re.
func (s StringSchema) Regex(re *regexp.Regexp, msg ...string) StringSchema {
	if re == nil {
		panic("dsl: nil regexp")
	}
	m := first(msg)
	return s.with(step[string]{
		check: func(c *skema.Ctx, v string) {
			if !re.MatchString(v) {
				report(c, skema.CodeInvalidString, "invalid_string.regex", map[string]any{"validation": "regex", "pattern": re.String()}, m)
			}
		},
		js: func(o *js.Schema) { o.Pattern = re.String() },
	})
}

func (s StringSchema) affix(validation, arg string, ok func(string, string) bool, pattern string, m string) StringSchema {
	return s.with(step[string]{
		check: func(c *skema.Ctx, v string) {
			if !ok(v, arg) {
				report(c, skema.CodeInvalidString, "invalid_string."+validation, map[string]any{"validation": validation, validation: arg}, m)
			}
		},
		js: func(o *js.Schema) {
			if o.Pattern == "" {
				o.Pattern = pattern
			}
		},
	})
}

// StartsWith requires the prefix p.
func (s StringSchema) StartsWith(p string, msg ...string) StringSchema {
	return s.affix("startsWith", p, strings.HasPrefix, "^"+regexp.QuoteMeta(p), first(msg))
}

// EndsWith requires the suffix p.
func (s StringSchema) EndsWith(p string, msg ...string) StringSchema {
	return s.affix("endsWith", p, strings.HasSuffix, regexp.QuoteMeta(p)+"$", first(msg))
}

// Includes requires the substring p.
func (s StringSchema) Includes(p string, msg ...string) StringSchema {
	return s.affix("includes", p, strings.Contains, regexp.QuoteMeta(p), first(msg))
}

// Trim strips surrounding white space before the checks that follow it.
func (s StringSchema) Trim() StringSchema {
	return s.with(step[string]{norm: strings.TrimSpace})
}

// ToUpperCase upper-cases the value before the checks that follow it.
func (s StringSchema) ToUpperCase() StringSchema {
	return s.with(step[string]{norm: upper})
}

// ToLowerCase lower-cases the value before the checks that follow it.
func (s StringSchema) ToLowerCase() StringSchema {
	return s.with(step[string]{norm: lower})
}

// cases.Caser keeps state between calls, so each use gets a fresh one.
func upper(v string) string { return cases.Upper(language.Und).String(v) }
func lower(v string) string { return cases.Lower(language.Und).String(v) }

func (s StringSchema) Evaluate(c *skema.Ctx, v any) any {
	str, ok := v.(string)
	if !ok && s.coerce && !skema.IsUndefined(v) {
		str, ok = coerce.ToString(v)
	}
	if !ok {
		invalidType(c, "string", v)
		return skema.Never
	}
	before := c.IssueCount()
	str = runSteps(c, s.steps, str)
	if c.IssueCount() > before {
		return skema.Never
	}
	return str
}

func (s StringSchema) JSONSchema() (*js.Schema, error) {
	return applySteps(&js.Schema{Type: "string", Description: s.desc}, s.steps), nil
}

func (s StringSchema) Optional() Wrapper { return Optional(s) }
func (s StringSchema) Nullable() Wrapper { return Nullable(s) }
func (s StringSchema) Default(v any) Wrapper { return Default(s, v) }
func (s StringSchema) Transform(fn TransformFunc) Wrapper { return Transform(s, fn) }
func (s StringSchema) SuperRefine(fn func(any, *skema.Ctx)) Wrapper { return SuperRefine(s, fn) }
func (s StringSchema) Refine(pred func(any) bool, msg ...string) Wrapper {
	return Refine(s, pred, msg...)
}
