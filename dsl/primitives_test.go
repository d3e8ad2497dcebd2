package dsl_test

import (
	"context"
	"math"
	"regexp"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func issuesOf(t *testing.T, s skema.Schema, v any) skema.Issues {
	t.Helper()
	r := skema.SafeParse(context.Background(), s, v)
	if r.Success {
		t.Fatalf("expected failure for %#v, got %#v", v, r.Data)
	}
	return r.Error
}

func mustParse(t *testing.T, s skema.Schema, v any) any {
	t.Helper()
	out, err := skema.Parse(context.Background(), s, v)
	if err != nil {
		t.Fatalf("unexpected err for %#v: %v", v, err)
	}
	return out
}

func TestString_TypeAndRequired(t *testing.T) {
	iss := issuesOf(t, g.String(), 42)
	assert.Equal(t, "Expected string, received number", iss[0].Message)
	assert.Equal(t, "string", iss[0].Params["expected"])

	iss = issuesOf(t, g.String(), skema.Undefined)
	assert.Equal(t, "Required", iss[0].Message)

	iss = issuesOf(t, g.String(), nil)
	assert.Equal(t, "Expected string, received null", iss[0].Message)
}

func TestString_LengthCountsRunes(t *testing.T) {
	s := g.String().Length(3)
	assert.Equal(t, "日本語", mustParse(t, s, "日本語"))
	iss := issuesOf(t, s, "ab")
	assert.Equal(t, "String must contain exactly 3 character(s)", iss[0].Message)
	assert.Equal(t, true, iss[0].Params["exact"])
	iss = issuesOf(t, s, "abcd")
	assert.Equal(t, skema.CodeTooLarge, iss[0].Code)
}

func TestString_Formats(t *testing.T) {
	tests := []struct {
		name string
		s    g.StringSchema
		ok   string
		bad  string
		msg  string
	}{
		{"email", g.String().Email(), "a.b@example.co.id", "a..b@example.com", "Invalid email"},
		{"url", g.String().URL(), "https://example.com/x?y=1", "example.com", "Invalid url"},
		{"uuid", g.String().UUID(), "123e4567-e89b-12d3-a456-426614174000", "123e4567e89b12d3a456426614174000", "Invalid uuid"},
		{"regex", g.String().Regex(regexp.MustCompile(`^[a-z]+$`)), "abc", "ABC", "Invalid"},
		{"startsWith", g.String().StartsWith("sk_"), "sk_live", "pk_live", `Invalid input: must start with "sk_"`},
		{"endsWith", g.String().EndsWith(".go"), "main.go", "main.rs", `Invalid input: must end with ".go"`},
		{"includes", g.String().Includes("@"), "a@b", "ab", `Invalid input: must include "@"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, mustParse(t, tt.s, tt.ok))
			iss := issuesOf(t, tt.s, tt.bad)
			require.Len(t, iss, 1)
			assert.Equal(t, skema.CodeInvalidString, iss[0].Code)
			assert.Equal(t, tt.name, iss[0].Params["validation"])
			assert.Equal(t, tt.msg, iss[0].Message)
		})
	}
}

func TestString_NormalizersApplyInOrder(t *testing.T) {
	// Trim runs before Min, so padded input still fails
	s := g.String().Trim().Min(3).ToUpperCase()
	assert.Equal(t, "ABC", mustParse(t, s, "  abc  "))
	iss := issuesOf(t, s, "  a  ")
	assert.Equal(t, skema.CodeTooSmall, iss[0].Code)

	assert.Equal(t, "STRASSE", mustParse(t, g.String().ToUpperCase(), "straße"))
	assert.Equal(t, "abc", mustParse(t, g.String().ToLowerCase(), "ABC"))
}

func TestString_BuildersAreImmutable(t *testing.T) {
	base := g.String().Min(2)
	a := base.Max(3)
	b := base.Email()
	assert.Equal(t, "abcd@x.io", mustParse(t, b.Min(1), "abcd@x.io"))
	assert.Equal(t, "abcd", mustParse(t, base, "abcd"))
	_ = issuesOf(t, a, "abcd")
}

func TestNumber_Bounds(t *testing.T) {
	tests := []struct {
		name string
		s    g.NumberSchema
		v    any
		code string
		msg  string
	}{
		{"min", g.Number().Min(5), 4, skema.CodeTooSmall, "Number must be greater than or equal to 5"},
		{"gt", g.Number().Gt(5), 5, skema.CodeTooSmall, "Number must be greater than 5"},
		{"max", g.Number().Max(1.5), 2, skema.CodeTooLarge, "Number must be less than or equal to 1.5"},
		{"lt", g.Number().Lt(0), 0, skema.CodeTooLarge, "Number must be less than 0"},
		{"positive", g.Number().Positive(), 0, skema.CodeTooSmall, "Number must be greater than 0"},
		{"nonpositive", g.Number().NonPositive(), 0.1, skema.CodeTooLarge, "Number must be less than or equal to 0"},
		{"multipleOf", g.Number().MultipleOf(5), 12, skema.CodeNotMultipleOf, "Number must be a multiple of 5"},
		{"int", g.Number().Int(), 1.5, skema.CodeInvalidType, "Expected integer, received float"},
		{"finite", g.Number().Finite(), math.Inf(1), skema.CodeNotFinite, "Number must be finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iss := issuesOf(t, tt.s, tt.v)
			require.Len(t, iss, 1)
			assert.Equal(t, tt.code, iss[0].Code)
			assert.Equal(t, tt.msg, iss[0].Message)
		})
	}
}

func TestNumber_Inputs(t *testing.T) {
	assert.Equal(t, 3.0, mustParse(t, g.Number(), int8(3)))
	assert.Equal(t, 3.0, mustParse(t, g.Number(), uint64(3)))
	assert.Equal(t, 0.25, mustParse(t, g.Number(), json.Number("0.25")))
	assert.Equal(t, 0.3, mustParse(t, g.Number().MultipleOf(0.1), 0.3))

	iss := issuesOf(t, g.Number(), math.NaN())
	assert.Equal(t, "Expected number, received nan", iss[0].Message)
	iss = issuesOf(t, g.Number(), "12")
	assert.Equal(t, skema.CodeInvalidType, iss[0].Code)
}

func TestNumber_Coercion(t *testing.T) {
	n := g.Coerce.Number()
	assert.Equal(t, 12.5, mustParse(t, n, " 12.5 "))
	assert.Equal(t, 1.0, mustParse(t, n, true))
	for _, bad := range []any{"", "abc", nil, "0x1p4", "inf", "1_000"} {
		iss := issuesOf(t, n, bad)
		assert.Equal(t, skema.CodeInvalidType, iss[0].Code, "%#v", bad)
	}
}

func TestBool_Coercion(t *testing.T) {
	assert.Equal(t, false, mustParse(t, g.Coerce.Bool(), "false"))
	iss := issuesOf(t, g.Coerce.Bool(), "yes")
	assert.Equal(t, "Expected boolean, received string", iss[0].Message)
	_ = issuesOf(t, g.Bool(), "true")
}

func TestDate_Inputs(t *testing.T) {
	when := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, when, mustParse(t, g.Date(), &when))
	iss := issuesOf(t, g.Date(), "2021-03-04")
	assert.Equal(t, "Expected date, received string", iss[0].Message)

	got := mustParse(t, g.Coerce.Date(), "2021-03-04T05:06:07Z").(time.Time)
	assert.True(t, when.Equal(got))
	got = mustParse(t, g.Coerce.Date(), when.UnixMilli()).(time.Time)
	assert.True(t, when.Equal(got))
	_ = issuesOf(t, g.Coerce.Date(), "not a date")
	iss = issuesOf(t, g.Coerce.Date(), 1e300)
	assert.Equal(t, skema.CodeInvalidType, iss[0].Code)

	iss = issuesOf(t, g.Date().Max(when), when.Add(time.Second))
	assert.Equal(t, skema.CodeTooLarge, iss[0].Code)
}

func TestEnum(t *testing.T) {
	role := g.Enum("admin", "member", "guest")
	assert.Equal(t, "member", mustParse(t, role, "member"))

	iss := issuesOf(t, role, "root")
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeInvalidEnumValue, iss[0].Code)
	assert.Equal(t, "Invalid enum value. Expected 'admin' | 'member' | 'guest', received 'root'", iss[0].Message)

	iss = issuesOf(t, role, 1)
	assert.Equal(t, skema.CodeInvalidType, iss[0].Code)

	assert.Equal(t, []string{"admin", "guest"}, role.Exclude("member").Options())
	assert.Equal(t, []string{"guest"}, role.Extract("guest", "nobody").Options())
	assert.Panics(t, func() { g.Enum() })
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, "v1", mustParse(t, g.Literal("v1"), "v1"))
	assert.Equal(t, 1, mustParse(t, g.Literal(1), float64(1)))
	assert.Equal(t, 1, mustParse(t, g.Literal(1), json.Number("1")))
	assert.Equal(t, true, mustParse(t, g.Literal(true), true))

	iss := issuesOf(t, g.Literal("v1"), "v2")
	assert.Equal(t, skema.CodeInvalidLiteral, iss[0].Code)
	assert.Equal(t, `Invalid literal value, expected "v1"`, iss[0].Message)
	_ = issuesOf(t, g.Literal(1), "1")
}

func TestAny_AcceptsMissing(t *testing.T) {
	assert.Equal(t, skema.Undefined, mustParse(t, g.Any(), skema.Undefined))
	assert.Nil(t, mustParse(t, g.Any(), nil))
}
