package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func userSchema() g.ObjectSchema {
	return g.Object(
		g.Field("name", g.String().Min(1)),
		g.Field("age", g.Number().Int().Min(0)),
		g.Field("email", g.String().Email().Optional()),
	)
}

func TestObject_UnknownKeyPolicies(t *testing.T) {
	in := map[string]any{"name": "Reo", "age": 30, "extra": "x"}

	out := mustParse(t, userSchema(), in)
	assert.Equal(t, map[string]any{"name": "Reo", "age": 30.0}, out)

	out = mustParse(t, userSchema().Passthrough(), in)
	assert.Equal(t, "x", out.(map[string]any)["extra"])

	iss := issuesOf(t, userSchema().Strict(), in)
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeUnrecognizedKeys, iss[0].Code)
	assert.Equal(t, "Unrecognized key(s) in object: 'extra'", iss[0].Message)
	assert.Empty(t, iss[0].Path)

	// back to the default
	mustParse(t, userSchema().Strict().Strip(), in)
}

func TestObject_InputForms(t *testing.T) {
	type user struct {
		Name  string `json:"name"`
		Age   int    `json:"age"`
		Email string `json:"email,omitempty"`
	}
	out := mustParse(t, userSchema(), user{Name: "Reo", Age: 3})
	assert.Equal(t, map[string]any{"name": "Reo", "age": 3.0}, out)
	out = mustParse(t, userSchema(), &user{Name: "Reo", Age: 3, Email: "r@x.io"})
	assert.Equal(t, "r@x.io", out.(map[string]any)["email"])

	out = mustParse(t, g.Object(g.Field("name", g.String())), map[string]string{"name": "Reo", "x": "y"})
	assert.Equal(t, map[string]any{"name": "Reo"}, out)
	t.Run("wrong types", func(t *testing.T) {
		for _, v := range []any{nil, "x", []any{}, skema.NewSet(), 3} {
			iss := issuesOf(t, userSchema(), v)
			assert.Equal(t, skema.CodeInvalidType, iss[0].Code, "%#v", v)
			assert.Equal(t, "object", iss[0].Params["expected"])
		}
	})
}

func TestObject_MissingRequiredFields(t *testing.T) {
	iss := issuesOf(t, userSchema(), map[string]any{})
	require.Len(t, iss, 2)
	assert.Equal(t, "/name", iss[0].Path.Pointer())
	assert.Equal(t, "Required", iss[0].Message)
	assert.Equal(t, "/age", iss[1].Path.Pointer())
}

func TestObject_ShapeHelpers(t *testing.T) {
	base := userSchema()

	ext := base.Extend(g.Field("age", g.String()), g.Field("role", g.Enum("a", "b")))
	names := func(o g.ObjectSchema) []string {
		var out []string
		for _, f := range o.Shape() {
			out = append(out, f.Name)
		}
		return out
	}
	assert.Equal(t, []string{"name", "age", "email", "role"}, names(ext))
	assert.Equal(t, skema.KindString, ext.Shape()[1].Schema.Kind())
	assert.Equal(t, []string{"name", "age", "email"}, names(base), "base is unchanged")

	assert.Equal(t, []string{"name", "email"}, names(base.Pick("email", "name")))
	assert.Equal(t, []string{"age", "email"}, names(base.Omit("name")))

	merged := base.Merge(g.Object(g.Field("tag", g.String())).Strict())
	_ = issuesOf(t, merged, map[string]any{"name": "a", "age": 1, "tag": "t", "zzz": 1})

	partial := base.Partial()
	assert.Equal(t, map[string]any{}, mustParse(t, partial, map[string]any{}))
	for _, f := range partial.Shape() {
		assert.True(t, g.IsOptional(f.Schema), f.Name)
	}
	req := partial.Required()
	iss := issuesOf(t, req, map[string]any{})
	assert.Len(t, iss, 3)
}

func TestObject_DefaultsAndOptional(t *testing.T) {
	s := g.Object(
		g.Field("active", g.Bool().Default(true)),
		g.Field("nick", g.String().Optional()),
		g.Field("bio", g.String().Nullable()),
	)
	out := mustParse(t, s, map[string]any{"bio": nil})
	assert.Equal(t, map[string]any{"active": true, "bio": nil}, out)

	iss := issuesOf(t, s, map[string]any{})
	require.Len(t, iss, 1)
	assert.Equal(t, "/bio", iss[0].Path.Pointer())
}

func TestObject_NestedPaths(t *testing.T) {
	s := g.Object(g.Field("items", g.Array(g.Object(g.Field("sku", g.String().Min(3))))))
	iss := issuesOf(t, s, map[string]any{"items": []any{
		map[string]any{"sku": "abc"},
		map[string]any{"sku": "x"},
	}})
	require.Len(t, iss, 1)
	assert.Equal(t, "/items/1/sku", iss[0].Path.Pointer())
	assert.Equal(t, "items[1].sku", iss[0].Path.String())
}

func TestObject_OrderedMapInputKeepsOrderForUnknownKeys(t *testing.T) {
	in := skema.NewOrderedMap(
		skema.Entry{Key: "zeta", Value: 1},
		skema.Entry{Key: "name", Value: "Reo"},
		skema.Entry{Key: "age", Value: 1},
		skema.Entry{Key: "alpha", Value: 1},
	)
	iss := issuesOf(t, userSchema().Strict(), in)
	assert.Equal(t, []string{"zeta", "alpha"}, iss[0].Params["keys"])
}
