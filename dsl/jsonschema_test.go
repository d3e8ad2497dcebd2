package dsl_test

import (
	"regexp"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func exportJSON(t *testing.T, s skema.Schema) string {
	t.Helper()
	doc, err := s.JSONSchema()
	require.NoError(t, err)
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(b)
}

func TestJSONSchema_Object(t *testing.T) {
	s := g.Object(
		g.Field("name", g.String().Min(1).Max(50).Describe("display name")),
		g.Field("email", g.String().Email().Optional()),
		g.Field("age", g.Number().Int().Min(0)),
		g.Field("role", g.Enum("admin", "member").Default("member")),
		g.Field("nick", g.String().Nullable()),
	).Strict()

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"name":  {"type": "string", "minLength": 1, "maxLength": 50, "description": "display name"},
			"email": {"type": "string", "format": "email"},
			"age":   {"type": "integer", "minimum": 0},
			"role":  {"type": "string", "enum": ["admin", "member"], "default": "member"},
			"nick":  {"type": ["string", "null"]}
		},
		"required": ["name", "age", "nick"],
		"additionalProperties": false
	}`, exportJSON(t, s))
}

func TestJSONSchema_Collections(t *testing.T) {
	assert.JSONEq(t, `{"type":"array","items":{"type":"string","pattern":"^a+$"},"minItems":1}`,
		exportJSON(t, g.Array(g.String().Regex(regexp.MustCompile(`^a+$`))).NonEmpty()))
	assert.JSONEq(t, `{"type":"array","items":{"type":"number","exclusiveMinimum":0},"uniqueItems":true,"maxItems":3}`,
		exportJSON(t, g.Set(g.Number().Positive()).Max(3)))
	assert.JSONEq(t, `{"type":"object","additionalProperties":{"type":"boolean"}}`,
		exportJSON(t, g.Map(g.String(), g.Bool())))
	assert.JSONEq(t, `{"type":"array","items":{"type":"object","properties":{"key":{"type":"number"},"value":{"type":"boolean"}},"required":["key","value"]}}`,
		exportJSON(t, g.Map(g.Number(), g.Bool())))
	assert.JSONEq(t, `{"type":"string","format":"date-time"}`, exportJSON(t, g.Date()))
}

func TestJSONSchema_Unions(t *testing.T) {
	assert.JSONEq(t, `{"anyOf":[{"type":"string"},{"const":1}]}`,
		exportJSON(t, g.Union(g.String(), g.Literal(1))))
	doc, err := shapes().JSONSchema()
	require.NoError(t, err)
	assert.Len(t, doc.AnyOf, 2)
	assert.JSONEq(t, `{"type":["object","null"],"properties":{"a":{"type":"string"}},"required":["a"]}`,
		exportJSON(t, g.Object(g.Field("a", g.String())).Nullable()))
	assert.JSONEq(t, `{"anyOf":[{"anyOf":[{"type":"string"},{"type":"number"}]},{"type":"null"}]}`,
		exportJSON(t, g.Union(g.String(), g.Number()).Nullable()))
}
