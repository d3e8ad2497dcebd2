package source_test

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
	"github.com/reoring/skema/source"
)

func TestJSON_DecodesTree(t *testing.T) {
	v, err := source.JSON([]byte(`{"name":"Otong","tags":["a","b"],"price":20000.50,"admin":true,"nick":null}`)).Decode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":  "Otong",
		"tags":  []any{"a", "b"},
		"price": json.Number("20000.50"),
		"admin": true,
		"nick":  nil,
	}, v)
}

func TestJSON_NumbersDoNotAliasInput(t *testing.T) {
	data := []byte(`[12345678901234567890, 1.5]`)
	v, err := source.JSON(data).Decode()
	require.NoError(t, err)
	for i := range data {
		data[i] = ' '
	}
	assert.Equal(t, []any{json.Number("12345678901234567890"), json.Number("1.5")}, v)
}

func TestJSON_SyntaxErrors(t *testing.T) {
	for _, in := range []string{``, `   `, `{"a":1,}`, `{"a" 1}`, `[1 2]`, `{"a":1} {"b":2}`, `nul`} {
		_, err := source.JSON([]byte(in)).Decode()
		iss, ok := skema.AsIssues(err)
		require.True(t, ok, "input %q", in)
		require.Len(t, iss, 1)
		assert.Equal(t, skema.CodeParseError, iss[0].Code, "input %q", in)
		assert.NotEmpty(t, iss[0].Message)
	}
}

func TestJSON_DuplicateKeys(t *testing.T) {
	in := []byte(`{"a":1,"b":{"x":1,"x":2},"a":3}`)

	v, err := source.JSON(in).Decode()
	require.NoError(t, err)
	assert.Equal(t, json.Number("3"), v.(map[string]any)["a"])

	_, err = source.JSON(in, source.RejectDuplicateKeys()).Decode()
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	assert.Equal(t, skema.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/b/x", iss[0].Path.Pointer())
	assert.Equal(t, `Duplicate key "x"`, iss[0].Message)
	assert.Equal(t, "/a", iss[1].Path.Pointer())
}

func TestJSON_MaxDepth(t *testing.T) {
	_, err := source.JSON([]byte(`{"a":[1]}`), source.MaxDepth(2)).Decode()
	require.NoError(t, err)

	_, err = source.JSON([]byte(`{"a":[[1]]}`), source.MaxDepth(2)).Decode()
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, skema.CodeParseError, iss[0].Code)
	assert.Equal(t, "/a/0", iss[0].Path.Pointer())
}

func TestJSONReader_WithParseFrom(t *testing.T) {
	ctx := context.Background()
	s := g.Object(
		g.Field("username", g.String().Email()),
		g.Field("price", g.Number().Min(1000)),
	)
	out, err := skema.ParseFrom(ctx, s, source.JSONReader(strings.NewReader(`{"username":"otong@gmail.com","price":20000}`)))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"username": "otong@gmail.com", "price": 20000.0}, out)

	_, err = skema.ParseFrom(ctx, s, source.JSONReader(strings.NewReader(`{"username":`)))
	iss, _ := skema.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeParseError, iss[0].Code)
}
