package dsl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
	"github.com/reoring/skema/i18n"
)

// Walks through the classic tutorial flow: primitives, coercion, dates,
// objects, collections, custom messages, optional fields and transforms.

func TestTutorial_StringMinMax(t *testing.T) {
	out, err := skema.Parse(context.Background(), g.String().Min(3).Max(100), "Otong")
	require.NoError(t, err)
	assert.Equal(t, "Otong", out)
}

func TestTutorial_Primitives(t *testing.T) {
	ctx := context.Background()
	_, err := skema.Parse(ctx, g.String().Email(), "otong@gmail.com")
	require.NoError(t, err)

	out, err := skema.Parse(ctx, g.Bool(), true)
	require.NoError(t, err)
	assert.Equal(t, true, out)

	out, err = skema.Parse(ctx, g.Number().Min(1000).Max(1000000), 20000)
	require.NoError(t, err)
	assert.Equal(t, float64(20000), out)
}

func TestTutorial_Coercion(t *testing.T) {
	ctx := context.Background()
	out, err := skema.Parse(ctx, g.Coerce.String().Min(3).Max(100), 123456)
	require.NoError(t, err)
	assert.Equal(t, "123456", out)

	out, err = skema.Parse(ctx, g.Coerce.Bool(), "true")
	require.NoError(t, err)
	assert.Equal(t, true, out)

	out, err = skema.Parse(ctx, g.Coerce.Number().Min(1000).Max(1000000), "20000")
	require.NoError(t, err)
	assert.Equal(t, float64(20000), out)
}

func TestTutorial_DateRange(t *testing.T) {
	ctx := context.Background()
	birth := g.Coerce.Date().
		Min(time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)).
		Max(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	want := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	out, err := skema.Parse(ctx, birth, "1990-01-01")
	require.NoError(t, err)
	assert.True(t, want.Equal(out.(time.Time)))

	out, err = skema.Parse(ctx, birth, want)
	require.NoError(t, err)
	assert.True(t, want.Equal(out.(time.Time)))

	r := skema.SafeParse(ctx, birth, "1979-12-31")
	require.False(t, r.Success)
	assert.Equal(t, skema.CodeTooSmall, r.Error[0].Code)
	assert.Equal(t, "Date must be greater than or equal to 1980-01-01", r.Error[0].Message)
}

func TestTutorial_ErrorsAreCollected(t *testing.T) {
	ctx := context.Background()
	s := g.String().Email().Min(3).Max(100)

	_, err := skema.Parse(ctx, s, "ot")
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	assert.Equal(t, skema.CodeInvalidString, iss[0].Code)
	assert.Equal(t, "email", iss[0].Params["validation"])
	assert.Equal(t, skema.CodeTooSmall, iss[1].Code)
	assert.Equal(t, 3, iss[1].Params["minimum"])

	r := skema.SafeParse(ctx, s, "otong@gmail.com")
	assert.True(t, r.Success)
	assert.Equal(t, "otong@gmail.com", r.Data)
}

func TestTutorial_ObjectStripsUnknown(t *testing.T) {
	login := g.Object(
		g.Field("username", g.String().Email()),
		g.Field("password", g.String().Min(6).Max(20)),
	)
	out, err := skema.Parse(context.Background(), login, map[string]any{
		"username": "otong@gmail.com",
		"password": "rahasia",
		"ignore":   "ignore",
		"name":     "Otong Surotong",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"username": "otong@gmail.com", "password": "rahasia"}, out)
}

func TestTutorial_NestedObject(t *testing.T) {
	createUser := g.Object(
		g.Field("id", g.String().Max(100)),
		g.Field("name", g.String().Max(100)),
		g.Field("address", g.Object(
			g.Field("street", g.String().Max(100)),
			g.Field("city", g.String().Max(100)),
			g.Field("zip", g.String().Max(10)),
			g.Field("country", g.String().Max(100)),
		)),
	)
	in := map[string]any{
		"id":   "1",
		"name": "Otong",
		"address": map[string]any{
			"street":  "Jalan Lubang",
			"city":    "Otong City",
			"zip":     "1234",
			"country": "Otong Country",
		},
	}
	out, err := skema.Parse(context.Background(), createUser, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	in["address"].(map[string]any)["zip"] = "12345678901"
	_, err = skema.Parse(context.Background(), createUser, in)
	iss, _ := skema.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/address/zip", iss[0].Path.Pointer())
	assert.Equal(t, "String must contain at most 10 character(s)", iss[0].Message)
}

func TestTutorial_Collections(t *testing.T) {
	ctx := context.Background()

	arr, err := skema.Parse(ctx, g.Array(g.String().Email()).Min(1).Max(10), []string{"otong@gmail.com", "ucup@gmail.com"})
	require.NoError(t, err)
	assert.Equal(t, []any{"otong@gmail.com", "ucup@gmail.com"}, arr)

	set, err := skema.Parse(ctx, g.Set(g.String().Email()).Min(1).Max(10),
		skema.NewSet("otong@gmail.com", "ucup@gmail.com", "otong@gmail.com"))
	require.NoError(t, err)
	assert.Equal(t, 2, set.(*skema.Set).Len())

	m, err := skema.Parse(ctx, g.Map(g.String(), g.String().Email()), skema.NewOrderedMap(
		skema.Entry{Key: "otong", Value: "otong@gmail.com"},
		skema.Entry{Key: "ucup", Value: "ucup@gmail.com"},
	))
	require.NoError(t, err)
	assert.Equal(t, []any{"otong", "ucup"}, m.(*skema.OrderedMap).Keys())
}

func TestTutorial_CustomMessages(t *testing.T) {
	login := g.Object(
		g.Field("username", g.String().Email("username harus email")),
		g.Field("password", g.String().Min(6, "password min harus 6 karakter").Max(20, "password max harus 20 karakter")),
	)
	_, err := skema.Parse(context.Background(), login, map[string]any{"username": "otong", "password": "123"})
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	assert.Equal(t, "username harus email", iss[0].Message)
	assert.Equal(t, "username", iss[0].Path.String())
	assert.Equal(t, "password min harus 6 karakter", iss[1].Message)
	assert.Equal(t, "password", iss[1].Path.String())
}

func TestTutorial_OptionalField(t *testing.T) {
	register := g.Object(
		g.Field("username", g.String().Email()),
		g.Field("password", g.String().Min(6).Max(20)),
		g.Field("firstName", g.String().Min(3).Max(100)),
		g.Field("lastName", g.String().Min(3).Max(100).Optional()),
	)
	out, err := skema.Parse(context.Background(), register, map[string]any{
		"username":  "eko@gmail.com",
		"password":  "rahasia",
		"firstName": "Otong",
	})
	require.NoError(t, err)
	_, has := out.(map[string]any)["lastName"]
	assert.False(t, has, "absent optional field must stay absent")
}

func TestTutorial_Transform(t *testing.T) {
	s := g.String().Transform(g.Chain(g.ToUpper(), g.TrimSpace()))
	out, err := skema.Parse(context.Background(), s, "     otong      ")
	require.NoError(t, err)
	assert.Equal(t, "OTONG", out)
}

func TestTutorial_CustomValidationInTransform(t *testing.T) {
	ctx := context.Background()
	login := g.Object(
		g.Field("username", g.String().Email().Transform(g.MustUpperCase("username harus uppercase"))),
		g.Field("password", g.String().Min(6).Max(100)),
	)

	out, err := skema.Parse(ctx, login, map[string]any{"username": "OTONG@GMAIL.COM", "password": "rahasia"})
	require.NoError(t, err)
	assert.Equal(t, "OTONG@GMAIL.COM", out.(map[string]any)["username"])

	_, err = skema.Parse(ctx, login, map[string]any{"username": "Otong@Gmail.com", "password": "rahasia"})
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeCustom, iss[0].Code)
	assert.Equal(t, "username harus uppercase", iss[0].Message)
	assert.Equal(t, "username", iss[0].Path.String())

	// a transform ahead of the check makes lower-case input acceptable
	upperFirst := g.String().Email().Transform(g.ToUpper()).Transform(g.MustUpperCase("username harus uppercase"))
	out, err = skema.Parse(ctx, upperFirst, "otong@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "OTONG@GMAIL.COM", out)
}

func TestTutorial_IndonesianMessages(t *testing.T) {
	i18n.SetLanguage("id")
	defer i18n.SetLanguage("en")

	s := g.Object(
		g.Field("username", g.String().Email()),
		g.Field("password", g.String().Min(6)),
	)
	_, err := skema.Parse(context.Background(), s, map[string]any{"username": "otong", "password": "123"})
	iss, _ := skema.AsIssues(err)
	require.Len(t, iss, 2)
	assert.Equal(t, "Email tidak valid", iss[0].Message)
	assert.Equal(t, "String minimal harus berisi 6 karakter", iss[1].Message)
}
