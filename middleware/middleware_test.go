package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema/dsl"
	"github.com/reoring/skema/middleware"
)

func handler(t *testing.T) http.Handler {
	s := dsl.Object(
		dsl.Field("username", dsl.String().Email()),
		dsl.Field("password", dsl.String().Min(6)),
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := middleware.ParsedFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
		assert.Equal(t, map[string]any{"username": "a@b.io", "password": "secret1"}, v)
	})
	return middleware.Validate(s)(next)
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))
	return rec
}

type payload struct {
	Issues []struct {
		Path    []any  `json:"path"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"issues"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) payload {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var p payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestValidate_PassesParsedValue(t *testing.T) {
	rec := post(handler(t), `{"username":"a@b.io","password":"secret1","extra":true}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestValidate_RejectsInvalidBody(t *testing.T) {
	rec := post(handler(t), `{"username":"nope","password":"123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	p := decode(t, rec)
	require.Len(t, p.Issues, 2)
	assert.Equal(t, "invalid_string", p.Issues[0].Code)
	assert.Equal(t, "too_small", p.Issues[1].Code)
}

func TestValidate_DuplicateKeysAndSyntax(t *testing.T) {
	rec := post(handler(t), `{"username":"a@b.io","username":"c@d.io","password":"secret1"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "duplicate_key", decode(t, rec).Issues[0].Code)

	rec = post(handler(t), `{"username":`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "parse_error", decode(t, rec).Issues[0].Code)
}

func TestValidate_BodyTooLarge(t *testing.T) {
	rec := post(handler(t), `{"username":"`+strings.Repeat("a", middleware.MaxBodyBytes)+`"}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "parse_error", decode(t, rec).Issues[0].Code)
}

func TestParsedFromContext_Missing(t *testing.T) {
	_, ok := middleware.ParsedFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
