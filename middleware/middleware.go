// Package middleware validates JSON request bodies at HTTP boundaries.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/reoring/skema"
	"github.com/reoring/skema/source"
)

// MaxBodyBytes bounds the request body read by Validate.
const MaxBodyBytes = 1 << 20

type ctxKeyParsed struct{}

// ContextWithParsed attaches a parsed request value to the context.
func ContextWithParsed(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyParsed{}, v)
}

// ParsedFromContext retrieves the value stored by Validate.
func ParsedFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyParsed{})
	return v, v != nil
}

// DefaultSourceOptions returns the decoding options recommended for HTTP
// JSON boundaries: duplicate keys are errors and nesting is bounded.
func DefaultSourceOptions() []source.Option {
	return []source.Option{source.RejectDuplicateKeys(), source.MaxDepth(64)}
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues skema.Issues) map[string]any {
	return map[string]any{"issues": issues}
}

// Validate decodes the request body as JSON, parses it with s and stores the
// output in the request context. Invalid bodies get a 422 response carrying
// the issues; bodies over MaxBodyBytes get 413.
func Validate(s skema.Schema, opts ...source.Option) func(http.Handler) http.Handler {
	if len(opts) == 0 {
		opts = DefaultSourceOptions()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeIssues(w, http.StatusRequestEntityTooLarge, skema.Issues{{Path: skema.Path{}, Code: skema.CodeParseError, Message: "request body too large"}})
					return
				}
				writeIssues(w, http.StatusBadRequest, skema.Issues{{Path: skema.Path{}, Code: skema.CodeParseError, Message: err.Error()}})
				return
			}
			out, err := skema.ParseFrom(r.Context(), s, source.JSON(body, opts...))
			if err != nil {
				iss, ok := skema.AsIssues(err)
				if !ok {
					iss = skema.Issues{{Path: skema.Path{}, Code: skema.CodeParseError, Message: err.Error()}}
				}
				writeIssues(w, http.StatusUnprocessableEntity, iss)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithParsed(r.Context(), out)))
		})
	}
}

func writeIssues(w http.ResponseWriter, status int, iss skema.Issues) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorPayload(iss))
}
