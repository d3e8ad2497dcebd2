package dsl

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/reoring/skema"
)

// Typed pairs a schema with a Go type T. Parse validates the input and then
// projects the output onto T through its JSON encoding, so struct tags
// decide which output members land in which fields.
type Typed[T any] struct{ s skema.Schema }

// Bind returns a Typed view of s.
func Bind[T any](s skema.Schema) Typed[T] {
	if s == nil {
		panic("dsl: Bind of nil schema")
	}
	return Typed[T]{s: s}
}

// Schema returns the underlying schema.
func (t Typed[T]) Schema() skema.Schema { return t.s }

// Parse validates v and decodes the output into a T.
func (t Typed[T]) Parse(ctx context.Context, v any) (T, error) {
	var out T
	data, err := skema.Parse(ctx, t.s, v)
	if err != nil {
		return out, err
	}
	b, err := json.Marshal(data)
	if err == nil {
		err = json.Unmarshal(b, &out)
	}
	if err != nil {
		return out, skema.Issues{{Code: skema.CodeParseError, Message: "bind: " + err.Error()}}
	}
	return out, nil
}

// MustParse is like Parse but panics on failure.
func (t Typed[T]) MustParse(ctx context.Context, v any) T {
	out, err := t.Parse(ctx, v)
	if err != nil {
		panic(err)
	}
	return out
}
