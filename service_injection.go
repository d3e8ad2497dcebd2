package skema

import "context"

// serviceKey is a unique key per type parameter T for context storage.
type serviceKey[T any] struct{}

// WithService stores a typed service instance in the context so refinements
// can reach it through Ctx.Context (for example a user directory consulted
// by a uniqueness check).
func WithService[T any](ctx context.Context, svc T) context.Context {
	return context.WithValue(ctx, serviceKey[T]{}, any(svc))
}

// Service retrieves a typed service instance from the evaluation scope.
func Service[T any](c *Ctx) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v := c.Context().Value(serviceKey[T]{})
	if v == nil {
		return zero, false
	}
	if tv, ok := v.(T); ok {
		return tv, true
	}
	return zero, false
}
