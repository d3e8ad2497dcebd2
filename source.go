package skema

// Source produces an untyped input value, e.g. by decoding JSON or YAML.
// See the source package for the JSON and YAML implementations.
type Source interface {
	Decode() (any, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (any, error)

// Decode calls f.
func (f SourceFunc) Decode() (any, error) { return f() }

// Value returns a Source that yields v unchanged.
func Value(v any) Source {
	return SourceFunc(func() (any, error) { return v, nil })
}
