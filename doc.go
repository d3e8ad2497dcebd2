// Package skema provides:
//
// - Runtime validation and coercion of untyped Go values against immutable schema trees
// - A stable error model via Issues (path, code, message, params)
// - Strict (Parse) and non-throwing (SafeParse) entry points that report identical issues
// - Insertion-ordered Set and OrderedMap containers for set/map schemas
//
// Design policy:
//   - Keep the issue model, evaluation context and entry points in the root package.
//   - Place schema builders under dsl/, decoders under source/, CEL refinements under
//     expr/, declarative schema files under schemafile/, HTTP request validation under
//     middleware/ and the CLI under cmd/skema.
//   - Schemas are values; chaining never mutates a schema that was already handed out,
//     so one sub-schema may be shared by many parents and by concurrent evaluations.
//
// Typical usage:
//
//	login := dsl.Object(
//	    dsl.Field("username", dsl.String().Email()),
//	    dsl.Field("password", dsl.String().Min(6).Max(20)),
//	)
//	v, err := skema.Parse(ctx, login, input)
//	res := skema.SafeParse(ctx, login, input)
//	if !res.Success {
//	    for _, it := range res.Error { fmt.Println(it.Path, it.Message) }
//	}
package skema
