// Package dsl builds skema schema trees.
//
// Every builder is an immutable value: chained methods return a modified
// copy and never touch the receiver, so a sub-schema can be declared once
// and reused in several parents or evaluated from many goroutines.
//
// Overview
//   - Primitives: String(), Number(), Bool(), Date(), Enum(...), Literal(v), Any().
//   - Coercion: Coerce.String(), Coerce.Number(), Coerce.Bool(), Coerce.Date()
//     convert the input before any check runs.
//   - Compound: Object(Field(...)...), Array(elem), Set(elem), Map(key, value),
//     Record(value), Union(options...).
//   - Wrappers: Optional, Nullable, Default, Transform, Refine, SuperRefine.
//     Each exists as a function and as a method on every builder.
//
// Checks on one node all run, so "ot" against String().Email().Min(3)
// reports both problems. Siblings never short-circuit each other either:
// an object reports the issues of every field.
//
// Example
//
//	login := dsl.Object(
//	    dsl.Field("username", dsl.String().Email("username harus email")),
//	    dsl.Field("password", dsl.String().Min(6).Max(20)),
//	    dsl.Field("remember", dsl.Coerce.Bool().Default(false)),
//	)
//	out, err := skema.Parse(ctx, login, map[string]any{
//	    "username": "otong@gmail.com",
//	    "password": "rahasia",
//	})
//
// Custom transforms receive the evaluation scope and may report issues:
//
//	username := dsl.String().Email().Transform(dsl.MustUpperCase("username harus uppercase"))
package dsl
