// Package expr compiles CEL boolean expressions into refinements. An
// expression sees the validated value as the variable value and may use the
// CEL strings extension:
//
//	p := expr.MustCompile(`value.password == value.confirm`)
//	form := dsl.Object(...).SuperRefine(expr.Refinement(p, "passwords differ"))
package expr

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/reoring/skema"
)

// Variable is the name the evaluated value is bound to.
const Variable = "value"

var env = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(Variable, cel.DynType),
		cel.CrossTypeNumericComparisons(true),
		ext.Strings(),
	)
})

// Program is a compiled expression. It is safe for concurrent use.
type Program struct {
	src string
	prg cel.Program
}

// Compile type-checks src and prepares it for evaluation. The expression
// must produce a bool (or a dynamic value checked at evaluation time).
func Compile(src string) (*Program, error) {
	e, err := env()
	if err != nil {
		return nil, fmt.Errorf("expr: environment: %w", err)
	}
	ast, iss := e.Compile(src)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("expr: compile %q: %w", src, iss.Err())
	}
	if t := ast.OutputType(); !t.IsExactType(cel.BoolType) && !t.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expr: %q yields %s, not bool", src, t)
	}
	prg, err := e.Program(ast, cel.InterruptCheckFrequency(100))
	if err != nil {
		return nil, fmt.Errorf("expr: program %q: %w", src, err)
	}
	return &Program{src: src, prg: prg}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Program {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the expression source.
func (p *Program) String() string { return p.src }

// Eval evaluates the expression with value bound to v.
func (p *Program) Eval(ctx context.Context, v any) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	in, err := toCEL(v)
	if err != nil {
		return false, fmt.Errorf("expr: eval %q: %w", p.src, err)
	}
	out, _, err := p.prg.ContextEval(ctx, map[string]any{Variable: in})
	if err != nil {
		return false, fmt.Errorf("expr: eval %q: %w", p.src, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expr: %q produced %T, not bool", p.src, out.Value())
	}
	return b, nil
}

// Refinement adapts p for dsl SuperRefine: a false result adds a custom
// issue with msg (the catalog text when empty). Evaluation errors are
// reported as custom issues too, with the error in Params["error"].
func Refinement(p *Program, msg string) func(any, *skema.Ctx) {
	if p == nil {
		panic("expr: nil program")
	}
	return func(v any, c *skema.Ctx) {
		ok, err := p.Eval(c.Context(), v)
		switch {
		case err != nil:
			c.AddIssue(skema.Issue{Code: skema.CodeCustom, Message: msg, Params: map[string]any{"expr": p.src, "error": err.Error()}})
		case !ok:
			c.AddIssue(skema.Issue{Code: skema.CodeCustom, Message: msg, Params: map[string]any{"expr": p.src}})
		}
	}
}

// toCEL rewrites skema values into types the CEL runtime adapts natively.
// Map keys that Go cannot hash (slices, maps, sets) are an error.
func toCEL(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i, nil
		}
		f, _ := x.Float64()
		return f, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			ce, err := toCEL(e)
			if err != nil {
				return nil, err
			}
			out[k] = ce
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			ce, err := toCEL(e)
			if err != nil {
				return nil, err
			}
			out[i] = ce
		}
		return out, nil
	case *skema.Set:
		return toCEL(x.Values())
	case *skema.OrderedMap:
		out := make(map[any]any, x.Len())
		for k, e := range x.All() {
			ck, err := toCEL(k)
			if err != nil {
				return nil, err
			}
			if ck != nil && !reflect.ValueOf(ck).Comparable() {
				return nil, fmt.Errorf("map key of type %T has no CEL form", k)
			}
			ce, err := toCEL(e)
			if err != nil {
				return nil, err
			}
			out[ck] = ce
		}
		return out, nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}
		return *x, nil
	}
	if skema.IsUndefined(v) {
		return nil, nil
	}
	return v, nil
}
