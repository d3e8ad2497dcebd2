package skema

import (
	"context"
	"fmt"
)

// Result is the outcome of SafeParse. Exactly one of Data (Success) or
// Error (!Success) is meaningful.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   Issues `json:"error,omitempty"`
}

// Err returns the issues as an error, or nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return r.Error
}

// SafeParse evaluates v against s and never returns an error value: the
// outcome is reported through Result.
func SafeParse(ctx context.Context, s Schema, v any) Result {
	if s == nil {
		return Result{Error: singleIssue(CodeParseError, "nil schema")}
	}
	c := NewCtx(ctx)
	out := s.Evaluate(c, v)
	iss := c.Issues()
	if IsNever(out) || len(iss) > 0 {
		if len(iss) == 0 {
			// a custom node returned Never without explaining why
			iss = singleIssue(CodeCustom, "")
		}
		return Result{Error: iss}
	}
	return Result{Success: true, Data: out}
}

// Parse evaluates v against s. On failure the returned error is Issues
// aggregating every issue found; use AsIssues or errors.As to inspect it.
func Parse(ctx context.Context, s Schema, v any) (any, error) {
	r := SafeParse(ctx, s, v)
	if !r.Success {
		return nil, r.Error
	}
	return r.Data, nil
}

// MustParse is like Parse but panics with Issues on failure.
func MustParse(ctx context.Context, s Schema, v any) any {
	out, err := Parse(ctx, s, v)
	if err != nil {
		panic(err)
	}
	return out
}

// ParseAs parses v and asserts the output to T. A successful parse whose
// output is not a T is reported as an invalid_type issue at the root.
func ParseAs[T any](ctx context.Context, s Schema, v any) (T, error) {
	var zero T
	out, err := Parse(ctx, s, v)
	if err != nil {
		return zero, err
	}
	if IsUndefined(out) {
		return zero, nil
	}
	t, ok := out.(T)
	if !ok {
		return zero, Issues{{Code: CodeInvalidType, Message: fmt.Sprintf("output is %T, not %T", out, zero)}}
	}
	return t, nil
}

// ParseFrom decodes src and parses the decoded value. Decoding failures are
// returned as Issues (parse_error unless the source reports its own codes).
func ParseFrom(ctx context.Context, s Schema, src Source) (any, error) {
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	v, err := src.Decode()
	if err != nil {
		return nil, toIssues(err)
	}
	return Parse(ctx, s, v)
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	return singleIssue(CodeParseError, err.Error())
}

func singleIssue(code, msg string) Issues {
	c := NewCtx(context.Background())
	c.AddIssue(Issue{Code: code, Message: msg})
	return c.Issues()
}
