package skema

import (
	"context"

	"github.com/reoring/skema/i18n"
	js "github.com/reoring/skema/jsonschema"
)

// Schema is an immutable schema node. Implementations live in the dsl
// package; custom nodes only need to honor the Evaluate contract.
type Schema interface {
	// Kind reports the node variant.
	Kind() Kind

	// Evaluate checks (and possibly coerces or transforms) v. It returns the
	// output value, or Never after recording at least one Issue on c.
	// Evaluate must not panic on malformed input.
	Evaluate(c *Ctx, v any) any

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Ctx collects issues for a single evaluation call. Child scopes created
// with At share the issue list and extend the path. A Ctx must not outlive
// the Parse/SafeParse call that created it.
type Ctx struct {
	ctx    context.Context
	path   Path
	issues *Issues
}

// NewCtx returns a root scope with an empty issue list. Parse and SafeParse
// create one per call; custom schema tests may use it directly.
func NewCtx(ctx context.Context) *Ctx {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Ctx{ctx: ctx, issues: &Issues{}}
}

// Context returns the caller's context.
func (c *Ctx) Context() context.Context { return c.ctx }

// Path returns the location of this scope relative to the input root.
func (c *Ctx) Path() Path { return c.path.Append() }

// At returns a child scope located at the given segments.
func (c *Ctx) At(segs ...PathSegment) *Ctx {
	return &Ctx{ctx: c.ctx, path: c.path.Append(segs...), issues: c.issues}
}

// Key is shorthand for At(Key(name)).
func (c *Ctx) Key(name string) *Ctx { return c.At(Key(name)) }

// Index is shorthand for At(Index(i)).
func (c *Ctx) Index(i int) *Ctx { return c.At(Index(i)) }

// Fork returns a scope at the same path with its own, empty issue list.
// Union schemas use it to try options without leaking their issues.
func (c *Ctx) Fork() *Ctx {
	return &Ctx{ctx: c.ctx, path: c.path, issues: &Issues{}}
}

// AddIssue records an issue. it.Path is interpreted relative to this scope;
// an empty Code means custom and an empty Message is filled from the i18n
// catalog using the code.
func (c *Ctx) AddIssue(it Issue) {
	it.Path = c.path.Append(it.Path...)
	if it.Code == "" {
		it.Code = CodeCustom
	}
	if it.Message == "" {
		it.Message = i18n.T(it.Code, nil)
	}
	*c.issues = append(*c.issues, it)
}

// IssueCount returns the number of issues recorded so far across the whole
// evaluation. Comparing counts before and after a call tells whether that
// subtree failed.
func (c *Ctx) IssueCount() int { return len(*c.issues) }

// Issues returns a copy of the recorded issues.
func (c *Ctx) Issues() Issues {
	if len(*c.issues) == 0 {
		return nil
	}
	out := make(Issues, len(*c.issues))
	copy(out, *c.issues)
	return out
}
