// Package source decodes JSON and YAML documents into the untyped values
// skema schemas evaluate: map[string]any objects, []any arrays, json.Number
// (JSON) or int/float64 (YAML) numbers, strings, booleans and nil.
//
// Decoding failures are reported as skema.Issues so that skema.ParseFrom
// can return them unchanged.
package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// Option configures a decoder.
type Option func(*options)

type options struct {
	rejectDup bool
	maxDepth  int
}

// RejectDuplicateKeys reports every repeated object key as a duplicate_key
// issue instead of keeping the last value.
func RejectDuplicateKeys() Option { return func(o *options) { o.rejectDup = true } }

// MaxDepth limits container nesting; deeper documents fail with a
// parse_error. n <= 0 means unlimited.
func MaxDepth(n int) Option { return func(o *options) { o.maxDepth = n } }

func newOptions(opts []Option) options {
	var o options
	for _, f := range opts {
		if f != nil {
			f(&o)
		}
	}
	return o
}

// walker carries the state shared by the JSON and YAML tree builders.
type walker struct {
	opts   options
	issues skema.Issues

	// YAML alias bookkeeping: decoded alias targets with their expanded
	// node counts, and the running totals checked by aliasBudget.
	anchors map[*yaml.Node]anchored
	decoded int
	aliased int
}

// enter checks the nesting limit for a container at path p of depth d.
func (w *walker) enter(p skema.Path, d int) error {
	if w.opts.maxDepth > 0 && d > w.opts.maxDepth {
		return skema.Issues{parseIssue(p, fmt.Sprintf("maximum nesting depth %d exceeded", w.opts.maxDepth))}
	}
	return nil
}

func (w *walker) duplicate(p skema.Path, key string, detail string) {
	msg := i18n.T(skema.CodeDuplicateKey, map[string]string{"key": fmt.Sprintf("%q", key)})
	if detail != "" {
		msg += " (" + detail + ")"
	}
	w.issues = append(w.issues, skema.IssueAt(p.Append(skema.Key(key)), skema.CodeDuplicateKey, msg, map[string]any{"key": key}))
}

func (w *walker) err() error {
	if len(w.issues) > 0 {
		return w.issues
	}
	return nil
}

func parseIssue(p skema.Path, msg string) skema.Issue {
	if p == nil {
		p = skema.Path{}
	}
	return skema.IssueAt(p, skema.CodeParseError, msg, nil)
}
