package skema

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParseAll evaluates every input against s concurrently and returns the
// results in input order. limit bounds the number of goroutines (<= 0 means
// unbounded). Schemas are immutable, so one tree is shared by all workers.
// Inputs not yet started when ctx is cancelled fail with a parse_error issue.
func ParseAll(ctx context.Context, s Schema, inputs []any, limit int) []Result {
	out := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i] = Result{Error: singleIssue(CodeParseError, err.Error())}
				return nil
			}
			out[i] = SafeParse(ctx, s, in)
			return nil
		})
	}
	// workers never return errors; failures live in the results
	_ = g.Wait()
	return out
}
