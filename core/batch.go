package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FailurePolicy decides how a batch reports failures. Either way a batch with
// a failed call returns an error and no results.
type FailurePolicy string

const (
	// FailFast cancels the remaining calls on the first error and returns it.
	FailFast FailurePolicy = "fail_fast"
	// CollectAll waits for every call and returns all errors joined.
	CollectAll FailurePolicy = "collect_all"
)

var ErrorUnknownPolicy = errors.New("unknown failure policy")

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(s); p {
	case FailFast, CollectAll:
		return p, nil
	case "":
		return FailFast, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrorUnknownPolicy, s)
	}
}

// RunBatch calls fn for every input concurrently and waits for all of them.
// Results are in input order.
func RunBatch[T any, R any](ctx context.Context, policy FailurePolicy, inputs []T, fn func(ctx context.Context, input T) (R, error)) ([]R, error) {
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	switch policy {
	case FailFast:
		g, gctx := errgroup.WithContext(ctx)
		for i, in := range inputs {
			i, in := i, in
			g.Go(func() error {
				r, err := fn(gctx, in)
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil

	case CollectAll:
		errs := make([]error, len(inputs))
		var wg sync.WaitGroup
		for i, in := range inputs {
			wg.Add(1)
			go func(i int, in T) {
				defer wg.Done()
				results[i], errs[i] = fn(ctx, in)
			}(i, in)
		}
		wg.Wait()
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
		return results, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrorUnknownPolicy, policy)
	}
}
