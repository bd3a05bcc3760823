package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// AsyncCheck is solo.Check with a predicate that answers on a channel.
type AsyncCheck[T any] struct {
	Predicate func(ctx context.Context, v T) <-chan bool
	Err       rop.ErrorReason
}

func Ensure[T any](ctx context.Context, pending <-chan rop.Result[T],
	predicate func(ctx context.Context, r T) bool, err rop.ErrorReason) <-chan rop.Result[T] {
	return EnsureAll(ctx, pending, solo.Check[T]{Predicate: predicate, Err: err})
}

func EnsureAll[T any](ctx context.Context, pending <-chan rop.Result[T],
	checks ...solo.Check[T]) <-chan rop.Result[T] {
	requirePending(pending)
	for i, c := range checks {
		if c.Predicate == nil || rop.IsNil(c.Err) {
			panic(rop.InvalidArgument("check at index %d needs a predicate and an error", i))
		}
	}

	return then(ctx, pending, func(input rop.Result[T]) rop.Result[T] {
		return solo.EnsureAll(ctx, input, checks...)
	})
}

func EnsureNotNil[T any](ctx context.Context, pending <-chan rop.Result[T], message ...string) <-chan rop.Result[T] {
	requirePending(pending)

	return then(ctx, pending, func(input rop.Result[T]) rop.Result[T] {
		return solo.EnsureNotNil(ctx, input, message...)
	})
}

func EnsureAsync[T any](ctx context.Context, pending <-chan rop.Result[T],
	predicate func(ctx context.Context, r T) <-chan bool, err rop.ErrorReason) <-chan rop.Result[T] {
	return EnsureAllAsync(ctx, pending, AsyncCheck[T]{Predicate: predicate, Err: err})
}

// EnsureAllAsync starts every predicate once pending settles and reports one
// error per failing check, in check order.
func EnsureAllAsync[T any](ctx context.Context, pending <-chan rop.Result[T],
	checks ...AsyncCheck[T]) <-chan rop.Result[T] {
	requirePending(pending)
	requireChecks(checks)

	return then(ctx, pending, func(input rop.Result[T]) rop.Result[T] {
		return ensuring(ctx, input, checks)()
	})
}

func Ensuring[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) <-chan bool, err rop.ErrorReason) <-chan rop.Result[T] {
	return EnsuringAll(ctx, input, AsyncCheck[T]{Predicate: predicate, Err: err})
}

// EnsuringAll starts every predicate before returning.
func EnsuringAll[T any](ctx context.Context, input rop.Result[T], checks ...AsyncCheck[T]) <-chan rop.Result[T] {
	requireChecks(checks)

	return core.Go(ensuring(ctx, input, checks))
}

func ensuring[T any](ctx context.Context, input rop.Result[T], checks []AsyncCheck[T]) func() rop.Result[T] {
	if input.IsFailure() {
		return settled(input)
	}

	waits := make([]func() (bool, error), 0, len(checks))
	for _, c := range checks {
		waits = append(waits, start(ctx, input, c.Predicate))
	}

	return func() rop.Result[T] {
		failed := make([]rop.ErrorReason, 0, len(checks))
		for i, wait := range waits {
			ok, err := wait()
			switch {
			case err != nil:
				failed = append(failed, rop.NewExceptionError(err))
			case !ok:
				failed = append(failed, checks[i].Err)
			}
		}

		if len(failed) == 0 {
			return input
		}
		return rop.Reject[T, T](input, failed...)
	}
}

func requireChecks[T any](checks []AsyncCheck[T]) {
	for i, c := range checks {
		if c.Predicate == nil || rop.IsNil(c.Err) {
			panic(rop.InvalidArgument("check at index %d needs a predicate and an error", i))
		}
	}
}
