package mass

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Map transforms a pending result with a synchronous func.
func Map[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(onSuccess, "map func")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, input, onSuccess)
	})
}

// MapAsync transforms a pending result with an asynchronous func.
func MapAsync[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan Out) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(onSuccess, "map func")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return mapping(ctx, input, onSuccess)()
	})
}

// Mapping transforms a settled result with an asynchronous func. onSuccess is
// called before Mapping returns.
func Mapping[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan Out) <-chan rop.Result[Out] {
	rop.RequireFunc(onSuccess, "map func")

	return core.Go(mapping(ctx, input, onSuccess))
}

func mapping[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan Out) func() rop.Result[Out] {
	if input.IsFailure() {
		return settled(rop.FailFrom[In, Out](input))
	}

	wait := start(ctx, input, onSuccess)
	return func() rop.Result[Out] {
		out, err := wait()
		if err != nil {
			return rop.FailLike[In, Out](input, rop.NewExceptionError(err))
		}
		return rop.SuccessFrom(input, out)
	}
}

// Bind sequences a pending result with a synchronous step.
func Bind[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(onSuccess, "bind func")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, input, onSuccess)
	})
}

// BindAsync sequences a pending result with an asynchronous step.
func BindAsync[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan rop.Result[Out]) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(onSuccess, "bind func")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return binding(ctx, input, onSuccess)()
	})
}

// Binding sequences a settled result with an asynchronous step.
func Binding[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan rop.Result[Out]) <-chan rop.Result[Out] {
	rop.RequireFunc(onSuccess, "bind func")

	return core.Go(binding(ctx, input, onSuccess))
}

func binding[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan rop.Result[Out]) func() rop.Result[Out] {
	if input.IsFailure() {
		return settled(rop.FailFrom[In, Out](input))
	}

	wait := start(ctx, input, onSuccess)
	return func() rop.Result[Out] {
		next, err := wait()
		if err != nil {
			return rop.FailLike[In, Out](input, rop.NewExceptionError(err))
		}
		return rop.Continue(input, next)
	}
}

// Tap runs a synchronous side effect once pending settles successfully. Like
// solo.Tap it does not turn panics into failures: a panic in sideEffect is
// carried downstream and raised again by Await.
func Tap[T any](ctx context.Context, pending <-chan rop.Result[T],
	sideEffect func(ctx context.Context, r T)) <-chan rop.Result[T] {
	requirePending(pending)
	rop.RequireFunc(sideEffect, "tap func")

	return then(ctx, pending, func(input rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, input, sideEffect)
	})
}

// TapAsync runs an asynchronous side effect once pending settles
// successfully and waits until its channel yields or closes. A panic while
// starting the side effect is raised again by Await.
func TapAsync[T any](ctx context.Context, pending <-chan rop.Result[T],
	sideEffect func(ctx context.Context, r T) <-chan struct{}) <-chan rop.Result[T] {
	requirePending(pending)
	rop.RequireFunc(sideEffect, "tap func")

	return then(ctx, pending, func(input rop.Result[T]) rop.Result[T] {
		return tapping(ctx, input, sideEffect)()
	})
}

// Tapping runs an asynchronous side effect for a settled result. The side
// effect is started before Tapping returns, so a panic while starting it
// reaches the caller.
func Tapping[T any](ctx context.Context, input rop.Result[T],
	sideEffect func(ctx context.Context, r T) <-chan struct{}) <-chan rop.Result[T] {
	rop.RequireFunc(sideEffect, "tap func")

	return core.Go(tapping(ctx, input, sideEffect))
}

func tapping[T any](ctx context.Context, input rop.Result[T],
	sideEffect func(ctx context.Context, r T) <-chan struct{}) func() rop.Result[T] {
	if input.IsFailure() {
		return settled(input)
	}

	done := sideEffect(ctx, input.Value())
	return func() rop.Result[T] {
		if _, err := core.Receive(ctx, done); err != nil && !errors.Is(err, core.ErrClosed) {
			return rop.FailLike[T, T](input, rop.NewExceptionError(err))
		}
		return input
	}
}

// Try calls a function returning (Out, error) once pending settles.
func Try[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(onTryExecute, "try func")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	})
}
