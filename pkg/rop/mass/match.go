package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Match reduces a pending result with synchronous branches. The branch value
// arrives as a successful result, so a panic raised by a branch is re-raised
// by Await on the caller's goroutine.
func Match[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, errs []rop.ErrorReason) Out) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return rop.SuccessFrom(input, solo.Match(ctx, input, onSuccess, onFailure))
	})
}

// MatchDo runs one of the branches once pending settles. The returned outcome
// is delivered when the branch has finished; read it with AwaitOutcome.
func MatchDo[T any](ctx context.Context, pending <-chan rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []rop.ErrorReason)) <-chan rop.Outcome {
	requirePending(pending)
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	return ToOutcome(ctx, then(ctx, pending, func(input rop.Result[T]) rop.Result[struct{}] {
		solo.MatchDo(ctx, input, onSuccess, onFailure)
		return rop.SuccessFrom(input, struct{}{})
	}))
}

// MatchAsync reduces a pending result with asynchronous branches. When ctx is
// cancelled before the branch delivers, the result fails with an
// ExceptionError.
func MatchAsync[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan Out,
	onFailure func(ctx context.Context, errs []rop.ErrorReason) <-chan Out) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return deliver(ctx, input, branch(ctx, input, onSuccess, onFailure))
	})
}

// Matching reduces a settled result with asynchronous branches; the chosen
// branch is started before Matching returns.
func Matching[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan Out,
	onFailure func(ctx context.Context, errs []rop.ErrorReason) <-chan Out) <-chan rop.Result[Out] {
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	ch := branch(ctx, input, onSuccess, onFailure)
	return core.Go(func() rop.Result[Out] {
		return deliver(ctx, input, ch)
	})
}

func branch[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan Out,
	onFailure func(ctx context.Context, errs []rop.ErrorReason) <-chan Out) <-chan Out {
	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Errors())
}

func deliver[In, Out any](ctx context.Context, input rop.Result[In], ch <-chan Out) rop.Result[Out] {
	v, err := core.Receive(ctx, ch)
	if err != nil {
		return rop.FailLike[In, Out](input, rop.NewExceptionError(err))
	}
	return rop.SuccessFrom(input, v)
}
