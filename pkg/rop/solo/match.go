package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// Match reduces a result to a value. Both branches are required; a nil branch
// panics before either runs.
func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, errs []rop.ErrorReason) Out) Out {
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Errors())
}

func MatchDo[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []rop.ErrorReason)) {
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
		return
	}
	onFailure(ctx, input.Errors())
}

func MatchOutcome[Out any](ctx context.Context, input rop.Outcome,
	onSuccess func(ctx context.Context) Out,
	onFailure func(ctx context.Context, errs []rop.ErrorReason) Out) Out {
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	if input.IsSuccess() {
		return onSuccess(ctx)
	}
	return onFailure(ctx, input.Errors())
}

func MatchOutcomeDo(ctx context.Context, input rop.Outcome,
	onSuccess func(ctx context.Context),
	onFailure func(ctx context.Context, errs []rop.ErrorReason)) {
	rop.RequireFunc(onSuccess, "success branch")
	rop.RequireFunc(onFailure, "failure branch")

	if input.IsSuccess() {
		onSuccess(ctx)
		return
	}
	onFailure(ctx, input.Errors())
}
