package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// The Outcome forms run the Result combinators over a value-less result, so
// an Outcome from rop.Try can continue a chain.

func unit(o rop.Outcome) rop.Result[struct{}] {
	return rop.ToResult(o, struct{}{})
}

// BindOutcome sequences a step that returns its own outcome.
func BindOutcome(ctx context.Context, input rop.Outcome,
	next func(ctx context.Context) rop.Outcome) rop.Outcome {
	rop.RequireFunc(next, "bind func")

	return Bind(ctx, unit(input), func(ctx context.Context, _ struct{}) rop.Result[struct{}] {
		return unit(next(ctx))
	}).Outcome()
}

// BindOutcomeTo sequences a step that produces a value.
func BindOutcomeTo[Out any](ctx context.Context, input rop.Outcome,
	next func(ctx context.Context) rop.Result[Out]) rop.Result[Out] {
	rop.RequireFunc(next, "bind func")

	return Bind(ctx, unit(input), func(ctx context.Context, _ struct{}) rop.Result[Out] {
		return next(ctx)
	})
}

func MapOutcome[Out any](ctx context.Context, input rop.Outcome,
	onSuccess func(ctx context.Context) Out) rop.Result[Out] {
	rop.RequireFunc(onSuccess, "map func")

	return Map(ctx, unit(input), func(ctx context.Context, _ struct{}) Out {
		return onSuccess(ctx)
	})
}

func TapOutcome(ctx context.Context, input rop.Outcome, onSuccess func(ctx context.Context)) rop.Outcome {
	rop.RequireFunc(onSuccess, "tap func")

	return Tap(ctx, unit(input), func(ctx context.Context, _ struct{}) {
		onSuccess(ctx)
	}).Outcome()
}

func EnsureOutcome(ctx context.Context, input rop.Outcome,
	predicate func(ctx context.Context) bool, err rop.ErrorReason) rop.Outcome {
	rop.RequireFunc(predicate, "predicate")

	return Ensure(ctx, unit(input), func(ctx context.Context, _ struct{}) bool {
		return predicate(ctx)
	}, err).Outcome()
}
