package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

func Select[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	selector func(ctx context.Context, r In) Out) <-chan rop.Result[Out] {
	return Map(ctx, pending, selector)
}

func SelectMany[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	selector func(ctx context.Context, r In) rop.Result[Out]) <-chan rop.Result[Out] {
	return Bind(ctx, pending, selector)
}

func SelectManyWith[In, Mid, Out any](ctx context.Context, pending <-chan rop.Result[In],
	selector func(ctx context.Context, r In) rop.Result[Mid],
	project func(ctx context.Context, r In, m Mid) Out) <-chan rop.Result[Out] {
	requirePending(pending)
	rop.RequireFunc(selector, "selector")
	rop.RequireFunc(project, "result selector")

	return then(ctx, pending, func(input rop.Result[In]) rop.Result[Out] {
		return solo.SelectManyWith(ctx, input, selector, project)
	})
}

func Where[T any](ctx context.Context, pending <-chan rop.Result[T],
	predicate func(ctx context.Context, r T) bool, message ...string) <-chan rop.Result[T] {
	requirePending(pending)
	rop.RequireFunc(predicate, "predicate")

	return then(ctx, pending, func(input rop.Result[T]) rop.Result[T] {
		return solo.Where(ctx, input, predicate, message...)
	})
}
