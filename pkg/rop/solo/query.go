package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// Select is Map under its query name.
func Select[In any, Out any](ctx context.Context, input rop.Result[In],
	selector func(ctx context.Context, r In) Out) rop.Result[Out] {
	return Map(ctx, input, selector)
}

// SelectMany is Bind under its query name.
func SelectMany[In any, Out any](ctx context.Context, input rop.Result[In],
	selector func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {
	return Bind(ctx, input, selector)
}

// SelectManyWith binds to an intermediate result and combines the source value
// with the intermediate value through project.
func SelectManyWith[In, Mid, Out any](ctx context.Context, input rop.Result[In],
	selector func(ctx context.Context, r In) rop.Result[Mid],
	project func(ctx context.Context, r In, m Mid) Out) rop.Result[Out] {
	rop.RequireFunc(selector, "selector")
	rop.RequireFunc(project, "result selector")

	return Bind(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		return Map(ctx, selector(ctx, r), func(ctx context.Context, m Mid) Out {
			return project(ctx, r, m)
		})
	})
}

// Where is Ensure with an optional message, DefaultWhereMessage by default.
func Where[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool, message ...string) rop.Result[T] {
	return Ensure(ctx, input, predicate, rop.NewError(messageOr(DefaultWhereMessage, message)))
}
