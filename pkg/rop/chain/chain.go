package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Bind(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Tap performs a side effect without changing the result
func (c *Chain[T]) Tap(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tap(c.ctx, c.result, onSuccess))
}

func (c *Chain[T]) Ensure(predicate func(context.Context, T) bool, err rop.ErrorReason) *Chain[T] {
	return Start(c.ctx, solo.Ensure(c.ctx, c.result, predicate, err))
}

// EnsureAll runs every check and collects all failures
func (c *Chain[T]) EnsureAll(checks ...solo.Check[T]) *Chain[T] {
	return Start(c.ctx, solo.EnsureAll(c.ctx, c.result, checks...))
}

func (c *Chain[T]) Where(predicate func(context.Context, T) bool, message ...string) *Chain[T] {
	return Start(c.ctx, solo.Where(c.ctx, c.result, predicate, message...))
}

// WithSuccess annotates a successful chain. A failed chain is returned as is.
func (c *Chain[T]) WithSuccess(msg string) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Start(c.ctx, c.result.WithSuccess(msg))
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, []rop.ErrorReason) U) U {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}
