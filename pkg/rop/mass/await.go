package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

// FromValue returns a pending result that is already settled with v.
func FromValue[T any](v T) <-chan rop.Result[T] {
	return core.Ready(rop.Success(v))
}

// FromResult returns a pending result that is already settled with r.
func FromResult[T any](r rop.Result[T]) <-chan rop.Result[T] {
	return core.Ready(r)
}

// Await settles a pending result on the caller's goroutine. A cancelled ctx,
// or a channel that closes without a value, yields a failed result holding an
// ExceptionError. A panic raised inside a stage is raised again here.
func Await[T any](ctx context.Context, pending <-chan rop.Result[T]) rop.Result[T] {
	r := settle(ctx, pending)
	r.Repanic()
	return r
}

func settle[T any](ctx context.Context, pending <-chan rop.Result[T]) rop.Result[T] {
	r, err := core.Receive(ctx, pending)
	if err != nil {
		return rop.Fail[T](rop.NewExceptionError(err))
	}
	return r
}

// then runs step on the settled value of pending in a new goroutine. A panic
// in step is recovered and travels downstream as a panicked result, so that
// it surfaces in Await instead of crashing the process.
func then[In, Out any](ctx context.Context, pending <-chan rop.Result[In],
	step func(input rop.Result[In]) rop.Result[Out]) <-chan rop.Result[Out] {
	return core.Go(func() (out rop.Result[Out]) {
		input := settle(ctx, pending)
		if input.IsPanicked() {
			return rop.FailFrom[In, Out](input)
		}

		defer func() {
			if r := recover(); r != nil {
				out = rop.Panicked[Out](r)
			}
		}()
		return step(input)
	})
}

// start invokes f right away and returns a func waiting for its value. A panic
// raised while starting is reported by the waiter.
func start[In, V any](ctx context.Context, input rop.Result[In],
	f func(ctx context.Context, r In) <-chan V) func() (V, error) {
	var ch <-chan V
	if fault := rop.Recover(func() { ch = f(ctx, input.Value()) }); fault != nil {
		return func() (V, error) {
			var zero V
			return zero, fault
		}
	}
	return func() (V, error) {
		return core.Receive(ctx, ch)
	}
}

func settled[T any](r rop.Result[T]) func() rop.Result[T] {
	return func() rop.Result[T] { return r }
}

func requirePending(pending any) {
	rop.RequireFunc(pending, "pending result")
}
