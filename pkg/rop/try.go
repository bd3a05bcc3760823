package rop

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop/core"
)

// ErrorFactory turns an error caught at the boundary into a reason.
type ErrorFactory func(err error) ErrorReason

// Try runs op and reports its error or panic as a failed outcome. The error is
// converted with factory when one is given, otherwise it is wrapped in an
// ExceptionError.
func Try(op func() error, factory ...ErrorFactory) Outcome {
	RequireFunc(op, "operation")

	if err := call(op); err != nil {
		return Failure(caught(err, factory))
	}
	return Ok()
}

// TryAsync runs op in its own goroutine. Cancellation of ctx while waiting is
// reported like any other error.
func TryAsync(ctx context.Context, op func(ctx context.Context) error, factory ...ErrorFactory) <-chan Outcome {
	RequireFunc(op, "operation")

	return core.Go(func() Outcome {
		done := core.Go(func() error {
			return call(func() error { return op(ctx) })
		})

		err, recvErr := core.Receive(ctx, done)
		if recvErr != nil {
			err = recvErr
		}
		if err != nil {
			return Failure(caught(err, factory))
		}
		return Ok()
	})
}

// TryValue runs op and returns its value, or a failed result when it returns
// an error or panics.
func TryValue[T any](op func() (T, error), factory ...ErrorFactory) Result[T] {
	RequireFunc(op, "operation")

	var v T
	if err := call(func() (err error) {
		v, err = op()
		return err
	}); err != nil {
		return Fail[T](caught(err, factory))
	}
	return Success(v)
}

// TryValueAsync is the asynchronous form of TryValue.
func TryValueAsync[T any](ctx context.Context, op func(ctx context.Context) (T, error),
	factory ...ErrorFactory) <-chan Result[T] {
	RequireFunc(op, "operation")

	return core.Go(func() Result[T] {
		done := core.Go(func() Result[T] {
			return TryValue(func() (T, error) { return op(ctx) }, factory...)
		})

		r, err := core.Receive(ctx, done)
		if err != nil {
			return Fail[T](caught(err, factory))
		}
		return r
	})
}

func call(op func() error) error {
	var err error
	if fault := Recover(func() { err = op() }); fault != nil {
		return fault
	}
	return err
}

func caught(err error, factory []ErrorFactory) ErrorReason {
	if len(factory) > 0 && factory[0] != nil {
		return factory[0](err)
	}
	return NewExceptionError(err)
}
