package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// Check pairs a predicate with the error reported when it does not hold.
type Check[T any] struct {
	Predicate func(ctx context.Context, v T) bool
	Err       rop.ErrorReason
}

func NewCheck[T any](predicate func(ctx context.Context, v T) bool, err rop.ErrorReason) Check[T] {
	return Check[T]{Predicate: predicate, Err: err}
}

const (
	DefaultNotNilMessage = "value must not be nil"
	DefaultWhereMessage  = "predicate not satisfied"
)

// Map transforms the value of a successful result. A panic in onSuccess
// yields a failed result with a single ExceptionError.
func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {
	rop.RequireFunc(onSuccess, "map func")

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	var out Out
	if fault := rop.Recover(func() { out = onSuccess(ctx, input.Value()) }); fault != nil {
		return rop.FailLike[In, Out](input, rop.NewExceptionError(fault))
	}
	return rop.SuccessFrom(input, out)
}

// Bind sequences a step that returns its own result. Success reasons
// accumulate along the chain.
func Bind[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {
	rop.RequireFunc(onSuccess, "bind func")

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	var next rop.Result[Out]
	if fault := rop.Recover(func() { next = onSuccess(ctx, input.Value()) }); fault != nil {
		return rop.FailLike[In, Out](input, rop.NewExceptionError(fault))
	}
	return rop.Continue(input, next)
}

// Tap runs a side effect on success and returns input unchanged. Panics in
// onSuccess are not recovered.
func Tap[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {
	rop.RequireFunc(onSuccess, "tap func")

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func Ensure[T any](ctx context.Context,
	input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	err rop.ErrorReason) rop.Result[T] {
	return EnsureAll(ctx, input, Check[T]{Predicate: predicate, Err: err})
}

// EnsureAll evaluates every check against the value, without stopping at the
// first failure, and reports one error per failing check in order. A rejected
// result keeps its Success reasons but not its value.
func EnsureAll[T any](ctx context.Context, input rop.Result[T], checks ...Check[T]) rop.Result[T] {
	for i, c := range checks {
		if c.Predicate == nil || rop.IsNil(c.Err) {
			panic(rop.InvalidArgument("check at index %d needs a predicate and an error", i))
		}
	}

	if input.IsFailure() {
		return input
	}

	v := input.Value()
	failed := make([]rop.ErrorReason, 0, len(checks))
	for _, c := range checks {
		var ok bool
		if fault := rop.Recover(func() { ok = c.Predicate(ctx, v) }); fault != nil {
			failed = append(failed, rop.NewExceptionError(fault))
			continue
		}
		if !ok {
			failed = append(failed, c.Err)
		}
	}

	if len(failed) == 0 {
		return input
	}
	return rop.Reject[T, T](input, failed...)
}

// EnsureNotNil fails a result holding a nil pointer, map, slice, chan, func
// or interface.
func EnsureNotNil[T any](ctx context.Context, input rop.Result[T], message ...string) rop.Result[T] {
	return Ensure(ctx, input, func(_ context.Context, v T) bool {
		return !rop.IsNil(v)
	}, rop.NewError(messageOr(DefaultNotNilMessage, message)))
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, rop.Success(input), validate)
}

// AndValidate is Ensure for validators that report their own message.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {
	rop.RequireFunc(validate, "validate func")

	if input.IsFailure() {
		return input
	}

	var (
		valid  bool
		errMsg string
	)
	if fault := rop.Recover(func() { valid, errMsg = validate(ctx, input.Value()) }); fault != nil {
		return rop.FailLike[T, T](input, rop.NewExceptionError(fault))
	}
	if valid {
		return input
	}
	return rop.Reject[T, T](input, rop.NewError(errMsg))
}

// Try calls a function returning (Out, error). A returned error, or a panic,
// becomes the single reason of a failed result.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {
	rop.RequireFunc(onTryExecute, "try func")

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	var (
		out Out
		err error
	)
	if fault := rop.Recover(func() { out, err = onTryExecute(ctx, input.Value()) }); fault != nil {
		err = fault
	}
	if err != nil {
		return rop.FailLike[In, Out](input, rop.ReasonOf(err))
	}
	return rop.SuccessFrom(input, out)
}

func messageOr(def string, message []string) string {
	if len(message) > 0 && message[0] != "" {
		return message[0]
	}
	return def
}
