package rop

import "fmt"

// Result is an Outcome that carries a value on success.
type Result[T any] struct {
	state
	value T
}

func Success[T any](v T) Result[T] {
	return Result[T]{state: newState(true, nil), value: v}
}

// Fail returns a failed result carrying errs. It panics when errs is empty or
// holds a nil reason.
func Fail[T any](errs ...ErrorReason) Result[T] {
	return Result[T]{state: failedState(errs)}
}

// FailMsg returns a failed result with one Error per message.
func FailMsg[T any](msgs ...string) Result[T] {
	return Result[T]{state: failedState(errorsFromMessages(msgs))}
}

// Value returns the successful value. Reading it from a failed result panics
// with an error wrapping ErrInvalidAccess that lists every error message.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(invalidAccess(r.Errors()))
	}
	return r.value
}

// ValueOrDefault returns the value on success and the zero value otherwise.
func (r Result[T]) ValueOrDefault() T {
	if !r.isSuccess {
		var zero T
		return zero
	}
	return r.value
}

func (r Result[T]) ValueOr(fallback T) T {
	if !r.isSuccess {
		return fallback
	}
	return r.value
}

// Outcome drops the value.
func (r Result[T]) Outcome() Outcome {
	return Outcome{state: r.state}
}

func (r Result[T]) WithReason(reason Reason) Result[T] {
	return Result[T]{state: r.appended(reason), value: r.value}
}

func (r Result[T]) WithSuccess(msg string) Result[T] {
	return r.WithReason(NewSuccess(msg))
}

func (r Result[T]) WithSuccessReason(s *SuccessReason) Result[T] {
	return Result[T]{state: r.appended(successesToReasons([]*SuccessReason{s})...), value: r.value}
}

func (r Result[T]) WithError(msg string) Result[T] {
	return r.WithReason(NewError(msg))
}

func (r Result[T]) WithErrorReason(e ErrorReason) Result[T] {
	return Result[T]{state: r.appended(errorsToReasons([]ErrorReason{e})...), value: r.value}
}

func (r Result[T]) WithSuccesses(ss ...*SuccessReason) Result[T] {
	return Result[T]{state: r.appended(successesToReasons(ss)...), value: r.value}
}

func (r Result[T]) WithErrors(es ...ErrorReason) Result[T] {
	return Result[T]{state: r.appended(errorsToReasons(es)...), value: r.value}
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Result{Value=%v, %s}", r.value, r.describe())
	}
	return "Result{" + r.describe() + "}"
}

// ToResult attaches v to o.
func ToResult[T any](o Outcome, v T) Result[T] {
	return Result[T]{state: o.state, value: v}
}

// FailFrom moves a failed result to another value type, keeping its reasons
// and id.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{state: from.state}
}

// SuccessFrom builds a successful result holding v that carries forward the
// Success reasons of from.
func SuccessFrom[In, Out any](from Result[In], v Out) Result[Out] {
	s := from.state
	s.reasons = from.successReasons()
	s.isSuccess = true
	s.fault = nil
	return Result[Out]{state: s, value: v}
}

// Continue joins the result of a bound step to the result it was bound from:
// the Success reasons of prev come first, then every reason of next. The
// state and value are those of next.
func Continue[In, Out any](prev Result[In], next Result[Out]) Result[Out] {
	s := prev.state
	s.reasons = append(prev.successReasons(), next.reasons...)
	s.isSuccess = next.isSuccess
	s.fault = next.fault
	return Result[Out]{state: s, value: next.value}
}

// FailLike returns a failed result carrying only errs, in the same lineage
// (same id) as from.
func FailLike[In, Out any](from Result[In], errs ...ErrorReason) Result[Out] {
	s := failedState(errs)
	s.id, s.createdAt = from.id, from.createdAt
	return Result[Out]{state: s}
}

// Reject fails from with errs. The Success reasons of from are kept ahead of
// errs and the value is dropped, so a later success annotation cannot expose
// a rejected value.
func Reject[In, Out any](from Result[In], errs ...ErrorReason) Result[Out] {
	s := from.state
	s.reasons = append(from.successReasons(), failedState(errs).reasons...)
	s.isSuccess = false
	return Result[Out]{state: s}
}
