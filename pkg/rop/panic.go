package rop

import "runtime/debug"

type fault struct {
	value any
	stack []byte
}

// Panicked returns a failed result standing for a panic recovered on another
// goroutine. The panic is kept as an ExceptionError reason so the result reads
// like any other failure; Repanic raises the original value again.
func Panicked[T any](value any) Result[T] {
	s := failedState([]ErrorReason{NewExceptionError(panicToError(value))})
	s.fault = &fault{value: value, stack: debug.Stack()}
	return Result[T]{state: s}
}

// IsPanicked reports whether the outcome carries a panic from another
// goroutine.
func (s state) IsPanicked() bool { return s.fault != nil }

// PanicStack returns the stack captured where the carried panic was
// recovered, or nil.
func (s state) PanicStack() []byte {
	if s.fault == nil {
		return nil
	}
	return s.fault.stack
}

// Repanic panics with the carried panic value. It does nothing for an
// outcome that carries no panic.
func (s state) Repanic() {
	if s.fault != nil {
		panic(s.fault.value)
	}
}
