package rop

import (
	"errors"
	"fmt"
	"time"
)

const (
	ErrorTypeConversion = "Conversion"
	SeverityWarning     = "Warning"
)

// Reason is a unit of context attached to an Outcome. WithTag and CausedBy
// mutate the reason, so finish building it before attaching it; a reason held
// by outcomes on several goroutines must not be changed. The set of
// implementations is closed: *SuccessReason, *Error, *ExceptionError and
// *ConversionError.
type Reason interface {
	Message() string
	// Tags returns a copy of the reason's annotations.
	Tags() Tags
	sealed()
}

// ErrorReason is a Reason that marks failure. Every ErrorReason is also a Go
// error, so errors.Is / errors.As work across outcomes.
type ErrorReason interface {
	Reason
	error
	errorReason()
}

type meta struct {
	message string
	tags    Tags
}

func (m *meta) Message() string { return m.message }
func (m *meta) Tags() Tags      { return m.tags.clone() }
func (m *meta) sealed()         {}

// SuccessReason annotates a completed step.
type SuccessReason struct {
	meta
}

func NewSuccess(message string) *SuccessReason {
	return &SuccessReason{meta: meta{message: message}}
}

// WithTag sets key on the reason and returns it for chaining.
func (s *SuccessReason) WithTag(key string, value any) *SuccessReason {
	s.tags.set(key, value)
	return s
}

func (s *SuccessReason) String() string { return s.message }

// Error is a domain failure.
type Error struct {
	meta
	causes []ErrorReason
}

func NewError(message string) *Error {
	return &Error{meta: meta{message: message}}
}

// Errorf builds an Error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return NewError(fmt.Sprintf(format, args...))
}

// WithTag sets key on the reason and returns it for chaining.
func (e *Error) WithTag(key string, value any) *Error {
	e.tags.set(key, value)
	return e
}

// CausedBy records cause as an underlying reason of e.
func (e *Error) CausedBy(cause ErrorReason) *Error {
	if IsNil(cause) {
		panic(InvalidArgument("cause must not be nil"))
	}
	e.causes = append(e.causes, cause)
	return e
}

func (e *Error) Causes() []ErrorReason {
	out := make([]ErrorReason, len(e.causes))
	copy(out, e.causes)
	return out
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() []error {
	if len(e.causes) == 0 {
		return nil
	}
	out := make([]error, 0, len(e.causes))
	for _, c := range e.causes {
		out = append(out, c)
	}
	return out
}

func (e *Error) errorReason() {}

// ExceptionError wraps a Go error or a recovered panic that escaped a user
// function. The cause's message and type are mirrored into tags.
type ExceptionError struct {
	meta
	cause error
}

func NewExceptionError(err error) *ExceptionError {
	if err == nil {
		panic(InvalidArgument("exception error requires a non-nil cause"))
	}
	e := &ExceptionError{meta: meta{message: err.Error()}, cause: err}
	e.tags.set(TagExceptionMessage, err.Error())
	e.tags.set(TagExceptionType, exceptionType(err))
	if inner := errors.Unwrap(err); inner != nil {
		e.tags.set(TagInnerExceptionMessage, inner.Error())
	}
	return e
}

func exceptionType(err error) string {
	if p, ok := err.(*PanicError); ok {
		return fmt.Sprintf("%T", p.Value)
	}
	return fmt.Sprintf("%T", err)
}

// WithTag sets key on the reason and returns it for chaining.
func (e *ExceptionError) WithTag(key string, value any) *ExceptionError {
	e.tags.set(key, value)
	return e
}

func (e *ExceptionError) Cause() error  { return e.cause }
func (e *ExceptionError) Error() string { return e.message }
func (e *ExceptionError) Unwrap() error { return e.cause }
func (e *ExceptionError) errorReason()  {}

// ConversionError reports a conversion that was handed a non-nil but empty
// collection of errors.
type ConversionError struct {
	meta
}

func newConversionError(path string, itemCount int) *ConversionError {
	e := &ConversionError{meta: meta{
		message: fmt.Sprintf("conversion from %s produced no errors (%d items supplied)", path, itemCount),
	}}
	e.tags.set(TagErrorType, ErrorTypeConversion)
	e.tags.set(TagSeverity, SeverityWarning)
	e.tags.set(TagTimestamp, time.Now().UTC())
	e.tags.set(TagConversionPath, path)
	e.tags.set(TagItemCount, itemCount)
	return e
}

// WithTag sets key on the reason and returns it for chaining.
func (e *ConversionError) WithTag(key string, value any) *ConversionError {
	e.tags.set(key, value)
	return e
}

func (e *ConversionError) Error() string { return e.message }
func (e *ConversionError) errorReason()  {}
