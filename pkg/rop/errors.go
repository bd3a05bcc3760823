package rop

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument marks programmer errors: nil functions, nil reasons or
	// empty reason lists handed to a factory. It is raised with panic.
	ErrInvalidArgument = errors.New("rop: invalid argument")

	// ErrInvalidAccess is raised with panic when Value is read on a failed result.
	ErrInvalidAccess = errors.New("rop: invalid access")
)

// InvalidArgument builds an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// RequireFunc panics with an invalid-argument error when fn is nil.
func RequireFunc(fn any, name string) {
	if IsNil(fn) {
		panic(InvalidArgument("%s must not be nil", name))
	}
}

func invalidAccess(errs []ErrorReason) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message())
	}
	return fmt.Errorf("%w: value of a failed result is not available: %s",
		ErrInvalidAccess, strings.Join(msgs, "; "))
}

// PanicError carries a recovered panic value that was not an error itself.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string {
	return fmt.Sprint(p.Value)
}

// Recover runs fn and returns the value it panicked with as an error, or nil
// when fn returned normally.
func Recover(fn func()) (fault error) {
	defer func() {
		if r := recover(); r != nil {
			fault = panicToError(r)
		}
	}()
	fn()
	return nil
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
