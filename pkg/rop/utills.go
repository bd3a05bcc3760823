package rop

import (
	"context"
	"errors"
	"reflect"
	"strings"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, chan,
// func or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens a joined error into its parts. Only errors whose message
// is the newline-joined messages of their parts, as errors.Join builds them,
// are split; a wrapper such as fmt.Errorf("ctx: %w, %w", a, b) is kept whole
// so its own text is not lost.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	parts := e.Unwrap()
	msgs := make([]string, 0, len(parts))
	for _, p := range parts {
		if !IsNil(p) {
			msgs = append(msgs, p.Error())
		}
	}
	if len(msgs) == 0 || err.Error() == strings.Join(msgs, "\n") {
		return parts
	}
	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
