package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyJoin struct{}

func (emptyJoin) Error() string   { return "empty" }
func (emptyJoin) Unwrap() []error { return nil }

func conversionTag(t *testing.T, r Reader, key string) any {
	t.Helper()
	require.True(t, r.IsFailure())
	require.Len(t, r.Errors(), 1)
	ce, ok := r.Errors()[0].(*ConversionError)
	require.True(t, ok, "expected a conversion error, got %T", r.Errors()[0])
	v, _ := ce.Tags().Get(key)
	return v
}

func TestFrom(t *testing.T) {
	t.Parallel()

	r := From("v")
	require.True(t, r.IsSuccess())
	assert.Equal(t, "v", r.Value())
}

func TestFromReason(t *testing.T) {
	t.Parallel()

	e := NewError("bad")
	r := FromReason[int](e)
	require.True(t, r.IsFailure())
	assert.Same(t, e, r.Errors()[0])

	var nilErr *Error
	assert.ErrorIs(t, Recover(func() { FromReason[int](nilErr) }), ErrInvalidArgument)
}

func TestFromReasons(t *testing.T) {
	t.Parallel()

	r := FromReasons[int]([]ErrorReason{NewError("a"), NewError("b")})
	assert.Len(t, r.Errors(), 2)

	empty := FromReasons[int]([]ErrorReason{})
	assert.Equal(t, pathReasons, conversionTag(t, empty, TagConversionPath))
	assert.Equal(t, 0, conversionTag(t, empty, TagItemCount))

	assert.ErrorIs(t, Recover(func() { FromReasons[int](nil) }), ErrInvalidArgument)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	reason := NewError("domain")
	kept := FromError[int](reason)
	assert.Same(t, reason, kept.Errors()[0])

	plain := FromError[int](errors.New("io"))
	require.Len(t, plain.Errors(), 1)
	assert.IsType(t, &ExceptionError{}, plain.Errors()[0])
	assert.Equal(t, "io", plain.Errors()[0].Message())

	joined := FromError[int](errors.Join(errors.New("a"), reason))
	require.Len(t, joined.Errors(), 2)
	assert.IsType(t, &ExceptionError{}, joined.Errors()[0])
	assert.Same(t, reason, joined.Errors()[1])

	empty := FromError[int](emptyJoin{})
	assert.Equal(t, pathJoined, conversionTag(t, empty, TagConversionPath))

	assert.ErrorIs(t, Recover(func() { FromError[int](nil) }), ErrInvalidArgument)
}

func TestFromErrors(t *testing.T) {
	t.Parallel()

	r := FromErrors[int]([]error{errors.New("a"), NewError("b")})
	require.Len(t, r.Errors(), 2)
	assert.IsType(t, &ExceptionError{}, r.Errors()[0])
	assert.IsType(t, &Error{}, r.Errors()[1])

	empty := FromErrors[string]([]error{})
	assert.Equal(t, pathErrors, conversionTag(t, empty, TagConversionPath))
	assert.Equal(t, ErrorTypeConversion, conversionTag(t, empty, TagErrorType))

	assert.ErrorIs(t, Recover(func() { FromErrors[int](nil) }), ErrInvalidArgument)
	assert.ErrorIs(t, Recover(func() { FromErrors[int]([]error{errors.New("a"), nil}) }), ErrInvalidArgument)
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, FromPair(3, nil).Value())
	assert.True(t, FromPair(0, errors.New("x")).IsFailure())
}
