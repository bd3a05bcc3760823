package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Value(t *testing.T) {
	t.Parallel()

	r := Success(42)
	assert.Equal(t, 42, r.Value())
	assert.Equal(t, 42, r.Value())
	assert.Equal(t, 42, r.ValueOrDefault())
	assert.Equal(t, 42, r.ValueOr(7))
}

func TestResult_ValueOnFailurePanics(t *testing.T) {
	t.Parallel()

	r := FailMsg[int]("first", "second")

	err := Recover(func() { r.Value() })
	require.ErrorIs(t, err, ErrInvalidAccess)
	assert.Contains(t, err.Error(), "first; second")

	assert.Zero(t, r.ValueOrDefault())
	assert.Equal(t, 7, r.ValueOr(7))
}

func TestResult_ErrorThenSuccessRestoresValue(t *testing.T) {
	t.Parallel()

	r := Success("v").WithError("temporary").WithSuccess("fixed")

	require.True(t, r.IsSuccess())
	assert.Equal(t, "v", r.Value())
	assert.Len(t, r.Errors(), 1)
}

func TestResult_Outcome(t *testing.T) {
	t.Parallel()

	r := Success(1).WithSuccess("s")
	o := r.Outcome()

	assert.True(t, o.IsSuccess())
	assert.Equal(t, r.Id(), o.Id())
	assert.Equal(t, r.Reasons(), o.Reasons())

	back := ToResult(o, "x")
	assert.Equal(t, "x", back.Value())
	assert.Equal(t, r.Id(), back.Id())
}

func TestResult_ErrJoinsReasons(t *testing.T) {
	t.Parallel()

	cause := NewError("cause")
	r := Fail[int](NewError("outer").CausedBy(cause), NewError("other"))

	assert.ErrorIs(t, r.Err(), cause)
	var target *Error
	require.True(t, errors.As(r.Err(), &target))
	assert.Equal(t, "outer", target.Message())
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Result{Value=5, IsSuccess=true, Reasons=[]}", Success(5).String())
	assert.Equal(t, "Result{IsSuccess=false, Reasons=[error: no]}", FailMsg[int]("no").String())
}

func TestLineage(t *testing.T) {
	t.Parallel()

	src := Success(3).WithSuccess("loaded").WithError("warn").WithSuccess("accepted")

	mapped := SuccessFrom(src, "3")
	assert.Equal(t, src.Id(), mapped.Id())
	assert.Equal(t, src.CreatedAt(), mapped.CreatedAt())
	assert.Len(t, mapped.Reasons(), 2)
	assert.Empty(t, mapped.Errors())

	failed := FailLike[int, string](src, NewError("boom"))
	assert.Equal(t, src.Id(), failed.Id())
	require.Len(t, failed.Reasons(), 1)
	assert.Equal(t, "boom", failed.Reasons()[0].Message())

	moved := FailFrom[string, int](failed)
	assert.True(t, moved.IsFailure())
	assert.Equal(t, failed.Reasons(), moved.Reasons())
}

func TestContinue(t *testing.T) {
	t.Parallel()

	prev := Success(1).WithSuccess("step one").WithError("noise").WithSuccess("cleared")

	ok := Continue(prev, Success("two").WithSuccess("step two"))
	require.True(t, ok.IsSuccess())
	assert.Equal(t, "two", ok.Value())
	assert.Equal(t, prev.Id(), ok.Id())
	msgs := make([]string, 0)
	for _, r := range ok.Reasons() {
		msgs = append(msgs, r.Message())
	}
	assert.Equal(t, []string{"step one", "cleared", "step two"}, msgs)

	failed := Continue(prev, FailMsg[string]("nope"))
	assert.True(t, failed.IsFailure())
	assert.Len(t, failed.Successes(), 2)
	assert.Len(t, failed.Errors(), 1)
}

func TestFail_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Recover(func() { Fail[int]() }), ErrInvalidArgument)
	assert.ErrorIs(t, Recover(func() { FailMsg[int]() }), ErrInvalidArgument)
	assert.ErrorIs(t, Recover(func() { Fail[int](nil) }), ErrInvalidArgument)
}

func TestResult_ValueOnFailureIsRepeatable(t *testing.T) {
	t.Parallel()

	r := FailMsg[int]("gone")

	first := Recover(func() { r.Value() })
	second := Recover(func() { r.Value() })
	require.ErrorIs(t, first, ErrInvalidAccess)
	require.ErrorIs(t, second, ErrInvalidAccess)
	assert.Equal(t, first.Error(), second.Error())
	assert.True(t, r.IsFailure())
	assert.Len(t, r.Errors(), 1)
}

func TestReject(t *testing.T) {
	t.Parallel()

	from := Success(7).WithSuccess("parsed")
	r := Reject[int, int](from, NewError("too big"))

	require.True(t, r.IsFailure())
	assert.Equal(t, from.Id(), r.Id())
	require.Len(t, r.Reasons(), 2)
	assert.Equal(t, "parsed", r.Reasons()[0].Message())
	assert.Equal(t, "too big", r.Reasons()[1].Message())

	revived := r.WithSuccess("later")
	require.True(t, revived.IsSuccess())
	assert.Zero(t, revived.Value())
}

func TestPanicked(t *testing.T) {
	t.Parallel()

	r := Panicked[int]("boom")

	require.True(t, r.IsFailure())
	require.True(t, r.IsPanicked())
	assert.NotEmpty(t, r.PanicStack())
	require.Len(t, r.Errors(), 1)
	assert.IsType(t, &ExceptionError{}, r.Errors()[0])
	assert.Equal(t, "boom", r.Errors()[0].Message())
	assert.PanicsWithValue(t, "boom", r.Repanic)

	carried := FailFrom[int, string](r)
	assert.True(t, carried.IsPanicked())
	assert.PanicsWithValue(t, "boom", carried.Repanic)

	plain := FailMsg[int]("x")
	assert.False(t, plain.IsPanicked())
	assert.Nil(t, plain.PanicStack())
	assert.NotPanics(t, plain.Repanic)

	cleared := SuccessFrom(r, 1)
	assert.False(t, cleared.IsPanicked())
}
