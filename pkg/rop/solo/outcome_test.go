package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/rop"
)

func TestBindOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	connect := rop.Try(func() error { return nil }).WithSuccess("connected")

	out := BindOutcome(ctx, connect, func(ctx context.Context) rop.Outcome {
		return rop.Ok().WithSuccess("migrated")
	})
	require.True(t, out.IsSuccess())
	assert.Equal(t, connect.Id(), out.Id())
	assert.Len(t, out.Successes(), 2)

	called := false
	failed := BindOutcome(ctx, rop.Try(func() error { return errors.New("refused") }),
		func(ctx context.Context) rop.Outcome {
			called = true
			return rop.Ok()
		})
	assert.False(t, called)
	assert.Equal(t, []string{"refused"}, messages(failed.Errors()))
}

func TestBindOutcomeTo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	out := BindOutcomeTo(ctx, rop.Ok(), func(ctx context.Context) rop.Result[int] { return rop.Success(3) })
	assert.Equal(t, 3, out.Value())

	failed := BindOutcomeTo(ctx, rop.FailureMsg("down"), func(ctx context.Context) rop.Result[int] {
		return rop.Success(3)
	})
	assert.Equal(t, []string{"down"}, messages(failed.Errors()))
}

func TestMapOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	out := MapOutcome(ctx, rop.Ok().WithSuccess("ready"), func(ctx context.Context) string { return "v" })
	assert.Equal(t, "v", out.Value())
	assert.Len(t, out.Successes(), 1)

	boom := MapOutcome(ctx, rop.Ok(), func(ctx context.Context) string { panic("boom") })
	require.True(t, boom.IsFailure())
	assert.IsType(t, &rop.ExceptionError{}, boom.Errors()[0])
}

func TestTapOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0
	tap := func(ctx context.Context) { calls++ }

	in := rop.Ok().WithSuccess("ready")
	assert.Equal(t, in.Reasons(), TapOutcome(ctx, in, tap).Reasons())
	TapOutcome(ctx, rop.FailureMsg("x"), tap)
	assert.Equal(t, 1, calls)
}

func TestEnsureOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	err := rop.NewError("not ready")

	assert.True(t, EnsureOutcome(ctx, rop.Ok(), func(ctx context.Context) bool { return true }, err).IsSuccess())

	failed := EnsureOutcome(ctx, rop.Ok(), func(ctx context.Context) bool { return false }, err)
	require.True(t, failed.IsFailure())
	assert.Same(t, err, failed.Errors()[0])
}

func TestOutcomeForms_NilFuncPanics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for name, fn := range map[string]func(){
		"bind":    func() { BindOutcome(ctx, rop.Ok(), nil) },
		"bind to": func() { BindOutcomeTo[int](ctx, rop.Ok(), nil) },
		"map":     func() { MapOutcome[int](ctx, rop.Ok(), nil) },
		"tap":     func() { TapOutcome(ctx, rop.Ok(), nil) },
		"ensure":  func() { EnsureOutcome(ctx, rop.Ok(), nil, rop.NewError("e")) },
	} {
		assert.ErrorIs(t, rop.Recover(fn), rop.ErrInvalidArgument, name)
	}
}
