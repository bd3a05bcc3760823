package mass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

func TestFromOutcome_ContinuesTryAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ok := Bind(ctx, FromOutcome(ctx, rop.TryAsync(ctx, func(ctx context.Context) error { return nil })),
		func(ctx context.Context, _ struct{}) rop.Result[string] { return rop.Success("connected") })
	assert.Equal(t, "connected", Await(ctx, ok).Value())

	called := false
	failed := Map(ctx, FromOutcome(ctx, rop.TryAsync(ctx, func(ctx context.Context) error {
		return errors.New("refused")
	})), func(ctx context.Context, _ struct{}) string {
		called = true
		return ""
	})
	out := Await(ctx, failed)
	assert.False(t, called)
	assert.Equal(t, []string{"refused"}, messages(out.Errors()))
}

func TestToOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := rop.Success(3).WithSuccess("kept")

	o := AwaitOutcome(ctx, ToOutcome(ctx, FromResult(src)))
	assert.True(t, o.IsSuccess())
	assert.Equal(t, src.Id(), o.Id())
	assert.Len(t, o.Successes(), 1)
}

func TestAwaitOutcome_Closed(t *testing.T) {
	t.Parallel()

	closed := make(chan rop.Outcome)
	close(closed)

	o := AwaitOutcome(context.Background(), closed)
	require.True(t, o.IsFailure())
	assert.ErrorIs(t, o.Err(), core.ErrClosed)
}
