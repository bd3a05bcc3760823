package mass

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/outcome/pkg/rop"
)

func TestSelect_And_SelectMany(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Select(ctx, FromValue(8), func(ctx context.Context, v int) string { return strconv.Itoa(v) })
	n := SelectMany(ctx, s, func(ctx context.Context, v string) rop.Result[int] {
		return rop.FromPair(strconv.Atoi(v + "0"))
	})

	assert.Equal(t, 80, Await(ctx, n).Value())
}

func TestSelectManyWith(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := Await(ctx, SelectManyWith(ctx, FromValue(2),
		func(ctx context.Context, v int) rop.Result[string] { return rop.Success("x") },
		func(ctx context.Context, v int, s string) string { return s + strconv.Itoa(v) },
	))

	assert.Equal(t, "x2", out.Value())
}

func TestWhere(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	odd := func(ctx context.Context, v int) bool { return v%2 == 1 }

	assert.True(t, Await(ctx, Where(ctx, FromValue(3), odd)).IsSuccess())
	assert.Equal(t, []string{"must be odd"}, messages(Await(ctx, Where(ctx, FromValue(4), odd, "must be odd")).Errors()))
}
