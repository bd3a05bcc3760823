package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

// FromOutcome continues a pending outcome, such as the one returned by
// rop.TryAsync, as a pending result carrying no value.
func FromOutcome(ctx context.Context, pending <-chan rop.Outcome) <-chan rop.Result[struct{}] {
	requirePending(pending)

	return core.Go(func() rop.Result[struct{}] {
		return rop.ToResult(settleOutcome(ctx, pending), struct{}{})
	})
}

// ToOutcome drops the value of a pending result.
func ToOutcome[T any](ctx context.Context, pending <-chan rop.Result[T]) <-chan rop.Outcome {
	requirePending(pending)

	return core.Go(func() rop.Outcome {
		return settle(ctx, pending).Outcome()
	})
}

// AwaitOutcome is Await for pending outcomes.
func AwaitOutcome(ctx context.Context, pending <-chan rop.Outcome) rop.Outcome {
	o := settleOutcome(ctx, pending)
	o.Repanic()
	return o
}

func settleOutcome(ctx context.Context, pending <-chan rop.Outcome) rop.Outcome {
	o, err := core.Receive(ctx, pending)
	if err != nil {
		return rop.Failure(rop.NewExceptionError(err))
	}
	return o
}
