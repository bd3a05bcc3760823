package core

import (
	"context"
	"errors"
)

// ErrClosed is returned by Receive when the channel closes without a value.
var ErrClosed = errors.New("core: channel closed without a value")

// Ready returns a closed channel that already holds v.
func Ready[T any](v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v
	close(ch)
	return ch
}

// Go runs fn in a new goroutine and delivers its return value. The channel is
// buffered, so the goroutine never blocks on an abandoned receiver.
func Go[T any](fn func() T) <-chan T {
	ch := make(chan T, 1)
	go func() {
		defer close(ch)
		ch <- fn()
	}()
	return ch
}

// Receive waits for the first value on ch.
func Receive[T any](ctx context.Context, ch <-chan T) (T, error) {
	var zero T
	if ch == nil {
		return zero, ErrClosed
	}

	select {
	case v, ok := <-ch:
		if !ok {
			return zero, ErrClosed
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// ToChanMany emits values in order and closes the channel.
func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect receives one value from each channel, in order.
func Collect[T any](ctx context.Context, chs ...<-chan T) ([]T, error) {
	res := make([]T, 0, len(chs))
	for _, ch := range chs {
		v, err := Receive(ctx, ch)
		if err != nil {
			return res, err
		}
		res = append(res, v)
	}
	return res, nil
}
