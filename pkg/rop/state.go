package rop

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// state is the immutable core shared by Outcome and Result. Every transition
// copies the reason slice, so values handed out earlier never change.
type state struct {
	id        uuid.UUID
	createdAt time.Time
	reasons   []Reason
	isSuccess bool
	// fault is set when the state stands for a panic raised on another
	// goroutine.
	fault *fault
}

func newState(isSuccess bool, reasons []Reason) state {
	return state{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		reasons:   reasons,
		isSuccess: isSuccess,
	}
}

func failedState(errs []ErrorReason) state {
	if len(errs) == 0 {
		panic(InvalidArgument("at least one error reason is required"))
	}
	reasons := make([]Reason, 0, len(errs))
	for i, e := range errs {
		if IsNil(e) {
			panic(InvalidArgument("error reason at index %d is nil", i))
		}
		reasons = append(reasons, e)
	}
	return newState(false, reasons)
}

func errorsFromMessages(msgs []string) []ErrorReason {
	if len(msgs) == 0 {
		panic(InvalidArgument("at least one error message is required"))
	}
	errs := make([]ErrorReason, 0, len(msgs))
	for _, m := range msgs {
		errs = append(errs, NewError(m))
	}
	return errs
}

// appended returns a copy of s with rs added. The flag follows the last
// appended reason: an Error fails the state, a Success makes it successful
// again, whatever came before.
func (s state) appended(rs ...Reason) state {
	out := s
	out.reasons = make([]Reason, len(s.reasons), len(s.reasons)+len(rs))
	copy(out.reasons, s.reasons)

	for i, r := range rs {
		if IsNil(r) {
			panic(InvalidArgument("reason at index %d is nil", i))
		}
		out.reasons = append(out.reasons, r)

		switch r.(type) {
		case *SuccessReason:
			out.isSuccess = true
		case ErrorReason:
			out.isSuccess = false
		}
	}
	return out
}

func (s state) IsSuccess() bool { return s.isSuccess }
func (s state) IsFailure() bool { return !s.isSuccess }

// Id identifies the pipeline an outcome belongs to. Factories mint a new id;
// transitions and combinators keep the id of their source.
func (s state) Id() uuid.UUID { return s.id }

// CreatedAt time creation (UTC)
func (s state) CreatedAt() time.Time { return s.createdAt }

// Reasons returns every reason in the order it was attached.
func (s state) Reasons() []Reason {
	out := make([]Reason, len(s.reasons))
	copy(out, s.reasons)
	return out
}

// Errors returns the error reasons in order.
func (s state) Errors() []ErrorReason {
	out := make([]ErrorReason, 0, len(s.reasons))
	for _, r := range s.reasons {
		if e, ok := r.(ErrorReason); ok {
			out = append(out, e)
		}
	}
	return out
}

// Successes returns the success reasons in order.
func (s state) Successes() []*SuccessReason {
	out := make([]*SuccessReason, 0, len(s.reasons))
	for _, r := range s.reasons {
		if sr, ok := r.(*SuccessReason); ok {
			out = append(out, sr)
		}
	}
	return out
}

// Err joins every error reason, or returns nil when there are none.
func (s state) Err() error {
	errs := s.Errors()
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, 0, len(errs))
	for _, e := range errs {
		joined = append(joined, e)
	}
	return errors.Join(joined...)
}

func (s state) successReasons() []Reason {
	out := make([]Reason, 0, len(s.reasons))
	for _, r := range s.reasons {
		if _, ok := r.(*SuccessReason); ok {
			out = append(out, r)
		}
	}
	return out
}

func (s state) describe() string {
	parts := make([]string, 0, len(s.reasons))
	for _, r := range s.reasons {
		switch r.(type) {
		case *SuccessReason:
			parts = append(parts, "success: "+r.Message())
		default:
			parts = append(parts, "error: "+r.Message())
		}
	}
	return fmt.Sprintf("IsSuccess=%t, Reasons=[%s]", s.isSuccess, strings.Join(parts, "; "))
}

func successesToReasons(ss []*SuccessReason) []Reason {
	out := make([]Reason, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func errorsToReasons(es []ErrorReason) []Reason {
	out := make([]Reason, 0, len(es))
	for _, e := range es {
		out = append(out, e)
	}
	return out
}
