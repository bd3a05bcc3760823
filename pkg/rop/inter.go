package rop

import (
	"time"

	"github.com/google/uuid"
)

// Reader is the read surface of an outcome. Adapters outside this package
// must only rely on it.
type Reader interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	IsFailure() bool
	// Reasons returns success and error reasons in order
	Reasons() []Reason
	Errors() []ErrorReason
	Successes() []*SuccessReason
	// Err returns the joined error reasons, nil on success without errors
	Err() error
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueReader extends Reader with access to the carried value.
type ValueReader[T any] interface {
	Reader
	// Value returns the successful value, panics on failure
	Value() T
	ValueOrDefault() T
}

var (
	_ Reader           = Outcome{}
	_ ValueReader[int] = Result[int]{}
)
