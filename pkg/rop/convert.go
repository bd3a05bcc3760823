package rop

// Conversions bridge plain values and errors into results.
//
// A nil argument is a programmer error and panics. A non-nil but empty
// collection is treated as data: it yields a failed result carrying a single
// ConversionError instead of panicking. Calling Fail with an empty list still
// panics, since the caller chose to fail explicitly.

const (
	pathReasons = "[]rop.ErrorReason"
	pathErrors  = "[]error"
	pathJoined  = "joined error"
)

func From[T any](v T) Result[T] {
	return Success(v)
}

func FromReason[T any](e ErrorReason) Result[T] {
	if IsNil(e) {
		panic(InvalidArgument("error reason must not be nil"))
	}
	return Fail[T](e)
}

func FromReasons[T any](errs []ErrorReason) Result[T] {
	if errs == nil {
		panic(InvalidArgument("error reasons must not be nil"))
	}
	if len(errs) == 0 {
		return Fail[T](newConversionError(pathReasons, len(errs)))
	}
	return Fail[T](errs...)
}

// FromError converts a Go error. Reasons are kept as they are, joined errors
// are split into one reason each and any other error becomes an
// ExceptionError.
func FromError[T any](err error) Result[T] {
	if IsNil(err) {
		panic(InvalidArgument("error must not be nil"))
	}
	if e, ok := err.(ErrorReason); ok {
		return Fail[T](e)
	}

	parts := GetErrors(err)
	reasons := make([]ErrorReason, 0, len(parts))
	for _, p := range parts {
		if IsNil(p) {
			continue
		}
		reasons = append(reasons, ReasonOf(p))
	}
	if len(reasons) == 0 {
		return Fail[T](newConversionError(pathJoined, len(parts)))
	}
	return Fail[T](reasons...)
}

func FromErrors[T any](errs []error) Result[T] {
	if errs == nil {
		panic(InvalidArgument("errors must not be nil"))
	}
	if len(errs) == 0 {
		return Fail[T](newConversionError(pathErrors, len(errs)))
	}
	reasons := make([]ErrorReason, 0, len(errs))
	for i, e := range errs {
		if IsNil(e) {
			panic(InvalidArgument("error at index %d is nil", i))
		}
		reasons = append(reasons, ReasonOf(e))
	}
	return Fail[T](reasons...)
}

// FromPair converts the usual (value, error) return pair.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return FromError[T](err)
	}
	return Success(v)
}

// ReasonOf keeps err when it already is a reason and wraps it in an
// ExceptionError otherwise.
func ReasonOf(err error) ErrorReason {
	if e, ok := err.(ErrorReason); ok {
		return e
	}
	return NewExceptionError(err)
}
