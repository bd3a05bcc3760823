package grpcx

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/protoadapt"

	"github.com/ib-77/outcome/pkg/rop"
)

// Domain is the ErrorInfo domain of details produced by this package.
const Domain = "github.com/ib-77/outcome"

// Kinds reported in ErrorInfo.Reason.
const (
	KindError      = "ERROR"
	KindException  = "EXCEPTION"
	KindConversion = "CONVERSION"
)

const (
	// MetadataMessage holds the reason message in ErrorInfo metadata. Tag
	// keys travel unprefixed, so the prefix keeps a tag named "message" intact.
	MetadataMessage = "rop.message"
	// TagKind is set on reasons decoded by FromError.
	TagKind = "Kind"
	// TagCode is set on the reason built from a status without details.
	TagCode = "Code"
)

// Error types understood by the code table. Set them on an Error with
// WithTag(rop.TagErrorType, ...).
const (
	ErrorTypeValidation   = "Validation"
	ErrorTypeNotFound     = "NotFound"
	ErrorTypeConflict     = "Conflict"
	ErrorTypePrecondition = "Precondition"
	ErrorTypeUnauthorized = "Unauthorized"
	ErrorTypeForbidden    = "Forbidden"
	ErrorTypeRateLimited  = "RateLimited"
	ErrorTypeUnavailable  = "Unavailable"
	ErrorTypeTimeout      = "Timeout"
)

var codeByErrorType = map[string]codes.Code{
	ErrorTypeValidation:     codes.InvalidArgument,
	ErrorTypeNotFound:       codes.NotFound,
	ErrorTypeConflict:       codes.AlreadyExists,
	ErrorTypePrecondition:   codes.FailedPrecondition,
	ErrorTypeUnauthorized:   codes.Unauthenticated,
	ErrorTypeForbidden:      codes.PermissionDenied,
	ErrorTypeRateLimited:    codes.ResourceExhausted,
	ErrorTypeUnavailable:    codes.Unavailable,
	ErrorTypeTimeout:        codes.DeadlineExceeded,
	rop.ErrorTypeConversion: codes.Internal,
}

// Code maps an outcome to a gRPC code. Successful outcomes map to OK; failed
// ones take the code of their first error reason.
func Code(o rop.Reader) codes.Code {
	if o.IsSuccess() {
		return codes.OK
	}
	errs := o.Errors()
	if len(errs) == 0 {
		return codes.Unknown
	}
	return CodeOf(errs[0])
}

// CodeOf maps a single error reason to a gRPC code.
func CodeOf(e rop.ErrorReason) codes.Code {
	switch r := e.(type) {
	case *rop.ExceptionError:
		if rop.IsCancellationError(r) {
			if errors.Is(r, context.DeadlineExceeded) {
				return codes.DeadlineExceeded
			}
			return codes.Canceled
		}
		if st, ok := status.FromError(r.Cause()); ok && st.Code() != codes.OK {
			return st.Code()
		}
		return codes.Internal
	case *rop.ConversionError:
		return codes.Internal
	case *rop.Error:
		if t, ok := r.Tags().Get(rop.TagErrorType); ok {
			if c, ok := codeByErrorType[fmt.Sprint(t)]; ok {
				return c
			}
		}
	}
	return codes.Unknown
}

// ToStatus builds a status for o with one ErrorInfo detail per error reason.
// If the details cannot be attached the bare status is returned.
func ToStatus(o rop.Reader) *status.Status {
	if o.IsSuccess() {
		return status.New(codes.OK, "")
	}

	errs := o.Errors()
	msgs := make([]string, 0, len(errs))
	details := make([]protoadapt.MessageV1, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message())
		details = append(details, errorInfo(e))
	}

	st := status.New(Code(o), strings.Join(msgs, "; "))
	if with, err := st.WithDetails(details...); err == nil {
		return with
	}
	return st
}

// Err returns nil for a successful outcome and a status error otherwise.
func Err(o rop.Reader) error {
	if o.IsSuccess() {
		return nil
	}
	return ToStatus(o).Err()
}

// Describe renders the status of o as protobuf JSON, for logs.
func Describe(o rop.Reader) ([]byte, error) {
	return protojson.Marshal(ToStatus(o).Proto())
}

// FromError decodes an error returned by a gRPC call. ErrorInfo details from
// Domain become Error reasons with their metadata as tags; a status without
// such details yields a single Error. Errors that are not statuses go through
// rop.FromError.
func FromError[T any](err error) rop.Result[T] {
	if err == nil {
		panic(rop.InvalidArgument("error must not be nil"))
	}

	st, ok := status.FromError(err)
	if !ok {
		return rop.FromError[T](err)
	}

	reasons := make([]rop.ErrorReason, 0)
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			reasons = append(reasons, reasonFrom(info))
		}
	}
	if len(reasons) == 0 {
		return rop.Fail[T](rop.NewError(st.Message()).WithTag(TagCode, st.Code().String()))
	}
	return rop.Fail[T](reasons...)
}

func errorInfo(e rop.ErrorReason) *errdetails.ErrorInfo {
	md := make(map[string]string)
	for k, v := range e.Tags().All() {
		md[k] = stringify(v)
	}
	md[MetadataMessage] = e.Message()

	return &errdetails.ErrorInfo{
		Reason:   kindOf(e),
		Domain:   Domain,
		Metadata: md,
	}
}

func reasonFrom(info *errdetails.ErrorInfo) *rop.Error {
	md := info.GetMetadata()
	e := rop.NewError(md[MetadataMessage]).WithTag(TagKind, info.GetReason())
	for _, k := range slices.Sorted(maps.Keys(md)) {
		if k == MetadataMessage {
			continue
		}
		e.WithTag(k, md[k])
	}
	return e
}

func kindOf(e rop.ErrorReason) string {
	switch e.(type) {
	case *rop.ExceptionError:
		return KindException
	case *rop.ConversionError:
		return KindConversion
	}
	return KindError
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
