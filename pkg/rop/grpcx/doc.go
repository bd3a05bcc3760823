// Package grpcx projects outcomes onto gRPC statuses and back.
//
// It only reads the public surface of an outcome (state, ordered error
// reasons and their tags). Codes come from a fixed table keyed by the
// ErrorType tag, with the reason kind deciding for exceptions and
// conversion errors. Every error reason travels as an
// errdetails.ErrorInfo whose metadata carries the message and the tags.
package grpcx
