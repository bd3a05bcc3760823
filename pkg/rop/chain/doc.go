// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: bind to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Tap: run side effects on success without changing the result
// - Ensure/EnsureAll/Where: turn predicates into failures
// - Finally: collapse the chain into a final value via handlers
package chain
