// Package solo contains single-value, synchronous ROP combinators that
// operate on rop.Result[T]. A failed input is passed through untouched and no
// user function is invoked for it.
//
// Highlights:
// - Map/Select: transform the value; panics become an ExceptionError
// - Bind/SelectMany/SelectManyWith: sequence steps returning results
// - Tap: side effects on success; panics are NOT recovered
// - Ensure/EnsureAll/EnsureNotNil/Where/Validate: turn predicates into errors
// - Try: call a function (Out, error) and convert the error to a failure
// - Match/MatchDo: reduce to a concrete value via success/failure handlers
package solo
