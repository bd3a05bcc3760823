// Package mass lifts the solo combinators over pending results. A pending
// result is a `<-chan rop.Result[T]` that yields exactly one value and closes.
//
// Every combinator comes in the shapes that solo does not cover:
//   - Map, Bind, Tap, Ensure, ...: pending source, synchronous func
//   - MapAsync, BindAsync, TapAsync, EnsureAsync, ...: pending source, func
//     answering on a channel
//   - Mapping, Binding, Tapping, Ensuring, ...: settled source, func answering
//     on a channel
//
// A stage starts only after the previous stage has delivered its value, and a
// failed stage short-circuits the rest of the chain without calling their
// funcs. Cancellation of ctx while waiting surfaces as an ExceptionError.
//
// Stages run on their own goroutines. A panic that a combinator does not turn
// into a failure (Tap and the Match branches) is carried along the chain and
// raised again by Await or AwaitOutcome on the caller's goroutine.
package mass
