// Package core contains channel plumbing shared by the asynchronous
// combinators: ready channels, goroutine-backed values, context-aware receive,
// a slice feeder and an ordered collector. It knows nothing about outcomes; a
// pending outcome is simply a channel that yields one value and closes.
package core
