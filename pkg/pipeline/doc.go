// Package pipeline provides a fluent builder for composing functions into a
// sequential pipeline, including spreading a stage's tuple result as
// positional arguments to the next stage.
//
// Key constructs:
// - New: create an empty pipeline (Call on it is the identity)
// - Then/ThenUnpack/ThenWith: append a stage, returning a new pipeline value
// - Call: fold the arguments through the stages left to right
// - Apply: experimental shorthand for Call over an argument slice
// - Compose/ComposeErr: compose two callables directly
//
// Building a pipeline never invokes a stage; invocation happens only in Call,
// which runs the stages strictly in order, each exactly once. A stage whose
// final return value is an error is fallible: a non-nil error stops the fold
// and is returned to the caller as-is. Nothing is retried, logged, or
// swallowed, and stage panics are never recovered.
//
// For chains whose types are fully known at compile time, see package typed.
package pipeline
