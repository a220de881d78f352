// Package duo provides the two algebraic containers the rest of the module
// is built around: Option[T] for presence/absence and Result[T, E] for
// success/failure. Both are immutable two-state value types; every
// combinator returns a new container and never mutates the receiver, so
// holding or copying a container is always safe.
//
// Key operations:
// - Some/None, Ok/Err (and OkUnit/ErrUnit): construct containers
// - OptionFrom/ResultFrom: classify arbitrary inputs, peeling thunks and
//   awaiting promise-like (Thenable) values
// - Map/FlatMap/Match plus the *Option-suffixed forms: cross-type combinators
// - All/Any (short-circuiting) and Partition/Collect (exhaustive) aggregates
// - Unwrap/UnwrapErr/UnwrapOr/Expect: terminal extraction
//
// Absence and failure short-circuit: once a container is None or Err, no
// downstream transformer function is invoked. Only construction of a nil
// Some and the Unwrap/Expect family ever panic; every other operation is
// total.
//
// For curried pipeline forms see package pipe, for fluent context-carrying
// chains see package chain, and for deferred values see package future.
package duo
