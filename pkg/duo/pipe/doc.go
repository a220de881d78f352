// Package pipe provides curried forms of the duo combinators: each factory
// takes the transformer once and returns a function over the container, so
// the same operation can be used as a step in a pipeline or handed to
// deferred-computation continuations.
//
// Common usage:
// - Map/MapErr/FlatMap/Filter/Inspect/InspectErr/Match/UnwrapOr: Result steps
// - MapOption/FlatMapOption/FilterOption/InspectOption/MatchOption/
//   UnwrapOrOption: Option steps
//
// Every factory is observably identical to the corresponding method or
// package-level form in duo; in particular, absence and failure still
// short-circuit the wrapped transformer.
package pipe
