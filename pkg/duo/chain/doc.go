// Package chain provides a fluent wrapper around duo.Result[T, error] for
// building synchronous pipelines without branching at each step. A Chain
// carries a context.Context alongside the result so every step receives it.
//
// Key operations:
// - Start/FromValue: begin a chain from a result or a value
// - Then: compose a function that already returns a duo.Result
// - ThenTry: call a function (T, error) and convert the error to failure
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Or/And: pick the first success / first failure among chains
// - Finally: collapse the chain into a final value via handlers
//
// Type-changing steps are the package-level Then, ThenTry, Map and Finally;
// methods keep the value type fixed.
package chain
