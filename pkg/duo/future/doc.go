// Package future provides a settle-once deferred value, the concrete
// promise-like used throughout the module. A Future is resolved with a
// value or rejected with an error exactly once; later settlement attempts
// lose. Its Then method satisfies the duo.Thenable contract, so a Future
// can be handed straight to duo.OptionFrom and duo.ResultFrom.
//
// Key operations:
// - New/Resolved/Rejected: construct futures
// - Go: run a (T, error) function in a goroutine and settle from its return
// - Resolve/Reject: settle explicitly, first caller wins
// - Await/Done: block until settled or the context is done
// - ToOption/ToResult: await and collapse into a container
//
// There is no cancellation primitive: a future nobody settles never
// settles, and awaiting it under a background context blocks forever.
// Bound the wait with the context instead.
package future
