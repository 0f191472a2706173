// Package api implements the raw HTTP layer for the SimpleLogin API:
// one method per remote endpoint, JSON wire types, and the mapping from
// HTTP status codes to typed errors.
//
// The package is internal; the public SDK in the repository root wraps
// it and re-exports its domain types. All endpoint methods are
// stateless: the only held state is the base address and the API key
// the client was constructed with.
package api
