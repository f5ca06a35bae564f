// Package domain holds the Person entity, the repository and transaction contracts the
// application service depends on, and the domain error types.
//
// Nothing in this package knows about HTTP or a particular store. The memory and postgres
// packages implement PersonRepository; the problem package maps the error types to HTTP
// responses.
package domain
