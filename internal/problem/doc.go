// Package problem translates errors into RFC 9457 problem responses.
//
// **error handling**
// the domain and service packages return typed errors (ValidationError,
// UnknownSortKeyError, PersonNotFoundError); infrastructure failures detected at the
// HTTP boundary use problem.Error. Handlers and middleware never choose a status for an
// error themselves: they pass it to RespondWithErrorResponse, which runs the ordered
// handler list in error_response.go.
//
// Unexpected errors are logged in full and answered with a 500 whose detail is always
// UnexpectedErrorDetail.
package problem
