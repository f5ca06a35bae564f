// Package handlers provides the HTTP handlers for the person resource and the general
// infrastructure endpoints (health, version, docs).
//
// Handlers decode and pre-validate the request, call the service and write the
// result. Every error, whatever its origin, is passed to problem.RespondWithErrorResponse;
// handlers never choose an error status themselves.
package handlers
