package problem

// error_response.go translates errors into RFC 9457 problem responses.
// The translation is an ordered list of handlers; the first handler that recognises the
// error decides the status and detail. Anything unrecognised becomes a 500 with a
// generic detail and is logged in full server-side.

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/callibrity/person-workshop/internal/domain"
	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/service"
	"github.com/go-chi/chi/v5/middleware"
)

// UnexpectedErrorDetail is the only detail sent to clients for unexpected failures.
const UnexpectedErrorDetail = "An unexpected error occurred."

// ProblemDetail is the RFC 9457 response body.
type ProblemDetail struct {
	// URI reference identifying the problem type (about:blank when only the status matters)
	Type string `json:"type" example:"about:blank"`

	// Short summary of the problem type (the HTTP status text)
	Title string `json:"title" example:"Not Found"`

	// HTTP status code
	Status int `json:"status" example:"404"`

	// Human readable explanation specific to this occurrence
	Detail string `json:"detail" example:"Person with id zzz not found"`

	// The request path
	Instance string `json:"instance,omitempty" example:"/api/persons/zzz"`

	// The request id assigned by the server, quote it when reporting problems
	RequestID string `json:"requestId,omitempty"`

	// The time the error occurred
	Timestamp string `json:"timestamp" example:"2025-01-28T10:00:00Z"`
}

// errorHandler maps one kind of error to a status and client safe detail.
type errorHandler struct {
	name  string
	match func(err error) (status int, detail string, ok bool)
}

// errorHandlers is evaluated in order.
var errorHandlers = []errorHandler{
	{name: "person_not_found", match: matchPersonNotFound},
	{name: "validation_failed", match: matchValidation},
	{name: "unknown_sort_key", match: matchUnknownSortKey},
	{name: "request_body_too_large", match: matchMaxBytes},
	{name: "boundary_error", match: matchBoundaryError},
}

func matchPersonNotFound(err error) (int, string, bool) {
	var notFound *service.PersonNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Error(), true
	}
	return 0, "", false
}

func matchValidation(err error) (int, string, bool) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error(), true
	}
	return 0, "", false
}

func matchUnknownSortKey(err error) (int, string, bool) {
	var sortErr *domain.UnknownSortKeyError
	if errors.As(err, &sortErr) {
		return http.StatusBadRequest, sortErr.Error(), true
	}
	return 0, "", false
}

// matchMaxBytes catches bodies cut off by http.MaxBytesReader when Content-Length was
// missing or wrong.
func matchMaxBytes(err error) (int, string, bool) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body exceeds maximum allowed size (%d bytes)", maxBytesErr.Limit), true
	}
	return 0, "", false
}

func matchBoundaryError(err error) (int, string, bool) {
	var boundaryErr *Error
	if !errors.As(err, &boundaryErr) {
		return 0, "", false
	}

	switch boundaryErr.Code() {
	case ErrCodeMalformedRequest:
		return http.StatusBadRequest, boundaryErr.Message(), true
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized, boundaryErr.Message(), true
	case ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge, boundaryErr.Message(), true
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, boundaryErr.Message(), true
	default:
		return http.StatusInternalServerError, UnexpectedErrorDetail, true
	}
}

// MapErrorToResponse maps err to a problem response.
//
// Only the detail chosen by the matching handler is sent to the client; wrapped causes
// are logged server-side by RespondWithErrorResponse.
func MapErrorToResponse(err error, r *http.Request) *ProblemDetail {
	requestID := middleware.GetReqID(r.Context())

	for _, h := range errorHandlers {
		if status, detail, ok := h.match(err); ok {
			return newProblemDetail(status, detail, r, requestID)
		}
	}

	// fallback - log everything we know server-side, tell the client nothing
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("An unhandled error has occurred",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID),
	)
	return newProblemDetail(http.StatusInternalServerError, UnexpectedErrorDetail, r, requestID)
}

func newProblemDetail(status int, detail string, r *http.Request, requestID string) *ProblemDetail {
	return &ProblemDetail{
		Type:      "about:blank",
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    detail,
		Instance:  r.URL.Path,
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
