package problem

// responses.go provides helper functions for sending HTTP responses from the handlers.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/callibrity/person-workshop/internal/logger"
)

const (
	ContentTypeJSON    = "application/json"
	ContentTypeProblem = "application/problem+json"
)

// RespondWithErrorResponse sends err as a problem response.
//
// It logs the full error details server-side and sends a sanitized response to the client
func RespondWithErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	problem := MapErrorToResponse(err, r)

	reqLogger := logger.ContextRequestLogger(r.Context())
	level := slog.LevelWarn
	if problem.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	reqLogger.LogAttrs(r.Context(), level, "Request failed",
		slog.String("error", err.Error()),
		slog.Int("status_code", problem.Status),
		slog.String("request_id", problem.RequestID),
	)

	if problem.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", bearerChallenge(err))
	}

	writeJSON(w, problem.Status, ContentTypeProblem, problem)
}

// RespondWithJSONPayload sends a JSON response with the given status code
func RespondWithJSONPayload(w http.ResponseWriter, statusCode int, payload any) {
	writeJSON(w, statusCode, ContentTypeJSON, payload)
}

// RespondWithStatusCodeOnly sends a response with only a status code (no body)
func RespondWithStatusCodeOnly(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func writeJSON(w http.ResponseWriter, statusCode int, contentType string, payload any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// If encoding fails, log it but don't try to send another response
			// (headers are already written)
			slog.Error("Failed to encode JSON response",
				slog.String("error", err.Error()),
			)
		}
	}
}

// bearerChallenge builds the RFC 6750 WWW-Authenticate value. A request that presented
// a token which failed validation gets error="invalid_token".
func bearerChallenge(err error) string {
	var boundaryErr *Error
	if errors.As(err, &boundaryErr) && boundaryErr.Unwrap() != nil {
		return `Bearer realm="person-api", error="invalid_token"`
	}
	return `Bearer realm="person-api"`
}
