package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/problem"
)

// ReadinessCheck is one dependency that must be available before the service takes
// traffic (e.g. the database or the JWKS endpoint).
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// ReadinessResponse is returned by the readiness endpoint.
type ReadinessResponse struct {
	Status string `json:"status" example:"not ready"`
	Reason string `json:"reason,omitempty" example:"database unavailable"`
}

// HandleHealth godoc
//
//	@Summary		Health (liveness) Check
//	@Description	Check if the HTTP service is alive and responding.
//	@Tags			Common
//	@Produce		plain
//
//	@Success		200	{string}	string	"OK"
//
//	@Router			/health/live [get]
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// HandleReadiness godoc
//
//	@Summary		Readiness Check
//	@Description	Checks if the service is ready to accept traffic (includes database connectivity when the postgres repository is used)
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	ReadinessResponse	"status ready"
//	@Failure		503	{object}	ReadinessResponse	"status not ready"
//	@Router			/health/ready [get]
func HandleReadiness(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, c := range checks {
			if err := c.Check(r.Context()); err != nil {
				logger.ContextRequestLogger(r.Context()).Warn("Readiness check failed",
					slog.String("check", c.Name),
					slog.String("error", err.Error()),
				)
				problem.RespondWithJSONPayload(w, http.StatusServiceUnavailable, ReadinessResponse{
					Status: "not ready",
					Reason: c.Name + " unavailable",
				})
				return
			}
		}

		problem.RespondWithJSONPayload(w, http.StatusOK, ReadinessResponse{Status: "ready"})
	}
}
