package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/problem"
)

type contextKey string

const subjectKey contextKey = "auth.subject"

// SubjectFromContext returns the sub claim of the validated token, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey).(string)
	return sub, ok
}

// RequireBearerToken rejects requests without a valid "Authorization: Bearer" token.
//
// Missing and invalid tokens get a 401 problem response with a WWW-Authenticate
// challenge. The token subject is added to the request context and to the request's
// completion log line.
func RequireBearerToken(v *Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				problem.RespondWithErrorResponse(w, r, problem.NewUnauthorizedError("Missing bearer token"))
				return
			}

			token, err := v.Validate(r.Context(), raw)
			if err != nil {
				var ksErr *keySetError
				if errors.As(err, &ksErr) {
					problem.RespondWithErrorResponse(w, r, problem.WrapInternalError(err, "token verification keys unavailable"))
					return
				}
				problem.RespondWithErrorResponse(w, r, problem.WrapUnauthorizedError(err, "Invalid bearer token"))
				return
			}

			ctx := r.Context()
			if sub, ok := token.Subject(); ok && sub != "" {
				ctx = context.WithValue(ctx, subjectKey, sub)
				logger.ContextWithLogAttrs(ctx, slog.String("subject", sub))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
