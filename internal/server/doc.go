// Package server provides the HTTP server for the person API.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Routes:
//   - /api/persons (also mounted at /persons): the person resource
//   - /api/hello: greeting
//   - /health/live, /health/ready, /version, /metrics, /docs/openapi.json: infrastructure
//
// The person routes are rate limited and size limited, and require a bearer token when
// AUTH_ENABLED is set. Middleware is in internal/server/middleware.
package server
