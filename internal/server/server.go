package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/callibrity/person-workshop/docs" // registers the OpenAPI document with swag
	"github.com/callibrity/person-workshop/internal/auth"
	"github.com/callibrity/person-workshop/internal/config"
	"github.com/callibrity/person-workshop/internal/domain"
	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/memory"
	"github.com/callibrity/person-workshop/internal/metrics"
	"github.com/callibrity/person-workshop/internal/postgres"
	"github.com/callibrity/person-workshop/internal/server/handlers"
	personmw "github.com/callibrity/person-workshop/internal/server/middleware"
	"github.com/callibrity/person-workshop/internal/service"
	"github.com/callibrity/person-workshop/internal/version"
)

type Server struct {
	pool            *pgxpool.Pool
	config          *config.ServerEnvironment
	logger          *slog.Logger
	router          *chi.Mux
	personService   service.PersonService
	validator       *auth.Validator
	readinessChecks []handlers.ReadinessCheck
}

// NewServer wires the repository selected by cfg.Repository into the person service and
// registers the routes. pool must be non-nil when cfg.Repository is postgres and is
// ignored otherwise.
//
// ctx bounds the background JWKS refresh when bearer token validation is enabled.
func NewServer(
	ctx context.Context,
	pool *pgxpool.Pool,
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) (*Server, error) {
	server := &Server{
		pool:   pool,
		config: cfg,
		logger: logger,
		router: chi.NewRouter(),
	}

	if err := server.initPersonService(); err != nil {
		return nil, err
	}

	if cfg.AuthEnabled {
		if err := server.initValidator(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize bearer token validation: %w", err)
		}
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server, nil
}

// initPersonService selects the repository and transaction manager.
func (s *Server) initPersonService() error {
	var (
		repository domain.PersonRepository
		txManager  domain.TransactionManager
	)

	switch s.config.Repository {
	case config.RepositoryPostgres:
		if s.pool == nil {
			return errors.New("postgres repository selected but no database pool was provided")
		}
		pgRepository := postgres.NewPersonRepository(s.pool)
		repository = pgRepository
		txManager = postgres.NewTxManager(s.pool)

		pingTimeout := s.config.DatabasePingTimeout
		s.readinessChecks = append(s.readinessChecks, handlers.ReadinessCheck{
			Name: "database",
			Check: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, pingTimeout)
				defer cancel()
				return pgRepository.IsDatabaseRunning(ctx)
			},
		})
	case config.RepositoryMemory:
		repository = memory.NewPersonRepository()
		txManager = memory.NoopTxManager{}
	default:
		return fmt.Errorf("unsupported repository: %s", s.config.Repository)
	}

	s.personService = metrics.InstrumentPersonService(
		service.NewDefaultPersonService(repository, txManager),
	)

	s.logger.Info("person repository initialized", slog.String("repository", s.config.Repository))
	return nil
}

// initValidator starts the JWKS cache for the identity provider.
func (s *Server) initValidator(ctx context.Context) error {
	keys, err := auth.NewRemoteKeySet(ctx,
		s.config.OAuthJWKSURL,
		s.config.JWKCacheMinRefresh,
		s.config.JWKCacheMaxRefresh,
		s.logger,
	)
	if err != nil {
		return err
	}

	s.validator = auth.NewValidator(keys, s.config.OAuthIssuer, s.config.OAuthAudience, s.config.OAuthAcceptableSkew)
	s.readinessChecks = append(s.readinessChecks, handlers.ReadinessCheck{
		Name:  "jwks",
		Check: keys.IsReady,
	})

	s.logger.Info("bearer token validation enabled",
		slog.String("issuer", s.config.OAuthIssuer),
		slog.String("audience", s.config.OAuthAudience),
	)
	return nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(personmw.Recoverer)
	s.router.Use(metrics.InstrumentHandler)
	s.router.Use(personmw.SecurityHeaders(s.config.Environment))
	s.router.Use(personmw.CORS(s.config.AllowedOrigins))
	s.router.Use(middleware.Timeout(s.config.RequestTimeout))
}

func (s *Server) registerRoutes() {
	// common routes
	s.router.Get("/health/live", handlers.HandleHealth)
	s.router.Get("/health/ready", handlers.HandleReadiness(s.readinessChecks...))
	s.router.Get("/version", handlers.HandleVersion(version.Get()))
	s.router.Method(http.MethodGet, "/metrics", metrics.Handler())
	s.router.Get("/docs/openapi.json", handlers.HandleOpenAPIDoc)

	// one limiter shared by both mounts of the person routes
	rateLimit := personmw.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst)

	personHandler := handlers.NewPersonHandler(s.personService)
	personRoutes := func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(personmw.RequestSizeLimit(s.config.MaxRequestBodyBytes))
		if s.validator != nil {
			r.Use(auth.RequireBearerToken(s.validator))
		}

		r.Post("/", personHandler.HandleCreatePerson)
		r.Get("/", personHandler.HandleListPersons)
		r.Get("/{id}", personHandler.HandleRetrievePerson)
		r.Put("/{id}", personHandler.HandleUpdatePerson)
		r.Delete("/{id}", personHandler.HandleDeletePerson)
	}

	s.router.Get("/api/hello", handlers.HandleHello)
	s.router.Route("/api/persons", personRoutes)
	s.router.Route("/persons", personRoutes)
}

// Handler returns the router, for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:              serverAddr,
		Handler:           s.router,
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

func (s *Server) DatabaseShutdown() {
	if s.pool != nil {
		s.pool.Close()
		s.logger.Info("database connection closed")
	}
}
