package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/callibrity/person-workshop/internal/config"
	"github.com/callibrity/person-workshop/internal/database"
	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/server"
	"github.com/callibrity/person-workshop/internal/version"
)

//	@title			person-server
//	@description	person-server is a CRUD API for the person resource.
//	@description
//	@description	## Errors
//	@description	All errors are returned as RFC 9457 problem details (`application/problem+json`).
//	@description	All endpoints may return:
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` Internal server error (the detail never contains internal information - quote the requestId when reporting)
//	@description
//	@description	## Request Limits
//	@description	The person endpoints are protected by:
//	@description	- **Rate limiting**: Configurable requests per second (see env vars) - default 100 rps (set to 0 to disable)
//	@description	- **Request size limits**: Configurable (see env vars) - default 64KB
//	@description
//	@description	Check the X-Max-Request-Size response header for the configured limit.
//	@description
//	@description	## Authentication
//	@description	When AUTH_ENABLED is set the person endpoints require an OAuth2 access token issued by the configured identity provider.
//	@license.name	MIT

//	@accept		json
//	@produce	json

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				OAuth2 access token issued by the identity provider, sent as "Bearer <token>".

//	@tag.name			Persons
//	@tag.description	Create, read, update, delete and list persons

//	@tag.name			Common
//	@tag.description	Server API endpoints (health, readiness, version, docs, etc.)

func main() {
	cmd := &cobra.Command{
		Use:   "person-server",
		Short: "Person API server",
		Long:  `person-server serves the person CRUD API backed by PostgreSQL or an in-memory store`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.AddCommand(migrateCmd())

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|status>",
		Short:     "Run the embedded database migrations",
		Long:      `Apply (up), roll back one step (down) or report (status) the goose migrations embedded in the binary`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{database.MigrateUp, database.MigrateDown, database.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewServerConfig()
			if err != nil {
				return err
			}
			if cfg.Repository != config.RepositoryPostgres {
				return fmt.Errorf("migrations require REPOSITORY=%s", config.RepositoryPostgres)
			}

			appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pool, err := openPool(ctx, cfg, appLogger)
			if err != nil {
				return err
			}
			defer pool.Close()

			return database.Migrate(ctx, pool, args[0], appLogger)
		},
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("REPOSITORY", cfg.Repository),
		slog.Bool("MIGRATE_ON_START", cfg.MigrateOnStart),
		slog.Bool("AUTH_ENABLED", cfg.AuthEnabled),
		slog.String("OAUTH_JWKS_URL", cfg.OAuthJWKSURL),
		slog.Any("ALLOWED_ORIGINS", cfg.AllowedOrigins),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.Repository == config.RepositoryPostgres {
		pool, err = openPool(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Error("Failed to connect to the database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		if cfg.MigrateOnStart {
			if err := database.Migrate(ctx, pool, database.MigrateUp, appLogger); err != nil {
				appLogger.Error("Failed to apply migrations", slog.String("error", err.Error()))
				pool.Close()
				os.Exit(1)
			}
		}
	}

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	// configure the server
	server, err := server.NewServer(ctx, pool, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create server", slog.String("error", err.Error()))
		if pool != nil {
			pool.Close()
		}
		os.Exit(1)
	}

	defer server.DatabaseShutdown()

	// start the server
	if err := server.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}

// openPool creates the pgx pool from the DB_* settings and checks it with a ping.
func openPool(ctx context.Context, cfg *config.ServerEnvironment, appLogger *slog.Logger) (*pgxpool.Pool, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, cfg.DatabasePingTimeout)
	defer dbCancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = cfg.DBMaxConnections
	poolConfig.MinConns = cfg.DBMinConnections
	poolConfig.MaxConnLifetime = cfg.DBMaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.DBMaxConnIdleTime
	poolConfig.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	pool, err := pgxpool.NewWithConfig(dbCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(dbCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database via pool: %w", err)
	}

	appLogger.Info("connected to PostgreSQL")
	return pool, nil
}
