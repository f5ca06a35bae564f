package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Netflix/go-env"
)

const (
	RepositoryPostgres = "postgres"
	RepositoryMemory   = "memory"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=dev"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=8080"`
	LogLevel              string        `env:"LOG_LEVEL,default=debug"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	MaxRequestBodyBytes   int64         `env:"MAX_REQUEST_BODY_BYTES,default=65536"`
	AllowedOrigins        []string      `env:"ALLOWED_ORIGINS,separator=|"`
	RateLimitRPS          int32         `env:"RATE_LIMIT_RPS,default=100"`
	RateLimitBurst        int32         `env:"RATE_LIMIT_BURST,default=200"`

	// storage settings
	Repository          string        `env:"REPOSITORY,default=postgres"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConnections    int32         `env:"DB_MAX_CONNECTIONS,default=4"`
	DBMinConnections    int32         `env:"DB_MIN_CONNECTIONS,default=0"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME,default=60m"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME,default=30m"`
	DBConnectTimeout    time.Duration `env:"DB_CONNECT_TIMEOUT,default=5s"`
	DatabasePingTimeout time.Duration `env:"DATABASE_PING_TIMEOUT,default=10s"`
	MigrateOnStart      bool          `env:"MIGRATE_ON_START,default=false"`

	// bearer token settings
	AuthEnabled         bool          `env:"AUTH_ENABLED,default=false"`
	OAuthJWKSURL        string        `env:"OAUTH_JWKS_URL"`
	OAuthIssuer         string        `env:"OAUTH_ISSUER"`
	OAuthAudience       string        `env:"OAUTH_AUDIENCE"`
	OAuthAcceptableSkew time.Duration `env:"OAUTH_ACCEPTABLE_SKEW,default=30s"`
	JWKCacheMinRefresh  time.Duration `env:"JWK_CACHE_MIN_REFRESH,default=10m"`
	JWKCacheMaxRefresh  time.Duration `env:"JWK_CACHE_MAX_REFRESH,default=12h"`
}

// ClientEnvironment configures the person-client CLI.
type ClientEnvironment struct {
	APIURL   string        `env:"PERSON_API_URL,default=http://localhost:8080"`
	APIToken string        `env:"PERSON_API_TOKEN"`
	Timeout  time.Duration `env:"PERSON_API_TIMEOUT,default=10s"`
	LogLevel string        `env:"LOG_LEVEL,default=warn"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

var validRepositories = map[string]bool{
	RepositoryPostgres: true,
	RepositoryMemory:   true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil

}

// NewClientConfig loads the client CLI settings from the environment.
func NewClientConfig() (*ClientEnvironment, error) {
	var cfg ClientEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("PERSON_API_URL must be an absolute URL, got %q", cfg.APIURL)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("PERSON_API_TIMEOUT must be positive")
	}
	return &cfg, nil
}

// validateConfig checks for required env variables
func validateConfig(cfg *ServerEnvironment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if cfg.MaxRequestBodyBytes < 1 {
		return fmt.Errorf("MAX_REQUEST_BODY_BYTES must be at least 1")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	if !validRepositories[cfg.Repository] {
		return fmt.Errorf("invalid REPOSITORY: %s (must be %s or %s)", cfg.Repository, RepositoryPostgres, RepositoryMemory)
	}

	if cfg.Repository == RepositoryPostgres {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when REPOSITORY=%s", RepositoryPostgres)
		}

		// Validate database pool configuration
		if cfg.DBMaxConnections < 1 {
			return fmt.Errorf("DB_MAX_CONNECTIONS must be at least 1")
		}
		if cfg.DBMinConnections < 0 {
			return fmt.Errorf("DB_MIN_CONNECTIONS must be 0 or greater")
		}
		if cfg.DBMinConnections > cfg.DBMaxConnections {
			return fmt.Errorf("DB_MIN_CONNECTIONS (%d) cannot be greater than DB_MAX_CONNECTIONS (%d)",
				cfg.DBMinConnections, cfg.DBMaxConnections)
		}
	} else if cfg.MigrateOnStart {
		return fmt.Errorf("MIGRATE_ON_START requires REPOSITORY=%s", RepositoryPostgres)
	}

	if cfg.AuthEnabled {
		if cfg.OAuthJWKSURL == "" {
			return fmt.Errorf("OAUTH_JWKS_URL is required when AUTH_ENABLED=true")
		}
		if _, err := url.ParseRequestURI(cfg.OAuthJWKSURL); err != nil {
			return fmt.Errorf("invalid OAUTH_JWKS_URL: %w", err)
		}
		if cfg.JWKCacheMinRefresh > cfg.JWKCacheMaxRefresh {
			return fmt.Errorf("JWK_CACHE_MIN_REFRESH (%s) cannot be greater than JWK_CACHE_MAX_REFRESH (%s)",
				cfg.JWKCacheMinRefresh, cfg.JWKCacheMaxRefresh)
		}
	}

	return nil
}
