//go:build integration

package integration

// Test environment setup and server lifecycle management.
//
// TestMain (main_test.go) starts one postgres:17 container for the package. Each test
// gets an empty database in that container, migrated with the embedded goose migrations,
// and its own in-process person-server. The database is dropped when the test finishes.
//
// Server logs are not included in the test output by default, enable them with:
//
//	ENABLE_SERVER_LOGS=true go test -tags=integration -v ./test/integration
//
// Docker (or a compatible runtime) must be available.

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/callibrity/person-workshop/internal/config"
	"github.com/callibrity/person-workshop/internal/database"
	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/server"
)

// testEnv provides access to test db and server for integration tests
type testEnv struct {
	baseURL string
	cfg     *config.ServerEnvironment
	pool    *pgxpool.Pool
}

// setupTestDatabase creates an empty test db, applies migrations and returns a connection pool
func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	dbName := fmt.Sprintf("tmp_person_it_%d_%d", os.Getpid(), databaseCounter.Add(1))

	admin, err := pgx.Connect(ctx, adminURL)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer admin.Close(ctx)

	if _, err := admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbName}.Sanitize()); err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL(t, dbName))
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := database.Migrate(ctx, pool, database.MigrateUp, logger.InitLogger(logger.LevelNone, "test")); err != nil {
		pool.Close()
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()

		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		conn, err := pgx.Connect(cleanupCtx, adminURL)
		if err != nil {
			t.Logf("Failed to connect to drop test database: %v", err)
			return
		}
		defer conn.Close(cleanupCtx)

		if _, err := conn.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+pgx.Identifier{dbName}.Sanitize()+" WITH (FORCE)"); err != nil {
			t.Logf("Failed to drop test database %s: %v", dbName, err)
		}
	})

	return pool
}

// databaseURL returns the admin url with the database name replaced by dbName.
func databaseURL(t *testing.T, dbName string) string {
	t.Helper()
	u, err := url.Parse(adminURL)
	if err != nil {
		t.Fatalf("invalid connection url: %v", err)
	}
	u.Path = "/" + dbName
	return u.String()
}

// startInProcessServer starts person-server in-process against a fresh database.
// extraEnv overrides the default test settings.
func startInProcessServer(t *testing.T, extraEnv map[string]string) *testEnv {
	t.Helper()

	env := &testEnv{pool: setupTestDatabase(t)}
	port := findFreePort(t)

	logLevel := "none"
	if os.Getenv("ENABLE_SERVER_LOGS") == "true" {
		logLevel = "debug"
	}

	testEnvVars := map[string]string{
		"HOST":           "localhost",
		"PORT":           fmt.Sprintf("%d", port),
		"ENVIRONMENT":    "test",
		"LOG_LEVEL":      logLevel,
		"RATE_LIMIT_RPS": "0",
		"AUTH_ENABLED":   "false",
		"REPOSITORY":     config.RepositoryPostgres,
		"DATABASE_URL":   env.pool.Config().ConnString(),
	}
	for k, v := range extraEnv {
		testEnvVars[k] = v
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	cfg, err := config.NewServerConfig()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	env.cfg = cfg

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverCtx, serverCancel := context.WithCancel(context.Background())

	serverInstance, err := server.NewServer(serverCtx, env.pool, cfg, appLogger)
	if err != nil {
		serverCancel()
		t.Fatalf("Failed to create server: %v", err)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := serverInstance.Start(serverCtx); err != nil {
			serverDone <- err
		}
	}()

	t.Cleanup(func() {
		serverCancel()
		select {
		case err := <-serverDone:
			if err != nil {
				t.Logf("Server shutdown with error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Log("Server shutdown timeout")
		}
	})

	env.baseURL = fmt.Sprintf("http://localhost:%d", port)
	if !waitForServer(t, env.baseURL+"/health/ready", 30*time.Second) {
		t.Fatal("Server failed to start within timeout")
	}
	return env
}

func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer listener.Close()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.Port
}

func waitForServer(t *testing.T, url string, timeout time.Duration) bool {
	t.Helper()

	client := &http.Client{Timeout: 1 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}

// doRequest sends an optional JSON body and returns the response; the caller closes the body.
func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
	}
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}
