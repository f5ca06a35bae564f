package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"none", LevelNone},
		{"garbage", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContextRequestLoggerFallsBackToDefault(t *testing.T) {
	if ContextRequestLogger(context.Background()) != slog.Default() {
		t.Error("expected default logger when none is set on the context")
	}
}

func TestRequestLoggingEmitsCompletionLine(t *testing.T) {
	var buf bytes.Buffer
	base := initLogger(&buf, slog.LevelDebug, "test")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(RequestLogging(base))
	router.Get("/api/persons/{id}", func(w http.ResponseWriter, r *http.Request) {
		ContextWithLogAttrs(r.Context(), slog.String("person_id", chi.URLParam(r, "id")))
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/persons/zzz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a single JSON log line, got %q: %v", buf.String(), err)
	}

	if line["msg"] != "Request completed" {
		t.Errorf("got msg %v, want %q", line["msg"], "Request completed")
	}
	if line["level"] != "WARN" {
		t.Errorf("got level %v, want WARN", line["level"])
	}
	if line["person_id"] != "zzz" {
		t.Errorf("got person_id %v, want zzz", line["person_id"])
	}
	if line["request_id"] == "" || line["request_id"] == nil {
		t.Error("request_id missing from log line")
	}
}

func TestInitLoggerNoneDiscards(t *testing.T) {
	var buf bytes.Buffer
	l := initLogger(&buf, LevelNone, "dev")
	l.Error("should not be written")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
