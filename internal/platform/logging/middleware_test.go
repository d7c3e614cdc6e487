package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextFallsBackToGlobal(t *testing.T) {
	if got := FromContext(context.Background()); got == nil {
		t.Fatal("expected global logger fallback, got nil")
	}
	var missing context.Context
	if got := FromContext(missing); got == nil {
		t.Fatal("expected global logger for nil context, got nil")
	}
}

func TestContextWithLoggerRoundTrip(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx := ContextWithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Fatal("expected logger stored in context to be returned")
	}
}

func TestRequestLoggerInstallsContextLogger(t *testing.T) {
	var captured *zap.Logger
	h := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))

	if captured == nil {
		t.Fatal("expected request-scoped logger in context")
	}
	// With a request ID present the middleware derives a child logger, so the
	// context logger must differ from the global instance.
	if captured == Logger() {
		t.Fatal("expected derived logger carrying requestId, got the global logger")
	}
}

func TestRequestLoggerWithoutRequestID(t *testing.T) {
	var captured *zap.Logger
	h := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if captured != Logger() {
		t.Fatal("expected the global logger when no request ID is present")
	}
}

func TestAccessLoggerRecordsSummary(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	h := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req = req.WithContext(ContextWithLogger(req.Context(), logger))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 access log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "request completed" {
		t.Fatalf("unexpected message: %s", entry.Message)
	}

	fields := map[string]zapcore.Field{}
	for _, f := range entry.Context {
		fields[f.Key] = f
	}
	if f, ok := fields["method"]; !ok || f.String != http.MethodGet {
		t.Fatalf("expected method GET, got %+v", fields["method"])
	}
	if f, ok := fields["path"]; !ok || f.String != "/teapot" {
		t.Fatalf("expected path /teapot, got %+v", fields["path"])
	}
	if f, ok := fields["status"]; !ok || f.Integer != http.StatusTeapot {
		t.Fatalf("expected status 418, got %+v", fields["status"])
	}
	if f, ok := fields["bytes"]; !ok || f.Integer != int64(len("short and stout")) {
		t.Fatalf("expected bytes %d, got %+v", len("short and stout"), fields["bytes"])
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatal("expected duration field")
	}
}
