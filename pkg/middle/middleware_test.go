package middle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rr.Header().Get("X-Request-ID")
	if !strings.HasPrefix(got, "req-") {
		t.Fatalf("unexpected request id %q", got)
	}
	if seen != got {
		t.Errorf("context id %q differs from header %q", seen, got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-1")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Header().Get("X-Request-ID") != "upstream-1" {
		t.Errorf("incoming request id should be kept, got %q", rr.Header().Get("X-Request-ID"))
	}
}

func TestLoggingMiddlewareRecoversPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	h := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
		RequestIDMiddleware(logger),
		LoggingMiddleware(logger),
	)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/explode", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if logs.FilterMessage("Internal Server Error").Len() != 1 {
		t.Error("panic should be logged once")
	}

	completed := logs.FilterMessage("Request completed").All()
	if len(completed) != 1 {
		t.Fatalf("expected one completion log, got %d", len(completed))
	}
	fields := completed[0].ContextMap()
	if fields["status"] != int64(http.StatusInternalServerError) {
		t.Errorf("unexpected status field %v", fields["status"])
	}
	if _, ok := fields["request_id"]; !ok {
		t.Error("request-scoped logger should carry request_id")
	}
}

func TestLoggingMiddlewareDefaultStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entry := logs.FilterMessage("Request completed").All()[0]
	if entry.ContextMap()["status"] != int64(http.StatusOK) {
		t.Errorf("unexpected status %v", entry.ContextMap()["status"])
	}
	if entry.ContextMap()["bytes"] != int64(2) {
		t.Errorf("unexpected size %v", entry.ContextMap()["bytes"])
	}
}
