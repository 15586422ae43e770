package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/testutil"
)

func TestLoggingGeneratesRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := testutil.Serve(Logging(logger, metrics.NewRecorder(), next), http.MethodGet, "/scoreboard", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if seenID == "" {
		t.Fatalf("expected a generated request ID in context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seenID {
		t.Fatalf("header ID %q != context ID %q", got, seenID)
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("missing completion log: %s", buf.String())
	}
}

func TestLoggingKeepsValidIncomingID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Logging(logger, nil, next)

	req, rr := newRequest(http.MethodGet, "/scoreboard")
	req.Header.Set("X-Request-ID", "client-id_42")
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "client-id_42" {
		t.Fatalf("valid incoming ID replaced with %q", got)
	}
}

func TestLoggingReplacesInvalidIncomingID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Logging(logger, nil, next)

	req, rr := newRequest(http.MethodGet, "/scoreboard")
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got == "bad id with spaces!" || got == "" {
		t.Fatalf("invalid incoming ID kept: %q", got)
	}
}

func TestLoggingCapturesStatus(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	rr := testutil.Serve(Logging(logger, nil, next), http.MethodPost, "/scoreboard/refresh", nil)

	testutil.AssertStatus(t, rr, http.StatusConflict)
	if !strings.Contains(buf.String(), "409") {
		t.Fatalf("log missing status code: %s", buf.String())
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/scoreboard":            "/scoreboard",
		"/scoreboard/live/more":  "/scoreboard/:category/more",
		"/scoreboard/final/more": "/scoreboard/:category/more",
		"/scoreboard/refresh":    "/scoreboard/refresh",
		"/health":                "/health",
		"":                       "",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func newRequest(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}
