package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"propagated when valid", "abc-123_X.9", true},
		{"replaced when unsafe", "bad id\n", false},
		{"replaced when too long", strings.Repeat("a", maxRequestIDLength+1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(HeaderRequestID, tc.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			got := rec.Header().Get(HeaderRequestID)
			if got == "" || got != seen {
				t.Fatalf("header %q, context %q", got, seen)
			}
			if tc.keep != (got == tc.incoming) {
				t.Fatalf("request id = %q, incoming %q, keep %v", got, tc.incoming, tc.keep)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantCreds  bool
		wantStatus int
	}{
		{"listed origin", []string{"https://app.example.com"}, "https://app.example.com", http.MethodGet, "https://app.example.com", true, http.StatusOK},
		{"unlisted origin", []string{"https://app.example.com"}, "https://evil.example", http.MethodGet, "", false, http.StatusOK},
		{"wildcard", []string{"*"}, "https://any.example", http.MethodGet, "*", false, http.StatusOK},
		{"preflight", []string{"*"}, "https://any.example", http.MethodOptions, "*", false, http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/v1/catalog", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			CORS(tc.allowed)(next).ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("allow origin = %q, want %q", got, tc.wantOrigin)
			}
			if got := rec.Header().Get("Access-Control-Allow-Credentials") == "true"; got != tc.wantCreds {
				t.Fatalf("credentials = %v, want %v", got, tc.wantCreds)
			}
		})
	}
}

func TestLoggerRecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	secret := "s"
	token, _ := SignJWT(secret, NewTokenClaims("acct-7", "", time.Now(), time.Hour))

	h := RequestID(Logger(logger)(AuthJWT(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))))

	req := httptest.NewRequest(http.MethodPost, "/v1/images/generate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(HeaderRequestID, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line not json: %v (%s)", err, buf.String())
	}
	want := map[string]any{
		"method":     "POST",
		"path":       "/v1/images/generate",
		"status":     float64(http.StatusCreated),
		"bytes":      float64(5),
		"request_id": "req-1",
		"user_id":    "acct-7",
		"level":      "info",
	}
	for k, v := range want {
		if line[k] != v {
			t.Fatalf("%s = %v, want %v", k, line[k], v)
		}
	}
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	h := Logger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected error level, got %s", buf.String())
	}
}
