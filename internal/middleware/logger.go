package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

type logAnnotationsKey struct{}

// logAnnotations is filled in by inner middleware; the request context they
// see is a copy, so Logger hands them a pointer.
type logAnnotations struct {
	userID string
}

func annotateUser(ctx context.Context, userID string) {
	if a, ok := ctx.Value(logAnnotationsKey{}).(*logAnnotations); ok {
		a.userID = userID
	}
}

// Logger emits one structured line per request.
func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			ann := &logAnnotations{}
			next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), logAnnotationsKey{}, ann)))

			evt := l.Info()
			switch {
			case rw.status >= 500:
				evt = l.Error()
			case rw.status >= 400:
				evt = l.Warn()
			}
			evt.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("bytes", rw.bytes).
				Dur("duration", time.Since(start)).
				Str("request_id", RequestIDFromContext(r.Context())).
				Str("remote_ip", clientIPForRateLimit(r)).
				Str("user_id", ann.userID).
				Msg("http request")
		})
	}
}
