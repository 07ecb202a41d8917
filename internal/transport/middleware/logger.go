package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/docsign-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration and the request id, client ip and staff user id
// when known. Signing paths carry the access token, so the token segment
// is masked.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())
			userID, hasUser := ctxutil.UserIDFromCtx(r.Context())
			ip, _ := ctxutil.ClientFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", maskSigningToken(r.URL.Path)),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			if ip != "" {
				attrs = append(attrs, slog.String("ip", ip))
			}
			if hasUser {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// maskSigningToken hides the bearer token in /sign/{token}/... paths.
func maskSigningToken(path string) string {
	rest, ok := strings.CutPrefix(path, "/sign/")
	if !ok || rest == "" {
		return path
	}
	_, tail, found := strings.Cut(rest, "/")
	if !found {
		return "/sign/***"
	}
	return "/sign/***/" + tail
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
