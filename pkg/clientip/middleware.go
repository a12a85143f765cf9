package clientip

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
)

// Middleware stores the client address in the request context. Only the
// listed proxy headers are consulted; with none it keys on RemoteAddr alone.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	headers = slices.Clone(headers)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), Resolve(r, headers...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor adds "client_ip" to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip := FromContext(ctx)
		if ip == "" {
			return slog.Attr{}, false
		}
		return slog.String("client_ip", ip), true
	}
}
