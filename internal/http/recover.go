package http

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover turns a panic in next into the shortlink 404 response and logs it.
// It stands in for middleware.Recoverer, which would answer with a 500.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // compared by identity, as net/http does
					panic(rec)
				}
				logger.Error("Recovered from panic", requestAttrs(r, "panic", rec, "stack", string(debug.Stack()))...)
				NotFound(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
