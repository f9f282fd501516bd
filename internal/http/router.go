package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// reservedKeys are served by the router itself and never reach the table.
var reservedKeys = []string{"healthz", "readyz"}

// NewRouter creates and configures a new HTTP router serving the shortlinks
// in table.
func NewRouter(table Lookuper, opts ...Option) http.Handler {
	h := NewHandler(table, opts...)

	for _, key := range reservedKeys {
		if table == nil {
			break
		}
		if _, ok := table.Lookup(key); ok {
			h.logger.Warn("Shortlink is shadowed by a built-in endpoint", "key", key)
		}
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(Recover(h.logger))
	r.Use(middleware.Timeout(5 * time.Second))

	// Health check endpoints
	r.Get("/healthz", healthzHandler)
	r.Get("/readyz", readyzHandler(table))

	// Shortlinks: any method, any path
	r.Handle("/", h)
	r.Handle("/*", h)
	r.NotFound(h.ServeHTTP)
	r.MethodNotAllowed(h.ServeHTTP)

	return r
}
