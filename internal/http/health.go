package http

import (
	"log/slog"
	"net/http"
)

// healthzHandler responds with a simple "ok" message for health checks.
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Warn("Could not write health check response", "error", err)
	}
}

// readyzHandler reports ready once a link table is available.
func readyzHandler(table Lookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if table == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("not ready")); err != nil {
				slog.Warn("Could not write readiness response", "error", err)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ready")); err != nil {
			slog.Warn("Could not write readiness response", "error", err)
		}
	}
}
