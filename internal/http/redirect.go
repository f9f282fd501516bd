package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	notFoundBody        = "Shortlink not found"
	notFoundContentType = "text/plain;charset=UTF-8"
)

// ErrMalformedRequest is returned by ShortKey when the request carries no
// usable URL.
var ErrMalformedRequest = errors.New("malformed request")

// Lookuper resolves a short key to its destination URL.
type Lookuper interface {
	Lookup(key string) (string, bool)
}

// Outcome is the kind of response a request resolves to.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeHome
	OutcomeRedirect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHome:
		return "home"
	case OutcomeRedirect:
		return "redirect"
	default:
		return "not_found"
	}
}

// Resolution is the result of interpreting a request. Location is set only
// for OutcomeRedirect.
type Resolution struct {
	Outcome  Outcome
	Location string
}

// Resolve maps a short key to a Resolution. The empty key is the homepage.
func Resolve(table Lookuper, key string) Resolution {
	if key == "" {
		return Resolution{Outcome: OutcomeHome}
	}
	if table == nil {
		return Resolution{Outcome: OutcomeNotFound}
	}
	if dest, ok := table.Lookup(key); ok {
		return Resolution{Outcome: OutcomeRedirect, Location: dest}
	}
	return Resolution{Outcome: OutcomeNotFound}
}

// ShortKey returns the request path with exactly one leading slash removed.
// The path is used as net/http decoded it, without further normalization.
func ShortKey(r *http.Request) (string, error) {
	if r == nil || r.URL == nil {
		return "", ErrMalformedRequest
	}
	return strings.TrimPrefix(r.URL.Path, "/"), nil
}

// Handler serves shortlink redirects, the homepage and the not-found page.
type Handler struct {
	table   Lookuper
	logger  *slog.Logger
	keyFunc func(*http.Request) (string, error)
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger faults are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithKeyFunc replaces ShortKey as the way a request is turned into a key.
func WithKeyFunc(fn func(*http.Request) (string, error)) Option {
	return func(h *Handler) {
		if fn != nil {
			h.keyFunc = fn
		}
	}
}

// NewHandler returns a Handler that looks keys up in table.
func NewHandler(table Lookuper, opts ...Option) *Handler {
	h := &Handler{
		table:   table,
		logger:  slog.Default(),
		keyFunc: ShortKey,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.resolve(r)
	if err != nil {
		h.logger.Error("Failed to resolve shortlink", requestAttrs(r, "error", err)...)
		NotFound(w)
		return
	}

	switch res.Outcome {
	case OutcomeHome:
		w.Header().Set("Content-Type", homeContentType)
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, homePage); err != nil {
			h.logger.Warn("Could not write homepage", "error", err)
		}
	case OutcomeRedirect:
		http.Redirect(w, r, res.Location, http.StatusTemporaryRedirect)
	default:
		NotFound(w)
	}
}

// resolve contains any panic raised while interpreting the request so the
// caller can answer with the not-found page.
func (h *Handler) resolve(r *http.Request) (res Resolution, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	key, err := h.keyFunc(r)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to extract short key: %w", err)
	}
	return Resolve(h.table, key), nil
}

// NotFound writes the shortlink 404 response.
func NotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", notFoundContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	if _, err := io.WriteString(w, notFoundBody); err != nil {
		slog.Warn("Could not write not found response", "error", err)
	}
}

// requestAttrs prefixes attrs with what is known about r for fault logs.
func requestAttrs(r *http.Request, attrs ...any) []any {
	if r == nil {
		return attrs
	}
	out := []any{"method", r.Method}
	if r.URL != nil {
		out = append(out, "path", r.URL.Path)
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		out = append(out, "request_id", id)
	}
	return append(out, attrs...)
}
