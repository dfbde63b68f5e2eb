package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akudrin/offsync/internal/logger"
)

// withLogging emits one structured entry per admin request after the
// handler has finished. The tenant route parameter is included when the
// matched route carries one, so lock and queue operations can be filtered
// per tenant.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		entry := logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start))

		// Route params are populated during routing, after this middleware
		// ran; the route context in r is the same object chi filled in.
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if tenantID := rctx.URLParam("tenantID"); tenantID != "" {
				entry = entry.Str("tenant_id", tenantID)
			}
		}

		entry.Msg("admin request served")
	})
}
