package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/health", h.health)

	router.Route("/api/connection", func(r chi.Router) {
		r.Get("/", h.getConnectionState)
		r.Post("/check", h.checkConnection)
		r.Post("/online", h.platformOnline)
		r.Post("/offline", h.platformOffline)
	})

	router.Route("/api/queue/{tenantID}", func(r chi.Router) {
		r.Post("/items", h.enqueueItem)
		r.Get("/items", h.getAllItems)
		r.Get("/items/pending", h.getPendingItems)
		r.Get("/stats", h.getQueueStats)
		r.Delete("/completed", h.clearCompleted)
		r.Delete("/", h.clearAll)
		r.Delete("/entity/{operationType}/{entityID}", h.removePendingByEntity)
	})
	router.Route("/api/queue/items/{itemID}", func(r chi.Router) {
		r.Get("/", h.getItem)
		r.Delete("/", h.removeItem)
	})

	router.Route("/api/sync", func(r chi.Router) {
		r.Post("/{tenantID}/start", h.startSync)
		r.Post("/pause", h.pauseSync)
		r.Post("/resume", h.resumeSync)
		r.Post("/stop", h.stopSync)
		r.Get("/status", h.getSyncStatus)
	})

	router.Route("/api/locks", func(r chi.Router) {
		r.Get("/", h.getAllLocks)
		r.Delete("/", h.clearAllLocks)
		r.Get("/access", h.getWriteAccess)
		r.Get("/{tenantID}", h.getLock)
		r.Delete("/{tenantID}", h.releaseLock)
	})

	return router
}
