package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/utils"
)

func (h *Handler) getAllLocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	locks, err := h.services.Arbiter.GetAllOfflineLocks(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllLocks").Msg("error listing offline locks")
		http.Error(w, "error listing offline locks", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"locks": locks, "length": len(locks)}, http.StatusOK)
}

func (h *Handler) clearAllLocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	removed, err := h.services.Arbiter.ClearAllOfflineLocks(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.clearAllLocks").Msg("error clearing offline locks")
		http.Error(w, "error clearing offline locks", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]int64{"removed": removed}, http.StatusOK)
}

func (h *Handler) getWriteAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	access, err := h.services.Arbiter.HasOfflineWriteAccess(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getWriteAccess").Msg("error checking write access")
		http.Error(w, "error checking write access", statusFromError(err))
		return
	}

	owner, err := h.services.Arbiter.GetOfflineLockOwner(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getWriteAccess").Msg("error resolving lock owner")
		http.Error(w, "error resolving lock owner", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"write_access": access, "blocked_by": owner}, http.StatusOK)
}

func (h *Handler) getLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	lock, err := h.services.Arbiter.GetOfflineLock(ctx, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLock").Msg("error loading offline lock")
		http.Error(w, "error loading offline lock", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, lock, http.StatusOK)
}

func (h *Handler) releaseLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	if err := h.services.Arbiter.ReleaseOfflineLock(ctx, tenantID); err != nil {
		log.Err(err).Str("func", "*Handler.releaseLock").Msg("error releasing offline lock")
		http.Error(w, "error releasing offline lock", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
