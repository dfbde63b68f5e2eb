package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/utils"
	"github.com/akudrin/offsync/models"
)

type enqueueRequest struct {
	UserID        string             `json:"user_id"`
	DeviceID      string             `json:"device_id,omitempty"`
	OperationType string             `json:"operation_type"`
	Action        models.QueueAction `json:"action"`
	Payload       json.RawMessage    `json:"payload"`
}

func (h *Handler) enqueueItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	var req enqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.enqueueItem").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item := models.QueueItem{
		TenantID:      tenantID,
		UserID:        req.UserID,
		OperationType: req.OperationType,
		Action:        req.Action,
		Payload:       req.Payload,
	}
	if err := h.validator.Validate(ctx, item); err != nil {
		log.Err(err).Str("func", "*Handler.enqueueItem").Msg("invalid enqueue request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	// Writers check eligibility before queueing; a tenant offline-locked by
	// another identity is read-only.
	access, err := h.services.Arbiter.HasOfflineWriteAccess(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enqueueItem").Msg("error checking write access")
		http.Error(w, "error checking write access", statusFromError(err))
		return
	}
	if !access {
		log.Warn().
			Str("func", "*Handler.enqueueItem").
			Str("tenant_id", tenantID).
			Msg("enqueue rejected, tenant is offline-locked by another user")
		http.Error(w, "tenant is locked for offline writes", http.StatusLocked)
		return
	}

	id, err := h.queue.Enqueue(ctx, tenantID, req.UserID, req.DeviceID, req.OperationType, req.Action, req.Payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enqueueItem").Msg("error enqueueing item")
		http.Error(w, "error enqueueing item", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]string{"id": id}, http.StatusCreated)
}

func (h *Handler) getAllItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	items, err := h.queue.GetAllItems(ctx, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllItems").Msg("error listing queue items")
		http.Error(w, "error listing queue items", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"items": items, "length": len(items)}, http.StatusOK)
}

func (h *Handler) getPendingItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	items, err := h.queue.GetPendingItems(ctx, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPendingItems").Msg("error listing pending items")
		http.Error(w, "error listing pending items", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"items": items, "length": len(items)}, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	itemID := chi.URLParam(r, "itemID")

	item, err := h.queue.GetItem(ctx, itemID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getItem").Msg("error loading queue item")
		http.Error(w, "error loading queue item", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	itemID := chi.URLParam(r, "itemID")

	if err := h.queue.Remove(ctx, itemID); err != nil {
		log.Err(err).Str("func", "*Handler.removeItem").Msg("error removing queue item")
		http.Error(w, "error removing queue item", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getQueueStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	pending, err := h.queue.PendingCount(ctx, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQueueStats").Msg("error counting pending items")
		http.Error(w, "error counting pending items", statusFromError(err))
		return
	}

	failed, err := h.queue.FailedCount(ctx, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQueueStats").Msg("error counting failed items")
		http.Error(w, "error counting failed items", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]int64{"pending": pending, "failed": failed}, http.StatusOK)
}

func (h *Handler) clearCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	removed, err := h.queue.ClearCompleted(ctx, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.clearCompleted").Msg("error purging completed items")
		http.Error(w, "error purging completed items", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]int64{"removed": removed}, http.StatusOK)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")

	removed, err := h.queue.ClearAll(ctx, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.clearAll").Msg("error clearing queue")
		http.Error(w, "error clearing queue", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]int64{"removed": removed}, http.StatusOK)
}

func (h *Handler) removePendingByEntity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenantID := chi.URLParam(r, "tenantID")
	operationType := chi.URLParam(r, "operationType")
	entityID := chi.URLParam(r, "entityID")

	removed, err := h.queue.RemovePendingByEntity(ctx, tenantID, operationType, entityID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.removePendingByEntity").Msg("error cancelling entity items")
		http.Error(w, "error cancelling entity items", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, map[string]int64{"removed": removed}, http.StatusOK)
}
