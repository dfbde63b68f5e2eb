// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akudrin/offsync/internal/utils"
)

func (h *Handler) startSync(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")

	// The drain run outlives this request; net/http cancels r.Context()
	// the moment the handler returns.
	h.services.Engine.Start(context.WithoutCancel(r.Context()), tenantID)

	_, _ = utils.WriteJSON(w, map[string]any{"running": true, "tenant_id": tenantID}, http.StatusAccepted)
}

func (h *Handler) pauseSync(w http.ResponseWriter, r *http.Request) {
	h.services.Engine.Pause()

	_, _ = utils.WriteJSON(w, map[string]bool{"paused": true}, http.StatusOK)
}

func (h *Handler) resumeSync(w http.ResponseWriter, r *http.Request) {
	h.services.Engine.Resume()

	_, _ = utils.WriteJSON(w, map[string]bool{"paused": false}, http.StatusOK)
}

func (h *Handler) stopSync(w http.ResponseWriter, r *http.Request) {
	h.services.Engine.Stop()

	_, _ = utils.WriteJSON(w, map[string]bool{"running": h.services.Engine.IsRunning()}, http.StatusOK)
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]bool{"running": h.services.Engine.IsRunning()}, http.StatusOK)
}
