package http

import (
	"net/http"

	"github.com/akudrin/offsync/internal/utils"
)

func (h *Handler) getConnectionState(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.Monitor.GetStatus(), http.StatusOK)
}

func (h *Handler) checkConnection(w http.ResponseWriter, r *http.Request) {
	status := h.services.Monitor.CheckStatus(r.Context())

	_, _ = utils.WriteJSON(w, map[string]any{"status": status}, http.StatusOK)
}

func (h *Handler) platformOnline(w http.ResponseWriter, r *http.Request) {
	h.services.Monitor.NotifyPlatformOnline(r.Context())

	_, _ = utils.WriteJSON(w, h.services.Monitor.GetStatus(), http.StatusOK)
}

func (h *Handler) platformOffline(w http.ResponseWriter, r *http.Request) {
	h.services.Monitor.NotifyPlatformOffline()

	_, _ = utils.WriteJSON(w, h.services.Monitor.GetStatus(), http.StatusOK)
}
