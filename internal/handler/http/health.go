package http

import (
	"net/http"

	"github.com/akudrin/offsync/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	state := h.services.Monitor.GetStatus()

	_, _ = utils.WriteJSON(w, map[string]any{
		"status":     "ok",
		"connection": state.Status,
	}, http.StatusOK)
}
