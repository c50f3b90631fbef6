package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ballotbox/api/internal/core/ports"
)

type VoterHandler struct {
	service ports.VoterService
}

func NewVoterHandler(service ports.VoterService) *VoterHandler {
	return &VoterHandler{service: service}
}

func (h *VoterHandler) GetVoterStatus(w http.ResponseWriter, r *http.Request) {
	voterID := chi.URLParam(r, "id")
	if voterID == "" {
		writeError(w, http.StatusBadRequest, "missing voter id")
		return
	}

	status, err := h.service.Status(r.Context(), voterID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, status)
}
