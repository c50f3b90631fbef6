package http

import (
	"net/http"

	"github.com/ballotbox/api/internal/core/ports"
)

type ResultsHandler struct {
	service ports.ResultsService
}

func NewResultsHandler(service ports.ResultsService) *ResultsHandler {
	return &ResultsHandler{service: service}
}

func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Results(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *ResultsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
