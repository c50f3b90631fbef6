package http

import (
	"net/http"

	"github.com/ballotbox/api/internal/core/ports"
)

type HealthHandler struct {
	checker ports.HealthChecker
}

func NewHealthHandler(checker ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

type unhealthyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error"`
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report, err := h.checker.Check(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, report)
}
