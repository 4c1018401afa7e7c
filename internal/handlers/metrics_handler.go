package handlers

import (
	"net/http"

	"turakBack/internal/services"
)

type MetricsHandler struct {
	Service *services.MetricsService
}

// Dashboard is behind the admin route chain.
func (h *MetricsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Service.GetDashboardMetrics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
