package handler

import "net/http"

// GetDashboard returns the financial summary rollup
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.DashboardSummary(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, summary)
}

// GetDashboardChart returns the trailing six-month income/expense chart
func (h *Handler) GetDashboardChart(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.DashboardChart(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, points)
}
