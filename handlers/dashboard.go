package handlers

import (
	"log"
	"net/http"

	"banking-console/pkg/views"
)

// Dashboard shows the backend's aggregate snapshot. The account-type
// counts feed the bar chart in the template.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := h.page(r, "Dashboard")

	stats, err := h.bankClient(r).DashboardStats(r.Context())
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		log.Printf("❌ Loading dashboard stats failed: %v", err)
		page.Error = "Failed to load dashboard statistics."
		h.renderer.Render(w, "dashboard", views.DashboardPage{Page: page})
		return
	}

	h.renderer.Render(w, "dashboard", views.DashboardPage{
		Page:  page,
		Stats: stats,
	})
}
