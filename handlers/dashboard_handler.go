package handlers

import (
	"net/http"

	"github.com/joaovmb/team-manager/middleware"
	"github.com/joaovmb/team-manager/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}

	overview, err := h.dashboardService.Overview(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"dashboard": overview}, nil); err != nil {
		serverErrorResponse(w, err)
	}
}
