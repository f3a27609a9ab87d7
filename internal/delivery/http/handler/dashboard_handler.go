package handler

import (
	"net/http"

	"medcare-booking/internal/delivery/http/middleware"
	"medcare-booking/internal/usecase"
	"medcare-booking/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", h.dashboardUsecase.Dashboard(r.Context(), session.User))
}
