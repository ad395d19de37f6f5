package handler

import (
	"net/http"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/adapter/http/middleware"
	"github.com/lumapay/corebank/internal/usecase"
)

// DashboardHandler handles the account dashboard.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Get aggregates the caller's transaction history. Unlike the other
// endpoints, dashboard errors use the {"success":false,"error":...}
// envelope the frontend consumes.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, dto.DashboardResponse{
			Success: false,
			Error:   "não autenticado",
		})
		return
	}

	data, err := h.dashboardUC.GetDashboard(r.Context(), user.ID)
	if err != nil {
		writeJSON(w, mapDomainError(err), dto.DashboardResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromData(data))
}
