package dashboard

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/dto"
	"github.com/GlebRadaev/zasker/pkg/auth"
	"github.com/GlebRadaev/zasker/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

type Service interface {
	GetSolverDashboard(ctx context.Context, userID string) (*domain.SolverDashboard, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
//
//	@Summary		Solver dashboard
//	@Description	Profile, earnings, active solutions and review history of the calling solver
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not a solver"
//	@Failure		404	{object}	utils.Response	"Solver not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	dashboard, err := h.dashboardService.GetSolverDashboard(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDashboardResponse(dashboard))
}
