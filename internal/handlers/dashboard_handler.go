package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sosio/internal/services"
)

// DashboardHandler serves the dashboard aggregate.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns balance, active loan count, invested total and the
// ten most recent transactions
// @Summary     Get dashboard summary
// @Tags        dashboard
// @Produce     json
// @Param       userId path int true "Member ID"
// @Success     200 {object} map[string]interface{} "{success, data: DashboardSummary}"
// @Failure     400 {object} ErrorResponse "Invalid userId"
// @Failure     500 {object} ErrorResponse "DB error"
// @Router      /api/dashboard/{userId} [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := parsePathID(c, userIDParam)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithData(c, http.StatusOK, summary)
}
