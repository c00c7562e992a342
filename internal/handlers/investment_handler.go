package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sosio/internal/services"
)

// InvestmentHandler serves portfolio listings.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// GetInvestments lists a member's holdings with their total value
// @Summary     List investments
// @Tags        investments
// @Produce     json
// @Param       userId path int true "Member ID"
// @Success     200 {object} map[string]interface{} "{success, data: InvestmentsView}"
// @Failure     400 {object} ErrorResponse "Invalid userId"
// @Failure     500 {object} ErrorResponse "DB error"
// @Router      /api/investments/{userId} [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	userID, err := parsePathID(c, userIDParam)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.investmentService.GetInvestments(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithData(c, http.StatusOK, view)
}
