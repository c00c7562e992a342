package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sosio/internal/services"
)

// LoanHandler serves loan listings.
type LoanHandler struct {
	loanService services.LoanServicer
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanService services.LoanServicer) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// GetLoans lists a member's loans with totals
// @Summary     List loans
// @Tags        loans
// @Produce     json
// @Param       userId path int true "Member ID"
// @Success     200 {object} map[string]interface{} "{success, data: LoansView}"
// @Failure     400 {object} ErrorResponse "Invalid userId"
// @Failure     500 {object} ErrorResponse "DB error"
// @Router      /api/loans/{userId} [get]
func (h *LoanHandler) GetLoans(c *gin.Context) {
	userID, err := parsePathID(c, userIDParam)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.loanService.GetLoans(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithData(c, http.StatusOK, view)
}
