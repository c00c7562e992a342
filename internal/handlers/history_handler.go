package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sosio/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HistoryHandler serves transaction history.
type HistoryHandler struct {
	historyService services.HistoryServicer
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService services.HistoryServicer) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetHistory lists up to 500 transactions, newest first
// @Summary     Transaction history
// @Tags        history
// @Produce     json
// @Param       userId path int true "Member ID"
// @Success     200 {object} map[string]interface{} "{success, data: Transaction[]}"
// @Failure     400 {object} ErrorResponse "Invalid userId"
// @Failure     500 {object} ErrorResponse "DB error"
// @Router      /api/history/{userId} [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID, err := parsePathID(c, userIDParam)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.historyService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithData(c, http.StatusOK, rows)
}

// ExportHistory downloads the history as an XLSX workbook
// @Summary     Export transaction history
// @Tags        history
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       userId path int true "Member ID"
// @Success     200 {file} file
// @Failure     400 {object} ErrorResponse "Invalid userId"
// @Failure     500 {object} ErrorResponse "DB error"
// @Router      /api/history/{userId}/export [get]
func (h *HistoryHandler) ExportHistory(c *gin.Context) {
	userID, err := parsePathID(c, userIDParam)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buf, err := h.historyService.ExportHistory(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("history_%d_%s.xlsx", userID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
