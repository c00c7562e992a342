package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "sosio/internal/errors"
	"sosio/internal/logger"
)

// userIDParam is the path parameter naming the member a resource belongs to.
const userIDParam = "userId"

// parsePathID parses a positive integer path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// respondWithError writes a failure envelope. If the error is an *AppError
// it uses the error's status code, code, and message. Otherwise it logs the
// unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Success: false,
			Code:    appErr.Code,
			Message: appErr.Message,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Success: false,
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	})
}

// respondWithData writes a success envelope carrying payload under "data".
func respondWithData(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    payload,
	})
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Code    string `json:"code" example:"USER_NOT_FOUND"`
	Message string `json:"message" example:"User not found"`
}
