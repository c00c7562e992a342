package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sosio/internal/services"
)

// MemberHandler serves member profiles.
type MemberHandler struct {
	memberService services.MemberServicer
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService services.MemberServicer) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ProfileResponse is the profile subset returned for a member.
type ProfileResponse struct {
	ID       uint     `json:"id"`
	Email    string   `json:"email"`
	Fullname string   `json:"fullname"`
	Codename string   `json:"codename"`
	Role     string   `json:"role"`
	Balance  *float64 `json:"balance"`
}

// GetUser returns a member's profile
// @Summary     Get member profile
// @Tags        user
// @Produce     json
// @Param       userId path int true "Member ID"
// @Success     200 {object} map[string]interface{} "{success, user}"
// @Failure     400 {object} ErrorResponse "Invalid userId"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "DB error"
// @Router      /api/user/{userId} [get]
func (h *MemberHandler) GetUser(c *gin.Context) {
	userID, err := parsePathID(c, userIDParam)
	if err != nil {
		respondWithError(c, err)
		return
	}

	member, err := h.memberService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": ProfileResponse{
			ID:       member.ID,
			Email:    member.Email,
			Fullname: member.Fullname,
			Codename: member.Codename,
			Role:     member.Role,
			Balance:  member.Balance,
		},
	})
}
