package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sosio/internal/errors"
	"sosio/internal/identity"
	"sosio/internal/middleware"
	"sosio/internal/models"
	"sosio/internal/services"
)

// LoginObserver is notified of every login outcome.
type LoginObserver interface {
	RecordLogin(outcome string)
}

// Login outcomes reported to the observer.
const (
	LoginOutcomeSuccess = "success"
	LoginOutcomeInvalid = "invalid_request"
	LoginOutcomeNoAcct  = "no_account"
	LoginOutcomeBadPass = "incorrect_password"
	LoginOutcomeServer  = "error"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	memberService services.MemberServicer
	auditService  services.AuditServicer
	observer      LoginObserver
}

// NewAuthHandler creates a new AuthHandler. observer may be nil.
func NewAuthHandler(memberService services.MemberServicer, auditService services.AuditServicer, observer LoginObserver) *AuthHandler {
	return &AuthHandler{memberService: memberService, auditService: auditService, observer: observer}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Success bool              `json:"success" example:"true"`
	Message string            `json:"message" example:"Welcome back, alice!"`
	User    identity.UserView `json:"user"`
	Token   string            `json:"token"`
}

// Login handles member login
// @Summary     Login
// @Description Authenticate with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} LoginResponse
// @Failure     400 {object} ErrorResponse "Email and password required"
// @Failure     401 {object} ErrorResponse "Unknown email or incorrect password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.record(LoginOutcomeInvalid)
		respondWithError(c, apperrors.ErrMissingCredentials)
		return
	}

	member, err := h.memberService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.loginFailed(c, req.Email, member, err)
		respondWithError(c, err)
		return
	}

	view := identity.Normalize(identity.Record{
		ID:       member.ID,
		Email:    member.Email,
		Fullname: member.Fullname,
		Codename: member.Codename,
		Role:     member.Role,
	})

	token, err := middleware.GenerateToken(member)
	if err != nil {
		h.record(LoginOutcomeServer)
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(member.ID, member.Email, models.AuditLoginSucceeded, c.ClientIP(), "")
	h.record(LoginOutcomeSuccess)

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome back, %s!", view.Fullname),
		User:    view,
		Token:   token,
	})
}

func (h *AuthHandler) loginFailed(c *gin.Context, email string, member *models.Member, err error) {
	outcome := LoginOutcomeServer
	switch {
	case errors.Is(err, apperrors.ErrMissingCredentials):
		outcome = LoginOutcomeInvalid
	case errors.Is(err, apperrors.ErrNoAccount):
		outcome = LoginOutcomeNoAcct
	case errors.Is(err, apperrors.ErrIncorrectPassword):
		outcome = LoginOutcomeBadPass
	}
	h.record(outcome)

	if outcome != LoginOutcomeNoAcct && outcome != LoginOutcomeBadPass {
		return
	}
	var memberID uint
	if member != nil {
		memberID = member.ID
	}
	h.auditService.Log(memberID, email, models.AuditLoginFailed, c.ClientIP(), outcome)
}

func (h *AuthHandler) record(outcome string) {
	if h.observer != nil {
		h.observer.RecordLogin(outcome)
	}
}
