package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "sosio/internal/errors"
	"sosio/internal/models"
)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/login", handler.Login)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with normalized user on success", func(t *testing.T) {
		memberSvc := &mockMemberService{
			authenticateFn: func(_ context.Context, email, _ string) (*models.Member, error) {
				return &models.Member{
					Base:  models.Base{ID: 7},
					Email: email,
					Role:  models.RoleMember,
				}, nil
			},
		}
		audit := &mockAuditService{}
		observer := &recordingObserver{}
		r := setupAuthRouter(NewAuthHandler(memberSvc, audit, observer))

		rec := doRequest(r, "POST", "/login", `{"email":"alice@example.com","password":"pw"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != true {
			t.Errorf("expected success=true, got %v", result["success"])
		}
		assertMessage(t, result, "Welcome back, alice!")

		user := result["user"].(map[string]interface{})
		if user["id"] != float64(7) {
			t.Errorf("expected id 7, got %v", user["id"])
		}
		if user["fullname"] != "alice" {
			t.Errorf("expected derived fullname alice, got %v", user["fullname"])
		}
		if user["codename"] != "ALI" {
			t.Errorf("expected derived codename ALI, got %v", user["codename"])
		}
		if user["role"] != "member" {
			t.Errorf("expected role member, got %v", user["role"])
		}
		if tok, _ := result["token"].(string); tok == "" {
			t.Error("expected a non-empty token")
		}

		if len(audit.entries) != 1 || audit.entries[0].action != models.AuditLoginSucceeded {
			t.Errorf("expected one success audit entry, got %+v", audit.entries)
		}
		if len(observer.outcomes) != 1 || observer.outcomes[0] != LoginOutcomeSuccess {
			t.Errorf("expected success outcome, got %v", observer.outcomes)
		}
	})

	t.Run("keeps stored fullname and codename", func(t *testing.T) {
		memberSvc := &mockMemberService{
			authenticateFn: func(_ context.Context, email, _ string) (*models.Member, error) {
				return &models.Member{
					Base:     models.Base{ID: 1},
					Email:    email,
					Fullname: "Alice Smith",
					Codename: "AS",
					Role:     models.RoleAdmin,
				}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(memberSvc, &mockAuditService{}, nil))

		rec := doRequest(r, "POST", "/login", `{"email":"alice@example.com","password":"pw"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertMessage(t, result, "Welcome back, Alice Smith!")
		user := result["user"].(map[string]interface{})
		if user["codename"] != "AS" || user["role"] != "admin" {
			t.Errorf("expected stored identity, got %v", user)
		}
	})

	t.Run("returns 400 when password is missing", func(t *testing.T) {
		called := false
		memberSvc := &mockMemberService{
			authenticateFn: func(context.Context, string, string) (*models.Member, error) {
				called = true
				return nil, nil
			},
		}
		observer := &recordingObserver{}
		r := setupAuthRouter(NewAuthHandler(memberSvc, &mockAuditService{}, observer))

		rec := doRequest(r, "POST", "/login", `{"email":"a@test.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "MISSING_CREDENTIALS")
		assertMessage(t, result, "Email and password required")
		if called {
			t.Error("expected no authentication attempt")
		}
		if observer.outcomes[0] != LoginOutcomeInvalid {
			t.Errorf("expected invalid outcome, got %v", observer.outcomes)
		}
	})

	t.Run("returns 400 when email is empty", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockMemberService{}, &mockAuditService{}, nil))

		rec := doRequest(r, "POST", "/login", `{"email":"","password":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MISSING_CREDENTIALS")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockMemberService{}, &mockAuditService{}, nil))

		rec := doRequest(r, "POST", "/login", `{not json`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 for unknown email", func(t *testing.T) {
		memberSvc := &mockMemberService{
			authenticateFn: func(context.Context, string, string) (*models.Member, error) {
				return nil, apperrors.ErrNoAccount
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(memberSvc, audit, nil))

		rec := doRequest(r, "POST", "/login", `{"email":"ghost@test.com","password":"x"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "NO_ACCOUNT")
		assertMessage(t, result, "No account found with this email address")
		if len(audit.entries) != 1 || audit.entries[0].action != models.AuditLoginFailed {
			t.Errorf("expected one failure audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 401 for wrong password", func(t *testing.T) {
		memberSvc := &mockMemberService{
			authenticateFn: func(_ context.Context, email, password string) (*models.Member, error) {
				if email == "a@test.com" && password == "x" {
					return &models.Member{Base: models.Base{ID: 1}, Email: email}, nil
				}
				return &models.Member{Base: models.Base{ID: 1}, Email: email}, apperrors.ErrIncorrectPassword
			},
		}
		observer := &recordingObserver{}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(memberSvc, audit, observer))

		rec := doRequest(r, "POST", "/login", `{"email":"a@test.com","password":"y"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INCORRECT_PASSWORD")
		assertMessage(t, result, "Incorrect password. Please try again.")
		if observer.outcomes[0] != LoginOutcomeBadPass {
			t.Errorf("expected incorrect_password outcome, got %v", observer.outcomes)
		}
		if len(audit.entries) != 1 || audit.entries[0].memberID != 1 {
			t.Errorf("expected failure audited against member 1, got %+v", audit.entries)
		}
		if _, ok := result["user"]; ok {
			t.Error("failed login must not return the member")
		}
	})

	t.Run("returns 500 with generic message on store failure", func(t *testing.T) {
		memberSvc := &mockMemberService{
			authenticateFn: func(context.Context, string, string) (*models.Member, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("connection refused"))
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(memberSvc, audit, nil))

		rec := doRequest(r, "POST", "/login", `{"email":"a@test.com","password":"x"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertMessage(t, result, "Server error")
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entry for server errors, got %+v", audit.entries)
		}
	})
}
