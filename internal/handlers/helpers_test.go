package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sosio/internal/config"
	"sosio/internal/models"
	"sosio/internal/services"
)

// --- mock services ---

type mockMemberService struct {
	createMemberFn func(ctx context.Context, input services.NewMember) (*models.Member, error)
	authenticateFn func(ctx context.Context, email, password string) (*models.Member, error)
	getProfileFn   func(ctx context.Context, id uint) (*models.Member, error)
}

func (m *mockMemberService) CreateMember(ctx context.Context, input services.NewMember) (*models.Member, error) {
	if m.createMemberFn != nil {
		return m.createMemberFn(ctx, input)
	}
	return &models.Member{}, nil
}

func (m *mockMemberService) Authenticate(ctx context.Context, email, password string) (*models.Member, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, email, password)
	}
	return &models.Member{}, nil
}

func (m *mockMemberService) GetProfile(ctx context.Context, id uint) (*models.Member, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, id)
	}
	return &models.Member{}, nil
}

type mockDashboardService struct {
	getSummaryFn func(ctx context.Context, userID uint) (*models.DashboardSummary, error)
}

func (m *mockDashboardService) GetSummary(ctx context.Context, userID uint) (*models.DashboardSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(ctx, userID)
	}
	return &models.DashboardSummary{RecentTransactions: []models.Transaction{}}, nil
}

type mockLoanService struct {
	getLoansFn func(ctx context.Context, userID uint) (*models.LoansView, error)
}

func (m *mockLoanService) GetLoans(ctx context.Context, userID uint) (*models.LoansView, error) {
	if m.getLoansFn != nil {
		return m.getLoansFn(ctx, userID)
	}
	return &models.LoansView{CurrentLoans: []models.Loan{}}, nil
}

type mockInvestmentService struct {
	getInvestmentsFn func(ctx context.Context, userID uint) (*models.InvestmentsView, error)
}

func (m *mockInvestmentService) GetInvestments(ctx context.Context, userID uint) (*models.InvestmentsView, error) {
	if m.getInvestmentsFn != nil {
		return m.getInvestmentsFn(ctx, userID)
	}
	return &models.InvestmentsView{Portfolio: []models.Investment{}}, nil
}

type mockHistoryService struct {
	getHistoryFn    func(ctx context.Context, userID uint) ([]models.Transaction, error)
	exportHistoryFn func(ctx context.Context, userID uint) (*bytes.Buffer, error)
}

func (m *mockHistoryService) GetHistory(ctx context.Context, userID uint) ([]models.Transaction, error) {
	if m.getHistoryFn != nil {
		return m.getHistoryFn(ctx, userID)
	}
	return []models.Transaction{}, nil
}

func (m *mockHistoryService) ExportHistory(ctx context.Context, userID uint) (*bytes.Buffer, error) {
	if m.exportHistoryFn != nil {
		return m.exportHistoryFn(ctx, userID)
	}
	return &bytes.Buffer{}, nil
}

type auditEntry struct {
	memberID uint
	email    string
	action   string
	detail   string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(memberID uint, email, action, _ string, detail string) {
	m.entries = append(m.entries, auditEntry{memberID: memberID, email: email, action: action, detail: detail})
}

type recordingObserver struct {
	outcomes []string
}

func (o *recordingObserver) RecordLogin(outcome string) {
	o.outcomes = append(o.outcomes, outcome)
}

// verify interface compliance
var (
	_ services.MemberServicer     = (*mockMemberService)(nil)
	_ services.DashboardServicer  = (*mockDashboardService)(nil)
	_ services.LoanServicer       = (*mockLoanService)(nil)
	_ services.InvestmentServicer = (*mockInvestmentService)(nil)
	_ services.HistoryServicer    = (*mockHistoryService)(nil)
	_ services.AuditServicer      = (*mockAuditService)(nil)
	_ LoginObserver               = (*recordingObserver)(nil)
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{
		Env:              "test",
		JWTSecret:        "handler-test-secret",
		JWTExpirationDur: time.Hour,
	})
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["success"] != false {
		t.Errorf("expected success=false, got %v", result["success"])
	}
	if result["code"] != code {
		t.Errorf("expected error code %q, got %q", code, result["code"])
	}
}

func assertMessage(t *testing.T, result map[string]interface{}, message string) {
	t.Helper()
	if result["message"] != message {
		t.Errorf("expected message %q, got %q", message, result["message"])
	}
}

func floatPtr(v float64) *float64 { return &v }
