package services

import (
	"bytes"
	"context"

	"sosio/internal/models"
)

// MemberServicer defines the contract for member lookup and authentication.
type MemberServicer interface {
	CreateMember(ctx context.Context, input NewMember) (*models.Member, error)
	// Authenticate returns the member with ErrIncorrectPassword so failures
	// can be attributed.
	Authenticate(ctx context.Context, email, password string) (*models.Member, error)
	GetProfile(ctx context.Context, id uint) (*models.Member, error)
}

// NewMember carries the fields accepted when provisioning a member.
type NewMember struct {
	Email    string
	Password string
	Fullname string
	Codename string
	Role     string
	Balance  *float64
}

// DashboardServicer defines the contract for the dashboard aggregate.
type DashboardServicer interface {
	GetSummary(ctx context.Context, userID uint) (*models.DashboardSummary, error)
}

// LoanServicer defines the contract for loan listings.
type LoanServicer interface {
	GetLoans(ctx context.Context, userID uint) (*models.LoansView, error)
}

// InvestmentServicer defines the contract for investment listings.
type InvestmentServicer interface {
	GetInvestments(ctx context.Context, userID uint) (*models.InvestmentsView, error)
}

// HistoryServicer defines the contract for transaction history.
type HistoryServicer interface {
	GetHistory(ctx context.Context, userID uint) ([]models.Transaction, error)
	ExportHistory(ctx context.Context, userID uint) (*bytes.Buffer, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(memberID uint, email, action, ipAddress, detail string)
}
