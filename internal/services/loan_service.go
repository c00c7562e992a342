package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "sosio/internal/errors"
	"sosio/internal/models"
	"sosio/internal/pagination"
)

// loanService lists loans.
type loanService struct {
	db *gorm.DB
}

// NewLoanService creates a new LoanServicer.
func NewLoanService(db *gorm.DB) LoanServicer {
	return &loanService{db: db}
}

// GetLoans returns every loan of the member with principal and remaining totals.
func (s *loanService) GetLoans(ctx context.Context, userID uint) (*models.LoansView, error) {
	loans := []models.Loan{}
	if err := s.db.WithContext(ctx).Scopes(pagination.ForUser(userID)).Order("id").Find(&loans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}

	view := &models.LoansView{CurrentLoans: loans}
	for _, l := range loans {
		view.TotalBorrowed += l.Principal
		view.TotalRemaining += l.Remaining
	}
	return view, nil
}
