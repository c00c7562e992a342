package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "sosio/internal/errors"
	"sosio/internal/models"
	"sosio/internal/pagination"
)

// investmentService lists portfolio holdings.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// GetInvestments returns the member's holdings and their summed amount.
func (s *investmentService) GetInvestments(ctx context.Context, userID uint) (*models.InvestmentsView, error) {
	holdings := []models.Investment{}
	if err := s.db.WithContext(ctx).Scopes(pagination.ForUser(userID)).Order("id").Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}

	view := &models.InvestmentsView{Portfolio: holdings}
	for _, h := range holdings {
		view.TotalValue += h.Amount
	}
	return view, nil
}
