package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "sosio/internal/errors"
	"sosio/internal/models"
	"sosio/internal/pagination"
)

// dashboardService assembles the dashboard aggregate.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetSummary runs the four independent dashboard lookups concurrently and
// joins them. A member with no row yields a zero balance, not an error.
func (s *dashboardService) GetSummary(ctx context.Context, userID uint) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Scopes(pagination.ForUser(userID), pagination.Recent(pagination.DashboardLimit)).
			Find(&summary.RecentTransactions).Error
	})

	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Member{}).
			Select("COALESCE(balance, 0)").
			Where("id = ?", userID).
			Scan(&summary.TotalBalance).Error
	})

	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Loan{}).
			Scopes(pagination.ForUser(userID)).
			Where("status = ?", models.LoanStatusActive).
			Count(&summary.ActiveLoans).Error
	})

	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Investment{}).
			Select("COALESCE(SUM(amount), 0)").
			Scopes(pagination.ForUser(userID)).
			Scan(&summary.Investments).Error
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}

	if summary.RecentTransactions == nil {
		summary.RecentTransactions = []models.Transaction{}
	}
	return summary, nil
}
