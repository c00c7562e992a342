package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	apperrors "sosio/internal/errors"
	"sosio/internal/models"
	"sosio/internal/pagination"
)

const historySheet = "History"

// historyService lists and exports transaction history.
type historyService struct {
	db *gorm.DB
}

// NewHistoryService creates a new HistoryServicer.
func NewHistoryService(db *gorm.DB) HistoryServicer {
	return &historyService{db: db}
}

// GetHistory returns up to HistoryLimit transactions, newest first.
func (s *historyService) GetHistory(ctx context.Context, userID uint) ([]models.Transaction, error) {
	rows := []models.Transaction{}
	err := s.db.WithContext(ctx).
		Scopes(pagination.ForUser(userID), pagination.Recent(pagination.HistoryLimit)).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}
	return rows, nil
}

// ExportHistory renders the same rows as GetHistory into an XLSX workbook.
func (s *historyService) ExportHistory(ctx context.Context, userID uint) (*bytes.Buffer, error) {
	rows, err := s.GetHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	headers := []interface{}{"Date", "Type", "Description", "Amount", "Status"}
	if err := f.SetSheetRow(historySheet, "A1", &headers); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i, tx := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{tx.Date.Format("2006-01-02"), tx.Type, tx.Description, tx.Amount, tx.Status}
		if err := f.SetSheetRow(historySheet, cell, &values); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	_ = f.SetColWidth(historySheet, "A", "A", 12)
	_ = f.SetColWidth(historySheet, "B", "B", 18)
	_ = f.SetColWidth(historySheet, "C", "C", 36)
	_ = f.SetColWidth(historySheet, "D", "E", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf, nil
}
